package services

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	twilio "github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/parkwise/parking-service/internal/config"
	"github.com/parkwise/parking-service/internal/models"
	"github.com/parkwise/parking-service/internal/utils"
)

// Notifier delivers overdue-payment notices. Delivery failures are
// logged, never propagated; billing state does not depend on them.
type Notifier interface {
	PaymentOverdue(ctx context.Context, user *models.User, p *models.Payment)
}

const overdueEmailHTML = `<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; background-color: #f4f4f4; margin: 0; padding: 0; }
.container { padding: 20px; max-width: 600px; margin: 20px auto; background-color: #ffffff; border: 1px solid #dddddd; border-radius: 8px; }
.header { font-size: 22px; font-weight: bold; color: #d9534f; margin-bottom: 15px; }
.footer { margin-top: 20px; font-size: 12px; color: #777777; text-align: center; }
p { margin-bottom: 15px; }
</style>
</head>
<body>
<div class="container">
<p class="header">Parking payment overdue</p>
<p>Hi %s,</p>
<p>Your parking payment of <strong>%.2f</strong> issued on %s is now overdue.</p>
<p>%s</p>
<p>Please settle it at your earliest convenience.</p>
<div class="footer">Parkwise facility management</div>
</div>
</body>
</html>`

type overdueNotifier struct {
	fromEmail string
	fromPhone string
	twClient  *twilio.RestClient
	sgClient  *sendgrid.Client
}

// NewNotifier builds a notifier from whatever channels are configured.
// With neither SendGrid nor Twilio credentials present it degrades to
// logging only.
func NewNotifier(cfg *config.Config) Notifier {
	n := &overdueNotifier{
		fromEmail: cfg.SendGridFromEmail,
		fromPhone: cfg.TwilioFromPhone,
	}
	if cfg.SendGridAPIKey != "" {
		n.sgClient = sendgrid.NewSendClient(cfg.SendGridAPIKey)
	}
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		n.twClient = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}
	return n
}

func (n *overdueNotifier) PaymentOverdue(ctx context.Context, user *models.User, p *models.Payment) {
	subject := "Parking payment overdue"
	body := fmt.Sprintf(
		"Your parking payment of %.2f issued on %s is overdue. %s",
		p.Amount, p.Date.Format("2006-01-02"), p.Description,
	)

	if n.sgClient != nil && user.Email != "" {
		from := mail.NewEmail("Parkwise", n.fromEmail)
		to := mail.NewEmail(user.Name, user.Email)
		htmlBody := fmt.Sprintf(overdueEmailHTML, user.Name, p.Amount, p.Date.Format("2006-01-02"), p.Description)
		msg := mail.NewSingleEmail(from, subject, to, body, htmlBody)
		if _, err := n.sgClient.Send(msg); err != nil {
			utils.Logger.WithError(err).Warnf("Failed to email overdue notice to user %s", user.ID)
		}
	} else {
		utils.Logger.Debugf("SendGrid not configured, skipping overdue email for user %s", user.ID)
	}

	if n.twClient != nil && user.Phone != "" {
		params := &twilioApi.CreateMessageParams{}
		params.SetTo(user.Phone)
		params.SetFrom(n.fromPhone)
		params.SetBody(subject + " :: " + body)
		if _, err := n.twClient.Api.CreateMessage(params); err != nil {
			utils.Logger.WithError(err).Warnf("Failed to SMS overdue notice to user %s", user.ID)
		}
	} else {
		utils.Logger.Debugf("Twilio not configured, skipping overdue SMS for user %s", user.ID)
	}
}
