package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/parkwise/parking-service/internal/models"
	"github.com/parkwise/parking-service/internal/utils"
)

const AppName = "parking-service"

const defaultMonthlyRate = 100.0

type Config struct {
	AppName string
	AppPort string
	AppURL  string

	// Database
	DBUrl string

	// Overdue notifications (optional; empty disables the channel)
	SendGridAPIKey    string
	SendGridFromEmail string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioFromPhone   string

	// Feature toggles
	SeedTestData       bool
	GenerateOnSchedule bool

	// Monthly rate per space type; every type has an entry.
	MonthlyRates map[models.SpaceType]float64
}

// LoadConfig reads the environment (a local .env is honored when present)
// and fails fast on anything required.
func LoadConfig() *Config {
	if err := godotenv.Load(); err == nil {
		utils.Logger.Info("Loaded configuration overrides from .env")
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		utils.Logger.Fatal("DATABASE_URL env var is missing")
	}

	cfg := &Config{
		AppName: AppName,
		AppPort: fallback(os.Getenv("APP_PORT"), "8080"),
		AppURL:  fallback(os.Getenv("APP_URL"), "http://localhost:5173"),
		DBUrl:   dbURL,

		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail: fallback(os.Getenv("SENDGRID_FROM_EMAIL"), "billing@parkwise.example"),
		TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromPhone:   os.Getenv("TWILIO_FROM_PHONE"),

		SeedTestData:       boolEnv("SEED_TEST_DATA"),
		GenerateOnSchedule: boolEnv("GENERATE_ON_SCHEDULE"),

		MonthlyRates: loadMonthlyRates(),
	}

	return cfg
}

func loadMonthlyRates() map[models.SpaceType]float64 {
	base := rateEnv("MONTHLY_RATE_DEFAULT", defaultMonthlyRate)
	return map[models.SpaceType]float64{
		models.SpaceTypeMotorcycle: rateEnv("MONTHLY_RATE_MOTORCYCLE", base),
		models.SpaceTypeCar:        rateEnv("MONTHLY_RATE_CAR", base),
		models.SpaceTypeVan:        rateEnv("MONTHLY_RATE_VAN", base),
		models.SpaceTypeOther:      rateEnv("MONTHLY_RATE_OTHER", base),
	}
}

func rateEnv(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		utils.Logger.Warnf("Ignoring invalid %s=%q, using %.2f", key, raw, def)
		return def
	}
	return v
}

func boolEnv(key string) bool {
	v, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return v
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
