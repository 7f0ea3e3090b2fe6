package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	_ "time/tzdata"

	"github.com/parkwise/parking-service/internal/app"
	"github.com/parkwise/parking-service/internal/config"
	"github.com/parkwise/parking-service/internal/controllers"
	"github.com/parkwise/parking-service/internal/repositories"
	"github.com/parkwise/parking-service/internal/routes"
	"github.com/parkwise/parking-service/internal/services"
	"github.com/parkwise/parking-service/internal/utils"
)

const (
	overdueSweepCronSpec      = "0 6 * * *" // daily, 06:00 UTC
	monthlyGenerationCronSpec = "0 5 1 * *" // first of the month, 05:00 UTC
	cronJobTimeout            = 2 * time.Minute
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize parking-service:", err)
	}
	defer application.Close()

	// Repositories
	userRepo := repositories.NewUserRepository(application.DB)
	vehicleRepo := repositories.NewVehicleRepository(application.DB)
	spaceRepo := repositories.NewParkingSpaceRepository(application.DB)
	paymentRepo := repositories.NewPaymentRepository(application.DB)

	if cfg.SeedTestData {
		if err := app.SeedAllTestData(context.Background(), userRepo, vehicleRepo, spaceRepo, paymentRepo); err != nil {
			utils.Logger.Fatal("Failed to seed test data:", err)
		}
	}

	// Services
	notifier := services.NewNotifier(cfg)
	userService := services.NewUserService(userRepo, vehicleRepo, spaceRepo)
	spaceService := services.NewSpaceService(spaceRepo, userRepo)
	paymentService := services.NewPaymentService(paymentRepo, userRepo)
	billingService := services.NewBillingService(cfg, userRepo, spaceRepo, paymentRepo, application.Status)
	overdueService := services.NewOverdueService(userRepo, paymentRepo, notifier, application.Status)
	reportService := services.NewReportService(userRepo, spaceRepo, paymentRepo)

	// Controllers
	healthController := controllers.NewHealthController(application)
	usersController := controllers.NewUsersController(userService)
	spacesController := controllers.NewSpacesController(spaceService)
	paymentsController := controllers.NewPaymentsController(paymentService, billingService, overdueService)
	reportsController := controllers.NewReportsController(reportService)

	// Any change to the payment list re-runs the overdue sweep, so
	// payments created through the API or the generator are reclassified
	// without waiting for the daily cron.
	listener := services.NewChangeListener(application.DB, repositories.PaymentsChannel, func(ctx context.Context) {
		if _, err := overdueService.Sweep(ctx, time.Now().UTC()); err != nil {
			utils.Logger.WithError(err).Error("Change-triggered overdue sweep failed")
		}
	}, application.Status)
	listenerCtx, stopListener := context.WithCancel(context.Background())
	defer stopListener()
	go listener.Run(listenerCtx)

	// Router setup
	router := mux.NewRouter()

	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Status, healthController.StatusHandler).Methods(http.MethodGet)

	router.HandleFunc(routes.Users, usersController.ListUsersHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Users, usersController.CreateUserHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.UserByID, usersController.GetUserHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.UserByID, usersController.UpdateUserHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.UserByID, usersController.DeleteUserHandler).Methods(http.MethodDelete)

	router.HandleFunc(routes.Spaces, spacesController.ListSpacesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Spaces, spacesController.CreateSpaceHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.SpaceByID, spacesController.GetSpaceHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.SpaceByID, spacesController.UpdateSpaceHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.SpaceByID, spacesController.DeleteSpaceHandler).Methods(http.MethodDelete)
	router.HandleFunc(routes.SpaceAssign, spacesController.AssignSpaceHandler).Methods(http.MethodPost)

	router.HandleFunc(routes.Payments, paymentsController.ListPaymentsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Payments, paymentsController.CreatePaymentHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.PaymentStatus, paymentsController.UpdatePaymentStatusHandler).Methods(http.MethodPatch)
	router.HandleFunc(routes.PaymentsGenerate, paymentsController.GeneratePaymentsHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.PaymentsOverdueSweep, paymentsController.OverdueSweepHandler).Methods(http.MethodPost)

	router.HandleFunc(routes.ReportsSummary, reportsController.SummaryHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.ReportsExport, reportsController.ExportHandler).Methods(http.MethodGet)

	// Cron job setup
	c := cron.New(cron.WithLocation(time.UTC))

	_, err = c.AddFunc(overdueSweepCronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cronJobTimeout)
		defer cancel()
		utils.Logger.Info("Starting overdue sweep cron job...")
		if _, err := overdueService.Sweep(ctx, time.Now().UTC()); err != nil {
			utils.Logger.WithError(err).Error("Failed to sweep overdue payments")
		}
	})
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to schedule overdue sweep cron")
	}

	if cfg.GenerateOnSchedule {
		_, err = c.AddFunc(monthlyGenerationCronSpec, func() {
			ctx, cancel := context.WithTimeout(context.Background(), cronJobTimeout)
			defer cancel()
			utils.Logger.Info("Starting monthly payment generation cron job...")
			if _, err := billingService.GenerateMonthlyPayments(ctx); err != nil {
				utils.Logger.WithError(err).Error("Failed to generate monthly payments")
			}
		})
		if err != nil {
			utils.Logger.WithError(err).Fatal("Failed to schedule monthly generation cron")
		}
	}

	c.Start()
	utils.Logger.Info("Scheduled billing cron jobs")

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("parking-service failed to start:", err)
	}
}
