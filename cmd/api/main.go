package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pharmadesk/pharmacy-api/internal/config"
	billingHandler "github.com/pharmadesk/pharmacy-api/internal/handler/billing"
	dashboardHandler "github.com/pharmadesk/pharmacy-api/internal/handler/dashboard"
	doctorHandler "github.com/pharmadesk/pharmacy-api/internal/handler/doctor"
	drugHandler "github.com/pharmadesk/pharmacy-api/internal/handler/drug"
	employeeHandler "github.com/pharmadesk/pharmacy-api/internal/handler/employee"
	healthHandler "github.com/pharmadesk/pharmacy-api/internal/handler/health"
	patientHandler "github.com/pharmadesk/pharmacy-api/internal/handler/patient"
	pharmacyHandler "github.com/pharmadesk/pharmacy-api/internal/handler/pharmacy"
	"github.com/pharmadesk/pharmacy-api/internal/repository/postgres"
	"github.com/pharmadesk/pharmacy-api/internal/router"
	billingService "github.com/pharmadesk/pharmacy-api/internal/service/billing"
	dashboardService "github.com/pharmadesk/pharmacy-api/internal/service/dashboard"
	doctorService "github.com/pharmadesk/pharmacy-api/internal/service/doctor"
	drugService "github.com/pharmadesk/pharmacy-api/internal/service/drug"
	employeeService "github.com/pharmadesk/pharmacy-api/internal/service/employee"
	patientService "github.com/pharmadesk/pharmacy-api/internal/service/patient"
	pharmacyService "github.com/pharmadesk/pharmacy-api/internal/service/pharmacy"
)

func main() {
	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	patientRepo := postgres.NewPatientRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	pharmacyRepo := postgres.NewPharmacyRepository(db)
	drugRepo := postgres.NewDrugRepository(db)
	employeeRepo := postgres.NewEmployeeRepository(db)
	billRepo := postgres.NewBillRepository(db)
	prescriptionRepo := postgres.NewPrescriptionRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	// Services
	patientSvc := patientService.NewService(patientRepo)
	doctorSvc := doctorService.NewService(doctorRepo)
	pharmacySvc := pharmacyService.NewService(pharmacyRepo)
	drugSvc := drugService.NewService(drugRepo)
	employeeSvc := employeeService.NewService(employeeRepo)
	billingSvc := billingService.NewService(billRepo, prescriptionRepo)
	dashboardSvc := dashboardService.NewService(statsRepo, billRepo)

	// Router and handlers
	r := router.NewRouter(cfg,
		healthHandler.NewHandler(db),
		patientHandler.NewHandler(patientSvc),
		doctorHandler.NewHandler(doctorSvc),
		pharmacyHandler.NewHandler(pharmacySvc),
		drugHandler.NewHandler(drugSvc),
		employeeHandler.NewHandler(employeeSvc),
		billingHandler.NewHandler(billingSvc),
		dashboardHandler.NewHandler(dashboardSvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
