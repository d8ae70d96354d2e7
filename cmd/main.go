package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/tyrehub/appointment-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/tyrehub/appointment-service/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/tyrehub/appointment-service/internal/api/handlers/get_appointment"
	getBranchesHandler "github.com/tyrehub/appointment-service/internal/api/handlers/get_branches"
	getServicesHandler "github.com/tyrehub/appointment-service/internal/api/handlers/get_services"
	getSlotsHandler "github.com/tyrehub/appointment-service/internal/api/handlers/get_slots"
	validateVoucherHandler "github.com/tyrehub/appointment-service/internal/api/handlers/validate_voucher"
	wizardHandler "github.com/tyrehub/appointment-service/internal/api/handlers/wizard"
	"github.com/tyrehub/appointment-service/internal/api/middleware"
	"github.com/tyrehub/appointment-service/internal/config"
	"github.com/tyrehub/appointment-service/internal/infra/session"
	appointmentRepo "github.com/tyrehub/appointment-service/internal/infra/storage/appointment"
	branchRepo "github.com/tyrehub/appointment-service/internal/infra/storage/branch"
	catalogRepo "github.com/tyrehub/appointment-service/internal/infra/storage/catalog"
	voucherRepo "github.com/tyrehub/appointment-service/internal/infra/storage/voucher"
	appointmentsService "github.com/tyrehub/appointment-service/internal/service/appointments"
	vouchersService "github.com/tyrehub/appointment-service/internal/service/vouchers"
	createAppointmentUC "github.com/tyrehub/appointment-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/tyrehub/appointment-service/internal/usecase/get_available_slots"
	wizardSessionUC "github.com/tyrehub/appointment-service/internal/usecase/wizard_session"
	"github.com/tyrehub/appointment-service/pkg/dbmetrics"
	"github.com/tyrehub/appointment-service/pkg/logger"
	"github.com/tyrehub/appointment-service/pkg/metrics"
	"github.com/tyrehub/appointment-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting appointment-service...")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Postgres
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Redis session store
	redisClient := session.NewClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize)
	defer redisClient.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := session.Ping(pingCtx, redisClient); err != nil {
		cancelPing()
		log.Fatal("Failed to ping redis: %v", err)
	}
	cancelPing()
	log.Info("Connected to redis (address=%s)", cfg.Redis.Address)

	sessionStore := session.NewStore(redisClient, time.Duration(cfg.Wizard.SessionTTL)*time.Second)

	// Repositories, with or without query metrics
	var (
		appointmentRepository *appointmentRepo.Repository
		branchRepository      *branchRepo.Repository
		catalogRepository     *catalogRepo.Repository
		voucherRepository     *voucherRepo.Repository
		txMgr                 *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.Wrap(db, metricsCollector)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		branchRepository = branchRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		voucherRepository = voucherRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		branchRepository = branchRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		voucherRepository = voucherRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(db)
	}

	// Services
	voucherSvc := vouchersService.New(voucherRepository, &vouchersService.RealTimeProvider{}, log)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		branchRepository,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		branchRepository,
		catalogRepository,
		voucherSvc,
		txMgr,
		log,
	)

	wizardSessionUseCase := wizardSessionUC.NewUseCase(
		sessionStore,
		branchRepository,
		catalogRepository,
		getAvailableSlotsUseCase,
		createAppointmentUseCase,
		&wizardSessionUC.RealTimeProvider{},
		log,
	)

	// Handlers
	getBranches := getBranchesHandler.NewHandler(branchRepository, log)
	getServices := getServicesHandler.NewHandler(catalogRepository, log)
	getSlots := getSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	validateVoucher := validateVoucherHandler.NewHandler(voucherSvc, log)
	wizard := wizardHandler.NewHandler(wizardSessionUseCase, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Reference data
	api.HandleFunc("/branches", getBranches.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/branches/{branchId}/slots", getSlots.Handle).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Vouchers
	api.HandleFunc("/vouchers/{code}", validateVoucher.Handle).Methods(http.MethodGet)

	// Booking wizard sessions
	api.HandleFunc("/wizard/sessions", wizard.Start).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{sessionId}", wizard.Get).Methods(http.MethodGet)
	api.HandleFunc("/wizard/sessions/{sessionId}/advance", wizard.Advance).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{sessionId}/back", wizard.Back).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{sessionId}/submit", wizard.Submit).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{sessionId}/reset", wizard.Reset).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
