package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/sarops/medic-api/internal/agent"
	"github.com/sarops/medic-api/internal/config"
	"github.com/sarops/medic-api/internal/handler"
	operationsHandler "github.com/sarops/medic-api/internal/handler/operations"
	patientHandler "github.com/sarops/medic-api/internal/handler/patient"
	supplyHandler "github.com/sarops/medic-api/internal/handler/supply"
	teamHealthHandler "github.com/sarops/medic-api/internal/handler/teamhealth"
	"github.com/sarops/medic-api/internal/model"
	"github.com/sarops/medic-api/internal/notify"
	"github.com/sarops/medic-api/internal/repository/memory"
	"github.com/sarops/medic-api/internal/router"
	fieldService "github.com/sarops/medic-api/internal/service/field"
	healthService "github.com/sarops/medic-api/internal/service/health"
	patientService "github.com/sarops/medic-api/internal/service/patient"
	supplyService "github.com/sarops/medic-api/internal/service/supply"
	transportService "github.com/sarops/medic-api/internal/service/transport"
	triageService "github.com/sarops/medic-api/internal/service/triage"
	"github.com/sarops/medic-api/pkg/logger"
	"github.com/sarops/medic-api/pkg/messaging"
	redisbroker "github.com/sarops/medic-api/pkg/messaging/redis"
	"github.com/sarops/medic-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	m := metrics.New("medic_api", prometheus.DefaultRegisterer)

	// Message broker: Redis when configured, no-op otherwise.
	var broker messaging.Broker = messaging.NewNoopBroker()
	if cfg.Redis.URL != "" {
		zl := log.Zerolog()
		redisBroker, err := redisbroker.NewRedisBroker(redisbroker.Config{
			URL:          cfg.Redis.URL,
			MaxRetries:   3,
			RetryBackoff: 100 * time.Millisecond,
			PoolSize:     10,
			MinIdleConns: 2,
		}, zl)
		if err != nil {
			log.Fatal(err, "failed to connect to Redis")
		}
		broker = redisBroker
	}
	defer broker.Close()

	// In-memory state seeded with field defaults.
	patientRepo := memory.NewPatientRepository()
	inventoryRepo := memory.NewInventoryRepository(model.DefaultInventory(), model.DefaultReorderThresholds())
	teamHealthRepo := memory.NewTeamHealthRepository(model.DefaultTeamHealth())

	var mailer *notify.Mailer
	if cfg.SMTP.Host != "" {
		mailer = notify.NewMailer(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Username,
			cfg.SMTP.Password,
			cfg.SMTP.From,
			cfg.SMTP.LogisticsContact,
		)
	}
	procurement := notify.NewProcurement(log, broker, mailer, m)

	oracle := transportService.NewCachedOracle(transportService.StaticOracle{}, 30*time.Second)

	svc := agent.Services{
		Triage:    triageService.NewService(patientRepo, log, m),
		Transport: transportService.NewService(patientRepo, oracle, broker, log),
		Supply:    supplyService.NewService(inventoryRepo, procurement, log, m),
		Health:    healthService.NewService(teamHealthRepo, log),
		Field:     fieldService.NewService(),
		Patients:  patientService.NewService(patientRepo, broker, log, m),
	}

	leader := agent.NewMedicalTeamLeader(svc, log, m)

	h := handler.NewHandler(prometheus.DefaultGatherer)
	opsH := operationsHandler.NewHandler(leader)
	patientH := patientHandler.NewHandler(svc.Patients)
	supplyH := supplyHandler.NewHandler(svc.Supply, procurement)
	teamHealthH := teamHealthHandler.NewHandler(svc.Health)

	r := router.NewRouter(opsH, patientH, supplyH, teamHealthH, h, router.Config{
		RateLimit:     rate.Limit(cfg.RateLimit.RPS),
		RateBurst:     cfg.RateLimit.Burst,
		MetricsPrefix: "medic_api_http",
		Registerer:    prometheus.DefaultRegisterer,
	})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "server forced to shutdown")
	}

	log.Info("server exited")
}
