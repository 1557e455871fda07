package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arthurssantosibm/api-client/internal/adapter/http/controller"
	"github.com/arthurssantosibm/api-client/internal/adapter/http/middleware"
	"github.com/arthurssantosibm/api-client/internal/adapter/http/router"
	"github.com/arthurssantosibm/api-client/internal/adapter/repository/postgres"
	"github.com/arthurssantosibm/api-client/internal/config"
	"github.com/arthurssantosibm/api-client/internal/metrics"
	"github.com/arthurssantosibm/api-client/internal/token"
	"github.com/arthurssantosibm/api-client/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.RunMigrations(ctx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, err := postgres.Open(ctx, cfg.DatabaseDSN, cfg.PoolSize)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	collector := metrics.NewCollector()
	issuer := token.NewIssuer(cfg.TokenSecret, cfg.TokenTTL)

	accountRepo := postgres.NewAccountRepository(db)
	movementRepo := postgres.NewMovementRepository(db)
	investmentRepo := postgres.NewInvestmentRepository(db)

	accountService := services.NewAccountService(accountRepo, services.PlaintextCodec{}, issuer)
	movementService := services.NewMovementService(movementRepo, collector)
	investmentService := services.NewInvestmentService(investmentRepo)

	mux := router.New(
		controller.NewUserController(accountService),
		controller.NewMovementController(movementService),
		controller.NewInvestmentController(investmentService),
		middleware.InternalKey(cfg.InternalKey),
		middleware.UserAuth(issuer),
		collector.Handler(),
	)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           middleware.RequestTimeout(cfg.RequestTimeout)(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve http: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown http server: %v", err)
	}
}
