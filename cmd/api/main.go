package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/scaffold-rental-service/internal/api/http"
	"github.com/spec-kit/scaffold-rental-service/internal/api/http/handlers"
	"github.com/spec-kit/scaffold-rental-service/internal/auth"
	"github.com/spec-kit/scaffold-rental-service/internal/config"
	"github.com/spec-kit/scaffold-rental-service/internal/events"
	"github.com/spec-kit/scaffold-rental-service/internal/observability"
	"github.com/spec-kit/scaffold-rental-service/internal/persistence"
	"github.com/spec-kit/scaffold-rental-service/internal/repository"
	"github.com/spec-kit/scaffold-rental-service/internal/service"
	"github.com/spec-kit/scaffold-rental-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	pool := pg.PoolHandle()
	addressRepo := repository.NewAddressRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(dispatcher, logger)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)

	customerService := service.NewCustomerService(service.CustomerDependencies{
		CustomerRepo: customerRepo,
		AddressRepo:  addressRepo,
		Dispatcher:   dispatcher,
	})
	employeeService := service.NewEmployeeService(*cfg, service.EmployeeDependencies{
		EmployeeRepo: employeeRepo,
		AddressRepo:  addressRepo,
		Dispatcher:   dispatcher,
		TokenManager: tokenManager,
	})

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, *cfg)

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg)
	customersHandler := handlers.NewCustomersHandler(customerService)
	employeesHandler := handlers.NewEmployeesHandler(employeeService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    healthHandler,
		Customers: customersHandler,
		Employees: employeesHandler,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
