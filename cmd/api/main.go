package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/restaurant-backoffice/internal/config"
	"github.com/restaurant-backoffice/internal/database"
	"github.com/restaurant-backoffice/internal/handler"
	"github.com/restaurant-backoffice/internal/repository"
	"github.com/restaurant-backoffice/internal/service"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключение к БД
	db, err := database.Open(ctx, cfg.Database, gormlogger.Warn)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := database.Migrate(db, cfg.Database.Driver, logger); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация репозиториев
	customerRepo := repository.NewCustomerRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	tableRepo := repository.NewTableRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	orderRepo := repository.NewOrderRepository(db, cfg.Billing.TaxRate)
	reportRepo := repository.NewReportRepository(db)

	// Инициализация сервисов
	now := service.Clock(time.Now)
	customerService := service.NewCustomerService(customerRepo)
	empService := service.NewEmployeeService(empRepo)
	shiftService := service.NewShiftService(shiftRepo, empRepo)
	tableService := service.NewTableService(tableRepo)
	menuService := service.NewMenuService(menuRepo)
	reservationService := service.NewReservationService(reservationRepo, customerRepo, tableRepo, now, logger)
	orderService := service.NewOrderService(orderRepo, empRepo, customerRepo, tableRepo, now, logger)
	reportService := service.NewReportService(reportRepo, now)

	// Настройка роутера
	router := handler.NewRouter(handler.Handlers{
		Orders:    handler.NewOrderHandler(orderService, logger),
		Customers: handler.NewCustomerHandler(customerService, logger),
		Staff:     handler.NewStaffHandler(empService, shiftService, logger),
		Floor:     handler.NewFloorHandler(tableService, reservationService, logger),
		Menu:      handler.NewMenuHandler(menuService, logger),
		Reports:   handler.NewReportHandler(reportService, logger),
	}, logger)

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		logger.Info("server is shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting",
		slog.String("port", cfg.Server.Port),
		slog.String("driver", cfg.Database.Driver),
		slog.String("tax_rate", cfg.Billing.TaxRate.String()),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}
