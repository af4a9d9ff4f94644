package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/retail/backend/internal/application/bookkeeping"
	appinventory "github.com/retail/backend/internal/application/inventory"
	apppurchasing "github.com/retail/backend/internal/application/purchasing"
	appsales "github.com/retail/backend/internal/application/sales"
	"github.com/retail/backend/internal/infrastructure/cache"
	"github.com/retail/backend/internal/infrastructure/config"
	"github.com/retail/backend/internal/infrastructure/logger"
	"github.com/retail/backend/internal/infrastructure/persistence"
	"github.com/retail/backend/internal/interfaces/http/handler"
	"github.com/retail/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("Server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(); err != nil {
		return err
	}
	log.Info("Database ready", zap.String("driver", cfg.Database.Driver))

	chartCache, err := newChartCache(cfg, log)
	if err != nil {
		return err
	}

	// repositories
	accounts := persistence.NewGormAccountRepository(db.DB)
	journal := persistence.NewGormJournalEntryRepository(db.DB)
	products := persistence.NewGormProductRepository(db.DB)
	categories := persistence.NewGormCategoryRepository(db.DB)
	customers := persistence.NewGormCustomerRepository(db.DB)
	suppliers := persistence.NewGormSupplierRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	orders := persistence.NewGormPurchaseOrderRepository(db.DB)
	invoices := persistence.NewGormSupplierInvoiceRepository(db.DB)
	stockTakes := persistence.NewGormStockTakeRepository(db.DB)
	auditLogs := persistence.NewGormAuditLogRepository(db.DB)

	// services
	charts := bookkeeping.NewChartService(accounts, categories, chartCache, log)
	recorder := bookkeeping.NewRecorder(bookkeeping.NewPoster(log), log)
	saleService := appsales.NewSaleService(persistence.NewGormSalesTransactionScope(db.DB), charts, recorder, log)
	purchaseService := apppurchasing.NewPurchaseService(persistence.NewGormPurchasingTransactionScope(db.DB), charts, recorder, log)
	stockService := appinventory.NewStockService(persistence.NewGormInventoryTransactionScope(db.DB), charts, recorder, log)

	// http
	r := router.New(log)
	r.Register(
		handler.NewAccountHandler(charts, journal, log),
		handler.NewCatalogHandler(products, categories, charts, log),
		handler.NewPartnerHandler(customers, suppliers, log),
		handler.NewSaleHandler(saleService, saleRepo, log),
		handler.NewPurchaseHandler(purchaseService, orders, invoices, log),
		handler.NewInventoryHandler(stockService, stockTakes, log),
		handler.NewAuditHandler(auditLogs, log),
	)
	handler.NewSystemHandler(db).RegisterRoutes(r.Engine())

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r.Engine(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

func newChartCache(cfg *config.Config, log *zap.Logger) (bookkeeping.ChartCache, error) {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryChartCache(cfg.Chart.CacheTTL), nil
	}
	redisCache, err := cache.NewRedisChartCache(cache.RedisConfig{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, cfg.Chart.CacheTTL)
	if err != nil {
		return nil, err
	}
	log.Info("Chart snapshot cache backed by Redis", zap.String("addr", cfg.Redis.Addr()))
	return redisCache, nil
}
