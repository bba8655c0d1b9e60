package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"shopfront/internal/config"
	"shopfront/internal/db"
	"shopfront/internal/format"
	"shopfront/internal/httpserver"
	"shopfront/internal/imagelink"
	"shopfront/internal/logging"
	cartrepo "shopfront/internal/repository/cart"
	cartrulerepo "shopfront/internal/repository/cartrule"
	countryrepo "shopfront/internal/repository/country"
	currencyrepo "shopfront/internal/repository/currency"
	customerrepo "shopfront/internal/repository/customer"
	languagerepo "shopfront/internal/repository/language"
	"shopfront/internal/service/cartinfo"
)

func main() {
	logger := logging.New(logging.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	logger = logging.New(logging.Options{
		ServiceName: "api",
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to db")
	}
	defer dbpool.Close()

	formatter, err := format.NewCurrencyFormatter(cfg.DisplayLocale)
	if err != nil {
		logger.Fatal().Err(err).Str("locale", cfg.DisplayLocale).Msg("init currency formatter")
	}
	images := imagelink.NewBuilder(cfg.ImageBaseURL)

	cartInfoService := cartinfo.New(cartinfo.Deps{
		Carts:             cartrepo.NewPostgres(dbpool, formatter, logger),
		Customers:         customerrepo.NewPostgres(dbpool),
		Countries:         countryrepo.NewPostgres(dbpool),
		Currencies:        currencyrepo.NewPostgres(dbpool),
		Languages:         languagerepo.NewPostgres(dbpool),
		Rules:             cartrulerepo.NewPostgres(dbpool),
		Formatter:         formatter,
		Images:            images,
		DefaultLanguageID: cfg.DefaultLanguageID,
	})

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CartInfo: cartInfoService,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	logger.Info().Msg("server stopped")
}
