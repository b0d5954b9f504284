package main

import (
	"context"
	"errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/weather-dashboard/config"
	"ulascansenturk/weather-dashboard/internal/api/v1/handlers"
	"ulascansenturk/weather-dashboard/internal/dashboard"
	"ulascansenturk/weather-dashboard/internal/db"
	"ulascansenturk/weather-dashboard/internal/db/weatherlookup"
	"ulascansenturk/weather-dashboard/internal/providers"
	"ulascansenturk/weather-dashboard/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	var lookupRepo weatherlookup.Repository
	if conf.LookupLogEnabled() {
		gormDB, dbErr := db.Open(conf)
		if dbErr != nil {
			logger.Fatal().Err(dbErr).Str("driver", conf.DBDriver).Msg("failed to initialize database")
		}
		lookupRepo = weatherlookup.NewRepository(gormDB)
		logger.Info().Str("driver", conf.DBDriver).Msg("lookup log enabled")
	}

	weatherClient := providers.NewOpenMeteoClient(conf.OpenMeteoBaseURL)
	weatherService := service.NewWeatherService(weatherClient, lookupRepo)

	renderer, err := dashboard.NewRenderer()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load dashboard templates")
	}

	handler := handlers.NewWeatherHandler(
		weatherService,
		renderer,
		conf.HTTPTimeoutDuration(),
		handlers.WithLimits(dashboard.Limits{ChartRows: conf.ChartRows, TableRows: conf.TableRows}),
		handlers.WithMapSettings(dashboard.MapSettings{
			CenterLat: conf.MapCenterLat,
			CenterLon: conf.MapCenterLon,
			Zoom:      conf.MapZoom,
		}),
	)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	if serverErr := runServer(httpServer); serverErr != nil {
		log.Fatal().Err(serverErr).Str("address", conf.ServerAddress).Msg("server failed")
	}
	log.Info().Msg("server stopped")
	<-ctx.Done()
}

// runServer blocks until the server stops. A graceful shutdown returns nil.
func runServer(srv *http.Server) error {
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
