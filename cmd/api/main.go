package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"server/internal/adapter/repo"
	"server/internal/http/handlers"
	"server/internal/http/httpapi"
	"server/internal/infra"
	"server/internal/infra/geoip"
	"server/internal/middleware"
	"server/internal/providers/chat"
	"server/internal/providers/momo"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	// GeoIP is optional; without a database donor countries stay empty.
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip database unavailable")
	}
	var lookup middleware.CountryLookup
	if resolver != nil {
		defer resolver.Close()
		lookup = resolver.CountryCode
	}

	app := &handlers.App{
		Logger:        logger,
		Donations:     repo.NewDonationRepository(dbpool),
		Allocation:    repo.NewAllocationRepository(dbpool),
		Impact:        repo.NewImpactUpdateRepository(dbpool),
		Courses:       repo.NewCourseRepository(dbpool),
		Opportunities: repo.NewOpportunityRepository(dbpool),
		Contact:       repo.NewContactRepository(dbpool),
		Users:         repo.NewUserRepository(dbpool),
		MoMo: momo.NewClient(momo.Options{
			BaseURL:         cfg.MoMoBaseURL,
			SubscriptionKey: cfg.MoMoSubscriptionKey,
			AccessToken:     cfg.MoMoAccessToken,
			TargetEnv:       cfg.MoMoTargetEnv,
			Currency:        cfg.MoMoCurrency,
			CallbackURL:     cfg.MoMoCallbackURL,
		}),
		Chat: chat.NewClient(chat.Options{
			APIKey:     cfg.OpenAIAPIKey,
			Model:      cfg.OpenAIModel,
			SystemRole: cfg.ChatSystemRole,
			MaxTokens:  cfg.ChatMaxTokens,
		}),
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      cfg.TokenTTL,
		RecentDonors:  cfg.DashboardDonors,
		ImpactUpdates: cfg.DashboardPosts,
		ReportWindow:  cfg.ReportWindow,
	}

	router := httpapi.NewRouter(app, cfg, lookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
