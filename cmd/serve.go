package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"leadhunter/internal/api"
	"leadhunter/internal/api/handler/v1handler"
	"leadhunter/internal/config"
	"leadhunter/internal/hunter"
	"leadhunter/internal/hunter/pipeline"
	"leadhunter/internal/verifier"
	"leadhunter/internal/worker"
	"leadhunter/pkg/browser/rodbrowser"
	"leadhunter/pkg/logger"
	"leadhunter/pkg/search/duckduckgo"
	"leadhunter/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, hunterSvc hunter.Hunter) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{Hunter: hunterSvc},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorker(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) func(ctx context.Context) {
	launcher, err := rodbrowser.New(rodbrowser.Options{
		Headless:  cfg.Browser.Headless,
		UserAgent: cfg.Browser.UserAgent,
	})
	if err != nil {
		logger.Fatal(ctx, "could not launch browser", zap.Error(err))
	}

	hunterWorker := worker.NewDomainHunterWorker(
		strg,
		launcher,
		duckduckgo.New(nil, cfg.Browser.UserAgent),
		verifier.New(nil, nil, verifier.Options{
			SessionTimeout: cfg.Verifier.SessionTimeout,
			HelloName:      cfg.Verifier.HelloName,
			FromEmail:      cfg.Verifier.FromEmail,
		}),
		worker.Options{
			Pipeline: pipeline.Options{
				PageTimeout:             cfg.Hunter.PageTimeout,
				MaxContactPages:         cfg.Hunter.MaxContactPages,
				ProfileFloor:            cfg.Hunter.ProfileFloor,
				ProfileCeiling:          cfg.Hunter.ProfileCeiling,
				QueryInterval:           cfg.Hunter.QueryInterval,
				ShortPermutations:       cfg.Hunter.ShortPermutations,
				VerifyShortPermutations: cfg.Verifier.VerifyShortPermutations,
			},
			MaxAttempts: cfg.Hunter.MaxAttempts,
			MaxWorkers:  cfg.Hunter.MaxWorkers,
		},
	)

	riverClient, err := worker.Start(ctx, strg.Pool, hunterWorker)
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}

		logger.Info(ctx, "closing browser...")
		if err := launcher.Close(); err != nil {
			logger.Error(ctx, "could not close browser", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			hunterSvc := hunter.New(strg, hunter.NewOptions(cfg))

			stopWebserver := setupServer(ctx, cfg, hunterSvc)
			stopWorkers := setupWorker(ctx, cfg, strg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
		},
	}

	return cmd
}
