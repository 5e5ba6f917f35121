package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/refinery-lab/groomctl/pkg/cli/config"
	controller "github.com/refinery-lab/groomctl/pkg/controller/http"
	"github.com/refinery-lab/groomctl/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		firestoreCfg config.Firestore
		rubricCfg    config.Rubric
		slackCfg     config.Slack
	)

	flags := joinFlags(
		serverCfg.Flags(),
		firestoreCfg.Flags(),
		rubricCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the grooming API server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting groomctl server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("firestore", firestoreCfg),
				slog.Any("rubric", rubricCfg),
				slog.Any("slack", slackCfg),
			)

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			rubric, err := rubricCfg.Configure()
			if err != nil {
				return err
			}

			reviewUC, err := usecase.NewReview(repo, rubric)
			if err != nil {
				return goerr.Wrap(err, "failed to create review use case")
			}

			var notifyUC *usecase.NotifyUseCase
			if slackClient := slackCfg.ConfigureOptional(logger); slackClient != nil {
				notifyUC, err = usecase.NewNotify(slackClient, slackCfg.Channel)
				if err != nil {
					return goerr.Wrap(err, "failed to create notify use case")
				}
			}

			server := controller.NewServer(ctx, serverCfg.Addr, reviewUC, notifyUC)

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
