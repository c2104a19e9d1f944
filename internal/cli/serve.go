package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nsqio/go-nsq"
	"github.com/spf13/cobra"

	"github.com/bestfranklinAI/web-scraper-future-studies/internal/app"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/config"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the optimizer worker",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.New(os.Stdout)
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := app.Bootstrap(ctx, cfg)
	if err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}
	defer deps.DB.Close()
	defer deps.NSQProducer.Stop()

	application, err := app.New(cfg, deps.DB, deps.NSQProducer, log)
	if err != nil {
		return fmt.Errorf("failed to build app: %w", err)
	}

	if cfg.EnableOptimizerWorker {
		consumer, err := nsq.NewConsumer(config.TopicOptimizeTask, config.ChannelOptimizer, nsq.NewConfig())
		if err != nil {
			return fmt.Errorf("failed to create NSQ consumer: %w", err)
		}
		consumer.AddConcurrentHandlers(nsq.HandlerFunc(func(m *nsq.Message) error {
			return application.OptimizeConsumer.HandleMessage(m)
		}), cfg.OptimizeConcurrency)

		if err := consumer.ConnectToNSQLookupd(cfg.NSQLookupd); err != nil {
			return fmt.Errorf("failed to connect to NSQLookupd: %w", err)
		}
		defer consumer.Stop()
		log.Info("optimizer worker connected", "topic", config.TopicOptimizeTask, "concurrency", cfg.OptimizeConcurrency)
	}

	if !cfg.EnableAPI {
		log.Info("api disabled, running worker only")
		<-ctx.Done()
		return nil
	}

	return application.Run(ctx)
}
