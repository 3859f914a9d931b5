package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"channel_importer/internal/domain"
	"channel_importer/internal/progress"
	"channel_importer/internal/queue"
	"channel_importer/internal/scheduler"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "importer",
	Short:        "Import YouTube channels, their videos and transcripts",
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")
	rootCmd.AddCommand(serveCmd(), importCmd(), cronCmd(), workerCmd())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the admin and cron HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), configPath, os.Stdout)
			if err != nil {
				return err
			}
			defer a.Close()

			err = a.server().ListenAndServe(cmd.Context())

			a.logger.Info("waiting for background imports")
			a.runner.Wait()
			return err
		},
	}
}

func importCmd() *cobra.Command {
	var req domain.ImportRequest
	var tenantID int64

	cmd := &cobra.Command{
		Use:   "import <handle>",
		Short: "Import one channel and stream progress to stdout as NDJSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout carries the progress stream.
			a, err := newApp(cmd.Context(), configPath, os.Stderr)
			if err != nil {
				return err
			}
			defer a.Close()

			req.Handle = args[0]
			if cmd.Flags().Changed("tenant") {
				req.TenantID = &tenantID
			}

			_, err = a.importer.Import(cmd.Context(), req, progress.NewStreamSink(os.Stdout))
			return err
		},
	}

	f := cmd.Flags()
	f.IntVar(&req.Limit, "limit", 0, "videos to process (1-5000, default from config)")
	f.Int64Var(&tenantID, "tenant", 0, "tenant to assign a newly created channel to")
	f.BoolVar(&req.IncludeLive, "include-live", false, "include live and completed live streams")
	f.BoolVar(&req.SkipTranscripts, "skip-transcripts", false, "import videos without transcripts")
	f.BoolVar(&req.TranscriptsOnly, "transcripts-only", false, "only backfill missing transcripts")
	f.BoolVar(&req.NativeOnly, "native-only", false, "only accept existing captions")
	f.BoolVar(&req.GenerateEmbeddings, "embeddings", false, "queue embedding generation for new transcripts")
	f.BoolVar(&req.ForceAssetRefresh, "force-assets", false, "re-upload channel thumbnail and banner")

	return cmd
}

func cronCmd() *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "cron",
		Short: "Periodically import all active channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), configPath, os.Stdout)
			if err != nil {
				return err
			}
			defer a.Close()

			if once {
				m, err := a.runner.Sweep(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), m)
			}

			// The sweep stops itself at the budget; the timeout only catches hangs.
			sched := scheduler.NewScheduler("sweep", a.runner, a.cfg.Cron.Interval, 2*a.cfg.Cron.Budget, a.logger)
			return ignoreCanceled(sched.Start(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "run a single sweep and exit")
	return cmd
}

func workerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Consume embedding tasks and reconcile pending transcript jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, configPath, os.Stdout)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.queue == nil {
				return errors.New("worker requires rabbitmq")
			}

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			errCh := make(chan error, 2)
			go func() {
				errCh <- a.queue.Consume(ctx, queue.Handler(a.embeddingWorker().Handle))
			}()
			go func() {
				sched := scheduler.NewScheduler("reconcile", a.reconciler, a.cfg.Cron.ReconcileEvery, a.cfg.Cron.ReconcileEvery, a.logger)
				errCh <- sched.Start(ctx)
			}()

			err = <-errCh
			cancel()
			<-errCh
			return ignoreCanceled(err)
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func setupLogger(level string, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}
