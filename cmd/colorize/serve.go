package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/icubam/bedmap-colorize/pkg/config"
	"github.com/icubam/bedmap-colorize/pkg/logger"
	"github.com/icubam/bedmap-colorize/pkg/service"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	var flags colorFlags
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the colorizer over HTTP for the dashboard tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			opts, err := flags.options(cmd, cfg)
			if err != nil {
				return err
			}

			level, err := logger.ParseLevel(cmd.Flag("log-level").Value.String())
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v, defaulting to INFO\n", err)
			}

			var logF *os.File
			var output io.Writer = os.Stdout
			if !toStdout {
				f, err := openLogFile(cfg.LogFile)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v. Logging to stdout.\n", cfg.LogFile, err)
				} else {
					logF = f
					output = f
				}
			}
			slog.SetDefault(slog.New(logger.New(output, level)))

			s := service.New(cfg.ServiceHost, cfg.ServicePort, opts)
			errChan := make(chan error, 1)
			go func() {
				if err := s.Start(); err != nil && err != http.ErrServerClosed {
					errChan <- err
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			for {
				select {
				case err := <-errChan:
					slog.Error("Service failed", "error", err)
					return err
				case sig := <-sigChan:
					switch sig {
					case syscall.SIGHUP:
						if logF == nil {
							continue
						}
						newF, err := openLogFile(cfg.LogFile)
						if err != nil {
							slog.Error("Failed to rotate log", "error", err)
							continue
						}
						_ = logF.Close()
						logF = newF
						slog.SetDefault(slog.New(logger.New(logF, level)))
						slog.Info("Log file rotated")
					default:
						slog.Info("Shutting down service...")
						ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
						defer cancel()
						if err := s.Shutdown(ctx); err != nil {
							slog.Error("Shutdown error", "error", err)
						}
						if logF != nil {
							_ = logF.Close()
						}
						return nil
					}
				}
			}
		},
	}
	flags.register(cmd, cfg)
	cmd.Flags().StringVar(&cfg.ServiceHost, "host", cfg.ServiceHost, "HTTP service host")
	cmd.Flags().IntVar(&cfg.ServicePort, "port", cfg.ServicePort, "HTTP service port")
	cmd.Flags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Path to log file")
	cmd.Flags().BoolVar(&cfg.InsecureAllowRemote, "insecure-allow-remote", cfg.InsecureAllowRemote, "Allow binding to a non-localhost address")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Log to stdout")
	return cmd
}

func openLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}
