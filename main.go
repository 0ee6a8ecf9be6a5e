package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"mseui/audit"
	"mseui/auth"
	"mseui/bus"
	"mseui/config"
	"mseui/pages"
	"mseui/server"
	"mseui/sim"
)

var (
	configPath string
	auditDir   string
)

func main() {
	root := &cobra.Command{
		Use:   "mseui",
		Short: "Mirror support engineering UI server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "conf/config.ini", "configuration file")
	root.Flags().StringVar(&auditDir, "audit-dir", "log", "command audit log directory")

	token := &cobra.Command{
		Use:   "token <subject>",
		Short: "Issue a client token for the configured secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			verifier, err := auth.NewVerifier(cfg.Server.AuthSecret)
			if err != nil {
				return err
			}
			signed, err := verifier.Sign(args[0], nil)
			if err != nil {
				return err
			}
			fmt.Println(signed)
			return nil
		},
	}
	root.AddCommand(token)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	setupLogging(cfg.Log)

	b := bus.New()
	defer b.Close()

	set, err := pages.New(b, cfg.Charts.CacheSize)
	if err != nil {
		return err
	}

	verifier, err := auth.NewVerifier(cfg.Server.AuthSecret)
	if err != nil {
		return err
	}

	auditLog, err := audit.NewLogger(auditDir)
	if err != nil {
		return err
	}
	defer auditLog.Close()

	simulator := sim.New(b, cfg.Sim)
	simulator.Start()
	defer simulator.Stop()

	srv := server.NewServer(server.Options{
		Addr:           cfg.Server.Addr,
		WebDir:         cfg.Server.WebDir,
		PushInterval:   cfg.Charts.PushInterval,
		CommandTimeout: cfg.Server.CommandTimeout,
	}, b, set, simulator, verifier, auditLog)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.WithField("signal", sig).Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

func setupLogging(cfg config.LogConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if cfg.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		log.SetOutput(io.MultiWriter(os.Stderr, rotated))
	}
}
