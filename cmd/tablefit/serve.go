package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/tablefit/tablefit/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reformatting HTTP service",
	RunE:  runServe,
}

var (
	serveAddr   string
	serveConfig string
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config file)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "tablefit.yaml", "Path to YAML config file")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := web.LoadConfig(serveConfig)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Listen = serveAddr
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	handler := web.NewHandler(web.Options{
		MaxWidth:      cfg.MaxWidth,
		RatePerSecond: cfg.RatePerSecond,
		RateBurst:     cfg.RateBurst,
		Logger:        logger,
	})

	logger.Info("listening", "addr", cfg.Listen)
	return http.ListenAndServe(cfg.Listen, handler)
}
