// Package cmd holds the spendlens command line interface.
package cmd

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spendlens/backend/internal/config"
	"github.com/spendlens/backend/pkg/client"
	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagAPIURL string
)

var rootCmd = &cobra.Command{
	Use:           "spendlens",
	Short:         "Dashboard for the spending found in bank statements",
	Long:          "Upload bank statement CSVs, view where the money goes, and check if a savings goal can be reached.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		log.Error().Msg(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", config.ClientPath(), "Client configuration file")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "URL of the spendlens API, overrides the configuration")

	setupLogging(os.Stderr)
}

// setupLogging configures the global logger.
//
// The log format can be explicitly set with LOG_FORMAT. If it is not set,
// it defaults to human readable for development and JSON for release.
func setupLogging(w io.Writer) {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(ginMode)
	}

	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := w
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: w}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}

// loadClient returns the client configuration and an API client for it.
func loadClient() (config.Client, *client.Client, error) {
	cfg, err := config.LoadClient(flagConfig)
	if err != nil {
		return config.Client{}, nil, err
	}

	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
	}

	return cfg, client.New(cfg.APIURL, &http.Client{Timeout: cfg.Timeout.Duration}), nil
}
