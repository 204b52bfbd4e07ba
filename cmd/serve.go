package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spendlens/backend/internal/config"
	"github.com/spendlens/backend/pkg/models"
	"github.com/spendlens/backend/pkg/router"
	"github.com/spf13/cobra"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API and web frontend",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&flagAddr, "addr", "a", ":8080", "Address to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadServerConfig(os.Stdout)
	if err != nil {
		return err
	}

	// Create data directory
	err = os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		return err
	}

	// Connect to the database
	if cfg.Postgres != "" {
		log.Debug().Msg("using PostgreSQL")
		err = models.ConnectPostgres(cfg.Postgres)
	} else {
		log.Debug().Str("path", cfg.SQLitePath()).Msg("using SQLite")
		err = models.Connect(cfg.SQLitePath())
	}
	if err != nil {
		return err
	}

	r, teardown, err := router.Config(cfg.APIURL)
	if err != nil {
		return err
	}
	defer teardown()

	router.AttachRoutes(r.Group("/"))

	log.Info().Str("addr", flagAddr).Msg("listening")
	return r.Run(flagAddr)
}

// loadServerConfig loads the .env file and sets up logging with the
// variables it contains before reading the server configuration.
func loadServerConfig(w io.Writer) (config.Server, error) {
	if err := config.LoadDotenv(); err != nil {
		setupLogging(w)
		return config.Server{}, fmt.Errorf("could not load .env file: %w", err)
	}

	setupLogging(w)
	return config.FromEnv()
}
