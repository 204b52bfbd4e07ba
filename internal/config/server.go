// Package config reads the configuration of the server and the CLI client.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spendlens/backend/pkg/analysis"
	"github.com/spendlens/backend/pkg/effects"
)

var (
	ErrAPIURL    = errors.New("environment variable API_URL must be a valid URL")
	ErrEffectFPS = fmt.Errorf("environment variable EFFECT_FPS must be an integer between 1 and %d", effects.MaxFPS)
)

// Server is the configuration of the HTTP service.
type Server struct {
	APIURL           *url.URL
	DataDir          string
	Postgres         string // DSN of the PostgreSQL database, empty for SQLite
	CategoryRules    []analysis.Rule
	EffectFPS        int
	EnablePprof      bool
	CORSAllowOrigins []string
}

// LoadDotenv loads a .env file in the working directory into the environment
// if it exists. Variables that are already set are not overwritten.
func LoadDotenv() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Msg("no .env file found, using environment variables")
		return nil
	}
	return err
}

// FromEnv reads the server configuration from environment variables.
func FromEnv() (Server, error) {
	cfg := Server{
		DataDir:          getEnv("DATA_DIR", filepath.Join(".", "data")),
		CategoryRules:    analysis.DefaultRules,
		EffectFPS:        effects.DefaultFPS,
		EnablePprof:      os.Getenv("ENABLE_PPROF") == "true",
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
	}

	apiURL, err := url.Parse(getEnv("API_URL", "http://localhost:8080"))
	if err != nil || apiURL.Scheme == "" || apiURL.Host == "" {
		return Server{}, ErrAPIURL
	}
	cfg.APIURL = apiURL

	// If DB_HOST is set, use PostgreSQL
	if host, ok := os.LookupEnv("DB_HOST"); ok {
		cfg.Postgres = fmt.Sprintf("host=%s user=%s password=%s dbname=%s", host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
	}

	if path, ok := os.LookupEnv("CATEGORY_RULES"); ok {
		rules, err := analysis.LoadRules(path)
		if err != nil {
			return Server{}, err
		}
		cfg.CategoryRules = rules
	}

	if fps, ok := os.LookupEnv("EFFECT_FPS"); ok {
		n, err := strconv.Atoi(fps)
		if err != nil || n <= 0 || n > effects.MaxFPS {
			return Server{}, ErrEffectFPS
		}
		cfg.EffectFPS = n
	}

	return cfg, nil
}

// SQLitePath returns the path of the SQLite database file.
func (s Server) SQLitePath() string {
	return filepath.Join(s.DataDir, "spendlens.db")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
