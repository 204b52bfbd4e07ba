package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Client holds the CLI configuration.
type Client struct {
	APIURL  string   `toml:"api_url"`
	Timeout duration `toml:"timeout"`
	Locale  string   `toml:"locale"` // BCP 47 tag used to format amounts in the terminal
}

// duration is a time.Duration read from strings like "30s".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultClient returns the default CLI configuration.
func DefaultClient() Client {
	return Client{
		APIURL:  "http://localhost:8080",
		Timeout: duration{30 * time.Second},
		Locale:  "en-IN",
	}
}

// ClientDir returns the XDG-compliant config directory.
func ClientDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spendlens")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "spendlens")
}

// ClientPath returns the full path to the config file.
func ClientPath() string {
	return filepath.Join(ClientDir(), "config.toml")
}

// LoadClient reads the config file at path, returning defaults if it doesn't
// exist. API_URL overrides the configured URL.
func LoadClient(path string) (Client, error) {
	cfg := DefaultClient()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	if apiURL, ok := os.LookupEnv("API_URL"); ok {
		cfg.APIURL = apiURL
	}

	return cfg, nil
}

// SaveClient writes the config to path.
func SaveClient(path string, cfg Client) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
