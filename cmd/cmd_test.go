package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.toml")}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.Nil(t, err)
	assert.Equal(t, "spendlens 0.0.0\n", out)
}

func TestSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/summary", r.URL.Path)
		_, _ = w.Write([]byte(`{"monthly_spending":{"2024-05":1200},"avg_monthly_spending":1200,"estimated_monthly_income":null,"category_totals":{"Food":1200},"recurring":{"Zomato dinner":1}}`))
	}))
	defer server.Close()

	out, err := run(t, "--api-url", server.URL, "summary", "--width", "40")
	require.Nil(t, err)
	assert.Contains(t, out, "2024-05")
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "Zomato dinner")
}

func TestGoal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/check_goal", r.URL.Path)
		_, _ = w.Write([]byte(`{"feasible":true,"current_monthly_savings":5000,"needed_monthly_savings":1000,"months_needed_at_current_rate":2.4,"suggestions":["You're on track! Keep saving consistently."]}`))
	}))
	defer server.Close()

	out, err := run(t, "--api-url", server.URL, "goal", "--amount", "12000", "--months", "12")
	require.Nil(t, err)
	assert.Contains(t, out, "Feasible: Yes ✅")
	assert.Contains(t, out, "Months needed at current savings: 2.4")
}

func TestGoalServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"monthly_income required."}`))
	}))
	defer server.Close()

	out, err := run(t, "--api-url", server.URL, "goal", "--amount", "12000", "--months", "12")
	assert.NotNil(t, err)
	assert.Equal(t, "monthly_income required.\n", out)
}

func TestUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload", r.URL.Path)

		_, header, err := r.FormFile("file")
		if assert.Nil(t, err) {
			assert.Equal(t, "statement.csv", header.Filename)
		}
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "statement.csv")
	require.Nil(t, os.WriteFile(path, []byte("amount\n10\n"), 0o600))

	out, err := run(t, "--api-url", server.URL, "upload", path)
	require.Nil(t, err)
	assert.Equal(t, "Uploaded statement.csv\n", out)
}

func TestUploadMissingFile(t *testing.T) {
	_, err := run(t, "upload", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestServeLoggingFromDotenv(t *testing.T) {
	for _, key := range []string{"GIN_MODE", "LOG_FORMAT"} {
		if value, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, value) })
		}
		os.Unsetenv(key)
		t.Cleanup(func() { os.Unsetenv(key) })
	}

	level, logger := zerolog.GlobalLevel(), log.Logger
	t.Cleanup(func() {
		gin.SetMode(gin.ReleaseMode)
		zerolog.SetGlobalLevel(level)
		log.Logger = logger
	})

	dir := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GIN_MODE=debug\nLOG_FORMAT=json\n"), 0o600))
	wd, _ := os.Getwd()
	require.Nil(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var logs bytes.Buffer
	_, err := loadServerConfig(&logs)
	require.Nil(t, err)

	assert.Equal(t, gin.DebugMode, gin.Mode())
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}
