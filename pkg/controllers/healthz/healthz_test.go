package healthz_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spendlens/backend/pkg/controllers/healthz"
	"github.com/spendlens/backend/pkg/models"
	"github.com/spendlens/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.OPTIONS("/healthz", func(_ *gin.Context) {
		healthz.Options(c)
	})

	c.Request, _ = http.NewRequest(http.MethodOptions, "http://example.com/healthz", nil)
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "OPTIONS, GET", w.Header().Get("allow"))
}

// TestGet runs both cases in sequence as they share the global database connection.
func TestGet(t *testing.T) {
	require.Nil(t, models.Connect(test.TmpFile(t)))

	get := func() *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		c, r := gin.CreateTestContext(recorder)

		r.GET("/healthz", func(_ *gin.Context) {
			healthz.Get(c)
		})

		c.Request, _ = http.NewRequest(http.MethodGet, "https://example.com/healthz", nil)
		r.ServeHTTP(recorder, c.Request)
		return recorder
	}

	assert.Equal(t, http.StatusNoContent, get().Code)

	sqlDB, err := models.DB.DB()
	require.Nil(t, err)
	require.Nil(t, sqlDB.Close())

	recorder := get()
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "database is closed")
}
