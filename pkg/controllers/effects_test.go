package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/spendlens/backend/pkg/controllers"
	"github.com/spendlens/backend/pkg/effects"
	"github.com/spendlens/backend/pkg/router"
	"github.com/spendlens/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGetEffects() {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"Dashboard", "?page=dashboard", []string{"dashboard", "cube"}},
		{"Home", "?page=home", []string{"home"}},
		{"Landing", "?page=landing", []string{"landing"}},
		{"Unknown page", "?page=settings", []string{}},
		{"Without THREE", "?page=dashboard&libraries=Chart", []string{}},
		{"Elements override", "?page=home&elements=three-container&elements=home-three-canvas", []string{"home", "cube"}},
		{"Landing player already mounted", "?page=landing&players=landing-lottie", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/api/effects"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response controllers.EffectListResponse
			test.DecodeResponse(t, &recorder, &response)

			names := make([]string, 0, len(response.Data))
			for _, init := range response.Data {
				names = append(names, init.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func (suite *TestSuiteStandard) TestGetEffectsLandingPlayer() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/effects?page=landing", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.EffectListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)

	init := response.Data[0]
	assert.False(suite.T(), init.Stream)
	assert.Equal(suite.T(), "landing-lottie", init.Target)
	require.NotNil(suite.T(), init.Player)
	assert.Equal(suite.T(), effects.LandingLottie, *init.Player)
}

func (suite *TestSuiteStandard) TestStreamEffectErrors() {
	tests := []struct {
		name    string
		url     string
		status  int
		message string
	}{
		{"Unknown effect", "http://example.com/api/effects/fireworks", http.StatusNotFound, "there is no streamed effect with this name"},
		{"Static mount", "http://example.com/api/effects/landing", http.StatusNotFound, "there is no streamed effect with this name"},
		{"Bad width", "http://example.com/api/effects/cube?width=-3", http.StatusBadRequest, "width, height and dpr must be positive numbers"},
		{"Bad dpr", "http://example.com/api/effects/cube?dpr=retina", http.StatusBadRequest, "width, height and dpr must be positive numbers"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
			assert.Equal(t, tt.message, test.DecodeError(t, recorder.Body.Bytes()))
		})
	}
}

// effectServer starts a server with all routes attached.
func effectServer(t *testing.T) *httptest.Server {
	apiURL, err := url.Parse("http://example.com")
	require.Nil(t, err)

	r, teardown, err := router.Config(apiURL)
	require.Nil(t, err)
	router.AttachRoutes(r.Group("/"))

	server := httptest.NewServer(r)
	t.Cleanup(func() {
		server.Close()
		teardown()
	})

	return server
}

func (suite *TestSuiteStandard) TestStreamEffect() {
	server := effectServer(suite.T())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/effects/cube?width=640&height=480&dpr=2"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.Nil(suite.T(), err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	read := func() effects.Frame {
		_, data, err := conn.Read(ctx)
		require.Nil(suite.T(), err)

		var frame effects.Frame
		require.Nil(suite.T(), json.Unmarshal(data, &frame))
		return frame
	}

	first := read()
	assert.Equal(suite.T(), "cube", first.Scene)
	assert.NotEmpty(suite.T(), first.Objects)

	resize, _ := json.Marshal(map[string]any{"type": "resize", "width": 320, "height": 320})
	require.Nil(suite.T(), conn.Write(ctx, websocket.MessageText, resize))

	second := read()
	assert.Greater(suite.T(), second.Tick, first.Tick)
}

// TestStreamEffectClose verifies that the render loop ends with the connection.
func (suite *TestSuiteStandard) TestStreamEffectClose() {
	server := effectServer(suite.T())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/effects/home"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.Nil(suite.T(), err)

	_, _, err = conn.Read(ctx)
	require.Nil(suite.T(), err)

	hidden, _ := json.Marshal(map[string]any{"type": "visibility", "hidden": true})
	require.Nil(suite.T(), conn.Write(ctx, websocket.MessageText, hidden))
	require.Nil(suite.T(), conn.Close(websocket.StatusNormalClosure, "page left"))
}
