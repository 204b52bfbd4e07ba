package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/coder/websocket"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spendlens/backend/pkg/effects"
	"github.com/spendlens/backend/pkg/httputil"
)

// Viewport used when the browser does not send its size.
const (
	defaultViewportWidth  = 1280
	defaultViewportHeight = 720
)

type EffectListResponse struct {
	Data []effects.Init `json:"data"` // Scenes to start on the page
}

// effectMessage is sent by the browser while an effect is streamed.
type effectMessage struct {
	Type   string `json:"type"` // "resize" or "visibility"
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Hidden bool   `json:"hidden"`
}

// RegisterEffectRoutes registers the routes for the page effects.
func (co Controller) RegisterEffectRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsEffects)
	r.GET("", GetEffects)
	r.GET("/:name", co.StreamEffect)
}

// OptionsEffects returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Effects
//	@Success		204
//	@Router			/api/effects [options]
func OptionsEffects(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetEffects returns the scenes to start on a page
//
//	@Summary		Get effects
//	@Description	Returns the scenes a page can start. A scene is skipped when the page lacks its target element or library.
//	@Description	Elements, libraries and players default to what the named page is rendered with.
//	@Tags			Effects
//	@Produce		json
//	@Param			page		query		string		false	"Page name"	example(dashboard)
//	@Param			elements	query		[]string	false	"DOM IDs present on the page"
//	@Param			libraries	query		[]string	false	"Third-party libraries loaded by the page"
//	@Param			players		query		[]string	false	"Containers already holding a Lottie player"
//	@Success		200			{object}	EffectListResponse
//	@Router			/api/effects [get]
func GetEffects(c *gin.Context) {
	name := c.Query("page")

	page, ok := effects.Pages[name]
	if !ok {
		page = effects.Page{Name: name}
	}

	if elements, ok := c.GetQueryArray("elements"); ok {
		page.Elements = elements
	}

	if libraries, ok := c.GetQueryArray("libraries"); ok {
		page.Libraries = libraries
	}

	if players, ok := c.GetQueryArray("players"); ok {
		page.Players = players
	}

	c.JSON(http.StatusOK, EffectListResponse{Data: effects.ForPage(page)})
}

// StreamEffect streams the frames of a scene over a websocket
//
// The render loop runs as long as the connection is open. The browser
// sends resize and visibility messages; a hidden page pauses rendering.
//
//	@Summary		Stream effect
//	@Description	Upgrades to a websocket and streams the frames of the scene as JSON messages
//	@Tags			Effects
//	@Param			name	path	string	true	"Scene name"	example(dashboard)
//	@Param			width	query	int		false	"Viewport width"
//	@Param			height	query	int		false	"Viewport height"
//	@Param			dpr		query	number	false	"Device pixel ratio"
//	@Success		101
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Router			/api/effects/{name} [get]
func (co Controller) StreamEffect(c *gin.Context) {
	spec, ok := effects.Lookup(c.Param("name"))
	if !ok || spec.New == nil {
		c.JSON(status(errUnknownEffect), httpError{
			Error: errUnknownEffect.Error(),
		})
		return
	}

	viewport, err := viewportFromQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	logger := log.With().Str("request-id", requestid.Get(c)).Str("effect", spec.Name).Logger()

	ws, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: co.OriginPatterns,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to accept websocket")
		return
	}
	defer func() {
		if err := ws.Close(websocket.StatusNormalClosure, "effect stopped"); err != nil {
			logger.Debug().Err(err).Msg("failed to close websocket")
		}
	}()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	effect := effects.NewEffect(spec.New(), viewport, co.EffectFPS, func(ctx context.Context, frame effects.Frame) error {
		data, err := json.Marshal(frame)
		if err != nil {
			return err
		}
		return ws.Write(ctx, websocket.MessageText, data)
	})

	if err := effect.Start(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to start effect")
		return
	}
	defer effect.Stop()

	logger.Debug().Int("width", viewport.Width).Int("height", viewport.Height).Msg("effect started")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer cancel()
		readEffectMessages(ctx, ws, effect)
	}()

	select {
	case <-ctx.Done():
	case <-effect.Done():
		if err := effect.Err(); err != nil {
			logger.Debug().Err(err).Msg("effect stopped writing")
		}
	}

	cancel()
	wg.Wait()
	logger.Debug().Msg("effect ended")
}

// readEffectMessages applies the messages of the browser to the effect until
// the connection is closed.
func readEffectMessages(ctx context.Context, ws *websocket.Conn, effect *effects.Effect) {
	for {
		_, data, err := ws.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == -1 && ctx.Err() == nil {
				log.Debug().Err(err).Msg("effect websocket read error")
			}
			return
		}

		var msg effectMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}

		switch msg.Type {
		case "resize":
			if msg.Width > 0 && msg.Height > 0 {
				effect.Resize(msg.Width, msg.Height)
			}
		case "visibility":
			effect.Pause(msg.Hidden)
		}
	}
}

// viewportFromQuery reads the viewport of the browser from the query.
func viewportFromQuery(c *gin.Context) (effects.Viewport, error) {
	v := effects.Viewport{
		Width:            defaultViewportWidth,
		Height:           defaultViewportHeight,
		DevicePixelRatio: 1,
	}

	if value, ok := c.GetQuery("width"); ok {
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return effects.Viewport{}, errViewport
		}
		v.Width = n
	}

	if value, ok := c.GetQuery("height"); ok {
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return effects.Viewport{}, errViewport
		}
		v.Height = n
	}

	if value, ok := c.GetQuery("dpr"); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return effects.Viewport{}, errViewport
		}
		v.DevicePixelRatio = f
	}

	return v, nil
}
