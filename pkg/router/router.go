package router

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	docs "github.com/spendlens/backend/api"
	"github.com/spendlens/backend/internal/config"
	"github.com/spendlens/backend/pkg/analysis"
	"github.com/spendlens/backend/pkg/controllers"
	"github.com/spendlens/backend/pkg/controllers/healthz"
	"github.com/spendlens/backend/pkg/controllers/root"
	versionController "github.com/spendlens/backend/pkg/controllers/version"
	"github.com/spendlens/backend/web"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with -ldflags.
var version = "0.0.0"

// controller holds the handler settings read by Config.
var (
	controller  = controllers.New()
	enablePprof = false
)

// Config sets up the router and its middlewares.
//
// The returned teardown function must be called when the router is not
// used anymore.
func Config(url *url.URL) (*gin.Engine, func(), error) {
	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("could not unregister prometheus metrics")
		}
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return nil, func() {}, err
	}

	controller = controllers.Controller{
		Categorizer:    analysis.NewCategorizer(cfg.CategoryRules),
		EffectFPS:      cfg.EffectFPS,
		OriginPatterns: originPatterns(url, cfg.CORSAllowOrigins),
	}
	enablePprof = cfg.EnablePprof

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "This HTTP method is not allowed for the endpoint you called"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "There is no resource at this path"})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", cfg.CORSAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	templates, err := web.Templates()
	if err != nil {
		return nil, func() {}, fmt.Errorf("could not parse page templates: %w", err)
	}
	r.SetHTMLTemplate(templates)

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "spendlens"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for spendlens, a dashboard for the spending found in bank statements."

	err = registerPrometheusMetrics()
	if err != nil {
		return nil, func() {}, err
	}

	return r, teardown, nil
}

// AttachRoutes attaches the routes to the router group that is passed in.
// Separating this from Config() allows us to attach it to different
// paths for different use cases.
func AttachRoutes(group *gin.RouterGroup) {
	// pprof performance profiles
	if enablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	group.StaticFS("/static", http.FS(web.Static()))

	healthz.RegisterRoutes(group.Group("/healthz"))
	versionController.RegisterRoutes(group.Group("/version"), version)

	controller.RegisterPageRoutes(group)

	api := group.Group("/api")
	root.RegisterRoutes(api)
	controllers.RegisterSummaryRoutes(api)
	controllers.RegisterGoalRoutes(api.Group("/check_goal"))
	controllers.RegisterChartRoutes(api.Group("/charts"))
	controller.RegisterEffectRoutes(api.Group("/effects"))
}

// originPatterns returns the hosts that may open websockets: the API host
// and the hosts of the CORS origins.
func originPatterns(apiURL *url.URL, origins []string) []string {
	patterns := []string{apiURL.Host}
	for _, origin := range origins {
		u, err := url.Parse(origin)
		if err != nil || u.Host == "" {
			continue
		}
		patterns = append(patterns, u.Host)
	}

	return patterns
}
