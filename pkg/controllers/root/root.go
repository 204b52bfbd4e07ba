package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendlens/backend/pkg/httputil"
	"github.com/spendlens/backend/pkg/models"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs         string `json:"docs" example:"https://example.com/docs/index.html"`          // Swagger API documentation
	Healthz      string `json:"healthz" example:"https://example.com/healthz"`               // Healthz endpoint
	Version      string `json:"version" example:"https://example.com/version"`               // Endpoint returning the version of the backend
	Metrics      string `json:"metrics" example:"https://example.com/metrics"`               // Endpoint returning Prometheus metrics
	Summary      string `json:"summary" example:"https://example.com/api/summary"`           // Summary of the latest upload
	Transactions string `json:"transactions" example:"https://example.com/api/transactions"` // Transactions of the latest upload
	CheckGoal    string `json:"checkGoal" example:"https://example.com/api/check_goal"`      // Goal feasibility check
	Charts       string `json:"charts" example:"https://example.com/api/charts"`             // Dashboard charts
	Effects      string `json:"effects" example:"https://example.com/api/effects"`           // Page effects
	Upload       string `json:"upload" example:"https://example.com/upload"`                 // Statement upload
	Dashboard    string `json:"dashboard" example:"https://example.com/dashboard"`           // Dashboard page
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/api [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:         url + "/docs/index.html",
			Healthz:      url + "/healthz",
			Version:      url + "/version",
			Metrics:      url + "/metrics",
			Summary:      url + "/api/summary",
			Transactions: url + "/api/transactions",
			CheckGoal:    url + "/api/check_goal",
			Charts:       url + "/api/charts",
			Effects:      url + "/api/effects",
			Upload:       url + "/upload",
			Dashboard:    url + "/dashboard",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/api [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
