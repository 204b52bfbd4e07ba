package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendlens/backend/pkg/analysis"
	"github.com/spendlens/backend/pkg/httputil"
	"github.com/spendlens/backend/pkg/models"
)

type TransactionListResponse struct {
	Data []models.Transaction `json:"data"` // Transactions of the latest upload, in statement order
}

// RegisterSummaryRoutes registers the routes for the statement summary and
// its transactions.
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", OptionsSummary)
	r.GET("/summary", GetSummary)

	r.OPTIONS("/transactions", OptionsTransactions)
	r.GET("/transactions", GetTransactions)
}

// OptionsSummary returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Summary
//	@Success		204
//	@Router			/api/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetSummary returns the summary of the latest upload
//
//	@Summary		Get summary
//	@Description	Returns the spending summary of the latest upload. Without an upload, the response is an empty object.
//	@Tags			Summary
//	@Produce		json
//	@Success		200	{object}	analysis.Summary
//	@Failure		500	{object}	httpError
//	@Router			/api/summary [get]
func GetSummary(c *gin.Context) {
	summary, ok := summaryOrError(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, summary)
}

// OptionsTransactions returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Summary
//	@Success		204
//	@Router			/api/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetTransactions returns the transactions of the latest upload
//
//	@Summary		Get transactions
//	@Description	Returns the transactions of the latest upload with their categories
//	@Tags			Summary
//	@Produce		json
//	@Success		200	{object}	TransactionListResponse
//	@Failure		500	{object}	httpError
//	@Router			/api/transactions [get]
func GetTransactions(c *gin.Context) {
	upload, err := models.LatestUpload(models.DB)
	if errors.Is(err, models.ErrNoUpload) {
		c.JSON(http.StatusOK, TransactionListResponse{Data: []models.Transaction{}})
		return
	} else if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	rows, err := upload.Rows(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: rows})
}

// summaryOrError writes the error response and returns false if the summary
// cannot be loaded.
func summaryOrError(c *gin.Context) (analysis.Summary, bool) {
	summary, err := latestSummary()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return analysis.Summary{}, false
	}

	return summary, true
}
