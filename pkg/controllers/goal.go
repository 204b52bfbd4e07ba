package controllers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spendlens/backend/pkg/client"
	"github.com/spendlens/backend/pkg/goal"
	"github.com/spendlens/backend/pkg/httputil"
)

// goalBody is the body of a goal check. Fields are kept raw to tell a
// missing field from an explicit null.
type goalBody struct {
	GoalAmount    json.RawMessage `json:"goal_amount"`
	Months        json.RawMessage `json:"months"`
	MonthlyIncome json.RawMessage `json:"monthly_income"`
}

type ReportResponse struct {
	Text string `json:"text" example:"Feasible: Yes ✅\nCurrent Monthly Savings: ₹12000\n..."` // Text for the result panel of the goal form
}

// RegisterGoalRoutes registers the routes for goal checks.
func RegisterGoalRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCheckGoal)
	r.POST("", CheckGoal)

	r.OPTIONS("/report", OptionsCheckGoal)
	r.POST("/report", CheckGoalReport)
}

// OptionsCheckGoal returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Goals
//	@Success		204
//	@Router			/api/check_goal [options]
//	@Router			/api/check_goal/report [options]
func OptionsCheckGoal(c *gin.Context) {
	httputil.OptionsPost(c)
}

// CheckGoal checks if a savings goal can be reached
//
//	@Summary		Check goal
//	@Description	Checks if the goal amount can be saved in the given number of months with the spending of the latest upload.
//	@Description	A missing goal_amount defaults to 0, missing months to 1. Without monthly_income, the income estimated from the statement is used.
//	@Tags			Goals
//	@Accept			json
//	@Produce		json
//	@Param			request	body		goal.Request	true	"Goal"
//	@Success		200		{object}	goal.Result
//	@Failure		400		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Router			/api/check_goal [post]
func CheckGoal(c *gin.Context) {
	var body goalBody
	if err := httputil.BindData(c, &body); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	request, err := body.request()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	summary, ok := summaryOrError(c)
	if !ok {
		return
	}

	result, err := goal.Check(summary, request)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CheckGoalReport checks a goal submitted by the goal form
//
//	@Summary		Check goal for the form
//	@Description	Checks a goal with the fields of the dashboard goal form and returns the text for its result panel.
//	@Description	Fields are parsed leniently: a numeric prefix is used and anything else counts as not a number.
//	@Tags			Goals
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			goal_amount		formData	string	true	"Goal amount"
//	@Param			months			formData	string	true	"Months"
//	@Param			monthly_income	formData	string	false	"Monthly income"
//	@Success		200				{object}	ReportResponse
//	@Router			/api/check_goal/report [post]
func CheckGoalReport(c *gin.Context) {
	request := client.ParseGoalForm(client.GoalFields{
		GoalAmount:    c.PostForm("goal_amount"),
		Months:        c.PostForm("months"),
		MonthlyIncome: c.PostForm("monthly_income"),
	})

	c.JSON(http.StatusOK, ReportResponse{Text: client.Text(checkGoal(c, request))})
}

// checkGoal runs a goal check against the latest upload.
func checkGoal(c *gin.Context, request goal.Request) goal.Outcome {
	summary, err := latestSummary()
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("Error checking goal")
		return goal.Err{Message: client.ErrCheckGoal}
	}

	result, err := goal.Check(summary, request)
	if err != nil {
		return goal.Err{Message: err.Error()}
	}

	return goal.Ok{Result: result}
}

// request converts the body to a goal request.
func (b goalBody) request() (goal.Request, error) {
	var r goal.Request

	amount, err := number("goal_amount", b.GoalAmount, 0)
	if err != nil {
		return goal.Request{}, err
	}
	r.GoalAmount = amount

	months, err := number("months", b.Months, 1)
	if err != nil {
		return goal.Request{}, err
	}
	if months != nil {
		m := int(math.Trunc(*months))
		r.Months = &m
	}

	if len(b.MonthlyIncome) > 0 {
		r.MonthlyIncome, err = number("monthly_income", b.MonthlyIncome, 0)
		if err != nil {
			return goal.Request{}, err
		}
	}

	return r, nil
}

// number decodes a JSON number or numeric string. A missing value is
// replaced with the default, null is returned as nil.
func number(field string, raw json.RawMessage, defaultValue float64) (*float64, error) {
	if len(raw) == 0 {
		return &defaultValue, nil
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("%s: %w", field, httputil.ErrInvalidBody)
	}

	switch v := value.(type) {
	case nil:
		return nil, nil
	case float64:
		return &v, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return &f, nil
		}
	}

	return nil, fmt.Errorf("%w: %s is not a number", errNotANumber, field)
}
