package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/spendlens/backend/pkg/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestModelTimeUTC() {
	tz := time.FixedZone("IST", 19800)

	model := models.DefaultModel{
		CreatedAt: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
		UpdatedAt: time.Date(2001, 2, 3, 4, 5, 6, 7, tz),
	}

	err := model.AfterFind(models.DB)
	if err != nil {
		assert.Fail(suite.T(), "model.AfterFind failed")
	}

	assert.Equal(suite.T(), time.UTC, model.CreatedAt.Location(), "Timezone for model is not UTC")
	assert.Equal(suite.T(), time.UTC, model.UpdatedAt.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestModelBeforeCreate() {
	var model models.DefaultModel
	suite.Require().Nil(model.BeforeCreate(models.DB))
	assert.NotEqual(suite.T(), uuid.Nil, model.ID, "An ID must be generated")

	id := uuid.New()
	model = models.DefaultModel{ID: id}
	suite.Require().Nil(model.BeforeCreate(models.DB))
	assert.Equal(suite.T(), id, model.ID, "An existing ID must be kept")
}
