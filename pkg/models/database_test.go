package models_test

import (
	"testing"

	"github.com/spendlens/backend/pkg/models"
	"github.com/spendlens/backend/test"
	"github.com/stretchr/testify/require"
)

func TestMigrateWithExistingDB(t *testing.T) {
	testDB := test.TmpFile(t)

	// Migrate the database once
	require.Nil(t, models.Connect(testDB))

	// Close the connection
	sqlDB, err := models.DB.DB()
	require.Nil(t, err)
	sqlDB.Close()

	// Migrate it again
	require.Nil(t, models.Connect(testDB))

	sqlDB, err = models.DB.DB()
	require.Nil(t, err)
	sqlDB.Close()
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	_, err := models.LatestUpload(models.DB)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
