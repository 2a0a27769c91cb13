package database_test

import (
	"context"
	"testing"

	"github.com/rpupo63/travel-blog-backend/database/databasetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaReport_CleanAfterMigrate(t *testing.T) {
	db := databasetest.Open(t)

	report, err := db.SchemaReport(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, report)
	for _, table := range report {
		assert.True(t, table.Clean(), "table %s drifted: %+v", table.Table, table)
	}
}
