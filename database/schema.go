package database

import (
	"context"
	"fmt"
	"sort"

	"github.com/rpupo63/travel-blog-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// TableDrift lists columns that exist on one side only.
type TableDrift struct {
	Table         string
	Missing       bool     // table does not exist yet
	ExtraColumns  []string // in the database, not in the model
	AbsentColumns []string // in the model, not in the database
}

func (t TableDrift) Clean() bool {
	return !t.Missing && len(t.ExtraColumns) == 0 && len(t.AbsentColumns) == 0
}

// SchemaReport compares every model with the live database. It is read-only
// and meant to be run before deciding whether AUTO_MIGRATE is safe.
func (d Database) SchemaReport(ctx context.Context) ([]TableDrift, error) {
	db := d.db.WithContext(ctx)
	migrator := db.Migrator()

	report := make([]TableDrift, 0, len(models.All()))
	for _, model := range models.All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}
		drift := TableDrift{Table: stmt.Schema.Table}

		if !migrator.HasTable(model) {
			drift.Missing = true
			report = append(report, drift)
			continue
		}

		columns, err := migrator.ColumnTypes(model)
		if err != nil {
			return nil, fmt.Errorf("read columns of %s: %w", drift.Table, err)
		}
		inDB := make(map[string]bool, len(columns))
		for _, c := range columns {
			inDB[c.Name()] = true
		}

		inModel := modelColumns(stmt.Schema)
		for name := range inDB {
			if !inModel[name] {
				drift.ExtraColumns = append(drift.ExtraColumns, name)
			}
		}
		for name := range inModel {
			if !inDB[name] {
				drift.AbsentColumns = append(drift.AbsentColumns, name)
			}
		}
		sort.Strings(drift.ExtraColumns)
		sort.Strings(drift.AbsentColumns)
		report = append(report, drift)
	}
	return report, nil
}

func modelColumns(s *schema.Schema) map[string]bool {
	cols := make(map[string]bool, len(s.DBNames))
	for _, name := range s.DBNames {
		cols[name] = true
	}
	return cols
}
