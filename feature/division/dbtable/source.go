// Package dbtable reads the division hierarchy straight from the live admin
// table instead of a dump, using the same two-pass resolution.
package dbtable

import (
	"context"
	"fmt"
	"strings"

	"district-sync/core/database"
	"district-sync/core/reconcile"
	"district-sync/core/utils"
	"district-sync/feature/division/hierarchy"

	"gorm.io/gorm"
)

// Source loads a dataset from a database table.
type Source struct {
	// Label is the name used in reports.
	Label string
	// DB is the open connection.
	DB *gorm.DB
	// Profile names the table and columns.
	Profile Profile
	// RootID is the parent id shared by every province row.
	RootID string
}

// Name returns the report label.
func (s *Source) Name() string {
	return s.Label
}

// Load reads all rows and resolves provinces and districts.
func (s *Source) Load(ctx context.Context) (reconcile.Dataset, error) {
	rows, err := s.LoadRows(ctx)
	if err != nil {
		return nil, err
	}

	rootID := s.RootID
	if rootID == "" {
		rootID = hierarchy.DefaultRootID
	}
	return hierarchy.Resolve(rows, rootID), nil
}

// LoadRows reads the raw rows after checking the profile against the schema.
func (s *Source) LoadRows(ctx context.Context) ([]hierarchy.Row, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("no database connection for %s", s.Label)
	}
	if err := s.Profile.Validate(); err != nil {
		return nil, err
	}

	missing, err := database.MissingColumns(ctx, s.DB, s.Profile.Table, s.Profile.Columns()...)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("table %s lacks columns: %s", s.Profile.Table, strings.Join(missing, ", "))
	}

	dbRows, err := s.DB.WithContext(ctx).Raw(s.Profile.selectQuery()).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.Profile.Table, err)
	}
	defer dbRows.Close()

	var rows []hierarchy.Row
	for dbRows.Next() {
		var id, name, parent any
		if err := dbRows.Scan(&id, &name, &parent); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		rows = append(rows, hierarchy.Row{
			ID:     utils.ToString(id),
			Name:   utils.ToString(name),
			Parent: utils.ToString(parent),
		})
	}
	if err := dbRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Profile.Table, err)
	}

	return rows, nil
}
