package dbtable

import "fmt"

// Profile names the table and columns holding the division rows.
// Different snapshots of the admin schema name them differently.
type Profile struct {
	// Table is the table name (e.g. "sehir").
	Table string
	// IDColumn holds the row id.
	IDColumn string
	// NameColumn holds the province or district name.
	NameColumn string
	// ParentColumn holds the parent row id.
	ParentColumn string
}

// DefaultProfile matches the admin schema the SQL dumps are exported from.
var DefaultProfile = Profile{
	Table:        "sehir",
	IDColumn:     "id",
	NameColumn:   "city_name",
	ParentColumn: "province_id",
}

// Columns returns the id, name and parent column names.
func (p Profile) Columns() []string {
	return []string{p.IDColumn, p.NameColumn, p.ParentColumn}
}

// Validate checks that every name is set.
func (p Profile) Validate() error {
	if p.Table == "" || p.IDColumn == "" || p.NameColumn == "" || p.ParentColumn == "" {
		return fmt.Errorf("incomplete table profile: %+v", p)
	}
	return nil
}

// selectQuery builds the row query for the profile.
func (p Profile) selectQuery() string {
	return fmt.Sprintf("SELECT `%s`, `%s`, `%s` FROM `%s`", p.IDColumn, p.NameColumn, p.ParentColumn, p.Table)
}
