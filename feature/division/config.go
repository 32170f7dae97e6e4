package division

import "district-sync/feature/division/dbtable"

// Config holds the reconciliation inputs and outputs.
// Paths are local paths or s3://bucket/key URLs.
type Config struct {
	// GoldPath is the gold-standard list file.
	GoldPath string `mapstructure:"gold_path" default:"güncelliste-1.groovy"`
	// GoldLabel names the gold dataset in the summary line.
	GoldLabel string `mapstructure:"gold_label" default:"Güncel Liste"`
	// AdminPath is the "admin" SQL dump snapshot.
	AdminPath string `mapstructure:"admin_path" default:"admin-sehir.sql"`
	// AdminLabel names the admin snapshot in the report.
	AdminLabel string `mapstructure:"admin_label" default:"admin-sehir"`
	// V1Path is the "v1" SQL dump snapshot.
	V1Path string `mapstructure:"v1_path" default:"v1-sehir.sql"`
	// V1Label names the v1 snapshot in the report.
	V1Label string `mapstructure:"v1_label" default:"v1-sehir"`
	// ReportPath receives the text report.
	ReportPath string `mapstructure:"report_path" default:"eksik_ilceler_raporu.txt"`
	// JSONPath receives the JSON report when set.
	JSONPath string `mapstructure:"json_path" default:""`
	// RootID is the parent id shared by every province row.
	RootID string `mapstructure:"root_id" default:"100"`
	// DBLabel names the live table target in the report.
	DBLabel string `mapstructure:"db_label" default:"db-sehir"`
	// Table is the live table name.
	Table string `mapstructure:"table" default:"sehir"`
	// IDColumn is the live table id column.
	IDColumn string `mapstructure:"id_column" default:"id"`
	// NameColumn is the live table name column.
	NameColumn string `mapstructure:"name_column" default:"city_name"`
	// ParentColumn is the live table parent column.
	ParentColumn string `mapstructure:"parent_column" default:"province_id"`
}

// Profile returns the live table profile.
func (c Config) Profile() dbtable.Profile {
	return dbtable.Profile{
		Table:        c.Table,
		IDColumn:     c.IDColumn,
		NameColumn:   c.NameColumn,
		ParentColumn: c.ParentColumn,
	}
}
