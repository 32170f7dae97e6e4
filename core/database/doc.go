// Package database handles the optional connection to the live division table.
//
// It provides a wrapper around GORM to configure MySQL connections based on the
// application's configuration, and a small schema inspector used to check that
// the configured table profile (table and column names) exists before the
// table is read.
//
// # Usage
//
//	db, err := database.Connect(ctx, cfg.Database)
//	if err != nil {
//	    log.Warn("Database target skipped", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(ctx, db, "sehir", "id", "city_name", "province_id")
package database
