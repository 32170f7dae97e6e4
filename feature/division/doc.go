// Package division implements the province/district reconciliation feature.
//
// It reconciles administrative-division data from several targets against a
// gold-standard list:
//  1. Gold list: the custom line format (listfile).
//  2. SQL dumps: "admin" and "v1" snapshots of the same table (sqldump).
//  3. Live table: optional, read through GORM (dbtable).
//
// # Components
//
//   - Service: loads the gold list and every target, compares them with the
//     core/reconcile engine and renders the report.
//   - report: text rendering mirrored to stdout and the report file, plus JSON.
//   - hierarchy: two-pass {id, name, parent} resolution shared by the
//     relational sources.
//
// A missing gold list aborts the run. A missing dump is logged and compared as
// an empty dataset, which reports every gold province as critical.
package division
