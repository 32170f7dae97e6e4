// Package utils provides small conversion helpers shared by the data sources,
// mainly turning driver-specific column values into plain strings.
package utils
