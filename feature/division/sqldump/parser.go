// Package sqldump extracts administrative rows from an SQL dump made of
// INSERT statements, possibly mixed with other SQL and free text.
//
// Each statement is expected to look like
//
//	insert into sehir values (103,'6','Ankara','100');
//
// with the fixed field layout id, plate, name, parent id. The plate is unused.
package sqldump

import (
	"context"
	"regexp"
	"strings"

	"district-sync/core/reconcile"
	"district-sync/core/source"
	"district-sync/feature/division/hierarchy"
)

const (
	fieldID     = 0
	fieldName   = 2
	fieldParent = 3
	minFields   = 4
)

var (
	insertKeyword = regexp.MustCompile(`(?i)insert\s+into`)

	// Greedy up to the last ");" of the chunk: quoted names may contain
	// parentheses, e.g. 'İstanbul (Avrupa)', which a lazy match would cut.
	valuesTuple = regexp.MustCompile(`(?is)values\s*\((.*)\)\s*;`)
)

// ParseRows returns the rows of every INSERT statement with at least four
// fields. Statements without a VALUES tuple are skipped.
func ParseRows(content string) []hierarchy.Row {
	var rows []hierarchy.Row

	for _, chunk := range insertKeyword.Split(content, -1) {
		if !strings.Contains(strings.ToLower(chunk), "values") {
			continue
		}

		m := valuesTuple.FindStringSubmatch(chunk)
		if m == nil {
			continue
		}

		fields := SplitFields(m[1])
		if len(fields) < minFields {
			continue
		}

		rows = append(rows, hierarchy.Row{
			ID:     fields[fieldID],
			Name:   fields[fieldName],
			Parent: fields[fieldParent],
		})
	}

	return rows
}

// Parse parses content and resolves provinces and districts under rootID.
func Parse(content, rootID string) reconcile.Dataset {
	return hierarchy.Resolve(ParseRows(content), rootID)
}

// Source loads a dump snapshot from a path.
type Source struct {
	// Label is the name used in reports (e.g. "admin-sehir").
	Label string
	// Path is a local path or s3:// URL.
	Path string
	// RootID is the parent id shared by every province row.
	RootID string
	// Opener reads the input.
	Opener *source.Opener
}

// Name returns the report label.
func (s *Source) Name() string {
	return s.Label
}

// Load reads and parses the dump. A missing file is returned as an error
// wrapping source.ErrNotFound; the caller decides whether that is fatal.
func (s *Source) Load(ctx context.Context) (reconcile.Dataset, error) {
	text, err := s.Opener.ReadText(ctx, s.Path)
	if err != nil {
		return nil, err
	}

	rootID := s.RootID
	if rootID == "" {
		rootID = hierarchy.DefaultRootID
	}
	return Parse(text, rootID), nil
}
