// Package hierarchy turns flat {id, name, parent} rows into a province to
// district dataset.
package hierarchy

import (
	"district-sync/core/reconcile"
	"district-sync/core/textfold"
)

// DefaultRootID is the parent id shared by every province row.
const DefaultRootID = "100"

// Row is a raw record of an administrative table.
type Row struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Parent string `json:"parent"`
}

// Resolve classifies rows in two passes. Rows whose parent is rootID are
// provinces (folded, then collapsed through textfold.CanonicalProvince); rows
// whose parent is a province id become districts of that province. Everything
// else is dropped. A later row with the same id replaces an earlier one.
//
// A province appears in the result only if at least one district attaches to it.
func Resolve(rows []Row, rootID string) reconcile.Dataset {
	byID := make(map[string]Row, len(rows))
	order := make([]string, 0, len(rows))
	for _, r := range rows {
		if _, seen := byID[r.ID]; !seen {
			order = append(order, r.ID)
		}
		byID[r.ID] = r
	}

	// Pass one: provinces.
	provinces := make(map[string]string)
	for _, id := range order {
		r := byID[id]
		if r.Parent == rootID {
			provinces[id] = textfold.CanonicalProvince(textfold.FoldLower(r.Name))
		}
	}

	// Pass two: districts under a known province.
	result := make(reconcile.Dataset)
	for _, id := range order {
		r := byID[id]
		province, ok := provinces[r.Parent]
		if !ok {
			continue
		}
		result.Add(province, textfold.FoldLower(r.Name))
	}

	return result
}
