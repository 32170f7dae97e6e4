// Package reconcile compares administrative-division datasets against a
// gold-standard dataset and describes the differences.
//
// A Dataset maps a folded province key to the set of folded district keys
// recorded for it. Datasets come from Sources (list files, SQL dumps, live
// tables); the engine does not care where they were loaded from.
//
// # Comparison
//
// Compare walks the gold provinces in sorted order and, for each one:
//
//  1. Resolves the province in the target: exact key first, then the first
//     target key sharing the gold key's 4-rune prefix. Unresolved provinces
//     are marked Critical and skipped.
//  2. Collects gold districts absent from the target (Missing). A gold
//     "merkez" is also satisfied by a target district named after the province.
//  3. Collects target districts absent from gold (Extra).
//  4. Emits Advice when a stray "merkez" could explain the missing districts.
//
// # Usage
//
//	report := reconcile.Compare("admin-sehir", gold, admin)
//	if report.Synced() {
//	    fmt.Println("nothing to do")
//	}
package reconcile
