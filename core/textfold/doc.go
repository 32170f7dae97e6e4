// Package textfold provides Turkish-aware case folding for province and
// district names.
//
// Turkish casing breaks the usual assumption that upper(lower(x)) == upper(x)
// for the letter "I": the dotted capital İ lowers to i while the plain capital
// I lowers to the dotless ı. Every key used to join the data sources must go
// through FoldLower, never strings.ToLower.
//
// # Exceptions
//
// Some inputs write "Istanbul" or "Izmir" with an ASCII capital I. Folded
// strictly these become "ıstanbul" and "ızmir", which never match the keys
// found elsewhere, so a small table of exact post-fixes rewrites them.
//
// Province names coming from relational sources carry further anomalies
// (Istanbul split into two sub-city rows, a badly spelled Amasya). These are
// collapsed through ProvinceOverrides, an ordered table of predicates.
//
// # Usage
//
//	key := textfold.FoldLower("  ÇUKUROVA ")     // "çukurova"
//	label := textfold.FoldUpper(key)            // "ÇUKUROVA"
//	province := textfold.CanonicalProvince(textfold.FoldLower("İstanbul (Avrupa)")) // "istanbul"
package textfold
