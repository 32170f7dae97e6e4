package textfold

import "strings"

// ProvinceOverride collapses folded province names matching a predicate into a
// single canonical key.
type ProvinceOverride struct {
	// Name identifies the override in logs and tests.
	Name string
	// Match reports whether a folded province name belongs to Key.
	Match func(folded string) bool
	// Key is the canonical province key.
	Key string
}

// Contains returns a predicate matching folded names containing fragment.
func Contains(fragment string) func(string) bool {
	return func(folded string) bool {
		return strings.Contains(folded, fragment)
	}
}

// ProvinceOverrides is consulted in order; the first match wins.
// New anomalies are added here instead of patching the parsers.
var ProvinceOverrides = []ProvinceOverride{
	// Some dumps spell Amasya with look-alike characters around a readable core.
	{Name: "amasya", Match: Contains("amasya"), Key: "amasya"},
	// Istanbul is stored as two sub-city rows, "İstanbul (Avrupa)" and
	// "İstanbul (Anadolu)". Matching on "stanbul" accepts both the dotted
	// and the dotless survivor of folding.
	{Name: "istanbul", Match: Contains("stanbul"), Key: "istanbul"},
}

// CanonicalProvince maps a folded province name to its canonical key.
func CanonicalProvince(folded string) string {
	for _, o := range ProvinceOverrides {
		if o.Match(folded) {
			return o.Key
		}
	}
	return folded
}
