package reconcile

// Merkez is the placeholder name for a province's central district.
const Merkez = "merkez"

// PrefixLength is the number of runes compared by the province fallback.
const PrefixLength = 4

// AdviceKind represents the type of suggestion attached to a province.
type AdviceKind string

const (
	// AdviceRename suggests renaming the stray "merkez" record to the single
	// missing district.
	AdviceRename AdviceKind = "rename"
	// AdviceSplit notes that "merkez" may have been split into several of the
	// missing districts. No mapping is proposed.
	AdviceSplit AdviceKind = "split"
)

// Advice is a suggestion for resolving a stray "merkez" record.
type Advice struct {
	// Kind specifies the suggestion.
	Kind AdviceKind `json:"kind"`

	// From is the extra district the advice is about (always "merkez").
	From string `json:"from"`

	// To lists the candidate missing districts.
	To []string `json:"to"`
}

// ProvinceResult represents the comparison output for a single gold province.
type ProvinceResult struct {
	// Province is the gold province key.
	Province string `json:"province"`

	// Resolved is the target key the province was matched to.
	// Empty when Critical is set.
	Resolved string `json:"resolved,omitempty"`

	// Fuzzy is true when Resolved was found through the prefix fallback.
	Fuzzy bool `json:"fuzzy,omitempty"`

	// Critical is true when the province could not be found in the target.
	Critical bool `json:"critical,omitempty"`

	// Missing contains gold districts absent from the target, sorted.
	Missing []string `json:"missing,omitempty"`

	// Extra contains target districts absent from gold, sorted.
	Extra []string `json:"extra,omitempty"`

	// Advice is set when a stray "merkez" may explain the missing districts.
	Advice *Advice `json:"advice,omitempty"`
}

// Clean reports whether the province needs no attention.
func (r ProvinceResult) Clean() bool {
	return !r.Critical && len(r.Missing) == 0 && len(r.Extra) == 0
}

// Summary provides aggregate statistics for a report.
type Summary struct {
	// Provinces is the number of gold provinces examined.
	Provinces int `json:"provinces"`

	// Critical counts gold provinces not found in the target.
	Critical int `json:"critical"`

	// Fuzzy counts provinces resolved through the prefix fallback.
	Fuzzy int `json:"fuzzy"`

	// Missing counts missing districts over all provinces.
	Missing int `json:"missing"`

	// Extra counts extra districts over all provinces.
	Extra int `json:"extra"`

	// Advice counts provinces carrying advice.
	Advice int `json:"advice"`
}

// Report is the comparison of one target dataset against the gold dataset.
type Report struct {
	// Target is the target source name.
	Target string `json:"target"`

	// Results holds one entry per gold province, in sorted province order.
	Results []ProvinceResult `json:"results"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// TotalMissing returns the number of missing districts over all provinces.
func (r *Report) TotalMissing() int {
	return r.Summary.Missing
}

// Synced reports whether the target misses no gold district.
func (r *Report) Synced() bool {
	return r.Summary.Missing == 0
}
