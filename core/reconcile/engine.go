package reconcile

import (
	"slices"
	"strings"
)

// Compare compares target against gold and returns a report with one result
// per gold province, ordered by province key.
func Compare(name string, gold, target Dataset) *Report {
	report := &Report{
		Target:  name,
		Results: make([]ProvinceResult, 0, len(gold)),
	}

	targetKeys := target.Provinces()

	for _, province := range gold.Provinces() {
		result := compareProvince(province, gold[province], target, targetKeys)
		report.Results = append(report.Results, result)

		s := &report.Summary
		s.Provinces++
		if result.Critical {
			s.Critical++
		}
		if result.Fuzzy {
			s.Fuzzy++
		}
		s.Missing += len(result.Missing)
		s.Extra += len(result.Extra)
		if result.Advice != nil {
			s.Advice++
		}
	}

	return report
}

// compareProvince builds the result for a single gold province.
func compareProvince(province string, goldDistricts Set, target Dataset, targetKeys []string) ProvinceResult {
	result := ProvinceResult{Province: province}

	resolved, fuzzy, ok := ResolveProvince(province, target, targetKeys)
	if !ok {
		result.Critical = true
		return result
	}
	result.Resolved = resolved
	result.Fuzzy = fuzzy

	targetDistricts := target[resolved]
	result.Missing = findMissing(goldDistricts, targetDistricts, resolved)
	result.Extra = findExtra(goldDistricts, targetDistricts)
	result.Advice = advise(result.Missing, result.Extra)

	return result
}

// ResolveProvince finds the target key for a gold province. An exact key wins;
// otherwise the first key of targetKeys (ascending) sharing the first
// PrefixLength runes of province is used.
func ResolveProvince(province string, target Dataset, targetKeys []string) (key string, fuzzy bool, ok bool) {
	if _, exists := target[province]; exists {
		return province, false, true
	}

	prefix := runePrefix(province, PrefixLength)
	for _, candidate := range targetKeys {
		if strings.HasPrefix(candidate, prefix) {
			return candidate, true, true
		}
	}

	return "", false, false
}

// findMissing returns gold districts the target lacks. A gold "merkez" is
// satisfied by a target "merkez" or by a target district named after the
// resolved province.
func findMissing(gold, target Set, resolvedProvince string) []string {
	var missing []string
	for _, d := range gold.Sorted() {
		if target.Has(d) {
			continue
		}
		if d == Merkez && (target.Has(Merkez) || target.Has(resolvedProvince)) {
			continue
		}
		missing = append(missing, d)
	}
	return missing
}

// findExtra returns target districts the gold set lacks. The check is exact
// only: a target "merkez" absent from gold is reported like any other name.
func findExtra(gold, target Set) []string {
	var extra []string
	for _, d := range target.Sorted() {
		if !gold.Has(d) {
			extra = append(extra, d)
		}
	}
	return extra
}

// advise returns a suggestion when "merkez" is extra and something is missing.
func advise(missing, extra []string) *Advice {
	if len(missing) == 0 || !slices.Contains(extra, Merkez) {
		return nil
	}

	to := slices.Clone(missing)

	kind := AdviceSplit
	if len(missing) == 1 {
		kind = AdviceRename
	}
	return &Advice{Kind: kind, From: Merkez, To: to}
}

func runePrefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
