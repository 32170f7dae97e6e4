package reconcile

import "sort"

// Set is an unordered set of folded names.
type Set map[string]struct{}

// NewSet creates a set holding the given names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Dataset maps a folded province key to its folded district keys.
// Datasets are built once by a Source and not mutated afterwards.
type Dataset map[string]Set

// Ensure returns the district set of province, creating it if needed.
func (d Dataset) Ensure(province string) Set {
	set, ok := d[province]
	if !ok {
		set = make(Set)
		d[province] = set
	}
	return set
}

// Add records district under province.
func (d Dataset) Add(province, district string) {
	d.Ensure(province)[district] = struct{}{}
}

// Provinces returns the province keys in ascending order.
func (d Dataset) Provinces() []string {
	out := make([]string, 0, len(d))
	for p := range d {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// DistrictCount returns the number of districts over all provinces.
func (d Dataset) DistrictCount() int {
	n := 0
	for _, set := range d {
		n += len(set)
	}
	return n
}
