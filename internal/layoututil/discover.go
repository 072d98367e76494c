package layoututil

import (
	"sort"
	"strconv"

	"github.com/specialistvlad/figcore/internal/attrpath"
	"github.com/specialistvlad/figcore/internal/coerce"
	"github.com/specialistvlad/figcore/internal/figure"
)

// DiscoverIDs scans visible resolved traces for references to numbered
// component ids (base, base2, ...) at path and returns the distinct ids in
// first-seen order. The order is the rendering order and is never sorted.
func DiscoverIDs(fullData []map[string]any, path attrpath.Path, base string) []string {
	var ids []string
	seen := map[string]bool{}
	for _, trace := range fullData {
		if !figure.IsVisible(trace) {
			continue
		}
		v, ok := attrpath.Get(trace, path)
		if !ok {
			continue
		}
		id, ok := v.(string)
		if !ok || !coerce.IsSubplotID(id, base) || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// IDsInLayout returns the layout keys that are numbered ids of base, ordered
// by their number. Only keys holding an object count.
func IDsInLayout(layoutIn map[string]any, base string) []string {
	var ids []string
	for key, v := range layoutIn {
		if figure.AsMap(v) == nil || !coerce.IsSubplotID(key, base) {
			continue
		}
		ids = append(ids, key)
	}
	sort.Slice(ids, func(i, j int) bool {
		return IDNumber(ids[i], base) < IDNumber(ids[j], base)
	})
	return ids
}

// IDNumber returns 1 for base and n for base<n>.
func IDNumber(id, base string) int {
	if id == base {
		return 1
	}
	n, err := strconv.Atoi(id[len(base):])
	if err != nil {
		return 0
	}
	return n
}

// MergeIDs appends the ids of extra not yet in ids.
func MergeIDs(ids []string, extra ...string) []string {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	for _, id := range extra {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// Publish records the visible instances of a component in the layout-level
// registry key (e.g. "_legends"). Absence from the registry means the
// instance is not rendered.
func Publish(layoutOut map[string]any, key string, ids []string) {
	out := make([]string, len(ids))
	copy(out, ids)
	layoutOut[key] = out
}

// PublishIndices is Publish for array containers, whose visible items are
// recorded by index.
func PublishIndices(layoutOut map[string]any, key string, indices []int) {
	out := make([]int, len(indices))
	copy(out, indices)
	layoutOut[key] = out
}
