package model

import (
	"slices"
)

// Groups maps tags to their records, remembering the order in which tags
// first appeared.
type Groups struct {
	order []string
	byTag map[string][]Record
}

// NewGroups creates an empty Groups.
func NewGroups() *Groups {
	return &Groups{byTag: make(map[string][]Record)}
}

// Add appends r to the group of r.Tag, creating the group if needed.
func (g *Groups) Add(r Record) {
	if _, seen := g.byTag[r.Tag]; !seen {
		g.order = append(g.order, r.Tag)
	}
	g.byTag[r.Tag] = append(g.byTag[r.Tag], r)
}

// Tags returns tags in first-seen order.
func (g *Groups) Tags() []string {
	return slices.Clone(g.order)
}

// Sorted returns tags in lexicographic order.
func (g *Groups) Sorted() []string {
	tags := slices.Clone(g.order)
	slices.Sort(tags)
	return tags
}

// Records returns the records of tag. The slice is shared with g so that
// balancing can update it in place.
func (g *Groups) Records(tag string) []Record {
	return g.byTag[tag]
}

// Len returns the number of tags.
func (g *Groups) Len() int {
	return len(g.order)
}

// Count returns the total number of records across all tags.
func (g *Groups) Count() int {
	n := 0
	for _, recs := range g.byTag {
		n += len(recs)
	}
	return n
}
