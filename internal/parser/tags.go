package parser

import (
	"maps"
	"slices"
	"strings"
)

// TagSet holds lower-cased tag names to keep. An empty set keeps every tag.
type TagSet map[string]struct{}

// NewTagSet builds a TagSet, lower-casing names and skipping blanks.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		s[t] = struct{}{}
	}
	return s
}

// ParseTagList builds a TagSet from a comma-separated list like "food,rent".
func ParseTagList(list string) TagSet {
	if list == "" {
		return nil
	}
	return NewTagSet(strings.Split(list, ",")...)
}

// Wants reports whether records for the sign-stripped tag name should be kept.
func (s TagSet) Wants(name string) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[strings.ToLower(name)]
	return ok
}

// Names returns the members of s in sorted order.
func (s TagSet) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// SplitTag separates the sign marker from a tag: "-Rent" -> ("Rent", true).
func SplitTag(tag string) (name string, negative bool) {
	return strings.CutPrefix(tag, "-")
}
