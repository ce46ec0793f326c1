// Package zaimanhua implements the Zaimanhua content source.
package zaimanhua

import "strings"

// match is the classification of a candidate's author field against a search target.
type match int

const (
	matchNone match = iota
	matchPartial
	matchStrict
)

// splitAuthors splits a raw "A/B/C" author field into trimmed sub-names,
// dropping empty entries.
func splitAuthors(field string) []string {
	var names []string
	for _, part := range strings.Split(field, "/") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

// classify decides how a candidate's author field relates to the target author.
//
// Strict requires one of the "/"-delimited sub-names to equal the target
// exactly after trimming. Partial accepts a substring relation in either
// direction, which covers abbreviated pen names on both sides. Empty
// sub-names never match.
func classify(authorField, target string) match {
	if target == "" {
		return matchNone
	}

	result := matchNone
	for _, name := range splitAuthors(authorField) {
		if name == target {
			return matchStrict
		}
		if strings.Contains(name, target) || strings.Contains(target, name) {
			result = matchPartial
		}
	}
	return result
}
