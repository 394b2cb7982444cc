package rangedoc

import (
	"regexp"
	"slices"
	"strings"
)

// HasTags reports whether the document carries every one of tags.
func (d *Document) HasTags(tags ...string) bool {
	for _, t := range tags {
		if !slices.Contains(d.Tags, t) {
			return false
		}
	}
	return true
}

// MatchesSearch reports whether every whitespace-separated part of query
// appears in the title, ignoring case. An empty query matches everything.
func (d *Document) MatchesSearch(query string) bool {
	title := strings.ToLower(d.Title)
	for _, part := range strings.Fields(query) {
		if !strings.Contains(title, strings.ToLower(part)) {
			return false
		}
	}
	return true
}

// Filter returns the documents carrying all tags whose titles match query.
func Filter(docs []*Document, tags []string, query string) []*Document {
	var out []*Document
	for _, d := range docs {
		if d.HasTags(tags...) && d.MatchesSearch(query) {
			out = append(out, d)
		}
	}
	return out
}

// AllTags returns the sorted, de-duplicated union of the documents' tags.
func AllTags(docs []*Document) []string {
	var tags []string
	for _, d := range docs {
		tags = append(tags, d.Tags...)
	}
	slices.Sort(tags)
	return slices.Compact(tags)
}

var whitespace = regexp.MustCompile(`\s+`)

// FileExtension is the suffix of exported range files.
const FileExtension = ".range"

// FileName returns the export file name for the document: the lower-cased
// title with whitespace runs replaced by dashes, plus FileExtension.
func (d *Document) FileName() string {
	return whitespace.ReplaceAllString(strings.ToLower(d.Title), "-") + FileExtension
}
