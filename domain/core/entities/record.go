package entities

import "strings"

// ChangeRecord is one entry of the changelog produced by the upstream
// parser. Field names mirror the parser's JSON contract exactly.
//
// Records arrive chronologically ordered: day labels are opaque, unique
// and monotonically non-decreasing in input order. Nothing here verifies
// that; the contract belongs to the producer.
type ChangeRecord struct {
	Day           string `json:"day" validate:"required"`
	Date          string `json:"date"`
	Feature       string `json:"feature" validate:"required"`
	Description   string `json:"description"`
	FilesModified string `json:"filesModified"`
}

// SearchText returns the lowercased title+description used by keyword
// matching throughout the analysis pipeline.
func (r ChangeRecord) SearchText() string {
	return strings.ToLower(r.Feature + " " + r.Description)
}

// ContainsKeyword reports whether the lowercased title or description
// mentions the given (already lowercased) keyword.
func (r ChangeRecord) ContainsKeyword(keyword string) bool {
	return strings.Contains(r.SearchText(), keyword)
}
