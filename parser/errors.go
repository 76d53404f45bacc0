package parser

import "fmt"

// StructureError reports a page section the source schema assumes present
// but the document does not contain. Optional fields (height, weight,
// strava) never produce it; they degrade to absent values instead.
type StructureError struct {
	Section string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("missing expected section: %s", e.Section)
}

// ParseError reports field text that could not be converted to its target
// form.
type ParseError struct {
	Field string
	Raw   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s from %q", e.Field, e.Raw)
}
