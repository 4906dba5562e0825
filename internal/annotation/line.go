// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package annotation

import "strings"

// Line tags and subsection markers of the UniProtKB flat-file format.
const (
	// TagComment is the line code of free-text comment lines.
	TagComment = "CC"

	// tagWidth is the width of the line-code column including padding
	// ("CC   "). Content starts in column 6.
	tagWidth = 5

	subsectionMarker = "-!- "
	functionLabel    = "FUNCTION:"
	catalyticLabel   = "CATALYTIC ACTIVITY:"

	// FunctionStart prefixes the first line of a function block.
	FunctionStart = "CC   -!- " + functionLabel

	// CatalyticActivity is the marker that closes a function block.
	CatalyticActivity = "CC   -!- " + catalyticLabel

	// EvidenceToken opens an evidence-code citation such as {ECO:0000255}.
	EvidenceToken = "{ECO:"
)

// Line is one physical record line split into its line code and content.
type Line struct {
	// Tag is the line code (e.g. "CC", "ID", "DR"), or empty for
	// continuation lines such as sequence data that start with spaces.
	Tag string

	// Content is the text after the tag column with surrounding
	// whitespace removed.
	Content string
}

// IsComment reports whether the line is a CC line.
func (l Line) IsComment() bool { return l.Tag == TagComment }

// Subsection returns the topic label of a "-!- TOPIC:" comment line
// (e.g. "FUNCTION"), or "" when the line continues a previous topic.
func (l Line) Subsection() string {
	if !l.IsComment() || !strings.HasPrefix(l.Content, subsectionMarker) {
		return ""
	}
	rest := strings.TrimPrefix(l.Content, subsectionMarker)
	i := strings.IndexByte(rest, ':')
	if i <= 0 {
		return ""
	}
	return rest[:i]
}

// Lines splits a record into its physical lines. CRLF and bare CR
// terminators are normalized to LF; blank lines are kept.
func Lines(record string) []string {
	record = strings.ReplaceAll(record, "\r\n", "\n")
	record = strings.ReplaceAll(record, "\r", "\n")
	return strings.Split(record, "\n")
}

// ParseLine splits raw into its line code and content. The line code
// normally occupies a fixed five-column field; lines with shorter
// padding are split at the first space instead, and lines shorter than
// the field have no content.
func ParseLine(raw string) Line {
	raw = strings.TrimRight(raw, " \t")
	if len(raw) <= tagWidth && !strings.Contains(raw, " ") {
		return Line{Tag: raw}
	}

	end := strings.IndexByte(raw, ' ')
	if end < 0 || end > tagWidth {
		end = tagWidth
	}
	return Line{
		Tag:     raw[:end],
		Content: strings.TrimSpace(raw[end:]),
	}
}

// blockContent returns the text a function-block line contributes to the
// summary: the tag column and "-!- " marker are removed, and so is the
// "FUNCTION:" label. Other topic labels are kept.
func blockContent(raw string) string {
	content := ParseLine(raw).Content
	if !strings.HasPrefix(content, subsectionMarker) {
		return content
	}
	content = strings.TrimPrefix(content, subsectionMarker)
	if strings.HasPrefix(content, functionLabel) {
		content = strings.TrimPrefix(content, functionLabel)
	}
	return strings.TrimSpace(content)
}
