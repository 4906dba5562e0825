// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package annotation extracts a one-line function summary from a UniProtKB
// flat-text record. Extraction is a pure transformation over the record
// text; fetching the record belongs to the uniprot package.
package annotation

import "strings"

// Sentinel is returned when a record has no function block, or when the
// evidence filter removes every line of it.
const Sentinel = "No function description found."

// Section is the parser state while scanning a record.
type Section int

const (
	SectionNone Section = iota
	SectionFunction
)

func (s Section) String() string {
	switch s {
	case SectionFunction:
		return "function"
	default:
		return "none"
	}
}

// ExtractFunction returns the function summary of record. It collects the
// first function block, from the "-!- FUNCTION:" line through the first
// line for which IsTerminator holds, keeps only the lines containing one
// of the evidence filter tokens when a filter is given, and joins them
// with single spaces. Records without a function block yield Sentinel.
func ExtractFunction(record string, evidenceFilter []string) string {
	var collected []string
	section := SectionNone

	for _, raw := range Lines(record) {
		if strings.HasPrefix(raw, FunctionStart) {
			section = SectionFunction
		}
		if section != SectionFunction {
			continue
		}
		if content := blockContent(raw); content != "" {
			collected = append(collected, content)
		}
		if IsTerminator(raw) {
			break
		}
	}

	if filter := NormalizeFilter(evidenceFilter); len(filter) > 0 {
		collected = keepMatching(collected, filter)
	}

	summary := strings.Join(collected, " ")
	if summary == "" {
		return Sentinel
	}
	return summary
}

// IsTerminator reports whether raw is the last line of a function block:
// the catalytic-activity marker, an evidence-code citation, or the start
// of any other comment topic.
func IsTerminator(raw string) bool {
	if strings.Contains(raw, CatalyticActivity) || strings.Contains(raw, EvidenceToken) {
		return true
	}
	topic := ParseLine(raw).Subsection()
	return topic != "" && topic+":" != functionLabel
}

// NormalizeFilter trims filter tokens and drops blank ones.
func NormalizeFilter(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// IsSentinel reports whether summary is the "not found" value.
func IsSentinel(summary string) bool {
	return summary == Sentinel
}

func keepMatching(lines, tokens []string) []string {
	var kept []string
	for _, line := range lines {
		for _, tok := range tokens {
			if strings.Contains(line, tok) {
				kept = append(kept, line)
				break
			}
		}
	}
	return kept
}
