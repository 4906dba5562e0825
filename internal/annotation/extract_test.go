// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package annotation

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record joins lines with LF the way the UniProt REST API returns them.
func record(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// sampleRecord is trimmed from the P69905 (HBA_HUMAN) entry.
var sampleRecord = record(
	"ID   HBA_HUMAN               Reviewed;         142 AA.",
	"AC   P69905; P01922; Q1HDT5; Q3MIF5; Q53F97; Q96KF1; Q9NYR7; Q9UCM0;",
	"DE   RecName: Full=Hemoglobin subunit alpha;",
	"CC   -!- FUNCTION: Involved in oxygen transport from the lung to the",
	"CC       various peripheral tissues. {ECO:0000269|PubMed:6348200}.",
	"CC   -!- FUNCTION: [Hemopressin]: Hemopressin acts as an antagonist",
	"CC       peptide of the cannabinoid receptor CNR1. {ECO:0000269|PubMed:18077343}.",
	"CC   -!- SUBUNIT: Heterotetramer of two alpha chains and two beta chains.",
	"DR   PDB; 1A00; X-ray; 2.00 A; A/C=2-142.",
	"//",
)

func TestExtractFunction_NoFunctionMarker(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{"empty", ""},
		{"whitespace", "   \n\n\t"},
		{"only data lines", record("ID   X_HUMAN", "SQ   SEQUENCE   10 AA;", "//")},
		{"other topics only", record("CC   -!- SUBUNIT: Homodimer.", "CC   -!- CATALYTIC ACTIVITY: Reaction: A = B.")},
		{"function marker not at line start", record("DE   see CC   -!- FUNCTION: nope")},
		{"marker missing padding", record("CC -!- FUNCTION: nope")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Sentinel, ExtractFunction(tt.record, nil))
		})
	}
}

func TestExtractFunction_Scenario(t *testing.T) {
	in := record(
		"CC   -!- FUNCTION: Catalyzes reaction A.",
		"CC   -!- FUNCTION: Produces B.",
		"CC   -!- CATALYTIC ACTIVITY: Reaction: A = B.",
	)
	got := ExtractFunction(in, nil)
	assert.Equal(t, "Catalyzes reaction A. Produces B. CATALYTIC ACTIVITY: Reaction: A = B.", got)
}

func TestExtractFunction_CatalyticActivityIncludedOnce(t *testing.T) {
	in := record(
		"CC   -!- FUNCTION: Hydrolyzes ATP.",
		"CC   -!- CATALYTIC ACTIVITY: Reaction: ATP + H2O = ADP + phosphate.",
		"CC         Xref=Rhea:RHEA:13065;",
		"CC   -!- FUNCTION: Later block that must be ignored.",
	)
	got := ExtractFunction(in, nil)

	assert.Equal(t, "Hydrolyzes ATP. CATALYTIC ACTIVITY: Reaction: ATP + H2O = ADP + phosphate.", got)
	assert.Equal(t, 1, strings.Count(got, "CATALYTIC ACTIVITY"))
	assert.NotContains(t, got, "Rhea")
	assert.NotContains(t, got, "Later block")
}

func TestExtractFunction_EvidenceTokenStopsScan(t *testing.T) {
	got := ExtractFunction(sampleRecord, nil)
	assert.Equal(t, "Involved in oxygen transport from the lung to the various peripheral tissues. {ECO:0000269|PubMed:6348200}.", got)
	assert.NotContains(t, got, "Hemopressin")
}

func TestExtractFunction_EvidenceTokenOnStartLine(t *testing.T) {
	in := record(
		"CC   -!- FUNCTION: Binds DNA. {ECO:0000250}.",
		"CC       Not part of the summary.",
	)
	assert.Equal(t, "Binds DNA. {ECO:0000250}.", ExtractFunction(in, nil))
}

func TestExtractFunction_OtherTopicEndsBlock(t *testing.T) {
	in := record(
		"CC   -!- FUNCTION: Forms a channel",
		"CC       across the membrane.",
		"CC   -!- SUBUNIT: Homotetramer.",
		"CC       Interacts with KCNE1.",
	)
	assert.Equal(t, "Forms a channel across the membrane. SUBUNIT: Homotetramer.", ExtractFunction(in, nil))
}

func TestExtractFunction_EvidenceFilter(t *testing.T) {
	in := record(
		"CC   -!- FUNCTION: Also catalyzes X.",
		"CC       Binds zinc. {ECO:0000255}",
	)

	assert.Equal(t, "Binds zinc. {ECO:0000255}", ExtractFunction(in, []string{"ECO:0000255"}))
	assert.Equal(t, "Also catalyzes X. Binds zinc. {ECO:0000255}", ExtractFunction(in, nil))
	assert.Equal(t, "Also catalyzes X. Binds zinc. {ECO:0000255}", ExtractFunction(in, []string{}))
	assert.Equal(t, "Also catalyzes X. Binds zinc. {ECO:0000255}", ExtractFunction(in, []string{"  ", ""}))
}

func TestExtractFunction_FilterRemovesEverything(t *testing.T) {
	got := ExtractFunction(sampleRecord, []string{"ECO:0000305"})
	assert.Equal(t, Sentinel, got)
	assert.True(t, IsSentinel(got))
}

func TestExtractFunction_FilterAnyToken(t *testing.T) {
	in := record(
		"CC   -!- FUNCTION: Kinase.",
		"CC   -!- FUNCTION: Phosphorylates MAPK1. {ECO:0000269|PubMed:1}",
	)
	got := ExtractFunction(in, []string{"ECO:0000255", "PubMed:1"})
	assert.Equal(t, "Phosphorylates MAPK1. {ECO:0000269|PubMed:1}", got)
}

func TestExtractFunction_LineEndings(t *testing.T) {
	lf := record("CC   -!- FUNCTION: Transports", "CC       iron. {ECO:0000250}")
	crlf := strings.ReplaceAll(lf, "\n", "\r\n")
	cr := strings.ReplaceAll(lf, "\n", "\r")

	want := "Transports iron. {ECO:0000250}"
	assert.Equal(t, want, ExtractFunction(lf, nil))
	assert.Equal(t, want, ExtractFunction(crlf, nil))
	assert.Equal(t, want, ExtractFunction(cr, nil))
}

func TestExtractFunction_BlankAndShortLinesInBlock(t *testing.T) {
	in := record(
		"CC   -!- FUNCTION: Part one.",
		"",
		"CC",
		"CC       Part two. {ECO:0000255}",
	)
	assert.Equal(t, "Part one. Part two. {ECO:0000255}", ExtractFunction(in, nil))
}

func TestExtractFunction_Idempotent(t *testing.T) {
	filter := []string{"ECO:0000269"}
	first := ExtractFunction(sampleRecord, filter)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, ExtractFunction(sampleRecord, filter))
	}
}

func TestExtractFunction_DoesNotModifyFilter(t *testing.T) {
	filter := []string{" ECO:0000269 ", ""}
	ExtractFunction(sampleRecord, filter)
	assert.Equal(t, []string{" ECO:0000269 ", ""}, filter)
}

func TestExtractFunction_Concurrent(t *testing.T) {
	want := ExtractFunction(sampleRecord, nil)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ExtractFunction(sampleRecord, nil)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestIsTerminator(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"CC   -!- CATALYTIC ACTIVITY: Reaction: A = B.", true},
		{"CC       tissues. {ECO:0000269|PubMed:6348200}.", true},
		{"CC   -!- SUBCELLULAR LOCATION: Cytoplasm.", true},
		{"CC   -!- FUNCTION: Binds heme.", false},
		{"CC       continuation text", false},
		{"DR   PDB; 1A00;", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTerminator(tt.line))
		})
	}
}

func TestNormalizeFilter(t *testing.T) {
	assert.Nil(t, NormalizeFilter(nil))
	assert.Nil(t, NormalizeFilter([]string{" ", ""}))
	assert.Equal(t, []string{"ECO:0000255", "ECO:0000269"}, NormalizeFilter([]string{" ECO:0000255", "ECO:0000269 ", "\t"}))
}

func TestSectionString(t *testing.T) {
	assert.Equal(t, "none", SectionNone.String())
	assert.Equal(t, "function", SectionFunction.String())
}
