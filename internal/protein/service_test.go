// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package protein

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/pdiddy/protein-viewer/internal/alphafold"
	"github.com/pdiddy/protein-viewer/internal/annotation"
	"github.com/pdiddy/protein-viewer/internal/uniprot"
	"github.com/pdiddy/protein-viewer/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const hbaRecord = "ID   HBA_HUMAN\n" +
	"CC   -!- FUNCTION: Involved in oxygen transport from the lung to the\n" +
	"CC       various peripheral tissues. {ECO:0000269|PubMed:6348200}.\n" +
	"//\n"

type fakeAnnotations struct {
	mu       sync.Mutex
	record   string
	err      error
	accessed []string
}

func (f *fakeAnnotations) FetchRecord(_ context.Context, acc string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accessed = append(f.accessed, acc)
	return f.record, f.err
}

type fakePredictor struct {
	prediction types.Prediction
	err        error
	block      bool
}

func (f *fakePredictor) Prediction(ctx context.Context, _ string) (types.Prediction, error) {
	if f.block {
		<-ctx.Done()
		return types.Prediction{}, ctx.Err()
	}
	return f.prediction, f.err
}

var hbaPrediction = types.Prediction{
	EntryID:                "AF-P69905-F1",
	UniProtAccession:       "P69905",
	UniProtDescription:     "Hemoglobin subunit alpha",
	Gene:                   "HBA1",
	OrganismScientificName: "Homo sapiens",
	CifURL:                 "https://alphafold.ebi.ac.uk/files/AF-P69905-F1-model_v4.cif",
	PdbURL:                 "https://alphafold.ebi.ac.uk/files/AF-P69905-F1-model_v4.pdb",
}

func TestLookup(t *testing.T) {
	ann := &fakeAnnotations{record: hbaRecord}
	svc := NewService(ann, &fakePredictor{prediction: hbaPrediction}, nil, nil)

	p, err := svc.Lookup(context.Background(), " p69905", nil)
	require.NoError(t, err)

	assert.Equal(t, types.Protein{
		Accession: "P69905",
		Name:      "Hemoglobin subunit alpha",
		Summary:   "Involved in oxygen transport from the lung to the various peripheral tissues. {ECO:0000269|PubMed:6348200}.",
		ModelURL:  hbaPrediction.CifURL,
		Gene:      "HBA1",
		Organism:  "Homo sapiens",
		PdbURL:    hbaPrediction.PdbURL,
	}, p)
	assert.Equal(t, []string{"P69905"}, ann.accessed)
}

func TestLookup_NoFunctionBlock(t *testing.T) {
	svc := NewService(&fakeAnnotations{record: "ID   X\n//\n"}, &fakePredictor{prediction: hbaPrediction}, nil, nil)

	p, err := svc.Lookup(context.Background(), "P69905", nil)
	require.NoError(t, err)
	assert.Equal(t, annotation.Sentinel, p.Summary)
}

func TestLookup_UnknownName(t *testing.T) {
	pred := hbaPrediction
	pred.UniProtDescription = ""
	svc := NewService(&fakeAnnotations{record: hbaRecord}, &fakePredictor{prediction: pred}, nil, nil)

	p, err := svc.Lookup(context.Background(), "P69905", nil)
	require.NoError(t, err)
	assert.Equal(t, types.UnknownName, p.Name)
}

func TestLookup_SourceUnavailablePropagates(t *testing.T) {
	ann := &fakeAnnotations{err: &uniprot.SourceUnavailableError{Accession: "P69905", StatusCode: 500}}
	svc := NewService(ann, &fakePredictor{prediction: hbaPrediction}, nil, nil)

	_, err := svc.Lookup(context.Background(), "P69905", nil)
	assert.ErrorIs(t, err, uniprot.ErrSourceUnavailable)
}

func TestLookup_SourceFailureCancelsPrediction(t *testing.T) {
	ann := &fakeAnnotations{err: &uniprot.SourceUnavailableError{Accession: "P69905", StatusCode: 503}}
	svc := NewService(ann, &fakePredictor{block: true}, nil, nil)

	_, err := svc.Lookup(context.Background(), "P69905", nil)
	assert.ErrorIs(t, err, uniprot.ErrSourceUnavailable)
}

func TestLookup_PredictionErrors(t *testing.T) {
	noModel := hbaPrediction
	noModel.CifURL = ""

	tests := []struct {
		name string
		pred *fakePredictor
		want error
	}{
		{"no prediction", &fakePredictor{err: alphafold.ErrNoPrediction}, alphafold.ErrNoPrediction},
		{"no model url", &fakePredictor{prediction: noModel}, alphafold.ErrNoModelURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeAnnotations{record: hbaRecord}, tt.pred, nil, nil)
			_, err := svc.Lookup(context.Background(), "P69905", nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLookup_InvalidAccession(t *testing.T) {
	ann := &fakeAnnotations{record: hbaRecord}
	svc := NewService(ann, &fakePredictor{prediction: hbaPrediction}, nil, nil)

	_, err := svc.Lookup(context.Background(), "not-an-id", nil)
	assert.ErrorIs(t, err, uniprot.ErrInvalidAccession)
	assert.Empty(t, ann.accessed)
}

func TestFunction_Filters(t *testing.T) {
	ann := &fakeAnnotations{record: hbaRecord}

	svc := NewService(ann, nil, []string{"ECO:0000255"}, nil)
	got, err := svc.Function(context.Background(), "P69905", nil)
	require.NoError(t, err)
	assert.Equal(t, annotation.Sentinel, got, "default filter applies")

	got, err = svc.Function(context.Background(), "P69905", []string{"ECO:0000269"})
	require.NoError(t, err)
	assert.Equal(t, "various peripheral tissues. {ECO:0000269|PubMed:6348200}.", got, "request filter wins")
}

func TestPrediction(t *testing.T) {
	svc := NewService(nil, &fakePredictor{prediction: hbaPrediction}, nil, nil)
	p, err := svc.Prediction(context.Background(), "P69905")
	require.NoError(t, err)
	assert.Equal(t, hbaPrediction, p)

	_, err = svc.Prediction(context.Background(), "")
	assert.ErrorIs(t, err, uniprot.ErrInvalidAccession)
}

func TestLookup_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := NewService(&fakeAnnotations{record: hbaRecord}, &fakePredictor{block: true}, nil, nil)

	_, err := svc.Lookup(ctx, "P69905", nil)
	assert.True(t, errors.Is(err, context.Canceled))
}
