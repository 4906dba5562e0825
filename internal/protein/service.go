// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package protein combines the AlphaFold prediction and the UniProt
// function summary of an accession into the view served to users.
package protein

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/protein-viewer/internal/alphafold"
	"github.com/pdiddy/protein-viewer/internal/annotation"
	"github.com/pdiddy/protein-viewer/internal/logging"
	"github.com/pdiddy/protein-viewer/internal/uniprot"
	"github.com/pdiddy/protein-viewer/pkg/types"
)

// Predictor returns the structure prediction for an accession.
type Predictor interface {
	Prediction(ctx context.Context, accession string) (types.Prediction, error)
}

// Service looks up proteins. DefaultFilter applies when a caller passes no
// evidence filter of its own.
type Service struct {
	Annotations   uniprot.Source
	Predictions   Predictor
	DefaultFilter []string
	Logger        *zap.Logger
}

// NewService returns a Service over the given collaborators.
func NewService(annotations uniprot.Source, predictions Predictor, defaultFilter []string, logger *zap.Logger) *Service {
	return &Service{
		Annotations:   annotations,
		Predictions:   predictions,
		DefaultFilter: annotation.NormalizeFilter(defaultFilter),
		Logger:        logging.OrNop(logger),
	}
}

// Lookup validates accession and fetches its prediction and function
// summary concurrently. It fails when either upstream fails or when the
// prediction has no model URL; a record without a function block is not
// a failure and yields annotation.Sentinel as the summary.
func (s *Service) Lookup(ctx context.Context, accession string, evidenceFilter []string) (types.Protein, error) {
	acc, err := uniprot.ValidateAccession(accession)
	if err != nil {
		return types.Protein{}, err
	}

	var (
		prediction types.Prediction
		summary    string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.Predictions.Prediction(gctx, acc)
		if err != nil {
			return fmt.Errorf("prediction for %s: %w", acc, err)
		}
		prediction = p
		return nil
	})
	g.Go(func() error {
		sum, err := uniprot.FunctionSummary(gctx, s.Annotations, acc, s.filter(evidenceFilter))
		if err != nil {
			return fmt.Errorf("function for %s: %w", acc, err)
		}
		summary = sum
		return nil
	})
	if err := g.Wait(); err != nil {
		s.Logger.Warn("protein lookup failed", zap.String("accession", acc), zap.Error(err))
		return types.Protein{}, err
	}

	modelURL, err := alphafold.ModelURL(prediction)
	if err != nil {
		return types.Protein{}, fmt.Errorf("prediction for %s: %w", acc, err)
	}

	s.Logger.Info("protein lookup",
		zap.String("accession", acc),
		zap.String("entry", prediction.EntryID),
		zap.Bool("has_function", !annotation.IsSentinel(summary)))

	return types.Protein{
		Accession:   acc,
		Name:        prediction.Name(),
		Summary:     summary,
		ModelURL:    modelURL,
		Gene:        prediction.Gene,
		Organism:    prediction.OrganismScientificName,
		PdbURL:      prediction.PdbURL,
		PaeImageURL: prediction.PaeImageURL,
	}, nil
}

// Function returns only the function summary of accession.
func (s *Service) Function(ctx context.Context, accession string, evidenceFilter []string) (string, error) {
	acc, err := uniprot.ValidateAccession(accession)
	if err != nil {
		return "", err
	}
	return uniprot.FunctionSummary(ctx, s.Annotations, acc, s.filter(evidenceFilter))
}

// Prediction returns the validated accession's AlphaFold entry.
func (s *Service) Prediction(ctx context.Context, accession string) (types.Prediction, error) {
	acc, err := uniprot.ValidateAccession(accession)
	if err != nil {
		return types.Prediction{}, err
	}
	return s.Predictions.Prediction(ctx, acc)
}

func (s *Service) filter(requested []string) []string {
	if f := annotation.NormalizeFilter(requested); len(f) > 0 {
		return f
	}
	return s.DefaultFilter
}
