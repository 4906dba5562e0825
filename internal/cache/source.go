// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"context"

	"go.uber.org/zap"

	"github.com/pdiddy/protein-viewer/internal/logging"
	"github.com/pdiddy/protein-viewer/internal/uniprot"
)

// Source serves records from the Store and falls back to Upstream on a
// miss. Upstream failures are returned unchanged and never cached.
type Source struct {
	Store    *Store
	Upstream uniprot.Source
	Logger   *zap.Logger
}

// NewSource wraps upstream with store.
func NewSource(store *Store, upstream uniprot.Source, logger *zap.Logger) *Source {
	return &Source{Store: store, Upstream: upstream, Logger: logging.OrNop(logger)}
}

// FetchRecord implements uniprot.Source.
func (s *Source) FetchRecord(ctx context.Context, accession string) (string, error) {
	entry, ok, err := s.Store.Get(ctx, accession)
	if err != nil {
		s.Logger.Warn("cache read failed", zap.String("accession", accession), zap.Error(err))
	} else if ok {
		s.Logger.Debug("cache hit", zap.String("accession", accession))
		return entry.Body, nil
	}

	body, err := s.Upstream.FetchRecord(ctx, accession)
	if err != nil {
		return "", err
	}
	if err := s.Store.Put(ctx, accession, body); err != nil {
		s.Logger.Warn("cache write failed", zap.String("accession", accession), zap.Error(err))
	}
	return body, nil
}
