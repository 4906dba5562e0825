// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"go.uber.org/zap"

	"github.com/pdiddy/protein-viewer/internal/alphafold"
	"github.com/pdiddy/protein-viewer/internal/cache"
	"github.com/pdiddy/protein-viewer/internal/protein"
	"github.com/pdiddy/protein-viewer/internal/uniprot"
	"github.com/pdiddy/protein-viewer/pkg/types"
)

// services holds the collaborators built from config for one command run.
type services struct {
	cfg       types.Config
	uniprot   *uniprot.Client
	alphafold *alphafold.Client
	proteins  *protein.Service
	store     *cache.Store
}

// newServices wires the UniProt source, optionally behind the record
// cache, and the AlphaFold client into a protein.Service.
func newServices() (*services, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	s := &services{
		cfg:       cfg,
		uniprot:   uniprot.NewClient(cfg.UniProt, logger.Named("uniprot")),
		alphafold: alphafold.NewClient(cfg.AlphaFold, logger.Named("alphafold")),
	}

	var source uniprot.Source = s.uniprot
	if cfg.Cache.Enabled {
		store, err := cache.Open(cfg.Cache)
		if err != nil {
			return nil, err
		}
		s.store = store
		source = cache.NewSource(store, s.uniprot, logger.Named("cache"))
		logger.Debug("record cache enabled", zap.String("dir", cfg.Cache.Dir), zap.Duration("ttl", cfg.Cache.TTL))
	}

	s.proteins = protein.NewService(source, s.alphafold, cfg.UniProt.EvidenceFilter, logger.Named("protein"))
	return s, nil
}

func (s *services) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
