// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package uniprot retrieves UniProtKB flat-text records and turns them into
// function summaries. The Source interface is the capability callers
// inject; Client is its REST implementation.
package uniprot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/protein-viewer/internal/annotation"
	"github.com/pdiddy/protein-viewer/internal/httputil"
	"github.com/pdiddy/protein-viewer/internal/logging"
	"github.com/pdiddy/protein-viewer/pkg/types"
)

// maxRecordBytes bounds a single flat-text record download.
const maxRecordBytes = 16 << 20

// Source supplies the flat-text record for an accession. Implementations
// return an error matching ErrSourceUnavailable when no record can be
// obtained.
type Source interface {
	FetchRecord(ctx context.Context, accession string) (string, error)
}

// Client fetches records from the UniProtKB REST API.
type Client struct {
	HTTP   *http.Client
	Config types.UniProtConfig
	Logger *zap.Logger
}

// NewClient returns a Client with an HTTP client honoring cfg.Timeout.
func NewClient(cfg types.UniProtConfig, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = types.DefaultUniProtURL
	}
	return &Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Logger: logging.OrNop(logger),
	}
}

// FetchRecord downloads {BaseURL}/{accession}.txt. Any transport failure
// or non-200 status is returned as a *SourceUnavailableError.
func (c *Client) FetchRecord(ctx context.Context, accession string) (string, error) {
	reqURL := strings.TrimRight(c.Config.BaseURL, "/") + "/" + url.PathEscape(accession) + ".txt"

	body, status, err := c.get(ctx, reqURL, "text/plain")
	if err != nil {
		return "", &SourceUnavailableError{Accession: accession, StatusCode: status, Err: err}
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, reqURL, accept string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)
	req.Header.Set("Accept", accept)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, c.Config.MaxRetries, c.Logger)
	if err != nil {
		return "", 0, fmt.Errorf("UniProt request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", resp.StatusCode, fmt.Errorf("UniProt returned HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRecordBytes))
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("reading UniProt response: %w", err)
	}
	c.Logger.Debug("fetched UniProt record", zap.String("url", reqURL), zap.Int("bytes", len(data)))
	return string(data), resp.StatusCode, nil
}

// FunctionSummary fetches the record for accession from src and extracts
// its function summary. Retrieval failures are returned unchanged; a
// record without a function block yields annotation.Sentinel.
func FunctionSummary(ctx context.Context, src Source, accession string, evidenceFilter []string) (string, error) {
	record, err := src.FetchRecord(ctx, accession)
	if err != nil {
		return "", err
	}
	return annotation.ExtractFunction(record, evidenceFilter), nil
}
