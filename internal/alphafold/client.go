// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package alphafold queries the AlphaFold Protein Structure Database for
// the structure prediction of a UniProt accession and downloads model
// files.
package alphafold

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/protein-viewer/internal/httputil"
	"github.com/pdiddy/protein-viewer/internal/logging"
	"github.com/pdiddy/protein-viewer/pkg/types"
)

var (
	// ErrNoPrediction means AlphaFold DB has no entry for the accession.
	ErrNoPrediction = errors.New("no AlphaFold prediction")

	// ErrNoModelURL means the entry carries no mmCIF model URL.
	ErrNoModelURL = errors.New("failed to retrieve model URL")

	// ErrUnexpectedFormat means the API response was not a prediction list.
	ErrUnexpectedFormat = errors.New("unexpected response format from AlphaFold API")
)

// maxModelBytes bounds a model file download.
const maxModelBytes = 64 << 20

// StatusError reports a non-200 response from AlphaFold DB. A 404 also
// matches ErrNoPrediction.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("AlphaFold API returned HTTP %d for %s", e.StatusCode, e.URL)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNoPrediction && e.StatusCode == http.StatusNotFound
}

// Client fetches predictions and model files.
type Client struct {
	HTTP   *http.Client
	Config types.AlphaFoldConfig
	Logger *zap.Logger
}

// NewClient returns a Client with an HTTP client honoring cfg.Timeout.
func NewClient(cfg types.AlphaFoldConfig, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = types.DefaultAlphaFoldURL
	}
	return &Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Logger: logging.OrNop(logger),
	}
}

// Prediction returns the first AlphaFold DB entry for accession.
func (c *Client) Prediction(ctx context.Context, accession string) (types.Prediction, error) {
	reqURL := strings.TrimRight(c.Config.BaseURL, "/") + "/" + url.PathEscape(accession)

	resp, err := c.get(ctx, reqURL, "application/json")
	if err != nil {
		return types.Prediction{}, err
	}
	defer resp.Body.Close()

	var entries []types.Prediction
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return types.Prediction{}, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
	}
	if len(entries) == 0 {
		return types.Prediction{}, fmt.Errorf("%w for %s", ErrNoPrediction, accession)
	}

	c.Logger.Debug("fetched AlphaFold prediction",
		zap.String("accession", accession),
		zap.String("entry", entries[0].EntryID),
		zap.Int("entries", len(entries)))
	return entries[0], nil
}

// Model downloads the model file at modelURL and returns its text.
func (c *Client) Model(ctx context.Context, modelURL string) (string, error) {
	resp, err := c.get(ctx, modelURL, "*/*")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxModelBytes))
	if err != nil {
		return "", fmt.Errorf("reading model %s: %w", modelURL, err)
	}
	return string(data), nil
}

// ModelURL returns the mmCIF model URL of p.
func ModelURL(p types.Prediction) (string, error) {
	if p.CifURL == "" {
		return "", ErrNoModelURL
	}
	return p.CifURL, nil
}

func (c *Client) get(ctx context.Context, reqURL, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)
	req.Header.Set("Accept", accept)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, c.Config.MaxRetries, c.Logger)
	if err != nil {
		return nil, fmt.Errorf("AlphaFold request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &StatusError{URL: reqURL, StatusCode: resp.StatusCode}
	}
	return resp, nil
}
