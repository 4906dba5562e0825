// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/protein-viewer/internal/httputil"
	"github.com/pdiddy/protein-viewer/pkg/types"
)

var gzipMagic = []byte{0x1f, 0x8b}

// StreamAccessions downloads the accession/entry-name TSV for every entry
// matching query and copies it, decompressed, to w. It returns the number of
// bytes written. An empty query uses types.DefaultAccessionQuery.
func (c *Client) StreamAccessions(ctx context.Context, query string, w io.Writer) (int64, error) {
	if strings.TrimSpace(query) == "" {
		query = types.DefaultAccessionQuery
	}
	params := url.Values{
		"compressed": {"true"},
		"fields":     {"accession,id"},
		"format":     {"tsv"},
		"query":      {query},
	}
	reqURL := strings.TrimRight(c.Config.BaseURL, "/") + "/stream?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)

	// The stream can take minutes; only ctx bounds it.
	streamClient := *c.HTTP
	streamClient.Timeout = 0

	resp, err := httputil.DoWithRetry(ctx, &streamClient, req, c.Config.MaxRetries, c.Logger)
	if err != nil {
		return 0, &SourceUnavailableError{Accession: "stream", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return 0, &SourceUnavailableError{
			Accession:  "stream",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("UniProt stream returned HTTP %d", resp.StatusCode),
		}
	}

	body, err := decompressed(resp)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	n, err := io.Copy(w, body)
	if err != nil {
		return n, fmt.Errorf("copying accession stream: %w", err)
	}
	c.Logger.Info("accession stream written", zap.String("query", query), zap.Int64("bytes", n))
	return n, nil
}

// decompressed returns the response body, gunzipping it when the payload
// starts with the gzip magic bytes. net/http already undoes a gzip
// Content-Encoding it negotiated itself, so the header is not consulted.
func decompressed(resp *http.Response) (io.ReadCloser, error) {
	br := bufio.NewReader(resp.Body)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading accession stream: %w", err)
	}
	if !bytes.Equal(head, gzipMagic) {
		return io.NopCloser(br), nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("opening gzip stream: %w", err)
	}
	return zr, nil
}
