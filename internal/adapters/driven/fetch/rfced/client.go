// Package rfced fetches the RFC corpus from the RFC Editor: the full
// tarball mirror, the rfc-index title listing, and individual documents
// as HTML reduced to plain text. It is the network collaborator behind
// the driven.Fetcher port; callers own retry policy.
package rfced

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/rfcdex/rfcdex/internal/core/ports/driven"
	"github.com/rfcdex/rfcdex/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.Fetcher = (*Client)(nil)

const (
	// DefaultArchiveURL is the RFC Editor's full-corpus tarball.
	DefaultArchiveURL = "https://www.rfc-editor.org/in-notes/tar/RFC-all.tar.gz"

	// DefaultIndexURL is the title index listing.
	DefaultIndexURL = "https://www.rfc-editor.org/rfc-index.txt"

	// DefaultDocumentURL is the per-document HTML page, with the RFC
	// number substituted.
	DefaultDocumentURL = "https://www.rfc-editor.org/rfc/rfc%d.html"

	// requestTimeout bounds every HTTP call. The tarball is large, so
	// the archive download gets a longer allowance.
	requestTimeout = 30 * time.Second
	archiveTimeout = 10 * time.Minute

	// fetchParallelism bounds concurrent per-document fetches. Workers
	// overlap I/O only; each result is committed independently.
	fetchParallelism = 4

	// requestsPerSecond keeps bulk page fetches polite.
	requestsPerSecond = 5
)

// Client fetches RFC content over HTTP.
type Client struct {
	httpClient  *http.Client
	limiter     *rate.Limiter
	archiveURL  string
	indexURL    string
	documentURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURLs overrides the archive, index and per-document URLs.
// Used by tests to point at a local server.
func WithBaseURLs(archive, index, document string) Option {
	return func(c *Client) {
		c.archiveURL = archive
		c.indexURL = index
		c.documentURL = document
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a fetch client with default endpoints and timeouts.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: requestTimeout},
		limiter:     rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		archiveURL:  DefaultArchiveURL,
		indexURL:    DefaultIndexURL,
		documentURL: DefaultDocumentURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchCorpus downloads the full tarball into dir and extracts the
// plain-text members. Returns the directory holding the extracted files.
func (c *Client) FetchCorpus(ctx context.Context, dir string) (string, error) {
	archivePath := filepath.Join(dir, "RFC-all.tar.gz")

	logger.Info("Downloading corpus archive from %s", c.archiveURL)
	if err := c.download(ctx, c.archiveURL, archivePath, archiveTimeout); err != nil {
		return "", fmt.Errorf("downloading archive: %w", err)
	}

	extractDir := filepath.Join(dir, "rfc_files")
	if err := extractArchive(archivePath, extractDir); err != nil {
		return "", fmt.Errorf("extracting archive: %w", err)
	}

	// The archive has served its purpose.
	if err := os.Remove(archivePath); err != nil {
		logger.Warn("Removing archive: %v", err)
	}
	return extractDir, nil
}

// FetchIndexListing downloads rfc-index.txt and parses it into one raw
// entry string per document.
func (c *Client) FetchIndexListing(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, c.indexURL)
	if err != nil {
		return nil, fmt.Errorf("fetching index listing: %w", err)
	}
	return ParseIndexListing(string(body)), nil
}

// FetchDocument retrieves one document's HTML page and reduces it to
// plain text. The returned name follows the archive convention
// ("rfc<number>.txt") so the record builder can derive the number.
func (c *Client) FetchDocument(ctx context.Context, number int) (*driven.RawDocument, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf(c.documentURL, number)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching rfc %d: %w", number, err)
	}

	text := htmlToPlainText(string(body))
	return &driven.RawDocument{
		Name:    fmt.Sprintf("rfc%d.txt", number),
		Content: []byte(text),
	}, nil
}

// FetchDocuments retrieves several documents with bounded parallelism.
// Workers share nothing but the result slice slot each owns; a failed
// number is logged and reported as a nil entry rather than failing the
// batch, mirroring skip-and-log ingestion.
func (c *Client) FetchDocuments(ctx context.Context, numbers []int) ([]*driven.RawDocument, error) {
	docs := make([]*driven.RawDocument, len(numbers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchParallelism)
	for i, number := range numbers {
		g.Go(func() error {
			doc, err := c.FetchDocument(ctx, number)
			if err != nil {
				if ctx.Err() != nil {
					return err
				}
				logger.Warn("Skipping rfc %d: %v", number, err)
				return nil
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// get performs a GET and returns the response body.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s from %s", resp.Status, url)
	}
	return io.ReadAll(resp.Body)
}

// download streams a GET response to a file. The archive is too large to
// hold in memory.
func (c *Client) download(ctx context.Context, url, dest string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	// The client's per-request timeout would cut the stream short; rely
	// on the context deadline instead.
	client := &http.Client{Transport: c.httpClient.Transport}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s from %s", resp.Status, url)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return err
	}
	return f.Sync()
}

// extractArchive unpacks the .txt members of a tar.gz archive into dir,
// flattening any directory structure. Non-text members are skipped here
// so the ingest loop never sees them.
func extractArchive(src, dir string) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		name := filepath.Base(hdr.Name)
		if !strings.HasSuffix(name, ".txt") {
			continue
		}

		out, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}
	}
}
