package extractor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"text-summarizer/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
	"mvdan.cc/xurls/v2"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	DefaultTimeout  = 10 * time.Second
	DefaultMaxBytes = 5 << 20
)

// ContentFetcher turns a page URL into plain text.
type ContentFetcher interface {
	Extract(ctx context.Context, rawURL string) (string, error)
}

type Extractor struct {
	client   *http.Client
	maxBytes int64
	log      *slog.Logger
}

func New(timeout time.Duration, maxBytes int64, log *slog.Logger) *Extractor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	return &Extractor{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
		log:      log,
	}
}

// Extract fetches rawURL and returns its visible text with script and style
// content removed and whitespace collapsed. Every failure is an
// *domain.ExtractionError.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (string, error) {
	pageURL, err := validateURL(rawURL)
	if err != nil {
		return "", &domain.ExtractionError{Err: err}
	}

	doc, err := e.fetchDocument(ctx, pageURL)
	if err != nil {
		return "", &domain.ExtractionError{Err: err}
	}

	text := documentText(doc)

	e.log.DebugContext(ctx, "Page content is extracted",
		"url", pageURL,
		"chars", utf8.RuneCountInString(text))

	return text, nil
}

func (e *Extractor) fetchDocument(
	ctx context.Context,
	pageURL string,
) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req) //nolint:gosec // user-supplied URL is the point
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err = resp.Body.Close(); err != nil {
			e.log.ErrorContext(ctx, "Failed to close response body",
				"error", err,
				"url", pageURL,
				"operation", "fetchDocument")
		}
	}()

	// Redirects are followed by the client, so a 3xx here was not resolvable.
	if !isSuccessStatus(resp.StatusCode) {
		return nil, fmt.Errorf("do request: unexpected status: %d", resp.StatusCode)
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, e.maxBytes), resp.Header.Get("Content-Type"))
	switch {
	case errors.Is(err, io.EOF):
		// Zero-byte body: parse it as an empty document.
		body = strings.NewReader("")
	case err != nil:
		return nil, fmt.Errorf("decode charset: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("create document from reader: %w", err)
	}

	return doc, nil
}

func isSuccessStatus(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

// validateURL accepts any absolute http(s) URL that net/url can parse. When
// the input is not one, the error points at a URL embedded in it, if any.
func validateURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", errors.New("URL is empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", withURLHint(fmt.Errorf("parse URL: %w", err), rawURL)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", withURLHint(fmt.Errorf("not an http(s) URL: %q", rawURL), rawURL)
	}

	if u.Host == "" {
		return "", fmt.Errorf("URL has no host: %q", rawURL)
	}

	return u.String(), nil
}

func withURLHint(err error, text string) error {
	httpURLRe, reErr := xurls.StrictMatchingScheme("https?://")
	if reErr != nil {
		return err
	}

	hint := httpURLRe.FindString(text)
	if hint == "" || hint == text {
		return err
	}

	return fmt.Errorf("%w (did you mean %q?)", err, hint)
}
