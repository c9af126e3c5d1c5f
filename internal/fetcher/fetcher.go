// Package fetcher turns a card-page URL into clean, readable text via a
// reader proxy, guarded by a domain allow-list.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/churnpilot/churnpilot/internal/common"
)

// DefaultAllowedDomains are the card sources extraction accepts. Subdomains
// of an entry are allowed too.
var DefaultAllowedDomains = []string{
	"nerdwallet.com",
	"thepointsguy.com",
	"doctorofcredit.com",
	"bankrate.com",
	"creditcards.com",
	"americanexpress.com",
	"chase.com",
	"capitalone.com",
	"citi.com",
	"usbank.com",
	"wellsfargo.com",
	"barclaycardus.com",
	"biltrewards.com",
}

// Config for the source fetcher.
type Config struct {
	ReaderBaseURL  string // default https://r.jina.ai/
	Timeout        time.Duration
	AllowedDomains []string
}

// Fetcher fetches a URL through a markdown reader proxy, which strips
// navigation chrome and returns the page as readable text.
type Fetcher struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Fetcher {
	if cfg.ReaderBaseURL == "" {
		cfg.ReaderBaseURL = "https://r.jina.ai/"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if len(cfg.AllowedDomains) == 0 {
		cfg.AllowedDomains = DefaultAllowedDomains
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Fetch retrieves pageURL as clean text. It fails with *common.FetchError
// when the domain is not allow-listed, the request times out, or the reader
// answers with a non-2xx status.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	if err := f.checkAllowed(pageURL); err != nil {
		return "", err
	}

	rid := uuid.New().String()
	start := time.Now()
	readerURL := strings.TrimRight(f.cfg.ReaderBaseURL, "/") + "/" + pageURL

	f.logger.Info("fetcher.request", "req_id", rid, "url", pageURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, readerURL, nil)
	if err != nil {
		return "", common.NewFetchError("could not build page request", err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := f.http.Do(req)
	if err != nil {
		f.logger.Error("fetcher.error", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return "", common.NewFetchError("could not fetch the page", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", common.NewFetchError("could not read the page", err)
	}
	if resp.StatusCode/100 != 2 {
		f.logger.Error("fetcher.bad_status", "req_id", rid, "status", resp.StatusCode)
		return "", common.NewFetchError(
			fmt.Sprintf("page fetch failed with status %d", resp.StatusCode), nil)
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return "", common.NewFetchError("page returned no readable content", nil)
	}

	f.logger.Info("fetcher.response",
		"req_id", rid,
		"bytes", len(body),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

func (f *Fetcher) checkAllowed(pageURL string) error {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return common.NewFetchError("invalid URL", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return common.NewFetchError("only http(s) URLs are supported", nil)
	}

	host := strings.ToLower(u.Hostname())
	for _, domain := range f.cfg.AllowedDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return nil
		}
	}
	return common.NewFetchError(
		fmt.Sprintf("domain %q is not on the list of supported card sources", host), nil)
}
