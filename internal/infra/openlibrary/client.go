// Package openlibrary implements service.BookMetadataProvider on top of the
// OpenLibrary search API.
package openlibrary

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"bookshelf/config"
	"bookshelf/internal/domain/identity"
	"bookshelf/internal/domain/service"
	"bookshelf/internal/errors"
)

// Platform is stored on imported books as their source.
const Platform = "openlibrary"

const (
	defaultTimeout    = 15 * time.Second
	defaultRPS        = 1.0
	defaultBackoff    = time.Second
	defaultUserAgent  = "bookshelf/1.0"
	defaultSearchSize = 20
)

// searchFields are requested from search.json; one per Book attribute.
var searchFields = []string{
	"key",
	"title",
	"subtitle",
	"alternative_title",
	"alternative_subtitle",
	"author_name",
	"first_publish_year",
	"cover_i",
	"ebook_access",
	"edition_count",
	"format",
	"first_sentence",
	"number_of_pages_median",
	"ratings_average",
	"ratings_count",
	"want_to_read_count",
	"ia",
}

// statusError is a non-200 response from OpenLibrary.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return "unexpected status code: " + strconv.Itoa(e.code)
}

func (e *statusError) retryable() bool {
	return e.code == http.StatusTooManyRequests || e.code >= http.StatusInternalServerError
}

// Client talks to openlibrary.org. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	maxRetries int
	backoff    time.Duration
	logger     *slog.Logger
}

var _ service.BookMetadataProvider = (*Client)(nil)

// NewClient creates a client from the openLibrary config section.
func NewClient(cfg *config.OpenLibraryConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRPS
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  userAgent,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		maxRetries: maxRetries,
		backoff:    defaultBackoff,
		logger:     logger.With(slog.String("component", "openlibrary")),
	}
}

// searchResponse matches search.json
type searchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []searchDoc `json:"docs"`
}

type searchDoc struct {
	Key                 string   `json:"key"`
	Title               string   `json:"title"`
	Subtitle            string   `json:"subtitle"`
	AlternativeTitle    []string `json:"alternative_title"`
	AlternativeSubtitle []string `json:"alternative_subtitle"`
	AuthorName          []string `json:"author_name"`
	FirstPublishYear    int      `json:"first_publish_year"`
	CoverID             int64    `json:"cover_i"`
	EbookAccess         string   `json:"ebook_access"`
	EditionCount        int      `json:"edition_count"`
	Format              []string `json:"format"`
	FirstSentence       []string `json:"first_sentence"`
	NumberOfPagesMedian int      `json:"number_of_pages_median"`
	RatingsAverage      float64  `json:"ratings_average"`
	RatingsCount        int      `json:"ratings_count"`
	WantToReadCount     int      `json:"want_to_read_count"`
	IA                  []string `json:"ia"`
}

// FetchWork looks a single work up by key. Both "OL27448W" and "/works/OL27448W" are accepted.
func (c *Client) FetchWork(ctx context.Context, externalKey string) (*service.BookMetadata, error) {
	key := identity.NormalizeExternalKey(strings.TrimSpace(externalKey))
	if key == "" {
		return nil, errors.Wrap(service.ErrMetadataNotFound, "empty work key")
	}

	res, err := c.search(ctx, url.Values{"q": {"key:" + key}}, 1)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch work %s", key)
	}

	for i := range res.Docs {
		if res.Docs[i].Key == key {
			return res.Docs[i].toMetadata(), nil
		}
	}

	return nil, errors.Wrapf(service.ErrMetadataNotFound, "work %s", key)
}

// SearchWorks runs a free-text search.
func (c *Client) SearchWorks(ctx context.Context, query string, limit int) ([]*service.BookMetadata, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*service.BookMetadata{}, nil
	}
	if limit <= 0 {
		limit = defaultSearchSize
	}

	res, err := c.search(ctx, url.Values{"q": {query}}, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "search works %q", query)
	}

	out := make([]*service.BookMetadata, 0, len(res.Docs))
	for i := range res.Docs {
		if res.Docs[i].Key == "" {
			continue
		}
		out = append(out, res.Docs[i].toMetadata())
		if len(out) == limit {
			break
		}
	}

	return out, nil
}

func (c *Client) search(ctx context.Context, params url.Values, limit int) (*searchResponse, error) {
	params.Set("fields", strings.Join(searchFields, ","))
	params.Set("limit", strconv.Itoa(limit))
	u := c.baseURL + "/search.json?" + params.Encode()

	var res searchResponse
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *Client) get(ctx context.Context, u string, target any) error {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// 1x, 2x, 4x the base backoff
			wait := c.backoff * time.Duration(1<<uint(attempt-1))
			c.logger.DebugContext(ctx, "retrying request",
				slog.Int("attempt", attempt),
				slog.Duration("backoff", wait),
				slog.Any("error", lastErr),
			)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return errors.WithStack(ctx.Err())
			}
		}

		err := c.do(ctx, u, target)
		if err == nil {
			return nil
		}

		var statusErr *statusError
		if errors.As(err, &statusErr) && !statusErr.retryable() {
			return err
		}
		if ctx.Err() != nil {
			return errors.WithStack(ctx.Err())
		}
		lastErr = err
	}

	return errors.Wrapf(lastErr, "after %d retries", c.maxRetries)
}

func (c *Client) do(ctx context.Context, u string, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "rate limiter")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.WithStack(&statusError{code: resp.StatusCode})
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}

func (d *searchDoc) toMetadata() *service.BookMetadata {
	return &service.BookMetadata{
		Key:                 d.Key,
		Title:               d.Title,
		Subtitle:            d.Subtitle,
		AlternativeTitle:    firstOrEmpty(d.AlternativeTitle),
		AlternativeSubtitle: firstOrEmpty(d.AlternativeSubtitle),
		Authors:             d.AuthorName,
		FirstPublishYear:    d.FirstPublishYear,
		CoverID:             d.CoverID,
		EbookAccess:         d.EbookAccess,
		EditionCount:        d.EditionCount,
		Format:              firstOrEmpty(d.Format),
		FirstSentence:       firstOrEmpty(d.FirstSentence),
		NumberOfPages:       d.NumberOfPagesMedian,
		RatingsAverage:      d.RatingsAverage,
		RatingsCount:        d.RatingsCount,
		WantToReadCount:     d.WantToReadCount,
		Source:              Platform,
	}
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}

	return values[0]
}
