package scraper

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"
	"github.com/riskibarqy/ipl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/ipl-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/ipl-dashboard/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	DefaultBaseURL   = "https://www.iplt20.com"
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	maxPageBytes     = 8 << 20
)

var (
	errPageTransient = crerr.New("league site transient failure")
	errPageTooLarge  = crerr.New("league site page exceeds size limit")
)

type FetcherConfig struct {
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	// HTTPClient replaces the transport, mainly for tests.
	HTTPClient *http.Client
	// MaxBodyBytes caps a page body; larger pages are rejected. Defaults to 8 MiB.
	MaxBodyBytes int64
}

// PageFetcher downloads league pages. Concurrent requests for the same path share one
// upstream call.
type PageFetcher struct {
	client         *resty.Client
	baseURL        string
	maxRetries     int
	retryBackoff   time.Duration
	maxBodyBytes   int64
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.Group[[]byte]
}

func NewPageFetcher(cfg FetcherConfig) *PageFetcher {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = maxPageBytes
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = time.Second
	}

	var client *resty.Client
	if cfg.HTTPClient != nil {
		client = resty.NewWithClient(cfg.HTTPClient)
	} else {
		client = resty.New()
	}
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("user-agent", userAgent)
	client.SetHeader("accept", "text/html,application/xhtml+xml")
	instrumentResty(client, "ipl-dashboard/scraper/http")

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	breaker := resilience.NewCircuitBreaker(breakerCfg)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("league site circuit breaker changed state", "from", from, "to", to)
	})

	return &PageFetcher{
		client:         client,
		baseURL:        baseURL,
		maxRetries:     max(cfg.MaxRetries, 0),
		retryBackoff:   backoff,
		maxBodyBytes:   maxBody,
		logger:         logger,
		breaker:        breaker,
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (f *PageFetcher) BaseURL() string {
	return f.baseURL
}

// Fetch returns the raw body of path. An open circuit breaker fails fast.
func (f *PageFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if f.circuitEnabled {
		if err := f.breaker.Allow(); err != nil {
			f.logger.WarnContext(ctx, "league site circuit breaker rejected request", "path", path, "state", f.breaker.State())
			return nil, fmt.Errorf("%w: league site is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	raw, err, _ := f.flight.Do(path, func() ([]byte, error) {
		body, reqErr := f.executeRequest(ctx, path)
		if f.circuitEnabled {
			if reqErr != nil && isTransient(reqErr) {
				f.breaker.RecordFailure()
			} else {
				f.breaker.RecordSuccess()
			}
		}
		return body, reqErr
	})
	return raw, err
}

func (f *PageFetcher) executeRequest(ctx context.Context, path string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		raw, status, err := f.get(ctx, path)
		switch {
		case crerr.Is(err, errPageTooLarge):
			f.logger.WarnContext(ctx, "league site page rejected", "path", path, "error", err)
			return nil, err
		case err != nil:
			lastErr = crerr.Mark(crerr.Wrapf(err, "get %s", path), errPageTransient)
		case status >= 200 && status < 300:
			return raw, nil
		case isRetryableStatus(status):
			lastErr = crerr.Mark(crerr.Newf("league site status=%d path=%s", status, path), errPageTransient)
		default:
			return nil, crerr.Newf("league site status=%d path=%s", status, path)
		}

		if ctx.Err() != nil || attempt == f.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * f.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.New("league site request failed")
	}
	f.logger.WarnContext(ctx, "league site request failed", "path", path, "error", lastErr)
	return nil, lastErr
}

func (f *PageFetcher) get(ctx context.Context, path string) ([]byte, int, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(path)
	if err != nil {
		return nil, 0, err
	}

	body := resp.RawBody()
	if body == nil {
		return nil, resp.StatusCode(), nil
	}
	defer body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	n, err := buf.ReadFrom(io.LimitReader(body, f.maxBodyBytes+1))
	if err != nil {
		return nil, resp.StatusCode(), fmt.Errorf("read body: %w", err)
	}
	if n > f.maxBodyBytes {
		return nil, resp.StatusCode(), crerr.Wrapf(errPageTooLarge, "path=%s limit=%d", path, f.maxBodyBytes)
	}
	return append([]byte(nil), buf.B...), resp.StatusCode(), nil
}

func isTransient(err error) bool {
	return crerr.Is(err, errPageTransient) || stderrors.Is(err, context.DeadlineExceeded)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
