package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/ipl-dashboard/internal/fallback"
	"github.com/riskibarqy/ipl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/ipl-dashboard/internal/usecase"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var errNoRecords = crerr.New("page yielded no usable records")

// PageSource returns the raw body of a site path.
type PageSource interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// Extractor implements usecase.Extractor on top of the league site and the static snapshot.
type Extractor struct {
	pages     PageSource
	fallback  usecase.FallbackSource
	baseURL   *url.URL
	validate  *validator.Validate
	logger    *logging.Logger
	fallbacks metric.Int64Counter
}

func NewExtractor(pages PageSource, fallbackSource usecase.FallbackSource, baseURL string, logger *logging.Logger) (*Extractor, error) {
	if logger == nil {
		logger = logging.Default()
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	counter, err := otel.Meter("ipl-dashboard/internal/scraper").Int64Counter(
		"ipl.extract.fallbacks",
		metric.WithDescription("Extractions served from the static snapshot."),
	)
	if err != nil {
		return nil, fmt.Errorf("create fallback counter: %w", err)
	}

	return &Extractor{
		pages:     pages,
		fallback:  fallbackSource,
		baseURL:   base,
		validate:  validator.New(),
		logger:    logger,
		fallbacks: counter,
	}, nil
}

func (e *Extractor) FetchTeams(ctx context.Context) (usecase.TeamsResult, error) {
	ctx, span := tracer.Start(ctx, "scraper.Extractor.FetchTeams")
	defer span.End()

	doc, err := e.document(ctx, PathTeams)
	if err == nil {
		teams := keepValid(ctx, e, "teams", parseTeams(doc, e.baseURL))
		if len(teams) > 0 {
			return usecase.TeamsResult{Teams: teams, Origin: usecase.OriginPage}, nil
		}
		err = errNoRecords
	}

	snapshot, loadErr := e.snapshot(ctx, span, "teams", err)
	if loadErr != nil {
		return usecase.TeamsResult{}, loadErr
	}
	return usecase.TeamsResult{
		Teams:         fallbackTeams(snapshot),
		Origin:        usecase.OriginFallback,
		FallbackCause: err,
	}, nil
}

func (e *Extractor) FetchStandings(ctx context.Context) (usecase.StandingsResult, error) {
	ctx, span := tracer.Start(ctx, "scraper.Extractor.FetchStandings")
	defer span.End()

	doc, err := e.document(ctx, PathStandings)
	if err == nil {
		rows := keepValid(ctx, e, "standings", parseStandings(doc))
		if len(rows) > 0 {
			return usecase.StandingsResult{Standings: rows, Origin: usecase.OriginPage}, nil
		}
		err = errNoRecords
	}

	snapshot, loadErr := e.snapshot(ctx, span, "standings", err)
	if loadErr != nil {
		return usecase.StandingsResult{}, loadErr
	}
	return usecase.StandingsResult{
		Standings:     fallbackStandings(snapshot),
		Origin:        usecase.OriginFallback,
		FallbackCause: err,
	}, nil
}

func (e *Extractor) FetchSchedule(ctx context.Context) (usecase.ScheduleResult, error) {
	ctx, span := tracer.Start(ctx, "scraper.Extractor.FetchSchedule")
	defer span.End()

	doc, err := e.document(ctx, PathSchedule)
	if err == nil {
		matches := keepValid(ctx, e, "schedule", parseSchedule(doc))
		if len(matches) > 0 {
			return usecase.ScheduleResult{Matches: matches, Origin: usecase.OriginPage}, nil
		}
		err = errNoRecords
	}

	snapshot, loadErr := e.snapshot(ctx, span, "schedule", err)
	if loadErr != nil {
		return usecase.ScheduleResult{}, loadErr
	}
	return usecase.ScheduleResult{
		Matches:       fallbackSchedule(snapshot),
		Origin:        usecase.OriginFallback,
		FallbackCause: err,
	}, nil
}

// FetchLiveMatch treats a page without a usable live element as "no live match" and only
// falls back when the page itself cannot be fetched.
func (e *Extractor) FetchLiveMatch(ctx context.Context) (usecase.LiveResult, error) {
	ctx, span := tracer.Start(ctx, "scraper.Extractor.FetchLiveMatch")
	defer span.End()

	doc, err := e.document(ctx, PathLive)
	if err == nil {
		live := parseLive(doc)
		if live == nil {
			e.logger.InfoContext(ctx, "no live match on page")
			return usecase.LiveResult{Origin: usecase.OriginPage}, nil
		}
		if vErr := e.validate.StructCtx(ctx, live); vErr != nil {
			e.logger.WarnContext(ctx, "live match element is incomplete, treating as no live match", "section", "live", "error", vErr)
			return usecase.LiveResult{Origin: usecase.OriginPage}, nil
		}
		return usecase.LiveResult{Live: live, Origin: usecase.OriginPage}, nil
	}

	snapshot, loadErr := e.snapshot(ctx, span, "live", err)
	if loadErr != nil {
		return usecase.LiveResult{}, loadErr
	}
	return usecase.LiveResult{
		Live:          fallbackLive(snapshot),
		Origin:        usecase.OriginFallback,
		FallbackCause: err,
	}, nil
}

func (e *Extractor) document(ctx context.Context, path string) (*goquery.Document, error) {
	raw, err := e.pages.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, crerr.Wrapf(err, "parse html %s", path)
	}
	return doc, nil
}

func (e *Extractor) snapshot(ctx context.Context, span trace.Span, section string, cause error) (fallback.Document, error) {
	e.logger.WarnContext(ctx, "extraction falling back to static data", "section", section, "cause", cause)
	e.fallbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("section", section)))
	span.RecordError(cause)

	doc, err := e.fallback.Load(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "fallback unavailable")
		return fallback.Document{}, fmt.Errorf("load fallback %s after %v: %w", section, cause, err)
	}
	return doc, nil
}

// keepValid drops records that fail their presence checks.
func keepValid[T any](ctx context.Context, e *Extractor, section string, items []T) []T {
	out := items[:0]
	for _, item := range items {
		if err := e.validate.StructCtx(ctx, item); err != nil {
			e.logger.WarnContext(ctx, "dropping incomplete record", "section", section, "error", err)
			continue
		}
		out = append(out, item)
	}
	return out
}
