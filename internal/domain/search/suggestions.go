package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GriffinCanCode/FocusBrowser/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/infrastructure/resilience"
	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// SuggestionPreferences reports whether the user allows suggestion lookups
type SuggestionPreferences interface {
	SearchSuggestionsEnabled() bool
}

// SuggesterConfig tunes the suggestion client
type SuggesterConfig struct {
	Timeout           time.Duration
	RetryMax          int
	RequestsPerSecond float64
	MaxResults        int
	// BreakerThreshold consecutive failures stop lookups against an engine
	// for BreakerCooldown
	BreakerThreshold int
	BreakerCooldown  time.Duration
}

// DefaultSuggesterConfig returns conservative client settings
func DefaultSuggesterConfig() SuggesterConfig {
	return SuggesterConfig{
		Timeout:           3 * time.Second,
		RetryMax:          2,
		RequestsPerSecond: 10,
		MaxResults:        5,
		BreakerThreshold:  5,
		BreakerCooldown:   30 * time.Second,
	}
}

// Suggester fetches OpenSearch suggestions from the default engine
type Suggester struct {
	engines    *Manager
	prefs      SuggestionPreferences
	client     *resty.Client
	limiter    *rate.Limiter
	breakers   *resilience.Group
	maxResults int
	logger     *zap.Logger
	metrics    *monitoring.Metrics
}

// NewSuggester creates a suggester. Suggestions are only fetched while
// prefs reports them enabled.
func NewSuggester(engines *Manager, prefs SuggestionPreferences, cfg SuggesterConfig, logger *zap.Logger) *Suggester {
	if logger == nil {
		logger = zap.NewNop()
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.RetryWaitMin = 100 * time.Millisecond
	retryClient.RetryWaitMax = time.Second
	retryClient.Logger = nil

	client := resty.NewWithClient(retryClient.StandardClient()).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", "FocusBrowser-Suggest/1.0").
		SetHeader("Accept", "application/json")

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	breakers := resilience.NewGroup(resilience.Settings{
		FailureThreshold: cfg.BreakerThreshold,
		Cooldown:         cfg.BreakerCooldown,
		OnStateChange: func(engineID string, from, to resilience.State) {
			logger.Warn("Suggestion breaker state changed",
				logging.Engine(engineID),
				zap.Stringer("from", from),
				zap.Stringer("to", to),
			)
		},
	})

	return &Suggester{
		engines:    engines,
		prefs:      prefs,
		client:     client,
		limiter:    rate.NewLimiter(limit, 1),
		breakers:   breakers,
		maxResults: cfg.MaxResults,
		logger:     logger,
	}
}

// WithMetrics records outbound lookups
func (s *Suggester) WithMetrics(metrics *monitoring.Metrics) *Suggester {
	s.metrics = metrics
	return s
}

// Suggestions returns completions for the query. It returns nothing, without
// a request, when suggestions are disabled or the engine has no endpoint.
func (s *Suggester) Suggestions(ctx context.Context, query string) ([]string, error) {
	if query == "" || (s.prefs != nil && !s.prefs.SearchSuggestionsEnabled()) {
		return nil, nil
	}

	engine := s.engines.DefaultEngine()
	endpoint := engine.BuildSuggestURL(query)
	if endpoint == "" {
		return nil, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit error: %w", err)
	}

	var body []byte
	err := s.breakers.Get(engine.ID).Do(func() error {
		var fetchErr error
		body, fetchErr = s.fetch(ctx, engine.ID, endpoint)
		return fetchErr
	})
	if errors.Is(err, resilience.ErrCircuitOpen) {
		s.recordError(engine.ID, "circuit_open")
		return nil, fmt.Errorf("suggestions from %s: %w", engine.ID, err)
	}
	if err != nil {
		return nil, err
	}

	suggestions, err := parseOpenSearch(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse suggestions from %s: %w", engine.ID, err)
	}

	if s.maxResults > 0 && len(suggestions) > s.maxResults {
		suggestions = suggestions[:s.maxResults]
	}

	s.logger.Debug("Fetched search suggestions",
		logging.Engine(engine.ID),
		zap.Int("count", len(suggestions)),
	)
	return suggestions, nil
}

func (s *Suggester) fetch(ctx context.Context, engineID, endpoint string) ([]byte, error) {
	timer := monitoring.NewTimer(s.metrics, "suggest", engineID)
	resp, err := s.client.R().SetContext(ctx).Get(endpoint)
	if err != nil {
		timer.Stop("error")
		s.recordError(engineID, "transport")
		return nil, fmt.Errorf("failed to fetch suggestions from %s: %w", engineID, err)
	}
	if resp.IsError() {
		timer.Stop("error")
		s.recordError(engineID, "status")
		return nil, fmt.Errorf("suggestion endpoint %s returned %d", engineID, resp.StatusCode())
	}
	timer.Stop("success")
	return resp.Body(), nil
}

func (s *Suggester) recordError(engineID, kind string) {
	if s.metrics != nil {
		s.metrics.RecordServiceError("suggest", engineID, kind)
	}
}

// parseOpenSearch decodes ["query", ["s1", "s2", ...], ...]
func parseOpenSearch(body []byte) ([]string, error) {
	var doc []any
	if err := sonic.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	if len(doc) < 2 {
		return nil, fmt.Errorf("expected at least 2 elements, got %d", len(doc))
	}

	items, ok := doc[1].([]any)
	if !ok {
		return nil, fmt.Errorf("suggestion list has type %T", doc[1])
	}

	suggestions := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions, nil
}
