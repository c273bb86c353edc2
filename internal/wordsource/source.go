// Package wordsource resolves a single dictionary-style word under a length
// bound, sweeping remote providers in round-robin order before falling back
// to a local dictionary and finally a synthetic generator.
package wordsource

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/passforge/passforge-go/internal/metrics"
)

const (
	// DefaultTimeout bounds each provider attempt. A full sweep can
	// therefore block for at most len(providers) * DefaultTimeout.
	DefaultTimeout = 2 * time.Second

	defaultRequestsPerSecond = 5
	maxBodyBytes             = 64 << 10

	wordsCacheKey = "dictionary-words"
	wordsCacheTTL = 5 * time.Minute
)

// WordStore supplies custom words merged into the local fallback dictionary.
type WordStore interface {
	ListWords(ctx context.Context) ([]string, error)
}

// Config configures a Source. The zero value is usable: default providers,
// default timeout, no custom word store, no metrics.
type Config struct {
	Providers         []Provider
	Timeout           time.Duration
	RequestsPerSecond float64
	Client            *http.Client
	Store             WordStore
	Metrics           *metrics.Metrics
}

// Source resolves words. Safe for concurrent use; the rotation cursor is
// advanced atomically so parallel calls still sweep providers fairly.
type Source struct {
	providers []Provider
	timeout   time.Duration
	client    *http.Client
	limiter   *rate.Limiter
	store     WordStore
	words     *gocache.Cache
	metrics   *metrics.Metrics
	cursor    atomic.Uint64
}

// New creates a Source from cfg, filling in defaults for unset fields.
func New(cfg Config) *Source {
	if cfg.Providers == nil {
		cfg.Providers = DefaultProviders("")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaultRequestsPerSecond
	}
	if cfg.Client == nil {
		cfg.Client = &http.Client{}
	}

	return &Source{
		providers: cfg.Providers,
		timeout:   cfg.Timeout,
		client:    cfg.Client,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		store:     cfg.Store,
		words:     gocache.New(wordsCacheTTL, 2*wordsCacheTTL),
		metrics:   cfg.Metrics,
	}
}

// Resolve returns a word of length at most maxLength. Each call tries up to
// one full sweep of the providers starting at the rotation cursor; the first
// in-bound word wins. Provider failures are absorbed and logged at debug
// level. When the sweep yields nothing the local dictionary is consulted,
// and when even that has no short enough entry a word is synthesized, so
// Resolve always returns a usable word for maxLength >= 1. A maxLength <= 0
// yields the empty string.
func (s *Source) Resolve(ctx context.Context, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}

	for range s.providers {
		idx := (s.cursor.Add(1) - 1) % uint64(len(s.providers))
		p := s.providers[idx]

		word, err := s.fetch(ctx, p, maxLength)
		if err != nil {
			slog.Debug("word provider attempt failed", "provider", p.Name, "error", err)
			s.countAttempt(p.Name, metrics.OutcomeError)
			continue
		}
		if len(word) > maxLength {
			slog.Debug("word provider result too long", "provider", p.Name, "word_length", len(word), "max", maxLength)
			s.countAttempt(p.Name, metrics.OutcomeTooLong)
			continue
		}

		s.countAttempt(p.Name, metrics.OutcomeSuccess)
		return word
	}

	if word, ok := pickWord(s.dictionaryWords(ctx), maxLength); ok {
		s.countFallback(metrics.FallbackDictionary)
		return word
	}

	s.countFallback(metrics.FallbackSynthetic)
	return Synthesize(maxLength)
}

// fetch performs one provider attempt under the per-attempt timeout.
func (s *Source) fetch(ctx context.Context, p Provider, length int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL(length), nil)
	if err != nil {
		return "", err
	}
	for k, v := range p.Headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}

	word, err := p.Parse(body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(word), nil
}

// dictionaryWords returns the built-in list merged with the custom store,
// caching the merge so the store is not hit on every fallback.
func (s *Source) dictionaryWords(ctx context.Context) []string {
	if s.store == nil {
		return builtinWords
	}

	if cached, ok := s.words.Get(wordsCacheKey); ok {
		return cached.([]string)
	}

	merged := builtinWords
	extra, err := s.store.ListWords(ctx)
	if err != nil {
		slog.Debug("custom dictionary unavailable", "error", err)
	} else if len(extra) > 0 {
		merged = append(slices.Clone(builtinWords), extra...)
	}

	s.words.Set(wordsCacheKey, merged, gocache.DefaultExpiration)
	return merged
}

func (s *Source) countAttempt(provider, outcome string) {
	if s.metrics != nil {
		s.metrics.ProviderRequests.WithLabelValues(provider, outcome).Inc()
	}
}

func (s *Source) countFallback(source string) {
	if s.metrics != nil {
		s.metrics.WordFallbacks.WithLabelValues(source).Inc()
	}
}
