package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/penwyp/go-gh-heat/internal/core/model"
	"github.com/penwyp/go-gh-heat/internal/metrics"
	"github.com/penwyp/go-gh-heat/internal/util"
)

// Config wires the default tier chain.
type Config struct {
	GraphQLURL string
	ProfileURL string
	UserAgent  string
	Timeout    time.Duration

	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
	Today      TodayFunc
	Random     *rand.Rand

	// Notices receives short human-readable fallback notes. Nil discards them.
	Notices io.Writer
	Metrics *metrics.Recorder
}

// Client walks the tiers in order and returns the first non-empty result.
type Client struct {
	tiers    []Tier
	fallback Tier
	notices  io.Writer
	metrics  *metrics.Recorder
}

// NewClient builds the GraphQL -> scrape -> synthetic chain.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = newHTTPClient(cfg.Timeout)
	}
	today := cfg.Today
	if today == nil {
		today = func() model.Date { return model.DateOf(util.GetTimeProvider().Now()) }
	}

	return NewClientWithTiers(
		[]Tier{
			NewGraphQLTier(cfg.GraphQLURL, cfg.UserAgent, httpClient, today),
			NewScrapeTier(cfg.ProfileURL, cfg.UserAgent, httpClient, nil),
		},
		NewSyntheticTier(today, cfg.Random),
		cfg.Notices,
		cfg.Metrics,
	)
}

// NewClientWithTiers builds a client from explicit tiers. fallback runs only
// when every tier came back empty or failed.
func NewClientWithTiers(tiers []Tier, fallback Tier, notices io.Writer, recorder *metrics.Recorder) *Client {
	if notices == nil {
		notices = io.Discard
	}
	return &Client{
		tiers:    tiers,
		fallback: fallback,
		notices:  notices,
		metrics:  recorder,
	}
}

// Fetch returns contributions for req.Username. Failures of the regular tiers
// are logged and swallowed. Only a failing fallback, or a cancelled context,
// is returned as an error.
func (c *Client) Fetch(ctx context.Context, req Request) (Result, error) {
	log := util.L().With(util.F("username", req.Username), util.F("days", req.Days))

	for _, tier := range c.tiers {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		records, err := c.try(ctx, tier, req)
		switch {
		case errors.Is(err, ErrSkipped):
			log.Debug("Tier skipped", util.F("tier", tier.Name()))
		case err != nil:
			log.Warn("Tier failed", util.F("tier", tier.Name()), util.F("error", err.Error()))
			c.notef("Note: %s source failed (%v), falling back", tier.Name(), err)
		case len(records) == 0:
			log.Info("Tier returned no data", util.F("tier", tier.Name()))
		default:
			log.Info("Contributions fetched", util.F("tier", tier.Name()), util.F("records", len(records)))
			return Result{Contributions: records, Tier: tier.Name()}, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if c.fallback == nil {
		return Result{}, newFetchError(model.TierSynthetic, KindSynthetic, nil, "no fallback configured")
	}

	c.notef("Warning: could not obtain contribution data for %s, using simulated data", req.Username)
	records, err := c.try(ctx, c.fallback, req)
	if err == nil && len(records) == 0 {
		err = errors.New("no records generated")
	}
	if err != nil {
		log.Error("Fallback failed", util.F("tier", c.fallback.Name()), util.F("error", err.Error()))
		return Result{}, newFetchError(c.fallback.Name(), KindSynthetic, err, "fallback failed")
	}
	return Result{Contributions: records, Tier: c.fallback.Name()}, nil
}

// try runs one tier and records its outcome.
func (c *Client) try(ctx context.Context, tier Tier, req Request) (model.Contributions, error) {
	start := time.Now()
	records, err := tier.Fetch(ctx, req)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, ErrSkipped):
		c.metrics.Skipped(tier.Name())
	case err != nil:
		c.metrics.Observe(tier.Name(), metrics.OutcomeError, elapsed, 0)
	case len(records) == 0:
		c.metrics.Observe(tier.Name(), metrics.OutcomeEmpty, elapsed, 0)
	default:
		c.metrics.Observe(tier.Name(), metrics.OutcomeSuccess, elapsed, len(records))
	}
	return records, err
}

func (c *Client) notef(format string, args ...interface{}) {
	fmt.Fprintf(c.notices, format+"\n", args...)
}
