// Package source obtains a user's daily contribution counts.
//
// Sources are tried in a fixed order: the authenticated GraphQL API, the
// public contributions page, and finally simulated data so that something
// can always be drawn.
package source

import (
	"context"
	"net/http"
	"time"

	"github.com/penwyp/go-gh-heat/internal/core/model"
)

// Request names the user and how far back to look.
type Request struct {
	Username string
	Days     int
	// Token is the bearer credential for the GraphQL tier. Empty skips that tier.
	Token string
}

// Result is the contribution map together with the tier that produced it.
type Result struct {
	Contributions model.Contributions
	Tier          string
}

// Tier is one strategy for obtaining contributions. An empty map with a nil
// error means the tier found nothing and the next one should be tried.
type Tier interface {
	Name() string
	Fetch(ctx context.Context, req Request) (model.Contributions, error)
}

// TodayFunc returns the current calendar day.
type TodayFunc func() model.Date

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
