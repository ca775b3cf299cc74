package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/penwyp/go-gh-heat/internal/core/model"
	"github.com/penwyp/go-gh-heat/internal/util"
)

// maxMarkupBytes bounds how much of the profile page is read.
const maxMarkupBytes = 16 << 20

// ScrapeTier reads the public contributions page and pattern-matches the calendar cells.
type ScrapeTier struct {
	profileURL string
	userAgent  string
	httpClient *http.Client
	patterns   []Pattern
}

// NewScrapeTier creates the tier. profileURL must contain one %s for the username.
// Nil patterns means DefaultPatterns.
func NewScrapeTier(profileURL, userAgent string, httpClient *http.Client, patterns []Pattern) *ScrapeTier {
	if patterns == nil {
		patterns = DefaultPatterns
	}
	return &ScrapeTier{
		profileURL: profileURL,
		userAgent:  userAgent,
		httpClient: httpClient,
		patterns:   patterns,
	}
}

func (t *ScrapeTier) Name() string {
	return model.TierScrape
}

func (t *ScrapeTier) Fetch(ctx context.Context, req Request) (model.Contributions, error) {
	target := fmt.Sprintf(t.profileURL, url.PathEscape(req.Username))
	util.LogDebugf("Fetching contributions from: %s", target)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, newFetchError(t.Name(), KindTransport, err, "failed to create request")
	}
	httpReq.Header.Set("Accept", "text/html")
	httpReq.Header.Set("User-Agent", t.userAgent)

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, newFetchError(t.Name(), KindTransport, err, "request to %s failed", target)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, newFetchError(t.Name(), KindUserNotFound, nil, "%s", req.Username)
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		return nil, newFetchError(t.Name(), KindRateLimited, nil, "status %d", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, newFetchError(t.Name(), KindAPI, nil, "failed to fetch data: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMarkupBytes))
	if err != nil {
		return nil, newFetchError(t.Name(), KindTransport, err, "failed to read response body")
	}

	contributions, pattern, err := ExtractContributions(string(body), t.patterns)
	if err != nil {
		return nil, err
	}
	if pattern != "" {
		util.LogDebugf("Pattern %s matched %d days", pattern, len(contributions))
	}
	return contributions, nil
}
