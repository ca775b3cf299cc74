package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-gh-heat/internal/core/model"
	"github.com/penwyp/go-gh-heat/internal/util"
)

const contributionQuery = `query($username: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $username) {
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        weeks {
          contributionDays {
            date
            contributionCount
          }
        }
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

type graphQLResponse struct {
	Data   *graphQLData   `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLData struct {
	User *struct {
		ContributionsCollection struct {
			ContributionCalendar struct {
				Weeks []struct {
					ContributionDays []struct {
						Date              string `json:"date"`
						ContributionCount int    `json:"contributionCount"`
					} `json:"contributionDays"`
				} `json:"weeks"`
			} `json:"contributionCalendar"`
		} `json:"contributionsCollection"`
	} `json:"user"`
}

// GraphQLTier queries the authenticated contributions calendar.
type GraphQLTier struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	today      TodayFunc
}

// NewGraphQLTier creates the tier for endpoint.
func NewGraphQLTier(endpoint, userAgent string, httpClient *http.Client, today TodayFunc) *GraphQLTier {
	return &GraphQLTier{
		endpoint:   endpoint,
		userAgent:  userAgent,
		httpClient: httpClient,
		today:      today,
	}
}

func (t *GraphQLTier) Name() string {
	return model.TierGraphQL
}

// Fetch requests [today-days, today] for req.Username. It returns ErrSkipped
// without touching the network when req.Token is empty.
func (t *GraphQLTier) Fetch(ctx context.Context, req Request) (model.Contributions, error) {
	if req.Token == "" {
		return nil, ErrSkipped
	}

	end := t.today()
	start := end.AddDays(-req.Days)

	payload, err := sonic.Marshal(graphQLRequest{
		Query: contributionQuery,
		Variables: map[string]string{
			"username": req.Username,
			"from":     start.String() + "T00:00:00Z",
			"to":       end.String() + "T23:59:59Z",
		},
	})
	if err != nil {
		return nil, newFetchError(t.Name(), KindParse, err, "failed to encode query")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, newFetchError(t.Name(), KindTransport, err, "failed to create request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", t.userAgent)

	util.LogDebugf("Querying contributions for %s from %s to %s", req.Username, start, end)

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, newFetchError(t.Name(), KindTransport, err, "request to %s failed", t.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return nil, newFetchError(t.Name(), KindRateLimited, nil, "status %d", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newFetchError(t.Name(), KindAPI, nil, "failed to fetch data: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newFetchError(t.Name(), KindTransport, err, "failed to read response body")
	}

	var decoded graphQLResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return nil, newFetchError(t.Name(), KindParse, err, "undecodable response")
	}

	if len(decoded.Errors) > 0 {
		messages := make([]string, 0, len(decoded.Errors))
		for _, e := range decoded.Errors {
			messages = append(messages, e.Message)
		}
		return nil, newFetchError(t.Name(), KindAPI, nil, "%s", strings.Join(messages, ", "))
	}

	if decoded.Data == nil {
		return nil, newFetchError(t.Name(), KindParse, nil, "no data in response")
	}
	if decoded.Data.User == nil {
		return nil, newFetchError(t.Name(), KindUserNotFound, nil, "%s", req.Username)
	}

	contributions := make(model.Contributions)
	for _, week := range decoded.Data.User.ContributionsCollection.ContributionCalendar.Weeks {
		for _, day := range week.ContributionDays {
			date, err := model.ParseDate(day.Date)
			if err != nil {
				return nil, newFetchError(t.Name(), KindParse, err, "invalid date format: %s", day.Date)
			}
			contributions[date] = day.ContributionCount
		}
	}

	util.LogDebug(fmt.Sprintf("GraphQL returned %d days for %s", len(contributions), req.Username))
	return contributions, nil
}
