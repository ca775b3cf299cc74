package source

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/penwyp/go-gh-heat/internal/core/model"
)

// SyntheticDays is how far back simulated data reaches; today is included on top.
const SyntheticDays = 365

// SyntheticTier fabricates plausible activity so there is always something to draw.
type SyntheticTier struct {
	today TodayFunc
	mu    sync.Mutex
	rng   *rand.Rand
}

// NewSyntheticTier creates the tier. A nil rng is seeded from the clock.
func NewSyntheticTier(today TodayFunc, rng *rand.Rand) *SyntheticTier {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &SyntheticTier{today: today, rng: rng}
}

func (t *SyntheticTier) Name() string {
	return model.TierSynthetic
}

// Fetch fills every day in [today-365, today]. Weekends get lower counts.
func (t *SyntheticTier) Fetch(_ context.Context, _ Request) (model.Contributions, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	end := t.today()
	contributions := make(model.Contributions, SyntheticDays+1)
	for d := end.AddDays(-SyntheticDays); !d.After(end); d = d.AddDays(1) {
		limit := 10
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			limit = 5
		}
		contributions[d] = t.rng.IntN(limit)
	}
	return contributions, nil
}
