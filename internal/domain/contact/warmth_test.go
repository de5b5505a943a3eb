package contact

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func daysAgo(now time.Time, days int) *time.Time {
	t := now.AddDate(0, 0, -days)
	return &t
}

func Test_Warmth_NoHistory(t *testing.T) {
	now := time.Now().UTC()

	// No interaction history pins the score to 50, with no bonuses applied.
	assert.Equal(t, 50, Warmth(nil, 0, 0, now))
	assert.Equal(t, 50, Warmth(nil, 95, 0, now))
	assert.Equal(t, 50, Warmth(nil, 95, 10, now))
}

func Test_Warmth_RecentInteraction(t *testing.T) {
	now := time.Now().UTC()

	// 3 days ago: 100 - 1.5 + 15 = 113.5, clamped to 100.
	assert.Equal(t, 100, Warmth(daysAgo(now, 3), 50, 0, now))

	// 7 days ago is still inside the recency window: 100 - 3.5 + 15 = 111.5.
	assert.Equal(t, 100, Warmth(daysAgo(now, 7), 50, 0, now))

	// 8 days ago loses the bonus: 100 - 4 = 96.
	assert.Equal(t, 96, Warmth(daysAgo(now, 8), 50, 0, now))
}

func Test_Warmth_Decay(t *testing.T) {
	now := time.Now().UTC()

	// 60 days: 100 - 30 = 70.
	assert.Equal(t, 70, Warmth(daysAgo(now, 60), 50, 0, now))

	// 150 days: 100 - 75 = 25.
	assert.Equal(t, 25, Warmth(daysAgo(now, 150), 50, 0, now))

	// 300 days: 100 - 150, clamped to 0.
	assert.Equal(t, 0, Warmth(daysAgo(now, 300), 50, 0, now))
}

func Test_Warmth_Bonuses(t *testing.T) {
	now := time.Now().UTC()

	// 60 days, priority 80: 70 + 10 = 80.
	assert.Equal(t, 80, Warmth(daysAgo(now, 60), 80, 0, now))

	// 60 days, 3 mutuals: 70 + 15 = 85.
	assert.Equal(t, 85, Warmth(daysAgo(now, 60), 50, 3, now))

	// Bonuses stack but never push past 100.
	assert.Equal(t, 100, Warmth(daysAgo(now, 10), 90, 5, now))
}

func Test_Warmth_PriorityBelowThreshold(t *testing.T) {
	now := time.Now().UTC()

	// Priority 79 earns nothing.
	assert.Equal(t, 70, Warmth(daysAgo(now, 60), 79, 0, now))
}

func Test_WarmthStatus(t *testing.T) {
	assert.Equal(t, StatusWarm, WarmthStatus(100))
	assert.Equal(t, StatusWarm, WarmthStatus(85))
	assert.Equal(t, StatusCooling, WarmthStatus(84))
	assert.Equal(t, StatusCooling, WarmthStatus(50))
	assert.Equal(t, StatusCold, WarmthStatus(49))
	assert.Equal(t, StatusCold, WarmthStatus(0))
}

func Test_CurrentWarmth(t *testing.T) {
	now := time.Now().UTC()
	c := &Contact{
		PriorityScore:     50,
		LastInteraction:   daysAgo(now, 60),
		MutualConnections: 0,
	}
	assert.Equal(t, 70, c.CurrentWarmth(now))

	c.LastInteraction = nil
	assert.Equal(t, 50, c.CurrentWarmth(now))
}

func Test_MergeTags(t *testing.T) {
	merged := MergeTags(
		[]string{"LinkedIn Import", "VC"},
		[]string{"VC", "High-Value Connection"},
	)
	assert.Equal(t, []string{"LinkedIn Import", "VC", "High-Value Connection"}, merged)

	assert.Equal(t, []string{"a"}, MergeTags([]string{"a"}, nil))
	assert.Equal(t, []string{"a"}, MergeTags(nil, []string{"a"}))
	assert.Empty(t, MergeTags(nil, nil))
}
