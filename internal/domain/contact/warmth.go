package contact

import (
	"math"
	"time"
)

const (
	StatusWarm    = "warm"
	StatusCooling = "cooling"
	StatusCold    = "cold"
)

const (
	warmthBase        = 100.0
	warmthDailyDecay  = 0.5
	recentWindowDays  = 7
	recentBonus       = 15
	priorityThreshold = 80
	priorityBonus     = 10
	perMutualBonus    = 5
	noHistoryScore    = 50
)

// Warmth computes the decaying relationship score relative to now. It is
// recomputed on every read; the stored value is only a snapshot.
//
// A contact with no interaction history scores a flat 50, without priority or
// mutual-connection bonuses.
func Warmth(lastInteraction *time.Time, priorityScore, mutualConnections int, now time.Time) int {
	if lastInteraction == nil {
		return noHistoryScore
	}

	days := int(math.Floor(now.Sub(*lastInteraction).Hours() / 24))

	score := warmthBase - warmthDailyDecay*float64(days)
	if days <= recentWindowDays {
		score += recentBonus
	}
	if priorityScore >= priorityThreshold {
		score += priorityBonus
	}
	score += float64(perMutualBonus * mutualConnections)

	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// CurrentWarmth recomputes the contact's warmth as of now.
func (c *Contact) CurrentWarmth(now time.Time) int {
	return Warmth(c.LastInteraction, c.PriorityScore, c.MutualConnections, now)
}

func WarmthStatus(score int) string {
	switch {
	case score >= 85:
		return StatusWarm
	case score >= 50:
		return StatusCooling
	default:
		return StatusCold
	}
}
