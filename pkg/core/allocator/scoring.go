package allocator

import (
	"math"
	"sort"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

// fairnessBaseScore anchors the fairness score so that employees with
// fewer shifts across the week score higher.
const fairnessBaseScore = 20

// selectKeepers picks the limit registrations that keep the slot.
//
// With fairness enabled, each candidate scores fairnessBaseScore minus
// their current total shift count, employees at the weekly cap are
// forced to the bottom, and the top scorers win. The pre-sort shuffle
// makes equal scores resolve by an unbiased coin flip. With fairness
// disabled, keepers are a uniform random draw.
func (e *Engine) selectKeepers(candidates []*model.Registration, limit int) []*model.Registration {
	picks := append([]*model.Registration(nil), candidates...)
	e.rng.Shuffle(len(picks), func(i, j int) {
		picks[i], picks[j] = picks[j], picks[i]
	})

	if !e.config.FairnessEnabled {
		return picks[:limit]
	}

	scores := make(map[*model.Registration]float64, len(picks))
	for _, reg := range picks {
		scores[reg] = e.fairnessScore(reg)
	}

	sort.SliceStable(picks, func(i, j int) bool {
		return scores[picks[i]] > scores[picks[j]]
	})

	return picks[:limit]
}

func (e *Engine) fairnessScore(reg *model.Registration) float64 {
	total := len(reg.Shifts)
	if weeklyCap := e.config.MaxShiftsPerEmployee; weeklyCap > 0 && total >= weeklyCap {
		// Over the weekly cap: picked only if nobody else is left.
		return math.Inf(-1)
	}
	return float64(fairnessBaseScore - total)
}
