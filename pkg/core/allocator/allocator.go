// Package allocator trims over-subscribed shift slots down to capacity.
//
// The engine is purely subtractive: it never adds a shift to any
// registration, it only removes losing entries from overloaded slots.
// Which employees lose is decided by a fairness score favoring those
// with fewer shifts across the week, with ties broken by an injected
// random source so runs are reproducible in tests.
package allocator

import (
	"math/rand"
	"sort"
	"time"

	"github.com/lamnguyen-se/shiftreg/pkg/core/capacity"
	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

// Engine runs allocation passes. Construct with New; the zero value is
// not usable.
type Engine struct {
	config model.AllocationConfig
	rng    *rand.Rand
}

// New creates an allocation engine. A nil rng gets a time-seeded
// source; tests pass a fixed seed for reproducible outcomes.
func New(config model.AllocationConfig, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{config: config, rng: rng}
}

// SlotDecision records how one overloaded slot was resolved.
type SlotDecision struct {
	Slot       model.ShiftSlot
	Registered int
	Limit      int
	Kept       []string
	Removed    []string
}

// Outcome summarizes one allocation pass.
type Outcome struct {
	// Processed is the number of registrations the pass covered,
	// whether or not any of their shifts were removed.
	Processed int
	// OverloadedSlots is how many slots exceeded capacity before
	// trimming.
	OverloadedSlots int
	// Decisions holds one entry per overloaded slot.
	Decisions []SlotDecision
}

// Allocate resolves every over-subscribed slot across the given
// registrations, removing losing entries in place, then marks every
// registration allocated with the given timestamp. An empty input is a
// no-op, not an error. A week range that is not exactly seven days
// starting on a Monday is a programming error and refuses to run.
func (e *Engine) Allocate(regs []*model.Registration, week model.WeekRange, now time.Time) (*Outcome, error) {
	if err := week.Validate(); err != nil {
		return nil, err
	}

	outcome := &Outcome{Decisions: []SlotDecision{}}
	if len(regs) == 0 {
		return outcome, nil
	}
	outcome.Processed = len(regs)

	overloaded, err := findOverloadedSlots(regs)
	if err != nil {
		return nil, err
	}
	outcome.OverloadedSlots = len(overloaded)

	for _, slot := range overloaded {
		// Candidates are looked up fresh per slot: trims on earlier
		// slots change the shift totals that feed fairness scores.
		candidates := registrationsForSlot(regs, slot.ShiftSlot)
		if len(candidates) <= slot.Limit {
			continue
		}

		kept := e.selectKeepers(candidates, slot.Limit)
		keptNames := make(map[string]bool, len(kept))
		decision := SlotDecision{
			Slot:       slot.ShiftSlot,
			Registered: len(candidates),
			Limit:      slot.Limit,
		}
		for _, reg := range kept {
			keptNames[reg.EmployeeName] = true
			decision.Kept = append(decision.Kept, reg.EmployeeName)
		}

		for _, reg := range candidates {
			if !keptNames[reg.EmployeeName] {
				reg.RemoveSlot(slot.ShiftSlot)
				decision.Removed = append(decision.Removed, reg.EmployeeName)
			}
		}

		outcome.Decisions = append(outcome.Decisions, decision)
	}

	for _, reg := range regs {
		reg.Allocated = true
		allocatedAt := now
		reg.AllocatedAt = &allocatedAt
	}

	return outcome, nil
}

type overloadedSlot struct {
	model.ShiftSlot
	Registered int
	Limit      int
}

// findOverloadedSlots tallies per-slot occupancy and returns the slots
// whose tally exceeds the capacity limit, ordered by date then shift
// type so passes are deterministic apart from tie-breaking.
func findOverloadedSlots(regs []*model.Registration) ([]overloadedSlot, error) {
	counts := make(map[model.ShiftSlot]int)
	for _, reg := range regs {
		for _, slot := range reg.Shifts {
			counts[slot]++
		}
	}

	var overloaded []overloadedSlot
	for slot, count := range counts {
		limit, err := capacity.SlotLimit(slot)
		if err != nil {
			return nil, err
		}
		if count > limit {
			overloaded = append(overloaded, overloadedSlot{
				ShiftSlot:  slot,
				Registered: count,
				Limit:      limit,
			})
		}
	}

	sort.Slice(overloaded, func(i, j int) bool {
		if overloaded[i].Date != overloaded[j].Date {
			return overloaded[i].Date < overloaded[j].Date
		}
		return overloaded[i].Shift < overloaded[j].Shift
	})

	return overloaded, nil
}

func registrationsForSlot(regs []*model.Registration, slot model.ShiftSlot) []*model.Registration {
	var matched []*model.Registration
	for _, reg := range regs {
		if reg.HasSlot(slot) {
			matched = append(matched, reg)
		}
	}
	return matched
}
