package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for every calendar date in the system.
const DateLayout = "2006-01-02"

// ShiftType identifies one of the three daily shifts.
type ShiftType string

const (
	ShiftA ShiftType = "A"
	ShiftB ShiftType = "B"
	ShiftC ShiftType = "C"
)

// AllShiftTypes lists the shift types in display order.
var AllShiftTypes = []ShiftType{ShiftA, ShiftB, ShiftC}

// IsValid reports whether s is one of the three known shift types.
func (s ShiftType) IsValid() bool {
	switch s {
	case ShiftA, ShiftB, ShiftC:
		return true
	}
	return false
}

// ParseShiftType converts raw input into a ShiftType. Matching is case
// sensitive.
func ParseShiftType(raw string) (ShiftType, error) {
	s := ShiftType(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown shift type %q (expected A, B or C)", raw)
	}
	return s, nil
}

// ShiftSlot is one (date, shift) cell of the weekly grid.
type ShiftSlot struct {
	Date  string    `json:"date"`
	Shift ShiftType `json:"shift"`
}

// ParseDate returns the slot's date as a time.Time.
func (s ShiftSlot) ParseDate() (time.Time, error) {
	date, err := time.Parse(DateLayout, s.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot date %q: %w", s.Date, err)
	}
	return date, nil
}

// WeekSettings describes the registration week currently open to
// employees. There is at most one at a time.
type WeekSettings struct {
	DateRange WeekRange `json:"dateRange"`
	// Active gates submissions; a defined but inactive week rejects
	// new registrations.
	Active bool `json:"active"`
	// Employees is the roster allowed to register. An empty roster
	// admits anyone.
	Employees []string `json:"employees"`
}

// Registration is one employee's weekly shift selection and its
// lifecycle flags.
type Registration struct {
	ID           string      `json:"id"`
	EmployeeName string      `json:"employeeName"`
	Shifts       []ShiftSlot `json:"shifts"`
	Timestamp    time.Time   `json:"timestamp"`
	Approved     bool        `json:"approved"`
	Allocated    bool        `json:"allocated"`
	AllocatedAt  *time.Time  `json:"allocatedAt,omitempty"`
}

// HasSlot reports whether the registration includes the given slot.
func (r *Registration) HasSlot(slot ShiftSlot) bool {
	for _, s := range r.Shifts {
		if s == slot {
			return true
		}
	}
	return false
}

// RemoveSlot drops the given slot from the registration. Missing slots
// are ignored.
func (r *Registration) RemoveSlot(slot ShiftSlot) {
	kept := r.Shifts[:0]
	for _, s := range r.Shifts {
		if s != slot {
			kept = append(kept, s)
		}
	}
	r.Shifts = kept
}

// ShiftAssignment records who works one slot of a finalized schedule.
type ShiftAssignment struct {
	Date      string    `json:"date"`
	Shift     ShiftType `json:"shift"`
	Employees []string  `json:"employees"`
}

// WeekSchedule is the finalized schedule for one week, keyed by the
// week's Monday.
type WeekSchedule struct {
	WeekOf string            `json:"weekOf"`
	Shifts []ShiftAssignment `json:"shifts"`
}

// AllocationConfig tunes the allocation pass.
type AllocationConfig struct {
	// FairnessEnabled prefers employees with fewer total shifts when a
	// slot is contested. When false, contested slots are drawn at
	// random.
	FairnessEnabled bool `json:"fairnessEnabled"`
	// MaxShiftsPerEmployee caps weekly shifts per employee. Zero means
	// no cap.
	MaxShiftsPerEmployee int `json:"maxShiftsPerEmployee"`
}

// DefaultAllocationConfig is used when no config has been stored.
func DefaultAllocationConfig() AllocationConfig {
	return AllocationConfig{FairnessEnabled: true, MaxShiftsPerEmployee: 0}
}
