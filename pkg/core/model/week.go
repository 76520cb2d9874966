package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// DaysPerWeek is the length of every registration week.
const DaysPerWeek = 7

// ErrInvalidWeek reports a date range that is not a Monday-to-Sunday
// week.
var ErrInvalidWeek = errors.New("week must run Monday to Sunday")

// WeekRange is one registration week, Monday (From) through Sunday
// (To), both in DateLayout.
type WeekRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Validate checks that the range starts on a Monday and spans exactly
// seven days.
func (w WeekRange) Validate() error {
	from, err := time.Parse(DateLayout, w.From)
	if err != nil {
		return fmt.Errorf("%w: invalid start date %q: %v", ErrInvalidWeek, w.From, err)
	}
	to, err := time.Parse(DateLayout, w.To)
	if err != nil {
		return fmt.Errorf("%w: invalid end date %q: %v", ErrInvalidWeek, w.To, err)
	}
	if from.Weekday() != time.Monday {
		return fmt.Errorf("%w: %s is a %s", ErrInvalidWeek, w.From, from.Weekday())
	}
	if to.Sub(from) != time.Duration(DaysPerWeek-1)*24*time.Hour {
		return fmt.Errorf("%w: %s to %s does not span seven days", ErrInvalidWeek, w.From, w.To)
	}
	return nil
}

// Dates expands the range into its seven dates in order.
func (w WeekRange) Dates() ([]string, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	from, _ := time.Parse(DateLayout, w.From)

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Count:   DaysPerWeek,
		Dtstart: from,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to expand week dates: %w", err)
	}

	dates := make([]string, 0, DaysPerWeek)
	for _, day := range rule.All() {
		dates = append(dates, day.Format(DateLayout))
	}
	return dates, nil
}

// Contains reports whether date falls within the range. Comparison is
// lexicographic, which is safe for DateLayout strings.
func (w WeekRange) Contains(date string) bool {
	return date >= w.From && date <= w.To
}

// WeekOf derives the full range from a week's Monday key.
func WeekOf(weekKey string) (WeekRange, error) {
	from, err := time.Parse(DateLayout, weekKey)
	if err != nil {
		return WeekRange{}, fmt.Errorf("%w: invalid week key %q: %v", ErrInvalidWeek, weekKey, err)
	}
	week := WeekRange{
		From: weekKey,
		To:   from.AddDate(0, 0, DaysPerWeek-1).Format(DateLayout),
	}
	if err := week.Validate(); err != nil {
		return WeekRange{}, err
	}
	return week, nil
}
