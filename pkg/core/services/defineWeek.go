package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

// DefineWeekStore defines the database operations needed to define the
// active registration week.
type DefineWeekStore interface {
	GetWeekSettings(ctx context.Context) (*model.WeekSettings, error)
	SaveWeekSettings(ctx context.Context, settings *model.WeekSettings) error
	ClearRegistrations(ctx context.Context) error
}

// DefineWeekResult reports what defining a week changed.
type DefineWeekResult struct {
	Week                 model.WeekRange
	RegistrationsCleared bool
}

// DefineWeek validates and saves the active week settings. Moving the
// week to a different date range discards every pending registration
// for the old week; finalized schedules are kept for history.
func DefineWeek(ctx context.Context, store DefineWeekStore, settings *model.WeekSettings, logger *zap.Logger) (*DefineWeekResult, error) {
	if err := settings.DateRange.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("Defining week",
		zap.String("from", settings.DateRange.From),
		zap.String("to", settings.DateRange.To),
		zap.Bool("active", settings.Active))

	existing, err := store.GetWeekSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch week settings: %w", err)
	}

	result := &DefineWeekResult{Week: settings.DateRange}
	if existing != nil && existing.DateRange != settings.DateRange {
		logger.Info("Week range changed, clearing registrations",
			zap.String("old_from", existing.DateRange.From),
			zap.String("new_from", settings.DateRange.From))
		if err := store.ClearRegistrations(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear registrations for old week: %w", err)
		}
		result.RegistrationsCleared = true
	}

	if err := store.SaveWeekSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save week settings: %w", err)
	}

	logger.Info("Week defined", zap.String("week_of", settings.DateRange.From))
	return result, nil
}
