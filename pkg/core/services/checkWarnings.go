package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
	"github.com/lamnguyen-se/shiftreg/pkg/core/warnings"
)

// CheckWarningsStore defines the database operations needed to report
// staffing gaps.
type CheckWarningsStore interface {
	GetWeekSettings(ctx context.Context) (*model.WeekSettings, error)
	GetRegistrations(ctx context.Context) ([]model.Registration, error)
}

// CheckWarningsResult bundles the gap report with week statistics.
type CheckWarningsResult struct {
	Week       model.WeekRange
	Report     warnings.Report
	Statistics warnings.Statistics
}

// CheckWarnings scans the allocated week for under-staffed slots.
func CheckWarnings(ctx context.Context, store CheckWarningsStore, logger *zap.Logger) (*CheckWarningsResult, error) {
	settings, err := store.GetWeekSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch week settings: %w", err)
	}
	if settings == nil {
		return nil, fmt.Errorf("no registration week has been defined")
	}

	regs, err := store.GetRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch registrations: %w", err)
	}
	allocated := filterAllocated(regs)

	report, err := warnings.CheckGaps(settings.DateRange, allocated)
	if err != nil {
		return nil, err
	}
	stats, err := warnings.ComputeStatistics(allocated)
	if err != nil {
		return nil, err
	}

	logger.Info("Gap scan complete",
		zap.String("week_of", settings.DateRange.From),
		zap.Int("warnings", len(report.Warnings)),
		zap.Int("total_missing", report.TotalMissing))
	return &CheckWarningsResult{
		Week:       settings.DateRange,
		Report:     report,
		Statistics: stats,
	}, nil
}
