package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
	"github.com/lamnguyen-se/shiftreg/pkg/core/registration"
)

// SubmitRegistrationStore defines the database operations needed to
// submit a registration.
type SubmitRegistrationStore interface {
	GetWeekSettings(ctx context.Context) (*model.WeekSettings, error)
	SaveRegistration(ctx context.Context, reg *model.Registration) error
}

// SubmitResult is the outcome of one submission attempt. A rule
// rejection comes back in Validation with Registration nil; only
// infrastructure problems surface as errors.
type SubmitResult struct {
	Registration *model.Registration
	Validation   registration.Result
}

// SubmitRegistration validates an employee's weekly selection against
// the active week and persists it as a pending registration.
func SubmitRegistration(
	ctx context.Context,
	store SubmitRegistrationStore,
	notifier Notifier,
	employeeName string,
	selection []model.ShiftSlot,
	logger *zap.Logger,
) (*SubmitResult, error) {
	logger.Debug("Submitting registration",
		zap.String("employee", employeeName),
		zap.Int("shift_count", len(selection)))

	settings, err := store.GetWeekSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch week settings: %w", err)
	}
	if settings == nil {
		return nil, fmt.Errorf("no registration week has been defined")
	}
	if !settings.Active {
		return &SubmitResult{Validation: registration.Result{
			Reason: "registration is closed for the current week",
		}}, nil
	}

	if employeeName == "" {
		return &SubmitResult{Validation: registration.Result{
			Reason: "an employee name is required",
		}}, nil
	}
	if len(settings.Employees) > 0 && !onRoster(settings.Employees, employeeName) {
		return &SubmitResult{Validation: registration.Result{
			Reason: fmt.Sprintf("%s is not on the roster for this week", employeeName),
		}}, nil
	}

	validation, err := registration.Validate(selection, settings.DateRange)
	if err != nil {
		return nil, err
	}
	if !validation.OK {
		logger.Info("Registration rejected",
			zap.String("employee", employeeName),
			zap.String("reason", validation.Reason))
		return &SubmitResult{Validation: validation}, nil
	}

	reg := &model.Registration{
		ID:           uuid.New().String(),
		EmployeeName: employeeName,
		Shifts:       selection,
		Timestamp:    time.Now(),
	}
	if err := store.SaveRegistration(ctx, reg); err != nil {
		return nil, fmt.Errorf("failed to save registration: %w", err)
	}

	if err := notifier.RegistrationSubmitted(ctx, employeeName, len(selection)); err != nil {
		// Notification delivery is best-effort; the registration is
		// already stored.
		logger.Warn("Failed to send registration notification",
			zap.String("employee", employeeName),
			zap.Error(err))
	}

	logger.Info("Registration saved",
		zap.String("id", reg.ID),
		zap.String("employee", employeeName),
		zap.Int("shift_count", len(selection)))
	return &SubmitResult{Registration: reg, Validation: validation}, nil
}

func onRoster(employees []string, name string) bool {
	for _, e := range employees {
		if e == name {
			return true
		}
	}
	return false
}
