package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

// DeleteRegistrationStore defines the database operations needed to
// remove a single registration.
type DeleteRegistrationStore interface {
	GetRegistrations(ctx context.Context) ([]model.Registration, error)
	DeleteRegistration(ctx context.Context, id string) error
}

// DeleteRegistration removes one registration by id and returns the
// removed record for display. Shifts already merged into a finalized
// schedule stay there; deletion only affects the pending collection.
func DeleteRegistration(ctx context.Context, store DeleteRegistrationStore, id string, logger *zap.Logger) (*model.Registration, error) {
	regs, err := store.GetRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch registrations: %w", err)
	}
	reg := findRegistration(regs, id)
	if reg == nil {
		return nil, fmt.Errorf("registration %s not found", id)
	}

	if err := store.DeleteRegistration(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete registration %s: %w", id, err)
	}

	logger.Info("Registration deleted",
		zap.String("id", id),
		zap.String("employee", reg.EmployeeName))
	return reg, nil
}
