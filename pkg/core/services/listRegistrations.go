package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

// ListRegistrationsStore defines the database operations needed to
// list registrations.
type ListRegistrationsStore interface {
	GetRegistrations(ctx context.Context) ([]model.Registration, error)
}

// ListRegistrations returns every stored registration, newest first.
func ListRegistrations(ctx context.Context, store ListRegistrationsStore, logger *zap.Logger) ([]model.Registration, error) {
	regs, err := store.GetRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch registrations: %w", err)
	}

	sort.SliceStable(regs, func(i, j int) bool {
		return regs[i].Timestamp.After(regs[j].Timestamp)
	})

	logger.Debug("Listed registrations", zap.Int("count", len(regs)))
	return regs, nil
}
