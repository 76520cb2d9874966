package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/lamnguyen-se/shiftreg/internal/config"
	"github.com/lamnguyen-se/shiftreg/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Store
	Logger   *zap.Logger
	Ctx      context.Context
}
