package commands

import (
	"errors"

	"courierquote/internal/pkg/guard"
)

var ErrRefreshTownDirectoryCommandIsNotConstructed = errors.New(
	"RefreshTownDirectoryCommand must be created via NewRefreshTownDirectoryCommand constructor",
)

// RefreshTownDirectoryCommand reloads the town table from its source.
type RefreshTownDirectoryCommand struct {
	guard guard.ConstructorGuard
}

func NewRefreshTownDirectoryCommand() RefreshTownDirectoryCommand {
	return RefreshTownDirectoryCommand{guard: guard.NewConstructorGuard()}
}

func (c RefreshTownDirectoryCommand) Validate() error {
	return c.guard.Validate(ErrRefreshTownDirectoryCommandIsNotConstructed)
}
