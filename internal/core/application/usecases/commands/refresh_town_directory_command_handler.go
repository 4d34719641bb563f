package commands

import (
	"context"
	"fmt"
	"log/slog"

	"courierquote/internal/core/ports"
)

// RefreshTownDirectoryCommandHandler reloads the town directory. On failure
// the directory keeps serving its previous table.
type RefreshTownDirectoryCommandHandler struct {
	reloader ports.TownDirectoryReloader
	logger   *slog.Logger
}

func NewRefreshTownDirectoryCommandHandler(
	reloader ports.TownDirectoryReloader,
	logger *slog.Logger,
) RefreshTownDirectoryCommandHandler {
	return RefreshTownDirectoryCommandHandler{
		reloader: reloader,
		logger:   logger.With("component", "refresh_town_directory"),
	}
}

func (h RefreshTownDirectoryCommandHandler) Handle(ctx context.Context, cmd RefreshTownDirectoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	count, err := h.reloader.Reload(ctx)
	if err != nil {
		return fmt.Errorf("reload town directory: %w", err)
	}

	h.logger.DebugContext(ctx, "town directory reloaded", "towns", count)
	return nil
}
