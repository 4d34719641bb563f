package towndata

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"courierquote/internal/core/domain/model/town"
	"courierquote/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// FileDirectory implements ports.TownDirectory and ports.TownDirectoryReloader
// over a town file. Until the first successful Reload it is empty and every
// lookup misses. Reload swaps the whole table at once, so readers never see a
// half-loaded table, and a failed reload keeps the previous one.
type FileDirectory struct {
	path   string
	logger *slog.Logger

	mu    sync.RWMutex
	towns map[string]town.Record
}

// NewFileDirectory creates an empty directory for path. Call Reload to load it.
func NewFileDirectory(path string, logger *slog.Logger) *FileDirectory {
	return &FileDirectory{
		path:   path,
		logger: logger.With("component", "town_directory", "path", path),
		towns:  map[string]town.Record{},
	}
}

// Lookup finds a town by normalized key.
func (d *FileDirectory) Lookup(key string) (town.Record, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	record, ok := d.towns[key]
	return record, ok
}

// Len returns the number of loaded towns.
func (d *FileDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.towns)
}

// Reload reads and parses the file and replaces the table. It returns the
// number of towns loaded.
func (d *FileDirectory) Reload(ctx context.Context) (int, error) {
	if d.path == "" {
		return 0, errs.NewValueIsRequiredError("town data path")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	raw, err := os.ReadFile(d.path)
	if err != nil {
		return 0, fmt.Errorf("read town data: %w", err)
	}

	var dtos map[string]TownDTO
	if err = yaml.Unmarshal(raw, &dtos); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("town data", err)
	}

	towns := toDomain(dtos)

	d.mu.Lock()
	d.towns = towns
	d.mu.Unlock()

	d.logger.InfoContext(ctx, "town data loaded", "towns", len(towns))
	return len(towns), nil
}
