package cmd_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"courierquote/cmd"
	"courierquote/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const townYAML = `
johannesburg: {category: major}
durban: {category: major}
somerset west: {category: major}
upington: {category: regional}
`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func estimateTotal(t *testing.T, root cmd.CompositionRoot, service, weight, origin, destination string) string {
	t.Helper()
	query, err := queries.NewEstimateQuoteQuery(service, weight, "", origin, destination)
	require.NoError(t, err)
	res, err := root.CreateEstimateQuoteQueryHandler().Handle(t.Context(), query)
	require.NoError(t, err)
	return res.FormattedTotal
}

func TestNewCompositionRoot_Defaults(t *testing.T) {
	root, err := cmd.NewCompositionRoot(cmd.Config{}, discardLogger())
	require.NoError(t, err)

	assert.False(t, root.HasTownData())
	require.NoError(t, root.LoadTownDirectory(t.Context()))
	assert.Equal(t, "R", root.Tariff().CurrencySymbol())
	assert.Equal(t, "8080", root.Config().HTTPPort)

	// Without a town table every route is regional.
	assert.Equal(t, "R250.00", estimateTotal(t, root, "overnight", "1", "johannesburg", "durban"))
}

func TestNewCompositionRoot_WithTownData(t *testing.T) {
	root, err := cmd.NewCompositionRoot(cmd.Config{
		TownDataPath: writeFile(t, "towns.yaml", townYAML),
	}, discardLogger())
	require.NoError(t, err)
	require.NoError(t, root.LoadTownDirectory(t.Context()))

	assert.Equal(t, "R150.00", estimateTotal(t, root, "overnight", "1", "johannesburg", "durban"))
	assert.Equal(t, "R250.00", estimateTotal(t, root, "overnight", "1", "johannesburg", "somerset west"))
	assert.Equal(t, "R237.70", estimateTotal(t, root, "road", "15", "johannesburg", "durban"))
}

func TestNewCompositionRoot_WithTariffOverride(t *testing.T) {
	root, err := cmd.NewCompositionRoot(cmd.Config{
		TownDataPath: writeFile(t, "towns.yaml", townYAML),
		TariffPath:   writeFile(t, "tariff.yaml", "documentation_fee: 20\nregional_overrides: []\n"),
	}, discardLogger())
	require.NoError(t, err)
	require.NoError(t, root.LoadTownDirectory(t.Context()))

	assert.Equal(t, "R160.00", estimateTotal(t, root, "overnight", "1", "johannesburg", "durban"))
	assert.Equal(t, "R160.00", estimateTotal(t, root, "overnight", "1", "johannesburg", "somerset west"))
}

func TestNewCompositionRoot_InvalidTariff(t *testing.T) {
	_, err := cmd.NewCompositionRoot(cmd.Config{
		TariffPath: writeFile(t, "tariff.yaml", "road_surcharge: 0\n"),
	}, discardLogger())

	assert.Error(t, err)
}

func TestCompositionRoot_LoadTownDirectoryMissingFile(t *testing.T) {
	root, err := cmd.NewCompositionRoot(cmd.Config{
		TownDataPath: filepath.Join(t.TempDir(), "missing.yaml"),
	}, discardLogger())
	require.NoError(t, err)

	assert.ErrorIs(t, root.LoadTownDirectory(t.Context()), os.ErrNotExist)
}
