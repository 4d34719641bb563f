package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "courierquote/internal/adapters/in/http"
	"courierquote/internal/adapters/out/mailto"
	"courierquote/internal/adapters/out/tariffconfig"
	"courierquote/internal/adapters/out/towndata"
	"courierquote/internal/core/application/usecases/commands"
	"courierquote/internal/core/application/usecases/queries"
	"courierquote/internal/core/domain/model/tariff"
	"courierquote/internal/core/domain/model/town"
	"courierquote/internal/core/domain/services"
	"courierquote/internal/jobs"
)

type CompositionRoot struct {
	config    Config
	logger    *slog.Logger
	tariff    tariff.Tariff
	overrides town.OverrideSet
	directory *towndata.FileDirectory
	resolver  services.AreaResolver
}

// NewCompositionRoot loads the price list and builds the shared services.
// The town directory starts empty; call LoadTownDirectory to fill it.
func NewCompositionRoot(cfg Config, logger *slog.Logger) (CompositionRoot, error) {
	cfg = cfg.WithDefaults()

	tariffCfg, overrides, err := tariffconfig.Load(cfg.TariffPath)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("load tariff: %w", err)
	}
	t, err := tariff.NewTariff(tariffCfg)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("build tariff: %w", err)
	}

	directory := towndata.NewFileDirectory(cfg.TownDataPath, logger)
	classifier := services.NewTownClassifier(directory, overrides)

	return CompositionRoot{
		config:    cfg,
		logger:    logger,
		tariff:    t,
		overrides: overrides,
		directory: directory,
		resolver:  services.NewAreaResolver(classifier),
	}, nil
}

func (c *CompositionRoot) Config() Config {
	return c.config
}

func (c *CompositionRoot) Tariff() tariff.Tariff {
	return c.tariff
}

// HasTownData reports whether a town table file is configured.
func (c *CompositionRoot) HasTownData() bool {
	return c.config.TownDataPath != ""
}

// LoadTownDirectory performs the first load of the town table. Without a
// configured file it does nothing.
func (c *CompositionRoot) LoadTownDirectory(ctx context.Context) error {
	if !c.HasTownData() {
		return nil
	}
	return c.CreateRefreshTownDirectoryCommandHandler().Handle(ctx, commands.NewRefreshTownDirectoryCommand())
}

func (c *CompositionRoot) CreateRequestQuoteCommandHandler() commands.RequestQuoteCommandHandler {
	return commands.NewRequestQuoteCommandHandler(mailto.NewSender(), c.config.QuoteRecipient, c.logger)
}

func (c *CompositionRoot) CreateRefreshTownDirectoryCommandHandler() commands.RefreshTownDirectoryCommandHandler {
	return commands.NewRefreshTownDirectoryCommandHandler(c.directory, c.logger)
}

func (c *CompositionRoot) CreateCalculateVolumetricWeightQueryHandler() queries.CalculateVolumetricWeightQueryHandler {
	return queries.NewCalculateVolumetricWeightQueryHandler(services.NewVolumetricCalculator(), c.tariff)
}

func (c *CompositionRoot) CreateResolveAreaQueryHandler() queries.ResolveAreaQueryHandler {
	return queries.NewResolveAreaQueryHandler(c.resolver)
}

func (c *CompositionRoot) CreateEstimateQuoteQueryHandler() queries.EstimateQuoteQueryHandler {
	return queries.NewEstimateQuoteQueryHandler(
		c.resolver,
		services.NewPriceEngine(c.tariff),
		c.tariff.CurrencySymbol(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetTariffQueryHandler() queries.GetTariffQueryHandler {
	return queries.NewGetTariffQueryHandler(c.tariff, c.overrides)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRequestQuoteCommandHandler(),
		c.CreateCalculateVolumetricWeightQueryHandler(),
		c.CreateResolveAreaQueryHandler(),
		c.CreateEstimateQuoteQueryHandler(),
		c.CreateGetTariffQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRefreshTownDirectoryCommandHandler(), c.config.TownDataRefresh, c.logger)
}
