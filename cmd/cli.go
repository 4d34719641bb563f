package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpin "courierquote/internal/adapters/in/http"
	"courierquote/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

// NewApp builds the command line: "serve" runs the HTTP API and the town
// refresh job, "estimate" prices one shipment and prints the result.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:  "courierquote",
		Usage: "Courier quote estimator",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the quote HTTP API",
				Flags:  append(commonFlags(), serveFlags()...),
				Action: serve,
			},
			{
				Name:   "estimate",
				Usage:  "Estimate one quote in the terminal",
				Flags:  append(commonFlags(), estimateFlags()...),
				Action: estimate,
			},
		},
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "town-data", Usage: "YAML or JSON town table", Sources: cli.EnvVars("TOWN_DATA_PATH")},
		&cli.StringFlag{Name: "tariff", Usage: "YAML price list overriding the defaults", Sources: cli.EnvVars("TARIFF_PATH")},
		&cli.StringFlag{Name: "log-level", Value: "info", Sources: cli.EnvVars("LOG_LEVEL")},
	}
}

func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "http-port", Value: DefaultHTTPPort, Sources: cli.EnvVars("HTTP_PORT")},
		&cli.StringFlag{Name: "town-data-refresh", Value: DefaultTownRefresh, Sources: cli.EnvVars("TOWN_DATA_REFRESH")},
		&cli.StringFlag{Name: "quote-recipient", Value: DefaultQuoteRecipient, Sources: cli.EnvVars("QUOTE_RECIPIENT")},
	}
}

func estimateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "service", Value: "overnight", Usage: "overnight or road"},
		&cli.StringFlag{Name: "weight", Usage: "actual weight in kg"},
		&cli.StringFlag{Name: "volumetric-weight", Usage: "volumetric weight in kg, computed from the dimensions when empty"},
		&cli.StringFlag{Name: "length", Usage: "cm"},
		&cli.StringFlag{Name: "width", Usage: "cm"},
		&cli.StringFlag{Name: "height", Usage: "cm"},
		&cli.StringFlag{Name: "divisor", Usage: "volumetric divisor, the tariff default when empty"},
		&cli.StringFlag{Name: "origin"},
		&cli.StringFlag{Name: "destination"},
	}
}

func configFromCommand(c *cli.Command) Config {
	return Config{
		HTTPPort:        c.String("http-port"),
		TownDataPath:    c.String("town-data"),
		TownDataRefresh: c.String("town-data-refresh"),
		TariffPath:      c.String("tariff"),
		QuoteRecipient:  c.String("quote-recipient"),
		LogLevel:        c.String("log-level"),
	}.WithDefaults()
}

func newLogger(w io.Writer, cfg Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

func serve(ctx context.Context, c *cli.Command) error {
	cfg := configFromCommand(c)
	logger := newLogger(os.Stderr, cfg)

	app, err := NewCompositionRoot(cfg, logger)
	if err != nil {
		return err
	}

	if app.HasTownData() {
		if err = app.LoadTownDirectory(ctx); err != nil {
			logger.WarnContext(ctx, "Town data unavailable, every town is regional until a reload succeeds", "error", err)
		}

		jobManager := app.CreateJobManager()
		if err = jobManager.StartAll(); err != nil {
			return err
		}
		defer jobManager.StopAll()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return startWebServer(ctx, app.CreateHTTPServer(), cfg.HTTPPort)
}

func startWebServer(ctx context.Context, server *httpin.Server, port string) error {
	e := echo.New()
	e.HideBanner = true
	e.Validator = httpin.NewRequestValidator()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	server.RegisterRoutes(e)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func estimate(ctx context.Context, c *cli.Command) error {
	cfg := configFromCommand(c)
	out, errOut := c.Root().Writer, c.Root().ErrWriter
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	logger := newLogger(errOut, cfg)

	app, err := NewCompositionRoot(cfg, logger)
	if err != nil {
		return err
	}
	if err = app.LoadTownDirectory(ctx); err != nil {
		return err
	}

	volumetric := c.String("volumetric-weight")
	if volumetric == "" {
		res, err := app.CreateCalculateVolumetricWeightQueryHandler().Handle(ctx,
			queries.NewCalculateVolumetricWeightQuery(
				c.String("length"), c.String("width"), c.String("height"), c.String("divisor"),
			))
		if err != nil {
			return err
		}
		volumetric = res.Display
	}

	query, err := queries.NewEstimateQuoteQuery(
		c.String("service"), c.String("weight"), volumetric, c.String("origin"), c.String("destination"),
	)
	if err != nil {
		return err
	}

	res, err := app.CreateEstimateQuoteQueryHandler().Handle(ctx, query)
	if err != nil {
		return err
	}

	q := res.Quote
	_, err = fmt.Fprintf(out,
		"Volumetric weight: %s\nChargeable weight: %s\nZone: %s\nPrice: %s\n%s\nReference: %s\n",
		volumetric, q.ChargeableWeight().String(), q.ZoneKey(), res.FormattedTotal,
		q.Area().Hint(), q.Reference().String(),
	)
	return err
}
