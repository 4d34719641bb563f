package http

import (
	"errors"
	"net/http"

	"courierquote/internal/core/application/usecases/commands"
	"courierquote/internal/core/application/usecases/queries"
	"courierquote/internal/core/domain/model/tariff"
	"courierquote/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the estimator use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	requestQuoteHandler commands.RequestQuoteCommandHandler

	// Query handlers
	volumetricHandler  queries.CalculateVolumetricWeightQueryHandler
	resolveAreaHandler queries.ResolveAreaQueryHandler
	estimateHandler    queries.EstimateQuoteQueryHandler
	tariffHandler      queries.GetTariffQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	requestQuoteHandler commands.RequestQuoteCommandHandler,
	volumetricHandler queries.CalculateVolumetricWeightQueryHandler,
	resolveAreaHandler queries.ResolveAreaQueryHandler,
	estimateHandler queries.EstimateQuoteQueryHandler,
	tariffHandler queries.GetTariffQueryHandler,
) *Server {
	return &Server{
		requestQuoteHandler: requestQuoteHandler,
		volumetricHandler:   volumetricHandler,
		resolveAreaHandler:  resolveAreaHandler,
		estimateHandler:     estimateHandler,
		tariffHandler:       tariffHandler,
	}
}

// RegisterRoutes mounts every endpoint on e. POST /api/v1/quote-requests
// needs e.Validator, see NewRequestValidator.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)

	api := e.Group("/api/v1")
	api.GET("/volumetric", s.GetVolumetricWeight)
	api.GET("/area", s.GetArea)
	api.GET("/quote", s.GetQuote)
	api.GET("/tariff", s.GetTariff)
	api.POST("/quote-requests", s.CreateQuoteRequest)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Health{Status: "ok"})
}

// GetVolumetricWeight handles GET /api/v1/volumetric. Bad dimensions count as
// zero and a bad divisor falls back to the tariff default, so it never
// answers 400.
func (s *Server) GetVolumetricWeight(ctx echo.Context) error {
	query := queries.NewCalculateVolumetricWeightQuery(
		ctx.QueryParam("length"),
		ctx.QueryParam("width"),
		ctx.QueryParam("height"),
		ctx.QueryParam("divisor"),
	)

	res, err := s.volumetricHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to calculate volumetric weight")
	}

	return ctx.JSON(http.StatusOK, VolumetricWeight{
		VolumetricWeight: res.Display,
		Divisor:          res.Divisor.String(),
	})
}

// GetArea handles GET /api/v1/area.
func (s *Server) GetArea(ctx echo.Context) error {
	query := queries.NewResolveAreaQuery(ctx.QueryParam("origin"), ctx.QueryParam("destination"))

	state, err := s.resolveAreaHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to resolve area")
	}

	return ctx.JSON(http.StatusOK, Area{
		OvernightZone: state.Overnight().String(),
		RoadZone:      state.Road().String(),
		BothMajor:     state.BothMajor(),
		Hint:          state.Hint(),
	})
}

// GetQuote handles GET /api/v1/quote.
func (s *Server) GetQuote(ctx echo.Context) error {
	query, err := queries.NewEstimateQuoteQuery(
		ctx.QueryParam("service"),
		ctx.QueryParam("weight"),
		ctx.QueryParam("volumetric_weight"),
		ctx.QueryParam("origin"),
		ctx.QueryParam("destination"),
	)
	if err != nil {
		return badRequest(ctx, "Invalid quote query: "+err.Error())
	}

	res, err := s.estimateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to estimate quote")
	}

	q := res.Quote
	return ctx.JSON(http.StatusOK, Quote{
		Reference:        q.Reference().String(),
		Service:          q.Service().String(),
		ChargeableWeight: q.ChargeableWeight().String(),
		Zone:             q.ZoneKey(),
		Total:            q.Total().String(),
		FormattedTotal:   res.FormattedTotal,
		Hint:             q.Area().Hint(),
	})
}

// GetTariff handles GET /api/v1/tariff.
func (s *Server) GetTariff(ctx echo.Context) error {
	res, err := s.tariffHandler.Handle(ctx.Request().Context(), queries.NewGetTariffQuery())
	if err != nil {
		return internalError(ctx, "Failed to load tariff")
	}

	response, err := tariffResponse(res.Tariff, res.RegionalOverrides)
	if err != nil {
		return internalError(ctx, "Failed to load tariff")
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateQuoteRequest handles POST /api/v1/quote-requests.
func (s *Server) CreateQuoteRequest(ctx echo.Context) error {
	var body NewQuoteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return badRequest(ctx, "Invalid quote request: "+describeValidation(err))
	}

	cmd, err := commands.NewRequestQuoteCommand(body.Name, body.Email, body.Recipient, body.Details, body.QuoteRef)
	if err != nil {
		return badRequest(ctx, "Invalid quote request: "+err.Error())
	}

	receipt, err := s.requestQuoteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if isClientError(err) {
			return badRequest(ctx, "Invalid quote request: "+err.Error())
		}
		return internalError(ctx, "Failed to prepare quote request")
	}

	return ctx.JSON(http.StatusCreated, QuoteRequestLink{Mailto: receipt.Link})
}

func tariffResponse(t tariff.Tariff, overrides []string) (Tariff, error) {
	response := Tariff{
		CurrencySymbol:    t.CurrencySymbol(),
		DocumentationFee:  t.DocumentationFee().String(),
		RoadSurcharge:     t.RoadSurcharge().String(),
		OvernightTierKg:   t.OvernightTierKg().String(),
		RoadTierKg:        t.RoadTierKg().String(),
		VolumetricDivisor: t.VolumetricDivisor().String(),
		Overnight:         make(map[string]OvernightRate, len(tariff.OvernightZones())),
		Road:              make(map[string]RoadRate, len(tariff.RoadZones())),
		RegionalOverrides: overrides,
	}

	for _, zone := range tariff.OvernightZones() {
		rate, err := t.OvernightRate(zone)
		if err != nil {
			return Tariff{}, err
		}
		response.Overnight[zone.String()] = OvernightRate{First: rate.First.String(), PerKg: rate.PerKg.String()}
	}
	for _, zone := range tariff.RoadZones() {
		rate, err := t.RoadRate(zone)
		if err != nil {
			return Tariff{}, err
		}
		response.Road[zone.String()] = RoadRate{Minimum: rate.Minimum.String(), PerKg: rate.PerKg.String()}
	}

	return response, nil
}

func isClientError(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: message})
}
