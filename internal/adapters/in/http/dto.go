package http

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health is the body of GET /health.
type Health struct {
	Status string `json:"status"`
}

// VolumetricWeight is the body of GET /api/v1/volumetric.
type VolumetricWeight struct {
	VolumetricWeight string `json:"volumetric_weight"`
	Divisor          string `json:"divisor"`
}

// Area is the body of GET /api/v1/area.
type Area struct {
	OvernightZone string `json:"overnight_zone"`
	RoadZone      string `json:"road_zone"`
	BothMajor     bool   `json:"both_major"`
	Hint          string `json:"hint"`
}

// Quote is the body of GET /api/v1/quote.
type Quote struct {
	Reference        string `json:"reference"`
	Service          string `json:"service"`
	ChargeableWeight string `json:"chargeable_weight"`
	Zone             string `json:"zone"`
	Total            string `json:"total"`
	FormattedTotal   string `json:"formatted_total"`
	Hint             string `json:"hint"`
}

// NewQuoteRequest is the body of POST /api/v1/quote-requests.
type NewQuoteRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Recipient string `json:"recipient" validate:"omitempty,email"`
	Details   string `json:"details"`
	QuoteRef  string `json:"quote_ref" validate:"omitempty,uuid"`
}

// QuoteRequestLink is the response to POST /api/v1/quote-requests.
type QuoteRequestLink struct {
	Mailto string `json:"mailto"`
}

// OvernightRate is one row of the overnight table in GET /api/v1/tariff.
type OvernightRate struct {
	First string `json:"first"`
	PerKg string `json:"per_kg"`
}

// RoadRate is one row of the road table in GET /api/v1/tariff.
type RoadRate struct {
	Minimum string `json:"minimum"`
	PerKg   string `json:"per_kg"`
}

// Tariff is the body of GET /api/v1/tariff.
type Tariff struct {
	CurrencySymbol    string                   `json:"currency_symbol"`
	DocumentationFee  string                   `json:"documentation_fee"`
	RoadSurcharge     string                   `json:"road_surcharge"`
	OvernightTierKg   string                   `json:"overnight_tier_kg"`
	RoadTierKg        string                   `json:"road_tier_kg"`
	VolumetricDivisor string                   `json:"volumetric_divisor"`
	Overnight         map[string]OvernightRate `json:"overnight"`
	Road              map[string]RoadRate      `json:"road"`
	RegionalOverrides []string                 `json:"regional_overrides"`
}
