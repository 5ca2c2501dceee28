// Package api - Request and response types
package api

import (
	"encoding/json"

	"souq-core/core/calendar"
)

// QuoteRequest asks for a price quote. Either a catalog product_id or
// an inline price_ranges array (the store's raw shape) must be given.
type QuoteRequest struct {
	// ProductID selects a catalog product
	ProductID string `json:"product_id,omitempty" validate:"required_without=PriceRanges"`

	// PriceRanges carries raw store tiers for quoting without a catalog
	// entry; normalized at this boundary
	PriceRanges json.RawMessage `json:"price_ranges,omitempty"`

	// Quantity is the requested order quantity
	Quantity int `json:"quantity" validate:"required,min=1"`

	// DeliveryLocation is the optional destination
	DeliveryLocation string `json:"delivery_location,omitempty"`

	// Locale selects display language (en, ar)
	Locale string `json:"locale,omitempty" validate:"omitempty,oneof=en ar"`
}

// ConvertRequest converts a date selection between calendar systems
type ConvertRequest struct {
	System string `json:"system" validate:"required,oneof=gregorian hijri"`
	Year   int    `json:"year" validate:"required,min=1,max=9999"`
	Month  int    `json:"month" validate:"required,min=1,max=12"`
	Day    int    `json:"day" validate:"required,min=1"`
}

// DateTriple is a year/month/day in one calendar system
type DateTriple struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// ConvertResponse carries a date in both systems plus the canonical ISO
// form consumed by form submission payloads
type ConvertResponse struct {
	ISO       string     `json:"iso"`
	Gregorian DateTriple `json:"gregorian"`
	Hijri     DateTriple `json:"hijri"`
}

// DaysResponse answers a days-in-month lookup
type DaysResponse struct {
	System calendar.System `json:"system"`
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Days   int             `json:"days"`
}

// TodayResponse is the default picker selection for a calendar system
type TodayResponse struct {
	Selection calendar.Selection `json:"selection"`
	ISO       string             `json:"iso"`
	MonthName string             `json:"month_name"`
	Label     string             `json:"label"`
}

// ErrorBody is the error envelope payload
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps every non-2xx answer
type ErrorResponse struct {
	Error     ErrorBody `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}
