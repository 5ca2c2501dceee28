// Package api - Route handlers
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"souq-core/core/calendar"
	"souq-core/core/pricing"
	"souq-core/core/quote"
	"souq-core/core/types"
	"souq-core/internal/errors"
)

// handleQuote handles POST /api/v1/quote
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Parsing("invalid JSON body", err))
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.TypeInvalidInput, "invalid quote request", err))
		return
	}

	locale := types.ParseLocale(req.Locale)

	// Inline raw tiers are normalized here, at the boundary; catalog
	// products were normalized at load time.
	if len(req.PriceRanges) > 0 {
		tiers, err := pricing.DecodeTiers(req.PriceRanges)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		q := s.engine.ForTiers(tiers, types.PricingQuery{
			Quantity:         req.Quantity,
			DeliveryLocation: req.DeliveryLocation,
		})
		s.writeJSON(w, r, q, http.StatusOK)
		return
	}

	q, err := s.engine.ForProduct(quote.Request{
		ProductID:        req.ProductID,
		Quantity:         req.Quantity,
		DeliveryLocation: req.DeliveryLocation,
		Locale:           locale,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, q, http.StatusOK)
}

// handleConvert handles POST /api/v1/calendar/convert
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Parsing("invalid JSON body", err))
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.TypeInvalidInput, "invalid convert request", err))
		return
	}

	system, err := calendar.ParseSystem(req.System)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	gy, gm, gd, err := calendar.ToGregorian(system, req.Year, req.Month, req.Day)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	hy, hm, hd, err := calendar.FromGregorian(calendar.Hijri, gy, gm, gd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	iso, err := calendar.ToISODate(calendar.Gregorian, gy, gm, gd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, ConvertResponse{
		ISO:       iso,
		Gregorian: DateTriple{Year: gy, Month: gm, Day: gd},
		Hijri:     DateTriple{Year: hy, Month: hm, Day: hd},
	}, http.StatusOK)
}

// handleDays handles GET /api/v1/calendar/days
func (s *Server) handleDays(w http.ResponseWriter, r *http.Request) {
	system, err := calendar.ParseSystem(r.URL.Query().Get("system"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	year, err := queryInt(r, "year")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	month, err := queryInt(r, "month")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	days, err := calendar.DaysInMonth(system, year, month)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, DaysResponse{System: system, Year: year, Month: month, Days: days}, http.StatusOK)
}

// handleToday handles GET /api/v1/calendar/today
func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	system, err := calendar.ParseSystem(r.URL.Query().Get("system"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	locale := types.ParseLocale(r.URL.Query().Get("locale"))

	sel := calendar.DefaultSelection(system)
	iso, err := sel.ISO()
	if err != nil {
		s.writeError(w, r, errors.Internal("default selection not formattable", err))
		return
	}
	monthName, _ := calendar.MonthName(system, sel.Month, locale)

	s.writeJSON(w, r, TodayResponse{
		Selection: sel,
		ISO:       iso,
		MonthName: monthName,
		Label:     calendar.SystemLabel(system, locale),
	}, http.StatusOK)
}

// handleListProducts handles GET /api/v1/products
func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, s.registry.List(), http.StatusOK)
}

// handleGetProduct handles GET /api/v1/products/{id}
func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := s.registry.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, product, http.StatusOK)
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidInputf("%s must be an integer, got %q", name, raw)
	}
	return v, nil
}
