package service

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/traveldesk/travelbot/internal/errors"
	"github.com/traveldesk/travelbot/internal/gemini"
	"github.com/traveldesk/travelbot/internal/model"
)

// Input dates are day-first, matching the prompt examples shown to users.
var inputDateLayouts = []string{"02/01/2006", "02.01.2006", "02-01-2006"}

// QueryBuilder turns one free-text message into a validated SearchRequest.
type QueryBuilder struct {
	resolver AirportResolver
	now      func() time.Time
}

func NewQueryBuilder(resolver AirportResolver) *QueryBuilder {
	return &QueryBuilder{resolver: resolver, now: time.Now}
}

func parseInputDate(field, value string) (time.Time, error) {
	var lastErr error
	for _, layout := range inputDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, apperrors.DateParse(field, lastErr)
}

// Build parses "departure, arrival, departure date[, return date]",
// resolves both cities to airport codes and returns the normalized
// request. Any failure leaves the caller free to re-prompt; nothing is
// stored here.
func (b *QueryBuilder) Build(ctx context.Context, text string) (*model.SearchRequest, error) {
	fields := strings.Split(text, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) != 3 && len(fields) != 4 {
		return nil, apperrors.MalformedInput("expected 3 or 4 comma-separated values")
	}
	for _, f := range fields {
		if f == "" {
			return nil, apperrors.MalformedInput("empty field")
		}
	}

	departureDate, err := parseInputDate("departure date", fields[2])
	if err != nil {
		return nil, err
	}

	req := &model.SearchRequest{
		DepartureCity: fields[0],
		ArrivalCity:   fields[1],
		DepartureDate: departureDate,
		OneWay:        len(fields) == 3,
	}

	if !req.OneWay {
		returnDate, err := parseInputDate("return date", fields[3])
		if err != nil {
			return nil, err
		}
		if returnDate.Before(departureDate) {
			return nil, apperrors.InvalidRange("return date before departure date").WithDetails("return_date")
		}
		req.ReturnDate = &returnDate
	}

	// A parsed date sits at midnight, so comparing against the current
	// moment also rejects today.
	if departureDate.Before(b.now()) {
		return nil, apperrors.InvalidRange("departure date in the past").WithDetails("departure_date")
	}

	req.DepartureID, err = b.resolveFirst(ctx, req.DepartureCity)
	if err != nil {
		return nil, err
	}
	req.ArrivalID, err = b.resolveFirst(ctx, req.ArrivalCity)
	if err != nil {
		return nil, err
	}
	return req, nil
}

// resolveFirst takes the top-ranked code from the resolver's list.
func (b *QueryBuilder) resolveFirst(ctx context.Context, city string) (string, error) {
	codes, err := b.resolver.ResolveAirports(ctx, city)
	if err != nil {
		return "", err
	}
	if codes == gemini.NoResult {
		return "", apperrors.UnresolvedLocation(city)
	}
	first := strings.TrimSpace(strings.Split(codes, ",")[0])
	if first == "" {
		return "", apperrors.UnresolvedLocation(city)
	}
	return strings.ToUpper(first), nil
}
