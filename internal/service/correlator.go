package service

import (
	"time"

	apperrors "github.com/traveldesk/travelbot/internal/errors"
	"github.com/traveldesk/travelbot/internal/model"
)

// IngestResults assigns zero-based indices to the provider rows and
// classifies each continuation token from the provider's own fields.
// A row carrying a departure token continues into the return leg; any
// other row is terminal and carries a booking token. The result set
// remembers which leg it was produced for so later button presses can
// be checked against it.
func IngestResults(chatID int64, leg model.LegRole, options []model.FlightOption) *model.ResultSet {
	candidates := make([]model.FlightCandidate, 0, len(options))
	for i, opt := range options {
		c := model.FlightCandidate{Index: i, Option: opt}
		if opt.DepartureToken != "" {
			c.Token = opt.DepartureToken
			c.Kind = model.TokenKindDepartureLeg
		} else {
			c.Token = opt.BookingToken
			c.Kind = model.TokenKindBooking
		}
		candidates = append(candidates, c)
	}
	return &model.ResultSet{
		ChatID:     chatID,
		Leg:        leg,
		Candidates: candidates,
		CreatedAt:  time.Now(),
	}
}

// ResolveSelection maps a button index back to a candidate of the chat's
// live result set. A nil set, an out-of-range index, or a leg tag from a
// different result set all mean the selection belongs to a superseded
// search.
func ResolveSelection(rs *model.ResultSet, index int, leg model.LegRole) (*model.FlightCandidate, error) {
	if rs == nil || rs.Leg != leg {
		return nil, apperrors.StaleSelection(index)
	}
	c, ok := rs.Get(index)
	if !ok {
		return nil, apperrors.StaleSelection(index)
	}
	return c, nil
}

// NextActionFor routes a resolved selection by which leg it was picked on
// and whether the search is one-way, and returns the continuation token
// the action must use. A round-trip outbound pick continues into the
// return leg on its departure token; a one-way or return-leg pick is
// terminal and needs the booking token. A candidate lacking the expected
// token is provider-data corruption, not something a retry can fix.
func NextActionFor(c *model.FlightCandidate, leg model.LegRole, oneWay bool) (model.NextAction, string, error) {
	if leg == model.LegRoleOutbound && !oneWay {
		if c.Option.DepartureToken == "" {
			return "", "", apperrors.MissingToken(string(model.TokenKindDepartureLeg))
		}
		return model.NextActionSearchReturn, c.Option.DepartureToken, nil
	}
	if c.Option.BookingToken == "" {
		return "", "", apperrors.MissingToken(string(model.TokenKindBooking))
	}
	return model.NextActionFetchBooking, c.Option.BookingToken, nil
}
