package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/traveldesk/travelbot/internal/errors"
	"github.com/traveldesk/travelbot/internal/gemini"
)

type fakeResolver struct {
	codes map[string]string
	err   error
}

func (f *fakeResolver) ResolveAirports(_ context.Context, location string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if codes, ok := f.codes[location]; ok {
		return codes, nil
	}
	return gemini.NoResult, nil
}

func newTestBuilder(resolver *fakeResolver) *QueryBuilder {
	b := NewQueryBuilder(resolver)
	b.now = func() time.Time {
		return time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	}
	return b
}

func TestQueryBuilderBuild(t *testing.T) {
	resolver := &fakeResolver{codes: map[string]string{
		"Tel Aviv": "TLV",
		"Paris":    "CDG, ORY",
	}}

	t.Run("round trip with four fields", func(t *testing.T) {
		req, err := newTestBuilder(resolver).Build(context.Background(), "Tel Aviv, Paris, 01/12/2025, 05/12/2025")

		require.NoError(t, err)
		assert.Equal(t, "Tel Aviv", req.DepartureCity)
		assert.Equal(t, "Paris", req.ArrivalCity)
		assert.Equal(t, "TLV", req.DepartureID)
		assert.Equal(t, "CDG", req.ArrivalID)
		assert.False(t, req.OneWay)
		require.NotNil(t, req.ReturnDate)
		assert.Equal(t, time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC), *req.ReturnDate)
	})

	t.Run("three fields mean one-way", func(t *testing.T) {
		req, err := newTestBuilder(resolver).Build(context.Background(), "Tel Aviv, Paris, 01/12/2025")

		require.NoError(t, err)
		assert.True(t, req.OneWay)
		assert.Nil(t, req.ReturnDate)
	})

	t.Run("dates are parsed day first", func(t *testing.T) {
		req, err := newTestBuilder(resolver).Build(context.Background(), "Tel Aviv, Paris, 05/12/2025")

		require.NoError(t, err)
		assert.Equal(t, time.December, req.DepartureDate.Month())
		assert.Equal(t, 5, req.DepartureDate.Day())
	})

	t.Run("dotted date format accepted", func(t *testing.T) {
		_, err := newTestBuilder(resolver).Build(context.Background(), "Tel Aviv, Paris, 01.12.2025")
		require.NoError(t, err)
	})

	t.Run("wrong field count", func(t *testing.T) {
		_, err := newTestBuilder(resolver).Build(context.Background(), "Tel Aviv, Paris")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeMalformedInput, apperrors.GetCode(err))
	})

	t.Run("empty field", func(t *testing.T) {
		_, err := newTestBuilder(resolver).Build(context.Background(), "Tel Aviv, , 01/12/2025")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeMalformedInput, apperrors.GetCode(err))
	})

	t.Run("unparseable date", func(t *testing.T) {
		_, err := newTestBuilder(resolver).Build(context.Background(), "Tel Aviv, Paris, December first")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeDateParse, apperrors.GetCode(err))
	})

	t.Run("return before departure", func(t *testing.T) {
		_, err := newTestBuilder(resolver).Build(context.Background(), "Tel Aviv, Paris, 05/12/2025, 01/12/2025")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidRange, apperrors.GetCode(err))
	})

	t.Run("departure in the past", func(t *testing.T) {
		_, err := newTestBuilder(resolver).Build(context.Background(), "Tel Aviv, Paris, 01/10/2025")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidRange, apperrors.GetCode(err))
	})

	t.Run("departure on the current day is rejected", func(t *testing.T) {
		_, err := newTestBuilder(resolver).Build(context.Background(), "Tel Aviv, Paris, 01/11/2025")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidRange, apperrors.GetCode(err))
	})

	t.Run("unresolvable city names the failing side", func(t *testing.T) {
		_, err := newTestBuilder(resolver).Build(context.Background(), "Atlantis, Paris, 01/12/2025")

		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeUnresolvedLocation, appErr.Code)
		assert.Equal(t, map[string]string{"city": "Atlantis"}, appErr.Details)
	})

	t.Run("resolver failure propagates", func(t *testing.T) {
		failing := &fakeResolver{err: apperrors.Collaborator("gemini", assert.AnError)}
		_, err := newTestBuilder(failing).Build(context.Background(), "Tel Aviv, Paris, 01/12/2025")

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeCollaborator, apperrors.GetCode(err))
	})
}
