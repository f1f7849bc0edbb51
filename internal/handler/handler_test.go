package handler

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/traveldesk/travelbot/internal/errors"
	"github.com/traveldesk/travelbot/internal/flightapi"
	"github.com/traveldesk/travelbot/internal/gemini"
	"github.com/traveldesk/travelbot/internal/model"
	"github.com/traveldesk/travelbot/internal/service"
	"github.com/traveldesk/travelbot/internal/session"
	"github.com/traveldesk/travelbot/internal/telegram"
)

type fakeChat struct {
	sent      []telegram.SendMessageParams
	answered  []string
	edited    []string
	nextMsgID int64
}

func (f *fakeChat) SendMessage(_ context.Context, params telegram.SendMessageParams) (*telegram.Message, error) {
	f.sent = append(f.sent, params)
	f.nextMsgID++
	return &telegram.Message{MessageID: f.nextMsgID}, nil
}

func (f *fakeChat) EditMessageText(_ context.Context, _, _ int64, text, _ string) error {
	f.edited = append(f.edited, text)
	return nil
}

func (f *fakeChat) AnswerCallbackQuery(_ context.Context, callbackID string) error {
	f.answered = append(f.answered, callbackID)
	return nil
}

func (f *fakeChat) lastText(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.sent)
	return f.sent[len(f.sent)-1].Text
}

func (f *fakeChat) textAt(t *testing.T, fromEnd int) string {
	t.Helper()
	require.Greater(t, len(f.sent), fromEnd)
	return f.sent[len(f.sent)-1-fromEnd].Text
}

type fakeFlights struct {
	searchResults []model.FlightOption
	searchErr     error
	booking       *flightapi.BookingDetail
	bookingErr    error
	searchCalls   []flightapi.SearchParams
	bookingCalls  []string
}

func (f *fakeFlights) Search(_ context.Context, p flightapi.SearchParams) ([]model.FlightOption, error) {
	f.searchCalls = append(f.searchCalls, p)
	return f.searchResults, f.searchErr
}

func (f *fakeFlights) FetchBooking(_ context.Context, p flightapi.SearchParams, bookingToken string) (*flightapi.BookingDetail, error) {
	f.bookingCalls = append(f.bookingCalls, bookingToken)
	return f.booking, f.bookingErr
}

type fakeRecommender struct {
	calls []string
	err   error
}

func (f *fakeRecommender) Recommend(_ context.Context, _ int64, destination string, _ model.Language) error {
	if strings.TrimSpace(destination) == "" {
		return apperrors.MalformedInput("empty destination")
	}
	f.calls = append(f.calls, destination)
	return f.err
}

type noopAuditor struct{}

func (noopAuditor) RecordInbound(context.Context, int64, *string, string, any) {}
func (noopAuditor) RecordOutbound(context.Context, int64, string, any, error)  {}

type mapResolver map[string]string

func (m mapResolver) ResolveAirports(_ context.Context, location string) (string, error) {
	if codes, ok := m[location]; ok {
		return codes, nil
	}
	return gemini.NoResult, nil
}

type memChecklistRepo struct {
	lists map[int64]*model.Checklist
}

func (f *memChecklistRepo) Find(_ context.Context, chatID int64) (*model.Checklist, error) {
	return f.lists[chatID], nil
}

func (f *memChecklistRepo) Create(_ context.Context, checklist *model.Checklist) error {
	f.lists[checklist.ChatID] = checklist
	return nil
}

func (f *memChecklistRepo) Replace(_ context.Context, chatID int64, items []model.ChecklistItem) error {
	f.lists[chatID] = &model.Checklist{ChatID: chatID, Items: items}
	return nil
}

func (f *memChecklistRepo) AddItem(_ context.Context, chatID int64, item model.ChecklistItem) error {
	list, ok := f.lists[chatID]
	if !ok || list.Has(item.Name) {
		return nil
	}
	list.Items = append(list.Items, item)
	return nil
}

func (f *memChecklistRepo) RemoveItem(_ context.Context, chatID int64, name string) error {
	list, ok := f.lists[chatID]
	if !ok {
		return nil
	}
	kept := list.Items[:0]
	for _, item := range list.Items {
		if item.Name != name {
			kept = append(kept, item)
		}
	}
	list.Items = kept
	return nil
}

func (f *memChecklistRepo) SetStatus(_ context.Context, chatID int64, name string, status model.ItemStatus) error {
	list, ok := f.lists[chatID]
	if !ok {
		return nil
	}
	for i := range list.Items {
		if list.Items[i].Name == name {
			list.Items[i].Status = status
		}
	}
	return nil
}

type fixture struct {
	handler     *Handler
	registry    *session.Registry
	chat        *fakeChat
	flights     *fakeFlights
	recommender *fakeRecommender
	repo        *memChecklistRepo
}

func newFixture() *fixture {
	chat := &fakeChat{}
	flights := &fakeFlights{}
	recommender := &fakeRecommender{}
	repo := &memChecklistRepo{lists: make(map[int64]*model.Checklist)}
	registry := session.NewRegistry()

	resolver := mapResolver{"Tel Aviv": "TLV", "Paris": "CDG, ORY"}

	h := NewHandler(
		registry,
		chat,
		service.NewQueryBuilder(resolver),
		flights,
		service.NewChecklistService(repo),
		recommender,
		noopAuditor{},
		nil,
		zerolog.Nop(),
	)
	return &fixture{handler: h, registry: registry, chat: chat, flights: flights, recommender: recommender, repo: repo}
}

func (f *fixture) text(chatID int64, text string) {
	f.handler.Dispatch(context.Background(), &telegram.Update{
		Message: &telegram.Message{Chat: telegram.Chat{ID: chatID}, Text: text},
	})
}

func (f *fixture) callback(chatID int64, data string) {
	f.handler.Dispatch(context.Background(), &telegram.Update{
		CallbackQuery: &telegram.CallbackQuery{
			ID:      "cb-1",
			Message: &telegram.Message{Chat: telegram.Chat{ID: chatID}},
			Data:    data,
		},
	})
}

func TestStartAndLanguage(t *testing.T) {
	t.Run("start asks for language", func(t *testing.T) {
		f := newFixture()
		f.text(1, "/start")

		require.Len(t, f.chat.sent, 1)
		markup, ok := f.chat.sent[0].ReplyMarkup.(*telegram.InlineKeyboardMarkup)
		require.True(t, ok)
		assert.Len(t, markup.InlineKeyboard, 4)
	})

	t.Run("language pick persists and switches replies", func(t *testing.T) {
		f := newFixture()
		f.text(1, "/start")
		f.callback(1, "lang_he")

		assert.Equal(t, model.LanguageHebrew, f.registry.Snapshot(1).Language)
		assert.Contains(t, f.chat.lastText(t), "ברוכים הבאים")
		assert.Equal(t, []string{"cb-1"}, f.chat.answered)
	})

	t.Run("invalid language code keeps the default", func(t *testing.T) {
		f := newFixture()
		f.callback(1, "lang_xx")
		assert.Equal(t, model.DefaultLanguage, f.registry.Snapshot(1).Language)
	})
}

func TestFlightSearchFlow(t *testing.T) {
	t.Run("command prompts for details and waits", func(t *testing.T) {
		f := newFixture()
		f.text(1, "/searchflight")

		assert.Equal(t, model.StateAwaitingFlightDetails, f.registry.Snapshot(1).State.Kind)
		assert.Contains(t, f.chat.lastText(t), "departure city")
	})

	t.Run("valid details search and show numbered buttons", func(t *testing.T) {
		f := newFixture()
		f.flights.searchResults = []model.FlightOption{
			{Price: 300, BookingToken: "b-0"},
			{Price: 400, BookingToken: "b-1"},
		}

		f.text(1, "/searchflight")
		f.text(1, "Tel Aviv, Paris, 01/12/2099, 05/12/2099")

		s := f.registry.Snapshot(1)
		assert.Equal(t, model.StateResultsShown, s.State.Kind)
		require.NotNil(t, s.Results)
		assert.Len(t, s.Results.Candidates, 2)

		require.Len(t, f.flights.searchCalls, 1)
		assert.Equal(t, "TLV", f.flights.searchCalls[0].DepartureID)
		assert.Equal(t, "CDG", f.flights.searchCalls[0].ArrivalID)

		last := f.chat.sent[len(f.chat.sent)-1]
		markup, ok := last.ReplyMarkup.(*telegram.InlineKeyboardMarkup)
		require.True(t, ok)
		require.Len(t, markup.InlineKeyboard, 2)
		assert.Equal(t, "flight_0_depart", markup.InlineKeyboard[0][0].CallbackData)
		assert.Equal(t, "flight_1_depart", markup.InlineKeyboard[1][0].CallbackData)
		assert.Contains(t, markup.InlineKeyboard[0][0].Text, "$300")
	})

	t.Run("malformed details re-prompt without losing state", func(t *testing.T) {
		f := newFixture()
		f.text(1, "/searchflight")
		f.text(1, "Tel Aviv, Paris")

		assert.Equal(t, model.StateAwaitingFlightDetails, f.registry.Snapshot(1).State.Kind)
		assert.Contains(t, f.chat.lastText(t), "3 or 4 comma-separated")
	})

	t.Run("unresolvable city names the failing side", func(t *testing.T) {
		f := newFixture()
		f.text(1, "/searchflight")
		f.text(1, "Atlantis, Paris, 01/12/2099")

		assert.Contains(t, f.chat.lastText(t), "Atlantis")
		assert.Equal(t, model.StateAwaitingFlightDetails, f.registry.Snapshot(1).State.Kind)
	})

	t.Run("empty result ends the flow", func(t *testing.T) {
		f := newFixture()
		f.flights.searchResults = nil

		f.text(1, "/searchflight")
		f.text(1, "Tel Aviv, Paris, 01/12/2099")

		assert.Equal(t, model.StateIdle, f.registry.Snapshot(1).State.Kind)
		assert.Contains(t, f.chat.lastText(t), "No flights found")
	})

	t.Run("provider failure resets the dialogue", func(t *testing.T) {
		f := newFixture()
		f.flights.searchErr = apperrors.Collaborator("flight search", assert.AnError)

		f.text(1, "/searchflight")
		f.text(1, "Tel Aviv, Paris, 01/12/2099")

		assert.Equal(t, model.StateIdle, f.registry.Snapshot(1).State.Kind)
		assert.Contains(t, f.chat.lastText(t), "unavailable right now")
	})
}

func TestFlightSelection(t *testing.T) {
	const (
		oneWayDetails    = "Tel Aviv, Paris, 01/12/2099"
		roundTripDetails = "Tel Aviv, Paris, 01/12/2099, 05/12/2099"
	)
	searchAndShow := func(f *fixture, details string, options []model.FlightOption) {
		f.flights.searchResults = options
		f.text(1, "/searchflight")
		f.text(1, details)
	}

	t.Run("one-way selection fetches booking detail", func(t *testing.T) {
		f := newFixture()
		f.flights.booking = &flightapi.BookingDetail{SummaryLink: "https://example.test/b.html"}
		searchAndShow(f, oneWayDetails, []model.FlightOption{{Price: 300, BookingToken: "b-0"}})

		f.callback(1, "flight_0_depart")

		assert.Equal(t, []string{"b-0"}, f.flights.bookingCalls)
		assert.Contains(t, f.chat.lastText(t), "https://example.test/b.html")
		s := f.registry.Snapshot(1)
		assert.Equal(t, model.StateIdle, s.State.Kind)
		assert.Nil(t, s.Results)
	})

	t.Run("one-way selection books even when a departure token is present", func(t *testing.T) {
		f := newFixture()
		f.flights.booking = &flightapi.BookingDetail{}
		searchAndShow(f, oneWayDetails, []model.FlightOption{
			{Price: 300, DepartureToken: "dep-0", BookingToken: "b-0"},
		})

		f.callback(1, "flight_0_depart")

		assert.Equal(t, []string{"b-0"}, f.flights.bookingCalls)
		require.Len(t, f.flights.searchCalls, 1)
	})

	t.Run("round-trip outbound selection continues into the return leg", func(t *testing.T) {
		f := newFixture()
		searchAndShow(f, roundTripDetails, []model.FlightOption{{Price: 300, DepartureToken: "dep-0"}})

		f.flights.searchResults = []model.FlightOption{{Price: 150, BookingToken: "b-9"}}
		f.callback(1, "flight_0_depart")

		require.Len(t, f.flights.searchCalls, 2)
		assert.Equal(t, "dep-0", f.flights.searchCalls[1].DepartureToken)

		s := f.registry.Snapshot(1)
		assert.Equal(t, model.StateResultsShown, s.State.Kind)
		require.NotNil(t, s.Results)
		assert.Equal(t, model.LegRoleReturn, s.Results.Leg)
		assert.Equal(t, "b-9", s.Results.Candidates[0].Token)

		// The chosen outbound flight is echoed before the return search.
		assert.Contains(t, f.chat.textAt(t, 2), "Total duration")

		last := f.chat.sent[len(f.chat.sent)-1]
		markup, ok := last.ReplyMarkup.(*telegram.InlineKeyboardMarkup)
		require.True(t, ok)
		assert.Equal(t, "flight_0_return", markup.InlineKeyboard[0][0].CallbackData)
	})

	t.Run("round-trip return selection books on the booking token", func(t *testing.T) {
		f := newFixture()
		f.flights.booking = &flightapi.BookingDetail{}
		searchAndShow(f, roundTripDetails, []model.FlightOption{{Price: 300, DepartureToken: "dep-0"}})

		f.flights.searchResults = []model.FlightOption{{Price: 150, BookingToken: "b-9"}}
		f.callback(1, "flight_0_depart")
		f.callback(1, "flight_0_return")

		assert.Equal(t, []string{"b-9"}, f.flights.bookingCalls)
		assert.Equal(t, model.StateIdle, f.registry.Snapshot(1).State.Kind)
	})

	t.Run("outbound button is stale once return results replace the set", func(t *testing.T) {
		f := newFixture()
		searchAndShow(f, roundTripDetails, []model.FlightOption{{Price: 300, DepartureToken: "dep-0"}})

		f.flights.searchResults = []model.FlightOption{{Price: 150, BookingToken: "ret-b-0"}}
		f.callback(1, "flight_0_depart")

		f.callback(1, "flight_0_depart")

		assert.Empty(t, f.flights.bookingCalls)
		assert.Equal(t, model.StateIdle, f.registry.Snapshot(1).State.Kind)
		assert.Contains(t, f.chat.lastText(t), "no longer valid")
	})

	t.Run("round-trip outbound without a departure token resets the dialogue", func(t *testing.T) {
		f := newFixture()
		searchAndShow(f, roundTripDetails, []model.FlightOption{{Price: 300, BookingToken: "b-only"}})

		f.callback(1, "flight_0_depart")

		assert.Empty(t, f.flights.bookingCalls)
		assert.Equal(t, model.StateIdle, f.registry.Snapshot(1).State.Kind)
		assert.Contains(t, f.chat.lastText(t), "Something went wrong")
	})

	t.Run("selection without a result set is stale", func(t *testing.T) {
		f := newFixture()
		f.callback(1, "flight_0_depart")

		assert.Equal(t, model.StateIdle, f.registry.Snapshot(1).State.Kind)
		assert.Contains(t, f.chat.lastText(t), "no longer valid")
	})

	t.Run("out-of-range selection is stale", func(t *testing.T) {
		f := newFixture()
		searchAndShow(f, oneWayDetails, []model.FlightOption{{Price: 300, BookingToken: "b-0"}})

		f.callback(1, "flight_5_depart")

		assert.Equal(t, model.StateIdle, f.registry.Snapshot(1).State.Kind)
		assert.Contains(t, f.chat.lastText(t), "no longer valid")
	})

	t.Run("new search invalidates earlier buttons", func(t *testing.T) {
		f := newFixture()
		searchAndShow(f, roundTripDetails, []model.FlightOption{
			{Price: 300, BookingToken: "b-0"},
			{Price: 400, BookingToken: "b-1"},
		})

		f.flights.searchResults = []model.FlightOption{{Price: 100, BookingToken: "new-0"}}
		f.text(1, "/searchflight")
		f.text(1, oneWayDetails)

		f.callback(1, "flight_1_depart")

		assert.Empty(t, f.flights.bookingCalls)
		assert.Contains(t, f.chat.lastText(t), "no longer valid")
	})
}

func TestChecklistFlow(t *testing.T) {
	t.Run("show seeds defaults on first use", func(t *testing.T) {
		f := newFixture()
		f.text(1, "/checklist")
		f.callback(1, "show_checklist")

		list := f.repo.lists[1]
		require.NotNil(t, list)
		assert.Len(t, list.Items, 5)
		assert.Contains(t, f.chat.textAt(t, 1), "⬜ Documents")
	})

	t.Run("add item round trip", func(t *testing.T) {
		f := newFixture()
		f.text(1, "/checklist")
		f.callback(1, "show_checklist")
		f.callback(1, "add_item")

		assert.Equal(t, model.StateAwaitingItemAdd, f.registry.Snapshot(1).State.Kind)

		f.text(1, "Sunscreen")
		assert.True(t, f.repo.lists[1].Has("Sunscreen"))
		assert.Equal(t, model.StateAwaitingChecklistChoice, f.registry.Snapshot(1).State.Kind)
	})

	t.Run("delete item", func(t *testing.T) {
		f := newFixture()
		f.text(1, "/checklist")
		f.callback(1, "show_checklist")
		f.callback(1, "delete_item")
		f.text(1, "Tickets")

		assert.False(t, f.repo.lists[1].Has("Tickets"))
	})

	t.Run("status update via pick and confirm", func(t *testing.T) {
		f := newFixture()
		f.text(1, "/checklist")
		f.callback(1, "show_checklist")
		f.callback(1, "update_status")

		assert.Equal(t, model.StateAwaitingStatusPick, f.registry.Snapshot(1).State.Kind)

		f.callback(1, "pick_Tickets")
		s := f.registry.Snapshot(1)
		assert.Equal(t, model.StateAwaitingStatusConfirm, s.State.Kind)
		assert.Equal(t, "Tickets", s.State.ItemName)

		f.callback(1, "done")
		for _, item := range f.repo.lists[1].Items {
			if item.Name == "Tickets" {
				assert.Equal(t, model.ItemStatusDone, item.Status)
			}
		}
	})

	t.Run("confirm press outside confirm state is ignored", func(t *testing.T) {
		f := newFixture()
		f.callback(1, "done")
		assert.Contains(t, f.chat.lastText(t), "didn't catch")
	})

	t.Run("keep as is ends the flow", func(t *testing.T) {
		f := newFixture()
		f.text(1, "/checklist")
		f.callback(1, "show_checklist")
		f.callback(1, "keep_as_is")

		assert.Equal(t, model.StateIdle, f.registry.Snapshot(1).State.Kind)
	})

	t.Run("start new discards additions", func(t *testing.T) {
		f := newFixture()
		f.text(1, "/checklist")
		f.callback(1, "show_checklist")
		f.callback(1, "add_item")
		f.text(1, "Sunscreen")

		f.text(1, "/checklist")
		f.callback(1, "start_new_checklist")

		assert.False(t, f.repo.lists[1].Has("Sunscreen"))
		assert.Len(t, f.repo.lists[1].Items, 5)
	})
}

func TestRecommendationFlow(t *testing.T) {
	t.Run("destination is handed to the recommender", func(t *testing.T) {
		f := newFixture()
		f.text(1, "/recommendations")

		assert.Equal(t, model.StateAwaitingDestination, f.registry.Snapshot(1).State.Kind)

		f.text(1, "Lisbon")
		assert.Equal(t, []string{"Lisbon"}, f.recommender.calls)
		assert.Equal(t, model.StateIdle, f.registry.Snapshot(1).State.Kind)
	})

	t.Run("blank destination re-prompts", func(t *testing.T) {
		f := newFixture()
		f.text(1, "/recommendations")
		f.text(1, "   ")

		assert.Empty(t, f.recommender.calls)
		assert.Equal(t, model.StateAwaitingDestination, f.registry.Snapshot(1).State.Kind)
	})
}

type denyLimiter struct{}

func (denyLimiter) Allow(context.Context, int64) bool { return false }

func TestRateLimitedChatIsDropped(t *testing.T) {
	f := newFixture()
	f.handler.limiter = denyLimiter{}

	f.text(1, "/start")

	assert.Empty(t, f.chat.sent)
}

func TestUnknownInput(t *testing.T) {
	f := newFixture()
	f.text(1, "hello there")
	assert.Contains(t, f.chat.lastText(t), "didn't catch")

	f.callback(1, "bogus_data")
	assert.Contains(t, f.chat.lastText(t), "didn't catch")
}
