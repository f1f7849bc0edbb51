package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/traveldesk/travelbot/internal/errors"
	"github.com/traveldesk/travelbot/internal/flightapi"
	"github.com/traveldesk/travelbot/internal/i18n"
	"github.com/traveldesk/travelbot/internal/model"
	"github.com/traveldesk/travelbot/internal/service"
	"github.com/traveldesk/travelbot/internal/telegram"
)

func (h *Handler) startFlightSearch(ctx context.Context, s *model.Session) error {
	s.State = model.State(model.StateAwaitingFlightDetails)
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, "flight_search_details"),
	})
	return nil
}

// detailsWarning maps a validation failure to the re-prompt the user sees.
func detailsWarning(lang model.Language, err error) string {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		return i18n.T(lang, "provide_all_details_warning")
	}
	switch appErr.Code {
	case apperrors.ErrCodeDateParse:
		return i18n.T(lang, "correct_format_warning")
	case apperrors.ErrCodeInvalidRange:
		if appErr.Details == "return_date" {
			return i18n.T(lang, "arrival_date_warning")
		}
		return i18n.T(lang, "departure_date_warning")
	case apperrors.ErrCodeUnresolvedLocation:
		city := ""
		if details, ok := appErr.Details.(map[string]string); ok {
			city = details["city"]
		}
		return fmt.Sprintf("%s %s", i18n.T(lang, "airport_not_found_warning"), city)
	}
	return i18n.T(lang, "provide_all_details_warning")
}

func searchParams(req *model.SearchRequest, lang model.Language, departureToken string) flightapi.SearchParams {
	return flightapi.SearchParams{
		DepartureID:    req.DepartureID,
		ArrivalID:      req.ArrivalID,
		DepartureDate:  req.DepartureDate,
		ReturnDate:     req.ReturnDate,
		OneWay:         req.OneWay,
		DepartureToken: departureToken,
		Lang:           lang,
	}
}

// handleFlightDetails parses the free-text search, runs the outbound
// search and shows the candidate list. Validation failures re-prompt and
// leave the dialogue where it is.
func (h *Handler) handleFlightDetails(ctx context.Context, s *model.Session, text string) error {
	req, err := h.queries.Build(ctx, text)
	if err != nil {
		if apperrors.IsValidation(err) {
			h.send(ctx, s, telegram.SendMessageParams{
				ChatID: s.ChatID,
				Text:   detailsWarning(s.Language, err),
			})
			return nil
		}
		return h.failDialogue(ctx, s, err, "error_fetching_flights")
	}

	// A new search supersedes whatever results the chat had.
	s.Search = req
	s.Results = nil

	searching := i18n.T(s.Language, "searching_flights")
	if req.OneWay {
		searching = fmt.Sprintf("%s (%s)", searching, i18n.T(s.Language, "one_way"))
	}
	h.send(ctx, s, telegram.SendMessageParams{ChatID: s.ChatID, Text: searching + "..."})

	options, err := h.flights.Search(ctx, searchParams(req, s.Language, ""))
	if err != nil {
		return h.failDialogue(ctx, s, err, "error_fetching_flights")
	}

	return h.presentResults(ctx, s, options, model.LegRoleOutbound)
}

// presentResults ingests provider rows as the chat's new live result set
// and shows the numbered selection keyboard.
func (h *Handler) presentResults(ctx context.Context, s *model.Session, options []model.FlightOption, leg model.LegRole) error {
	rs := service.IngestResults(s.ChatID, leg, options)
	if len(rs.Candidates) == 0 {
		s.State = model.Idle()
		s.Results = nil
		h.send(ctx, s, telegram.SendMessageParams{
			ChatID: s.ChatID,
			Text:   i18n.T(s.Language, "flights_not_found"),
		})
		return nil
	}

	s.Results = rs
	s.State = model.State(model.StateResultsShown)

	buttons := make([]telegram.InlineKeyboardButton, 0, len(rs.Candidates))
	for i := range rs.Candidates {
		c := &rs.Candidates[i]
		buttons = append(buttons, telegram.InlineKeyboardButton{
			Text:         candidateLabel(c),
			CallbackData: fmt.Sprintf("flight_%d_%s", c.Index, leg),
		})
	}
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID:      s.ChatID,
		Text:        i18n.T(s.Language, "available_flights") + "\n" + i18n.T(s.Language, "number_of_stops"),
		ReplyMarkup: telegram.InlineRows(buttons...),
	})
	return nil
}

// handleFlightSelection resolves a button press against the live result
// set and routes by the leg it was pressed on and the search's one-way
// flag. A button minted for a leg the chat has already moved past is
// stale, even when its index would still resolve.
func (h *Handler) handleFlightSelection(ctx context.Context, s *model.Session, data string) error {
	parts := strings.Split(data, "_")
	if len(parts) != 3 {
		h.send(ctx, s, telegram.SendMessageParams{
			ChatID: s.ChatID,
			Text:   i18n.T(s.Language, "unknown_action"),
		})
		return nil
	}
	index, err := strconv.Atoi(parts[1])
	if err != nil {
		h.send(ctx, s, telegram.SendMessageParams{
			ChatID: s.ChatID,
			Text:   i18n.T(s.Language, "unknown_action"),
		})
		return nil
	}
	leg := model.LegRole(parts[2])
	if leg != model.LegRoleOutbound && leg != model.LegRoleReturn {
		h.send(ctx, s, telegram.SendMessageParams{
			ChatID: s.ChatID,
			Text:   i18n.T(s.Language, "unknown_action"),
		})
		return nil
	}

	candidate, err := service.ResolveSelection(s.Results, index, leg)
	if err != nil {
		return h.staleSelection(ctx, s, err)
	}
	if s.Search == nil {
		return h.staleSelection(ctx, s, apperrors.StaleSelection(index))
	}

	action, token, err := service.NextActionFor(candidate, leg, s.Search.OneWay)
	if err != nil {
		return h.failDialogue(ctx, s, err, "unexpected_error")
	}

	switch action {
	case model.NextActionSearchReturn:
		return h.searchReturnLeg(ctx, s, candidate, token)
	default:
		return h.fetchBooking(ctx, s, candidate, token)
	}
}

func (h *Handler) staleSelection(ctx context.Context, s *model.Session, err error) error {
	h.logger.Warn().Err(err).Int64("chat_id", s.ChatID).Msg("stale flight selection")
	s.State = model.Idle()
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, "stale_selection"),
	})
	return nil
}

func (h *Handler) searchReturnLeg(ctx context.Context, s *model.Session, candidate *model.FlightCandidate, token string) error {
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   formatCandidateDetail(s.Language, candidate),
	})
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, "searching_return") + "...",
	})

	options, err := h.flights.Search(ctx, searchParams(s.Search, s.Language, token))
	if err != nil {
		return h.failDialogue(ctx, s, err, "error_fetching_flights")
	}
	return h.presentResults(ctx, s, options, model.LegRoleReturn)
}

func (h *Handler) fetchBooking(ctx context.Context, s *model.Session, candidate *model.FlightCandidate, token string) error {
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, "searching_booking"),
	})

	detail, err := h.flights.FetchBooking(ctx, searchParams(s.Search, s.Language, ""), token)
	if err != nil {
		return h.failDialogue(ctx, s, err, "error_fetching_booking")
	}

	h.send(ctx, s, telegram.SendMessageParams{
		ChatID:    s.ChatID,
		Text:      formatBooking(s.Language, candidate, detail),
		ParseMode: "HTML",
	})

	// The flow is complete; drop the search context and its results.
	s.State = model.Idle()
	s.Search = nil
	s.Results = nil
	return nil
}
