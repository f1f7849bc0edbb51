package handler

import (
	"fmt"
	"strings"

	"github.com/traveldesk/travelbot/internal/flightapi"
	"github.com/traveldesk/travelbot/internal/i18n"
	"github.com/traveldesk/travelbot/internal/model"
)

func formatDuration(lang model.Language, minutes int) string {
	return fmt.Sprintf("%d %s", minutes, i18n.T(lang, "mins"))
}

// candidateLabel is the one-line summary shown on a selection button.
func candidateLabel(c *model.FlightCandidate) string {
	opt := c.Option
	label := fmt.Sprintf("%s - %s 🛫 %s | $%d",
		opt.DepartureCode(), opt.ArrivalCode(), opt.DepartureTime(), opt.Price)
	if stops := opt.Stops(); stops > 0 {
		label += fmt.Sprintf(" (%d)", stops)
	}
	return label
}

// formatCandidateDetail renders the full itinerary of one selection.
func formatCandidateDetail(lang model.Language, c *model.FlightCandidate) string {
	var b strings.Builder
	opt := c.Option

	fmt.Fprintf(&b, "%s: %s\n", i18n.T(lang, "total_duration"), formatDuration(lang, opt.TotalDuration))
	fmt.Fprintf(&b, "%s: %d\n", i18n.T(lang, "price"), opt.Price)

	b.WriteString("\n")
	b.WriteString(i18n.T(lang, "flights"))
	b.WriteString(":\n")
	for _, seg := range opt.Segments {
		fmt.Fprintf(&b, "%s %s (%s)\n", seg.Airline, seg.FlightNumber, seg.TravelClass)
		fmt.Fprintf(&b, "  %s: %s %s %s\n", i18n.T(lang, "from"), seg.DepartureAirport.Name, i18n.T(lang, "on"), seg.DepartureAirport.Time)
		fmt.Fprintf(&b, "  %s: %s %s %s\n", i18n.T(lang, "to"), seg.ArrivalAirport.Name, i18n.T(lang, "on"), seg.ArrivalAirport.Time)
		fmt.Fprintf(&b, "  %s: %s", i18n.T(lang, "duration"), formatDuration(lang, seg.Duration))
		if seg.Legroom != "" {
			fmt.Fprintf(&b, " | %s: %s", i18n.T(lang, "legroom"), seg.Legroom)
		}
		if seg.Overnight {
			fmt.Fprintf(&b, " | %s", i18n.T(lang, "overnight"))
		}
		b.WriteString("\n")
	}

	if len(opt.Layovers) > 0 {
		b.WriteString("\n")
		b.WriteString(i18n.T(lang, "layovers"))
		b.WriteString(":\n")
		for _, l := range opt.Layovers {
			fmt.Fprintf(&b, "%s (%s): %s\n", l.Name, l.Code, formatDuration(lang, l.Duration))
		}
	}
	return b.String()
}

// formatBooking renders the terminal booking message in Telegram HTML.
func formatBooking(lang model.Language, c *model.FlightCandidate, detail *flightapi.BookingDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n\n", i18n.T(lang, "booking_details"))
	b.WriteString(formatCandidateDetail(lang, c))
	b.WriteString("\n")

	if detail.SummaryLink != "" {
		fmt.Fprintf(&b, "<a href=\"%s\">%s</a>\n", detail.SummaryLink, i18n.T(lang, "booking_details"))
	} else {
		b.WriteString(i18n.T(lang, "no_booking_link"))
		b.WriteString("\n")
	}

	for _, opt := range detail.Options {
		if opt.Together == nil {
			continue
		}
		fmt.Fprintf(&b, "%s: %d", opt.Together.BookWith, opt.Together.Price)
		if opt.Together.BookingLink != "" {
			fmt.Fprintf(&b, " (<a href=\"%s\">link</a>)", opt.Together.BookingLink)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatChecklist renders the item list with status marks.
func formatChecklist(lang model.Language, list *model.Checklist) string {
	var b strings.Builder
	b.WriteString(i18n.T(lang, "checklist"))
	b.WriteString("\n")
	for _, item := range list.Items {
		mark := "⬜"
		if item.Status == model.ItemStatusDone {
			mark = "✅"
		}
		fmt.Fprintf(&b, "%s %s\n", mark, item.Name)
	}
	return b.String()
}
