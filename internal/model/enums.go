package model

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHebrew  Language = "he"
	LanguageRussian Language = "ru"
	LanguageArabic  Language = "ar"
)

// DefaultLanguage applies when a chat has not picked a locale yet.
const DefaultLanguage = LanguageEnglish

func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageHebrew, LanguageRussian, LanguageArabic:
		return true
	}
	return false
}

// TokenKind classifies a candidate's continuation token. It is fixed once
// at ingestion from the provider's fields, never re-derived from token
// contents.
type TokenKind string

const (
	// TokenKindDepartureLeg continues a round-trip search into the
	// return leg.
	TokenKindDepartureLeg TokenKind = "departure_leg"
	// TokenKindBooking is terminal and fetches fare/booking detail.
	TokenKindBooking TokenKind = "booking"
)

// LegRole says which leg of the trip a selection was made on.
type LegRole string

const (
	LegRoleOutbound LegRole = "depart"
	LegRoleReturn   LegRole = "return"
)

// NextAction is what a flight selection routes to.
type NextAction string

const (
	NextActionSearchReturn NextAction = "search_return"
	NextActionFetchBooking NextAction = "fetch_booking"
)

type ItemStatus string

const (
	ItemStatusDone    ItemStatus = "done"
	ItemStatusPending ItemStatus = "pending"
)

type OutboundStatus string

const (
	OutboundStatusSent   OutboundStatus = "sent"
	OutboundStatusFailed OutboundStatus = "failed"
)
