package model

import "time"

// StateKind identifies the current step of a chat's dialogue.
type StateKind string

const (
	StateIdle                  StateKind = "idle"
	StateAwaitingFlightDetails StateKind = "awaiting_flight_details"
	StateResultsShown          StateKind = "results_shown"

	StateAwaitingChecklistChoice StateKind = "awaiting_checklist_choice"
	StateAwaitingItemAdd         StateKind = "awaiting_item_add"
	StateAwaitingItemDelete      StateKind = "awaiting_item_delete"
	StateAwaitingStatusPick      StateKind = "awaiting_status_pick"
	StateAwaitingStatusConfirm   StateKind = "awaiting_status_confirm"

	StateAwaitingDestination StateKind = "awaiting_destination"
)

// DialogueState is a tagged variant: a kind plus exactly the payload that
// kind needs. Replacing the whole value is the only way to change state,
// so a leftover payload can never outlive its state.
type DialogueState struct {
	Kind StateKind
	// ItemName is set only for StateAwaitingStatusConfirm.
	ItemName string
}

func Idle() DialogueState {
	return DialogueState{Kind: StateIdle}
}

func State(kind StateKind) DialogueState {
	return DialogueState{Kind: kind}
}

func AwaitingStatusConfirm(itemName string) DialogueState {
	return DialogueState{Kind: StateAwaitingStatusConfirm, ItemName: itemName}
}

// Session is the per-chat dialogue record. Created lazily on first
// interaction and mutated by every handler that advances the dialogue.
type Session struct {
	ChatID   int64
	State    DialogueState
	Language Language
	// Search is the chat's active search context; overwritten by each
	// new search.
	Search *SearchRequest
	// Results is the only result set alive for the chat. A new search
	// replaces it, invalidating earlier selection indices.
	Results  *ResultSet
	LastSeen time.Time
}
