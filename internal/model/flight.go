package model

import "time"

// ProviderTimeLayout is the timestamp format used by the flight-search
// provider for segment times.
const ProviderTimeLayout = "2006-01-02 15:04"

// SearchRequest is a validated, normalized flight search.
type SearchRequest struct {
	DepartureCity string
	ArrivalCity   string
	DepartureID   string
	ArrivalID     string
	DepartureDate time.Time
	ReturnDate    *time.Time
	OneWay        bool
}

// Airport is one endpoint of a flight segment as reported by the provider.
type Airport struct {
	Name string `json:"name"`
	Code string `json:"id"`
	Time string `json:"time"`
}

type FlightSegment struct {
	DepartureAirport Airport  `json:"departure_airport"`
	ArrivalAirport   Airport  `json:"arrival_airport"`
	Duration         int      `json:"duration"`
	Airline          string   `json:"airline"`
	FlightNumber     string   `json:"flight_number"`
	TravelClass      string   `json:"travel_class"`
	Legroom          string   `json:"legroom"`
	Extensions       []string `json:"extensions"`
	Overnight        bool     `json:"overnight"`
	OftenDelayed     bool     `json:"often_delayed_by_over_30_min"`
}

type Layover struct {
	Name      string `json:"name"`
	Code      string `json:"id"`
	Duration  int    `json:"duration"`
	Overnight bool   `json:"overnight"`
}

// FlightOption is one raw candidate row from the provider.
type FlightOption struct {
	Segments       []FlightSegment `json:"flights"`
	Layovers       []Layover       `json:"layovers"`
	Price          int             `json:"price"`
	TotalDuration  int             `json:"total_duration"`
	DepartureToken string          `json:"departure_token"`
	BookingToken   string          `json:"booking_token"`
}

// Stops is the number of intermediate landings.
func (o *FlightOption) Stops() int {
	if len(o.Segments) == 0 {
		return 0
	}
	return len(o.Segments) - 1
}

func (o *FlightOption) DepartureCode() string {
	if len(o.Segments) == 0 {
		return ""
	}
	return o.Segments[0].DepartureAirport.Code
}

func (o *FlightOption) ArrivalCode() string {
	if len(o.Segments) == 0 {
		return ""
	}
	return o.Segments[len(o.Segments)-1].ArrivalAirport.Code
}

func (o *FlightOption) DepartureTime() string {
	if len(o.Segments) == 0 {
		return ""
	}
	return o.Segments[0].DepartureAirport.Time
}

// FlightCandidate is one ingested result row with its continuation token
// classified and a stable index assigned.
type FlightCandidate struct {
	Index  int
	Option FlightOption
	Token  string
	Kind   TokenKind
}

// ResultSet is the ordered, indexed set of candidates currently valid for
// selection by one chat. Exactly one is alive per chat at a time. Leg
// records which leg the set was produced for, so a button minted for an
// earlier leg cannot resolve against it.
type ResultSet struct {
	ChatID     int64
	Leg        LegRole
	Candidates []FlightCandidate
	CreatedAt  time.Time
}

// Get returns the candidate at index, or false when the index does not
// match this result set.
func (rs *ResultSet) Get(index int) (*FlightCandidate, bool) {
	if rs == nil || index < 0 || index >= len(rs.Candidates) {
		return nil, false
	}
	return &rs.Candidates[index], true
}
