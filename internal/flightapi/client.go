package flightapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/traveldesk/travelbot/internal/config"
	apperrors "github.com/traveldesk/travelbot/internal/errors"
	"github.com/traveldesk/travelbot/internal/model"
)

const dateLayout = "2006-01-02"

// Client queries the google_flights engine of the search provider.
type Client struct {
	baseURL  string
	apiKey   string
	country  string
	currency string
	http     *http.Client
}

func NewClient(baseURL, apiKey, country, currency string) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		country:  country,
		currency: currency,
		http:     &http.Client{Timeout: config.FlightSearchTimeout},
	}
}

type SearchParams struct {
	DepartureID   string
	ArrivalID     string
	DepartureDate time.Time
	ReturnDate    *time.Time
	OneWay        bool
	// DepartureToken continues a round-trip search into the return leg.
	DepartureToken string
	Lang           model.Language
}

type searchResponse struct {
	Error          string               `json:"error"`
	BestFlights    []model.FlightOption `json:"best_flights"`
	OtherFlights   []model.FlightOption `json:"other_flights"`
	SearchMetadata struct {
		PrettifyHTMLFile string `json:"prettify_html_file"`
	} `json:"search_metadata"`
	BookingOptions []BookingOption `json:"booking_options"`
}

type BookingOption struct {
	Together *BookingSegment `json:"together,omitempty"`
}

type BookingSegment struct {
	BookWith    string `json:"book_with"`
	Price       int    `json:"price"`
	BookingLink string `json:"booking_request_url,omitempty"`
}

func (c *Client) query(p SearchParams) url.Values {
	q := url.Values{}
	q.Set("engine", "google_flights")
	if p.OneWay {
		q.Set("type", "2")
	} else {
		q.Set("type", "1")
	}
	q.Set("hl", string(p.Lang))
	q.Set("gl", c.country)
	q.Set("currency", c.currency)
	q.Set("departure_id", p.DepartureID)
	q.Set("arrival_id", p.ArrivalID)
	q.Set("outbound_date", p.DepartureDate.Format(dateLayout))
	if !p.OneWay && p.ReturnDate != nil {
		q.Set("return_date", p.ReturnDate.Format(dateLayout))
	}
	q.Set("api_key", c.apiKey)
	return q
}

func (c *Client) get(ctx context.Context, q url.Values) (*searchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search.json?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.Collaborator("flight search", err)
	}
	defer resp.Body.Close()

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, apperrors.Collaborator("flight search", fmt.Errorf("decode response: %w", err))
	}
	if parsed.Error != "" {
		return nil, apperrors.Collaborator("flight search", fmt.Errorf("provider error: %s", parsed.Error))
	}
	return &parsed, nil
}

// Search returns candidate rows, best-ranked results first, then
// alternates, preserving the provider's order.
func (c *Client) Search(ctx context.Context, p SearchParams) ([]model.FlightOption, error) {
	q := c.query(p)
	if p.DepartureToken != "" {
		q.Set("departure_token", p.DepartureToken)
	}

	parsed, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}

	options := make([]model.FlightOption, 0, len(parsed.BestFlights)+len(parsed.OtherFlights))
	options = append(options, parsed.BestFlights...)
	options = append(options, parsed.OtherFlights...)
	return options, nil
}

// BookingDetail is the terminal fare/booking information for one
// selected candidate.
type BookingDetail struct {
	// SummaryLink points at the provider's rendered booking page.
	SummaryLink string
	Options     []BookingOption
}

// FetchBooking resolves a booking token into fare detail.
func (c *Client) FetchBooking(ctx context.Context, p SearchParams, bookingToken string) (*BookingDetail, error) {
	q := c.query(p)
	q.Set("booking_token", bookingToken)

	parsed, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}

	return &BookingDetail{
		SummaryLink: parsed.SearchMetadata.PrettifyHTMLFile,
		Options:     parsed.BookingOptions,
	}, nil
}
