package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	apperrors "github.com/traveldesk/travelbot/internal/errors"
	"github.com/traveldesk/travelbot/internal/model"
)

// NoResult is the sentinel the airport-resolution prompt instructs the
// model to return when a location cannot be matched to any airport.
const NoResult = "NO_RESULT"

const airportInstruction = `Provide a comma-separated list of 3-letter IATA codes for the top airports ` +
	`in the given location. Return "NO_RESULT" if no results are found. If you got an airport code ` +
	`instead of a city or country, just return it. If you got a country instead of a city, provide ` +
	`codes of the top-3 airports in this country. Avoid any other words and symbols. ` +
	`Only IATA codes separated by comma.`

const recommendInstruction = `You write travel recommendations as Telegram messages. ` +
	`Format the response in HTML suitable for Telegram. AVOID USING MARKDOWN. ` +
	`Use only the following HTML tags: <b>, <i>, <a>. ` +
	`AVOID USING NEXT TAGS: br, html, head, title, body, div, span, img, table, ul, ol, li, p. ` +
	`The output should be a Telegram message, not a full HTML page. Please, use emoji.`

type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client, model: modelName}, nil
}

func (c *Client) generate(ctx context.Context, prompt, instruction string) (string, error) {
	result, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
	)
	if err != nil {
		return "", apperrors.Collaborator("gemini", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", apperrors.Collaborator("gemini", fmt.Errorf("empty response"))
	}
	return text, nil
}

// ResolveAirports maps free location text to IATA codes. The first code
// is used for searching; NoResult signals an unresolvable location.
func (c *Client) ResolveAirports(ctx context.Context, location string) (string, error) {
	text, err := c.generate(ctx, location, airportInstruction)
	if err != nil {
		return "", err
	}
	if strings.Contains(text, NoResult) {
		return NoResult, nil
	}
	return text, nil
}

// Recommend generates attraction and travel tips for a destination in
// the chat's locale.
func (c *Client) Recommend(ctx context.Context, destination string, lang model.Language) (string, error) {
	prompt := fmt.Sprintf(
		"Provide top attractions and travel tips for %s. Please, use this language (locale) - %s.",
		destination, lang,
	)
	return c.generate(ctx, prompt, recommendInstruction)
}
