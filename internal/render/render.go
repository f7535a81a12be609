// Package render turns cards and session results into display strings.
// Renderers are registered under a format key so the CLI can pick one at
// startup without the game code knowing about output formats.
package render

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"

	"higherlower/internal/game"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// ErrUnknownFormat is returned when no renderer is registered for a format.
var ErrUnknownFormat = errors.New("unknown render format")

// Renderer formats cards and turn results for display.
type Renderer interface {
	RenderCard(c game.Card) (string, error)
	RenderTurn(t *game.TurnResult) (string, error)
}

// TextRenderer prints plain English, the way the original console game did.
type TextRenderer struct{}

func (TextRenderer) RenderCard(c game.Card) (string, error) {
	return c.String(), nil
}

func (TextRenderer) RenderTurn(t *game.TurnResult) (string, error) {
	outcome := "Incorrect"
	if t.Correct {
		outcome = "Correct"
	}
	return fmt.Sprintf("The next card is %s. %s! You have %d points.", t.Drawn, outcome, t.Score), nil
}

// JSONRenderer emits one compact JSON object per value.
type JSONRenderer struct{}

func (JSONRenderer) RenderCard(c game.Card) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (JSONRenderer) RenderTurn(t *game.TurnResult) (string, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type xmlCard struct {
	XMLName xml.Name  `xml:"card"`
	Suit    game.Suit `xml:"suit"`
	Rank    game.Rank `xml:"rank"`
	Value   int       `xml:"value"`
}

type xmlTurn struct {
	XMLName xml.Name           `xml:"turn"`
	Guess   game.Guess         `xml:"guess"`
	Drawn   xmlCard            `xml:"card"`
	Correct bool               `xml:"correct"`
	Score   int                `xml:"score"`
	Status  game.SessionStatus `xml:"status"`
}

// XMLRenderer emits single-line XML elements.
type XMLRenderer struct{}

func (XMLRenderer) RenderCard(c game.Card) (string, error) {
	b, err := xml.Marshal(xmlCard{Suit: c.Suit, Rank: c.Rank, Value: c.Value})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (XMLRenderer) RenderTurn(t *game.TurnResult) (string, error) {
	b, err := xml.Marshal(xmlTurn{
		Guess:   t.Guess,
		Drawn:   xmlCard{Suit: t.Drawn.Suit, Rank: t.Drawn.Rank, Value: t.Drawn.Value},
		Correct: t.Correct,
		Score:   t.Score,
		Status:  t.Status,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Registry maps format keys to renderers.
type Registry struct {
	renderers map[Format]Renderer
}

// NewRegistry returns a registry with the text, json and xml renderers
// pre-registered.
func NewRegistry() *Registry {
	return &Registry{
		renderers: map[Format]Renderer{
			FormatText: TextRenderer{},
			FormatJSON: JSONRenderer{},
			FormatXML:  XMLRenderer{},
		},
	}
}

// Register adds or replaces the renderer for a format.
func (r *Registry) Register(format Format, renderer Renderer) {
	r.renderers[format] = renderer
}

// Renderer returns the renderer registered for the format.
func (r *Registry) Renderer(format Format) (Renderer, error) {
	renderer, ok := r.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return renderer, nil
}
