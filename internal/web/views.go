package web

import (
	"breachforge/internal/catalog"
	"breachforge/internal/history"
	"breachforge/internal/log"
)

// CardView is the JSON representation of a player card.
type CardView struct {
	Name      string   `json:"name"`
	Set       string   `json:"set"`
	Type      string   `json:"type"`
	Cost      int      `json:"cost"`
	Abilities []string `json:"abilities,omitempty"`
}

// NemesisCardView is the JSON representation of a nemesis basic card.
type NemesisCardView struct {
	Name string `json:"name"`
	Set  string `json:"set"`
	Type string `json:"type"`
	Tier int    `json:"tier"`
	HP   int    `json:"hp,omitempty"`
}

// AbilityView pairs an ability identifier with its display label.
type AbilityView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// CatalogView is the JSON payload of GET /api/catalog.
type CatalogView struct {
	Sets      []string      `json:"sets"`
	Abilities []AbilityView `json:"abilities"`
	Cards     []CardView    `json:"cards"`
}

// EventView is the JSON representation of one generation event.
type EventView struct {
	Type    string `json:"type"`
	Details string `json:"details"`
}

// SupplyView is the JSON payload of POST /api/supply.
type SupplyView struct {
	ID          string      `json:"id"`
	TemplateSet int         `json:"templateSet"`
	Cards       []CardView  `json:"cards"`
	Unfilled    int         `json:"unfilled"`
	Events      []EventView `json:"events,omitempty"`
}

// DeckView is the JSON payload of POST /api/basic-deck.
type DeckView struct {
	ID           string            `json:"id"`
	Players      int               `json:"players"`
	Distribution map[string]int    `json:"distribution"`
	Cards        []NemesisCardView `json:"cards"`
	Events       []EventView       `json:"events,omitempty"`
}

// HistoryView is the JSON payload of GET /api/history.
type HistoryView struct {
	Supplies []SupplyView `json:"supplies"`
	Decks    []DeckView   `json:"decks"`
}

func cardView(c *catalog.Card) CardView {
	v := CardView{
		Name: c.Name,
		Set:  c.Set,
		Type: c.Type.String(),
		Cost: c.Cost,
	}
	for _, a := range c.AbilityList() {
		v.Abilities = append(v.Abilities, a.Label())
	}
	return v
}

func nemesisCardView(c *catalog.NemesisCard) NemesisCardView {
	return NemesisCardView{
		Name: c.Name,
		Set:  c.Set,
		Type: c.Type.String(),
		Tier: c.Tier,
		HP:   c.HP,
	}
}

func eventViews(events []log.Event) []EventView {
	out := make([]EventView, 0, len(events))
	for _, e := range events {
		out = append(out, EventView{Type: e.Type.String(), Details: e.Details})
	}
	return out
}

func supplyView(entry history.SupplyEntry, events []log.Event) SupplyView {
	v := SupplyView{
		ID:          entry.ID,
		TemplateSet: entry.Supply.TemplateSet,
		Unfilled:    catalog.SupplySize - len(entry.Supply.Cards),
		Events:      eventViews(events),
	}
	for _, c := range entry.Supply.Cards {
		v.Cards = append(v.Cards, cardView(c))
	}
	return v
}

func deckView(entry history.DeckEntry, events []log.Event) DeckView {
	dist := entry.Deck.Distribution
	v := DeckView{
		ID:      entry.ID,
		Players: entry.Players,
		Distribution: map[string]int{
			"1": dist.Tier1,
			"2": dist.Tier2,
			"3": dist.Tier3,
		},
		Events: eventViews(events),
	}
	for _, c := range entry.Deck.Cards {
		v.Cards = append(v.Cards, nemesisCardView(c))
	}
	return v
}
