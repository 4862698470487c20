package mcp

import (
	"breachforge/internal/catalog"
	genlog "breachforge/internal/log"
	"breachforge/internal/nemesis"
	"breachforge/internal/supply"
)

// JSON views returned by the tool handlers.

type cardResult struct {
	Name      string   `json:"name"`
	Set       string   `json:"set"`
	Type      string   `json:"type"`
	Cost      int      `json:"cost"`
	Abilities []string `json:"abilities,omitempty"`
}

type nemesisCardResult struct {
	Name string `json:"name"`
	Set  string `json:"set"`
	Type string `json:"type"`
	Tier int    `json:"tier"`
	HP   int    `json:"hp,omitempty"`
}

type abilityResult struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type catalogResult struct {
	Sets      []string        `json:"sets"`
	Abilities []abilityResult `json:"abilities"`
	Cards     []cardResult    `json:"cards"`
}

type supplyResult struct {
	TemplateSet int          `json:"template_set"`
	Cards       []cardResult `json:"cards"`
	Unfilled    int          `json:"unfilled"`
	Events      []string     `json:"events,omitempty"`
}

type deckResult struct {
	Players      int                 `json:"players"`
	Distribution map[string]int      `json:"distribution"`
	Cards        []nemesisCardResult `json:"cards"`
	Events       []string            `json:"events,omitempty"`
}

type historyResult struct {
	Supplies []supplyResult `json:"supplies"`
	Decks    []deckResult   `json:"decks"`
}

func cardResultView(c *catalog.Card) cardResult {
	v := cardResult{
		Name: c.Name,
		Set:  c.Set,
		Type: c.Type.String(),
		Cost: c.Cost,
	}
	for _, a := range c.AbilityList() {
		v.Abilities = append(v.Abilities, string(a))
	}
	return v
}

func supplyResultView(s *supply.Supply, events []genlog.Event) supplyResult {
	v := supplyResult{
		TemplateSet: s.TemplateSet,
		Unfilled:    catalog.SupplySize - len(s.Cards),
	}
	for _, c := range s.Cards {
		v.Cards = append(v.Cards, cardResultView(c))
	}
	for _, e := range events {
		v.Events = append(v.Events, genlog.FormatEvent(e))
	}
	return v
}

func deckResultView(d *nemesis.BasicDeck, players int, events []genlog.Event) deckResult {
	v := deckResult{
		Players: players,
		Distribution: map[string]int{
			"1": d.Distribution.Tier1,
			"2": d.Distribution.Tier2,
			"3": d.Distribution.Tier3,
		},
	}
	for _, c := range d.Cards {
		v.Cards = append(v.Cards, nemesisCardResult{
			Name: c.Name,
			Set:  c.Set,
			Type: c.Type.String(),
			Tier: c.Tier,
			HP:   c.HP,
		})
	}
	for _, e := range events {
		v.Events = append(v.Events, genlog.FormatEvent(e))
	}
	return v
}
