package catalog

import (
	"errors"
	"fmt"
)

// ErrTemplateSetNotFound is returned when a template set id is outside 1-6.
var ErrTemplateSetNotFound = errors.New("template set not found")

// Store holds the full card catalog, the nemesis basic-card catalog,
// and the fixed slot-template library. It is populated once and never
// mutated, so it is safe for unsynchronized concurrent reads.
type Store struct {
	cards  []*Card
	basics []*NemesisCard
}

// NewStore builds a store over the given catalogs.
func NewStore(cards []*Card, basics []*NemesisCard) *Store {
	return &Store{cards: cards, basics: basics}
}

// Query selects cards matching every listed criterion.
type Query struct {
	Type    CardType
	Cost    CostConstraint
	Sets    SetFilter
	Ability Ability         // empty: no ability filter
	Exclude map[string]bool // card identities to skip
}

// Query returns every card matching all criteria. The result is empty,
// never an error, when nothing matches. Catalog order is preserved.
func (s *Store) Query(q Query) []*Card {
	var out []*Card
	for _, c := range s.cards {
		if c.Type != q.Type {
			continue
		}
		if !q.Cost.Matches(c.Cost) {
			continue
		}
		if !q.Sets.Includes(c.Set) {
			continue
		}
		if q.Ability != "" && !c.HasAbility(q.Ability) {
			continue
		}
		if q.Exclude[c.Identity()] {
			continue
		}
		out = append(out, c)
	}
	return out
}

// BasicCards returns the nemesis basic cards admitted by the filter.
func (s *Store) BasicCards(filter SetFilter) []*NemesisCard {
	var out []*NemesisCard
	for _, c := range s.basics {
		if filter.Includes(c.Set) {
			out = append(out, c)
		}
	}
	return out
}

// SlotTemplates returns the nine slots of a template set (1-6).
func (s *Store) SlotTemplates(id int) ([]SlotTemplate, error) {
	if id < 1 || id > TemplateSetCount {
		return nil, fmt.Errorf("template set %d: %w", id, ErrTemplateSetNotFound)
	}
	slots := make([]SlotTemplate, SupplySize)
	copy(slots, templateSets[id-1][:])
	return slots, nil
}

// Cards returns the full card catalog in load order.
func (s *Store) Cards() []*Card {
	return s.cards
}

// Sets returns the distinct card-set labels present in the catalogs,
// in first-seen order across cards then basics.
func (s *Store) Sets() []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range s.cards {
		if !seen[c.Set] {
			seen[c.Set] = true
			out = append(out, c.Set)
		}
	}
	for _, c := range s.basics {
		if !seen[c.Set] {
			seen[c.Set] = true
			out = append(out, c.Set)
		}
	}
	return out
}
