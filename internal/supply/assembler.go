// Package supply assembles randomized 9-card supplies from the catalog,
// honoring the slot constraints of one of the six published template sets.
package supply

import (
	"fmt"

	"breachforge/internal/catalog"
	"breachforge/internal/log"
	"breachforge/internal/rng"
)

// Supply is a generated card pool. Cards holds fewer than nine entries
// when some slot had no eligible card; that is a reported degradation,
// not an error.
type Supply struct {
	Cards       []*catalog.Card
	TemplateSet int
}

// Assembler generates supplies. Safe for concurrent use only if the
// rng.Source is; the default time-seeded source is not shared.
type Assembler struct {
	store  *catalog.Store
	rng    rng.Source
	logger log.EventLogger
}

// NewAssembler wires an assembler. A nil src falls back to a
// time-seeded source; a nil logger discards events into memory.
func NewAssembler(store *catalog.Store, src rng.Source, logger log.EventLogger) *Assembler {
	if src == nil {
		src = rng.NewTime()
	}
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &Assembler{store: store, rng: src, logger: logger}
}

// Generate picks a template set uniformly at random, fills its slots in
// order under the card-set filter, then best-effort replaces cards so
// that each requested ability appears in the supply.
//
// Abilities are satisfied in caller order, independently: a replacement
// for an earlier ability changes the exclusion set seen by later ones.
// An ability nobody can provide is logged and silently unmet.
func (a *Assembler) Generate(filter catalog.SetFilter, abilities []catalog.Ability) (*Supply, error) {
	setID := a.rng.Intn(catalog.TemplateSetCount) + 1
	templates, err := a.store.SlotTemplates(setID)
	if err != nil {
		return nil, err
	}
	a.logger.Log(log.NewTemplateChosenEvent(setID))

	// slots aligns with templates; nil marks an unfilled slot.
	slots := make([]*catalog.Card, len(templates))

	a.baseFill(slots, templates, filter)

	for _, ability := range abilities {
		a.satisfyAbility(slots, templates, filter, ability)
	}

	result := &Supply{TemplateSet: setID}
	for _, c := range slots {
		if c != nil {
			result.Cards = append(result.Cards, c)
		}
	}
	return result, nil
}

// baseFill fills each slot in order, excluding cards already placed.
// The exclusion set grows as slots fill, so earlier placements shape
// which duplicates later slots avoid.
func (a *Assembler) baseFill(slots []*catalog.Card, templates []catalog.SlotTemplate, filter catalog.SetFilter) {
	for i, tmpl := range templates {
		candidates := a.store.Query(catalog.Query{
			Type:    tmpl.Type,
			Cost:    tmpl.Cost,
			Sets:    filter,
			Exclude: identities(slots),
		})
		if len(candidates) == 0 {
			a.logger.Log(log.NewSlotSkippedEvent(i+1, slotLabel(tmpl)))
			continue
		}
		slots[i] = candidates[a.rng.Intn(len(candidates))]
		a.logger.Log(log.NewSlotFilledEvent(i+1, slotLabel(tmpl), slots[i].Identity()))
	}
}

// satisfyAbility ensures one placed card carries the ability, replacing
// a random eligible slot's card if necessary. Unfilled slots are never
// replacement targets, even when a card with the ability would fit.
func (a *Assembler) satisfyAbility(slots []*catalog.Card, templates []catalog.SlotTemplate, filter catalog.SetFilter, ability catalog.Ability) {
	for _, c := range slots {
		if c != nil && c.HasAbility(ability) {
			a.logger.Log(log.NewAbilitySatisfiedEvent(ability.Label(), c.Identity()))
			return
		}
	}

	exclude := identities(slots)

	// Collect the filled slots that admit a replacement, with their
	// candidate lists, in template order.
	var eligibleSlots []int
	var candidateLists [][]*catalog.Card
	for i, tmpl := range templates {
		if slots[i] == nil {
			continue
		}
		candidates := a.store.Query(catalog.Query{
			Type:    tmpl.Type,
			Cost:    tmpl.Cost,
			Sets:    filter,
			Ability: ability,
			Exclude: exclude,
		})
		if len(candidates) > 0 {
			eligibleSlots = append(eligibleSlots, i)
			candidateLists = append(candidateLists, candidates)
		}
	}

	if len(eligibleSlots) == 0 {
		a.logger.Log(log.NewAbilityUnmetEvent(ability.Label()))
		return
	}

	pick := a.rng.Intn(len(eligibleSlots))
	slot := eligibleSlots[pick]
	candidates := candidateLists[pick]
	replacement := candidates[a.rng.Intn(len(candidates))]

	old := slots[slot]
	slots[slot] = replacement
	a.logger.Log(log.NewAbilityReplacedEvent(slot+1, ability.Label(), old.Identity(), replacement.Identity()))
}

// identities returns the exclusion set for the currently placed cards.
func identities(slots []*catalog.Card) map[string]bool {
	out := make(map[string]bool)
	for _, c := range slots {
		if c != nil {
			out[c.Identity()] = true
		}
	}
	return out
}

func slotLabel(t catalog.SlotTemplate) string {
	return fmt.Sprintf("%s, %s", t.Type, t.Cost)
}
