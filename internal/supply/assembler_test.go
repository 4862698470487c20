package supply

import (
	"testing"

	"breachforge/internal/catalog"
	genlog "breachforge/internal/log"
	"breachforge/internal/rng"
)

func card(name, set string, ct catalog.CardType, cost int, abilities ...catalog.Ability) *catalog.Card {
	m := make(map[catalog.Ability]bool)
	for _, a := range abilities {
		m[a] = true
	}
	return &catalog.Card{Name: name, Set: set, Type: ct, Cost: cost, Abilities: m}
}

// identityList flattens a supply to card identities for comparison.
func identityList(s *Supply) []string {
	var out []string
	for _, c := range s.Cards {
		out = append(out, c.Identity())
	}
	return out
}

func equalIdentities(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGenerateSingleCandidateDeterministic(t *testing.T) {
	store := catalog.NewStore([]*catalog.Card{
		card("Flint", "Base", catalog.CardTypeGem, 3),
		card("Torrent", "Base", catalog.CardTypeSpell, 6),
	}, nil)

	// Scripted pick 0 selects template set 1, whose first slot wants a
	// gem costing at most 3.
	logger := genlog.NewMemoryLogger()
	a := NewAssembler(store, rng.NewScripted(0), logger)

	result, err := a.Generate(catalog.SetFilter{"Base"}, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if result.TemplateSet != 1 {
		t.Fatalf("expected template set 1, got %d", result.TemplateSet)
	}
	if len(result.Cards) != 2 {
		t.Fatalf("expected 2 cards (gem + one >=6 spell), got %d", len(result.Cards))
	}
	if result.Cards[0].Name != "Flint" {
		t.Errorf("slot 1 must deterministically take the only eligible gem, got %s", result.Cards[0].Name)
	}
	if result.Cards[1].Name != "Torrent" {
		t.Errorf("expected Torrent in the spell slot, got %s", result.Cards[1].Name)
	}

	if skipped := logger.EventsOfType(genlog.EventSlotSkipped); len(skipped) != 7 {
		t.Errorf("expected 7 skipped slots, got %d", len(skipped))
	}
}

func TestGenerateInvariants(t *testing.T) {
	store, err := catalog.DefaultStore()
	if err != nil {
		t.Fatal(err)
	}

	for seed := int64(1); seed <= 25; seed++ {
		logger := genlog.NewMemoryLogger()
		a := NewAssembler(store, rng.New(seed), logger)

		result, err := a.Generate(nil, nil)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		if result.TemplateSet < 1 || result.TemplateSet > catalog.TemplateSetCount {
			t.Fatalf("seed %d: template set %d out of range", seed, result.TemplateSet)
		}
		if len(result.Cards) > catalog.SupplySize {
			t.Fatalf("seed %d: %d cards exceeds supply size", seed, len(result.Cards))
		}

		// No two placed cards share an identity.
		seen := make(map[string]bool)
		for _, c := range result.Cards {
			if seen[c.Identity()] {
				t.Fatalf("seed %d: duplicate card %s", seed, c.Identity())
			}
			seen[c.Identity()] = true
		}

		// Every placed card satisfies its slot's constraint. The event
		// log carries the slot assignments; replacements overwrite.
		templates, err := store.SlotTemplates(result.TemplateSet)
		if err != nil {
			t.Fatal(err)
		}
		bySlot := make(map[int]string)
		for _, e := range logger.Events() {
			switch e.Type {
			case genlog.EventSlotFilled, genlog.EventAbilityReplaced:
				bySlot[e.Slot] = e.Card
			}
		}
		byIdentity := make(map[string]*catalog.Card)
		for _, c := range store.Cards() {
			byIdentity[c.Identity()] = c
		}
		for slot, id := range bySlot {
			c := byIdentity[id]
			if c == nil {
				t.Fatalf("seed %d: slot %d holds unknown card %s", seed, slot, id)
			}
			tmpl := templates[slot-1]
			if c.Type != tmpl.Type {
				t.Errorf("seed %d: slot %d card %s has type %s, want %s", seed, slot, id, c.Type, tmpl.Type)
			}
			if !tmpl.Cost.Matches(c.Cost) {
				t.Errorf("seed %d: slot %d card %s cost %d violates %s", seed, slot, id, c.Cost, tmpl.Cost)
			}
		}
		if len(bySlot) != len(result.Cards) {
			t.Errorf("seed %d: %d filled slots but %d cards returned", seed, len(bySlot), len(result.Cards))
		}
	}
}

func TestAbilityAlreadySatisfiedIsNoOp(t *testing.T) {
	cards := []*catalog.Card{
		card("Charged Amber", "Base", catalog.CardTypeGem, 3, catalog.AbilityGainCharge),
		card("Spare Amber", "Base", catalog.CardTypeGem, 3, catalog.AbilityGainCharge),
		card("Torrent", "Base", catalog.CardTypeSpell, 6),
	}
	store := catalog.NewStore(cards, nil)

	gen := func(abilities []catalog.Ability) (*Supply, *genlog.MemoryLogger) {
		logger := genlog.NewMemoryLogger()
		a := NewAssembler(store, rng.NewScripted(0), logger)
		s, err := a.Generate(nil, abilities)
		if err != nil {
			t.Fatal(err)
		}
		return s, logger
	}

	base, _ := gen(nil)
	withAbility, logger := gen([]catalog.Ability{catalog.AbilityGainCharge})

	if !equalIdentities(identityList(base), identityList(withAbility)) {
		t.Errorf("satisfied ability must not change the supply: %v vs %v",
			identityList(base), identityList(withAbility))
	}
	if got := logger.EventsOfType(genlog.EventAbilitySatisfied); len(got) != 1 {
		t.Errorf("expected one AbilitySatisfied event, got %d", len(got))
	}
	if got := logger.EventsOfType(genlog.EventAbilityReplaced); len(got) != 0 {
		t.Errorf("expected no replacement, got %d", len(got))
	}
}

func TestAbilityUnsatisfiableLeavesSupplyUnchanged(t *testing.T) {
	cards := []*catalog.Card{
		card("Flint", "Base", catalog.CardTypeGem, 3),
		card("Torrent", "Base", catalog.CardTypeSpell, 6),
	}
	store := catalog.NewStore(cards, nil)

	gen := func(abilities []catalog.Ability) (*Supply, *genlog.MemoryLogger) {
		logger := genlog.NewMemoryLogger()
		a := NewAssembler(store, rng.NewScripted(0), logger)
		s, err := a.Generate(nil, abilities)
		if err != nil {
			t.Fatal(err)
		}
		return s, logger
	}

	base, _ := gen(nil)
	withAbility, logger := gen([]catalog.Ability{catalog.AbilityPulseToken})

	if !equalIdentities(identityList(base), identityList(withAbility)) {
		t.Errorf("unmet ability must not change the supply: %v vs %v",
			identityList(base), identityList(withAbility))
	}
	if got := logger.EventsOfType(genlog.EventAbilityUnmet); len(got) != 1 {
		t.Errorf("expected one AbilityUnmet event, got %d", len(got))
	}
}

func TestAbilityReplacementOverwritesEligibleSlot(t *testing.T) {
	// Template set 1 has gem slots at 1 (cost <= 3) and 3 (any cost).
	// The scripted picks steer the base fill to the dull and third gems,
	// leaving the bright gem as the only source of draw_card.
	cards := []*catalog.Card{
		card("Dull Gem", "Base", catalog.CardTypeGem, 3),
		card("Bright Gem", "Base", catalog.CardTypeGem, 3, catalog.AbilityDrawCard),
		card("Third Gem", "Base", catalog.CardTypeGem, 3),
	}
	store := catalog.NewStore(cards, nil)

	// Picks: template set 1, Dull Gem for slot 1, Third Gem for slot 3,
	// then slot 1 as the replacement target and Bright Gem into it.
	logger := genlog.NewMemoryLogger()
	a := NewAssembler(store, rng.NewScripted(0, 0, 1, 0, 0), logger)

	result, err := a.Generate(nil, []catalog.Ability{catalog.AbilityDrawCard})
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, c := range result.Cards {
		if c.Name == "Bright Gem" {
			found = true
		}
		if c.Name == "Dull Gem" {
			t.Error("replaced-out card still present in supply")
		}
	}
	if !found {
		t.Error("requested ability card missing from supply")
	}
	if got := logger.EventsOfType(genlog.EventAbilityReplaced); len(got) != 1 {
		t.Errorf("expected one AbilityReplaced event, got %d", len(got))
	}
}
