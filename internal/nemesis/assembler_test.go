package nemesis

import (
	"errors"
	"testing"

	"breachforge/internal/catalog"
	genlog "breachforge/internal/log"
	"breachforge/internal/rng"
)

func basic(name, set string, tier int) *catalog.NemesisCard {
	return &catalog.NemesisCard{Name: name, Set: set, Type: catalog.NemesisTypeAttack, Tier: tier}
}

func TestDistributionFor(t *testing.T) {
	cases := []struct {
		players int
		want    TierDistribution
	}{
		{1, TierDistribution{Tier1: 1, Tier2: 3, Tier3: 7}},
		{2, TierDistribution{Tier1: 3, Tier2: 5, Tier3: 7}},
		{3, TierDistribution{Tier1: 5, Tier2: 6, Tier3: 7}},
		{4, TierDistribution{Tier1: 8, Tier2: 7, Tier3: 7}},
	}
	for _, c := range cases {
		got, err := DistributionFor(c.players)
		if err != nil {
			t.Fatalf("players %d: %v", c.players, err)
		}
		if got != c.want {
			t.Errorf("players %d: got %+v, want %+v", c.players, got, c.want)
		}
		if got.Total() != got.Tier1+got.Tier2+got.Tier3 {
			t.Errorf("players %d: Total mismatch", c.players)
		}
	}
}

func TestGenerateRejectsUnsupportedPlayerCount(t *testing.T) {
	store, err := catalog.DefaultStore()
	if err != nil {
		t.Fatal(err)
	}
	a := NewAssembler(store, rng.New(1), nil)

	for _, players := range []int{0, 5, -1, 100} {
		_, err := a.Generate(nil, players)
		if !errors.Is(err, ErrUnsupportedPlayerCount) {
			t.Errorf("players %d: got %v, want ErrUnsupportedPlayerCount", players, err)
		}
	}
}

func TestGenerateTierCounts(t *testing.T) {
	store, err := catalog.DefaultStore()
	if err != nil {
		t.Fatal(err)
	}

	for players := 1; players <= 4; players++ {
		a := NewAssembler(store, rng.New(int64(players)), nil)
		deck, err := a.Generate(nil, players)
		if err != nil {
			t.Fatalf("players %d: %v", players, err)
		}

		dist, _ := DistributionFor(players)
		for tier := 1; tier <= 3; tier++ {
			if got, want := deck.TierCount(tier), dist.Count(tier); got != want {
				t.Errorf("players %d tier %d: got %d cards, want %d", players, tier, got, want)
			}
		}
		if len(deck.Cards) != dist.Total() {
			t.Errorf("players %d: deck size %d, want %d", players, len(deck.Cards), dist.Total())
		}
	}
}

func TestGenerateNoDuplicates(t *testing.T) {
	store, err := catalog.DefaultStore()
	if err != nil {
		t.Fatal(err)
	}

	for seed := int64(1); seed <= 10; seed++ {
		a := NewAssembler(store, rng.New(seed), nil)
		deck, err := a.Generate(nil, 4)
		if err != nil {
			t.Fatal(err)
		}
		seen := make(map[string]bool)
		for _, c := range deck.Cards {
			key := c.Name + "/" + c.Set
			if seen[key] {
				t.Fatalf("seed %d: duplicate basic card %s", seed, key)
			}
			seen[key] = true
		}
	}
}

func TestGenerateShortTierDegrades(t *testing.T) {
	// Two tier-3 cards against a rule asking for seven.
	store := catalog.NewStore(nil, []*catalog.NemesisCard{
		basic("Strike", "Base", 1),
		basic("Lash", "Base", 2),
		basic("Crush", "Base", 2),
		basic("Thrash", "Base", 2),
		basic("Ruin", "Base", 3),
		basic("Doom", "Base", 3),
	})

	logger := genlog.NewMemoryLogger()
	a := NewAssembler(store, rng.New(7), logger)

	deck, err := a.Generate(catalog.SetFilter{"Base"}, 1)
	if err != nil {
		t.Fatal(err)
	}

	if got := deck.TierCount(3); got != 2 {
		t.Errorf("expected the 2 available tier-3 cards, got %d", got)
	}
	if got := deck.TierCount(1); got != 1 {
		t.Errorf("tier 1: got %d cards, want 1", got)
	}
	if got := deck.TierCount(2); got != 3 {
		t.Errorf("tier 2: got %d cards, want 3", got)
	}

	short := logger.EventsOfType(genlog.EventTierShort)
	if len(short) != 1 {
		t.Fatalf("expected one TierShort event, got %d", len(short))
	}
	if short[0].Slot != 3 {
		t.Errorf("TierShort event reports tier %d, want 3", short[0].Slot)
	}

	if got := logger.EventsOfType(genlog.EventDeckShuffled); len(got) != 1 {
		t.Errorf("expected one DeckShuffled event, got %d", len(got))
	}
}

func TestGenerateSetFilter(t *testing.T) {
	store := catalog.NewStore(nil, []*catalog.NemesisCard{
		basic("Strike", "Base", 1),
		basic("Venom", "The Depths", 1),
		basic("Lash", "Base", 2),
		basic("Ruin", "Base", 3),
	})

	a := NewAssembler(store, rng.New(3), nil)
	deck, err := a.Generate(catalog.SetFilter{"Base"}, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range deck.Cards {
		if c.Set != "Base" {
			t.Errorf("card %s from set %s escaped the filter", c.Name, c.Set)
		}
	}
}
