// Package nemesis assembles the shuffled nemesis basic-card deck sized
// by player count.
package nemesis

import (
	"errors"
	"fmt"

	"breachforge/internal/catalog"
	"breachforge/internal/log"
	"breachforge/internal/rng"
)

// ErrUnsupportedPlayerCount is returned for player counts outside 1-4.
var ErrUnsupportedPlayerCount = errors.New("unsupported player count")

// TierDistribution is the required basic-card count per tier.
type TierDistribution struct {
	Tier1 int
	Tier2 int
	Tier3 int
}

// Count returns the required count for a tier (1-3).
func (d TierDistribution) Count(tier int) int {
	switch tier {
	case 1:
		return d.Tier1
	case 2:
		return d.Tier2
	case 3:
		return d.Tier3
	default:
		return 0
	}
}

// Total returns the full deck size under this distribution.
func (d TierDistribution) Total() int {
	return d.Tier1 + d.Tier2 + d.Tier3
}

// distributions is the fixed player-count scaling table.
var distributions = map[int]TierDistribution{
	1: {Tier1: 1, Tier2: 3, Tier3: 7},
	2: {Tier1: 3, Tier2: 5, Tier3: 7},
	3: {Tier1: 5, Tier2: 6, Tier3: 7},
	4: {Tier1: 8, Tier2: 7, Tier3: 7},
}

// DistributionFor returns the tier distribution for a player count.
func DistributionFor(players int) (TierDistribution, error) {
	d, ok := distributions[players]
	if !ok {
		return TierDistribution{}, fmt.Errorf("%w: %d", ErrUnsupportedPlayerCount, players)
	}
	return d, nil
}

// BasicDeck is a generated, shuffled basic-card deck. Distribution is
// the rule that was applied, not the counts achieved: under pool
// exhaustion a tier contributes fewer cards than the rule asks for.
type BasicDeck struct {
	Cards        []*catalog.NemesisCard
	Distribution TierDistribution
}

// TierCount returns how many cards of the given tier the deck holds.
func (d *BasicDeck) TierCount(tier int) int {
	n := 0
	for _, c := range d.Cards {
		if c.Tier == tier {
			n++
		}
	}
	return n
}

// Assembler generates basic decks.
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

// Generate draws the tiered basic deck for the given player count and
// card-set filter, then shuffles it. The player count is validated
// before any draw. A tier whose filtered pool runs out contributes
// fewer cards; the deck is simply shorter and the shortfall is logged.
func (a *Assembler) Generate(filter catalog.SetFilter, players int) (*BasicDeck, error) {
	dist, err := DistributionFor(players)
	if err != nil {
		return nil, err
	}

	pool := a.store.BasicCards(filter)

	var deck []*catalog.NemesisCard
	for tier := 1; tier <= 3; tier++ {
		deck = append(deck, a.drawTier(pool, tier, dist.Count(tier))...)
	}

	a.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	a.logger.Log(log.NewDeckShuffledEvent(len(deck)))

	return &BasicDeck{Cards: deck, Distribution: dist}, nil
}

// drawTier picks count cards of one tier uniformly without replacement.
func (a *Assembler) drawTier(pool []*catalog.NemesisCard, tier, count int) []*catalog.NemesisCard {
	var tierPool []*catalog.NemesisCard
	for _, c := range pool {
		if c.Tier == tier {
			tierPool = append(tierPool, c)
		}
	}

	var drawn []*catalog.NemesisCard
	for len(drawn) < count && len(tierPool) > 0 {
		i := a.rng.Intn(len(tierPool))
		drawn = append(drawn, tierPool[i])
		tierPool = append(tierPool[:i], tierPool[i+1:]...)
	}

	if len(drawn) < count {
		a.logger.Log(log.NewTierShortEvent(tier, count, len(drawn)))
	}
	return drawn
}
