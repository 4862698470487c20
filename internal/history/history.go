// Package history keeps a bounded, most-recent-first record of the
// generations performed in a session.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"breachforge/internal/catalog"
	"breachforge/internal/nemesis"
	"breachforge/internal/supply"
)

const (
	// MaxSupplies is how many supply results are retained.
	MaxSupplies = 10
	// MaxDecks is how many basic-deck results are retained.
	MaxDecks = 5
)

// SupplyEntry is one recorded supply generation.
type SupplyEntry struct {
	ID        string
	At        time.Time
	Sets      catalog.SetFilter
	Abilities []catalog.Ability
	Supply    *supply.Supply
}

// DeckEntry is one recorded basic-deck generation.
type DeckEntry struct {
	ID      string
	At      time.Time
	Sets    catalog.SetFilter
	Players int
	Deck    *nemesis.BasicDeck
}

// History is safe for concurrent use.
type History struct {
	mu       sync.Mutex
	supplies []SupplyEntry
	decks    []DeckEntry
}

func New() *History {
	return &History{}
}

// AddSupply records a supply generation at the front of the list,
// evicting the oldest entry past capacity.
func (h *History) AddSupply(sets catalog.SetFilter, abilities []catalog.Ability, s *supply.Supply) SupplyEntry {
	entry := SupplyEntry{
		ID:        uuid.NewString(),
		At:        time.Now(),
		Sets:      sets,
		Abilities: abilities,
		Supply:    s,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.supplies = append([]SupplyEntry{entry}, h.supplies...)
	if len(h.supplies) > MaxSupplies {
		h.supplies = h.supplies[:MaxSupplies]
	}
	return entry
}

// AddDeck records a basic-deck generation at the front of the list,
// evicting the oldest entry past capacity.
func (h *History) AddDeck(sets catalog.SetFilter, players int, d *nemesis.BasicDeck) DeckEntry {
	entry := DeckEntry{
		ID:      uuid.NewString(),
		At:      time.Now(),
		Sets:    sets,
		Players: players,
		Deck:    d,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.decks = append([]DeckEntry{entry}, h.decks...)
	if len(h.decks) > MaxDecks {
		h.decks = h.decks[:MaxDecks]
	}
	return entry
}

// Supplies returns the recorded supplies, most recent first.
func (h *History) Supplies() []SupplyEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]SupplyEntry, len(h.supplies))
	copy(out, h.supplies)
	return out
}

// Decks returns the recorded basic decks, most recent first.
func (h *History) Decks() []DeckEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]DeckEntry, len(h.decks))
	copy(out, h.decks)
	return out
}
