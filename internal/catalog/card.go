package catalog

import "fmt"

// Card is one player-card record from the card list. Immutable after load.
type Card struct {
	Name      string
	Set       string
	Type      CardType
	Cost      int
	Abilities map[Ability]bool
}

// Identity returns the display string that identifies a card for
// exclusion purposes. Two printings of the same card in different sets
// are distinct identities.
func (c *Card) Identity() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Set)
}

func (c *Card) String() string {
	return c.Identity()
}

// HasAbility reports whether the card carries the given ability.
func (c *Card) HasAbility(a Ability) bool {
	return c.Abilities[a]
}

// AbilityList returns the card's abilities in presentation order.
func (c *Card) AbilityList() []Ability {
	var out []Ability
	for _, a := range abilityOrder {
		if c.Abilities[a] {
			out = append(out, a)
		}
	}
	return out
}

// NemesisCard is one nemesis basic-card record. HP is 0 for cards
// without hit points (only minions have them). Immutable after load.
type NemesisCard struct {
	Name string
	Set  string
	Type NemesisType
	Tier int
	HP   int
}

func (c *NemesisCard) String() string {
	if c.Type == NemesisTypeMinion && c.HP > 0 {
		return fmt.Sprintf("%s (HP %d)", c.Name, c.HP)
	}
	return c.Name
}
