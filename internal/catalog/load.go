package catalog

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data
var defaultData embed.FS

// applicable is the literal marker a card-list ability column holds
// when the card has that ability. Any other value means it does not.
const applicable = "applicable"

// cardFile is the top-level card list YAML structure.
type cardFile struct {
	Cards []cardRecord `yaml:"cards"`
}

// cardRecord mirrors one card list row. The ability columns are fixed
// by the file schema.
type cardRecord struct {
	Name string `yaml:"name"`
	Set  string `yaml:"card_set"`
	Type string `yaml:"type"`
	Cost int    `yaml:"cost"`

	DestroyCard       string `yaml:"destroy_card"`
	DrawCard          string `yaml:"draw_card"`
	FocusBreach       string `yaml:"focus_breach"`
	GainCharge        string `yaml:"gain_charge"`
	GainGraveholdLife string `yaml:"gain_gravehold_life"`
	GainLife          string `yaml:"gain_life"`
	MultipleDamage    string `yaml:"multiple_damage"`
	PulseToken        string `yaml:"pulse_token"`
	SilentToken       string `yaml:"silent_token"`
}

func (r cardRecord) abilities() map[Ability]bool {
	cols := map[Ability]string{
		AbilityDestroyCard:       r.DestroyCard,
		AbilityDrawCard:          r.DrawCard,
		AbilityFocusBreach:       r.FocusBreach,
		AbilityGainCharge:        r.GainCharge,
		AbilityGainGraveholdLife: r.GainGraveholdLife,
		AbilityGainLife:          r.GainLife,
		AbilityMultipleDamage:    r.MultipleDamage,
		AbilityPulseToken:        r.PulseToken,
		AbilitySilentToken:       r.SilentToken,
	}
	abilities := make(map[Ability]bool, len(cols))
	for a, v := range cols {
		abilities[a] = v == applicable
	}
	return abilities
}

// basicFile is the top-level nemesis basic-card list YAML structure.
type basicFile struct {
	Cards []basicRecord `yaml:"cards"`
}

// basicRecord mirrors one nemesis basic-card row.
type basicRecord struct {
	Name string `yaml:"name"`
	Set  string `yaml:"card_set"`
	Type string `yaml:"type"`
	Tier int    `yaml:"tier"`
	HP   int    `yaml:"hp"`
}

// ParseCards parses a card list from YAML bytes.
func ParseCards(data []byte) ([]*Card, error) {
	var cf cardFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse card list YAML: %w", err)
	}

	cards := make([]*Card, 0, len(cf.Cards))
	for _, r := range cf.Cards {
		ct, err := ParseCardType(r.Type)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", r.Name, err)
		}
		if r.Cost < 0 {
			return nil, fmt.Errorf("card %q: negative cost %d", r.Name, r.Cost)
		}
		cards = append(cards, &Card{
			Name:      r.Name,
			Set:       r.Set,
			Type:      ct,
			Cost:      r.Cost,
			Abilities: r.abilities(),
		})
	}
	return cards, nil
}

// ParseBasicCards parses a nemesis basic-card list from YAML bytes.
func ParseBasicCards(data []byte) ([]*NemesisCard, error) {
	var bf basicFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parse basic card list YAML: %w", err)
	}

	cards := make([]*NemesisCard, 0, len(bf.Cards))
	for _, r := range bf.Cards {
		nt, err := ParseNemesisType(r.Type)
		if err != nil {
			return nil, fmt.Errorf("basic card %q: %w", r.Name, err)
		}
		if r.Tier < 1 || r.Tier > 3 {
			return nil, fmt.Errorf("basic card %q: tier %d out of range", r.Name, r.Tier)
		}
		cards = append(cards, &NemesisCard{
			Name: r.Name,
			Set:  r.Set,
			Type: nt,
			Tier: r.Tier,
			HP:   r.HP,
		})
	}
	return cards, nil
}

// LoadStore reads the two catalog files and builds a store.
func LoadStore(cardsPath, basicsPath string) (*Store, error) {
	cardData, err := os.ReadFile(cardsPath)
	if err != nil {
		return nil, err
	}
	cards, err := ParseCards(cardData)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cardsPath, err)
	}

	basicData, err := os.ReadFile(basicsPath)
	if err != nil {
		return nil, err
	}
	basics, err := ParseBasicCards(basicData)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", basicsPath, err)
	}

	return NewStore(cards, basics), nil
}

// DefaultStore builds a store from the embedded catalog data.
func DefaultStore() (*Store, error) {
	cardData, err := defaultData.ReadFile("data/cards.yaml")
	if err != nil {
		return nil, err
	}
	cards, err := ParseCards(cardData)
	if err != nil {
		return nil, err
	}

	basicData, err := defaultData.ReadFile("data/basics.yaml")
	if err != nil {
		return nil, err
	}
	basics, err := ParseBasicCards(basicData)
	if err != nil {
		return nil, err
	}

	return NewStore(cards, basics), nil
}
