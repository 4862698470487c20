package catalog

import "fmt"

// --- Enums ---

type CardType int

const (
	CardTypeGem CardType = iota
	CardTypeRelic
	CardTypeSpell
)

func (ct CardType) String() string {
	switch ct {
	case CardTypeGem:
		return "Gem"
	case CardTypeRelic:
		return "Relic"
	case CardTypeSpell:
		return "Spell"
	default:
		return "Unknown"
	}
}

// ParseCardType maps a catalog-file type label to a CardType.
func ParseCardType(s string) (CardType, error) {
	switch s {
	case "Gem":
		return CardTypeGem, nil
	case "Relic":
		return CardTypeRelic, nil
	case "Spell":
		return CardTypeSpell, nil
	default:
		return 0, fmt.Errorf("unknown card type %q", s)
	}
}

type NemesisType int

const (
	NemesisTypeAttack NemesisType = iota
	NemesisTypePower
	NemesisTypeMinion
)

func (nt NemesisType) String() string {
	switch nt {
	case NemesisTypeAttack:
		return "Attack"
	case NemesisTypePower:
		return "Power"
	case NemesisTypeMinion:
		return "Minion"
	default:
		return "Unknown"
	}
}

// ParseNemesisType maps a catalog-file type label to a NemesisType.
func ParseNemesisType(s string) (NemesisType, error) {
	switch s {
	case "Attack":
		return NemesisTypeAttack, nil
	case "Power":
		return NemesisTypePower, nil
	case "Minion":
		return NemesisTypeMinion, nil
	default:
		return 0, fmt.Errorf("unknown nemesis card type %q", s)
	}
}

// --- Abilities ---

// Ability identifies a named card effect (a column in the card list file).
type Ability string

const (
	AbilityDestroyCard       Ability = "destroy_card"
	AbilityDrawCard          Ability = "draw_card"
	AbilityFocusBreach       Ability = "focus_breach"
	AbilityGainCharge        Ability = "gain_charge"
	AbilityGainGraveholdLife Ability = "gain_gravehold_life"
	AbilityGainLife          Ability = "gain_life"
	AbilityMultipleDamage    Ability = "multiple_damage"
	AbilityPulseToken        Ability = "pulse_token"
	AbilitySilentToken       Ability = "silent_token"
)

// abilityOrder is the fixed presentation order for the closed ability set.
var abilityOrder = []Ability{
	AbilityDestroyCard,
	AbilityDrawCard,
	AbilityFocusBreach,
	AbilityGainCharge,
	AbilityGainGraveholdLife,
	AbilityGainLife,
	AbilityMultipleDamage,
	AbilityPulseToken,
	AbilitySilentToken,
}

// abilityLabels maps ability identifiers to display labels.
var abilityLabels = map[Ability]string{
	AbilityDestroyCard:       "Destroy a card",
	AbilityDrawCard:          "Draw cards",
	AbilityFocusBreach:       "Focus a breach",
	AbilityGainCharge:        "Gain charges",
	AbilityGainGraveholdLife: "Heal Gravehold",
	AbilityGainLife:          "Gain life",
	AbilityMultipleDamage:    "Damage multiple targets",
	AbilityPulseToken:        "Pulse tokens",
	AbilitySilentToken:       "Silence tokens",
}

// Abilities returns the closed ability set in presentation order.
func Abilities() []Ability {
	out := make([]Ability, len(abilityOrder))
	copy(out, abilityOrder)
	return out
}

// Label returns the display label for an ability, or the raw identifier
// if it is not part of the closed set.
func (a Ability) Label() string {
	if label, ok := abilityLabels[a]; ok {
		return label
	}
	return string(a)
}

// Valid reports whether the ability is part of the closed set.
func (a Ability) Valid() bool {
	_, ok := abilityLabels[a]
	return ok
}

// --- Card sets ---

// SetAll is the filter sentinel that matches every card set.
const SetAll = "all"

// knownSets lists all published card sets in release order.
var knownSets = []string{
	"Base",
	"The Depths",
	"The Nameless",
	"War Eternal",
	"The Void",
	"The Outer Dark",
	"Legacy",
	"Buried Secrets",
	"The New Age",
	"Outcasts",
}

// KnownSets returns the published card sets in release order.
func KnownSets() []string {
	out := make([]string, len(knownSets))
	copy(out, knownSets)
	return out
}

// SetFilter selects card sets by label. An empty filter, or one
// containing SetAll, matches every set.
type SetFilter []string

// Includes reports whether the filter admits the given card set.
func (f SetFilter) Includes(set string) bool {
	if len(f) == 0 {
		return true
	}
	for _, s := range f {
		if s == SetAll || s == set {
			return true
		}
	}
	return false
}

// --- Cost constraints ---

type CostOp int

const (
	CostAny CostOp = iota
	CostAtMost
	CostAtLeast
	CostExactly
	CostBetween
)

// CostConstraint restricts the cost of the card that may fill a slot.
// Lo carries the single threshold for AtMost/AtLeast/Exactly; Between
// uses both bounds inclusively.
type CostConstraint struct {
	Op CostOp
	Lo int
	Hi int
}

func AnyCost() CostConstraint           { return CostConstraint{Op: CostAny} }
func AtMost(n int) CostConstraint       { return CostConstraint{Op: CostAtMost, Lo: n} }
func AtLeast(n int) CostConstraint      { return CostConstraint{Op: CostAtLeast, Lo: n} }
func Exactly(n int) CostConstraint      { return CostConstraint{Op: CostExactly, Lo: n} }
func Between(lo, hi int) CostConstraint { return CostConstraint{Op: CostBetween, Lo: lo, Hi: hi} }

// Matches reports whether a card cost satisfies the constraint.
func (c CostConstraint) Matches(cost int) bool {
	switch c.Op {
	case CostAtMost:
		return cost <= c.Lo
	case CostAtLeast:
		return cost >= c.Lo
	case CostExactly:
		return cost == c.Lo
	case CostBetween:
		return c.Lo <= cost && cost <= c.Hi
	default:
		return true
	}
}

func (c CostConstraint) String() string {
	switch c.Op {
	case CostAtMost:
		return fmt.Sprintf("cost <= %d", c.Lo)
	case CostAtLeast:
		return fmt.Sprintf("cost >= %d", c.Lo)
	case CostExactly:
		return fmt.Sprintf("cost = %d", c.Lo)
	case CostBetween:
		return fmt.Sprintf("cost %d-%d", c.Lo, c.Hi)
	default:
		return "any cost"
	}
}
