package catalog

// SlotTemplate constrains one of the nine supply slots.
type SlotTemplate struct {
	Type CardType
	Cost CostConstraint
}

const (
	// TemplateSetCount is the number of published supply layouts.
	TemplateSetCount = 6
	// SupplySize is the number of slots in a full supply.
	SupplySize = 9
)

// templateSets holds the six published supply layouts. Index 0 is
// template set 1. Each layout lists gems, then relics, then spells,
// matching the printed market mats.
var templateSets = [TemplateSetCount][SupplySize]SlotTemplate{
	{
		{CardTypeGem, AtMost(3)},
		{CardTypeGem, Exactly(4)},
		{CardTypeGem, AnyCost()},
		{CardTypeRelic, AnyCost()},
		{CardTypeRelic, AnyCost()},
		{CardTypeSpell, AtMost(4)},
		{CardTypeSpell, AtMost(4)},
		{CardTypeSpell, AtLeast(6)},
		{CardTypeSpell, AtLeast(6)},
	},
	{
		{CardTypeGem, AtLeast(4)},
		{CardTypeGem, AtLeast(4)},
		{CardTypeGem, AtLeast(4)},
		{CardTypeRelic, AtLeast(5)},
		{CardTypeRelic, AnyCost()},
		{CardTypeSpell, AtMost(5)},
		{CardTypeSpell, AtMost(5)},
		{CardTypeSpell, AtMost(5)},
		{CardTypeSpell, AtLeast(7)},
	},
	{
		{CardTypeGem, AtMost(3)},
		{CardTypeGem, Between(4, 5)},
		{CardTypeGem, Between(4, 5)},
		{CardTypeRelic, AnyCost()},
		{CardTypeSpell, Exactly(3)},
		{CardTypeSpell, Exactly(4)},
		{CardTypeSpell, AtLeast(6)},
		{CardTypeSpell, AtLeast(6)},
		{CardTypeSpell, AtLeast(6)},
	},
	{
		{CardTypeGem, AtLeast(5)},
		{CardTypeGem, AnyCost()},
		{CardTypeGem, AnyCost()},
		{CardTypeRelic, AtMost(3)},
		{CardTypeRelic, AtLeast(5)},
		{CardTypeRelic, AnyCost()},
		{CardTypeSpell, AtMost(4)},
		{CardTypeSpell, AtLeast(6)},
		{CardTypeSpell, AnyCost()},
	},
	{
		{CardTypeGem, Exactly(2)},
		{CardTypeGem, Exactly(3)},
		{CardTypeGem, Exactly(4)},
		{CardTypeGem, Exactly(5)},
		{CardTypeRelic, AnyCost()},
		{CardTypeSpell, Exactly(4)},
		{CardTypeSpell, Exactly(5)},
		{CardTypeSpell, Exactly(6)},
		{CardTypeSpell, AtLeast(7)},
	},
	{
		{CardTypeGem, Exactly(3)},
		{CardTypeGem, Exactly(4)},
		{CardTypeRelic, AtMost(3)},
		{CardTypeRelic, AtLeast(5)},
		{CardTypeRelic, AnyCost()},
		{CardTypeSpell, Between(3, 4)},
		{CardTypeSpell, Between(5, 6)},
		{CardTypeSpell, Between(5, 6)},
		{CardTypeSpell, AtLeast(7)},
	},
}
