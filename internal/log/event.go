package log

// EventType enumerates all observable generation events.
type EventType int

const (
	EventTemplateChosen EventType = iota
	EventSlotFilled
	EventSlotSkipped
	EventAbilitySatisfied
	EventAbilityReplaced
	EventAbilityUnmet
	EventTierShort
	EventDeckShuffled
)

func (e EventType) String() string {
	switch e {
	case EventTemplateChosen:
		return "TemplateChosen"
	case EventSlotFilled:
		return "SlotFilled"
	case EventSlotSkipped:
		return "SlotSkipped"
	case EventAbilitySatisfied:
		return "AbilitySatisfied"
	case EventAbilityReplaced:
		return "AbilityReplaced"
	case EventAbilityUnmet:
		return "AbilityUnmet"
	case EventTierShort:
		return "TierShort"
	case EventDeckShuffled:
		return "DeckShuffled"
	default:
		return "Unknown"
	}
}

// Event represents a single observable event during a generation.
// Soft degradations (SlotSkipped, AbilityUnmet, TierShort) surface
// only here; they never abort a generation.
type Event struct {
	Seq     int       // monotonic sequence number
	Type    EventType // event type
	Slot    int       // 1-based supply slot, or tier for deck events (0 if n/a)
	Card    string    // card identity (if applicable)
	Details string    // human-readable detail string
}
