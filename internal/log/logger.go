package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging generation events.
type EventLogger interface {
	Log(event Event)
	Events() []Event
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []Event
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event Event) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []Event {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []Event {
	var result []Event
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() Event {
	if len(l.events) == 0 {
		return Event{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event Event) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e Event) string {
	return fmt.Sprintf("%-17s| %s", e.Type, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []Event) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewTemplateChosenEvent(setID int) Event {
	return Event{
		Type:    EventTemplateChosen,
		Details: fmt.Sprintf("using supply template set %d", setID),
	}
}

func NewSlotFilledEvent(slot int, constraint, card string) Event {
	return Event{
		Type:    EventSlotFilled,
		Slot:    slot,
		Card:    card,
		Details: fmt.Sprintf("slot %d (%s) ← %s", slot, constraint, card),
	}
}

func NewSlotSkippedEvent(slot int, constraint string) Event {
	return Event{
		Type:    EventSlotSkipped,
		Slot:    slot,
		Details: fmt.Sprintf("slot %d (%s) has no eligible cards, left unfilled", slot, constraint),
	}
}

func NewAbilitySatisfiedEvent(ability, card string) Event {
	return Event{
		Type:    EventAbilitySatisfied,
		Card:    card,
		Details: fmt.Sprintf("%q already satisfied by %s", ability, card),
	}
}

func NewAbilityReplacedEvent(slot int, ability, oldCard, newCard string) Event {
	return Event{
		Type:    EventAbilityReplaced,
		Slot:    slot,
		Card:    newCard,
		Details: fmt.Sprintf("slot %d: %s → %s for %q", slot, oldCard, newCard, ability),
	}
}

func NewAbilityUnmetEvent(ability string) Event {
	return Event{
		Type:    EventAbilityUnmet,
		Details: fmt.Sprintf("no slot can be replaced to provide %q", ability),
	}
}

func NewTierShortEvent(tier, want, got int) Event {
	return Event{
		Type:    EventTierShort,
		Slot:    tier,
		Details: fmt.Sprintf("tier %d pool exhausted: drew %d of %d", tier, got, want),
	}
}

func NewDeckShuffledEvent(count int) Event {
	return Event{
		Type:    EventDeckShuffled,
		Details: fmt.Sprintf("shuffled %d basic cards", count),
	}
}
