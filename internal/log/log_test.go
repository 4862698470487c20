package log

import (
	"strings"
	"testing"
)

func TestMemoryLoggerRecordsInOrder(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewTemplateChosenEvent(3))
	l.Log(NewSlotSkippedEvent(2, "Gem, cost = 4"))
	l.Log(NewDeckShuffledEvent(11))

	events := l.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, e := range events {
		if e.Seq != i+1 {
			t.Errorf("event %d has seq %d", i, e.Seq)
		}
	}
	if events[0].Type != EventTemplateChosen {
		t.Errorf("first event type %s", events[0].Type)
	}
}

func TestEventsOfType(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewSlotFilledEvent(1, "Gem, cost <= 3", "Amber (Base)"))
	l.Log(NewSlotSkippedEvent(2, "Gem, cost = 4"))
	l.Log(NewSlotFilledEvent(3, "Gem, any cost", "Opal (Base)"))

	filled := l.EventsOfType(EventSlotFilled)
	if len(filled) != 2 {
		t.Fatalf("expected 2 filled events, got %d", len(filled))
	}
	if filled[1].Card != "Opal (Base)" {
		t.Errorf("unexpected card %q", filled[1].Card)
	}
	if got := l.EventsOfType(EventAbilityUnmet); len(got) != 0 {
		t.Errorf("expected no unmet events, got %d", len(got))
	}
}

func TestLastEvent(t *testing.T) {
	l := NewMemoryLogger()
	if e := l.LastEvent(); e.Seq != 0 {
		t.Error("empty logger must report a zero event")
	}
	l.Log(NewTemplateChosenEvent(1))
	l.Log(NewAbilityUnmetEvent("Pulse token"))
	if e := l.LastEvent(); e.Type != EventAbilityUnmet {
		t.Errorf("got %v", e)
	}
}

func TestFormatEvent(t *testing.T) {
	e := NewAbilityReplacedEvent(4, "Draw card", "Dull Gem (Base)", "Bright Gem (Base)")
	s := FormatEvent(e)
	if !strings.Contains(s, "AbilityReplaced") {
		t.Errorf("formatted event missing type: %q", s)
	}
	if !strings.Contains(s, "Bright Gem (Base)") {
		t.Errorf("formatted event missing replacement card: %q", s)
	}
}

func TestEventTypeString(t *testing.T) {
	cases := map[EventType]string{
		EventTemplateChosen:   "TemplateChosen",
		EventSlotFilled:       "SlotFilled",
		EventSlotSkipped:      "SlotSkipped",
		EventAbilitySatisfied: "AbilitySatisfied",
		EventAbilityReplaced:  "AbilityReplaced",
		EventAbilityUnmet:     "AbilityUnmet",
		EventTierShort:        "TierShort",
		EventDeckShuffled:     "DeckShuffled",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("EventType %d: got %q, want %q", typ, got, want)
		}
	}
}
