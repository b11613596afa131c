package events

import "testing"

type collector struct {
	got []Event
}

func (c *collector) HandleEvent(e Event) { c.got = append(c.got, e) }

func TestManagerDeliversInOrder(t *testing.T) {
	em := NewManager()
	first, second := &collector{}, &collector{}
	em.Subscribe(first)
	em.Subscribe(second)

	em.Publish(RoundStartEvent{Round: 2})
	em.Publish(TurnSkippedEvent{PlayerName: "Bob"})

	for i, c := range []*collector{first, second} {
		if len(c.got) != 2 {
			t.Fatalf("listener %d: expected 2 events, got %d", i, len(c.got))
		}
		if _, ok := c.got[0].(RoundStartEvent); !ok {
			t.Errorf("listener %d: expected RoundStartEvent first, got %T", i, c.got[0])
		}
		if ev, ok := c.got[1].(TurnSkippedEvent); !ok || ev.PlayerName != "Bob" {
			t.Errorf("listener %d: unexpected second event %+v", i, c.got[1])
		}
	}
}
