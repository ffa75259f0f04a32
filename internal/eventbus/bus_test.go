package eventbus

import (
	"testing"
)

func TestPublishFansOut(t *testing.T) {
	bus := New()
	_, a := bus.Subscribe(1)
	_, b := bus.Subscribe(1)

	bus.PublishNew(EventTypeTaskCreated, "t1", map[string]string{"title": "x"})

	for name, ch := range map[string]<-chan *Event{"a": a, "b": b} {
		select {
		case ev := <-ch:
			if ev.Type != EventTypeTaskCreated || ev.ResourceID != "t1" {
				t.Errorf("subscriber %s got %+v", name, ev)
			}
			if ev.ID == "" || ev.CreatedAt.IsZero() {
				t.Errorf("subscriber %s: event missing id or timestamp", name)
			}
		default:
			t.Errorf("subscriber %s received nothing", name)
		}
	}
}

func TestPublishDropsWhenBufferFull(t *testing.T) {
	bus := New()
	_, ch := bus.Subscribe(1)

	bus.PublishNew(EventTypeTaskCreated, "t1", nil)
	bus.PublishNew(EventTypeTaskUpdated, "t1", nil) // buffer full, dropped

	ev := <-ch
	if ev.Type != EventTypeTaskCreated {
		t.Fatalf("got %s, want %s", ev.Type, EventTypeTaskCreated)
	}
	select {
	case ev := <-ch:
		t.Fatalf("unexpected second event %+v", ev)
	default:
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	bus := New()
	id, ch := bus.Subscribe(1)
	bus.Unsubscribe(id)

	if _, open := <-ch; open {
		t.Fatal("channel still open after Unsubscribe")
	}
	// publishing after unsubscribe must not panic
	bus.PublishNew(EventTypeTaskDeleted, "t1", nil)
	bus.Unsubscribe(id) // repeat is a no-op
}
