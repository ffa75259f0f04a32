package pushnotification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Basantrajshakti/taskboard/internal/eventbus"
)

// Dispatcher forwards task lifecycle events to push subscribers.
type Dispatcher struct {
	eventBus *eventbus.Bus
	sender   *Sender
}

func NewDispatcher(eventBus *eventbus.Bus, sender *Sender) *Dispatcher {
	return &Dispatcher{
		eventBus: eventBus,
		sender:   sender,
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	subID, ch := d.eventBus.Subscribe(256)
	defer d.eventBus.Unsubscribe(subID)

	slog.Info("push notification dispatcher started")
	for {
		select {
		case <-ctx.Done():
			slog.Info("push notification dispatcher stopped")
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			d.handleEvent(ctx, event)
		}
	}
}

func (d *Dispatcher) handleEvent(ctx context.Context, event *eventbus.Event) {
	title := event.Metadata["title"]
	var body string
	switch event.Type {
	case eventbus.EventTypeTaskCreated:
		body = fmt.Sprintf("Task created: %s", title)
	case eventbus.EventTypeTaskUpdated:
		body = fmt.Sprintf("Task updated: %s", title)
	case eventbus.EventTypeTaskDeleted:
		body = fmt.Sprintf("Task deleted: %s", title)
	default:
		return
	}

	d.sender.SendToAll(ctx, &NotificationPayload{
		Title: "Taskboard",
		Body:  body,
		URL:   "/tasks",
		Tag:   event.ResourceID,
	})
}
