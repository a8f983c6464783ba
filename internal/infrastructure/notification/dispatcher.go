package notification

import (
	"context"
	"encoding/json"

	ws "dapurkita/internal/infrastructure/websocket"
	"dapurkita/pkg/logger"
)

// Event is the payload pushed to a recipient's notification channel.
type Event struct {
	RecipientID string      `json:"-"`
	Type        string      `json:"type"`
	Payload     interface{} `json:"payload,omitempty"`
}

// Dispatcher queues notification events and drains them to the WebSocket
// manager on a single worker. Enqueueing never blocks the caller: when the
// queue is full the event is dropped and logged.
type Dispatcher struct {
	wsManager *ws.Manager
	queue     chan Event
}

func NewDispatcher(wsManager *ws.Manager) *Dispatcher {
	return &Dispatcher{
		wsManager: wsManager,
		queue:     make(chan Event, 256),
	}
}

// Start runs the dispatcher's drain loop in a goroutine
func (d *Dispatcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case event := <-d.queue:
				data, err := json.Marshal(event)
				if err != nil {
					logger.Error("Failed to encode %s notification for user %s: %v", event.Type, event.RecipientID, err)
					continue
				}
				if !d.wsManager.SendToUser(event.RecipientID, data) {
					logger.Debug("Notification dropped: user %s not connected", event.RecipientID)
				}

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Notify implements usecase.Notifier.
func (d *Dispatcher) Notify(recipientID string, eventType string, payload interface{}) {
	select {
	case d.queue <- Event{RecipientID: recipientID, Type: eventType, Payload: payload}:
	default:
		logger.Warn("Notification queue full, dropping %s event for user %s", eventType, recipientID)
	}
}
