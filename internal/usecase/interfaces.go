package usecase

// Notifier delivers best-effort notifications to a recipient. Implementations
// must not block the caller and must swallow delivery failures; a failed
// notification is only ever visible in the logs.
type Notifier interface {
	Notify(recipientID string, eventType string, payload interface{})
}
