package notus

import "context"

// PersistSignal is returned by handlers to decide the fate of a notification.
type PersistSignal int

const (
	// Dismiss removes the notification after the handler returns.
	Dismiss PersistSignal = iota
	// Persist keeps the notification on the surface.
	Persist
)

func (p PersistSignal) String() string {
	if p == Persist {
		return "persist"
	}
	return "dismiss"
}

// Handler reacts to a click on a notification control. id is the
// notification element id.
type Handler interface {
	Handle(ctx context.Context, id string) PersistSignal
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, id string) PersistSignal

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, id string) PersistSignal {
	return f(ctx, id)
}

// callable reports whether h can be invoked. A nil HandlerFunc stored in the
// interface is not callable.
func callable(h Handler) bool {
	if h == nil {
		return false
	}
	if f, ok := h.(HandlerFunc); ok && f == nil {
		return false
	}
	return true
}
