package engine

// Event notifies listeners in the order they were added. The game uses it for
// scene-saved notifications.
type Event struct {
	listeners []func()
}

// AddListener ignores nil callbacks.
func (e *Event) AddListener(fn func()) {
	if fn != nil {
		e.listeners = append(e.listeners, fn)
	}
}

func (e *Event) RemoveAllListeners() { e.listeners = nil }

func (e *Event) Invoke() {
	for _, fn := range e.listeners {
		fn()
	}
}

func (e *Event) ListenerCount() int { return len(e.listeners) }

// EventWithArg is Event with a payload, e.g. new controller tuning.
type EventWithArg[T any] struct {
	listeners []func(T)
}

func (e *EventWithArg[T]) AddListener(fn func(T)) {
	if fn != nil {
		e.listeners = append(e.listeners, fn)
	}
}

func (e *EventWithArg[T]) RemoveAllListeners() { e.listeners = nil }

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, fn := range e.listeners {
		fn(arg)
	}
}

func (e *EventWithArg[T]) ListenerCount() int { return len(e.listeners) }
