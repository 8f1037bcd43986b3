package engine

// Event is a multi-cast callback list. GameObject.OnDestroy is one.
type Event struct {
	listeners []func()
}

// AddListener adds a callback to be invoked when the event fires
func (e *Event) AddListener(callback func()) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

// Invoke calls all registered listeners. Listeners added during Invoke run
// on the next call.
func (e *Event) Invoke() {
	listeners := e.listeners
	for _, listener := range listeners {
		if listener != nil {
			listener()
		}
	}
}

// EventWithArg is a generic event with one argument, such as the object a
// scene just destroyed.
type EventWithArg[T any] struct {
	listeners []func(T)
}

func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *EventWithArg[T]) Invoke(arg T) {
	listeners := e.listeners
	for _, listener := range listeners {
		if listener != nil {
			listener(arg)
		}
	}
}
