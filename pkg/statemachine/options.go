package statemachine

// Option configures a state machine during construction.
type Option[S, E comparable] func(*Machine[S, E])

// TransitionOption configures a single transition with guards and actions.
type TransitionOption[S, E comparable] func(*transitionConfig[S, E])

type transitionConfig[S, E comparable] struct {
	guards  []Guard[S, E]
	actions []Action[S, E]
}

// New creates a state machine with the given initial state and options.
func New[S, E comparable](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m := newMachine[S, E](initial)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithTransition adds a single transition.
func WithTransition[S, E comparable](from, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		cfg := &transitionConfig[S, E]{}
		for _, opt := range opts {
			opt(cfg)
		}
		m.AddTransition(from, to, event, cfg.guards, cfg.actions)
	}
}

// WithTransitionsFrom adds the same event-driven transition for every state in froms.
func WithTransitionsFrom[S, E comparable](froms []S, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		for _, from := range froms {
			WithTransition(from, to, event, opts...)(m)
		}
	}
}

// WithObserver registers a callback invoked after every applied transition.
// Observers run outside the machine lock.
func WithObserver[S, E comparable](o Observer[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		if o != nil {
			m.observers = append(m.observers, o)
		}
	}
}

// WithGuard adds a guard to a transition.
func WithGuard[S, E comparable](guard Guard[S, E]) TransitionOption[S, E] {
	return func(cfg *transitionConfig[S, E]) {
		if guard != nil {
			cfg.guards = append(cfg.guards, guard)
		}
	}
}

// WithAction adds an action to a transition.
func WithAction[S, E comparable](action Action[S, E]) TransitionOption[S, E] {
	return func(cfg *transitionConfig[S, E]) {
		if action != nil {
			cfg.actions = append(cfg.actions, action)
		}
	}
}

// WithActions adds multiple actions to a transition.
func WithActions[S, E comparable](actions ...Action[S, E]) TransitionOption[S, E] {
	return func(cfg *transitionConfig[S, E]) {
		for _, action := range actions {
			if action != nil {
				cfg.actions = append(cfg.actions, action)
			}
		}
	}
}
