package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Action executes side effects during a transition. Returning an error prevents the transition.
type Action[S, E comparable] func(ctx context.Context, from, to S, event E) error

// Guard evaluates whether a transition should be allowed.
type Guard[S, E comparable] func(ctx context.Context, from S, event E) bool

// Observer is notified after a transition has been applied.
type Observer[S, E comparable] func(ctx context.Context, from, to S, event E)

// Transition defines a state change triggered by an event, with optional guards and actions.
type Transition[S, E comparable] struct {
	From    S
	To      S
	Event   E
	Guards  []Guard[S, E]  // All must pass for transition to proceed
	Actions []Action[S, E] // Executed in order before state change
}

// Machine is a thread-safe in-memory finite state machine.
// Transitions are stored as [from][event][]Transition for O(1) lookups.
type Machine[S, E comparable] struct {
	current     S
	transitions map[S]map[E][]Transition[S, E]
	observers   []Observer[S, E]
	mu          sync.RWMutex
}

func newMachine[S, E comparable](initial S) *Machine[S, E] {
	return &Machine[S, E]{
		current:     initial,
		transitions: make(map[S]map[E][]Transition[S, E]),
	}
}

// Current returns the current state.
func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the current state is one of states.
func (m *Machine[S, E]) Is(states ...S) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range states {
		if m.current == s {
			return true
		}
	}
	return false
}

// AddTransition registers a transition. Several transitions may share the same
// from/event pair; the first one whose guards pass wins.
func (m *Machine[S, E]) AddTransition(from, to S, event E, guards []Guard[S, E], actions []Action[S, E]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transitions[from]; !ok {
		m.transitions[from] = make(map[E][]Transition[S, E])
	}

	m.transitions[from][event] = append(m.transitions[from][event], Transition[S, E]{
		From:    from,
		To:      to,
		Event:   event,
		Guards:  guards,
		Actions: actions,
	})
}

// Fire applies event to the current state. Actions run while the machine is
// locked, so they must not fire events on the same machine.
func (m *Machine[S, E]) Fire(ctx context.Context, event E) error {
	m.mu.Lock()

	from := m.current
	candidates := m.transitions[from][event]
	if len(candidates) == 0 {
		m.mu.Unlock()
		return newTransitionError(from, event, ErrNoTransition)
	}

	t := m.selectLocked(ctx, candidates, event)
	if t == nil {
		m.mu.Unlock()
		return newTransitionError(from, event, ErrRejected)
	}

	for _, action := range t.Actions {
		if err := action(ctx, from, t.To, event); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.current = t.To
	observers := m.observers
	m.mu.Unlock()

	for _, o := range observers {
		o(ctx, from, t.To, event)
	}
	return nil
}

// CanFire reports whether event would be accepted in the current state.
func (m *Machine[S, E]) CanFire(ctx context.Context, event E) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	candidates := m.transitions[m.current][event]
	if len(candidates) == 0 {
		return false
	}
	return m.selectLocked(ctx, candidates, event) != nil
}

func (m *Machine[S, E]) selectLocked(ctx context.Context, candidates []Transition[S, E], event E) *Transition[S, E] {
	for i, t := range candidates {
		allGuardsPassed := true
		for _, guard := range t.Guards {
			if !guard(ctx, m.current, event) {
				allGuardsPassed = false
				break
			}
		}
		if allGuardsPassed {
			return &candidates[i]
		}
	}
	return nil
}
