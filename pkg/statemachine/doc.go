// Package statemachine provides a small, generic finite-state-machine.
//
// States and events are any comparable types, usually string-backed enums:
//
//	type phase string
//	type signal string
//
//	const (
//	    entering phase = "entering"
//	    visible  phase = "visible"
//	    settle   signal = "settle"
//	)
//
//	m := statemachine.New[phase, signal](entering,
//	    statemachine.WithTransition[phase, signal](entering, visible, settle),
//	)
//	_ = m.Fire(ctx, settle)
//
// # Guards and Actions
//
// Guards veto a transition. Actions run in order after all guards pass and
// before the state is updated; an action error aborts the transition. Actions
// execute under the machine lock, which makes "check state, then act" atomic
// for callers racing on the same machine (timer callbacks versus user clicks).
//
// Observers run after the state is updated and outside the lock.
//
// # Error Handling
//
//	if statemachine.IsNoTransitionAvailableError(err) { /* already terminal */ }
//	if statemachine.IsTransitionRejectedError(err)   { /* a guard said no */ }
//
// Firing an event that has no transition from the current state is not a
// panic, which lets terminal states absorb late events.
package statemachine
