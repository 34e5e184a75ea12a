package notus

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is wrapped by every *ConfigError.
	ErrConfig = errors.New("notus: invalid configuration")
	// ErrHandler is wrapped by every *HandlerError.
	ErrHandler = errors.New("notus: action handler unavailable")
	// ErrNotFound is returned for ids the runtime does not track.
	ErrNotFound = errors.New("notus: notification not found")
	// ErrPresetNotFound is returned for unknown preset names.
	ErrPresetNotFound = errors.New("notus: preset not found")
)

// Rule names the validation rule a configuration violated.
type Rule string

const (
	RuleKind              Rule = "kind"
	RulePosition          Rule = "position"
	RuleSeverity          Rule = "severity"
	RuleAnimationStyle    Rule = "animation_style"
	RuleMessage           Rule = "message"
	RulePositionForKind   Rule = "position_for_kind"
	RuleCloseHandler      Rule = "close_handler"
	RuleActions           Rule = "actions"
	RuleAutoCloseDelay    Rule = "auto_close_delay"
	RuleAnimationDuration Rule = "animation_duration"
	RuleAnimationClasses  Rule = "animation_classes"
)

// ConfigError reports a rejected configuration. Nothing is rendered when
// Send returns one.
type ConfigError struct {
	Rule   Rule
	Field  string
	Value  string
	Reason string
}

func newConfigError(rule Rule, field, value, reason string) *ConfigError {
	return &ConfigError{Rule: rule, Field: field, Value: value, Reason: reason}
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("notus: invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("notus: invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

// HandlerError reports an action that was declared without a callable
// handler. The action control is left unbound; the notification is shown.
type HandlerError struct {
	ID     string
	Action string
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("notus: %s action of %s has no callable handler", e.Action, e.ID)
}

func (e *HandlerError) Unwrap() error { return ErrHandler }

// IsConfigError reports whether err is or wraps a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsHandlerError reports whether err is or wraps a *HandlerError.
func IsHandlerError(err error) bool {
	var he *HandlerError
	return errors.As(err, &he)
}
