package notus

import "time"

// Handlers maps handler names used by Partial to implementations.
type Handlers map[string]Handler

// PartialAction is the serializable form of an Action. Handler names an
// entry of Handlers.
type PartialAction struct {
	Text    string `json:"text" yaml:"text"`
	Handler string `json:"actionHandler,omitempty" yaml:"actionHandler,omitempty"`
}

// PartialAnimationClass is the serializable form of AnimationClasses.
type PartialAnimationClass struct {
	Fixed string `json:"fixed" yaml:"fixed"`
	Entry string `json:"entry" yaml:"entry"`
	Exit  string `json:"exit" yaml:"exit"`
}

// Partial is a configuration decoded from JSON, YAML or form signals.
// Nil fields keep the notifier defaults. Durations are milliseconds.
type Partial struct {
	Type              *string                `json:"notusType,omitempty" yaml:"notusType,omitempty"`
	Position          *string                `json:"notusPosition,omitempty" yaml:"notusPosition,omitempty"`
	AlertType         *string                `json:"alertType,omitempty" yaml:"alertType,omitempty"`
	Title             *string                `json:"title,omitempty" yaml:"title,omitempty"`
	Message           *string                `json:"message,omitempty" yaml:"message,omitempty"`
	HTMLString        *bool                  `json:"htmlString,omitempty" yaml:"htmlString,omitempty"`
	Closable          *bool                  `json:"closable,omitempty" yaml:"closable,omitempty"`
	CloseHandler      string                 `json:"closeHandler,omitempty" yaml:"closeHandler,omitempty"`
	AutoClose         *bool                  `json:"autoClose,omitempty" yaml:"autoClose,omitempty"`
	AutoCloseDuration *int64                 `json:"autoCloseDuration,omitempty" yaml:"autoCloseDuration,omitempty"`
	Animate           *bool                  `json:"animate,omitempty" yaml:"animate,omitempty"`
	AnimationType     *string                `json:"animationType,omitempty" yaml:"animationType,omitempty"`
	AnimationDuration *int64                 `json:"animationDuration,omitempty" yaml:"animationDuration,omitempty"`
	AnimationFunction *string                `json:"animationFunction,omitempty" yaml:"animationFunction,omitempty"`
	AnimationClass    *PartialAnimationClass `json:"animationClass,omitempty" yaml:"animationClass,omitempty"`
	ThemeClass        *string                `json:"themeClass,omitempty" yaml:"themeClass,omitempty"`
	Actionable        *bool                  `json:"actionable,omitempty" yaml:"actionable,omitempty"`
	PrimaryAction     *PartialAction         `json:"primaryAction,omitempty" yaml:"primaryAction,omitempty"`
	SecondaryAction   *PartialAction         `json:"secondaryAction,omitempty" yaml:"secondaryAction,omitempty"`
}

// Options converts p into typed options. Enum values are parsed leniently
// and rejected with a *ConfigError. A close handler name missing from h is a
// *ConfigError; a missing action handler name leaves the action without a
// handler, which Send reports as a *HandlerError.
func (p Partial) Options(h Handlers) ([]Option, error) {
	var opts []Option

	if p.Type != nil {
		k, err := ParseKind(*p.Type)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithKind(k))
	}
	if p.Position != nil {
		pos, err := ParsePosition(*p.Position)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithPosition(pos))
	}
	if p.AlertType != nil {
		s, err := ParseSeverity(*p.AlertType)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSeverity(s))
	}
	if p.AnimationType != nil {
		a, err := ParseAnimationStyle(*p.AnimationType)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithAnimationStyle(a))
	}
	if p.CloseHandler != "" {
		ch, ok := h[p.CloseHandler]
		if !ok {
			return nil, newConfigError(RuleCloseHandler, "close handler", p.CloseHandler, "no handler registered under this name")
		}
		opts = append(opts, WithCloseHandler(ch))
	}

	if p.Title != nil {
		opts = append(opts, WithTitle(*p.Title))
	}
	if p.Message != nil {
		opts = append(opts, WithMessage(*p.Message))
	}
	if p.HTMLString != nil {
		opts = append(opts, WithHTML(*p.HTMLString))
	}
	if p.Closable != nil {
		opts = append(opts, WithClosable(*p.Closable))
	}
	if p.AutoClose != nil {
		opts = append(opts, WithAutoClose(*p.AutoClose))
	}
	if p.AutoCloseDuration != nil {
		opts = append(opts, WithAutoCloseDelay(millis(*p.AutoCloseDuration)))
	}
	if p.Animate != nil {
		opts = append(opts, WithAnimation(*p.Animate))
	}
	if p.AnimationDuration != nil {
		opts = append(opts, WithAnimationDuration(millis(*p.AnimationDuration)))
	}
	if p.AnimationFunction != nil {
		opts = append(opts, WithTimingFunction(*p.AnimationFunction))
	}
	if c := p.AnimationClass; c != nil {
		opts = append(opts, WithAnimationClasses(c.Fixed, c.Entry, c.Exit))
	}
	if p.ThemeClass != nil {
		opts = append(opts, WithThemeClass(*p.ThemeClass))
	}
	if p.Actionable != nil {
		opts = append(opts, WithActionable(*p.Actionable))
	}
	if a := p.PrimaryAction; a != nil {
		opts = append(opts, WithPrimaryAction(a.Text, h[a.Handler]))
	}
	if a := p.SecondaryAction; a != nil {
		opts = append(opts, WithSecondaryAction(a.Text, h[a.Handler]))
	}
	return opts, nil
}

// Merge returns p with every field set in over replacing its own.
func (p Partial) Merge(over Partial) Partial {
	out := p
	pick(&out.Type, over.Type)
	pick(&out.Position, over.Position)
	pick(&out.AlertType, over.AlertType)
	pick(&out.Title, over.Title)
	pick(&out.Message, over.Message)
	pick(&out.HTMLString, over.HTMLString)
	pick(&out.Closable, over.Closable)
	pick(&out.AutoClose, over.AutoClose)
	pick(&out.AutoCloseDuration, over.AutoCloseDuration)
	pick(&out.Animate, over.Animate)
	pick(&out.AnimationType, over.AnimationType)
	pick(&out.AnimationDuration, over.AnimationDuration)
	pick(&out.AnimationFunction, over.AnimationFunction)
	pick(&out.AnimationClass, over.AnimationClass)
	pick(&out.ThemeClass, over.ThemeClass)
	pick(&out.Actionable, over.Actionable)
	pick(&out.PrimaryAction, over.PrimaryAction)
	pick(&out.SecondaryAction, over.SecondaryAction)
	if over.CloseHandler != "" {
		out.CloseHandler = over.CloseHandler
	}
	return out
}

func pick[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

func millis(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
