package notus

import "time"

// Action is a labelled control rendered in the actions block.
type Action struct {
	Text    string
	Handler Handler
}

func (a *Action) wellFormed() bool {
	return a != nil && a.Text != ""
}

func (a *Action) clone() *Action {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

// AnimationClasses are the author supplied classes of a custom animation.
type AnimationClasses struct {
	Fixed string
	Entry string
	Exit  string
}

// Config is the complete description of one notification.
type Config struct {
	Kind     Kind
	Position Position
	Severity Severity

	Title   string
	Message string
	// AllowHTML inserts title, message and action texts unescaped.
	AllowHTML bool

	Closable     bool
	CloseHandler Handler

	AutoClose      bool
	AutoCloseDelay time.Duration

	Animated                bool
	AnimationStyle          AnimationStyle
	AnimationDuration       time.Duration
	AnimationTimingFunction string
	AnimationClasses        AnimationClasses

	Actionable      bool
	PrimaryAction   *Action
	SecondaryAction *Action

	ThemeClass string

	hasMessage bool
}

// HasMessage reports whether a message was supplied. The empty string counts.
func (c Config) HasMessage() bool { return c.hasMessage }

func (c Config) clone() Config {
	c.PrimaryAction = c.PrimaryAction.clone()
	c.SecondaryAction = c.SecondaryAction.clone()
	return c
}

// DefaultConfig returns the library defaults.
func DefaultConfig() Config {
	return Config{
		Kind:                    KindPopup,
		Position:                PositionTopRight,
		Severity:                SeverityNone,
		Closable:                true,
		AutoClose:               true,
		AutoCloseDelay:          3 * time.Second,
		Animated:                true,
		AnimationStyle:          AnimationSlide,
		AnimationDuration:       300 * time.Millisecond,
		AnimationTimingFunction: "ease-out",
		ThemeClass:              "material-light",
	}
}

// normalize applies opts over a copy of base. Neither input is modified.
func normalize(base Config, opts ...Option) Config {
	cfg := base.clone()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Option overrides one configuration field. An applied option always wins,
// including false, zero and empty values.
type Option func(*Config)

func WithKind(k Kind) Option {
	return func(c *Config) { c.Kind = k }
}

func WithPosition(p Position) Option {
	return func(c *Config) { c.Position = p }
}

func WithSeverity(s Severity) Option {
	return func(c *Config) { c.Severity = s }
}

// WithTitle sets the title. Snackbars never render one.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithMessage sets the message. It is the only required field.
func WithMessage(msg string) Option {
	return func(c *Config) {
		c.Message = msg
		c.hasMessage = true
	}
}

// WithHTML disables escaping of title, message and action texts.
func WithHTML(allow bool) Option {
	return func(c *Config) { c.AllowHTML = allow }
}

func WithClosable(closable bool) Option {
	return func(c *Config) { c.Closable = closable }
}

// WithCloseHandler runs h when the close control is clicked.
// Returning Persist keeps the notification.
func WithCloseHandler(h Handler) Option {
	return func(c *Config) { c.CloseHandler = h }
}

func WithAutoClose(enabled bool) Option {
	return func(c *Config) { c.AutoClose = enabled }
}

func WithAutoCloseDelay(d time.Duration) Option {
	return func(c *Config) { c.AutoCloseDelay = d }
}

func WithAnimation(enabled bool) Option {
	return func(c *Config) { c.Animated = enabled }
}

func WithAnimationStyle(s AnimationStyle) Option {
	return func(c *Config) { c.AnimationStyle = s }
}

func WithAnimationDuration(d time.Duration) Option {
	return func(c *Config) { c.AnimationDuration = d }
}

func WithTimingFunction(fn string) Option {
	return func(c *Config) { c.AnimationTimingFunction = fn }
}

// WithAnimationClasses sets the classes used by AnimationCustom.
func WithAnimationClasses(fixed, entry, exit string) Option {
	return func(c *Config) {
		c.AnimationClasses = AnimationClasses{Fixed: fixed, Entry: entry, Exit: exit}
	}
}

func WithActionable(enabled bool) Option {
	return func(c *Config) { c.Actionable = enabled }
}

func WithPrimaryAction(text string, h Handler) Option {
	return func(c *Config) { c.PrimaryAction = &Action{Text: text, Handler: h} }
}

func WithSecondaryAction(text string, h Handler) Option {
	return func(c *Config) { c.SecondaryAction = &Action{Text: text, Handler: h} }
}

func WithThemeClass(class string) Option {
	return func(c *Config) { c.ThemeClass = class }
}
