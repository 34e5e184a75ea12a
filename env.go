package notus

import "time"

// EnvConfig holds notifier defaults read from the environment, usually with
// the NOTUS_ prefix (NOTUS_TYPE, NOTUS_POSITION, ...).
type EnvConfig struct {
	Type              string        `env:"TYPE" envDefault:"popup"`
	Position          string        `env:"POSITION" envDefault:"top-right"`
	AlertType         string        `env:"ALERT_TYPE" envDefault:"none"`
	HTMLString        bool          `env:"HTML_STRING" envDefault:"false"`
	Closable          bool          `env:"CLOSABLE" envDefault:"true"`
	AutoClose         bool          `env:"AUTO_CLOSE" envDefault:"true"`
	AutoCloseDuration time.Duration `env:"AUTO_CLOSE_DURATION" envDefault:"3s"`
	Animate           bool          `env:"ANIMATE" envDefault:"true"`
	AnimationType     string        `env:"ANIMATION_TYPE" envDefault:"slide"`
	AnimationDuration time.Duration `env:"ANIMATION_DURATION" envDefault:"300ms"`
	AnimationFunction string        `env:"ANIMATION_FUNCTION" envDefault:"ease-out"`
	ThemeClass        string        `env:"THEME_CLASS" envDefault:"material-light"`
}

// Options converts the environment defaults into options for Runtime.Create.
func (e EnvConfig) Options() ([]Option, error) {
	kind, err := ParseKind(e.Type)
	if err != nil {
		return nil, err
	}
	pos, err := ParsePosition(e.Position)
	if err != nil {
		return nil, err
	}
	sev, err := ParseSeverity(e.AlertType)
	if err != nil {
		return nil, err
	}
	anim, err := ParseAnimationStyle(e.AnimationType)
	if err != nil {
		return nil, err
	}
	return []Option{
		WithKind(kind),
		WithPosition(pos),
		WithSeverity(sev),
		WithHTML(e.HTMLString),
		WithClosable(e.Closable),
		WithAutoClose(e.AutoClose),
		WithAutoCloseDelay(e.AutoCloseDuration),
		WithAnimation(e.Animate),
		WithAnimationStyle(anim),
		WithAnimationDuration(e.AnimationDuration),
		WithTimingFunction(e.AnimationFunction),
		WithThemeClass(e.ThemeClass),
	}, nil
}
