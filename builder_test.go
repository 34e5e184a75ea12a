package notus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notus/pkg/surface"
)

func configWith(opts ...Option) Config {
	cfg := normalize(DefaultConfig(), append([]Option{WithMessage("hello")}, opts...)...)
	cfg.Position, _ = cfg.Position.Canonical()
	return cfg
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("explicit zero values win", func(t *testing.T) {
		t.Parallel()
		cfg := normalize(DefaultConfig(),
			WithClosable(false),
			WithAutoCloseDelay(0),
			WithThemeClass(""),
			WithTimingFunction(""),
		)
		assert.False(t, cfg.Closable)
		assert.Zero(t, cfg.AutoCloseDelay)
		assert.Empty(t, cfg.ThemeClass)
		assert.Empty(t, cfg.AnimationTimingFunction)
		assert.True(t, cfg.AutoClose, "untouched fields keep defaults")
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		t.Parallel()
		base := normalize(DefaultConfig(), WithPrimaryAction("Reply", nil))
		out := normalize(base, WithKind(KindToast))
		out.PrimaryAction.Text = "changed"

		assert.Equal(t, KindPopup, base.Kind)
		assert.Equal(t, "Reply", base.PrimaryAction.Text)
	})

	t.Run("empty message is present", func(t *testing.T) {
		t.Parallel()
		assert.False(t, normalize(DefaultConfig()).HasMessage())
		assert.True(t, normalize(DefaultConfig(), WithMessage("")).HasMessage())
	})
}

func TestElementClasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "defaults",
			cfg:  configWith(),
			want: []string{"notus", "popup", "material-light", "slide", "slide-in"},
		},
		{
			name: "severity and fade",
			cfg:  configWith(WithSeverity(SeverityWarning), WithAnimationStyle(AnimationFade)),
			want: []string{"notus", "popup", "warning", "material-light", "fade", "fade-in"},
		},
		{
			name: "not animated",
			cfg:  configWith(WithKind(KindToast), WithPosition(PositionTop), WithAnimation(false), WithThemeClass("")),
			want: []string{"notus", "toast"},
		},
		{
			name: "custom animation",
			cfg: configWith(
				WithAnimationStyle(AnimationCustom),
				WithAnimationClasses("animated", "flipInX", "flipOutX"),
				WithThemeClass("dark compact"),
			),
			want: []string{"notus", "popup", "dark", "compact", "animated", "flipInX"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, elementClasses(tt.cfg))
		})
	}
}

func TestAnimatorStyles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cfg   Config
		entry string
		exit  string
	}{
		{
			name:  "popup slide right",
			cfg:   configWith(),
			entry: "transform: translateX(0); animation-duration: 0.3s; animation-timing-function: ease-out;",
			exit:  "transform: translateX(100%); animation-duration: 0.3s; animation-timing-function: ease-out;",
		},
		{
			name:  "popup slide left",
			cfg:   configWith(WithPosition(PositionBottomLeft)),
			entry: "transform: translateX(0); animation-duration: 0.3s; animation-timing-function: ease-out;",
			exit:  "transform: translateX(-100%); animation-duration: 0.3s; animation-timing-function: ease-out;",
		},
		{
			name:  "toast top",
			cfg:   configWith(WithKind(KindToast), WithPosition(PositionTop), WithTimingFunction("")),
			entry: "transform: translateY(0); animation-duration: 0.3s;",
			exit:  "transform: translateY(-100%); animation-duration: 0.3s;",
		},
		{
			name:  "snackbar bottom",
			cfg:   configWith(WithKind(KindSnackbar), WithPosition(PositionBottom), WithAnimationDuration(time.Second)),
			entry: "transform: translateY(0); animation-duration: 1s; animation-timing-function: ease-out;",
			exit:  "transform: translateY(100%); animation-duration: 1s; animation-timing-function: ease-out;",
		},
		{
			name:  "fade without duration",
			cfg:   configWith(WithAnimationStyle(AnimationFade), WithAnimationDuration(0)),
			entry: "opacity: 1; animation-timing-function: ease-out;",
			exit:  "opacity: 0; animation-timing-function: ease-out;",
		},
		{
			name:  "custom contributes duration only",
			cfg:   configWith(WithAnimationStyle(AnimationCustom), WithAnimationClasses("", "in", "out")),
			entry: "animation-duration: 0.3s;",
			exit:  "animation-duration: 0.3s;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.entry, entryStyle(tt.cfg))
			assert.Equal(t, tt.exit, exitStyle(tt.cfg))
		})
	}
}

func TestSwapClasses(t *testing.T) {
	t.Parallel()

	drop, add := swapClasses(configWith(WithAnimationStyle(AnimationFade)))
	assert.Equal(t, []string{"fade-in"}, drop)
	assert.Equal(t, []string{"fade-out"}, add)

	drop, add = swapClasses(configWith(WithAnimationStyle(AnimationCustom), WithAnimationClasses("animated", "flipInX", "flipOutX")))
	assert.Equal(t, []string{"flipInX"}, drop)
	assert.Equal(t, []string{"flipOutX"}, add)
}

func TestBuildElement(t *testing.T) {
	t.Parallel()

	t.Run("blocks follow configuration", func(t *testing.T) {
		t.Parallel()
		doc := surface.NewDocument()
		el, err := buildElement(doc, configWith(
			WithTitle("Heads up"),
			WithActionable(true),
			WithPrimaryAction("Reply", nil),
		), "n-1")
		require.NoError(t, err)

		id, _ := el.Attribute("id")
		assert.Equal(t, "n-1", id)
		assert.False(t, el.Connected(), "built elements are detached")

		title, ok := el.QueryClass(ClassTitle)
		require.True(t, ok)
		assert.Equal(t, "Heads up", title.Text())

		msg, ok := el.QueryClass(ClassText)
		require.True(t, ok)
		assert.Equal(t, "hello", msg.Text())

		_, ok = el.QueryClass(ClassClose)
		assert.True(t, ok)

		primary, ok := el.QueryClass(ClassPrimaryAction)
		require.True(t, ok)
		assert.Equal(t, "Reply", primary.Text())
		_, ok = el.QueryClass(ClassSecondaryAction)
		assert.False(t, ok)
	})

	t.Run("snackbar has no title and optional blocks are omitted", func(t *testing.T) {
		t.Parallel()
		doc := surface.NewDocument()
		el, err := buildElement(doc, configWith(
			WithKind(KindSnackbar),
			WithPosition(PositionBottom),
			WithTitle("ignored"),
			WithClosable(false),
		), "n-2")
		require.NoError(t, err)

		for _, class := range []string{ClassTitle, ClassClose, ClassActions} {
			_, ok := el.QueryClass(class)
			assert.False(t, ok, class)
		}
		assert.NotContains(t, el.InnerHTML(), "ignored")
	})

	t.Run("not animated has no inline style", func(t *testing.T) {
		t.Parallel()
		el, err := buildElement(surface.NewDocument(), configWith(WithAnimation(false)), "n-3")
		require.NoError(t, err)
		assert.Empty(t, el.Style())
	})
}

func TestElementMarkupEscaping(t *testing.T) {
	t.Parallel()

	payload := `<script>alert("x")</script>`

	escaped := elementMarkup(configWith(WithMessage(payload), WithTitle(payload)))
	assert.NotContains(t, escaped, "<script>")
	assert.Contains(t, escaped, "&lt;script&gt;alert(&quot;x&quot;)&lt;&#x2F;script&gt;")

	raw := elementMarkup(configWith(WithMessage(payload), WithHTML(true)))
	assert.Contains(t, raw, payload)
}
