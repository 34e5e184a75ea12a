package notus_test

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notus"
	"github.com/dmitrymomot/notus/pkg/logger"
	"github.com/dmitrymomot/notus/pkg/surface"
)

func newRuntime(t *testing.T, opts ...notus.RuntimeOption) (*notus.Runtime, *surface.Document, *clockwork.FakeClock) {
	t.Helper()
	doc := surface.NewDocument()
	t.Cleanup(func() { _ = doc.Close() })
	clock := clockwork.NewFakeClock()
	rt := notus.NewRuntime(doc, append([]notus.RuntimeOption{notus.WithClock(clock)}, opts...)...)
	return rt, doc, clock
}

func element(t *testing.T, rt *notus.Runtime, id string) (*notus.Notification, surface.Element) {
	t.Helper()
	n, ok := rt.Lookup(id)
	require.True(t, ok, "notification %s is not active", id)
	return n, n.Element()
}

func click(t *testing.T, el surface.Element, class string) {
	t.Helper()
	ctl, ok := el.QueryClass(class)
	require.True(t, ok, "control %s not rendered", class)
	ctl.Click(context.Background())
}

func signal(s notus.PersistSignal, calls *atomic.Int32) notus.HandlerFunc {
	return func(context.Context, string) notus.PersistSignal {
		calls.Add(1)
		return s
	}
}

func TestSend(t *testing.T) {
	t.Parallel()
	rt, doc, _ := newRuntime(t)

	id, err := rt.Create().Send(context.Background(), notus.WithMessage("hello"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "notus-"))

	el, ok := doc.ElementByID(id)
	require.True(t, ok)
	assert.True(t, el.Connected())
	assert.Equal(t, []string{"notus", "popup", "material-light", "slide", "slide-in"}, el.Classes())

	container, ok := el.Parent()
	require.True(t, ok)
	assert.True(t, container.HasClass(notus.ClassContainer))
	assert.True(t, container.HasClass("notus-container-top-right"))

	n, _ := element(t, rt, id)
	assert.Equal(t, notus.StateEntering, n.State())
	assert.Equal(t, 1, rt.Len())
}

func TestSendLogsTimings(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatJSON),
		logger.WithLevel(logger.ParseLevel("debug")),
	)
	rt, _, _ := newRuntime(t, notus.WithLogger(log))

	_, err := rt.Create().Send(context.Background(),
		notus.WithMessage("m"),
		notus.WithAutoCloseDelay(1500*time.Millisecond),
		notus.WithAnimationDuration(250*time.Millisecond),
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"animation":{"enabled":true,"style":"slide","duration_ms":250}`)
	assert.Contains(t, out, `"msg":"auto-close armed"`)
	assert.Contains(t, out, `"delay_ms":1500`)
}

func TestSendRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []notus.Option
		rule notus.Rule
	}{
		{"unknown kind", []notus.Option{notus.WithMessage("m"), notus.WithKind("banner")}, notus.RuleKind},
		{"unknown position", []notus.Option{notus.WithMessage("m"), notus.WithPosition("middle")}, notus.RulePosition},
		{"unknown severity", []notus.Option{notus.WithMessage("m"), notus.WithSeverity("info")}, notus.RuleSeverity},
		{"unknown animation", []notus.Option{notus.WithMessage("m"), notus.WithAnimationStyle("spin")}, notus.RuleAnimationStyle},
		{"missing message", nil, notus.RuleMessage},
		{"popup at top", []notus.Option{notus.WithMessage("m"), notus.WithPosition(notus.PositionTop)}, notus.RulePositionForKind},
		{
			"toast at corner",
			[]notus.Option{notus.WithMessage("m"), notus.WithKind(notus.KindToast), notus.WithPosition(notus.PositionTopLeft)},
			notus.RulePositionForKind,
		},
		{
			"nil close handler func",
			[]notus.Option{notus.WithMessage("m"), notus.WithCloseHandler(notus.HandlerFunc(nil))},
			notus.RuleCloseHandler,
		},
		{"actionable without actions", []notus.Option{notus.WithMessage("m"), notus.WithActionable(true)}, notus.RuleActions},
		{
			"actionable with empty texts",
			[]notus.Option{
				notus.WithMessage("m"),
				notus.WithActionable(true),
				notus.WithPrimaryAction("", notus.HandlerFunc(func(context.Context, string) notus.PersistSignal { return notus.Dismiss })),
			},
			notus.RuleActions,
		},
		{"negative delay", []notus.Option{notus.WithMessage("m"), notus.WithAutoCloseDelay(-time.Second)}, notus.RuleAutoCloseDelay},
		{"negative duration", []notus.Option{notus.WithMessage("m"), notus.WithAnimationDuration(-time.Millisecond)}, notus.RuleAnimationDuration},
		{
			"custom without classes",
			[]notus.Option{notus.WithMessage("m"), notus.WithAnimationStyle(notus.AnimationCustom), notus.WithAnimationClasses("animated", "", "")},
			notus.RuleAnimationClasses,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rt, doc, _ := newRuntime(t)

			id, err := rt.Create().Send(context.Background(), tt.opts...)
			require.Error(t, err)
			assert.Empty(t, id)
			assert.True(t, notus.IsConfigError(err))
			assert.ErrorIs(t, err, notus.ErrConfig)

			var ce *notus.ConfigError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.rule, ce.Rule)

			assert.Empty(t, doc.BodyHTML(), "nothing is rendered")
			assert.Zero(t, rt.Registry().Len(), "no container is created")
		})
	}
}

func TestSendKindPositionTable(t *testing.T) {
	t.Parallel()

	legal := map[notus.Kind][]notus.Position{
		notus.KindPopup:    {notus.PositionTopLeft, notus.PositionTopRight, notus.PositionBottomLeft, notus.PositionBottomRight},
		notus.KindToast:    {notus.PositionTop, notus.PositionBottom},
		notus.KindSnackbar: {notus.PositionTop, notus.PositionBottom},
	}
	positions := []notus.Position{
		notus.PositionTopLeft, notus.PositionTopRight, notus.PositionBottomLeft,
		notus.PositionBottomRight, notus.PositionTop, notus.PositionBottom,
	}

	for _, kind := range []notus.Kind{notus.KindPopup, notus.KindToast, notus.KindSnackbar} {
		for _, pos := range positions {
			t.Run(string(kind)+"/"+string(pos), func(t *testing.T) {
				t.Parallel()
				rt, doc, _ := newRuntime(t)

				id, err := rt.Create().Send(context.Background(),
					notus.WithMessage("m"),
					notus.WithKind(kind),
					notus.WithPosition(pos),
				)

				if !slices.Contains(legal[kind], pos) {
					var ce *notus.ConfigError
					require.ErrorAs(t, err, &ce)
					assert.Equal(t, notus.RulePositionForKind, ce.Rule)
					assert.Empty(t, doc.BodyHTML())
					return
				}

				require.NoError(t, err)
				el, ok := doc.ElementByID(id)
				require.True(t, ok)
				container, ok := el.Parent()
				require.True(t, ok)

				want := "notus-container-" + string(pos)
				if kind != notus.KindPopup {
					want += "-" + string(kind)
				}
				assert.True(t, container.HasClass(want), "container classes %v", container.Classes())
			})
		}
	}
}

func TestContainerReuse(t *testing.T) {
	t.Parallel()
	rt, doc, _ := newRuntime(t)
	ctx := context.Background()
	popup := rt.Create()
	toast := rt.Create(notus.WithKind(notus.KindToast), notus.WithPosition(notus.PositionTop))

	first, err := popup.Send(ctx, notus.WithMessage("one"), notus.WithPosition(notus.PositionTopLeft))
	require.NoError(t, err)
	second, err := popup.Send(ctx, notus.WithMessage("two"), notus.WithPosition("tl"))
	require.NoError(t, err)
	_, err = toast.Send(ctx, notus.WithMessage("three"))
	require.NoError(t, err)
	_, err = toast.Send(ctx, notus.WithMessage("four"), notus.WithKind(notus.KindSnackbar))
	require.NoError(t, err)

	assert.Equal(t, 3, rt.Registry().Len())
	assert.Len(t, doc.Root().Children(), 3)

	_, a := element(t, rt, first)
	_, b := element(t, rt, second)
	pa, _ := a.Parent()
	pb, _ := b.Parent()
	assert.Same(t, pa, pb)

	_, ok := doc.QueryClass("notus-container-top-toast")
	assert.True(t, ok)
	_, ok = doc.QueryClass("notus-container-top-snackbar")
	assert.True(t, ok)
}

func TestAdoptsExistingContainer(t *testing.T) {
	t.Parallel()
	rt, doc, _ := newRuntime(t)

	existing := doc.CreateElement("div")
	existing.AddClass("notus-container", "notus-container-bottom-right")
	require.NoError(t, doc.Root().AppendChild(existing))

	id, err := rt.Create().Send(context.Background(), notus.WithMessage("m"), notus.WithPosition(notus.PositionBottomRight))
	require.NoError(t, err)

	_, el := element(t, rt, id)
	parent, _ := el.Parent()
	assert.Same(t, existing, parent)
	assert.Len(t, doc.Root().Children(), 1)
}

func TestInsertionOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     notus.Kind
		position notus.Position
		newest   bool // newest first
	}{
		{"popup top appends", notus.KindPopup, notus.PositionTopRight, false},
		{"popup bottom prepends", notus.KindPopup, notus.PositionBottomLeft, true},
		{"toast top appends", notus.KindToast, notus.PositionTop, false},
		{"snackbar bottom prepends", notus.KindSnackbar, "b", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rt, _, _ := newRuntime(t)
			n := rt.Create(notus.WithKind(tt.kind), notus.WithPosition(tt.position))

			var ids []string
			for _, msg := range []string{"a", "b", "c"} {
				id, err := n.Send(context.Background(), notus.WithMessage(msg))
				require.NoError(t, err)
				ids = append(ids, id)
			}

			_, el := element(t, rt, ids[0])
			container, _ := el.Parent()
			var got []string
			for _, c := range container.Children() {
				got = append(got, c.ID())
			}

			if tt.newest {
				assert.Equal(t, []string{ids[2], ids[1], ids[0]}, got)
			} else {
				assert.Equal(t, ids, got)
			}
		})
	}
}

func TestEscaping(t *testing.T) {
	t.Parallel()
	const payload = `<script>alert('x')</script>`

	t.Run("escaped by default", func(t *testing.T) {
		t.Parallel()
		rt, doc, _ := newRuntime(t)
		id, err := rt.Create().Send(context.Background(), notus.WithMessage(payload), notus.WithTitle("<b>t</b>"))
		require.NoError(t, err)

		_, el := element(t, rt, id)
		msg, ok := el.QueryClass(notus.ClassText)
		require.True(t, ok)
		assert.Equal(t, payload, msg.Text(), "markup survives as text")
		assert.NotContains(t, doc.BodyHTML(), "<script>")
		assert.NotContains(t, doc.BodyHTML(), "<b>")
	})

	t.Run("passed through with AllowHTML", func(t *testing.T) {
		t.Parallel()
		rt, _, _ := newRuntime(t)
		id, err := rt.Create(notus.WithHTML(true)).Send(context.Background(), notus.WithMessage(`<em class="x">hi</em>`))
		require.NoError(t, err)

		_, el := element(t, rt, id)
		em, ok := el.QueryClass("x")
		require.True(t, ok)
		assert.Equal(t, "em", em.TagName())
	})
}

func TestAutoCloseTiming(t *testing.T) {
	t.Parallel()
	rt, _, clock := newRuntime(t)
	ctx := context.Background()

	const (
		delay    = 3 * time.Second
		duration = 300 * time.Millisecond
	)
	id, err := rt.Create().Send(ctx,
		notus.WithMessage("bye"),
		notus.WithAutoCloseDelay(delay),
		notus.WithAnimationDuration(duration),
	)
	require.NoError(t, err)
	n, el := element(t, rt, id)

	assert.Equal(t, notus.StateEntering, n.State())
	clock.Advance(duration)
	assert.Equal(t, notus.StateVisible, n.State(), "settles once the entry animation is over")

	clock.Advance(delay - duration - time.Millisecond)
	assert.Equal(t, notus.StateVisible, n.State(), "never exits before the delay")

	clock.Advance(time.Millisecond)
	require.NoError(t, clock.BlockUntilContext(ctx, 1), "exit removal timer is armed")
	assert.Equal(t, notus.StateExiting, n.State())
	assert.True(t, el.HasClass("slide-out"))
	assert.False(t, el.HasClass("slide-in"))
	assert.Contains(t, el.Style(), "translateX(100%)")

	clock.Advance(duration - time.Millisecond)
	assert.Equal(t, notus.StateExiting, n.State(), "never removed before the animation ends")
	assert.True(t, el.Connected())

	clock.Advance(time.Millisecond)
	require.Eventually(t, func() bool { return n.State() == notus.StateRemoved }, time.Second, 5*time.Millisecond)
	assert.False(t, el.Connected())
	_, ok := rt.Lookup(id)
	assert.False(t, ok)
}

func TestAutoCloseWithoutAnimation(t *testing.T) {
	t.Parallel()
	rt, _, clock := newRuntime(t)

	id, err := rt.Create(notus.WithAnimation(false)).Send(context.Background(),
		notus.WithMessage("bye"),
		notus.WithAutoCloseDelay(time.Second),
	)
	require.NoError(t, err)
	n, el := element(t, rt, id)
	assert.Equal(t, notus.StateVisible, n.State())

	clock.Advance(time.Second)
	require.Eventually(t, func() bool { return !el.Connected() }, time.Second, 5*time.Millisecond)
	assert.Equal(t, notus.StateRemoved, n.State())
}

func TestCustomAnimationExit(t *testing.T) {
	t.Parallel()
	rt, _, clock := newRuntime(t)
	ctx := context.Background()

	id, err := rt.Create().Send(ctx,
		notus.WithMessage("flip"),
		notus.WithAnimationStyle(notus.AnimationCustom),
		notus.WithAnimationClasses("animated", "flipInX", "flipOutX"),
		notus.WithAutoCloseDelay(time.Second),
	)
	require.NoError(t, err)
	n, el := element(t, rt, id)
	assert.True(t, el.HasClass("flipInX"))
	assert.Equal(t, "animation-duration: 0.3s;", el.Style())

	clock.Advance(time.Second)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	assert.Equal(t, notus.StateExiting, n.State())
	assert.True(t, el.HasClass("animated"))
	assert.True(t, el.HasClass("flipOutX"))
	assert.False(t, el.HasClass("flipInX"))
}

func TestCloseControl(t *testing.T) {
	t.Parallel()

	t.Run("without handler removes immediately", func(t *testing.T) {
		t.Parallel()
		rt, _, _ := newRuntime(t)
		id, err := rt.Create().Send(context.Background(), notus.WithMessage("m"))
		require.NoError(t, err)
		n, el := element(t, rt, id)

		click(t, el, notus.ClassClose)
		assert.Equal(t, notus.StateRemoved, n.State())
		assert.False(t, el.Connected())
		assert.False(t, el.HasClass("slide-out"), "manual dismissal skips the exit animation")
	})

	t.Run("persist keeps notification", func(t *testing.T) {
		t.Parallel()
		rt, _, _ := newRuntime(t)
		var calls atomic.Int32
		id, err := rt.Create().Send(context.Background(),
			notus.WithMessage("m"),
			notus.WithCloseHandler(signal(notus.Persist, &calls)),
		)
		require.NoError(t, err)
		n, el := element(t, rt, id)

		click(t, el, notus.ClassClose)
		click(t, el, notus.ClassClose)
		assert.EqualValues(t, 2, calls.Load())
		assert.True(t, el.Connected())
		assert.NotEqual(t, notus.StateRemoved, n.State())
	})

	t.Run("dismiss signal removes", func(t *testing.T) {
		t.Parallel()
		rt, _, _ := newRuntime(t)
		var calls atomic.Int32
		id, err := rt.Create().Send(context.Background(),
			notus.WithMessage("m"),
			notus.WithCloseHandler(signal(notus.Dismiss, &calls)),
		)
		require.NoError(t, err)
		_, el := element(t, rt, id)

		click(t, el, notus.ClassClose)
		click(t, el, notus.ClassClose)
		assert.EqualValues(t, 1, calls.Load(), "handlers are not invoked after removal")
		assert.False(t, el.Connected())
	})

	t.Run("not closable renders no control", func(t *testing.T) {
		t.Parallel()
		rt, _, _ := newRuntime(t)
		id, err := rt.Create().Send(context.Background(), notus.WithMessage("m"), notus.WithClosable(false))
		require.NoError(t, err)
		_, el := element(t, rt, id)
		_, ok := el.QueryClass(notus.ClassClose)
		assert.False(t, ok)
	})
}

func TestActions(t *testing.T) {
	t.Parallel()

	t.Run("persist and dismiss", func(t *testing.T) {
		t.Parallel()
		rt, _, _ := newRuntime(t)
		var reply, snooze atomic.Int32
		id, err := rt.Create().Send(context.Background(),
			notus.WithMessage("New message"),
			notus.WithActionable(true),
			notus.WithPrimaryAction("Reply", signal(notus.Dismiss, &reply)),
			notus.WithSecondaryAction("Snooze", signal(notus.Persist, &snooze)),
		)
		require.NoError(t, err)
		n, el := element(t, rt, id)

		click(t, el, notus.ClassSecondaryAction)
		assert.EqualValues(t, 1, snooze.Load())
		assert.True(t, el.Connected())

		click(t, el, notus.ClassPrimaryAction)
		assert.EqualValues(t, 1, reply.Load())
		assert.Equal(t, notus.StateRemoved, n.State())
	})

	t.Run("missing handler leaves action unbound", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatJSON))
		rt, _, _ := newRuntime(t, notus.WithLogger(log))

		var snooze atomic.Int32
		id, err := rt.Create(notus.WithAutoClose(false)).Send(context.Background(),
			notus.WithMessage("m"),
			notus.WithActionable(true),
			notus.WithPrimaryAction("Reply", nil),
			notus.WithSecondaryAction("Snooze", signal(notus.Dismiss, &snooze)),
		)
		require.NoError(t, err, "handler errors never abort Send")
		n, el := element(t, rt, id)

		click(t, el, notus.ClassPrimaryAction)
		assert.True(t, el.Connected(), "unbound action does nothing")
		assert.Contains(t, buf.String(), "notification action left unbound")
		assert.Contains(t, buf.String(), id)
		assert.Contains(t, buf.String(), `"errors":{"0":"`)

		click(t, el, notus.ClassSecondaryAction)
		assert.EqualValues(t, 1, snooze.Load())
		assert.Equal(t, notus.StateRemoved, n.State())
	})
}

func TestRemovalIsIdempotent(t *testing.T) {
	t.Parallel()
	rt, _, clock := newRuntime(t)
	ctx := context.Background()

	id, err := rt.Create().Send(ctx, notus.WithMessage("m"), notus.WithAutoCloseDelay(time.Second))
	require.NoError(t, err)
	n, el := element(t, rt, id)

	require.NoError(t, rt.Dismiss(ctx, id))
	n.Dismiss(ctx)
	click(t, el, notus.ClassClose)
	assert.Equal(t, notus.StateRemoved, n.State())

	// the pending auto-close timer was stopped; advancing must not revive anything
	clock.Advance(5 * time.Second)
	assert.Equal(t, notus.StateRemoved, n.State())
	assert.False(t, el.Connected())

	assert.ErrorIs(t, rt.Dismiss(ctx, id), notus.ErrNotFound)
}

func TestDismissDuringExit(t *testing.T) {
	t.Parallel()
	rt, _, clock := newRuntime(t)
	ctx := context.Background()

	id, err := rt.Create().Send(ctx, notus.WithMessage("m"), notus.WithAutoCloseDelay(time.Second))
	require.NoError(t, err)
	n, el := element(t, rt, id)

	clock.Advance(time.Second)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	require.Equal(t, notus.StateExiting, n.State())

	click(t, el, notus.ClassClose)
	assert.Equal(t, notus.StateRemoved, n.State())
	require.NoError(t, clock.BlockUntilContext(ctx, 0), "exit removal timer is stopped")
}

func TestReset(t *testing.T) {
	t.Parallel()
	rt, doc, _ := newRuntime(t)
	ctx := context.Background()
	n := rt.Create()

	for _, pos := range []notus.Position{notus.PositionTopLeft, notus.PositionBottomRight} {
		_, err := n.Send(ctx, notus.WithMessage("m"), notus.WithPosition(pos))
		require.NoError(t, err)
	}
	require.Equal(t, 2, rt.Len())

	rt.Reset(ctx)
	assert.Zero(t, rt.Len())
	assert.Zero(t, rt.Registry().Len())
	assert.Empty(t, doc.BodyHTML())

	_, err := n.Send(ctx, notus.WithMessage("again"))
	require.NoError(t, err)
	assert.Equal(t, 1, rt.Registry().Len())
}

// rootHook runs fn the first time the registry asks for the surface root,
// which happens after the notification is tracked and before it is inserted.
type rootHook struct {
	*surface.Document
	fired atomic.Bool
	fn    func()
}

func (h *rootHook) Root() surface.Element {
	if h.fired.CompareAndSwap(false, true) {
		h.fn()
	}
	return h.Document.Root()
}

func TestDismissBeforeInsert(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	doc := surface.NewDocument()
	t.Cleanup(func() { _ = doc.Close() })
	clock := clockwork.NewFakeClock()

	var rt *notus.Runtime
	var dismissErr error
	hook := &rootHook{Document: doc, fn: func() { dismissErr = rt.Dismiss(ctx, "early") }}
	rt = notus.NewRuntime(hook,
		notus.WithClock(clock),
		notus.WithIDGenerator(func() string { return "early" }),
	)

	id, err := rt.Create().Send(ctx, notus.WithMessage("gone"))
	require.NoError(t, err)
	require.NoError(t, dismissErr)
	assert.Equal(t, "early", id)

	_, tracked := rt.Lookup(id)
	assert.False(t, tracked)
	_, onSurface := doc.ElementByID(id)
	assert.False(t, onSurface, "dismissed notification must not reach the surface")

	clock.Advance(time.Hour)
	_, onSurface = doc.ElementByID(id)
	assert.False(t, onSurface)
	assert.Zero(t, rt.Len())
}

func TestResetDuringSends(t *testing.T) {
	t.Parallel()
	rt, doc, _ := newRuntime(t)
	ctx := context.Background()
	n := rt.Create(notus.WithAutoClose(false))

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = n.Send(ctx, notus.WithMessage("m"))
		}()
		go func() {
			defer wg.Done()
			rt.Reset(ctx)
		}()
	}
	wg.Wait()

	onSurface := 0
	for _, container := range doc.Root().Children() {
		for _, el := range container.Children() {
			onSurface++
			_, tracked := rt.Lookup(el.ID())
			assert.True(t, tracked, "element %s is on the surface but not tracked", el.ID())
		}
	}
	assert.Equal(t, rt.Len(), onSurface)
}

func TestDuplicateID(t *testing.T) {
	t.Parallel()
	rt, _, _ := newRuntime(t, notus.WithIDGenerator(func() string { return "fixed" }))
	n := rt.Create()

	id, err := n.Send(context.Background(), notus.WithMessage("one"))
	require.NoError(t, err)
	assert.Equal(t, "fixed", id)

	_, err = n.Send(context.Background(), notus.WithMessage("two"))
	assert.ErrorIs(t, err, notus.ErrDuplicateID)
}

func TestNotifierDefaults(t *testing.T) {
	t.Parallel()
	rt, _, _ := newRuntime(t)
	n := rt.Create(notus.WithKind(notus.KindToast), notus.WithPosition(notus.PositionBottom), notus.WithThemeClass("dark"))

	d := n.Defaults()
	assert.Equal(t, notus.KindToast, d.Kind)
	assert.Equal(t, 3*time.Second, d.AutoCloseDelay)
	assert.Equal(t, "ease-out", d.AnimationTimingFunction)

	id, err := n.Send(context.Background(), notus.WithMessage("m"))
	require.NoError(t, err)
	_, el := element(t, rt, id)
	assert.True(t, el.HasClass("dark"))
	assert.False(t, el.HasClass("material-light"))
}

func TestSnackbarUndoScenario(t *testing.T) {
	t.Parallel()
	rt, doc, _ := newRuntime(t)

	id, err := rt.Create().Send(context.Background(),
		notus.WithKind(notus.KindSnackbar),
		notus.WithPosition(notus.PositionBottom),
		notus.WithMessage("Saved"),
		notus.WithActionable(true),
		notus.WithPrimaryAction("UNDO", notus.HandlerFunc(func(context.Context, string) notus.PersistSignal {
			return notus.Dismiss
		})),
	)
	require.NoError(t, err)

	container, ok := doc.QueryClass("notus-container-bottom-snackbar")
	require.True(t, ok)
	first, ok := container.FirstChild()
	require.True(t, ok)
	assert.Equal(t, id, first.ID())

	_, hasTitle := first.QueryClass(notus.ClassTitle)
	assert.False(t, hasTitle)

	actions, ok := first.QueryClass(notus.ClassActions)
	require.True(t, ok)
	require.Len(t, actions.Children(), 1)
	assert.Equal(t, "UNDO", actions.Children()[0].Text())

	actions.Children()[0].Click(context.Background())
	assert.False(t, first.Connected())
	assert.Empty(t, container.Children())
}

func TestPopupHeadsUpScenario(t *testing.T) {
	t.Parallel()
	rt, doc, _ := newRuntime(t)

	id, err := rt.Create().Send(context.Background(),
		notus.WithPosition(notus.PositionTopLeft),
		notus.WithSeverity(notus.SeverityWarning),
		notus.WithTitle("Heads up"),
		notus.WithMessage("Disk low"),
	)
	require.NoError(t, err)

	container, ok := doc.QueryClass("notus-container-top-left")
	require.True(t, ok)
	el, ok := container.FirstChild()
	require.True(t, ok)
	assert.Equal(t, id, el.ID())
	assert.True(t, el.HasClass("popup"))
	assert.True(t, el.HasClass("warning"))

	title, ok := el.QueryClass(notus.ClassTitle)
	require.True(t, ok)
	assert.Equal(t, "Heads up", title.Text())
	msg, ok := el.QueryClass(notus.ClassText)
	require.True(t, ok)
	assert.Equal(t, "Disk low", msg.Text())
}
