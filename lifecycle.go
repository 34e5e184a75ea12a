package notus

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dmitrymomot/notus/pkg/logger"
	"github.com/dmitrymomot/notus/pkg/statemachine"
	"github.com/dmitrymomot/notus/pkg/surface"
)

// State is the lifecycle state of a notification.
type State string

const (
	StateEntering State = "entering"
	StateVisible  State = "visible"
	StateExiting  State = "exiting"
	StateRemoved  State = "removed"
)

func (s State) String() string { return string(s) }

type event string

const (
	eventSettle  event = "settle"
	eventExpire  event = "expire"
	eventFinish  event = "finish"
	eventDismiss event = "dismiss"
)

// Notification is a rendered notification and its bound behavior.
type Notification struct {
	id  string
	cfg Config
	el  surface.Element
	rt  *Runtime
	fsm *statemachine.Machine[State, event]

	mu         sync.Mutex
	timer      clockwork.Timer
	stopped    bool
	insertedAt time.Time
}

func newNotification(rt *Runtime, id string, cfg Config, el surface.Element) *Notification {
	n := &Notification{id: id, cfg: cfg, el: el, rt: rt}

	initial := StateVisible
	if cfg.Animated {
		initial = StateEntering
	}
	live := []State{StateEntering, StateVisible, StateExiting}

	n.fsm = statemachine.New[State, event](initial,
		statemachine.WithTransition[State, event](StateEntering, StateVisible, eventSettle,
			statemachine.WithGuard[State, event](n.entered),
		),
		statemachine.WithTransitionsFrom[State, event](live[:2], StateExiting, eventExpire,
			statemachine.WithAction[State, event](n.beginExit),
		),
		statemachine.WithTransition[State, event](StateExiting, StateRemoved, eventFinish,
			statemachine.WithActions[State, event](n.halt, n.detach),
		),
		statemachine.WithTransitionsFrom[State, event](live, StateRemoved, eventDismiss,
			statemachine.WithActions[State, event](n.halt, n.detach),
		),
		statemachine.WithObserver[State, event](n.observe),
	)
	return n
}

// ID returns the element id.
func (n *Notification) ID() string { return n.id }

// Element returns the rendered element.
func (n *Notification) Element() surface.Element { return n.el }

// Config returns a copy of the configuration the notification was sent with.
func (n *Notification) Config() Config { return n.cfg.clone() }

// State returns the current lifecycle state. An entering notification is
// reported visible once its animation duration has elapsed.
func (n *Notification) State() State {
	if n.fsm.Is(StateEntering) {
		_ = n.fsm.Fire(context.Background(), eventSettle)
	}
	return n.fsm.Current()
}

// entered guards settling: the entry animation must have run its course.
func (n *Notification) entered(_ context.Context, _ State, _ event) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.insertedAt.IsZero() {
		return false
	}
	return n.rt.clock.Since(n.insertedAt) >= n.cfg.AnimationDuration
}

// Dismiss removes the notification immediately without invoking handlers.
// Dismissing a removed notification is a no-op.
func (n *Notification) Dismiss(ctx context.Context) {
	_ = n.fsm.Fire(ctx, eventDismiss)
}

// bind wires the close and action controls. Actions without a callable
// handler are reported and left unbound.
func (n *Notification) bind() []error {
	n.bindClose()
	return n.bindActions()
}

func (n *Notification) bindClose() {
	if !n.cfg.Closable {
		return
	}
	ctl, ok := n.el.QueryClass(ClassClose)
	if !ok {
		return
	}
	ctl.OnClick(func(ctx context.Context) {
		n.handle(ctx, "close", n.cfg.CloseHandler)
	})
}

func (n *Notification) bindActions() []error {
	if !n.cfg.Actionable {
		return nil
	}

	var errs []error
	for _, a := range []struct {
		name   string
		class  string
		action *Action
	}{
		{"primary", ClassPrimaryAction, n.cfg.PrimaryAction},
		{"secondary", ClassSecondaryAction, n.cfg.SecondaryAction},
	} {
		if a.action == nil {
			continue
		}
		if !callable(a.action.Handler) {
			errs = append(errs, &HandlerError{ID: n.id, Action: a.name})
			continue
		}
		span, ok := n.el.QueryClass(a.class)
		if !ok {
			continue
		}
		name, h := a.name, a.action.Handler
		span.OnClick(func(ctx context.Context) {
			n.handle(ctx, name, h)
		})
	}
	return errs
}

// handle runs h, if any, and removes the notification unless h asks to persist.
func (n *Notification) handle(ctx context.Context, control string, h Handler) {
	if !n.fsm.CanFire(ctx, eventDismiss) {
		return
	}
	if callable(h) {
		signal := h.Handle(ctx, n.id)
		n.rt.log.DebugContext(ctx, "notification handler returned",
			logger.NotificationID(n.id),
			slog.String("control", control),
			slog.String("signal", signal.String()),
		)
		if signal == Persist {
			return
		}
	}
	n.Dismiss(ctx)
}

// insert prepends into bottom containers and appends otherwise.
func (n *Notification) insert(container surface.Element) error {
	var err error
	if n.cfg.Position.Bottom() {
		first, _ := container.FirstChild()
		err = container.InsertBefore(n.el, first)
	} else {
		err = container.AppendChild(n.el)
	}
	if err != nil {
		return err
	}

	n.mu.Lock()
	n.insertedAt = n.rt.clock.Now()
	n.mu.Unlock()
	return nil
}

func (n *Notification) armAutoClose() {
	if !n.cfg.AutoClose {
		return
	}
	if n.schedule(n.cfg.AutoCloseDelay, n.expire) {
		n.rt.log.Debug("auto-close armed",
			logger.NotificationID(n.id),
			logger.Duration("delay_ms", n.cfg.AutoCloseDelay),
		)
	}
}

// schedule replaces the pending timer and reports whether one was armed.
// Nothing is armed after removal.
func (n *Notification) schedule(d time.Duration, fn func()) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stopped {
		return false
	}
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = n.rt.clock.AfterFunc(d, fn)
	return true
}

func (n *Notification) stopTimer() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopped = true
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

func (n *Notification) expire() {
	ctx := context.Background()
	if err := n.fsm.Fire(ctx, eventExpire); err != nil {
		return
	}
	if !n.cfg.Animated || n.cfg.AnimationDuration == 0 {
		_ = n.fsm.Fire(ctx, eventFinish)
		return
	}
	n.schedule(n.cfg.AnimationDuration, func() {
		_ = n.fsm.Fire(context.Background(), eventFinish)
	})
}

func (n *Notification) beginExit(_ context.Context, _, _ State, _ event) error {
	if !n.cfg.Animated {
		return nil
	}
	n.el.SetStyle(exitStyle(n.cfg))
	drop, add := swapClasses(n.cfg)
	n.el.RemoveClass(drop...)
	n.el.AddClass(add...)
	return nil
}

func (n *Notification) halt(_ context.Context, _, _ State, _ event) error {
	n.stopTimer()
	return nil
}

func (n *Notification) detach(_ context.Context, _, _ State, _ event) error {
	n.el.Remove()
	return nil
}

func (n *Notification) observe(ctx context.Context, from, to State, e event) {
	n.rt.log.DebugContext(ctx, "notification transition",
		logger.NotificationID(n.id),
		logger.Transition(string(from), string(to), string(e)),
	)
	if to == StateRemoved {
		n.rt.forget(n.id)
	}
}
