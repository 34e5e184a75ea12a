package notus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/dmitrymomot/notus/pkg/logger"
	"github.com/dmitrymomot/notus/pkg/surface"
)

// ErrDuplicateID is returned when the id generator repeats an active id.
var ErrDuplicateID = errors.New("notus: duplicate notification id")

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithClock sets the clock used for auto-close and exit timers.
func WithClock(c clockwork.Clock) RuntimeOption {
	return func(rt *Runtime) {
		if c != nil {
			rt.clock = c
		}
	}
}

// WithLogger sets the runtime logger.
func WithLogger(l *slog.Logger) RuntimeOption {
	return func(rt *Runtime) {
		if l != nil {
			rt.log = l
		}
	}
}

// WithIDGenerator replaces the default "notus-<uuid>" element ids.
func WithIDGenerator(gen func() string) RuntimeOption {
	return func(rt *Runtime) {
		if gen != nil {
			rt.newID = gen
		}
	}
}

// Runtime is one page session: a surface, its containers and the
// notifications currently on it.
type Runtime struct {
	surface  surface.Surface
	registry *Registry
	clock    clockwork.Clock
	log      *slog.Logger
	newID    func() string

	// insertMu serializes container resolution and insertion with Reset.
	insertMu sync.Mutex

	mu     sync.RWMutex
	active map[string]*Notification
}

// NewRuntime returns a runtime rendering into s.
func NewRuntime(s surface.Surface, opts ...RuntimeOption) *Runtime {
	rt := &Runtime{
		surface:  s,
		registry: NewRegistry(s),
		clock:    clockwork.NewRealClock(),
		log:      logger.Discard(),
		newID:    func() string { return "notus-" + uuid.NewString() },
		active:   make(map[string]*Notification),
	}
	for _, opt := range opts {
		opt(rt)
	}
	rt.log = rt.log.With(logger.Component("notus"))
	return rt
}

// Registry returns the container registry of the runtime.
func (rt *Runtime) Registry() *Registry { return rt.registry }

// Create returns a Notifier whose defaults are the library defaults
// overridden by defaults.
func (rt *Runtime) Create(defaults ...Option) *Notifier {
	return &Notifier{rt: rt, defaults: normalize(DefaultConfig(), defaults...)}
}

// Lookup returns the active notification with the given id.
func (rt *Runtime) Lookup(id string) (*Notification, bool) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	n, ok := rt.active[id]
	return n, ok
}

// Len reports the number of notifications not yet removed.
func (rt *Runtime) Len() int {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return len(rt.active)
}

// Dismiss removes the notification with the given id immediately.
// Handlers are not invoked.
func (rt *Runtime) Dismiss(ctx context.Context, id string) error {
	n, ok := rt.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	n.Dismiss(ctx)
	return nil
}

// Reset dismisses every notification and removes all containers.
// Sends in flight either complete before the reset or start after it.
func (rt *Runtime) Reset(ctx context.Context) {
	rt.insertMu.Lock()
	defer rt.insertMu.Unlock()

	rt.mu.RLock()
	all := make([]*Notification, 0, len(rt.active))
	for _, n := range rt.active {
		all = append(all, n)
	}
	rt.mu.RUnlock()

	for _, n := range all {
		n.Dismiss(ctx)
	}
	rt.registry.Reset()
	rt.log.DebugContext(ctx, "runtime reset", slog.Int("dismissed", len(all)))
}

func (rt *Runtime) forget(id string) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	delete(rt.active, id)
}

func (rt *Runtime) send(ctx context.Context, cfg Config) (string, error) {
	if err := Validate(cfg); err != nil {
		return "", err
	}
	cfg.Position, _ = cfg.Position.Canonical()

	id := rt.newID()
	if _, dup := rt.Lookup(id); dup {
		return "", fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	el, err := buildElement(rt.surface, cfg, id)
	if err != nil {
		return "", err
	}

	n := newNotification(rt, id, cfg, el)
	if errs := n.bind(); len(errs) > 0 {
		rt.log.WarnContext(ctx, "notification action left unbound",
			logger.NotificationID(id),
			logger.Errors(errs...),
		)
	}

	rt.insertMu.Lock()
	rt.mu.Lock()
	rt.active[id] = n
	rt.mu.Unlock()

	err = n.insert(rt.registry.Resolve(cfg))
	if err == nil && n.fsm.Is(StateRemoved) {
		// dismissed before it reached the surface
		n.el.Remove()
	}
	rt.insertMu.Unlock()
	if err != nil {
		rt.forget(id)
		return "", fmt.Errorf("notus: insert %s: %w", id, err)
	}

	n.armAutoClose()

	rt.log.DebugContext(ctx, "notification sent",
		logger.NotificationID(id),
		logger.Kind(string(cfg.Kind)),
		logger.Position(string(cfg.Position)),
		logger.Group("animation",
			slog.Bool("enabled", cfg.Animated),
			slog.String("style", string(cfg.AnimationStyle)),
			logger.Duration("duration_ms", cfg.AnimationDuration),
		),
	)
	return id, nil
}

// Notifier sends notifications with a fixed set of defaults.
type Notifier struct {
	rt       *Runtime
	defaults Config
}

// Defaults returns a copy of the notifier defaults.
func (n *Notifier) Defaults() Config { return n.defaults.clone() }

// Send renders a notification configured by opts over the notifier defaults
// and returns its element id. Configuration errors are returned before
// anything is rendered.
func (n *Notifier) Send(ctx context.Context, opts ...Option) (string, error) {
	return n.rt.send(ctx, normalize(n.defaults, opts...))
}
