package notus

import (
	"sync"

	"github.com/dmitrymomot/notus/pkg/surface"
)

// ClassContainer is carried by every container element.
const ClassContainer = "notus-container"

// containerSignature is the class that identifies the container of a
// (kind family, position) pair. Popups share one family; toasts and
// snackbars each get their own.
func containerSignature(k Kind, p Position) string {
	if k == KindPopup {
		return ClassContainer + "-" + string(p)
	}
	return ClassContainer + "-" + string(p) + "-" + string(k)
}

// Registry resolves the single container of each (kind family, position)
// pair, creating it on first use.
type Registry struct {
	surface surface.Surface

	mu         sync.Mutex
	containers map[string]surface.Element
}

// NewRegistry returns an empty registry bound to s.
func NewRegistry(s surface.Surface) *Registry {
	return &Registry{
		surface:    s,
		containers: make(map[string]surface.Element),
	}
}

// Resolve returns the container for a validated cfg. A container already on
// the surface root with the right signature is adopted instead of duplicated.
func (r *Registry) Resolve(cfg Config) surface.Element {
	pos, _ := cfg.Position.Canonical()
	sig := containerSignature(cfg.Kind, pos)

	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.containers[sig]; ok && c.Connected() {
		return c
	}

	root := r.surface.Root()
	if c, ok := r.adoptLocked(root, sig); ok {
		r.containers[sig] = c
		return c
	}

	c := r.surface.CreateElement("div")
	c.AddClass(ClassContainer, sig)
	// the root is never foreign to its own surface
	_ = root.AppendChild(c)
	r.containers[sig] = c
	return c
}

func (r *Registry) adoptLocked(root surface.Element, sig string) (surface.Element, bool) {
	for _, c := range root.Children() {
		if c.HasClass(sig) {
			return c, true
		}
	}
	return nil, false
}

// Len reports how many containers the registry knows.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.containers)
}

// Reset removes every known container from the surface and forgets them.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for sig, c := range r.containers {
		c.Remove()
		delete(r.containers, sig)
	}
}
