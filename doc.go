// Package notus renders transient notifications (popups, toasts and
// snackbars) onto a rendering surface and manages their lifecycle.
//
// A Runtime owns one surface session: the container registry, the clock that
// drives auto-close and exit timers, and the set of notifications currently
// shown. A Notifier created from it carries per-instance defaults:
//
//	doc := surface.NewDocument()
//	rt := notus.NewRuntime(doc, notus.WithLogger(log))
//	n := rt.Create(notus.WithKind(notus.KindToast), notus.WithPosition(notus.PositionBottom))
//
//	id, err := n.Send(ctx,
//		notus.WithMessage("Saved"),
//		notus.WithActionable(true),
//		notus.WithPrimaryAction("UNDO", notus.HandlerFunc(func(ctx context.Context, id string) notus.PersistSignal {
//			return notus.Dismiss
//		})),
//	)
//
// Send normalizes the options over the defaults, validates the result, builds
// the element, resolves its container and inserts it: prepended in bottom
// containers, appended otherwise. Invalid configurations are returned as
// *ConfigError before anything is rendered.
//
// # Lifecycle
//
// A notification moves through entering, visible, exiting and removed.
// Auto-close moves it to exiting, swaps the entry classes for the exit ones and
// removes it once the animation duration has passed. Clicking the close
// control or an action removes it at once unless the handler returns Persist.
// Removal is idempotent; late timers and repeated clicks are ignored.
//
// # Boundary input
//
// Partial mirrors the JSON/YAML option names of the browser library
// (notusType, notusPosition, alertType, ...). Presets loads named partials
// from YAML and EnvConfig reads notifier defaults from NOTUS_* variables.
package notus
