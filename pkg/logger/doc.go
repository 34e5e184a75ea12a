// Package logger builds *slog.Logger values with functional options and a
// handler that injects context-scoped attributes.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result so that attributes stored with WithAttrs, and those produced by
// registered ContextExtractor callbacks, are added to every record:
//
//	log := logger.New(logger.WithEnvironment("development", "notus-demo"))
//
//	ctx = logger.WithAttrs(ctx, logger.NotificationID(id))
//	log.DebugContext(ctx, "notification dismissed", logger.State("removed"))
//
// Helper constructors in attr.go (Error, Errors, NotificationID, Kind,
// Position, State, Transition, ...) keep attribute keys consistent. Error and
// Errors return an empty attribute for nil errors, so no nil check is needed
// at the call site.
//
// Discard returns a logger that drops everything; libraries use it as their
// default so they stay silent until a logger is injected.
package logger
