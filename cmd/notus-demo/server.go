package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/notus"
	"github.com/dmitrymomot/notus/pkg/httpserver"
	"github.com/dmitrymomot/notus/pkg/logger"
	"github.com/dmitrymomot/notus/pkg/requestid"
	"github.com/dmitrymomot/notus/pkg/surface"
)

// controls maps URL control names to the classes of the rendered controls.
var controls = map[string]string{
	"close":     notus.ClassClose,
	"primary":   notus.ClassPrimaryAction,
	"secondary": notus.ClassSecondaryAction,
}

type app struct {
	log      *slog.Logger
	doc      *surface.Document
	rt       *notus.Runtime
	notifier *notus.Notifier
	presets  notus.Presets
	handlers notus.Handlers
}

func newApp(log *slog.Logger, defaults notus.EnvConfig, presets notus.Presets, opts ...notus.RuntimeOption) (*app, error) {
	defaultOpts, err := defaults.Options()
	if err != nil {
		return nil, err
	}

	doc := surface.NewDocument()
	rt := notus.NewRuntime(doc, append([]notus.RuntimeOption{notus.WithLogger(log)}, opts...)...)

	a := &app{
		log:      log.With(logger.Component("demo")),
		doc:      doc,
		rt:       rt,
		notifier: rt.Create(defaultOpts...),
		presets:  presets,
	}
	a.handlers = notus.Handlers{
		"reply":  a.action("reply", notus.Dismiss),
		"snooze": a.action("snooze", notus.Persist),
		"undo":   a.action("undo", notus.Dismiss),
	}
	return a, nil
}

func (a *app) action(name string, result notus.PersistSignal) notus.HandlerFunc {
	return func(ctx context.Context, id string) notus.PersistSignal {
		a.log.InfoContext(ctx, "action clicked",
			logger.NotificationID(id),
			slog.String("action", name),
			slog.String("result", result.String()),
		)
		return result
	}
}

func (a *app) close() {
	a.rt.Reset(context.Background())
	_ = a.doc.Close()
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware())
	r.Use(middleware.Recoverer)

	r.Get("/", a.page)
	r.Get("/healthz", httpserver.HealthHandler(a.log))
	r.Get("/events", a.events)
	r.Post("/send", a.send)
	r.Post("/notifications/{id}/click/{control}", a.click)
	r.Delete("/notifications/{id}", a.dismiss)
	r.Delete("/notifications", a.reset)
	return r
}

func (a *app) page(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageView(a.presets.Names(), a.doc.BodyHTML()).Render(r.Context(), w); err != nil {
		a.log.ErrorContext(r.Context(), "render page", logger.Error(err))
	}
}

// events streams the surface to the browser, re-rendering it on every
// mutation batch.
func (a *app) events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sub := a.doc.Subscribe(ctx)
	defer sub.Close()

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(surfaceView(a.doc.BodyHTML())); err != nil {
		return
	}

	msgs := sub.Receive(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-msgs:
			if !ok {
				return
			}
			drain(msgs)
			if err := sse.PatchElementTempl(surfaceView(a.doc.BodyHTML())); err != nil {
				a.log.DebugContext(ctx, "event stream closed", logger.Error(err))
				return
			}
		}
	}
}

// drain discards queued mutations; one render covers all of them.
func drain[T any](ch <-chan T) {
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

type sendSignals struct {
	Form notus.Partial `json:"form"`
}

// send renders the named preset when the preset query parameter is set and
// the form signals otherwise.
func (a *app) send(w http.ResponseWriter, r *http.Request) {
	var (
		opts []notus.Option
		err  error
	)
	if preset := r.URL.Query().Get("preset"); preset != "" {
		opts, err = a.presets.Options(preset, a.handlers, notus.Partial{})
	} else {
		var signals sendSignals
		if err := datastar.ReadSignals(r, &signals); err != nil {
			http.Error(w, "invalid signals: "+err.Error(), http.StatusBadRequest)
			return
		}
		opts, err = signals.Form.Options(a.handlers)
	}

	var id string
	if err == nil {
		id, err = a.notifier.Send(r.Context(), opts...)
	}
	if err != nil {
		a.log.InfoContext(r.Context(), "notification rejected", logger.Error(err))
	}

	view := statusView(id, err)
	if isDataStar(r) {
		sse := datastar.NewSSE(w, r)
		_ = sse.PatchElementTempl(view)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	switch {
	case errors.Is(err, notus.ErrPresetNotFound):
		w.WriteHeader(http.StatusNotFound)
	case notus.IsConfigError(err):
		w.WriteHeader(http.StatusUnprocessableEntity)
	case err != nil:
		w.WriteHeader(http.StatusInternalServerError)
	}
	_ = view.Render(r.Context(), w)
}

func (a *app) click(w http.ResponseWriter, r *http.Request) {
	class, ok := controls[chi.URLParam(r, "control")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	el, ok := a.doc.ElementByID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	ctl, ok := el.QueryClass(class)
	if !ok {
		http.NotFound(w, r)
		return
	}
	ctl.Click(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (a *app) dismiss(w http.ResponseWriter, r *http.Request) {
	if err := a.rt.Dismiss(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *app) reset(w http.ResponseWriter, r *http.Request) {
	a.rt.Reset(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// isDataStar reports whether the request was issued by the datastar client.
func isDataStar(r *http.Request) bool {
	return r.Header.Get("Datastar-Request") == "true" ||
		strings.Contains(r.Header.Get("Accept"), "text/event-stream")
}
