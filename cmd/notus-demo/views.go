package main

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// formSignals seeds the send form. Action handlers and custom animation
// classes are fixed; the form toggles whether they are used.
const formSignals = `{"form":{` +
	`"notusType":"popup","notusPosition":"top-left","alertType":"none",` +
	`"title":"Notus","message":"Hello there!","htmlString":true,` +
	`"closable":true,"autoClose":true,"autoCloseDuration":5000,` +
	`"animate":true,"animationType":"slide","animationDuration":300,` +
	`"animationClass":{"fixed":"animated","entry":"flipInX","exit":"flipOutX"},` +
	`"actionable":false,` +
	`"primaryAction":{"text":"Reply","actionHandler":"reply"},` +
	`"secondaryAction":{"text":"Snooze","actionHandler":"snooze"}}}`

// clickScript forwards clicks on rendered controls to the server, which owns
// the surface and its handlers.
const clickScript = `
document.getElementById("surface").addEventListener("click", function (e) {
	var el = e.target.closest(".notus");
	if (!el) return;
	var control = e.target.closest(".notus-close") ? "close"
		: e.target.closest(".notus-action-primary") ? "primary"
		: e.target.closest(".notus-action-secondary") ? "secondary" : "";
	if (!control) return;
	fetch("/notifications/" + el.id + "/click/" + control, {method: "POST"});
});`

const pageStyle = `
body { font-family: system-ui, sans-serif; margin: 2rem; }
fieldset { margin-bottom: 1rem; }
.notus-container { position: fixed; display: flex; flex-direction: column; gap: .5rem; z-index: 10; }
.notus-container-top-left { top: 1rem; left: 1rem; }
.notus-container-top-right { top: 1rem; right: 1rem; }
.notus-container-bottom-left { bottom: 1rem; left: 1rem; }
.notus-container-bottom-right { bottom: 1rem; right: 1rem; }
[class*="notus-container-top-toast"], [class*="notus-container-top-snackbar"] { top: 0; left: 50%; transform: translateX(-50%); }
[class*="notus-container-bottom-toast"], [class*="notus-container-bottom-snackbar"] { bottom: 0; left: 50%; transform: translateX(-50%); }
.notus { display: flex; gap: .75rem; min-width: 16rem; padding: .75rem 1rem; border-radius: 4px; background: #fff; box-shadow: 0 2px 6px rgba(0,0,0,.25); transition: transform .3s, opacity .3s; }
.notus.success { border-left: 4px solid #2e7d32; }
.notus.failure { border-left: 4px solid #c62828; }
.notus.warning { border-left: 4px solid #f9a825; }
.notus.custom { border-left: 4px solid #6a1b9a; }
.notus-title { font-weight: 600; }
.notus-close, .notus-action { cursor: pointer; }
.notus-action { margin-left: .5rem; text-transform: uppercase; color: #1565c0; }
`

func pageView(presets []string, surfaceHTML string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>notus demo</title>`)
		b.WriteString(`<script type="module" src="` + datastarScript + `"></script>`)
		b.WriteString(`<style>` + pageStyle + `</style></head>`)
		b.WriteString(`<body data-signals='` + formSignals + `' data-on-load="@get('/events')">`)
		b.WriteString(`<h1>notus</h1>`)

		b.WriteString(`<form data-on-submit__prevent="@post('/send')">`)
		radios(&b, "Type", "form.notusType", "popup", "toast", "snackbar")
		radios(&b, "Position", "form.notusPosition", "top-left", "top-right", "bottom-left", "bottom-right", "top", "bottom")
		radios(&b, "Alert", "form.alertType", "none", "success", "failure", "warning", "custom")
		radios(&b, "Animation", "form.animationType", "slide", "fade", "custom")
		b.WriteString(`<fieldset><legend>Content</legend>`)
		b.WriteString(`<label>Title <input type="text" data-bind="form.title"></label> `)
		b.WriteString(`<label>Message <input type="text" data-bind="form.message"></label>`)
		b.WriteString(`</fieldset><fieldset><legend>Behavior</legend>`)
		for _, cb := range []struct{ label, signal string }{
			{"Closable", "form.closable"},
			{"Auto close", "form.autoClose"},
			{"Animate", "form.animate"},
			{"Actionable", "form.actionable"},
		} {
			b.WriteString(`<label><input type="checkbox" data-bind="` + templ.EscapeString(cb.signal) + `"> ` +
				templ.EscapeString(cb.label) + `</label> `)
		}
		b.WriteString(`</fieldset><button type="submit">Notify</button></form>`)

		b.WriteString(`<p>Presets: `)
		for _, name := range presets {
			// the name lands inside a quoted JS string, so it is query escaped first
			action := "@post('/send?preset=" + url.QueryEscape(name) + "')"
			b.WriteString(`<button type="button" data-on-click="` + templ.EscapeString(action) + `">` +
				templ.EscapeString(name) + `</button> `)
		}
		b.WriteString(`</p>`)
		b.WriteString(`<div id="status"></div>`)

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := surfaceView(surfaceHTML).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<script>`+clickScript+`</script></body></html>`)
		return err
	})
}

func radios(b *strings.Builder, legend, signal string, values ...string) {
	b.WriteString(`<fieldset><legend>` + templ.EscapeString(legend) + `</legend>`)
	for _, v := range values {
		v = templ.EscapeString(v)
		b.WriteString(`<label><input type="radio" data-bind="` + templ.EscapeString(signal) + `" value="` + v + `"> ` + v + `</label> `)
	}
	b.WriteString(`</fieldset>`)
}

// surfaceView wraps the rendered surface body; it is patched by id.
func surfaceView(body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="surface">`); err != nil {
			return err
		}
		if err := templ.Raw(body).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func statusView(id string, err error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var text, class string
		if err != nil {
			text, class = err.Error(), "error"
		} else {
			text, class = "sent "+id, "ok"
		}
		_, werr := io.WriteString(w, `<div id="status" class="`+templ.EscapeString(class)+`">`+templ.EscapeString(text)+`</div>`)
		return werr
	})
}
