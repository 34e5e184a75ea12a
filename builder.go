package notus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/notus/pkg/sanitizer"
	"github.com/dmitrymomot/notus/pkg/surface"
)

// Class names of the rendered notification markup.
const (
	ClassNotification    = "notus"
	ClassContent         = "notus-content"
	ClassTitle           = "notus-title"
	ClassBodyItem        = "notus-body-item"
	ClassText            = "notus-text"
	ClassClose           = "notus-close"
	ClassCloseIcon       = "icon-close"
	ClassActions         = "notus-actions"
	ClassAction          = "notus-action"
	ClassPrimaryAction   = "notus-action-primary"
	ClassSecondaryAction = "notus-action-secondary"
)

// buildElement renders cfg into a detached element with the given id.
func buildElement(s surface.Surface, cfg Config, id string) (surface.Element, error) {
	el := s.CreateElement("div")
	el.SetAttribute("id", id)
	el.AddClass(elementClasses(cfg)...)
	if cfg.Animated {
		el.SetStyle(entryStyle(cfg))
	}
	if err := el.SetInnerHTML(elementMarkup(cfg)); err != nil {
		return nil, fmt.Errorf("notus: render %s: %w", id, err)
	}
	return el, nil
}

func elementClasses(cfg Config) []string {
	classes := []string{ClassNotification, string(cfg.Kind)}
	if cfg.Severity != SeverityNone {
		classes = append(classes, string(cfg.Severity))
	}
	classes = append(classes, cfg.ThemeClass)
	if cfg.Animated {
		classes = append(classes, entryClasses(cfg)...)
	}
	return sanitizer.ClassTokens(classes...)
}

func entryClasses(cfg Config) []string {
	if cfg.AnimationStyle == AnimationCustom {
		return []string{cfg.AnimationClasses.Fixed, cfg.AnimationClasses.Entry}
	}
	return []string{string(cfg.AnimationStyle), string(cfg.AnimationStyle) + "-in"}
}

// swapClasses returns the classes to drop and add when the exit sequence starts.
func swapClasses(cfg Config) (drop, add []string) {
	if cfg.AnimationStyle == AnimationCustom {
		return sanitizer.ClassTokens(cfg.AnimationClasses.Entry), sanitizer.ClassTokens(cfg.AnimationClasses.Exit)
	}
	return []string{string(cfg.AnimationStyle) + "-in"}, []string{string(cfg.AnimationStyle) + "-out"}
}

func entryStyle(cfg Config) string {
	var rest string
	switch cfg.AnimationStyle {
	case AnimationSlide:
		if cfg.Kind == KindPopup {
			rest = "transform: translateX(0);"
		} else {
			rest = "transform: translateY(0);"
		}
	case AnimationFade:
		rest = "opacity: 1;"
	}
	return animatorStyle(cfg, rest)
}

func exitStyle(cfg Config) string {
	pos, _ := cfg.Position.Canonical()
	var rest string
	switch cfg.AnimationStyle {
	case AnimationSlide:
		switch {
		case cfg.Kind == KindPopup && pos.Left():
			rest = "transform: translateX(-100%);"
		case cfg.Kind == KindPopup:
			rest = "transform: translateX(100%);"
		case pos.Bottom():
			rest = "transform: translateY(100%);"
		default:
			rest = "transform: translateY(-100%);"
		}
	case AnimationFade:
		rest = "opacity: 0;"
	}
	return animatorStyle(cfg, rest)
}

// animatorStyle joins the motion declaration with the duration and, unless
// the style is custom, the timing function.
func animatorStyle(cfg Config, motion string) string {
	parts := make([]string, 0, 3)
	if motion != "" {
		parts = append(parts, motion)
	}
	if cfg.AnimationDuration > 0 {
		secs := strconv.FormatFloat(cfg.AnimationDuration.Seconds(), 'f', -1, 64)
		parts = append(parts, "animation-duration: "+secs+"s;")
	}
	if cfg.AnimationStyle != AnimationCustom && cfg.AnimationTimingFunction != "" {
		parts = append(parts, "animation-timing-function: "+cfg.AnimationTimingFunction+";")
	}
	return strings.Join(parts, " ")
}

func elementMarkup(cfg Config) string {
	text := func(s string) string {
		if cfg.AllowHTML {
			return s
		}
		return sanitizer.EscapeMarkup(s)
	}

	var b strings.Builder
	b.WriteString(`<div class="` + ClassContent + `">`)
	if cfg.Kind != KindSnackbar {
		b.WriteString(`<div class="` + ClassTitle + `">` + text(cfg.Title) + `</div>`)
	}
	b.WriteString(`<div class="` + ClassBodyItem + ` ` + ClassText + `">` + text(cfg.Message) + `</div>`)
	b.WriteString(`</div>`)

	if cfg.Closable {
		b.WriteString(`<div class="` + ClassBodyItem + ` ` + ClassClose + `"><span class="` + ClassCloseIcon + `">&times;</span></div>`)
	}

	if cfg.Actionable {
		b.WriteString(`<div class="` + ClassBodyItem + ` ` + ClassActions + `">`)
		if cfg.PrimaryAction != nil {
			b.WriteString(`<span class="` + ClassAction + ` ` + ClassPrimaryAction + `">` + text(cfg.PrimaryAction.Text) + `</span>`)
		}
		if cfg.SecondaryAction != nil {
			b.WriteString(`<span class="` + ClassAction + ` ` + ClassSecondaryAction + `">` + text(cfg.SecondaryAction.Text) + `</span>`)
		}
		b.WriteString(`</div>`)
	}
	return b.String()
}
