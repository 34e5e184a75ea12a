package notus

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Kind is the layout family of a notification.
type Kind string

const (
	KindPopup    Kind = "popup"
	KindToast    Kind = "toast"
	KindSnackbar Kind = "snackbar"
)

var kinds = []Kind{KindPopup, KindToast, KindSnackbar}

func (k Kind) String() string { return string(k) }

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return slices.Contains(kinds, k) }

// ParseKind converts user input into a Kind. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	k := Kind(fold(s))
	if !k.Valid() {
		return "", newConfigError(RuleKind, "kind", s, "expected one of popup, toast, snackbar")
	}
	return k, nil
}

// Position is where the notification container sits on the surface.
// Both the long form ("top-left") and the short code ("tl") are accepted.
type Position string

const (
	PositionTopLeft     Position = "top-left"
	PositionTopRight    Position = "top-right"
	PositionBottomLeft  Position = "bottom-left"
	PositionBottomRight Position = "bottom-right"
	PositionTop         Position = "top"
	PositionBottom      Position = "bottom"
)

var positionCodes = map[Position]string{
	PositionTopLeft:     "tl",
	PositionTopRight:    "tr",
	PositionBottomLeft:  "bl",
	PositionBottomRight: "br",
	PositionTop:         "t",
	PositionBottom:      "b",
}

// positionsForKind lists the canonical codes each kind may be placed at.
var positionsForKind = map[Kind][]string{
	KindPopup:    {"tl", "tr", "bl", "br"},
	KindToast:    {"t", "b"},
	KindSnackbar: {"t", "b"},
}

func (p Position) String() string { return string(p) }

// Canonical returns the long form of p, resolving short codes.
func (p Position) Canonical() (Position, bool) {
	if _, ok := positionCodes[p]; ok {
		return p, true
	}
	for long, code := range positionCodes {
		if string(p) == code {
			return long, true
		}
	}
	return "", false
}

// Code returns the short code of p, or "" when p is unknown.
func (p Position) Code() string {
	c, ok := p.Canonical()
	if !ok {
		return ""
	}
	return positionCodes[c]
}

// Bottom reports whether p belongs to the bottom family (b, bl, br).
func (p Position) Bottom() bool {
	return strings.HasPrefix(p.Code(), "b")
}

// Left reports whether p is a left corner.
func (p Position) Left() bool {
	return strings.HasSuffix(p.Code(), "l")
}

// LegalFor reports whether p may be used with kind k.
func (p Position) LegalFor(k Kind) bool {
	code := p.Code()
	return code != "" && slices.Contains(positionsForKind[k], code)
}

// ParsePosition converts user input into a canonical Position.
func ParsePosition(s string) (Position, error) {
	p, ok := Position(fold(s)).Canonical()
	if !ok {
		return "", newConfigError(RulePosition, "position", s, "expected one of top-left, top-right, bottom-left, bottom-right, top, bottom or their short codes")
	}
	return p, nil
}

// Severity is the presentational alert tag.
type Severity string

const (
	SeverityNone    Severity = "none"
	SeveritySuccess Severity = "success"
	SeverityFailure Severity = "failure"
	SeverityWarning Severity = "warning"
	SeverityCustom  Severity = "custom"
)

var severities = []Severity{SeverityNone, SeveritySuccess, SeverityFailure, SeverityWarning, SeverityCustom}

func (s Severity) String() string { return string(s) }

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool { return slices.Contains(severities, s) }

// ParseSeverity converts user input into a Severity.
func ParseSeverity(s string) (Severity, error) {
	v := Severity(fold(s))
	if !v.Valid() {
		return "", newConfigError(RuleSeverity, "severity", s, "expected one of none, success, failure, warning, custom")
	}
	return v, nil
}

// AnimationStyle selects how a notification enters and leaves.
type AnimationStyle string

const (
	AnimationSlide  AnimationStyle = "slide"
	AnimationFade   AnimationStyle = "fade"
	AnimationCustom AnimationStyle = "custom"
)

var animationStyles = []AnimationStyle{AnimationSlide, AnimationFade, AnimationCustom}

func (a AnimationStyle) String() string { return string(a) }

// Valid reports whether a is a known animation style.
func (a AnimationStyle) Valid() bool { return slices.Contains(animationStyles, a) }

// ParseAnimationStyle converts user input into an AnimationStyle.
func ParseAnimationStyle(s string) (AnimationStyle, error) {
	a := AnimationStyle(fold(s))
	if !a.Valid() {
		return "", newConfigError(RuleAnimationStyle, "animation style", s, "expected one of slide, fade, custom")
	}
	return a, nil
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
