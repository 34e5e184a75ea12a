package surface

import (
	"context"
	"errors"
)

var (
	// ErrForeignElement is returned when an element from another surface is inserted.
	ErrForeignElement = errors.New("surface: element belongs to another surface")
	// ErrNotChild is returned when an insertion reference is not a child of the target.
	ErrNotChild = errors.New("surface: reference element is not a child")
	// ErrParseMarkup is returned when inner markup cannot be parsed.
	ErrParseMarkup = errors.New("surface: failed to parse markup")
)

// ClickHandler reacts to a click dispatched on an element.
type ClickHandler func(ctx context.Context)

// Element is a node of a rendering surface.
type Element interface {
	ID() string
	TagName() string

	SetAttribute(name, value string)
	Attribute(name string) (string, bool)

	AddClass(names ...string)
	RemoveClass(names ...string)
	HasClass(name string) bool
	Classes() []string

	// SetStyle replaces the inline style declaration.
	SetStyle(style string)
	Style() string

	// SetInnerHTML replaces the element's children with parsed markup.
	SetInnerHTML(markup string) error
	InnerHTML() string
	OuterHTML() string
	Text() string

	// QueryClass returns the first descendant carrying class, depth first.
	QueryClass(class string) (Element, bool)
	Children() []Element
	FirstChild() (Element, bool)
	Parent() (Element, bool)

	AppendChild(child Element) error
	// InsertBefore inserts child before ref; a nil ref appends.
	InsertBefore(child, ref Element) error
	// Remove detaches the element from its parent. Removing a detached element is a no-op.
	Remove()
	// Connected reports whether the element is attached to the surface root.
	Connected() bool

	OnClick(fn ClickHandler)
	Click(ctx context.Context)
}

// Surface is a DOM-like rendering target.
type Surface interface {
	CreateElement(tag string) Element
	Root() Element
	QueryClass(class string) (Element, bool)
	ElementByID(id string) (Element, bool)
}
