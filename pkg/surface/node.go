package surface

import (
	"bytes"
	"context"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/dmitrymomot/notus/pkg/sanitizer"
)

// Node is the Document implementation of Element.
type Node struct {
	doc    *Document
	n      *html.Node
	clicks []ClickHandler
}

func (e *Node) ID() string {
	v, _ := e.Attribute("id")
	return v
}

func (e *Node) TagName() string {
	return e.n.Data
}

func (e *Node) SetAttribute(name, value string) {
	e.doc.mu.Lock()
	setAttr(e.n, name, value)
	connected := e.doc.connectedLocked(e.n)
	e.doc.mu.Unlock()

	if connected {
		e.doc.notify(Mutation{Op: OpAttr, Target: e.ID()})
	}
}

func (e *Node) Attribute(name string) (string, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return getAttr(e.n, name)
}

func (e *Node) AddClass(names ...string) {
	e.doc.mu.Lock()
	current, _ := getAttr(e.n, "class")
	setAttr(e.n, "class", strings.Join(sanitizer.ClassTokens(append([]string{current}, names...)...), " "))
	connected := e.doc.connectedLocked(e.n)
	e.doc.mu.Unlock()

	if connected {
		e.doc.notify(Mutation{Op: OpAttr, Target: e.ID()})
	}
}

func (e *Node) RemoveClass(names ...string) {
	drop := sanitizer.ClassTokens(names...)

	e.doc.mu.Lock()
	current, _ := getAttr(e.n, "class")
	kept := slices.DeleteFunc(sanitizer.ClassTokens(current), func(c string) bool {
		return slices.Contains(drop, c)
	})
	setAttr(e.n, "class", strings.Join(kept, " "))
	connected := e.doc.connectedLocked(e.n)
	e.doc.mu.Unlock()

	if connected {
		e.doc.notify(Mutation{Op: OpAttr, Target: e.ID()})
	}
}

func (e *Node) HasClass(name string) bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return hasClass(e.n, name)
}

func (e *Node) Classes() []string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	v, _ := getAttr(e.n, "class")
	return sanitizer.ClassTokens(v)
}

func (e *Node) SetStyle(style string) {
	e.SetAttribute("style", strings.TrimSpace(style))
}

func (e *Node) Style() string {
	v, _ := e.Attribute("style")
	return v
}

func (e *Node) SetInnerHTML(markup string) error {
	nodes, err := parseFragment(markup)
	if err != nil {
		return err
	}

	e.doc.mu.Lock()
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		e.doc.forgetLocked(c)
		c = next
	}
	for _, c := range nodes {
		e.n.AppendChild(c)
	}
	connected := e.doc.connectedLocked(e.n)
	e.doc.mu.Unlock()

	if connected {
		e.doc.notify(Mutation{Op: OpMarkup, Target: e.ID()})
	}
	return nil
}

func (e *Node) InnerHTML() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return renderChildren(e.n)
}

func (e *Node) OuterHTML() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	var buf bytes.Buffer
	_ = html.Render(&buf, e.n)
	return buf.String()
}

func (e *Node) Text() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	var b strings.Builder
	walk(e.n, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		return false
	})
	return b.String()
}

func (e *Node) QueryClass(class string) (Element, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.doc.queryLocked(e.n, func(n *html.Node) bool { return hasClass(n, class) })
}

func (e *Node) Children() []Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	var out []Element
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.wrapLocked(c))
		}
	}
	return out
}

func (e *Node) FirstChild() (Element, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return e.doc.wrapLocked(c), true
		}
	}
	return nil, false
}

func (e *Node) Parent() (Element, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	if e.n.Parent == nil || e.n.Parent.Type != html.ElementNode {
		return nil, false
	}
	return e.doc.wrapLocked(e.n.Parent), true
}

func (e *Node) AppendChild(child Element) error {
	return e.InsertBefore(child, nil)
}

func (e *Node) InsertBefore(child, ref Element) error {
	c, err := e.doc.own(child)
	if err != nil {
		return err
	}

	var r *Node
	if ref != nil {
		if r, err = e.doc.own(ref); err != nil {
			return err
		}
	}

	e.doc.mu.Lock()
	if r != nil && r.n.Parent != e.n {
		e.doc.mu.Unlock()
		return ErrNotChild
	}
	if c.n.Parent != nil {
		c.n.Parent.RemoveChild(c.n)
	}
	if r != nil {
		e.n.InsertBefore(c.n, r.n)
	} else {
		e.n.AppendChild(c.n)
	}
	e.doc.nodes[c.n] = c
	connected := e.doc.connectedLocked(e.n)
	e.doc.mu.Unlock()

	if connected {
		e.doc.notify(Mutation{Op: OpInsert, Target: c.ID()})
	}
	return nil
}

func (e *Node) Remove() {
	e.doc.mu.Lock()
	parent := e.n.Parent
	if parent == nil {
		e.doc.mu.Unlock()
		return
	}
	connected := e.doc.connectedLocked(e.n)
	parent.RemoveChild(e.n)
	e.doc.forgetLocked(e.n)
	e.doc.mu.Unlock()

	if connected {
		e.doc.notify(Mutation{Op: OpRemove, Target: e.ID()})
	}
}

func (e *Node) Connected() bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.doc.connectedLocked(e.n)
}

func (e *Node) OnClick(fn ClickHandler) {
	if fn == nil {
		return
	}
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.clicks = append(e.clicks, fn)
}

func (e *Node) Click(ctx context.Context) {
	e.doc.mu.Lock()
	handlers := slices.Clone(e.clicks)
	e.doc.mu.Unlock()

	for _, fn := range handlers {
		fn(ctx)
	}
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func hasClass(n *html.Node, class string) bool {
	v, ok := getAttr(n, "class")
	if !ok || class == "" {
		return false
	}
	return slices.Contains(strings.Fields(v), class)
}
