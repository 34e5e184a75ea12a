package surface

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dmitrymomot/notus/pkg/broadcast"
)

// Op names the kind of change applied to a document.
type Op string

const (
	OpInsert Op = "insert"
	OpRemove Op = "remove"
	OpAttr   Op = "attr"
	OpMarkup Op = "markup"
)

// Mutation describes a change to a connected part of the document.
type Mutation struct {
	Op     Op
	Target string // id of the changed element, empty when it has none
}

// Option configures a Document.
type Option func(*Document)

// WithFeed sets the broadcaster that receives mutations of connected elements.
func WithFeed(feed broadcast.Broadcaster[Mutation]) Option {
	return func(d *Document) {
		if feed != nil {
			d.feed = feed
		}
	}
}

// Document is an in-memory Surface backed by an x/net/html node tree.
// It is safe for concurrent use; click handlers run without the document lock held.
type Document struct {
	mu    sync.Mutex
	doc   *html.Node
	body  *html.Node
	nodes map[*html.Node]*Node
	feed  broadcast.Broadcaster[Mutation]
}

// NewDocument returns an empty document with a <body> root.
func NewDocument(opts ...Option) *Document {
	doc, err := html.Parse(strings.NewReader("<!DOCTYPE html><html><head></head><body></body></html>"))
	if err != nil {
		// static input, cannot fail
		panic(err)
	}

	d := &Document{
		doc:   doc,
		body:  findElement(doc, atom.Body),
		nodes: make(map[*html.Node]*Node),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.feed == nil {
		d.feed = broadcast.NewMemoryBroadcaster[Mutation](32, broadcast.KeepSlowSubscribers())
	}
	return d
}

// CreateElement returns a detached element.
func (d *Document) CreateElement(tag string) Element {
	tag = strings.ToLower(tag)
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.wrapLocked(n)
}

// Root returns the <body> element.
func (d *Document) Root() Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.wrapLocked(d.body)
}

// QueryClass returns the first connected element carrying class.
func (d *Document) QueryClass(class string) (Element, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.queryLocked(d.body, func(n *html.Node) bool { return hasClass(n, class) })
}

// ElementByID returns the connected element with the given id.
func (d *Document) ElementByID(id string) (Element, bool) {
	if id == "" {
		return nil, false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.queryLocked(d.body, func(n *html.Node) bool {
		v, ok := getAttr(n, "id")
		return ok && v == id
	})
}

// Click dispatches a click to the connected element with the given id.
// It reports whether the element exists.
func (d *Document) Click(ctx context.Context, id string) bool {
	el, ok := d.ElementByID(id)
	if !ok {
		return false
	}
	el.Click(ctx)
	return true
}

// HTML renders the whole document.
func (d *Document) HTML() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var buf bytes.Buffer
	_ = html.Render(&buf, d.doc)
	return buf.String()
}

// BodyHTML renders the children of <body>.
func (d *Document) BodyHTML() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return renderChildren(d.body)
}

// Subscribe returns a subscriber receiving mutations of connected elements.
func (d *Document) Subscribe(ctx context.Context) broadcast.Subscriber[Mutation] {
	return d.feed.Subscribe(ctx)
}

// Close closes the mutation feed.
func (d *Document) Close() error {
	return d.feed.Close()
}

func (d *Document) wrapLocked(n *html.Node) *Node {
	if w, ok := d.nodes[n]; ok {
		return w
	}
	w := &Node{doc: d, n: n}
	d.nodes[n] = w
	return w
}

// forgetLocked drops wrappers of a detached subtree so the map does not grow
// with removed notifications. Callers holding a wrapper keep using it.
func (d *Document) forgetLocked(n *html.Node) {
	walk(n, func(c *html.Node) bool {
		delete(d.nodes, c)
		return false
	})
}

func (d *Document) queryLocked(from *html.Node, match func(*html.Node) bool) (Element, bool) {
	var found *html.Node
	for c := from.FirstChild; c != nil && found == nil; c = c.NextSibling {
		walk(c, func(n *html.Node) bool {
			if n.Type == html.ElementNode && match(n) {
				found = n
				return true
			}
			return false
		})
	}
	if found == nil {
		return nil, false
	}
	return d.wrapLocked(found), true
}

func (d *Document) connectedLocked(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == d.doc {
			return true
		}
	}
	return false
}

func (d *Document) notify(m Mutation) {
	_ = d.feed.Broadcast(context.Background(), broadcast.Message[Mutation]{Data: m})
}

func (d *Document) own(e Element) (*Node, error) {
	w, ok := e.(*Node)
	if !ok || w.doc != d {
		return nil, ErrForeignElement
	}
	return w, nil
}

// walk visits n and its descendants depth first until visit returns true.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if visit(n) {
		return true
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if walk(c, visit) {
			return true
		}
		c = next
	}
	return false
}

func findElement(root *html.Node, a atom.Atom) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == a {
			found = n
			return true
		}
		return false
	})
	return found
}

func renderChildren(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return buf.String()
		}
	}
	return buf.String()
}

func parseFragment(markup string) ([]*html.Node, error) {
	parent := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), parent)
	if err != nil {
		return nil, errors.Join(ErrParseMarkup, err)
	}
	return nodes, nil
}
