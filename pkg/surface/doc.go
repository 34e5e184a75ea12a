// Package surface defines the DOM-like rendering contract consumed by the
// notification engine and ships Document, an in-memory implementation on top
// of golang.org/x/net/html.
//
// Document supports the operations a notification needs: create an element,
// set attributes, classes and inline style, replace inner markup, query by
// class, append, insert-before and remove. Click handlers are registered on
// elements and dispatched with Click; they run without the document lock, so a
// handler may mutate the document freely.
//
// Every change to a connected element is published as a Mutation on the
// document's broadcast feed, which lets a server push fresh snapshots to
// browsers:
//
//	doc := surface.NewDocument()
//	sub := doc.Subscribe(ctx)
//	for range sub.Receive(ctx) {
//		render(doc.BodyHTML())
//	}
package surface
