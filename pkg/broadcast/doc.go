// Package broadcast provides type-safe, non-blocking one-to-many messaging.
//
//	feed := broadcast.NewMemoryBroadcaster[string](16, broadcast.KeepSlowSubscribers())
//	defer feed.Close()
//
//	sub := feed.Subscribe(ctx)
//	defer sub.Close()
//
//	_ = feed.Broadcast(ctx, broadcast.Message[string]{Data: "changed"})
//
//	for msg := range sub.Receive(ctx) {
//		fmt.Println(msg.Data)
//	}
//
// Broadcast never blocks. A subscriber whose buffer is full either loses the
// message and is unsubscribed (default) or only loses the message
// (KeepSlowSubscribers). Subscribers are removed when their context is
// cancelled or the broadcaster is closed.
package broadcast
