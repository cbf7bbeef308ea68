package host

import (
	"context"
	"sync"
)

// Notice is one info dialog shown to the user.
type Notice struct {
	Title   string
	Message string
}

// Notices collects the info dialogs raised while serving one request.
type Notices struct {
	mu   sync.Mutex
	list []Notice
}

// List returns the collected notices in the order they were shown.
func (n *Notices) List() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notice(nil), n.list...)
}

type noticesKey struct{}

// WithNotices returns a context that InfoLog records into.
func WithNotices(ctx context.Context) (context.Context, *Notices) {
	n := &Notices{}
	return context.WithValue(ctx, noticesKey{}, n), n
}

// InfoLog is the info dialog of the web front end. Shown notices are
// recorded on the request context and rendered with the next page; without
// a collector they are dropped.
type InfoLog struct{}

func (InfoLog) Show(ctx context.Context, title, message string) {
	n, ok := ctx.Value(noticesKey{}).(*Notices)
	if !ok {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.list = append(n.list, Notice{Title: title, Message: message})
}
