// Package outboxtest provides an outbox writer that remembers what was staged.
package outboxtest

import (
	"sync"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/pkg/outbox"
)

// Recorder records staged events and returns real outbox mutations.
type Recorder struct {
	mu     sync.Mutex
	repo   *outbox.Repo
	Events []*outbox.Event
}

func NewRecorder() *Recorder {
	return &Recorder{repo: outbox.NewRepo()}
}

func (o *Recorder) InsertMut(e *outbox.Event) *spanner.Mutation {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Events = append(o.Events, e)
	return o.repo.InsertMut(e)
}

// Types lists the staged event types in order.
func (o *Recorder) Types() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, 0, len(o.Events))
	for _, e := range o.Events {
		out = append(out, e.EventType)
	}
	return out
}
