package server

import (
	"encoding/json"
	"sync"

	"github.com/playperu/marcopolo/internal/game"
)

// sseMessage is one frame queued for a subscriber.
type sseMessage struct {
	Event string
	Data  []byte
}

// Broker is an in-process pub/sub for SSE events, keyed by session ID.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan sseMessage]struct{}

	done      chan struct{}
	closeOnce sync.Once
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan sseMessage]struct{}),
		done: make(chan struct{}),
	}
}

// Close tells every open stream to end. It is registered as a server
// shutdown hook, since http.Server.Shutdown does not cancel requests.
func (b *Broker) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}

// Done is closed once the broker shuts down.
func (b *Broker) Done() <-chan struct{} { return b.done }

// Subscribe returns a channel that receives the events of one session.
func (b *Broker) Subscribe(sessionID string) chan sseMessage {
	ch := make(chan sseMessage, 16)
	b.mu.Lock()
	if b.subs[sessionID] == nil {
		b.subs[sessionID] = make(map[chan sseMessage]struct{})
	}
	b.subs[sessionID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the session's subscribers.
func (b *Broker) Unsubscribe(sessionID string, ch chan sseMessage) {
	b.mu.Lock()
	delete(b.subs[sessionID], ch)
	if len(b.subs[sessionID]) == 0 {
		delete(b.subs, sessionID)
	}
	b.mu.Unlock()
}

// Publish sends an engine event to all subscribers of the session. It never
// blocks; it runs with the session lock held.
func (b *Broker) Publish(sessionID string, e game.Event) {
	data, _ := json.Marshal(e)
	msg := sseMessage{Event: string(e.Type), Data: data}
	b.mu.RLock()
	for ch := range b.subs[sessionID] {
		select {
		case ch <- msg:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}

