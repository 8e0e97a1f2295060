package server

import (
	"sync"
)

// ReloadNotifier fans out dev reload signals to every open browser stream.
type ReloadNotifier struct {
	mu      sync.Mutex
	closed  bool
	nextID  int
	clients map[int]chan struct{}
}

func NewReloadNotifier() *ReloadNotifier {
	return &ReloadNotifier{
		clients: make(map[int]chan struct{}),
	}
}

// Subscribe returns a channel that receives a value on every change and a
// cancel func that must be called once the subscriber is done. After Close the
// returned channel is nil.
func (n *ReloadNotifier) Subscribe() (func(), <-chan struct{}) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return func() {}, nil
	}

	id := n.nextID
	n.nextID++

	ch := make(chan struct{}, 1)
	n.clients[id] = ch

	return func() {
		n.unsubscribe(id)
	}, ch
}

func (n *ReloadNotifier) unsubscribe(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if ch, ok := n.clients[id]; ok {
		close(ch)
		delete(n.clients, id)
	}
}

// Notify never blocks, a subscriber with a pending signal is skipped.
func (n *ReloadNotifier) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}

	for _, ch := range n.clients {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Close ends every subscription.
func (n *ReloadNotifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.closed = true

	for id, ch := range n.clients {
		close(ch)
		delete(n.clients, id)
	}
}

func (n *ReloadNotifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.clients)
}
