package memchain

import (
	"slices"
	"sync"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/mining"
)

type event func(l mining.Listener)

// notifier delivers events to listeners in publication order on its own
// goroutine. Publishing never waits for listeners, so a listener may block
// on a lock held by a goroutine that is appending a block.
type notifier struct {
	mu        sync.Mutex
	cond      *sync.Cond
	listeners []mining.Listener
	queue     []event
	busy      bool
	closed    bool
}

func newNotifier() *notifier {
	n := &notifier{}
	n.cond = sync.NewCond(&n.mu)
	go n.loop()
	return n
}

func (n *notifier) add(l mining.Listener) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, l)
}

func (n *notifier) remove(l mining.Listener) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = slices.DeleteFunc(n.listeners, func(x mining.Listener) bool { return x == l })
}

func (n *notifier) publish(events []event) {
	if len(events) == 0 {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.queue = append(n.queue, events...)
	n.cond.Broadcast()
}

func (n *notifier) loop() {
	n.mu.Lock()
	for {
		for len(n.queue) == 0 && !n.closed {
			n.cond.Wait()
		}
		if len(n.queue) == 0 {
			n.mu.Unlock()
			return
		}
		ev := n.queue[0]
		n.queue = n.queue[1:]
		listeners := slices.Clone(n.listeners)
		n.busy = true
		n.mu.Unlock()

		for _, l := range listeners {
			ev(l)
		}

		n.mu.Lock()
		n.busy = false
		n.cond.Broadcast()
	}
}

// flush waits until every published event has been delivered. It must not
// be called from a listener.
func (n *notifier) flush() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for len(n.queue) > 0 || n.busy {
		n.cond.Wait()
	}
}

// close delivers what is queued and stops the goroutine.
func (n *notifier) close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	n.cond.Broadcast()
}
