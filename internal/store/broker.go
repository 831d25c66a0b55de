package store

import (
	"sync"
	"time"

	"github.com/hanafi-dev/sentra-portal-api/internal/observability"
)

const eventBufferSize = 16

// Event announces that one collection changed.
type Event struct {
	Collection string    `json:"collection"`
	At         time.Time `json:"at"`
}

// CollectionAll subscribes to changes on every collection.
const CollectionAll = "*"

type broker struct {
	mu          sync.RWMutex
	subscribers map[chan Event]string
}

func newBroker() *broker {
	return &broker{subscribers: make(map[chan Event]string)}
}

func (b *broker) subscribe(collection string) (<-chan Event, func()) {
	channel := make(chan Event, eventBufferSize)

	b.mu.Lock()
	b.subscribers[channel] = collection
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subscribers[channel]; ok {
			delete(b.subscribers, channel)
			close(channel)
		}
		b.mu.Unlock()
	}

	return channel, cancel
}

func (b *broker) publish(collection string) {
	observability.StoreMutations().WithLabelValues(collection).Inc()

	event := Event{Collection: collection, At: time.Now().UTC()}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for channel, filter := range b.subscribers {
		if filter != CollectionAll && collection != CollectionAll && filter != collection {
			continue
		}
		select {
		case channel <- event:
		default:
			// Slow subscribers drop events rather than block mutations.
		}
	}
}
