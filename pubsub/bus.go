package pubsub

import (
	"sync"
)

type Topic string

const (
	NewPendingOrder Topic = "NEW_PENDING_ORDER"
	NewCheckedOrder Topic = "NEW_CHECKED_ORDER"
	NewOrderUpdate  Topic = "NEW_ORDER_UPDATE"
)

// Predicate decides at delivery time whether a payload goes to a
// subscriber. It may close over state captured at subscription setup
// (the subscriber's user id, a watched order id) plus the payload.
type Predicate func(payload any) bool

// subscriberBuffer bounds how far a slow subscriber can lag before
// events are dropped. Delivery is best-effort, at-most-once.
const subscriberBuffer = 16

type Subscription struct {
	C     chan any
	topic Topic
	pred  Predicate
}

// Bus is an in-process publish/subscribe channel keyed by topic.
// It is constructed once at startup and injected; there is no package
// level instance.
type Bus struct {
	mu   sync.RWMutex
	subs map[Topic]map[*Subscription]struct{}
}

func New() *Bus {
	return &Bus{subs: make(map[Topic]map[*Subscription]struct{})}
}

// Subscribe registers a subscriber on topic. A nil predicate matches
// every payload. The caller must Unsubscribe when done pulling from C.
func (b *Bus) Subscribe(topic Topic, pred Predicate) *Subscription {
	sub := &Subscription{
		C:     make(chan any, subscriberBuffer),
		topic: topic,
		pred:  pred,
	}

	b.mu.Lock()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[*Subscription]struct{})
	}
	b.subs[topic][sub] = struct{}{}
	b.mu.Unlock()

	return sub
}

// Unsubscribe removes the subscriber and closes its channel. Safe to
// call once per subscription; the predicate closure is released here.
func (b *Bus) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := b.subs[sub.topic]
	if !ok {
		return
	}
	if _, ok := set[sub]; !ok {
		return
	}
	delete(set, sub)
	close(sub.C)
}

// Publish delivers payload to every current subscriber of topic whose
// predicate accepts it. A subscriber with a full buffer is skipped, not
// waited on; publishing never blocks on a slow consumer.
func (b *Bus) Publish(topic Topic, payload any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs[topic] {
		if sub.pred != nil && !sub.pred(payload) {
			continue
		}
		select {
		case sub.C <- payload:
		default:
		}
	}
}

// SubscriberCount reports how many subscribers topic currently has.
func (b *Bus) SubscriberCount(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}
