package realtime

import "sync"

const subscriberBuffer = 16

// Subscriber is one client listening on a shop channel.
type Subscriber struct {
	shopID uint
	ch     chan Event
}

func (s *Subscriber) ShopID() uint {
	return s.shopID
}

func (s *Subscriber) Events() <-chan Event {
	return s.ch
}

// Hub fans events out to the subscribers of a shop channel. Sends never
// block: a subscriber whose buffer is full misses the event.
type Hub struct {
	mu    sync.RWMutex
	shops map[uint]map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{
		shops: make(map[uint]map[*Subscriber]struct{}),
	}
}

func (h *Hub) Subscribe(shopID uint) *Subscriber {
	sub := &Subscriber{
		shopID: shopID,
		ch:     make(chan Event, subscriberBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.shops[shopID] == nil {
		h.shops[shopID] = make(map[*Subscriber]struct{})
	}
	h.shops[shopID][sub] = struct{}{}

	return sub
}

func (h *Hub) Unsubscribe(sub *Subscriber) {
	if sub == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.shops[sub.shopID]
	if _, ok := subs[sub]; !ok {
		return
	}

	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.shops, sub.shopID)
	}
	close(sub.ch)
}

// Broadcast delivers ev to every subscriber of its shop except sender
// (which may be nil).
func (h *Hub) Broadcast(ev Event, sender *Subscriber) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.shops[ev.ShopID] {
		if sub == sender {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			// full buffer: the subscriber misses this event
		}
	}
}
