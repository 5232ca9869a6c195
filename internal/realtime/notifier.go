package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

const channelPattern = "shop-events:*"

func channelFor(shopID uint) string {
	return fmt.Sprintf("shop-events:%d", shopID)
}

// Notifier is the publish side of the shop channels. With a redis client
// attached, events travel through pub/sub so every API instance relays
// them to its local subscribers; without one, fan-out stays in-process.
// Either way delivery is fire-and-forget.
type Notifier struct {
	hub *Hub
	rdb *redis.Client
}

func NewNotifier(rdb *redis.Client) *Notifier {
	n := &Notifier{
		hub: NewHub(),
		rdb: rdb,
	}

	if rdb != nil {
		go n.relay()
	}

	return n
}

// relay feeds redis pub/sub messages into the local hub.
func (n *Notifier) relay() {
	ctx := context.Background()
	pubsub := n.rdb.PSubscribe(ctx, channelPattern)

	for msg := range pubsub.Channel() {
		var ev Event
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			log.Println("realtime: dropping malformed event:", err)
			continue
		}
		n.hub.Broadcast(ev, nil)
	}
}

// Publish sends ev to the shop channel. Errors are logged and swallowed;
// notification is never allowed to fail a request.
func (n *Notifier) Publish(ctx context.Context, ev Event) {
	if n.rdb == nil {
		n.hub.Broadcast(ev, nil)
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		log.Println("realtime: marshal event failed:", err)
		return
	}

	if err := n.rdb.Publish(ctx, channelFor(ev.ShopID), payload).Err(); err != nil {
		log.Println("realtime: publish failed:", err)
		// local subscribers still get the event
		n.hub.Broadcast(ev, nil)
	}
}

func (n *Notifier) Subscribe(shopID uint) *Subscriber {
	return n.hub.Subscribe(shopID)
}

func (n *Notifier) Unsubscribe(sub *Subscriber) {
	n.hub.Unsubscribe(sub)
}
