package realtime

import "time"

const (
	EventWaitingTimeUpdated   = "waiting-time-updated"
	EventBookingStatusChanged = "booking-status-changed"
)

// Event is a shop-channel notification. Delivery is at-most-once: no
// persistence, no replay, slow subscribers miss events.
type Event struct {
	Type      string    `json:"type"`
	ShopID    uint      `json:"shop_id"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

type WaitingTimePayload struct {
	ShopID      uint `json:"shopId"`
	WaitingTime int  `json:"waitingTime"`
}

func NewWaitingTimeEvent(shopID uint, waitingTime int) Event {
	return Event{
		Type:   EventWaitingTimeUpdated,
		ShopID: shopID,
		Data: WaitingTimePayload{
			ShopID:      shopID,
			WaitingTime: waitingTime,
		},
		Timestamp: time.Now(),
	}
}

func NewBookingStatusEvent(shopID uint, booking any) Event {
	return Event{
		Type:      EventBookingStatusChanged,
		ShopID:    shopID,
		Data:      booking,
		Timestamp: time.Now(),
	}
}
