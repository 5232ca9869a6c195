package audit

import "log"

type Event struct {
	ShopID   uint
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher writes audit entries off the request path. The queue is
// bounded and events are dropped when it fills; auditing never fails an
// API call.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

// Nop returns a dispatcher that silently drops every event.
func Nop() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.ShopID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d.queue == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
