package handlers

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberconnect/barberconnect-api/internal/httperr"
	"github.com/barberconnect/barberconnect-api/internal/models"
	"github.com/barberconnect/barberconnect-api/internal/realtime"
)

// ======================================================
// HANDLER
// ======================================================

type RealtimeHandler struct {
	db       *gorm.DB
	notifier *realtime.Notifier
}

func NewRealtimeHandler(db *gorm.DB, notifier *realtime.Notifier) *RealtimeHandler {
	return &RealtimeHandler{db: db, notifier: notifier}
}

// ======================================================
// SHOP EVENT STREAM (SSE)
// ======================================================

// ShopEvents streams waiting-time and booking-status events for a shop
// until the client disconnects.
func (h *RealtimeHandler) ShopEvents(c *gin.Context) {
	shopID, err := strconv.ParseUint(c.Param("shopId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "Invalid shop id.")
		return
	}

	var shop models.Shop
	if err := h.db.
		Select("id").
		Where("id = ? AND is_active = ?", shopID, true).
		First(&shop).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	sub := h.notifier.Subscribe(uint(shopID))
	defer h.notifier.Unsubscribe(sub)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	ctx := c.Request.Context()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-sub.Events():
			if !ok {
				return false
			}
			c.SSEvent(ev.Type, ev)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
