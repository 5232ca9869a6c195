package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bookingdomain "github.com/barberconnect/barberconnect-api/internal/domain/booking"
	"github.com/barberconnect/barberconnect-api/internal/httperr"
	"github.com/barberconnect/barberconnect-api/internal/httpresp"
	"github.com/barberconnect/barberconnect-api/internal/middleware"
	"github.com/barberconnect/barberconnect-api/internal/models"
	"github.com/barberconnect/barberconnect-api/internal/realtime"
	ucbooking "github.com/barberconnect/barberconnect-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db       *gorm.DB
	createUC *ucbooking.CreateBooking
	cancelUC *ucbooking.CancelBooking
	statusUC *ucbooking.UpdateBookingStatus
	notifier *realtime.Notifier
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *ucbooking.CreateBooking,
	cancelUC *ucbooking.CancelBooking,
	statusUC *ucbooking.UpdateBookingStatus,
	notifier *realtime.Notifier,
) *BookingHandler {
	return &BookingHandler{
		db:       db,
		createUC: createUC,
		cancelUC: cancelUC,
		statusUC: statusUC,
		notifier: notifier,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookingServiceInput struct {
	Name     string  `json:"name" binding:"required,min=2"`
	Price    float64 `json:"price" binding:"gte=0"`
	Duration int     `json:"duration" binding:"required,gte=15"`
}

type CreateBookingRequest struct {
	ShopID          uint                `json:"shop_id" binding:"required"`
	Service         BookingServiceInput `json:"service" binding:"required"`
	AppointmentDate string              `json:"appointment_date" binding:"required"`
	AppointmentTime string              `json:"appointment_time" binding:"required"`
	Notes           string              `json:"notes"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		ucbooking.CreateBookingInput{
			CustomerID:      customerID,
			ShopID:          req.ShopID,
			ServiceName:     req.Service.Name,
			ServicePrice:    req.Service.Price,
			ServiceDuration: req.Service.Duration,
			Date:            req.AppointmentDate,
			Time:            req.AppointmentTime,
			Notes:           req.Notes,
		},
	)
	if err != nil {
		h.mapCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": b,
	})
}

func (h *BookingHandler) mapCreateError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "shop_not_found":
		httperr.NotFound(c, "shop_not_found", "Shop not found or inactive.")
	case "service_not_available":
		httperr.BadRequest(c, "service_not_available", "Service not available at this shop.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid appointment date or time.")
	case "appointment_in_past":
		httperr.BadRequest(c, "appointment_in_past", "Appointment must be scheduled for the future.")
	case "slot_already_booked":
		httperr.Conflict(c, "slot_already_booked", "Time slot is already booked.")
	default:
		httperr.Internal(c, "failed_to_create_booking", "Failed to create booking.")
	}
}

// ======================================================
// LIST (CUSTOMER)
// ======================================================

func (h *BookingHandler) MyBookings(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)
	page, limit := parsePagination(c)

	q := h.db.Model(&models.Booking{}).Where("customer_id = ?", customerID)

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to fetch bookings.")
		return
	}

	var bookings []models.Booking
	if err := q.
		Preload("Shop").
		Order("appointment_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to fetch bookings.")
		return
	}

	httpresp.Page(c, bookings, total, page, limit)
}

// ======================================================
// LIST (SHOP OWNER)
// ======================================================

func (h *BookingHandler) ShopBookings(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	shopID := c.Param("shopId")
	page, limit := parsePagination(c)

	var shop models.Shop
	if err := h.db.
		Where("id = ? AND barber_id = ?", shopID, barberID).
		First(&shop).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found or access denied.")
		return
	}

	q := h.db.Model(&models.Booking{}).Where("shop_id = ?", shop.ID)

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.ParseInLocation(bookingdomain.DateLayout, dateStr, time.Local)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		start := date
		end := start.Add(24 * time.Hour)
		q = q.Where("appointment_at >= ? AND appointment_at < ?", start, end)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to fetch bookings.")
		return
	}

	var bookings []models.Booking
	if err := q.
		Preload("Customer").
		Order("appointment_at ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to fetch bookings.")
		return
	}

	httpresp.Page(c, bookings, total, page, limit)
}

// ======================================================
// UPDATE STATUS (SHOP OWNER)
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	b, err := h.statusUC.Execute(
		c.Request.Context(),
		barberID,
		uint(id),
		bookingdomain.Status(req.Status),
	)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "invalid_status":
			httperr.BadRequest(c, "invalid_status", "Invalid status.")
		case "booking_not_found":
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case "access_denied":
			httperr.Forbidden(c, "access_denied", "Access denied.")
		case "slot_already_booked":
			httperr.Conflict(c, "slot_already_booked", "Time slot is already booked.")
		default:
			httperr.Internal(c, "failed_to_update_booking", "Failed to update booking status.")
		}
		return
	}

	h.notifier.Publish(
		c.Request.Context(),
		realtime.NewBookingStatusEvent(b.ShopID, b),
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking status updated successfully",
		"booking": b,
	})
}

// ======================================================
// CANCEL (CUSTOMER)
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), customerID, uint(id))
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "booking_not_found":
			httperr.NotFound(c, "booking_not_found", "Booking not found or access denied.")
		case "invalid_state":
			httperr.BadRequest(c, "invalid_state", "Cannot cancel this booking.")
		default:
			httperr.Internal(c, "failed_to_cancel_booking", "Failed to cancel booking.")
		}
		return
	}

	h.notifier.Publish(
		c.Request.Context(),
		realtime.NewBookingStatusEvent(b.ShopID, b),
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking cancelled successfully",
		"booking": b,
	})
}
