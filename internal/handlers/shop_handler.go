package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberconnect/barberconnect-api/internal/audit"
	"github.com/barberconnect/barberconnect-api/internal/httperr"
	"github.com/barberconnect/barberconnect-api/internal/middleware"
	"github.com/barberconnect/barberconnect-api/internal/models"
	"github.com/barberconnect/barberconnect-api/internal/realtime"
)

// ======================================================
// HANDLER
// ======================================================

type ShopHandler struct {
	db       *gorm.DB
	notifier *realtime.Notifier
	audit    *audit.Dispatcher
}

func NewShopHandler(db *gorm.DB, notifier *realtime.Notifier, dispatcher *audit.Dispatcher) *ShopHandler {
	return &ShopHandler{
		db:       db,
		notifier: notifier,
		audit:    dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ServiceInput struct {
	Name        string  `json:"name" binding:"required,min=2"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Duration    int     `json:"duration" binding:"required,gte=15"`
}

type OperatingDayInput struct {
	Weekday int    `json:"weekday" binding:"gte=0,lte=6"`
	Open    string `json:"open"`
	Close   string `json:"close"`
	Closed  bool   `json:"closed"`
}

type LocationInput struct {
	Address   string  `json:"address" binding:"required,min=5"`
	Latitude  float64 `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" binding:"gte=-180,lte=180"`
	City      string  `json:"city" binding:"required,min=2"`
	State     string  `json:"state" binding:"required,min=2"`
	ZipCode   string  `json:"zip_code" binding:"required,min=5"`
}

type ContactInput struct {
	Phone string `json:"phone" binding:"required,min=10"`
	Email string `json:"email"`
}

type CreateShopRequest struct {
	ShopName       string              `json:"shop_name" binding:"required,min=2"`
	Description    string              `json:"description"`
	Location       LocationInput       `json:"location" binding:"required"`
	Contact        ContactInput        `json:"contact" binding:"required"`
	Services       []ServiceInput      `json:"services" binding:"required,min=1,dive"`
	OperatingHours []OperatingDayInput `json:"operating_hours" binding:"omitempty,max=7,dive"`
}

type UpdateShopRequest struct {
	ShopName    *string        `json:"shop_name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Location    *LocationInput `json:"location,omitempty"`
	Contact     *ContactInput  `json:"contact,omitempty"`
	IsOpen      *bool          `json:"is_open,omitempty"`

	// Non-nil slices replace the full list.
	Services       []ServiceInput      `json:"services,omitempty" binding:"omitempty,min=1,dive"`
	OperatingHours []OperatingDayInput `json:"operating_hours,omitempty" binding:"omitempty,max=7,dive"`
}

type UpdateWaitingTimeRequest struct {
	WaitingTime *int `json:"waitingTime" binding:"required,gte=0"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ShopHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var count int64
	h.db.Model(&models.Shop{}).Where("barber_id = ?", barberID).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "shop_already_exists", "You already have a shop registered.")
		return
	}

	shop := models.Shop{
		BarberID:    barberID,
		ShopName:    req.ShopName,
		Description: req.Description,

		Address:   req.Location.Address,
		Latitude:  req.Location.Latitude,
		Longitude: req.Location.Longitude,
		City:      req.Location.City,
		State:     req.Location.State,
		ZipCode:   req.Location.ZipCode,

		Phone: req.Contact.Phone,
		Email: req.Contact.Email,

		Services:       servicesFromInput(req.Services),
		OperatingHours: hoursFromInput(req.OperatingHours),

		IsActive: true,
		IsOpen:   true,
	}

	if err := h.db.Create(&shop).Error; err != nil {
		// Unique index on barber_id closes the check-then-insert race.
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "shop_already_exists", "You already have a shop registered.")
			return
		}
		httperr.Internal(c, "failed_to_create_shop", "Failed to create shop.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		UserID:   &barberID,
		Action:   "shop_created",
		Entity:   "shop",
		EntityID: &shop.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Shop created successfully",
		"shop":    shop,
	})
}

// ======================================================
// LIST / SEARCH
// ======================================================

func (h *ShopHandler) List(c *gin.Context) {
	q := h.db.
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Barber").
		Where("is_active = true")

	if city := strings.TrimSpace(c.Query("city")); city != "" {
		q = q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(city)+"%")
	}
	if state := strings.TrimSpace(c.Query("state")); state != "" {
		q = q.Where("LOWER(state) LIKE ?", "%"+strings.ToLower(state)+"%")
	}

	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat != nil || errLng != nil {
			httperr.BadRequest(c, "invalid_coordinates", "Invalid latitude or longitude.")
			return
		}

		radiusKm := 10.0
		if r := c.Query("radius"); r != "" {
			if parsed, err := strconv.ParseFloat(r, 64); err == nil && parsed > 0 {
				radiusKm = parsed
			}
		}

		// Great-circle distance in km; LEAST guards acos from rounding
		// just past 1.0.
		q = q.Where(
			`6371 * acos(LEAST(1.0,
                cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?))
                + sin(radians(?)) * sin(radians(latitude)))) <= ?`,
			lat, lng, lat, radiusKm,
		)
	}

	var shops []models.Shop
	if err := q.
		Order("average_rating DESC, total_reviews DESC").
		Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_shops", "Failed to fetch shops.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"shops": shops})
}

// ======================================================
// GET
// ======================================================

func (h *ShopHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var shop models.Shop
	if err := h.db.
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("OperatingHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("weekday ASC")
		}).
		Preload("Barber").
		First(&shop, id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "shop_not_found", "Shop not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_shop", "Failed to fetch shop.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"shop": shop})
}

// ======================================================
// UPDATE (OWNER)
// ======================================================

func (h *ShopHandler) Update(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var shop models.Shop
	if err := h.db.
		Where("id = ? AND barber_id = ?", id, barberID).
		First(&shop).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "shop_not_found", "Shop not found or access denied.")
			return
		}
		httperr.Internal(c, "failed_to_get_shop", "Failed to fetch shop.")
		return
	}

	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.ShopName != nil {
		shop.ShopName = *req.ShopName
	}
	if req.Description != nil {
		shop.Description = *req.Description
	}
	if req.Location != nil {
		shop.Address = req.Location.Address
		shop.Latitude = req.Location.Latitude
		shop.Longitude = req.Location.Longitude
		shop.City = req.Location.City
		shop.State = req.Location.State
		shop.ZipCode = req.Location.ZipCode
	}
	if req.Contact != nil {
		shop.Phone = req.Contact.Phone
		shop.Email = req.Contact.Email
	}
	if req.IsOpen != nil {
		shop.IsOpen = *req.IsOpen
	}

	// Profile save and list replacements commit together; a failed
	// replace must not leave the shop stripped of its services.
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&shop).Error; err != nil {
			return err
		}
		if req.Services != nil {
			if err := replaceServices(tx, &shop, req.Services); err != nil {
				return err
			}
		}
		if req.OperatingHours != nil {
			if err := replaceHours(tx, &shop, req.OperatingHours); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_shop", "Failed to update shop.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		UserID:   &barberID,
		Action:   "shop_updated",
		Entity:   "shop",
		EntityID: &shop.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Shop updated successfully",
		"shop":    shop,
	})
}

// ======================================================
// WAITING TIME
// ======================================================

func (h *ShopHandler) UpdateWaitingTime(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var shop models.Shop
	if err := h.db.
		Where("id = ? AND barber_id = ?", id, barberID).
		First(&shop).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "shop_not_found", "Shop not found or access denied.")
			return
		}
		httperr.Internal(c, "failed_to_get_shop", "Failed to fetch shop.")
		return
	}

	var req UpdateWaitingTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_waiting_time", "Waiting time must be a non-negative integer.")
		return
	}

	shop.CurrentWaitingTime = *req.WaitingTime
	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_waiting_time", "Failed to update waiting time.")
		return
	}

	h.notifier.Publish(
		c.Request.Context(),
		realtime.NewWaitingTimeEvent(shop.ID, shop.CurrentWaitingTime),
	)

	h.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		UserID:   &barberID,
		Action:   "waiting_time_updated",
		Entity:   "shop",
		EntityID: &shop.ID,
		Metadata: map[string]any{"waiting_time": shop.CurrentWaitingTime},
	})

	c.JSON(http.StatusOK, gin.H{
		"message":     "Waiting time updated successfully",
		"waitingTime": shop.CurrentWaitingTime,
	})
}

// ======================================================
// MY SHOP
// ======================================================

func (h *ShopHandler) MyShop(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var shop models.Shop
	if err := h.db.
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("OperatingHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("weekday ASC")
		}).
		Where("barber_id = ?", barberID).
		First(&shop).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "shop_not_found", "No shop found for this barber.")
			return
		}
		httperr.Internal(c, "failed_to_get_shop", "Failed to fetch shop.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"shop": shop})
}

// ======================================================
// HELPERS
// ======================================================

func servicesFromInput(in []ServiceInput) []models.ShopService {
	out := make([]models.ShopService, 0, len(in))
	for i, s := range in {
		out = append(out, models.ShopService{
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
			DurationMin: s.Duration,
			Position:    i,
		})
	}
	return out
}

func hoursFromInput(in []OperatingDayInput) []models.OperatingHours {
	out := make([]models.OperatingHours, 0, len(in))
	for _, d := range in {
		out = append(out, models.OperatingHours{
			Weekday: d.Weekday,
			Open:    d.Open,
			Close:   d.Close,
			Closed:  d.Closed,
		})
	}
	return out
}

func replaceServices(tx *gorm.DB, shop *models.Shop, in []ServiceInput) error {
	if err := tx.Where("shop_id = ?", shop.ID).Delete(&models.ShopService{}).Error; err != nil {
		return err
	}

	services := servicesFromInput(in)
	for i := range services {
		services[i].ShopID = shop.ID
	}
	if len(services) == 0 {
		return nil
	}
	if err := tx.Create(&services).Error; err != nil {
		return err
	}

	shop.Services = services
	return nil
}

func replaceHours(tx *gorm.DB, shop *models.Shop, in []OperatingDayInput) error {
	if err := tx.Where("shop_id = ?", shop.ID).Delete(&models.OperatingHours{}).Error; err != nil {
		return err
	}

	hours := hoursFromInput(in)
	for i := range hours {
		hours[i].ShopID = shop.ID
	}
	if len(hours) == 0 {
		return nil
	}
	if err := tx.Create(&hours).Error; err != nil {
		return err
	}

	shop.OperatingHours = hours
	return nil
}
