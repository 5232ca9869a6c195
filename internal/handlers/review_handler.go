package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barberconnect/barberconnect-api/internal/httperr"
	"github.com/barberconnect/barberconnect-api/internal/httpresp"
	"github.com/barberconnect/barberconnect-api/internal/media"
	"github.com/barberconnect/barberconnect-api/internal/middleware"
	"github.com/barberconnect/barberconnect-api/internal/models"
	ucreview "github.com/barberconnect/barberconnect-api/internal/usecase/review"
)

// ======================================================
// HANDLER
// ======================================================

type ReviewHandler struct {
	db       *gorm.DB
	createUC *ucreview.CreateReview
	updateUC *ucreview.UpdateReview
	deleteUC *ucreview.DeleteReview
	storage  *media.Storage
}

func NewReviewHandler(
	db *gorm.DB,
	createUC *ucreview.CreateReview,
	updateUC *ucreview.UpdateReview,
	deleteUC *ucreview.DeleteReview,
	storage *media.Storage,
) *ReviewHandler {
	return &ReviewHandler{
		db:       db,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		storage:  storage,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReviewRequest struct {
	ShopID    uint     `json:"shop_id" binding:"required"`
	BookingID uint     `json:"booking_id" binding:"required"`
	Rating    int      `json:"rating" binding:"required,gte=1,lte=5"`
	Comment   string   `json:"comment" binding:"omitempty,max=500"`
	Photos    []string `json:"photos"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" binding:"omitempty,gte=1,lte=5"`
	Comment *string `json:"comment,omitempty" binding:"omitempty,max=500"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReviewHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	rev, err := h.createUC.Execute(
		c.Request.Context(),
		ucreview.CreateReviewInput{
			CustomerID: customerID,
			ShopID:     req.ShopID,
			BookingID:  req.BookingID,
			Rating:     req.Rating,
			Comment:    req.Comment,
			Photos:     req.Photos,
		},
	)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "booking_not_found":
			httperr.NotFound(c, "booking_not_found", "Booking not found, not completed, or access denied.")
		case "review_already_exists":
			httperr.Conflict(c, "review_already_exists", "Review already exists for this booking.")
		default:
			httperr.Internal(c, "failed_to_create_review", "Failed to create review.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review created successfully",
		"review":  rev,
	})
}

// ======================================================
// LIST (SHOP, PUBLIC)
// ======================================================

func (h *ReviewHandler) ShopReviews(c *gin.Context) {
	shopID := c.Param("shopId")
	page, limit := parsePagination(c)

	q := h.db.Model(&models.Review{}).Where("shop_id = ?", shopID)

	if ratingStr := c.Query("rating"); ratingStr != "" {
		rating, err := strconv.Atoi(ratingStr)
		if err != nil || rating < 1 || rating > 5 {
			httperr.BadRequest(c, "invalid_rating", "Rating filter must be between 1 and 5.")
			return
		}
		q = q.Where("rating = ?", rating)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Failed to fetch reviews.")
		return
	}

	var reviews []models.Review
	if err := q.
		Preload("Customer").
		Preload("Photos").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Failed to fetch reviews.")
		return
	}

	httpresp.Page(c, reviews, total, page, limit)
}

// ======================================================
// LIST (CUSTOMER)
// ======================================================

func (h *ReviewHandler) MyReviews(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)
	page, limit := parsePagination(c)

	q := h.db.Model(&models.Review{}).Where("customer_id = ?", customerID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Failed to fetch reviews.")
		return
	}

	var reviews []models.Review
	if err := q.
		Preload("Booking").
		Preload("Photos").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Failed to fetch reviews.")
		return
	}

	httpresp.Page(c, reviews, total, page, limit)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ReviewHandler) Update(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_review_id", "Invalid review id.")
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	rev, err := h.updateUC.Execute(
		c.Request.Context(),
		ucreview.UpdateReviewInput{
			CustomerID: customerID,
			ReviewID:   uint(id),
			Rating:     req.Rating,
			Comment:    req.Comment,
		},
	)
	if err != nil {
		if httperr.IsBusiness(err, "review_not_found") {
			httperr.NotFound(c, "review_not_found", "Review not found or access denied.")
			return
		}
		httperr.Internal(c, "failed_to_update_review", "Failed to update review.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review updated successfully",
		"review":  rev,
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *ReviewHandler) Delete(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_review_id", "Invalid review id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), customerID, uint(id)); err != nil {
		if httperr.IsBusiness(err, "review_not_found") {
			httperr.NotFound(c, "review_not_found", "Review not found or access denied.")
			return
		}
		httperr.Internal(c, "failed_to_delete_review", "Failed to delete review.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// ======================================================
// PHOTOS
// ======================================================

func (h *ReviewHandler) UploadPhoto(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	if h.storage == nil {
		httperr.Internal(c, "photo_storage_disabled", "Photo uploads are not configured.")
		return
	}

	id := c.Param("id")

	var rev models.Review
	if err := h.db.
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&rev).Error; err != nil {
		httperr.NotFound(c, "review_not_found", "Review not found or access denied.")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Photo file is required.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Failed to read photo.")
		return
	}
	defer file.Close()

	data, err := media.ProcessPhoto(file)
	if err != nil {
		if httperr.IsBusiness(err, "unsupported_image") {
			httperr.BadRequest(c, "unsupported_image", "Photo must be a jpeg, png or webp image.")
			return
		}
		httperr.Internal(c, "failed_to_process_photo", "Failed to process photo.")
		return
	}

	key := fmt.Sprintf("reviews/%d/%s.webp", rev.ID, uuid.NewString())
	url, err := h.storage.Upload(c.Request.Context(), key, data)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Failed to store photo.")
		return
	}

	photo := models.ReviewPhoto{
		ReviewID: rev.ID,
		URL:      url,
	}
	if err := h.db.Create(&photo).Error; err != nil {
		httperr.Internal(c, "failed_to_save_photo", "Failed to save photo.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Photo uploaded successfully",
		"photo":   photo,
	})
}
