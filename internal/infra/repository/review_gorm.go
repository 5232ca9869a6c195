package repository

import (
	"context"

	"gorm.io/gorm"

	bookingdomain "github.com/barberconnect/barberconnect-api/internal/domain/booking"
	domain "github.com/barberconnect/barberconnect-api/internal/domain/review"
	"github.com/barberconnect/barberconnect-api/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

// --------------------------------------------------
// Booking precondition
// --------------------------------------------------

func (r *ReviewGormRepository) GetCompletedBooking(
	ctx context.Context,
	bookingID uint,
	customerID uint,
	shopID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"id = ? AND customer_id = ? AND shop_id = ? AND status = ?",
			bookingID, customerID, shopID, string(bookingdomain.StatusCompleted),
		).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

// --------------------------------------------------
// Review
// --------------------------------------------------

func (r *ReviewGormRepository) HasReviewForBooking(
	ctx context.Context,
	bookingID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ReviewGormRepository) CreateReview(
	ctx context.Context,
	rev *models.Review,
) error {
	return r.db.WithContext(ctx).Create(rev).Error
}

func (r *ReviewGormRepository) GetReviewForCustomer(
	ctx context.Context,
	reviewID uint,
	customerID uint,
) (*models.Review, error) {

	var rev models.Review
	if err := r.db.WithContext(ctx).
		Preload("Photos").
		Where("id = ? AND customer_id = ?", reviewID, customerID).
		First(&rev).Error; err != nil {
		return nil, err
	}

	return &rev, nil
}

func (r *ReviewGormRepository) UpdateReview(
	ctx context.Context,
	rev *models.Review,
) error {
	return r.db.WithContext(ctx).Save(rev).Error
}

func (r *ReviewGormRepository) DeleteReview(
	ctx context.Context,
	rev *models.Review,
) error {
	return r.db.WithContext(ctx).Select("Photos").Delete(rev).Error
}

// --------------------------------------------------
// Aggregate
// --------------------------------------------------

func (r *ReviewGormRepository) ListRatings(
	ctx context.Context,
	shopID uint,
) ([]int, error) {

	var ratings []int
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("shop_id = ?", shopID).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, err
	}

	return ratings, nil
}

func (r *ReviewGormRepository) UpdateShopRating(
	ctx context.Context,
	shopID uint,
	agg domain.Aggregate,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Shop{}).
		Where("id = ?", shopID).
		Updates(map[string]any{
			"average_rating": agg.Average,
			"total_reviews":  agg.Total,
		}).Error
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)
