package review

import (
	"context"

	"github.com/barberconnect/barberconnect-api/internal/models"
)

type Repository interface {
	// -------- Booking precondition --------

	// GetCompletedBooking returns the booking only when it belongs to the
	// customer, references the shop and has status completed.
	GetCompletedBooking(
		ctx context.Context,
		bookingID uint,
		customerID uint,
		shopID uint,
	) (*models.Booking, error)

	// -------- Review --------
	HasReviewForBooking(
		ctx context.Context,
		bookingID uint,
	) (bool, error)

	CreateReview(
		ctx context.Context,
		r *models.Review,
	) error

	GetReviewForCustomer(
		ctx context.Context,
		reviewID uint,
		customerID uint,
	) (*models.Review, error)

	UpdateReview(
		ctx context.Context,
		r *models.Review,
	) error

	DeleteReview(
		ctx context.Context,
		r *models.Review,
	) error

	// -------- Aggregate --------
	ListRatings(
		ctx context.Context,
		shopID uint,
	) ([]int, error)

	UpdateShopRating(
		ctx context.Context,
		shopID uint,
		agg Aggregate,
	) error
}
