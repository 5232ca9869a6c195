package review

import (
	"context"

	"github.com/barberconnect/barberconnect-api/internal/audit"
	domain "github.com/barberconnect/barberconnect-api/internal/domain/review"
	"github.com/barberconnect/barberconnect-api/internal/httperr"
	"github.com/barberconnect/barberconnect-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReviewInput struct {
	CustomerID uint
	ShopID     uint
	BookingID  uint

	Rating  int
	Comment string
	Photos  []string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReview {
	return &CreateReview{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	// --------------------------------------------------
	// 1. Booking must be the customer's, on this shop, completed
	// --------------------------------------------------
	if _, err := uc.repo.GetCompletedBooking(
		ctx,
		in.BookingID,
		in.CustomerID,
		in.ShopID,
	); err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	// --------------------------------------------------
	// 2. One review per booking
	// --------------------------------------------------
	exists, err := uc.repo.HasReviewForBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("review_already_exists")
	}

	photos := make([]models.ReviewPhoto, 0, len(in.Photos))
	for _, url := range in.Photos {
		photos = append(photos, models.ReviewPhoto{URL: url})
	}

	rev := &models.Review{
		CustomerID: in.CustomerID,
		ShopID:     in.ShopID,
		BookingID:  in.BookingID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		Photos:     photos,
		// No verification workflow exists; a review against a completed
		// booking is verified by construction.
		IsVerified: true,
	}

	if err := uc.repo.CreateReview(ctx, rev); err != nil {
		// The unique index on booking_id catches the create/create race.
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("review_already_exists")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 3. Recompute the shop aggregate, synchronously
	// --------------------------------------------------
	if err := recomputeShopRating(ctx, uc.repo, in.ShopID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   in.ShopID,
		UserID:   &in.CustomerID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: &rev.ID,
	})

	return rev, nil
}

// recomputeShopRating loads every rating for the shop and writes the
// derived aggregate back. Full scan on each mutation; the cached value is
// never left stale.
func recomputeShopRating(
	ctx context.Context,
	repo domain.Repository,
	shopID uint,
) error {

	ratings, err := repo.ListRatings(ctx, shopID)
	if err != nil {
		return err
	}

	return repo.UpdateShopRating(ctx, shopID, domain.Recompute(ratings))
}
