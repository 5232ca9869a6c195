package review

import (
	"context"

	"github.com/barberconnect/barberconnect-api/internal/audit"
	domain "github.com/barberconnect/barberconnect-api/internal/domain/review"
	"github.com/barberconnect/barberconnect-api/internal/httperr"
)

type DeleteReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteReview {
	return &DeleteReview{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteReview) Execute(
	ctx context.Context,
	customerID uint,
	reviewID uint,
) error {

	rev, err := uc.repo.GetReviewForCustomer(ctx, reviewID, customerID)
	if err != nil {
		return httperr.ErrBusiness("review_not_found")
	}

	shopID := rev.ShopID
	revID := rev.ID

	if err := uc.repo.DeleteReview(ctx, rev); err != nil {
		return err
	}

	if err := recomputeShopRating(ctx, uc.repo, shopID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &customerID,
		Action:   "review_deleted",
		Entity:   "review",
		EntityID: &revID,
	})

	return nil
}
