package review

import (
	"context"

	"github.com/barberconnect/barberconnect-api/internal/audit"
	domain "github.com/barberconnect/barberconnect-api/internal/domain/review"
	"github.com/barberconnect/barberconnect-api/internal/httperr"
	"github.com/barberconnect/barberconnect-api/internal/models"
)

type UpdateReviewInput struct {
	CustomerID uint
	ReviewID   uint

	Rating  *int
	Comment *string
}

type UpdateReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateReview {
	return &UpdateReview{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateReview) Execute(
	ctx context.Context,
	in UpdateReviewInput,
) (*models.Review, error) {

	rev, err := uc.repo.GetReviewForCustomer(ctx, in.ReviewID, in.CustomerID)
	if err != nil {
		return nil, httperr.ErrBusiness("review_not_found")
	}

	ratingChanged := false
	if in.Rating != nil && *in.Rating != rev.Rating {
		rev.Rating = *in.Rating
		ratingChanged = true
	}
	if in.Comment != nil {
		rev.Comment = *in.Comment
	}

	if err := uc.repo.UpdateReview(ctx, rev); err != nil {
		return nil, err
	}

	if ratingChanged {
		if err := recomputeShopRating(ctx, uc.repo, rev.ShopID); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   rev.ShopID,
		UserID:   &in.CustomerID,
		Action:   "review_updated",
		Entity:   "review",
		EntityID: &rev.ID,
	})

	return rev, nil
}
