// AngelaMos | 2026
// service.go

package company

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Upsert(
	ctx context.Context,
	userID string,
	req UpsertProfileRequest,
) (*Profile, error) {
	p := &Profile{
		ID:               uuid.New().String(),
		UserID:           userID,
		CompanyName:      req.CompanyName,
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		Zip:              req.Zip,
		Phone:            req.Phone,
		Email:            req.Email,
		LogoURL:          req.LogoURL,
		PaypalLink:       req.PaypalLink,
		StripeLink:       req.StripeLink,
		VenmoLink:        req.VenmoLink,
		LemonSqueezyLink: req.LemonSqueezyLink,
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) GetByUserID(
	ctx context.Context,
	userID string,
) (*Profile, error) {
	return s.repo.GetByUserID(ctx, userID)
}
