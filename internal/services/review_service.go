package services

import (
	"context"

	"golang-food-storefront/internal/models"
	"golang-food-storefront/pkg/gateway"
)

type ReviewService struct {
	client *gateway.Client
}

func NewReviewService(client *gateway.Client) *ReviewService {
	return &ReviewService{client: client}
}

type AddReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

func (s *ReviewService) List(ctx context.Context, ts gateway.TokenSource, restaurantID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.client.Get(ctx, "/api/reviews/"+restaurantID, ts, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewService) Add(ctx context.Context, ts gateway.TokenSource, restaurantID string, req *AddReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := s.client.Post(ctx, "/api/reviews/"+restaurantID, ts, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) Delete(ctx context.Context, ts gateway.TokenSource, reviewID string) error {
	return s.client.Delete(ctx, "/api/reviews/"+reviewID, ts, nil)
}
