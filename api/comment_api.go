package api

import (
	"context"

	"github.com/akinalp/lokanta/models"
)

// CommentAPI, /restaurants/:id/comments endpoint'leri.
// Yorumlar append/delete-only — edit yoktur.
type CommentAPI interface {
	ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Comment, error)
	Add(ctx context.Context, restaurantID string, input *models.AddCommentInput) (*models.Comment, error)
	Delete(ctx context.Context, restaurantID, commentID string) error
}
