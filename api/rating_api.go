package api

import (
	"context"

	"github.com/akinalp/lokanta/models"
)

// RatingAPI, /restaurants/:id/ratings endpoint'leri.
type RatingAPI interface {
	// Get, agregat + oturumdaki kullanıcının kendi puanını getirir.
	// Agregat server'da hesaplanır; client her yazımdan sonra bunu
	// yeniden çeker, asla lokal hesaplamaz.
	Get(ctx context.Context, restaurantID string) (*models.RatingSummary, error)

	// Set, kullanıcının puanını yazar (upsert).
	Set(ctx context.Context, restaurantID string, input *models.SetRatingInput) (*models.Rating, error)
}
