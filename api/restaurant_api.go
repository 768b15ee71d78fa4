package api

import (
	"context"

	"github.com/akinalp/lokanta/models"
)

// RestaurantAPI, /restaurants endpoint'leri.
type RestaurantAPI interface {
	// List, restoran listesini getirir. params nil olabilir.
	List(ctx context.Context, params *models.ListRestaurantsParams) ([]models.Restaurant, error)

	// GetByID, tek restoranı getirir. Yoksa hata ErrNotFound'a unwrap olur.
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)

	Create(ctx context.Context, input *models.CreateRestaurantInput) (*models.Restaurant, error)
	Update(ctx context.Context, id string, input *models.UpdateRestaurantInput) (*models.Restaurant, error)
	Delete(ctx context.Context, id string) error
}
