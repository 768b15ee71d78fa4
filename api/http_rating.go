package api

import (
	"context"
	"net/http"

	"github.com/akinalp/lokanta/httpclient"
	"github.com/akinalp/lokanta/models"
)

// httpRatingAPI, RatingAPI interface'inin HTTP implementasyonu.
type httpRatingAPI struct {
	client *httpclient.Client
}

// NewHTTPRatingAPI, constructor.
func NewHTTPRatingAPI(client *httpclient.Client) RatingAPI {
	return &httpRatingAPI{client: client}
}

func (a *httpRatingAPI) Get(ctx context.Context, restaurantID string) (*models.RatingSummary, error) {
	var summary models.RatingSummary
	if err := a.client.Do(ctx, http.MethodGet, httpclient.EndpointRestaurantRatings(restaurantID), nil, nil, &summary, nil); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (a *httpRatingAPI) Set(ctx context.Context, restaurantID string, input *models.SetRatingInput) (*models.Rating, error) {
	var rating models.Rating
	if err := a.client.Do(ctx, http.MethodPut, httpclient.EndpointRestaurantRatings(restaurantID), nil, input, &rating, nil); err != nil {
		return nil, err
	}
	return &rating, nil
}
