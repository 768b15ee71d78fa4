package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/akinalp/lokanta/httpclient"
	"github.com/akinalp/lokanta/models"
)

// httpRestaurantAPI, RestaurantAPI interface'inin HTTP implementasyonu.
type httpRestaurantAPI struct {
	client *httpclient.Client
}

// NewHTTPRestaurantAPI, constructor.
func NewHTTPRestaurantAPI(client *httpclient.Client) RestaurantAPI {
	return &httpRestaurantAPI{client: client}
}

func (a *httpRestaurantAPI) List(ctx context.Context, params *models.ListRestaurantsParams) ([]models.Restaurant, error) {
	var query url.Values
	if params != nil {
		query = url.Values{}
		if params.CuisineType != nil {
			query.Set("cuisineType", *params.CuisineType)
		}
		if params.Limit != nil {
			query.Set("limit", strconv.Itoa(*params.Limit))
		}
		if params.Offset != nil {
			query.Set("offset", strconv.Itoa(*params.Offset))
		}
	}

	var restaurants []models.Restaurant
	if err := a.client.Do(ctx, http.MethodGet, httpclient.EndpointRestaurants, query, nil, &restaurants, nil); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (a *httpRestaurantAPI) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := a.client.Do(ctx, http.MethodGet, httpclient.EndpointRestaurantByID(id), nil, nil, &restaurant, nil); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (a *httpRestaurantAPI) Create(ctx context.Context, input *models.CreateRestaurantInput) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := a.client.Do(ctx, http.MethodPost, httpclient.EndpointRestaurants, nil, input, &restaurant, nil); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (a *httpRestaurantAPI) Update(ctx context.Context, id string, input *models.UpdateRestaurantInput) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := a.client.Do(ctx, http.MethodPatch, httpclient.EndpointRestaurantByID(id), nil, input, &restaurant, nil); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (a *httpRestaurantAPI) Delete(ctx context.Context, id string) error {
	return a.client.Do(ctx, http.MethodDelete, httpclient.EndpointRestaurantByID(id), nil, nil, nil, nil)
}
