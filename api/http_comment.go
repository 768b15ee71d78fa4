package api

import (
	"context"
	"net/http"

	"github.com/akinalp/lokanta/httpclient"
	"github.com/akinalp/lokanta/models"
)

// httpCommentAPI, CommentAPI interface'inin HTTP implementasyonu.
type httpCommentAPI struct {
	client *httpclient.Client
}

// NewHTTPCommentAPI, constructor.
func NewHTTPCommentAPI(client *httpclient.Client) CommentAPI {
	return &httpCommentAPI{client: client}
}

func (a *httpCommentAPI) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := a.client.Do(ctx, http.MethodGet, httpclient.EndpointRestaurantComments(restaurantID), nil, nil, &comments, nil); err != nil {
		return nil, err
	}
	return comments, nil
}

func (a *httpCommentAPI) Add(ctx context.Context, restaurantID string, input *models.AddCommentInput) (*models.Comment, error) {
	var comment models.Comment
	if err := a.client.Do(ctx, http.MethodPost, httpclient.EndpointRestaurantComments(restaurantID), nil, input, &comment, nil); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (a *httpCommentAPI) Delete(ctx context.Context, restaurantID, commentID string) error {
	return a.client.Do(ctx, http.MethodDelete, httpclient.EndpointRestaurantComment(restaurantID, commentID), nil, nil, nil, nil)
}
