package api

import (
	"context"
	"net/http"

	"github.com/akinalp/lokanta/httpclient"
	"github.com/akinalp/lokanta/models"
)

// httpAuthAPI, AuthAPI interface'inin HTTP implementasyonu.
type httpAuthAPI struct {
	client *httpclient.Client
}

// NewHTTPAuthAPI, constructor.
func NewHTTPAuthAPI(client *httpclient.Client) AuthAPI {
	return &httpAuthAPI{client: client}
}

// userEnvelope — login/signup yanıtı kullanıcıyı {user: {...}} içinde döner.
type userEnvelope struct {
	User models.AuthUser `json:"user"`
}

func (a *httpAuthAPI) Signup(ctx context.Context, input *models.SignupInput) (*models.AuthUser, error) {
	var env userEnvelope
	if err := a.client.Do(ctx, http.MethodPost, httpclient.EndpointAuthSignup, nil, input, &env, nil); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (a *httpAuthAPI) Login(ctx context.Context, input *models.LoginInput) (*models.AuthUser, error) {
	var env userEnvelope
	if err := a.client.Do(ctx, http.MethodPost, httpclient.EndpointAuthLogin, nil, input, &env, nil); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (a *httpAuthAPI) Logout(ctx context.Context) error {
	return a.client.Do(ctx, http.MethodPost, httpclient.EndpointAuthLogout, nil, nil, nil, nil)
}

// Refresh — SkipAuthRefresh ile gönderilir: refresh'in 401'i yeni bir
// refresh tetiklememelidir.
func (a *httpAuthAPI) Refresh(ctx context.Context) error {
	opts := &httpclient.RequestOptions{SkipAuthRefresh: true}
	return a.client.Do(ctx, http.MethodPost, httpclient.EndpointAuthRefresh, nil, nil, nil, opts)
}

// Me yanıtı zarfsızdır — kullanıcı nesnesi doğrudan gövdedir.
func (a *httpAuthAPI) Me(ctx context.Context) (*models.AuthUser, error) {
	var user models.AuthUser
	if err := a.client.Do(ctx, http.MethodGet, httpclient.EndpointAuthMe, nil, nil, &user, nil); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *httpAuthAPI) ForgotPassword(ctx context.Context, input *models.ForgotPasswordInput) error {
	return a.client.Do(ctx, http.MethodPost, httpclient.EndpointAuthForgotPassword, nil, input, nil, nil)
}

func (a *httpAuthAPI) ResetPassword(ctx context.Context, input *models.ResetPasswordInput) error {
	return a.client.Do(ctx, http.MethodPost, httpclient.EndpointAuthResetPassword, nil, input, nil, nil)
}

func (a *httpAuthAPI) ChangePassword(ctx context.Context, input *models.ChangePasswordInput) error {
	return a.client.Do(ctx, http.MethodPost, httpclient.EndpointAuthChangePassword, nil, input, nil, nil)
}
