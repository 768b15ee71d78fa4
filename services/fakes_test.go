package services_test

import (
	"context"
	"testing"

	"github.com/akinalp/lokanta/models"
	"github.com/akinalp/lokanta/pkg/i18n"
)

// Bu dosya, service testlerinin paylaştığı fake'leri içerir.
// api paketindeki interface'ler fonksiyon alanlı struct'larla taklit
// edilir: fn nil ise çağrı sayılır ve başarı döner, değilse fn'in
// dediği olur.

// testLocalizer, embedded locale'lerle İngilizce bir Localizer kurar.
func testLocalizer(t *testing.T) *i18n.Localizer {
	t.Helper()
	if err := i18n.Load(i18n.EmbeddedLocales); err != nil {
		t.Fatalf("i18n.Load failed: %v", err)
	}
	return i18n.NewLocalizer("en")
}

// fakePublisher, yayınlanan toast'ları kaydeder.
type fakePublisher struct {
	successes []string
	errors    []string
}

func (p *fakePublisher) Success(message string) { p.successes = append(p.successes, message) }
func (p *fakePublisher) Error(message string)   { p.errors = append(p.errors, message) }

// ─── AuthAPI fake ───

type fakeAuthAPI struct {
	signupFn func(input *models.SignupInput) (*models.AuthUser, error)
	loginFn  func(input *models.LoginInput) (*models.AuthUser, error)
	logoutFn func() error
	// refreshFn ve meFn sıralı çağrılar için sayaçla birlikte kullanılır —
	// bootstrap me'yi iki kez çağırabilir.
	refreshFn func(call int) error
	meFn      func(call int) (*models.AuthUser, error)
	forgotFn  func(input *models.ForgotPasswordInput) error
	resetFn   func(input *models.ResetPasswordInput) error
	changeFn  func(input *models.ChangePasswordInput) error

	signupCalls, loginCalls, logoutCalls, refreshCalls, meCalls int
	forgotCalls, resetCalls, changeCalls                        int
}

func (a *fakeAuthAPI) Signup(_ context.Context, input *models.SignupInput) (*models.AuthUser, error) {
	a.signupCalls++
	if a.signupFn != nil {
		return a.signupFn(input)
	}
	return &models.AuthUser{ID: "u-new", Email: input.Email, Name: input.Name}, nil
}

func (a *fakeAuthAPI) Login(_ context.Context, input *models.LoginInput) (*models.AuthUser, error) {
	a.loginCalls++
	if a.loginFn != nil {
		return a.loginFn(input)
	}
	return &models.AuthUser{ID: "u1", Email: input.Email, Name: "Ayşe"}, nil
}

func (a *fakeAuthAPI) Logout(context.Context) error {
	a.logoutCalls++
	if a.logoutFn != nil {
		return a.logoutFn()
	}
	return nil
}

func (a *fakeAuthAPI) Refresh(context.Context) error {
	a.refreshCalls++
	if a.refreshFn != nil {
		return a.refreshFn(a.refreshCalls)
	}
	return nil
}

func (a *fakeAuthAPI) Me(context.Context) (*models.AuthUser, error) {
	a.meCalls++
	if a.meFn != nil {
		return a.meFn(a.meCalls)
	}
	return &models.AuthUser{ID: "u1", Email: "ayse@example.com", Name: "Ayşe"}, nil
}

func (a *fakeAuthAPI) ForgotPassword(_ context.Context, input *models.ForgotPasswordInput) error {
	a.forgotCalls++
	if a.forgotFn != nil {
		return a.forgotFn(input)
	}
	return nil
}

func (a *fakeAuthAPI) ResetPassword(_ context.Context, input *models.ResetPasswordInput) error {
	a.resetCalls++
	if a.resetFn != nil {
		return a.resetFn(input)
	}
	return nil
}

func (a *fakeAuthAPI) ChangePassword(_ context.Context, input *models.ChangePasswordInput) error {
	a.changeCalls++
	if a.changeFn != nil {
		return a.changeFn(input)
	}
	return nil
}

// ─── RestaurantAPI fake ───

type fakeRestaurantAPI struct {
	listFn   func(params *models.ListRestaurantsParams) ([]models.Restaurant, error)
	getFn    func(id string) (*models.Restaurant, error)
	createFn func(input *models.CreateRestaurantInput) (*models.Restaurant, error)
	updateFn func(id string, input *models.UpdateRestaurantInput) (*models.Restaurant, error)
	deleteFn func(id string) error

	listCalls, getCalls, createCalls, updateCalls, deleteCalls int
}

func (a *fakeRestaurantAPI) List(_ context.Context, params *models.ListRestaurantsParams) ([]models.Restaurant, error) {
	a.listCalls++
	if a.listFn != nil {
		return a.listFn(params)
	}
	return []models.Restaurant{{ID: "r1", Name: "Çiya", CreatedByUserID: "u1"}}, nil
}

func (a *fakeRestaurantAPI) GetByID(_ context.Context, id string) (*models.Restaurant, error) {
	a.getCalls++
	if a.getFn != nil {
		return a.getFn(id)
	}
	return &models.Restaurant{ID: id, Name: "Çiya", CreatedByUserID: "u1"}, nil
}

func (a *fakeRestaurantAPI) Create(_ context.Context, input *models.CreateRestaurantInput) (*models.Restaurant, error) {
	a.createCalls++
	if a.createFn != nil {
		return a.createFn(input)
	}
	return &models.Restaurant{ID: "r-new", Name: input.Name, CreatedByUserID: "u1"}, nil
}

func (a *fakeRestaurantAPI) Update(_ context.Context, id string, input *models.UpdateRestaurantInput) (*models.Restaurant, error) {
	a.updateCalls++
	if a.updateFn != nil {
		return a.updateFn(id, input)
	}
	return &models.Restaurant{ID: id, Name: input.Name, CreatedByUserID: "u1"}, nil
}

func (a *fakeRestaurantAPI) Delete(_ context.Context, id string) error {
	a.deleteCalls++
	if a.deleteFn != nil {
		return a.deleteFn(id)
	}
	return nil
}

// ─── RatingAPI fake ───

type fakeRatingAPI struct {
	getFn func(restaurantID string) (*models.RatingSummary, error)
	setFn func(restaurantID string, input *models.SetRatingInput) (*models.Rating, error)

	getCalls, setCalls int
}

func (a *fakeRatingAPI) Get(_ context.Context, restaurantID string) (*models.RatingSummary, error) {
	a.getCalls++
	if a.getFn != nil {
		return a.getFn(restaurantID)
	}
	return &models.RatingSummary{AverageRating: 4.0, TotalRatings: 2}, nil
}

func (a *fakeRatingAPI) Set(_ context.Context, restaurantID string, input *models.SetRatingInput) (*models.Rating, error) {
	a.setCalls++
	if a.setFn != nil {
		return a.setFn(restaurantID, input)
	}
	return &models.Rating{ID: "rt1", RestaurantID: restaurantID, Stars: input.Stars}, nil
}

// ─── CommentAPI fake ───

type fakeCommentAPI struct {
	listFn   func(restaurantID string) ([]models.Comment, error)
	addFn    func(restaurantID string, input *models.AddCommentInput) (*models.Comment, error)
	deleteFn func(restaurantID, commentID string) error

	listCalls, addCalls, deleteCalls int
}

func (a *fakeCommentAPI) ListByRestaurant(_ context.Context, restaurantID string) ([]models.Comment, error) {
	a.listCalls++
	if a.listFn != nil {
		return a.listFn(restaurantID)
	}
	return nil, nil
}

func (a *fakeCommentAPI) Add(_ context.Context, restaurantID string, input *models.AddCommentInput) (*models.Comment, error) {
	a.addCalls++
	if a.addFn != nil {
		return a.addFn(restaurantID, input)
	}
	return &models.Comment{ID: "c-new", RestaurantID: restaurantID, UserID: "u1", Body: input.Body}, nil
}

func (a *fakeCommentAPI) Delete(_ context.Context, restaurantID, commentID string) error {
	a.deleteCalls++
	if a.deleteFn != nil {
		return a.deleteFn(restaurantID, commentID)
	}
	return nil
}
