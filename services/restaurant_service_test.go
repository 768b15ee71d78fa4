package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/akinalp/lokanta/models"
	"github.com/akinalp/lokanta/pkg"
	"github.com/akinalp/lokanta/services"
)

// newRestaurantService, authenticated bir session ile service kurar.
// owner: koleksiyondaki restoranların sahibi olarak dönen kullanıcı id'si.
func newRestaurantService(t *testing.T, restaurantAPI *fakeRestaurantAPI, userID string) (services.RestaurantService, *fakePublisher) {
	t.Helper()

	authAPI := &fakeAuthAPI{
		meFn: func(int) (*models.AuthUser, error) {
			if userID == "" {
				return nil, pkg.NewAPIError("Unauthorized", 401, nil)
			}
			return &models.AuthUser{ID: userID, Email: "user@example.com", Name: "Test"}, nil
		},
		refreshFn: func(int) error {
			return pkg.NewAPIError("Unauthorized", 401, nil)
		},
	}
	toasts := &fakePublisher{}
	loc := testLocalizer(t)

	session := services.NewSessionService(authAPI, toasts, loc)
	session.Bootstrap(context.Background())

	return services.NewRestaurantService(restaurantAPI, session, toasts, loc), toasts
}

func TestFetchReplacesCollectionWholesale(t *testing.T) {
	// 1. Given: iki farklı sonuç dönen bir liste endpoint'i.
	calls := 0
	restaurantAPI := &fakeRestaurantAPI{
		listFn: func(*models.ListRestaurantsParams) ([]models.Restaurant, error) {
			calls++
			if calls == 1 {
				return []models.Restaurant{{ID: "r1"}, {ID: "r2"}}, nil
			}
			return []models.Restaurant{{ID: "r3"}}, nil
		},
	}
	svc, _ := newRestaurantService(t, restaurantAPI, "u1")

	// 2. When: iki ardışık fetch.
	if err := svc.FetchRestaurants(context.Background(), models.ListRestaurantsParams{}); err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	if err := svc.FetchRestaurants(context.Background(), models.ListRestaurantsParams{}); err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}

	// 3. Then: ikinci sonuç ilkini KOMPLE değiştirmiş (merge yok).
	col := svc.Collection()
	if len(col.Restaurants) != 1 || col.Restaurants[0].ID != "r3" {
		t.Errorf("expected wholesale replacement with [r3], got %v", col.Restaurants)
	}
	if col.Err != nil || col.Loading {
		t.Errorf("expected settled collection, got %+v", col)
	}
}

func TestFetchFailureClearsCollection(t *testing.T) {
	// 1. Given: önce dolu bir koleksiyon, sonra patlayan bir fetch.
	calls := 0
	restaurantAPI := &fakeRestaurantAPI{
		listFn: func(*models.ListRestaurantsParams) ([]models.Restaurant, error) {
			calls++
			if calls == 1 {
				return []models.Restaurant{{ID: "r1"}}, nil
			}
			return nil, pkg.NewAPIError("Something went wrong", 500, nil)
		},
	}
	svc, _ := newRestaurantService(t, restaurantAPI, "u1")
	_ = svc.FetchRestaurants(context.Background(), models.ListRestaurantsParams{})

	// 2. When: ikinci fetch başarısız.
	err := svc.FetchRestaurants(context.Background(), models.ListRestaurantsParams{})

	// 3. Then: koleksiyon boşalır, hata kaydedilir — bayat veri kalmaz.
	if err == nil {
		t.Fatal("expected fetch error")
	}
	col := svc.Collection()
	if len(col.Restaurants) != 0 {
		t.Errorf("failed fetch must clear the collection, got %v", col.Restaurants)
	}
	if col.Err == nil {
		t.Error("expected error recorded on collection")
	}
}

func TestCreateValidationShortCircuits(t *testing.T) {
	// 1. Given: adı boş bir form.
	restaurantAPI := &fakeRestaurantAPI{}
	svc, _ := newRestaurantService(t, restaurantAPI, "u1")

	// 2. When
	created, fieldErrs, err := svc.Create(context.Background(), models.CreateRestaurantInput{
		FullAddress: "Caferağa Mah. İstanbul",
		Phone:       "2165550000",
		CuisineType: "turkish",
	})

	// 3. Then: tam mesajla alan hatası döner, ağa hiç çıkılmaz.
	if err != nil || created != nil {
		t.Fatalf("expected pure validation failure, got created=%v err=%v", created, err)
	}
	if fieldErrs["name"] != "Name is required" {
		t.Errorf("expected exact required message, got %v", fieldErrs)
	}
	if restaurantAPI.createCalls != 0 {
		t.Errorf("invalid form must not reach the network, got %d calls", restaurantAPI.createCalls)
	}
	if restaurantAPI.listCalls != 0 {
		t.Errorf("no refetch on validation failure, got %d list calls", restaurantAPI.listCalls)
	}
}

func TestCreateSuccessTriggersRefetch(t *testing.T) {
	// 1. Given
	restaurantAPI := &fakeRestaurantAPI{}
	svc, toasts := newRestaurantService(t, restaurantAPI, "u1")

	// 2. When
	created, fieldErrs, err := svc.Create(context.Background(), models.CreateRestaurantInput{
		Name:        "Çiya Sofrası",
		FullAddress: "Caferağa Mah. İstanbul",
		Phone:       "2165550000",
		CuisineType: "turkish",
	})

	// 3. Then: kayıt döner, liste sunucudan YENİDEN çekilir (lokal ekleme yok).
	if err != nil || fieldErrs != nil {
		t.Fatalf("expected success, got fieldErrs=%v err=%v", fieldErrs, err)
	}
	if created == nil || created.ID != "r-new" {
		t.Errorf("expected created restaurant, got %v", created)
	}
	if restaurantAPI.listCalls != 1 {
		t.Errorf("expected one refetch after create, got %d", restaurantAPI.listCalls)
	}
	if len(toasts.successes) != 1 {
		t.Errorf("expected success toast, got %v", toasts.successes)
	}
}

func TestCreateServerDetailsAreFlattened(t *testing.T) {
	// 1. Given: server alan bazlı detaylarla 422 dönüyor.
	restaurantAPI := &fakeRestaurantAPI{
		createFn: func(*models.CreateRestaurantInput) (*models.Restaurant, error) {
			return nil, pkg.NewAPIError("Validation failed", 422, map[string][]string{
				"phone": {"Phone already registered", "Second message"},
			})
		},
	}
	svc, toasts := newRestaurantService(t, restaurantAPI, "u1")

	// 2. When: client-side geçerli bir form gönderilir.
	_, fieldErrs, err := svc.Create(context.Background(), models.CreateRestaurantInput{
		Name:        "Çiya Sofrası",
		FullAddress: "Caferağa Mah. İstanbul",
		Phone:       "2165550000",
		CuisineType: "turkish",
	})

	// 3. Then: alan başına İLK mesaj döner, genel mesaj AYRICA toast olur.
	// Alan hataları formu besler ama ambient bildirim her başarısızlıkta çıkar.
	if err == nil {
		t.Fatal("expected error")
	}
	if fieldErrs["phone"] != "Phone already registered" {
		t.Errorf("expected first detail message per field, got %v", fieldErrs)
	}
	if len(toasts.errors) != 1 || toasts.errors[0] != "Validation failed" {
		t.Errorf("expected general message toasted alongside field errors, got %v", toasts.errors)
	}
	if restaurantAPI.listCalls != 0 {
		t.Errorf("no refetch on failed create, got %d", restaurantAPI.listCalls)
	}
}

func TestUpdateBlockedForNonOwner(t *testing.T) {
	// 1. Given: koleksiyonda u1'in restoranı var ama oturumdaki kullanıcı u2.
	restaurantAPI := &fakeRestaurantAPI{
		listFn: func(*models.ListRestaurantsParams) ([]models.Restaurant, error) {
			return []models.Restaurant{{ID: "r1", Name: "Çiya", CreatedByUserID: "u1"}}, nil
		},
	}
	svc, _ := newRestaurantService(t, restaurantAPI, "u2")
	_ = svc.FetchRestaurants(context.Background(), models.ListRestaurantsParams{})

	// 2. When
	_, fieldErrs, err := svc.Update(context.Background(), "r1", models.UpdateRestaurantInput{
		Name:        "Başkasının Lokantası",
		FullAddress: "Bir yer",
		Phone:       "2165550000",
		CuisineType: "turkish",
	})

	// 3. Then: istek hiç gönderilmez, ErrForbidden döner.
	if !errors.Is(err, pkg.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if fieldErrs != nil {
		t.Errorf("ownership failure is not a field error, got %v", fieldErrs)
	}
	if restaurantAPI.updateCalls != 0 {
		t.Errorf("non-owner update must not reach the network, got %d", restaurantAPI.updateCalls)
	}
}

func TestUpdateBlockedForNonOwnerWithColdCache(t *testing.T) {
	// 1. Given: koleksiyon HİÇ çekilmemiş (her CLI çalıştırması boş başlar),
	// sunucudaki r1 kaydının sahibi u1, oturumdaki kullanıcı u2.
	restaurantAPI := &fakeRestaurantAPI{
		getFn: func(id string) (*models.Restaurant, error) {
			return &models.Restaurant{ID: id, Name: "Çiya", CreatedByUserID: "u1"}, nil
		},
	}
	svc, _ := newRestaurantService(t, restaurantAPI, "u2")

	// 2. When: koleksiyon boşken update denenir.
	_, fieldErrs, err := svc.Update(context.Background(), "r1", models.UpdateRestaurantInput{
		Name:        "Başkasının Lokantası",
		FullAddress: "Bir yer",
		Phone:       "2165550000",
		CuisineType: "turkish",
	})

	// 3. Then: kayıt sunucudan çekilir, sahiplik orada yakalanır;
	// mutasyon isteği hiç gönderilmez.
	if !errors.Is(err, pkg.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if fieldErrs != nil {
		t.Errorf("ownership failure is not a field error, got %v", fieldErrs)
	}
	if restaurantAPI.getCalls != 1 {
		t.Errorf("expected one ownership lookup, got %d", restaurantAPI.getCalls)
	}
	if restaurantAPI.updateCalls != 0 {
		t.Errorf("non-owner update must not reach the network, got %d", restaurantAPI.updateCalls)
	}
}

func TestDeleteBlockedForNonOwnerWithColdCache(t *testing.T) {
	// 1. Given: koleksiyon boş, r1 başkasına ait.
	restaurantAPI := &fakeRestaurantAPI{}
	svc, _ := newRestaurantService(t, restaurantAPI, "u2")

	// 2. When
	err := svc.Delete(context.Background(), "r1")

	// 3. Then
	if !errors.Is(err, pkg.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if restaurantAPI.getCalls != 1 {
		t.Errorf("expected one ownership lookup, got %d", restaurantAPI.getCalls)
	}
	if restaurantAPI.deleteCalls != 0 {
		t.Errorf("non-owner delete must not reach the network, got %d", restaurantAPI.deleteCalls)
	}
}

func TestDeleteRequiresAuthentication(t *testing.T) {
	// 1. Given: anonymous oturum.
	restaurantAPI := &fakeRestaurantAPI{}
	svc, _ := newRestaurantService(t, restaurantAPI, "")

	// 2. When
	err := svc.Delete(context.Background(), "r1")

	// 3. Then
	if !errors.Is(err, pkg.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if restaurantAPI.deleteCalls != 0 {
		t.Errorf("anonymous delete must not reach the network, got %d", restaurantAPI.deleteCalls)
	}
}

func TestDeleteSuccessRefetchesWithLastParams(t *testing.T) {
	// 1. Given: cuisine filtreli bir fetch yapılmış durumda.
	var lastParams *models.ListRestaurantsParams
	restaurantAPI := &fakeRestaurantAPI{
		listFn: func(params *models.ListRestaurantsParams) ([]models.Restaurant, error) {
			lastParams = params
			return []models.Restaurant{{ID: "r1", CreatedByUserID: "u1"}}, nil
		},
	}
	svc, _ := newRestaurantService(t, restaurantAPI, "u1")

	cuisine := "turkish"
	_ = svc.FetchRestaurants(context.Background(), models.ListRestaurantsParams{CuisineType: &cuisine})

	// 2. When
	if err := svc.Delete(context.Background(), "r1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// 3. Then: refetch aynı filtreyle yapılır.
	if restaurantAPI.listCalls != 2 {
		t.Fatalf("expected refetch after delete, got %d list calls", restaurantAPI.listCalls)
	}
	if lastParams == nil || lastParams.CuisineType == nil || *lastParams.CuisineType != "turkish" {
		t.Errorf("refetch should reuse last params, got %+v", lastParams)
	}
}
