package services

import (
	"context"
	"log"
	"sync"

	"github.com/akinalp/lokanta/api"
	"github.com/akinalp/lokanta/models"
	"github.com/akinalp/lokanta/pkg"
	"github.com/akinalp/lokanta/pkg/i18n"
	"github.com/akinalp/lokanta/pkg/notify"
	"github.com/akinalp/lokanta/pkg/validate"
)

// Collection, restoran listesinin o anki snapshot'ı.
//
// Kurallar:
//   - Fetch başarılıysa liste BÜTÜN olarak değiştirilir (merge yok).
//   - Fetch başarısızsa liste BOŞALTILIR ve hata kaydedilir — bayat
//     veri göstermektense hiç veri göstermemeyi tercih ediyoruz.
//   - Mutasyonlar listeyi yerel olarak yamalamaz; her başarılı
//     create/update/delete sonrası liste yeniden çekilir.
type Collection struct {
	Restaurants []models.Restaurant
	Loading     bool
	Err         error
}

// RestaurantService interface'i — restoran koleksiyonu ve CRUD akışları.
type RestaurantService interface {
	// FetchRestaurants, koleksiyonu sunucudan yeniden çeker.
	FetchRestaurants(ctx context.Context, params models.ListRestaurantsParams) error
	// Collection, koleksiyon snapshot'ının kopyasını döndürür.
	Collection() Collection
	Create(ctx context.Context, input models.CreateRestaurantInput) (*models.Restaurant, map[string]string, error)
	Update(ctx context.Context, id string, input models.UpdateRestaurantInput) (*models.Restaurant, map[string]string, error)
	Delete(ctx context.Context, id string) error
}

// restaurantService, RestaurantService implementasyonu.
type restaurantService struct {
	restaurantAPI api.RestaurantAPI
	session       SessionService
	toasts        notify.Publisher
	loc           *i18n.Localizer

	mu         sync.RWMutex
	collection Collection
	generation uint64 // bayat fetch sonuçlarını ayıklamak için
	lastParams models.ListRestaurantsParams
}

// NewRestaurantService, constructor.
func NewRestaurantService(
	restaurantAPI api.RestaurantAPI,
	session SessionService,
	toasts notify.Publisher,
	loc *i18n.Localizer,
) RestaurantService {
	return &restaurantService{
		restaurantAPI: restaurantAPI,
		session:       session,
		toasts:        toasts,
		loc:           loc,
	}
}

// FetchRestaurants — koleksiyonun TEK doldurulma yolu.
// Generation sayacı, üst üste tetiklenen fetch'lerde eski sonucun
// yenisinin üzerine yazmasını engeller.
func (s *restaurantService) FetchRestaurants(ctx context.Context, params models.ListRestaurantsParams) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.lastParams = params
	s.collection = Collection{Restaurants: s.collection.Restaurants, Loading: true}
	s.mu.Unlock()

	restaurants, err := s.restaurantAPI.List(ctx, &params)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// Bu sonuç bayat: daha yeni bir fetch zaten yolda/bitmiş.
		return nil
	}

	if err != nil {
		log.Printf("[restaurant] fetch failed: %v", err)
		s.collection = Collection{Restaurants: nil, Loading: false, Err: err}
		return err
	}

	s.collection = Collection{Restaurants: restaurants, Loading: false, Err: nil}
	return nil
}

func (s *restaurantService) Collection() Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collection
}

// Create — akış: client-side doğrulama → API → liste refetch.
// Doğrulama başarısızsa ağa hiç çıkılmaz; alan hataları map olarak döner.
func (s *restaurantService) Create(ctx context.Context, input models.CreateRestaurantInput) (*models.Restaurant, map[string]string, error) {
	if fieldErrs := validate.Struct(input); fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	created, err := s.restaurantAPI.Create(ctx, &input)
	if err != nil {
		apiErr := pkg.AsAPIError(err)
		s.toasts.Error(apiErr.Message)
		if len(apiErr.Details) > 0 {
			return nil, pkg.FlattenDetails(apiErr.Details), err
		}
		return nil, nil, err
	}

	s.toasts.Success(s.loc.T("toast.restaurantCreated"))
	s.refetch(ctx)
	return created, nil, nil
}

// Update — önce sahiplik kontrolü: başkasının restoranı için istek
// hiç gönderilmez, doğrudan ErrForbidden döner.
func (s *restaurantService) Update(ctx context.Context, id string, input models.UpdateRestaurantInput) (*models.Restaurant, map[string]string, error) {
	if err := s.requireOwnership(ctx, id); err != nil {
		return nil, nil, err
	}

	if fieldErrs := validate.Struct(input); fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	updated, err := s.restaurantAPI.Update(ctx, id, &input)
	if err != nil {
		apiErr := pkg.AsAPIError(err)
		s.toasts.Error(apiErr.Message)
		if len(apiErr.Details) > 0 {
			return nil, pkg.FlattenDetails(apiErr.Details), err
		}
		return nil, nil, err
	}

	s.toasts.Success(s.loc.T("toast.restaurantUpdated"))
	s.refetch(ctx)
	return updated, nil, nil
}

func (s *restaurantService) Delete(ctx context.Context, id string) error {
	if err := s.requireOwnership(ctx, id); err != nil {
		return err
	}

	if err := s.restaurantAPI.Delete(ctx, id); err != nil {
		apiErr := pkg.AsAPIError(err)
		s.toasts.Error(apiErr.Message)
		return err
	}

	s.toasts.Success(s.loc.T("toast.restaurantRemoved"))
	s.refetch(ctx)
	return nil
}

// requireOwnership — id karşılaştırmasıyla sahiplik kontrolü.
// Önce koleksiyona bakılır; restoran orada yoksa (her CLI komutu taze
// bir process'tir, koleksiyon boş başlar) kayıt sunucudan çekilir.
// Sahibi biz değilsek mutasyon isteği HİÇ gönderilmez.
func (s *restaurantService) requireOwnership(ctx context.Context, id string) error {
	user := s.session.CurrentUser()
	if user == nil {
		return pkg.ErrUnauthorized
	}

	restaurant := s.cachedRestaurant(id)
	if restaurant == nil {
		fetched, err := s.restaurantAPI.GetByID(ctx, id)
		if err != nil {
			return err
		}
		restaurant = fetched
	}

	if !restaurant.IsOwnedBy(user) {
		return pkg.ErrForbidden
	}
	return nil
}

func (s *restaurantService) cachedRestaurant(id string) *models.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.collection.Restaurants {
		if s.collection.Restaurants[i].ID == id {
			r := s.collection.Restaurants[i]
			return &r
		}
	}
	return nil
}

// refetch, son kullanılan parametrelerle listeyi tazeler.
// Refetch hatası mutasyonun sonucunu değiştirmez — mutasyon zaten
// başarılı oldu, liste bir sonraki fetch'te düzelir.
func (s *restaurantService) refetch(ctx context.Context) {
	s.mu.RLock()
	params := s.lastParams
	s.mu.RUnlock()

	if err := s.FetchRestaurants(ctx, params); err != nil {
		log.Printf("[restaurant] refetch after mutation failed: %v", err)
	}
}
