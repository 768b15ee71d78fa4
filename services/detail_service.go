package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/akinalp/lokanta/api"
	"github.com/akinalp/lokanta/models"
	"github.com/akinalp/lokanta/pkg"
	"github.com/akinalp/lokanta/pkg/i18n"
	"github.com/akinalp/lokanta/pkg/notify"
	"github.com/akinalp/lokanta/pkg/validate"
)

// Detail, tek bir restoranın detay snapshot'ı: restoran bilgisi,
// puan özeti ve yorumlar birlikte yüklenir.
type Detail struct {
	Restaurant *models.Restaurant
	Rating     *models.RatingSummary
	Comments   []models.Comment
	Loading    bool
	NotFound   bool
	Err        error
}

// DetailService interface'i — detay yükleme, puanlama ve yorumlar.
type DetailService interface {
	// Load, restoran + puan özeti + yorumları paralel yükler.
	Load(ctx context.Context, restaurantID string) error
	// Detail, detay snapshot'ının kopyasını döndürür.
	Detail() Detail
	// SetRating, kullanıcının puanını kaydeder ve özeti SUNUCUDAN
	// yeniden çeker — ortalama asla yerel hesaplanmaz.
	SetRating(ctx context.Context, restaurantID string, input models.SetRatingInput) (map[string]string, error)
	AddComment(ctx context.Context, restaurantID string, input models.AddCommentInput) (map[string]string, error)
	DeleteComment(ctx context.Context, restaurantID, commentID string) error
}

// detailService, DetailService implementasyonu.
type detailService struct {
	restaurantAPI api.RestaurantAPI
	ratingAPI     api.RatingAPI
	commentAPI    api.CommentAPI
	session       SessionService
	toasts        notify.Publisher
	loc           *i18n.Localizer

	mu         sync.RWMutex
	detail     Detail
	generation uint64
}

// NewDetailService, constructor.
func NewDetailService(
	restaurantAPI api.RestaurantAPI,
	ratingAPI api.RatingAPI,
	commentAPI api.CommentAPI,
	session SessionService,
	toasts notify.Publisher,
	loc *i18n.Localizer,
) DetailService {
	return &detailService{
		restaurantAPI: restaurantAPI,
		ratingAPI:     ratingAPI,
		commentAPI:    commentAPI,
		session:       session,
		toasts:        toasts,
		loc:           loc,
	}
}

// Load — üç isteği paralel atar: restoran, puan özeti, yorumlar.
// errgroup ilk hatada context'i iptal eder; 404 özel durumdur,
// "hata" yerine NotFound state'ine çevrilir.
func (s *detailService) Load(ctx context.Context, restaurantID string) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.detail = Detail{Loading: true}
	s.mu.Unlock()

	var (
		restaurant *models.Restaurant
		rating     *models.RatingSummary
		comments   []models.Comment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		restaurant, err = s.restaurantAPI.GetByID(gctx, restaurantID)
		return err
	})
	g.Go(func() error {
		var err error
		rating, err = s.ratingAPI.Get(gctx, restaurantID)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = s.commentAPI.ListByRestaurant(gctx, restaurantID)
		return err
	})
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return nil
	}

	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			s.detail = Detail{NotFound: true}
			return nil
		}
		log.Printf("[detail] load failed for %s: %v", restaurantID, err)
		s.detail = Detail{Err: err}
		return err
	}

	s.detail = Detail{Restaurant: restaurant, Rating: rating, Comments: comments}
	return nil
}

func (s *detailService) Detail() Detail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.detail
}

// SetRating — sahibi kendi restoranını puanlayamaz, misafir puanlayamaz.
// Başarılı PUT sonrası özet sunucudan yeniden çekilir; listedeki ortalama
// da sunucunun döndürdüğü değerle güncellenir, asla yerel hesapla değil.
func (s *detailService) SetRating(ctx context.Context, restaurantID string, input models.SetRatingInput) (map[string]string, error) {
	if err := s.requireRatePermission(); err != nil {
		return nil, err
	}

	if fieldErrs := validate.Struct(input); fieldErrs != nil {
		return fieldErrs, nil
	}

	if _, err := s.ratingAPI.Set(ctx, restaurantID, &input); err != nil {
		apiErr := pkg.AsAPIError(err)
		s.toasts.Error(apiErr.Message)
		if len(apiErr.Details) > 0 {
			return pkg.FlattenDetails(apiErr.Details), err
		}
		return nil, err
	}

	summary, err := s.ratingAPI.Get(ctx, restaurantID)
	if err != nil {
		log.Printf("[detail] rating summary refetch failed: %v", err)
	} else {
		s.mu.Lock()
		s.detail.Rating = summary
		if s.detail.Restaurant != nil {
			s.detail.Restaurant.AverageRating = summary.AverageRating
		}
		s.mu.Unlock()
	}

	s.toasts.Success(s.loc.T("toast.ratingSaved"))
	return nil, nil
}

// AddComment — başarılı eklemede yeni yorum listenin BAŞINA eklenir
// (en yeni en üstte).
func (s *detailService) AddComment(ctx context.Context, restaurantID string, input models.AddCommentInput) (map[string]string, error) {
	if err := s.requireRatePermission(); err != nil {
		return nil, err
	}

	if fieldErrs := validate.Struct(input); fieldErrs != nil {
		return fieldErrs, nil
	}

	comment, err := s.commentAPI.Add(ctx, restaurantID, &input)
	if err != nil {
		apiErr := pkg.AsAPIError(err)
		s.toasts.Error(apiErr.Message)
		if len(apiErr.Details) > 0 {
			return pkg.FlattenDetails(apiErr.Details), err
		}
		return nil, err
	}

	s.mu.Lock()
	s.detail.Comments = append([]models.Comment{*comment}, s.detail.Comments...)
	s.mu.Unlock()

	s.toasts.Success(s.loc.T("toast.commentAdded"))
	return nil, nil
}

// DeleteComment — yalnızca yorumun yazarı silebilir. Başarılı silmede
// yorum listeden filtrelenir; yeniden fetch gerekmez.
func (s *detailService) DeleteComment(ctx context.Context, restaurantID, commentID string) error {
	user := s.session.CurrentUser()
	if user == nil {
		return pkg.ErrUnauthorized
	}

	s.mu.RLock()
	for i := range s.detail.Comments {
		c := &s.detail.Comments[i]
		if c.ID == commentID && c.UserID != user.ID {
			s.mu.RUnlock()
			return pkg.ErrForbidden
		}
	}
	s.mu.RUnlock()

	if err := s.commentAPI.Delete(ctx, restaurantID, commentID); err != nil {
		apiErr := pkg.AsAPIError(err)
		s.toasts.Error(apiErr.Message)
		return err
	}

	s.mu.Lock()
	filtered := s.detail.Comments[:0:0]
	for _, c := range s.detail.Comments {
		if c.ID != commentID {
			filtered = append(filtered, c)
		}
	}
	s.detail.Comments = filtered
	s.mu.Unlock()

	s.toasts.Success(s.loc.T("toast.commentRemoved"))
	return nil
}

// requireRatePermission — puanlama/yorum için: giriş yapılmış olmalı
// ve restoran kullanıcının kendi restoranı OLMAMALI.
func (s *detailService) requireRatePermission() error {
	user := s.session.CurrentUser()
	if user == nil {
		return pkg.ErrUnauthorized
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.detail.Restaurant != nil && !s.detail.Restaurant.CanRateOrComment(user) {
		return pkg.ErrForbidden
	}
	return nil
}
