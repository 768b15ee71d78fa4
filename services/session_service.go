// Package services, istemcinin business logic katmanını barındırır.
//
// Service Layer Pattern nedir?
// CLI (komutlar) ile API (HTTP) arasında oturan katmandır.
// Tüm istemci iş kuralları burada yaşar:
//   - Session state machine (bootstrap, login, logout)
//   - Client-side alan doğrulama
//   - Sahiplik kontrolleri
//
// Service ASLA terminal çıktısı üretmez — sadece domain modelleri alır/verir.
// Service ASLA doğrudan HTTP isteği kurmaz — api interface'lerini kullanır.
package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/akinalp/lokanta/api"
	"github.com/akinalp/lokanta/models"
	"github.com/akinalp/lokanta/pkg"
	"github.com/akinalp/lokanta/pkg/i18n"
	"github.com/akinalp/lokanta/pkg/notify"
	"github.com/akinalp/lokanta/pkg/validate"
)

// SessionState, oturumun o anki durumu.
type SessionState string

const (
	// StateBootstrapping — açılışta mevcut session kontrol ediliyor.
	StateBootstrapping SessionState = "bootstrapping"
	// StateAuthenticated — geçerli bir kullanıcı oturumu var.
	StateAuthenticated SessionState = "authenticated"
	// StateAnonymous — oturum yok, kullanıcı misafir.
	StateAnonymous SessionState = "anonymous"
)

// Session, oturum durumunun o anki snapshot'ı.
// Okuyanlar kopyasını alır; mutasyonlar her zaman snapshot'ı
// BÜTÜN olarak değiştirir, parça parça değil.
type Session struct {
	State SessionState
	User  *models.AuthUser
	Err   error
}

// SessionService interface'i — dışarıya açık API.
type SessionService interface {
	// Bootstrap, açılışta mevcut session'ı doğrular.
	// Hiçbir zaman hata döndürmez: sonuç ya authenticated ya anonymous'tur.
	Bootstrap(ctx context.Context)
	Login(ctx context.Context, input models.LoginInput) (map[string]string, error)
	// Signup yeni hesap oluşturur ama OTURUM AÇMAZ — kullanıcı
	// kayıttan sonra ayrıca login olur.
	Signup(ctx context.Context, input models.SignupInput) (map[string]string, error)
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, input models.ForgotPasswordInput) (map[string]string, error)
	ResetPassword(ctx context.Context, input models.ResetPasswordInput) (map[string]string, error)
	ChangePassword(ctx context.Context, input models.ChangePasswordInput) (map[string]string, error)
	// Current, session snapshot'ının kopyasını döndürür.
	Current() Session
	// CurrentUser, authenticated kullanıcıyı döndürür; anonymous ise nil.
	CurrentUser() *models.AuthUser
	// LastError, en son kaydedilen hatayı döndürür (yoksa nil).
	LastError() error
	// ClearError, hata slotunu temizler.
	ClearError()
}

// sessionService, SessionService interface'inin implementasyonu.
type sessionService struct {
	authAPI api.AuthAPI
	toasts  notify.Publisher
	loc     *i18n.Localizer

	mu      sync.RWMutex
	session Session
}

// NewSessionService, constructor. Başlangıç durumu bootstrapping'dir:
// Bootstrap çağrılana kadar kimse authenticated/anonymous bilemez.
func NewSessionService(authAPI api.AuthAPI, toasts notify.Publisher, loc *i18n.Localizer) SessionService {
	return &sessionService{
		authAPI: authAPI,
		toasts:  toasts,
		loc:     loc,
		session: Session{State: StateBootstrapping},
	}
}

// Bootstrap — açılış akışı:
//  1. /auth/me dene → başarılıysa authenticated
//  2. 401 ise refresh'i BİR KEZ dene → başarılıysa me'yi BİR KEZ tekrarla
//  3. Yine olmazsa anonymous
//
// Bootstrap sessizce biter: hata toast'u da, error slot'u da üretmez.
// Açılışta "oturumun yok" bir hata değil, normal bir durumdur.
func (s *sessionService) Bootstrap(ctx context.Context) {
	s.setSession(Session{State: StateBootstrapping})

	user, err := s.authAPI.Me(ctx)
	if err == nil {
		log.Printf("[session] bootstrap: existing session for %s", user.Email)
		s.setSession(Session{State: StateAuthenticated, User: user})
		return
	}

	// 401 dışındaki hatalar (network, 5xx) da anonymous'a düşer —
	// açılışı bir hata ekranıyla bloklamayız.
	if !errors.Is(err, pkg.ErrUnauthorized) {
		log.Printf("[session] bootstrap: me failed: %v", err)
		s.setSession(Session{State: StateAnonymous})
		return
	}

	if err := s.authAPI.Refresh(ctx); err != nil {
		log.Printf("[session] bootstrap: no valid session")
		s.setSession(Session{State: StateAnonymous})
		return
	}

	user, err = s.authAPI.Me(ctx)
	if err != nil {
		log.Printf("[session] bootstrap: me after refresh failed: %v", err)
		s.setSession(Session{State: StateAnonymous})
		return
	}

	log.Printf("[session] bootstrap: session restored for %s", user.Email)
	s.setSession(Session{State: StateAuthenticated, User: user})
}

// Login, alanları client-side doğrular, sonra sunucuya gider.
// Doğrulama başarısızsa ağa HİÇ çıkılmaz.
func (s *sessionService) Login(ctx context.Context, input models.LoginInput) (map[string]string, error) {
	s.ClearError()

	if fieldErrs := validate.Struct(input); fieldErrs != nil {
		return fieldErrs, nil
	}

	user, err := s.authAPI.Login(ctx, &input)
	if err != nil {
		apiErr := pkg.AsAPIError(err)
		s.recordError(err)
		s.toasts.Error(apiErr.Message)
		if len(apiErr.Details) > 0 {
			return pkg.FlattenDetails(apiErr.Details), err
		}
		return nil, err
	}

	s.setSession(Session{State: StateAuthenticated, User: user})
	s.toasts.Success(s.loc.TWithParams("auth.welcomeBack", map[string]string{"name": user.Name}))
	return nil, nil
}

func (s *sessionService) Signup(ctx context.Context, input models.SignupInput) (map[string]string, error) {
	s.ClearError()

	if fieldErrs := validate.Struct(input); fieldErrs != nil {
		return fieldErrs, nil
	}

	_, err := s.authAPI.Signup(ctx, &input)
	if err != nil {
		apiErr := pkg.AsAPIError(err)
		s.recordError(err)
		s.toasts.Error(apiErr.Message)
		if len(apiErr.Details) > 0 {
			return pkg.FlattenDetails(apiErr.Details), err
		}
		return nil, err
	}

	// Kayıt oturum AÇMAZ: session snapshot'ına dokunmuyoruz.
	s.toasts.Success(s.loc.T("auth.accountCreated"))
	return nil, nil
}

// Logout — sunucu çağrısı başarısız olsa bile yerel oturum HER ZAMAN
// temizlenir. Sunucudaki session zaten geçersiz olabilir; kullanıcıyı
// "çıkış yapamadın" diye içeride tutmanın anlamı yok.
func (s *sessionService) Logout(ctx context.Context) error {
	s.ClearError()

	defer func() {
		s.setSession(Session{State: StateAnonymous})
		s.toasts.Success(s.loc.T("auth.loggedOut"))
	}()

	if err := s.authAPI.Logout(ctx); err != nil {
		log.Printf("[session] logout request failed (clearing locally anyway): %v", err)
		return err
	}
	return nil
}

func (s *sessionService) ForgotPassword(ctx context.Context, input models.ForgotPasswordInput) (map[string]string, error) {
	s.ClearError()

	if fieldErrs := validate.Struct(input); fieldErrs != nil {
		return fieldErrs, nil
	}

	if err := s.authAPI.ForgotPassword(ctx, &input); err != nil {
		apiErr := pkg.AsAPIError(err)
		s.recordError(err)
		s.toasts.Error(apiErr.Message)
		if len(apiErr.Details) > 0 {
			return pkg.FlattenDetails(apiErr.Details), err
		}
		return nil, err
	}

	s.toasts.Success(s.loc.T("auth.resetEmailSent"))
	return nil, nil
}

func (s *sessionService) ResetPassword(ctx context.Context, input models.ResetPasswordInput) (map[string]string, error) {
	s.ClearError()

	if fieldErrs := validate.Struct(input); fieldErrs != nil {
		return fieldErrs, nil
	}

	if err := s.authAPI.ResetPassword(ctx, &input); err != nil {
		apiErr := pkg.AsAPIError(err)
		s.recordError(err)
		s.toasts.Error(apiErr.Message)
		if len(apiErr.Details) > 0 {
			return pkg.FlattenDetails(apiErr.Details), err
		}
		return nil, err
	}

	s.toasts.Success(s.loc.T("auth.passwordReset"))
	return nil, nil
}

func (s *sessionService) ChangePassword(ctx context.Context, input models.ChangePasswordInput) (map[string]string, error) {
	s.ClearError()

	if fieldErrs := validate.Struct(input); fieldErrs != nil {
		return fieldErrs, nil
	}

	if err := s.authAPI.ChangePassword(ctx, &input); err != nil {
		apiErr := pkg.AsAPIError(err)
		s.recordError(err)
		s.toasts.Error(apiErr.Message)
		if len(apiErr.Details) > 0 {
			return pkg.FlattenDetails(apiErr.Details), err
		}
		return nil, err
	}

	s.toasts.Success(s.loc.T("auth.passwordChanged"))
	return nil, nil
}

func (s *sessionService) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *sessionService) CurrentUser() *models.AuthUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session.State != StateAuthenticated {
		return nil
	}
	return s.session.User
}

func (s *sessionService) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Err
}

// ClearError — her yeni auth işlemi eski hatayı silerek başlar;
// bayat hata mesajı ekranda asılı kalmaz.
func (s *sessionService) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Err = nil
}

func (s *sessionService) recordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Err = err
}

func (s *sessionService) setSession(next Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = next
}
