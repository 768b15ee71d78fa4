// Package api, remote API'ye erişim katmanıdır.
//
// Yapı, repository pattern'in istemci tarafı karşılığıdır: her kaynak için
// bir interface dosyası (auth_api.go) ve bir HTTP implementasyonu
// (http_auth.go). Service katmanı interface'lere bağımlıdır — testlerde
// fake implementasyon, production'da httpclient üzerinden giden gerçek
// implementasyon geçilir.
//
// Bu katman session YÖNETMEZ: cookie'ler httpclient'ın jar'ında yaşar,
// refresh protokolü httpclient içinde çalışır. Burası sadece endpoint
// şekillerini (path, method, gövde) bilir.
package api

import (
	"context"

	"github.com/akinalp/lokanta/models"
)

// AuthAPI, /auth endpoint'leri.
type AuthAPI interface {
	// Signup, yeni hesap oluşturur. Session KURMAZ — başarıdan sonra
	// kullanıcı ayrıca Login çağırmalıdır.
	Signup(ctx context.Context, input *models.SignupInput) (*models.AuthUser, error)

	// Login, kimlik doğrular; server session cookie'sini set eder.
	Login(ctx context.Context, input *models.LoginInput) (*models.AuthUser, error)

	// Logout, server'daki session'ı sonlandırır.
	Logout(ctx context.Context) error

	// Refresh, session cookie'sini yeniler. httpclient'ın otomatik
	// refresh'inden bağımsız, açık bir çağrıdır (bootstrap kullanır).
	Refresh(ctx context.Context) error

	// Me, mevcut kimliği getirir. Anonim durumda 401 döner.
	Me(ctx context.Context) (*models.AuthUser, error)

	ForgotPassword(ctx context.Context, input *models.ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input *models.ResetPasswordInput) error
	ChangePassword(ctx context.Context, input *models.ChangePasswordInput) error
}
