// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// lokanta bir istemci olduğu için bu modeller DB tablolarının değil,
// API'nin döndürdüğü/beklediği JSON gövdelerinin Go karşılığıdır.
// json tag'leri server'ın kullandığı camelCase alan adlarıyla birebir aynıdır.
// validate tag'leri ise istekler gönderilmeden ÖNCE çalışan client-side
// kontrolleri tanımlar (bkz. pkg/validate).
package models

// AuthUser, oturum açmış kullanıcının kimlik anlık görüntüsüdür.
//
// Session'ın kendisi client kodu için görünmez — HTTP-only cookie olarak
// taşınır. Client'ın elindeki tek şey bu snapshot'tır ve her auth
// operasyonunda KOMPLE değiştirilir (alan alan güncellenmez).
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SignupInput, kayıt olurken gönderilen veri.
// Kayıt başarılı olsa bile session OLUŞMAZ — kullanıcı ayrıca login olmalıdır.
type SignupInput struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,max=255,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,len=10,phone"`
}

// LoginInput, giriş yaparken gönderilen veri.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordInput, şifre sıfırlama e-postası talebi.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput, e-postadaki token ile yeni şifre belirleme.
type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=128"`
}

// ChangePasswordInput, oturum açıkken şifre değiştirme.
// nefield: yeni şifre mevcut şifreyle aynı olamaz (client-side kontrol,
// server da ayrıca doğrular).
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=128,nefield=CurrentPassword"`
}
