// Package main — Service katmanı başlatma.
//
// initServices, tüm service implementasyonlarını oluşturur.
// Her service, ihtiyaç duyduğu API interface'lerini ve diğer
// dependency'leri constructor injection ile alır.
//
// Sıralama kuralı: Session önce — Restaurant ve Detail sahiplik/yetki
// kontrolleri için SessionService'e bağımlıdır.
package main

import (
	"github.com/akinalp/lokanta/pkg/i18n"
	"github.com/akinalp/lokanta/pkg/notify"
	"github.com/akinalp/lokanta/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Session    services.SessionService
	Restaurant services.RestaurantService
	Detail     services.DetailService
}

// initServices, service katmanını kurar.
func initServices(apis *APIs, hub *notify.Hub, loc *i18n.Localizer) *Services {
	session := services.NewSessionService(apis.Auth, hub, loc)

	return &Services{
		Session:    session,
		Restaurant: services.NewRestaurantService(apis.Restaurant, session, hub, loc),
		Detail:     services.NewDetailService(apis.Restaurant, apis.Rating, apis.Comment, session, hub, loc),
	}
}
