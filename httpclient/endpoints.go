// Endpoint path sabitleri.
//
// URL'ler kod içine dağınık string olarak gömülmek yerine burada toplanır —
// refresh muafiyeti gibi path karşılaştırmaları da bu sabitler üzerinden
// yapılır, typo'ya yer kalmaz.
package httpclient

import "net/url"

// Auth endpoint'leri.
const (
	EndpointAuthSignup         = "/auth/signup"
	EndpointAuthLogin          = "/auth/login"
	EndpointAuthLogout         = "/auth/logout"
	EndpointAuthRefresh        = "/auth/refresh"
	EndpointAuthMe             = "/auth/me"
	EndpointAuthForgotPassword = "/auth/forgot-password"
	EndpointAuthResetPassword  = "/auth/reset-password"
	EndpointAuthChangePassword = "/auth/change-password"
)

// EndpointRestaurants — GET (liste) / POST (oluştur).
const EndpointRestaurants = "/restaurants"

// EndpointRestaurantByID — GET / PATCH / DELETE tek restoran.
func EndpointRestaurantByID(id string) string {
	return EndpointRestaurants + "/" + url.PathEscape(id)
}

// EndpointRestaurantComments — GET (liste) / POST (ekle).
func EndpointRestaurantComments(restaurantID string) string {
	return EndpointRestaurantByID(restaurantID) + "/comments"
}

// EndpointRestaurantComment — DELETE tek yorum.
func EndpointRestaurantComment(restaurantID, commentID string) string {
	return EndpointRestaurantComments(restaurantID) + "/" + url.PathEscape(commentID)
}

// EndpointRestaurantRatings — GET (agregat + kendi puanın) / PUT (puan ver).
func EndpointRestaurantRatings(restaurantID string) string {
	return EndpointRestaurantByID(restaurantID) + "/ratings"
}
