// Package main — API katmanı başlatma.
//
// initAPIs, tüm HTTP API implementasyonlarını oluşturur.
// Service katmanı bu concrete struct'lara değil api paketi
// interface'lerine bağımlıdır — testlerde fake'lerle değiştirilir.
package main

import (
	"github.com/akinalp/lokanta/api"
	"github.com/akinalp/lokanta/httpclient"
)

// APIs, tüm API instance'larını tutan container struct.
type APIs struct {
	Auth       api.AuthAPI
	Restaurant api.RestaurantAPI
	Rating     api.RatingAPI
	Comment    api.CommentAPI
}

// initAPIs, paylaşılan HTTP client üzerinde API katmanını kurar.
// Hepsi aynı client'ı kullanır: cookie jar ve 401→refresh→replay
// davranışı tek yerden gelir.
func initAPIs(client *httpclient.Client) *APIs {
	return &APIs{
		Auth:       api.NewHTTPAuthAPI(client),
		Restaurant: api.NewHTTPRestaurantAPI(client),
		Rating:     api.NewHTTPRatingAPI(client),
		Comment:    api.NewHTTPCommentAPI(client),
	}
}
