package models

// RatingSummary, GET /restaurants/:id/ratings yanıtı — server tarafında
// her rating yazımında yeniden hesaplanan türetilmiş agregat.
//
// Client bu değerleri her zaman "yazdıktan sonra yeniden çek" olarak ele
// alır; lokal olarak asla yeniden hesaplamaz. UserRating nil ise oturumdaki
// kullanıcı henüz puan vermemiştir.
type RatingSummary struct {
	AverageRating float64  `json:"averageRating"`
	TotalRatings  int      `json:"totalRatings"`
	UserRating    *float64 `json:"userRating"`
}

// SetRatingInput, PUT /restaurants/:id/ratings gövdesi. 1-5 arası tam puan.
type SetRatingInput struct {
	Stars int `json:"stars" validate:"required,min=1,max=5"`
}

// Rating, PUT yanıtında dönen tekil rating kaydı.
type Rating struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurantId"`
	UserID       string `json:"userId"`
	Stars        int    `json:"stars"`
}
