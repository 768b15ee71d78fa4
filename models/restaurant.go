package models

// Restaurant, list/getById yanıtlarındaki restoran kaydı.
//
// Şema server ile hizalıdır: cuisineType / fullAddress / averageRating.
// AverageRating server tarafında hesaplanan bir agregattır — client bu
// değeri ASLA kendisi hesaplamaz, her rating yazımından sonra yeniden çeker.
type Restaurant struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	FullAddress     string  `json:"fullAddress"`
	Phone           string  `json:"phone"`
	CuisineType     string  `json:"cuisineType"`
	ImageURL        *string `json:"imageUrl"` // *string = nullable — görsel opsiyonel
	CreatedByUserID string  `json:"createdByUserId"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
	AverageRating   float64 `json:"averageRating,omitempty"`
}

// IsOwnedBy, restoranın verilen kullanıcıya ait olup olmadığını söyler.
//
// Bu kontrol bir UI kolaylığıdır — gerçek yetki kontrolü server'dadır.
// Client yalnızca sahibi olmayan kullanıcıya edit/delete akışı sunmamak
// için kullanır.
func (r *Restaurant) IsOwnedBy(user *AuthUser) bool {
	return user != nil && r.CreatedByUserID == user.ID
}

// CanRateOrComment, kullanıcının bu restorana puan/yorum bırakıp
// bırakamayacağını söyler: giriş yapmış VE sahibi olmayan kullanıcılar.
// Sahip kendi restoranını puanlayamaz ve yorumlayamaz.
func (r *Restaurant) CanRateOrComment(user *AuthUser) bool {
	return user != nil && !r.IsOwnedBy(user)
}

// CreateRestaurantInput, yeni restoran oluşturma gövdesi.
//
// Dört zorunlu alan (name, fullAddress, phone, cuisineType) network çağrısı
// yapılmadan ÖNCE client-side kontrol edilir — eksikse istek hiç çıkmaz.
type CreateRestaurantInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	FullAddress string  `json:"fullAddress" validate:"required,max=500"`
	Phone       string  `json:"phone" validate:"required,len=10,phone"`
	CuisineType string  `json:"cuisineType" validate:"required"`
	ImageURL    *string `json:"imageUrl,omitempty" validate:"omitempty,max=2048,http_url"`
}

// UpdateRestaurantInput, PATCH gövdesi — edit formu her alanı gönderir,
// bu yüzden kurallar create ile aynıdır.
type UpdateRestaurantInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	FullAddress string  `json:"fullAddress" validate:"required,max=500"`
	Phone       string  `json:"phone" validate:"required,len=10,phone"`
	CuisineType string  `json:"cuisineType" validate:"required"`
	ImageURL    *string `json:"imageUrl,omitempty" validate:"omitempty,max=2048,http_url"`
}

// ListRestaurantsParams, GET /restaurants için opsiyonel query parametreleri.
// nil pointer = parametre gönderilmez.
type ListRestaurantsParams struct {
	CuisineType *string
	Limit       *int
	Offset      *int
}
