// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya error tanımlarını içerir.
//
// İki katmanlı bir error modeli vardır:
//
//  1. Sentinel domain error'lar (ErrNotFound, ErrForbidden, ...) —
//     errors.Is ile karşılaştırılır, string karşılaştırmasından güvenlidir.
//  2. *APIError — server'ın {error, details} zarfını taşıyan typed error.
//     Her network çağrısı başarısız olduğunda bir *APIError döner; spekülatif
//     "err.response.data.details" tarzı alan okuma YOKTUR.
//
// APIError ilgili sentinel'i sarar (Unwrap), böylece caller hem
// errors.Is(err, pkg.ErrNotFound) hem de pkg.AsAPIError(err) kullanabilir.
package pkg

import (
	"errors"
)

// Domain-level error'lar.
// Service katmanı HTTP status code yerine bunlarla branch'ler.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
	ErrInternal     = errors.New("internal error")
)

// GenericErrorMessage, server'dan anlamlı bir mesaj alınamadığında
// kullanıcıya gösterilen fallback.
const GenericErrorMessage = "Something went wrong"

// APIError, bir API çağrısının yapılandırılmış hatası.
//
// Server'ın hata zarfı {error: string, details?: map[field][]string}
// şeklindedir; transport hataları da aynı tipe map'lenir (StatusCode: 500).
// Details, form alanı bazlı validation mesajlarını taşır.
type APIError struct {
	Message    string
	StatusCode int
	Details    map[string][]string
}

// Error, error interface implementasyonu.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap, StatusCode'a karşılık gelen sentinel error'ı döner.
// Böylece errors.Is(err, pkg.ErrUnauthorized) gibi kontroller çalışır.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 400, 409, 422:
		return ErrBadRequest
	default:
		return ErrInternal
	}
}

// NewAPIError, constructor. Boş mesaj fallback'e düşer.
func NewAPIError(message string, statusCode int, details map[string][]string) *APIError {
	if message == "" {
		message = GenericErrorMessage
	}
	if statusCode == 0 {
		statusCode = 500
	}
	return &APIError{Message: message, StatusCode: statusCode, Details: details}
}

// AsAPIError, error chain'inden *APIError çıkarır.
// Bulunamazsa verilen error'ı generic bir APIError'a map'ler — UI katmanı
// her zaman yapılandırılmış bir hata ile çalışır, raw error sızmaz.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewAPIError(GenericErrorMessage, 500, nil)
}

// FlattenDetails, alan bazlı hata listelerini "alan başına tek mesaj"a indirger
// (her alanın İLK mesajı). Form gösterimi bu map'i kullanır.
//
// Örnek: {name: ["Name is required", "..."], phone: ["Too short"]}
// → {name: "Name is required", phone: "Too short"}
func FlattenDetails(details map[string][]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	flat := make(map[string]string, len(details))
	for field, msgs := range details {
		if len(msgs) > 0 && msgs[0] != "" {
			flat[field] = msgs[0]
		}
	}
	if len(flat) == 0 {
		return nil
	}
	return flat
}
