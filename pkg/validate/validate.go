// Package validate, network çağrısı yapılmadan ÖNCE çalışan client-side
// form doğrulamasını sağlar.
//
// Neden server'a bırakmıyoruz?
// Zorunlu alan eksikse istek HİÇ çıkmaz — kullanıcı round-trip beklemeden
// alan bazlı hata mesajını görür. Server yine de kendi doğrulamasını yapar;
// buradaki kurallar server şemasının aynasıdır, otoritesi değil.
//
// go-playground/validator kullanılır: kurallar model struct'larının
// validate tag'lerinde yaşar, mesajlar ise buradaki tabloda. Dönen map'in
// key'leri JSON alan adlarıdır (Name değil name) — server'ın details
// map'iyle aynı uzayda, böylece iki kaynaktan gelen alan hataları aynı
// form alanına bağlanabilir.
package validate

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// phoneRegex — başta opsiyonel +, sonra rakam, boşluk, tire, nokta, parantez.
var phoneRegex = regexp.MustCompile(`^\+?[\d\s\-.()]+$`)

// v, paket seviyesinde tek validator instance'ı.
// validator.Validate thread-safe'dir ve cache tuttuğu için paylaşılır.
var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	// Alan adı olarak json tag'ini kullan — hata map'inin key'leri
	// server'ın döndüğü details key'leriyle aynı olsun.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// phone: serbest formatlı telefon — rakamlar ve + - . ( ) boşluk.
	_ = val.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})

	return val
}

// fieldMessages, "alan.kural" → kullanıcıya gösterilen mesaj tablosu.
// Önce buradan tam eşleşme aranır, yoksa tagMessages'a düşülür.
type msgKey struct{ field, tag string }

var fieldMessages = map[msgKey]string{
	{"name", "required"}:            "Name is required",
	{"fullAddress", "required"}:     "Full address is required",
	{"phone", "required"}:           "Phone is required",
	{"cuisineType", "required"}:     "Cuisine type is required",
	{"email", "required"}:           "Email is required",
	{"email", "email"}:              "Please enter a valid email address",
	{"password", "required"}:        "Password is required",
	{"password", "min"}:             "Password must be at least 6 characters",
	{"password", "max"}:             "Password must be at most 128 characters",
	{"newPassword", "required"}:     "New password is required",
	{"newPassword", "min"}:          "Password must be at least 6 characters",
	{"newPassword", "max"}:          "Password must be at most 128 characters",
	{"newPassword", "nefield"}:      "New password must be different from current password",
	{"currentPassword", "required"}: "Current password is required",
	{"token", "required"}:           "Reset token is required",
	{"body", "required"}:            "Comment is required",
	{"body", "max"}:                 "Comment must be at most 2000 characters",
	{"stars", "required"}:           "Rating must be between 1 and 5",
	{"stars", "min"}:                "Rating must be between 1 and 5",
	{"stars", "max"}:                "Rating must be between 1 and 5",
	{"phone", "len"}:                "Enter a valid phone number (10 digits)",
	{"phone", "phone"}:              "Enter a valid phone number (10 digits)",
	{"imageUrl", "http_url"}:        "Please enter a valid HTTP or HTTPS image URL",
	{"imageUrl", "max"}:             "Please enter a valid HTTP or HTTPS image URL",
}

// tagMessages, alan bazlı eşleşme yoksa kural bazlı fallback.
var tagMessages = map[string]string{
	"required": "This field is required",
	"email":    "Please enter a valid email address",
	"max":      "Value is too long",
	"min":      "Value is too short",
}

// Struct, verilen modeli validate tag'lerine göre doğrular.
//
// Dönüş: alan adı (json) → tek mesaj. Geçerliyse nil.
// Her alan için yalnızca İLK ihlalin mesajı döner — server details'inin
// flatten edilmiş haliyle aynı sözleşme (bkz. pkg.FlattenDetails).
func Struct(s any) map[string]string {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError — programlama hatası (non-struct geçilmiş).
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if _, seen := fields[name]; seen {
			continue
		}
		fields[name] = messageFor(name, fe.Tag())
	}
	return fields
}

func messageFor(field, tag string) string {
	if msg, ok := fieldMessages[msgKey{field, tag}]; ok {
		return msg
	}
	if msg, ok := tagMessages[tag]; ok {
		return msg
	}
	return field + " is invalid"
}
