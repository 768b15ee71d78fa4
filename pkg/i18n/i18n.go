// Package i18n, kullanıcıya gösterilen mesajlar için çoklu dil desteği sağlar.
//
// Server'dan gelen hata mesajları olduğu gibi gösterilir (onları server
// üretir); buradaki katalog client'ın KENDİ ürettiği mesajlar içindir:
// başarı toast'ları, durum satırları, yerel engelleme mesajları.
// Dil, config'ten gelir (LOKANTA_LANGUAGE).
//
// Kullanım:
//
//	localizer := i18n.NewLocalizer("tr")
//	msg := localizer.T("toast.ratingSaved")
//	// → "Puanınız kaydedildi"
package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"sync"
)

// SupportedLanguages — desteklenen dil kodları.
var SupportedLanguages = []string{"en", "tr"}

// DefaultLanguage — varsayılan dil.
const DefaultLanguage = "en"

// translations, tüm dil çevirilerini bellekte tutan harita.
// map[lang]map[key]value formatında.
// Uygulama başlangıcında yüklenir, sonra sadece okunur — thread-safe.
var (
	translations map[string]map[string]string
	loadOnce     sync.Once
)

// Load, çeviri dosyalarını fs.FS'ten yükler.
// localesFS: JSON dosyalarını içeren dosya sistemi (embed.FS veya os.DirFS)
// Her dil için bir JSON dosyası beklenir: en.json, tr.json
//
// sync.Once ile programın ömrü boyunca sadece BİR KERE çalışır —
// birden fazla goroutine aynı anda çağırsa bile sadece biri yükler.
func Load(localesFS fs.FS) error {
	var loadErr error

	loadOnce.Do(func() {
		translations = make(map[string]map[string]string)

		for _, lang := range SupportedLanguages {
			fileName := lang + ".json"

			data, err := fs.ReadFile(localesFS, fileName)
			if err != nil {
				loadErr = fmt.Errorf("failed to read translation file %s: %w", fileName, err)
				return
			}

			// Nested JSON'u flat key'lere dönüştür: {"toast": {"ratingSaved": "..."}} → "toast.ratingSaved"
			var nested map[string]any
			if err := json.Unmarshal(data, &nested); err != nil {
				loadErr = fmt.Errorf("failed to parse translation file %s: %w", fileName, err)
				return
			}

			flat := make(map[string]string)
			flattenMap("", nested, flat)
			translations[lang] = flat

			log.Printf("[i18n] loaded %d keys for language: %s", len(flat), lang)
		}
	})

	return loadErr
}

// Localizer, belirli bir dil için çeviri yapan struct.
type Localizer struct {
	lang string
}

// NewLocalizer, belirli bir dil için Localizer oluşturur.
// Desteklenmeyen dil verilirse varsayılana düşer.
func NewLocalizer(lang string) *Localizer {
	if !isSupported(lang) {
		lang = DefaultLanguage
	}
	return &Localizer{lang: lang}
}

// T, çeviri anahtarına karşılık gelen metni döner.
// Anahtar bulunamazsa → İngilizce'ye düşer.
// İngilizce'de de yoksa → anahtarın kendisini döner.
func (l *Localizer) T(key string) string {
	if msg, ok := translations[l.lang][key]; ok {
		return msg
	}
	if msg, ok := translations[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// TWithParams, parametreli çeviri yapar.
// Çeviri metnindeki {{param}} yer tutucularını değerlerle değiştirir.
func (l *Localizer) TWithParams(key string, params map[string]string) string {
	msg := l.T(key)
	for k, v := range params {
		msg = strings.ReplaceAll(msg, "{{"+k+"}}", v)
	}
	return msg
}

// ─── Helpers ───

func isSupported(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// flattenMap, nested JSON'u "dot notation" key'lere dönüştürür.
func flattenMap(prefix string, src map[string]any, dst map[string]string) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			dst[key] = val
		case map[string]any:
			flattenMap(key, val, dst)
		}
	}
}
