// Package i18n embed dosyası — çeviri JSON dosyalarını binary'ye gömer.
//
// Çeviri dosyaları (en.json, tr.json) derleme zamanında binary'ye gömülür;
// kurulan tek binary harici dosyaya ihtiyaç duymaz.
package i18n

import (
	"embed"
	"io/fs"
)

//go:embed locales/*.json
var localeFiles embed.FS

// EmbeddedLocales, çeviri JSON dosyalarını kökünde içeren dosya sistemi.
// Doğrudan Load'a geçilir: i18n.Load(i18n.EmbeddedLocales)
var EmbeddedLocales = func() fs.FS {
	sub, err := fs.Sub(localeFiles, "locales")
	if err != nil {
		panic("i18n: locales subdirectory missing from embed: " + err.Error())
	}
	return sub
}()
