// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// lokanta bir API istemcisidir — server ayarları yerine bağlanılacak API'nin
// adresi, HTTP timeout'u ve cookie store'un diskteki yeri konfigüre edilir.
// Her yerde ayrı ayrı os.Getenv() çağırmak yerine tek bir Config nesnesi taşırız.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
// Her alt bölüm ayrı bir struct — her struct tek bir concern'ü temsil eder.
type Config struct {
	API      APIConfig
	HTTP     HTTPConfig
	Storage  StorageConfig
	Language string // Kullanıcıya gösterilen mesajların dili: "en", "tr"
}

// APIConfig, bağlanılacak restoran API'sinin ayarları.
type APIConfig struct {
	BaseURL string // Tüm endpoint'lerin önüne eklenen base path (ör: http://localhost:9090/api)
}

// HTTPConfig, outbound HTTP istemcisinin ayarları.
type HTTPConfig struct {
	TimeoutSeconds int // Her istek için toplam timeout (varsayılan: 15)
}

// StorageConfig, kalıcı client verisinin (cookie store) ayarları.
type StorageConfig struct {
	DataDir string // Cookie veritabanının tutulduğu dizin (varsayılan: ~/.lokanta)
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
//
// Session cookie'nin kendisi burada TUTULMAZ — config sadece cookie
// store'un diskteki yerini bilir. Cookie değerleri uygulama kodu için
// her zaman opaktır.
func Load() (*Config, error) {
	// .env dosyasını yükle — dosya yoksa hata vermez, sessizce devam eder.
	_ = godotenv.Load()

	timeout, err := strconv.Atoi(getEnv("LOKANTA_HTTP_TIMEOUT", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOKANTA_HTTP_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("LOKANTA_HTTP_TIMEOUT must be positive, got %d", timeout)
	}

	baseURL := strings.TrimRight(getEnv("LOKANTA_API_URL", "http://localhost:9090/api"), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("LOKANTA_API_URL must not be empty")
	}

	dataDir := getEnv("LOKANTA_DATA_DIR", "")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".lokanta")
	}

	lang := getEnv("LOKANTA_LANGUAGE", "en")

	cfg := &Config{
		API: APIConfig{
			BaseURL: baseURL,
		},
		HTTP: HTTPConfig{
			TimeoutSeconds: timeout,
		},
		Storage: StorageConfig{
			DataDir: dataDir,
		},
		Language: lang,
	}

	return cfg, nil
}

// CookieDBPath, cookie store SQLite dosyasının tam yolunu döner.
func (c *StorageConfig) CookieDBPath() string {
	return filepath.Join(c.DataDir, "cookies.db")
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
