package storage

import (
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Jar, http.CookieJar interface'ini SQLite üzerinde implement eder.
// http.Client her istekten önce Cookies(), her yanıttan sonra SetCookies()
// çağırır; biz de cookie'leri diske yansıtırız. Interface hata döndürmediği
// için sorunlar loglanır ve istek akışı kesilmez — en kötü ihtimalle
// kullanıcı bir sonraki komutta tekrar login olur.
type Jar struct {
	store *Store
}

// NewJar, verilen store üzerinde çalışan bir cookie jar oluşturur.
func NewJar(store *Store) *Jar {
	return &Jar{store: store}
}

// SetCookies, sunucunun Set-Cookie header'larını kalıcı hale getirir.
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	host := u.Hostname()

	for _, c := range cookies {
		path := c.Path
		if path == "" {
			path = "/"
		}

		// MaxAge<0 veya geçmiş Expires → sunucu cookie'yi siliyor demektir
		if c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(time.Now())) {
			if _, err := j.store.conn.Exec(
				`DELETE FROM cookies WHERE host = ? AND name = ? AND path = ?`,
				host, c.Name, path,
			); err != nil {
				log.Printf("[storage] failed to delete cookie %s: %v", c.Name, err)
			}
			continue
		}

		// expires_at: unix saniye; 0 = session cookie (process'ler kısa
		// ömürlü olduğu için onları da saklıyoruz)
		var expiresAt int64
		switch {
		case c.MaxAge > 0:
			expiresAt = time.Now().Add(time.Duration(c.MaxAge) * time.Second).Unix()
		case !c.Expires.IsZero():
			expiresAt = c.Expires.Unix()
		}

		if _, err := j.store.conn.Exec(
			`INSERT INTO cookies (host, name, path, value, expires_at, secure, http_only, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(host, name, path) DO UPDATE SET
			   value      = excluded.value,
			   expires_at = excluded.expires_at,
			   secure     = excluded.secure,
			   http_only  = excluded.http_only`,
			host, c.Name, path, c.Value, expiresAt, c.Secure, c.HttpOnly, time.Now().Unix(),
		); err != nil {
			log.Printf("[storage] failed to save cookie %s: %v", c.Name, err)
		}
	}
}

// Cookies, verilen URL için geçerli cookie'leri döndürür.
func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	host := u.Hostname()
	now := time.Now().Unix()

	// Süresi dolanları temizle — lazy expiry, ayrı bir GC görevine gerek yok
	if _, err := j.store.conn.Exec(
		`DELETE FROM cookies WHERE expires_at > 0 AND expires_at <= ?`, now,
	); err != nil {
		log.Printf("[storage] failed to purge expired cookies: %v", err)
	}

	rows, err := j.store.conn.Query(
		`SELECT name, value, path, secure FROM cookies WHERE host = ?`, host,
	)
	if err != nil {
		log.Printf("[storage] failed to load cookies for %s: %v", host, err)
		return nil
	}
	defer rows.Close()

	requestPath := u.Path
	if requestPath == "" {
		requestPath = "/"
	}

	var result []*http.Cookie
	for rows.Next() {
		var name, value, path string
		var secure bool
		if err := rows.Scan(&name, &value, &path, &secure); err != nil {
			log.Printf("[storage] failed to scan cookie row: %v", err)
			continue
		}

		// Path matching (RFC 6265 §5.1.4): cookie path'i istek path'inin
		// prefix'i olmalı
		if !pathMatches(requestPath, path) {
			continue
		}
		// Secure cookie'ler yalnızca https üzerinden gönderilir
		if secure && u.Scheme != "https" {
			continue
		}

		result = append(result, &http.Cookie{Name: name, Value: value})
	}
	if err := rows.Err(); err != nil {
		log.Printf("[storage] cookie iteration error: %v", err)
	}

	return result
}

func pathMatches(requestPath, cookiePath string) bool {
	if requestPath == cookiePath {
		return true
	}
	if strings.HasPrefix(requestPath, cookiePath) {
		return strings.HasSuffix(cookiePath, "/") ||
			requestPath[len(cookiePath)] == '/'
	}
	return false
}
