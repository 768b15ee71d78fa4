// Package storage, client'ın kalıcı cookie store'unu yönetir.
//
// Neden bir cookie store?
// Session, HTTP-only bir cookie olarak taşınır. Tarayıcıda bu cookie'yi
// runtime saklar ve sayfa yenilemeleri arasında taşır; uygulama kodu
// değerini hiç görmez. Terminal istemcisinde her komut ayrı bir process
// olduğu için aynı işi bu paket yapar: cookie'ler SQLite'ta kalır, sonraki
// çalıştırma aynı session ile devam eder. Cookie DEĞERLERİ yalnızca bu
// paketin içinde dolaşır — service/api katmanları için session her zaman
// opaktır.
package storage

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver — CGO gerekmez, her platformda çalışır
)

// Store, cookie veritabanı bağlantısını saran struct.
// *sql.DB Go'nun built-in connection pool'udur — thread-safe'dir.
type Store struct {
	conn *sql.DB
}

// Open, cookie veritabanını açar (yoksa oluşturur) ve şemayı uygular.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// "_pragma=foreign_keys(1)" → FK constraint'leri aktif
	// "_pragma=journal_mode(WAL)" → eşzamanlı okuma/yazma performansı
	conn, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open cookie store: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping cookie store: %w", err)
	}

	if _, err := conn.Exec(embeddedSchema); err != nil {
		return nil, fmt.Errorf("failed to apply cookie store schema: %w", err)
	}

	log.Printf("[storage] cookie store ready: %s", dbPath)
	return &Store{conn: conn}, nil
}

// Close, veritabanı bağlantısını kapatır.
func (s *Store) Close() error {
	return s.conn.Close()
}
