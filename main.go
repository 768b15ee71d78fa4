// Package main, lokanta terminal istemcisinin giriş noktasıdır.
//
// Bu dosyanın görevi — Dependency Injection "wire-up":
//  1. Config'i yükle
//  2. Cookie store'u (SQLite) başlat
//  3. i18n çevirilerini yükle
//  4. HTTP client'ı kur (cookie jar + otomatik session refresh)
//  5. API katmanını oluştur (client ile)
//  6. Toast hub'ını başlat
//  7. Service'leri oluştur (API + hub ile)
//  8. CLI runner'ı oluştur ve komutu çalıştır
//
// Global değişken YOK — her şey bu fonksiyonda oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akinalp/lokanta/cli"
	"github.com/akinalp/lokanta/config"
	"github.com/akinalp/lokanta/httpclient"
	"github.com/akinalp/lokanta/pkg/i18n"
	"github.com/akinalp/lokanta/pkg/notify"
	"github.com/akinalp/lokanta/storage"
)

func main() {
	// Loglar normalde sessizdir; LOKANTA_DEBUG=1 ile stderr'e açılır.
	// stdout komut çıktısına ayrılmıştır.
	log.SetFlags(0)
	if os.Getenv("LOKANTA_DEBUG") == "" {
		log.SetOutput(io.Discard)
	}

	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("[main] failed to load config: %v", err)
	}

	// ─── 2. Cookie Store ───
	store, err := storage.Open(cfg.Storage.CookieDBPath())
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("[main] failed to open cookie store: %v", err)
	}
	defer store.Close()

	// ─── 3. i18n (Çoklu Dil Desteği) ───
	if err := i18n.Load(i18n.EmbeddedLocales); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("[main] failed to load i18n translations: %v", err)
	}
	localizer := i18n.NewLocalizer(cfg.Language)

	// ─── 4. HTTP Client ───
	client := httpclient.New(
		cfg.API.BaseURL,
		time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second,
		storage.NewJar(store),
	)

	// ─── 5. API Katmanı ───
	apis := initAPIs(client)

	// ─── 6. Toast Hub ───
	hub := notify.NewHub()
	toasts, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	// ─── 7. Service Katmanı ───
	svcs := initServices(apis, hub, localizer)

	// ─── 8. CLI ───
	runner := cli.NewRunner(svcs.Session, svcs.Restaurant, svcs.Detail, localizer, toasts, os.Stdout)

	// Ctrl+C ile bekleyen istekler iptal edilir; cookie store
	// defer'larla temiz kapanır.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := runner.Run(ctx, os.Args[1:]); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
