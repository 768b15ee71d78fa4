// Package storage embed dosyası — cookie store şemasını binary'ye gömer.
// Kurulan tek binary harici SQL dosyasına ihtiyaç duymaz.
package storage

import _ "embed"

// embeddedSchema, cookies tablosunun CREATE TABLE ifadesi.
// CREATE TABLE IF NOT EXISTS olduğu için her açılışta güvenle çalıştırılır —
// tek tablolu bir store için migration zinciri gereksizdir.
//
//go:embed schema.sql
var embeddedSchema string
