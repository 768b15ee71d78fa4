// Package httpclient, API'ye giden TÜM istekleri tek bir noktadan geçirir.
//
// Sorumlulukları:
//   - Sabit base URL + JSON content negotiation
//   - Cookie jar üzerinden session taşıma — session HTTP-only bir cookie'dir,
//     uygulama kodu token değerini ASLA okumaz veya saklamaz
//   - 401 yakalama: session refresh protokolü (bkz. refresh.go)
//   - Hata zarfını ({error, details}) *pkg.APIError'a çevirme
//
// Neden üçüncü parti bir HTTP kütüphanesi değil?
// net/http + cookie jar bu işin tamamını karşılar; interceptor mantığı
// Do() içinde açıkça durur, gizli bir middleware zincirinin arkasında değil.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/akinalp/lokanta/pkg"
)

// RequestOptions, tek bir istek için davranış bayrakları.
type RequestOptions struct {
	// SkipAuthRefresh true ise bu isteğin 401'i refresh + replay TETİKLEMEZ.
	// Refresh çağrısının kendisi bu bayrakla gönderilir — aksi halde
	// başarısız bir refresh yeni bir refresh tetikler ve sonsuz döngü oluşur.
	SkipAuthRefresh bool
}

// Client, paylaşılan API istemcisi.
// Tüm repository-benzeri API katmanları (api paketi) aynı Client'ı kullanır;
// böylece cookie'ler ve refresh davranışı her çağrı için aynıdır.
type Client struct {
	baseURL string
	http    *http.Client
}

// New, Client oluşturur.
//
// jar: session cookie'sinin yaşadığı yer. Production'da storage.Jar
// (SQLite destekli, process'ler arası kalıcı), testlerde in-memory
// cookiejar.Jar geçilir.
func New(baseURL string, timeout time.Duration, jar http.CookieJar) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}
}

// errorEnvelope, server'ın hata gövdesi: {error: "...", details: {...}}.
type errorEnvelope struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details"`
}

// Do, bir API isteği gönderir ve yanıtı out'a decode eder.
//
// body nil değilse JSON'a marshal edilir — TEK KEZ, byte olarak. Replay
// aynı byte'ları kullanır, böylece tekrar gönderim birebir aynıdır.
// out nil ise yanıt gövdesi atılır (ör: logout, delete).
//
// Hata durumları:
//   - Transport hatası (yanıt yok): *pkg.APIError{StatusCode: 500}, altta
//     yatan hata mesajıyla — caller'a yutulmadan iletilir.
//   - Non-2xx: hata zarfı decode edilip *pkg.APIError döner.
//   - 401: refresh protokolü devreye girer (refresh.go) — çözülemezse
//     ORİJİNAL 401 hatası döner.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any, opts *RequestOptions) error {
	if opts == nil {
		opts = &RequestOptions{}
	}

	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = b
	}

	// Aynı istek replay edildiğinde de aynı request id taşınır —
	// server log'larında orijinal deneme ile replay eşleştirilebilir.
	requestID := uuid.NewString()

	resp, err := c.send(ctx, method, path, query, payload, requestID)
	if err != nil {
		return transportError(err)
	}

	if resp.StatusCode == http.StatusUnauthorized && c.shouldRefresh(path, opts) {
		return c.refreshAndReplay(ctx, method, path, query, payload, requestID, resp, out)
	}

	return c.finish(resp, out)
}

// send, tek bir HTTP denemesi yapar. Her deneme için taze *http.Request
// kurulur (Body bir io.Reader'dır, tekrar okunamaz).
func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte, requestID string) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

// finish, yanıtı sonlandırır: 2xx ise out'a decode eder, değilse hata
// zarfını *pkg.APIError'a çevirir. Her iki yolda da body kapatılır.
func (c *Client) finish(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return pkg.NewAPIError("failed to decode response: "+err.Error(), 500, nil)
		}
		return nil
	}

	return decodeError(resp)
}

// decodeError, non-2xx yanıtın gövdesini okur ve *pkg.APIError üretir.
// Gövde zarfa uymuyorsa mesaj generic fallback'e düşer — spekülatif alan
// okuma yok, decode edilemeyen gövde sessizce yoksayılır.
func decodeError(resp *http.Response) error {
	defer resp.Body.Close()

	var envelope errorEnvelope
	// Hata gövdesi küçüktür; limitli oku — bozuk bir server yanıtı
	// belleği şişirmesin.
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	_ = json.Unmarshal(data, &envelope)

	return pkg.NewAPIError(envelope.Error, resp.StatusCode, envelope.Details)
}

// transportError, yanıt alınamayan hataları (DNS, bağlantı reddi, timeout)
// tek tip APIError'a çevirir. statusCode 500 varsayılır.
func transportError(err error) error {
	return pkg.NewAPIError(err.Error(), 500, nil)
}
