// Session refresh protokolü: 401 → refresh → replay (bir kez).
//
// Durum makinesi:
//
//	NORMAL → (401) → REFRESHING → (başarı) → REPLAY → NORMAL
//	                           → (başarısızlık) → FAILED → orijinal 401 döner
//
// Kurallar:
//  1. 401 yalnızca şu üç koşul birden sağlanırsa refresh tetikler:
//     istek refresh endpoint'inin kendisi değil, istek daha önce replay
//     edilmemiş, caller SkipAuthRefresh istememiş.
//  2. Tam BİR refresh çağrısı yapılır (kendisi SkipAuthRefresh ile —
//     recursion kesilir), ardından orijinal istek birebir replay edilir.
//  3. Refresh'in kendisi başarısız olursa (network hatası veya non-2xx)
//     caller'a ORİJİNAL 401 iletilir; refresh hatası ayrıca surface edilmez.
//  4. Replay de 401 dönerse tekrar denenmez — kalıcı olarak geçersiz bir
//     session altında sonsuz döngü imkânsızdır.
//
// Eşzamanlılık: birden fazla istek aynı anda 401 alırsa her biri kendi
// refresh'ini bağımsız tetikler. Coalescing (single-flight) bilinçli olarak
// YOKTUR — protokol bunsuz da doğrudur, bkz. DESIGN.md.
package httpclient

import (
	"context"
	"log"
	"net/http"
	"net/url"
)

// shouldRefresh, bir 401'in refresh tetikleyip tetiklemeyeceğini söyler.
func (c *Client) shouldRefresh(path string, opts *RequestOptions) bool {
	return !opts.SkipAuthRefresh && path != EndpointAuthRefresh
}

// refreshAndReplay, kural 2-4'ü uygular.
//
// resp: orijinal isteğin 401 yanıtı. Refresh başarısız olursa bu yanıtın
// zarfı caller'a dönecek hatadır; bu yüzden replay'den ÖNCE decode edilir
// (decodeError body'yi kapatır).
func (c *Client) refreshAndReplay(ctx context.Context, method, path string, query url.Values, payload []byte, requestID string, resp *http.Response, out any) error {
	origErr := decodeError(resp)

	log.Printf("[httpclient] 401 on %s %s — attempting session refresh", method, path)

	refreshOpts := &RequestOptions{SkipAuthRefresh: true}
	if err := c.Do(ctx, http.MethodPost, EndpointAuthRefresh, nil, nil, nil, refreshOpts); err != nil {
		// Refresh reddedildi veya ulaşılamadı — orijinal 401 propagate edilir.
		log.Printf("[httpclient] session refresh failed: %v", err)
		return origErr
	}

	// Replay — birebir aynı payload, aynı request id. Bu noktadan sonra
	// istek "_retried" sayılır: ikinci bir 401 finish() içinde hata olarak
	// döner, refreshAndReplay bir daha çağrılmaz.
	log.Printf("[httpclient] session refreshed — replaying %s %s", method, path)

	replayResp, err := c.send(ctx, method, path, query, payload, requestID)
	if err != nil {
		return transportError(err)
	}
	return c.finish(replayResp, out)
}
