package cli

import (
	"errors"
	"testing"

	"github.com/akinalp/lokanta/pkg"
	"github.com/akinalp/lokanta/pkg/i18n"
)

func testRunner(t *testing.T) *Runner {
	t.Helper()
	if err := i18n.Load(i18n.EmbeddedLocales); err != nil {
		t.Fatalf("i18n.Load failed: %v", err)
	}
	return &Runner{loc: i18n.NewLocalizer("en")}
}

func TestForbiddenAsTranslatesOwnershipErrors(t *testing.T) {
	// 1. Given: service katmanından gelen ham bir yetki hatası.
	r := testRunner(t)
	forbidden := pkg.NewAPIError("Forbidden", 403, nil)

	// 2. When / Then: her komut kendi katalog mesajını seçer.
	cases := []struct {
		key  string
		want string
	}{
		{"guard.notYourRestaurant", "You can only edit your own restaurants"},
		{"guard.ownerCannotRate", "You cannot rate or comment on your own restaurant"},
		{"guard.notYourComment", "You can only delete your own comments"},
	}
	for _, c := range cases {
		got := r.forbiddenAs(forbidden, c.key)
		if got == nil || got.Error() != c.want {
			t.Errorf("%s: expected %q, got %v", c.key, c.want, got)
		}
	}
}

func TestForbiddenAsPassesOtherErrorsThrough(t *testing.T) {
	// 1. Given: 403 olmayan bir hata.
	r := testRunner(t)
	notFound := pkg.NewAPIError("Restaurant not found", 404, nil)

	// 2. When
	got := r.forbiddenAs(notFound, "guard.notYourRestaurant")

	// 3. Then: hata ellenmeden geri döner, sentinel zinciri korunur.
	if !errors.Is(got, pkg.ErrNotFound) {
		t.Errorf("expected original error untouched, got %v", got)
	}

	// nil hata nil kalır.
	if err := r.forbiddenAs(nil, "guard.notYourRestaurant"); err != nil {
		t.Errorf("expected nil passthrough, got %v", err)
	}
}
