// Package cli, terminal komutlarını yönetir.
//
// Komutun görevi çok basit ve "ince" (thin) olmalı:
// 1. Flag'leri parse et (argümanlar → input struct)
// 2. Service katmanını çağır
// 3. Sonucu terminale yazdır
//
// Komut ASLA iş mantığı (business logic) içermez.
// Komut ASLA doğrudan HTTP isteği atmaz.
// Tüm akıl service'de, komut sadece köprü.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/akinalp/lokanta/pkg"
	"github.com/akinalp/lokanta/pkg/i18n"
	"github.com/akinalp/lokanta/pkg/notify"
	"github.com/akinalp/lokanta/services"
)

// Runner, komutları service katmanına bağlayan struct.
// Tüm bağımlılıklar constructor'dan alınır (DI).
type Runner struct {
	session     services.SessionService
	restaurants services.RestaurantService
	details     services.DetailService
	loc         *i18n.Localizer
	toasts      <-chan notify.Toast
	out         io.Writer
}

// NewRunner, constructor.
// toasts: service'lerin yayınladığı bildirimler; her komut sonunda
// terminale basılır.
func NewRunner(
	session services.SessionService,
	restaurants services.RestaurantService,
	details services.DetailService,
	loc *i18n.Localizer,
	toasts <-chan notify.Toast,
	out io.Writer,
) *Runner {
	return &Runner{
		session:     session,
		restaurants: restaurants,
		details:     details,
		loc:         loc,
		toasts:      toasts,
		out:         out,
	}
}

// Run, komutu dispatch eder. Her çalıştırma önce Bootstrap yapar:
// diskteki cookie'lerle mevcut session doğrulanır, komut ondan sonra
// doğru auth bağlamında koşar.
func (r *Runner) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		r.printUsage()
		return fmt.Errorf("no command given")
	}

	cmd, rest := args[0], args[1:]

	if cmd == "help" {
		r.printUsage()
		return nil
	}

	r.session.Bootstrap(ctx)

	var err error
	switch cmd {
	// ─── Auth ───
	case "signup":
		err = r.cmdSignup(ctx, rest)
	case "login":
		err = r.cmdLogin(ctx, rest)
	case "logout":
		err = r.cmdLogout(ctx)
	case "me":
		err = r.cmdMe()
	case "forgot-password":
		err = r.cmdForgotPassword(ctx, rest)
	case "reset-password":
		err = r.cmdResetPassword(ctx, rest)
	case "change-password":
		err = r.cmdChangePassword(ctx, rest)

	// ─── Restoranlar ───
	case "list":
		err = r.cmdList(ctx, rest)
	case "show":
		err = r.cmdShow(ctx, rest)
	case "add":
		err = r.cmdAdd(ctx, rest)
	case "edit":
		err = r.cmdEdit(ctx, rest)
	case "delete":
		err = r.cmdDelete(ctx, rest)

	// ─── Puan ve yorumlar ───
	case "rate":
		err = r.cmdRate(ctx, rest)
	case "comment":
		err = r.cmdComment(ctx, rest)
	case "uncomment":
		err = r.cmdUncomment(ctx, rest)

	default:
		r.printUsage()
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	r.flushToasts()
	return err
}

// flushToasts, birikmiş bildirimleri terminale basar.
// Kanal non-blocking okunur: toast yoksa beklemeyiz.
func (r *Runner) flushToasts() {
	for {
		select {
		case t := <-r.toasts:
			switch t.Level {
			case notify.LevelSuccess:
				fmt.Fprintf(r.out, "✓ %s\n", t.Message)
			default:
				fmt.Fprintf(r.out, "✗ %s\n", t.Message)
			}
		default:
			return
		}
	}
}

// printFieldErrors, alan hatalarını alfabetik sırayla yazdırır.
// Map iterasyonu Go'da rastgeledir; deterministik çıktı için sort şart.
func (r *Runner) printFieldErrors(fieldErrs map[string]string) {
	fields := make([]string, 0, len(fieldErrs))
	for f := range fieldErrs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(r.out, "  %s: %s\n", f, fieldErrs[f])
	}
}

// requireAuth — komut oturum gerektirir.
func (r *Runner) requireAuth() error {
	if r.session.CurrentUser() == nil {
		return fmt.Errorf("%s", r.loc.T("guard.loginRequired"))
	}
	return nil
}

// forbiddenAs, yetki hatalarını kullanıcının anlayacağı mesaja çevirir.
// ErrForbidden tek başına "neden yasak?" sorusuna cevap vermez; hangi
// komuttan geldiğini komut bilir, uygun katalog anahtarını o seçer.
func (r *Runner) forbiddenAs(err error, key string) error {
	if errors.Is(err, pkg.ErrForbidden) {
		return fmt.Errorf("%s", r.loc.T(key))
	}
	return err
}

// requireGuest — komut yalnızca oturum YOKKEN anlamlıdır (login, signup).
func (r *Runner) requireGuest() error {
	if r.session.CurrentUser() != nil {
		return fmt.Errorf("%s", r.loc.T("guard.alreadyLoggedIn"))
	}
	return nil
}

func (r *Runner) printUsage() {
	fmt.Fprint(r.out, `lokanta — restaurant discovery client

Auth:
  signup          -name -email -password [-phone]
  login           -email -password
  logout
  me
  forgot-password -email
  reset-password  -token -password
  change-password -current -new

Restaurants:
  list            [-cuisine] [-limit] [-offset]
  show            -id
  add             -name -address -phone -cuisine [-image]
  edit            -id [-name] [-address] [-phone] [-cuisine] [-image]
  delete          -id

Ratings & comments:
  rate            -id -stars
  comment         -id -body
  uncomment       -id -comment
`)
}
