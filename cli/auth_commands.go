package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/akinalp/lokanta/models"
)

// cmdSignup godoc
// lokanta signup -name "Ayşe" -email ayse@example.com -password secret123
//
// Kayıt oturum AÇMAZ — başarılı kayıttan sonra kullanıcı login komutunu
// ayrıca çalıştırır.
func (r *Runner) cmdSignup(ctx context.Context, args []string) error {
	if err := r.requireGuest(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	name := fs.String("name", "", "Full name")
	email := fs.String("email", "", "Email address")
	password := fs.String("password", "", "Password (min 6 characters)")
	phone := fs.String("phone", "", "Phone number (optional, 10 digits)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := models.SignupInput{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Phone:    *phone,
	}

	fieldErrs, err := r.session.Signup(ctx, input)
	if len(fieldErrs) > 0 {
		r.printFieldErrors(fieldErrs)
		return fmt.Errorf("signup failed: invalid fields")
	}
	return err
}

// cmdLogin godoc
// lokanta login -email ayse@example.com -password secret123
func (r *Runner) cmdLogin(ctx context.Context, args []string) error {
	if err := r.requireGuest(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "Email address")
	password := fs.String("password", "", "Password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fieldErrs, err := r.session.Login(ctx, models.LoginInput{Email: *email, Password: *password})
	if len(fieldErrs) > 0 {
		r.printFieldErrors(fieldErrs)
		return fmt.Errorf("login failed: invalid fields")
	}
	return err
}

// cmdLogout godoc
// Sunucu ulaşılamaz olsa bile yerel oturum temizlenir — logout
// komutu kullanıcı açısından her zaman "başarılıdır".
func (r *Runner) cmdLogout(ctx context.Context) error {
	if err := r.requireAuth(); err != nil {
		return err
	}
	_ = r.session.Logout(ctx)
	return nil
}

// cmdMe godoc
// Aktif oturumdaki kullanıcıyı gösterir.
func (r *Runner) cmdMe() error {
	user := r.session.CurrentUser()
	if user == nil {
		fmt.Fprintln(r.out, r.loc.T("status.anonymous"))
		return nil
	}
	fmt.Fprintf(r.out, "%s <%s>\n", user.Name, user.Email)
	return nil
}

// cmdForgotPassword godoc
// lokanta forgot-password -email ayse@example.com
func (r *Runner) cmdForgotPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("forgot-password", flag.ContinueOnError)
	email := fs.String("email", "", "Email address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fieldErrs, err := r.session.ForgotPassword(ctx, models.ForgotPasswordInput{Email: *email})
	if len(fieldErrs) > 0 {
		r.printFieldErrors(fieldErrs)
		return fmt.Errorf("invalid fields")
	}
	return err
}

// cmdResetPassword godoc
// lokanta reset-password -token <mail'deki token> -password yenisifre
func (r *Runner) cmdResetPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset-password", flag.ContinueOnError)
	token := fs.String("token", "", "Reset token from email")
	password := fs.String("password", "", "New password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fieldErrs, err := r.session.ResetPassword(ctx, models.ResetPasswordInput{Token: *token, NewPassword: *password})
	if len(fieldErrs) > 0 {
		r.printFieldErrors(fieldErrs)
		return fmt.Errorf("invalid fields")
	}
	return err
}

// cmdChangePassword godoc
// lokanta change-password -current eskisifre -new yenisifre
func (r *Runner) cmdChangePassword(ctx context.Context, args []string) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("change-password", flag.ContinueOnError)
	current := fs.String("current", "", "Current password")
	newPass := fs.String("new", "", "New password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := models.ChangePasswordInput{CurrentPassword: *current, NewPassword: *newPass}
	fieldErrs, err := r.session.ChangePassword(ctx, input)
	if len(fieldErrs) > 0 {
		r.printFieldErrors(fieldErrs)
		return fmt.Errorf("invalid fields")
	}
	return err
}
