package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/akinalp/lokanta/models"
)

// cmdRate godoc
// lokanta rate -id <restaurant-id> -stars 4
//
// Önce detay yüklenir: sahiplik kontrolü (sahip kendi restoranını
// puanlayamaz) restoran bilgisi olmadan yapılamaz.
func (r *Runner) cmdRate(ctx context.Context, args []string) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("rate", flag.ContinueOnError)
	id := fs.String("id", "", "Restaurant ID")
	stars := fs.Int("stars", 0, "Rating 1-5")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id required")
	}

	if err := r.details.Load(ctx, *id); err != nil {
		return err
	}
	if r.details.Detail().NotFound {
		return fmt.Errorf("%s", r.loc.T("status.restaurantNotFound"))
	}

	fieldErrs, err := r.details.SetRating(ctx, *id, models.SetRatingInput{Stars: *stars})
	if len(fieldErrs) > 0 {
		r.printFieldErrors(fieldErrs)
		return fmt.Errorf("invalid fields")
	}
	return r.forbiddenAs(err, "guard.ownerCannotRate")
}

// cmdComment godoc
// lokanta comment -id <restaurant-id> -body "Harika mantı"
func (r *Runner) cmdComment(ctx context.Context, args []string) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("comment", flag.ContinueOnError)
	id := fs.String("id", "", "Restaurant ID")
	body := fs.String("body", "", "Comment text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id required")
	}

	if err := r.details.Load(ctx, *id); err != nil {
		return err
	}
	if r.details.Detail().NotFound {
		return fmt.Errorf("%s", r.loc.T("status.restaurantNotFound"))
	}

	fieldErrs, err := r.details.AddComment(ctx, *id, models.AddCommentInput{Body: *body})
	if len(fieldErrs) > 0 {
		r.printFieldErrors(fieldErrs)
		return fmt.Errorf("invalid fields")
	}
	return r.forbiddenAs(err, "guard.ownerCannotRate")
}

// cmdUncomment godoc
// lokanta uncomment -id <restaurant-id> -comment <comment-id>
// Yalnızca yorumun yazarı silebilir.
func (r *Runner) cmdUncomment(ctx context.Context, args []string) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("uncomment", flag.ContinueOnError)
	id := fs.String("id", "", "Restaurant ID")
	commentID := fs.String("comment", "", "Comment ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" || *commentID == "" {
		return fmt.Errorf("-id and -comment required")
	}

	if err := r.details.Load(ctx, *id); err != nil {
		return err
	}
	if r.details.Detail().NotFound {
		return fmt.Errorf("%s", r.loc.T("status.restaurantNotFound"))
	}

	return r.forbiddenAs(r.details.DeleteComment(ctx, *id, *commentID), "guard.notYourComment")
}
