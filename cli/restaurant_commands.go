package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/akinalp/lokanta/models"
)

// cmdList godoc
// lokanta list [-cuisine turkish] [-limit 20] [-offset 0]
func (r *Runner) cmdList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	cuisine := fs.String("cuisine", "", "Filter by cuisine type")
	limit := fs.Int("limit", 0, "Max results")
	offset := fs.Int("offset", 0, "Results offset")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var params models.ListRestaurantsParams
	if *cuisine != "" {
		params.CuisineType = cuisine
	}
	if *limit > 0 {
		params.Limit = limit
	}
	if *offset > 0 {
		params.Offset = offset
	}

	if err := r.restaurants.FetchRestaurants(ctx, params); err != nil {
		return err
	}

	col := r.restaurants.Collection()
	if len(col.Restaurants) == 0 {
		fmt.Fprintln(r.out, r.loc.T("status.noRestaurants"))
		return nil
	}

	for _, rest := range col.Restaurants {
		fmt.Fprintf(r.out, "%s  %-30s  %-12s  ★ %.1f\n",
			rest.ID, rest.Name, rest.CuisineType, rest.AverageRating)
	}
	return nil
}

// cmdShow godoc
// lokanta show -id <restaurant-id>
// Detay + puan özeti + yorumlar tek ekranda.
func (r *Runner) cmdShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	id := fs.String("id", "", "Restaurant ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id required")
	}

	if err := r.details.Load(ctx, *id); err != nil {
		return err
	}

	d := r.details.Detail()
	if d.NotFound {
		fmt.Fprintln(r.out, r.loc.T("status.restaurantNotFound"))
		return nil
	}

	rest := d.Restaurant
	fmt.Fprintf(r.out, "%s\n", rest.Name)
	fmt.Fprintf(r.out, "  %s\n", rest.FullAddress)
	fmt.Fprintf(r.out, "  %s · %s\n", rest.CuisineType, rest.Phone)
	if d.Rating != nil {
		fmt.Fprintf(r.out, "  ★ %.1f (%d)\n", d.Rating.AverageRating, d.Rating.TotalRatings)
		if d.Rating.UserRating != nil {
			fmt.Fprintf(r.out, "  your rating: %.0f\n", *d.Rating.UserRating)
		}
	}

	fmt.Fprintln(r.out)
	if len(d.Comments) == 0 {
		fmt.Fprintln(r.out, r.loc.T("status.noComments"))
		return nil
	}
	for _, c := range d.Comments {
		author := c.UserID
		if c.User != nil {
			author = c.User.Name
		}
		fmt.Fprintf(r.out, "[%s] %s: %s\n", c.ID, author, c.Body)
	}
	return nil
}

// cmdAdd godoc
// lokanta add -name "Çiya" -address "..." -phone 2125550000 -cuisine turkish
func (r *Runner) cmdAdd(ctx context.Context, args []string) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	name := fs.String("name", "", "Restaurant name")
	address := fs.String("address", "", "Full address")
	phone := fs.String("phone", "", "Phone number")
	cuisine := fs.String("cuisine", "", "Cuisine type")
	image := fs.String("image", "", "Image URL (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := models.CreateRestaurantInput{
		Name:        *name,
		FullAddress: *address,
		Phone:       *phone,
		CuisineType: *cuisine,
	}
	if *image != "" {
		input.ImageURL = image
	}

	created, fieldErrs, err := r.restaurants.Create(ctx, input)
	if len(fieldErrs) > 0 {
		r.printFieldErrors(fieldErrs)
		return fmt.Errorf("invalid fields")
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "created: %s\n", created.ID)
	return nil
}

// cmdEdit godoc
// lokanta edit -id <id> [-name ...] [-address ...] [-phone ...] [-cuisine ...]
//
// Form mantığı: mevcut değerler yüklenir, yalnızca verilen flag'ler
// üzerine yazılır — web'deki prefilled edit formunun karşılığı.
func (r *Runner) cmdEdit(ctx context.Context, args []string) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	id := fs.String("id", "", "Restaurant ID")
	name := fs.String("name", "", "Restaurant name")
	address := fs.String("address", "", "Full address")
	phone := fs.String("phone", "", "Phone number")
	cuisine := fs.String("cuisine", "", "Cuisine type")
	image := fs.String("image", "", "Image URL")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id required")
	}

	if err := r.details.Load(ctx, *id); err != nil {
		return err
	}
	d := r.details.Detail()
	if d.NotFound {
		return fmt.Errorf("%s", r.loc.T("status.restaurantNotFound"))
	}
	// Başkasının restoranı için prefilled form hiç gösterilmez.
	if !d.Restaurant.IsOwnedBy(r.session.CurrentUser()) {
		return fmt.Errorf("%s", r.loc.T("guard.notYourRestaurant"))
	}

	input := models.UpdateRestaurantInput{
		Name:        d.Restaurant.Name,
		FullAddress: d.Restaurant.FullAddress,
		Phone:       d.Restaurant.Phone,
		CuisineType: d.Restaurant.CuisineType,
		ImageURL:    d.Restaurant.ImageURL,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			input.Name = *name
		case "address":
			input.FullAddress = *address
		case "phone":
			input.Phone = *phone
		case "cuisine":
			input.CuisineType = *cuisine
		case "image":
			input.ImageURL = image
		}
	})

	_, fieldErrs, err := r.restaurants.Update(ctx, *id, input)
	if len(fieldErrs) > 0 {
		r.printFieldErrors(fieldErrs)
		return fmt.Errorf("invalid fields")
	}
	return r.forbiddenAs(err, "guard.notYourRestaurant")
}

// cmdDelete godoc
// lokanta delete -id <id>
func (r *Runner) cmdDelete(ctx context.Context, args []string) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	id := fs.String("id", "", "Restaurant ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id required")
	}

	return r.forbiddenAs(r.restaurants.Delete(ctx, *id), "guard.notYourRestaurant")
}
