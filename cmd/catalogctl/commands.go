package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/murkotick/showcase-catalog-service/internal/client/admin"
	"github.com/murkotick/showcase-catalog-service/internal/client/editor"
	"github.com/murkotick/showcase-catalog-service/internal/client/listing"
	"github.com/murkotick/showcase-catalog-service/internal/client/reorder"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/textnorm"
)

var errUsage = errors.New("invalid arguments, see -h")

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := a.flags("login")
	login := fs.String("login", "admin", "admin login")
	password := fs.String("password", a.getenv("CATALOG_PASSWORD"), "admin password (default $CATALOG_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	c, err := a.client()
	if err != nil {
		return err
	}
	if err := c.Login(ctx, *login, *password); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "signed in as", *login)
	return nil
}

func (a *app) products(ctx context.Context, args []string) error {
	fs := a.flags("products")
	search := fs.String("search", "", "title or SKU substring")
	category := fs.String("category", "", "category id")
	manufacturer := fs.String("manufacturer", "", "exact manufacturer")
	published := fs.String("published", "any", "any, yes or no")
	page := fs.Int("page", 1, "page number")
	perPage := fs.Int("per-page", listing.DefaultPageSize, "10, 25, 50 or 100")
	sortBy := fs.String("sort", string(listing.DefaultSort), "sku, price, manufacturer, status, views, sort_order or title")
	desc := fs.Bool("desc", false, "sort descending")
	expand := fs.Bool("expand", false, "show variant rows")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	publication, err := parsePublication(*published)
	if err != nil {
		return err
	}
	field, ok := listing.ParseSortField(*sortBy)
	if !ok {
		return fmt.Errorf("unknown sort field %q", *sortBy)
	}

	c, err := a.client()
	if err != nil {
		return err
	}
	ctl := listing.NewController(c)

	ctl.EditDraft(func(f *listing.Filter) {
		f.Search = *search
		f.CategoryID = *category
		f.Manufacturer = *manufacturer
		f.Publication = publication
	})
	if field != listing.DefaultSort {
		ctl.ToggleSort(ctx, field)
	}
	if *desc {
		ctl.ToggleSort(ctx, field)
	}
	if *perPage != listing.DefaultPageSize {
		if err := ctl.SetPageSize(ctx, *perPage); err != nil {
			return err
		}
	}
	ctl.Apply(ctx)
	res := ctl.Wait()
	if res.Err != nil {
		return res.Err
	}
	if *page > 1 {
		if !ctl.SetPage(ctx, *page) {
			st := ctl.State()
			return fmt.Errorf("page %d is out of range (1-%d)", *page, st.TotalPages())
		}
		if res = ctl.Wait(); res.Err != nil {
			return res.Err
		}
	}

	expanded := map[string]bool{}
	if *expand && res.Page != nil {
		for _, p := range res.Page.Items {
			expanded[p.ID] = true
		}
	}
	return listing.Render(a.stdout, ctl.State(), res.Page, expanded)
}

// manufacturers prints one name per line, the values accepted by products -manufacturer.
func (a *app) manufacturers(ctx context.Context, args []string) error {
	if err := a.flags("manufacturers").Parse(args); err != nil {
		return errUsage
	}
	c, err := a.client()
	if err != nil {
		return err
	}
	names, err := c.Manufacturers(ctx)
	if err != nil {
		return err
	}
	for _, n := range names {
		fmt.Fprintln(a.stdout, n)
	}
	return nil
}

func (a *app) show(ctx context.Context, args []string) error {
	fs := a.flags("show")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return errUsage
	}
	c, err := a.client()
	if err != nil {
		return err
	}
	e, err := editor.Open(ctx, c, fs.Arg(0))
	if err != nil {
		return err
	}
	printProduct(a.stdout, e)
	return nil
}

func (a *app) create(ctx context.Context, args []string) error {
	fs := a.flags("create")
	title := fs.String("title", "", "product title (required)")
	slug := fs.String("slug", "", "slug, derived from the title when empty")
	sku := fs.String("sku", "", "SKU")
	manufacturer := fs.String("manufacturer", "", "manufacturer")
	category := fs.String("category", "", "category id")
	price := fs.String("price", "", "price, for example 4990.00")
	currency := fs.String("currency", "", "ISO currency code")
	hashtags := fs.String("hashtags", "", "hashtags separated by spaces")
	short := fs.String("short", "", "short description")
	publish := fs.Bool("publish", false, "publish immediately")
	if err := fs.Parse(args); err != nil || strings.TrimSpace(*title) == "" {
		return errUsage
	}

	c, err := a.client()
	if err != nil {
		return err
	}
	e := editor.New(c)
	e.SetTitle(*title)
	if *slug != "" {
		e.SetSlug(*slug)
	}
	e.SetHashtags(*hashtags)
	e.BlurHashtags()
	e.Edit(func(f *editor.Fields) {
		f.SKU = *sku
		f.Manufacturer = *manufacturer
		f.CategoryID = *category
		f.Price = *price
		f.Currency = *currency
		f.ShortDescription = *short
		f.IsPublished = *publish
	})
	if err := e.Submit(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "created %s (%s)\n", e.ID(), e.Fields().Slug)
	return nil
}

func (a *app) moveImage(ctx context.Context, args []string) error {
	fs := a.flags("move-image")
	batched := fs.Bool("batched", false, "persist the whole order in one call")
	if err := fs.Parse(args); err != nil || fs.NArg() != 3 {
		return errUsage
	}
	index, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return errUsage
	}
	var dir int
	switch fs.Arg(2) {
	case "up":
		dir = reorder.Up
	case "down":
		dir = reorder.Down
	default:
		return errUsage
	}

	c, err := a.client()
	if err != nil {
		return err
	}
	e, err := editor.Open(ctx, c, fs.Arg(0))
	if err != nil {
		return err
	}
	move := e.MoveImage
	if *batched {
		move = e.MoveImageBatched
	}
	if err := move(ctx, index, dir); err != nil {
		return err
	}
	for _, img := range e.Images() {
		fmt.Fprintf(a.stdout, "%d\t%s\t%s\n", img.SortOrder, img.ID, img.URL)
	}
	return nil
}

func (a *app) upload(ctx context.Context, args []string) error {
	fs := a.flags("upload")
	kind := fs.String("kind", "image", "image or attachment")
	alt := fs.String("alt", "", "alt text of the images")
	title := fs.String("title", "", "title of the attachments, the file name when empty")
	if err := fs.Parse(args); err != nil || fs.NArg() < 2 {
		return errUsage
	}
	if *kind != "image" && *kind != "attachment" {
		return errUsage
	}

	files := make([]admin.File, 0, fs.NArg()-1)
	for _, path := range fs.Args()[1:] {
		f, err := openUpload(path)
		if err != nil {
			return err
		}
		defer f.Body.(io.Closer).Close()
		files = append(files, f)
	}

	c, err := a.client()
	if err != nil {
		return err
	}
	e, err := editor.Open(ctx, c, fs.Arg(0))
	if err != nil {
		return err
	}

	var results []editor.UploadResult
	if *kind == "image" {
		results, err = e.UploadImages(ctx, files, *alt)
	} else {
		results, err = e.UploadAttachments(ctx, files, *title)
	}
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(a.stdout, "FAIL %s: %s\n", r.Name, admin.UserMessage(r.Err))
			continue
		}
		fmt.Fprintf(a.stdout, "ok   %s -> %s\n", r.Name, r.URL)
	}
	return err
}

func (a *app) slug(_ context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	fmt.Fprintln(a.stdout, textnorm.GenerateSlug(strings.Join(args, " ")))
	return nil
}

func parsePublication(s string) (listing.Publication, error) {
	switch strings.ToLower(s) {
	case "", "any":
		return listing.PublicationAny, nil
	case "yes", "true", "published":
		return listing.PublicationPublished, nil
	case "no", "false", "unpublished":
		return listing.PublicationUnpublished, nil
	}
	return 0, fmt.Errorf("unknown publication filter %q", s)
}

// openUpload opens path and guesses its content type from the extension, then from the
// first bytes.
func openUpload(path string) (admin.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return admin.File{}, err
	}
	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if ct == "" {
		head := make([]byte, 512)
		n, _ := io.ReadFull(f, head)
		ct = http.DetectContentType(head[:n])
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			f.Close()
			return admin.File{}, err
		}
	}
	if mt, _, err := mime.ParseMediaType(ct); err == nil {
		ct = mt
	}
	return admin.File{Name: filepath.Base(path), ContentType: ct, Body: f}, nil
}

func printProduct(w io.Writer, e *editor.Editor) {
	f := e.Fields()
	status := "draft"
	if f.IsPublished {
		status = "published"
	}
	fmt.Fprintf(w, "%s  %s  [%s]\n", e.ID(), f.Title, status)
	fmt.Fprintf(w, "  slug:         %s\n", f.Slug)
	fmt.Fprintf(w, "  sku:          %s\n", orDash(f.SKU))
	fmt.Fprintf(w, "  manufacturer: %s\n", orDash(f.Manufacturer))
	fmt.Fprintf(w, "  price:        %s %s\n", orDash(f.Price), f.Currency)
	fmt.Fprintf(w, "  hashtags:     %s\n", orDash(f.Hashtags))
	fmt.Fprintf(w, "  views:        %d\n", e.ViewCount())

	fmt.Fprintf(w, "images (%d)\n", len(e.Images()))
	for i, img := range e.Images() {
		fmt.Fprintf(w, "  %d. %s %s\n", i, img.ID, img.URL)
	}
	fmt.Fprintf(w, "attachments (%d)\n", len(e.Attachments()))
	for _, att := range e.Attachments() {
		fmt.Fprintf(w, "  - %s %s\n", att.Title, att.URL)
	}
	fmt.Fprintf(w, "specs (%d)\n", len(e.Specs()))
	for _, s := range e.Specs() {
		unit := ""
		if s.Unit != nil {
			unit = " " + *s.Unit
		}
		fmt.Fprintf(w, "  - %s: %s%s\n", s.Name, s.Value, unit)
	}
	fmt.Fprintf(w, "variants (%d)\n", len(e.Variants()))
	for _, v := range e.Variants() {
		fmt.Fprintf(w, "  - %s: %s (stock %d, in order %d)\n", v.OptionName, v.OptionValue, v.StockQty, v.InOrderQty)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
