// catalogctl is the operator CLI of the catalog admin API.
//
// Usage:
//
//	catalogctl login -login admin -password secret
//	catalogctl products -search drill -published yes -sort price -desc -expand
//	catalogctl show <product-id>
//	catalogctl create -title "Дрель ударная" -price 4990 -currency RUB
//	catalogctl move-image <product-id> <index> up|down
//	catalogctl upload -kind image -alt "front" <product-id> photo1.jpg photo2.png
//	catalogctl slug "Электроника и бытовая техника"
//
// The API root comes from CATALOG_API_URL (default http://localhost:8000/api) and the token is
// kept in the user config directory.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/murkotick/showcase-catalog-service/internal/client/admin"
)

const (
	defaultAPIURL = "http://localhost:8000/api"
	apiURLEnv     = "CATALOG_API_URL"
	tokenFileEnv  = "CATALOG_TOKEN_FILE"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &app{stdout: os.Stdout, stderr: os.Stderr, getenv: os.Getenv, httpClient: http.DefaultClient}
	code := app.run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

type app struct {
	stdout     io.Writer
	stderr     io.Writer
	getenv     func(string) string
	httpClient admin.HTTPClient
}

type command struct {
	name    string
	summary string
	run     func(a *app, ctx context.Context, args []string) error
}

var commands = []command{
	{"login", "sign in and store the token", (*app).login},
	{"products", "list products with filters, sorting and paging", (*app).products},
	{"manufacturers", "list the manufacturers used by products", (*app).manufacturers},
	{"show", "print one product with its images, attachments, specs and variants", (*app).show},
	{"create", "create a product", (*app).create},
	{"move-image", "move an image up or down", (*app).moveImage},
	{"upload", "upload images or attachments to a product", (*app).upload},
	{"slug", "print the slug generated for a text", (*app).slug},
}

func (a *app) run(ctx context.Context, args []string) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "help" {
		a.usage()
		return 2
	}
	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		if err := c.run(a, ctx, args[1:]); err != nil {
			fmt.Fprintln(a.stderr, "error:", admin.UserMessage(err))
			return 1
		}
		return 0
	}
	fmt.Fprintf(a.stderr, "unknown command %q\n\n", args[0])
	a.usage()
	return 2
}

func (a *app) usage() {
	fmt.Fprintln(a.stderr, "usage: catalogctl <command> [flags]")
	fmt.Fprintln(a.stderr)
	for _, c := range commands {
		fmt.Fprintf(a.stderr, "  %-14s %s\n", c.name, c.summary)
	}
}

// client builds an admin client whose session lives in the token file.
func (a *app) client() (*admin.Client, error) {
	path := a.getenv(tokenFileEnv)
	if path == "" {
		p, err := admin.DefaultTokenPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	base := a.getenv(apiURLEnv)
	if base == "" {
		base = defaultAPIURL
	}
	auth := admin.NewAuthContext(&admin.FileTokenStore{Path: path}, &terminal{out: a.stderr})
	return admin.New(base, a.httpClient, auth)
}

// terminal is the Navigator of a CLI: the "login page" is the login command.
type terminal struct {
	out io.Writer
}

func (t *terminal) CurrentPath() string { return "/admin" }

func (t *terminal) Redirect(string) {
	fmt.Fprintln(t.out, "session expired, run: catalogctl login")
}
