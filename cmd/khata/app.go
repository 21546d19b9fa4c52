package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"ekthaa/internal/apiclient"
	"ekthaa/internal/config"
	"ekthaa/internal/domain"
	"ekthaa/internal/form"
	"ekthaa/internal/invoice"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "khata",
		Usage: "manage an Ekthaa business khata from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "base-url", Usage: "backend API base URL", EnvVars: []string{"EKTHAA_CLIENT_BASE_URL"}},
			&cli.StringFlag{Name: "credentials", Usage: "credentials file path", EnvVars: []string{"EKTHAA_CLIENT_CREDENTIALS_FILE"}},
			&cli.BoolFlag{Name: "json", Usage: "print results as JSON"},
		},
		Commands: []*cli.Command{
			loginCommand(),
			logoutCommand(),
			whoamiCommand(),
			customersCommand(),
			productsCommand(),
			transactionsCommand(),
			recurringCommand(),
			vouchersCommand(),
			offersCommand(),
			remindCommand(),
			invoiceCommand(),
			categoriesCommand(),
			healthCommand(),
		},
	}
}

var nowFunc = time.Now

// session holds the per-invocation API client.
type session struct {
	client *apiclient.Client
}

func newSession(c *cli.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	baseURL := cfg.Client.BaseURL
	if v := c.String("base-url"); v != "" {
		baseURL = v
	}
	path := cfg.Client.CredentialsFile
	if v := c.String("credentials"); v != "" {
		path = v
	}

	creds, err := apiclient.NewFileCredentials(path)
	if err != nil {
		return nil, err
	}
	out := c.App.ErrWriter
	client := apiclient.New(apiclient.Config{BaseURL: baseURL, Timeout: cfg.Client.Timeout}, creds,
		apiclient.WithUnauthorizedHook(func() {
			fmt.Fprintln(out, "Session expired. Run `khata login` again.")
		}))
	return &session{client: client}, nil
}

func readDraft(path string) (*invoice.Draft, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening draft: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	var d invoice.Draft
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding draft: %w", err)
	}
	return &d, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// emit prints v as JSON under --json and falls back to the plain renderer.
func emit(c *cli.Context, v any, plain func(io.Writer) error) error {
	if c.Bool("json") {
		return printJSON(c.App.Writer, v)
	}
	return plain(c.App.Writer)
}

// submit validates a form, sends it through a Submitter, and reports the
// outcome as a flash message.
func submit(c *cli.Context, validate func() error, fallback, success string, send func(context.Context, *session) error) error {
	if err := validate(); err != nil {
		return cli.Exit(form.FlashFromError(err, fallback).Message, 1)
	}
	s, err := newSession(c)
	if err != nil {
		return err
	}

	var guard form.Submitter
	err = guard.Submit(c.Context, func(ctx context.Context) error { return send(ctx, s) })
	if err != nil {
		return cli.Exit(form.FlashFromError(err, fallback).Message, 1)
	}
	flash := form.Success(success)
	return emit(c, flash, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, flash.Message)
		return err
	})
}

// readAttachment loads a file for a multipart upload. An empty path means no file.
func readAttachment(path string) (*domain.FilePart, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading attachment: %w", err)
	}
	return &domain.FilePart{
		FileName:    filepath.Base(path),
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// userError turns known failures into a one-line message.
func userError(err error) error {
	var apiErr *apiclient.APIError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrUnauthorized):
		return cli.Exit("not logged in or session expired", 1)
	case errors.As(err, &apiErr):
		return cli.Exit(apiErr.Message, 1)
	case errors.Is(err, domain.ErrValidation):
		return cli.Exit(err.Error(), 1)
	default:
		return err
	}
}
