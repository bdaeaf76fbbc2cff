package ui

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

type PageProps struct {
	Title  string
	Lang   string
	Header templ.Component
	Main   templ.Component
	Footer templ.Component
	// Stylesheets e Scripts são URLs já resolvidas.
	Stylesheets []string
	Scripts     []string
}

// Page é o shell HTML: head, header, main e footer.
func Page(p PageProps) templ.Component {
	if p.Lang == "" {
		p.Lang = "pt-BR"
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var head strings.Builder
		head.WriteString(`<!DOCTYPE html><html lang="` + templ.EscapeString(p.Lang) + `"><head><meta charset="utf-8">`)
		head.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		head.WriteString(`<title>` + templ.EscapeString(p.Title) + `</title>`)
		for _, href := range p.Stylesheets {
			head.WriteString(`<link rel="stylesheet" href="` + templ.EscapeString(safeURL(href)) + `">`)
		}
		for _, src := range p.Scripts {
			head.WriteString(`<script defer src="` + templ.EscapeString(safeURL(src)) + `"></script>`)
		}
		head.WriteString(`</head><body class="min-h-screen flex flex-col">`)
		if _, err := io.WriteString(w, head.String()); err != nil {
			return err
		}

		if err := section(ctx, w, `<header class="navbar bg-base-200 gap-2">`, "</header>", p.Header); err != nil {
			return err
		}
		if err := section(ctx, w, `<main class="flex-1 container mx-auto p-4">`, "</main>", p.Main); err != nil {
			return err
		}
		if p.Footer != nil {
			if err := p.Footer.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func section(ctx context.Context, w io.Writer, start, end string, c templ.Component) error {
	if c == nil {
		return nil
	}
	if _, err := io.WriteString(w, start); err != nil {
		return err
	}
	if err := c.Render(ctx, w); err != nil {
		return err
	}
	_, err := io.WriteString(w, end)
	return err
}

// Group renderiza os componentes em sequência.
func Group(cs ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range cs {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
