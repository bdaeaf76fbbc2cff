package ui

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

type FooterLink struct {
	Label string
	Href  string
}

type FooterProps struct {
	AppName string
	Year    int
	Version string
	Links   []FooterLink
}

// Footer renderiza "© {ano} {app}", a versão e os links opcionais.
func Footer(p FooterProps) templ.Component {
	if p.AppName == "" {
		p.AppName = "FilaZero"
	}
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<footer class="footer footer-center p-4 text-sm text-base-content/70">`)
		sb.WriteString(`<p>© `)
		if p.Year > 0 {
			sb.WriteString(strconv.Itoa(p.Year) + " ")
		}
		sb.WriteString(templ.EscapeString(p.AppName))
		if p.Version != "" {
			sb.WriteString(` <span class="opacity-60">v` + templ.EscapeString(p.Version) + `</span>`)
		}
		sb.WriteString(`</p>`)
		if len(p.Links) > 0 {
			sb.WriteString(`<nav class="flex gap-4">`)
			for _, l := range p.Links {
				sb.WriteString(`<a class="link link-hover" href="` + templ.EscapeString(safeURL(l.Href)) + `">` + templ.EscapeString(l.Label) + `</a>`)
			}
			sb.WriteString(`</nav>`)
		}
		sb.WriteString(`</footer>`)
		_, err := io.WriteString(w, sb.String())
		return err
	})
}
