package ui

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// ActionPrefix é onde o Registry é montado.
const ActionPrefix = "/ui/actions"

type attr struct {
	name  string
	value string
	// flag renderiza só o nome (ex.: disabled)
	flag bool
	// url passa o valor por safeURL
	url bool
}

func writeAttrs(sb *strings.Builder, attrs []attr) {
	for _, a := range attrs {
		if a.flag {
			sb.WriteString(" " + a.name)
			continue
		}
		if a.value == "" {
			continue
		}
		value := a.value
		if a.url {
			value = safeURL(value)
		}
		sb.WriteString(" " + a.name + `="` + templ.EscapeString(value) + `"`)
	}
}

// actionAttrs traduz OnClick para atributos htmx.
func actionAttrs(onClick string) []attr {
	if onClick == "" {
		return nil
	}
	return []attr{
		{name: "hx-post", value: ActionPath(onClick), url: true},
		{name: "hx-swap", value: "none"},
	}
}

// safeURL aplica a sanitização do templ: esquemas fora de http(s), mailto,
// tel e ftp(s) viram templ.FailedSanitizationURL.
func safeURL(s string) string {
	return string(templ.URL(s))
}

// ActionPath devolve a URL de POST da ação.
func ActionPath(name string) string {
	return ActionPrefix + "/" + url.PathEscape(name)
}

func classes(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// element escreve <tag attrs>icon label children</tag>.
func element(ctx context.Context, w io.Writer, tag string, attrs []attr, icon, label string, children templ.Component) error {
	var sb strings.Builder
	sb.WriteString("<" + tag)
	writeAttrs(&sb, attrs)
	sb.WriteString(">")
	sb.WriteString(icon)
	if label != "" {
		sb.WriteString("<span>" + templ.EscapeString(label) + "</span>")
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	if children != nil {
		if err := children.Render(ctx, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

// Text é um filho de texto escapado.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}
