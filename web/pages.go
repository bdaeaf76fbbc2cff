package web

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"filazero/ui"

	"github.com/a-h/templ"
)

const (
	ActionRefreshStatus = "atualizar-status"
	ActionDismissNotice = "dispensar-aviso"
)

type tab struct {
	id    string
	label string
}

var homeTabs = []tab{
	{id: "fila", label: "Fila"},
	{id: "pedidos", label: "Pedidos"},
	{id: "configuracoes", label: "Configurações"},
}

func renderPage(w http.ResponseWriter, r *http.Request, c templ.Component, opts ...func(*templ.ComponentHandler)) {
	templ.Handler(c, opts...).ServeHTTP(w, r)
}

func (s *server) page(title string, main templ.Component) templ.Component {
	return ui.Page(ui.PageProps{
		Title: title + " · " + s.cfg.AppName,
		Lang:  s.cfg.DefaultLocale,
		Header: ui.Group(
			ui.BackButton(ui.ButtonProps{}),
			html(`<span class="flex-1 font-semibold">`+templ.EscapeString(s.cfg.AppName)+`</span>`),
			ui.ConfigButton(ui.ButtonProps{Href: "/?tab=configuracoes"}),
		),
		Main: main,
		Footer: ui.Footer(ui.FooterProps{
			AppName: s.cfg.AppName,
			Year:    s.now().Year(),
			Version: s.cfg.AppVersion,
			Links:   []ui.FooterLink{{Label: "Status da API", Href: "/api/health"}},
		}),
		Stylesheets: []string{"/static/app.css"},
		Scripts:     []string{HTMXScript},
	})
}

func (s *server) home(w http.ResponseWriter, r *http.Request) {
	active := r.URL.Query().Get("tab")
	if active == "" {
		active = homeTabs[0].id
	}
	tabs := make([]ui.TabButtonProps, 0, len(homeTabs))
	for _, t := range homeTabs {
		tabs = append(tabs, ui.TabButtonProps{
			ID:       "tab-" + t.id,
			Label:    t.label,
			Active:   t.id == active,
			Controls: "painel",
		})
	}

	renderPage(w, r, s.page("Início", ui.Group(
		ui.Tabs(tabs...),
		html(`<section id="painel" role="tabpanel" class="py-4">`),
		s.statusNotice(r.Context()),
		s.panel(r, active),
		html(`</section>`),
	)))
}

func (s *server) statusNotice(ctx context.Context) templ.Component {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	st, err := s.backend.Status(ctx)
	if err != nil {
		s.logger.Debug("backend status unavailable")
		return ui.Group(
			html(`<div role="alert" class="alert badge-down"><span>API indisponível</span>`),
			ui.ActionButton(ui.ButtonProps{Label: "Tentar de novo", Variant: "secondary", Size: "sm", OnClick: ActionRefreshStatus}),
			ui.CloseButton(ui.ButtonProps{OnClick: ActionDismissNotice}),
			html(`</div>`),
		)
	}
	return html(`<p class="badge-ok">API ` + templ.EscapeString(st.Status) + ` (` + templ.EscapeString(st.Environment) + `)</p>`)
}

func (s *server) panel(r *http.Request, active string) templ.Component {
	switch active {
	case "configuracoes":
		return ui.Group(
			html(`<dl>`),
			definition("API", s.cfg.APIURL),
			definition("Ambiente", s.cfg.Env),
			definition("Locale", s.cfg.DefaultLocale),
			definition("Moeda", s.cfg.DefaultCurrency),
			html(`</dl>`),
			ui.ActionButton(ui.ButtonProps{Label: "Ver env.json", Href: "/env.json", Variant: "ghost", Size: "sm"}),
		)
	default:
		locale := resolveLocale(r, s.cfg.DefaultLocale)
		return ui.Group(
			html(`<form hx-get="/ui/price" hx-target="#preco" class="flex gap-2">`),
			html(`<input type="hidden" name="locale" value="`+templ.EscapeString(locale)+`">`),
			html(`<input name="value" type="number" step="0.01" placeholder="0,00">`),
			html(`<button type="submit" class="btn btn-secondary btn-sm">Formatar</button></form>`),
			html(`<output id="preco">`+templ.EscapeString(s.prices.Format(nil, s.cfg.DefaultCurrency, locale))+`</output>`),
			html(`<div class="mt-4">`),
			ui.AcesseButton(ui.ButtonProps{Href: "/?tab=pedidos"}),
			html(`</div>`),
		)
	}
}

// priceFragment responde só o texto formatado, para o hx-get da home.
func (s *server) priceFragment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var value *float64
	if raw := strings.TrimSpace(q.Get("value")); raw != "" {
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			http.Error(w, "valor inválido", http.StatusBadRequest)
			return
		}
		value = &v
	}
	code := q.Get("currency")
	if code == "" {
		code = s.cfg.DefaultCurrency
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, s.prices.Format(value, code, resolveLocale(r, s.cfg.DefaultLocale)))
}

func definition(term, value string) templ.Component {
	return html(`<dt>` + templ.EscapeString(term) + `</dt><dd>` + templ.EscapeString(value) + `</dd>`)
}

// html escreve markup já montado (e escapado) pelo chamador.
func html(s string) templ.Component {
	return templ.Raw(s)
}
