package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ButtonProps são as props comuns a todos os botões.
type ButtonProps struct {
	ID       string
	Label    string
	Children templ.Component
	// OnClick é o nome da ação no Registry.
	OnClick string
	// Href transforma o botão em link (<a>).
	Href      string
	Variant   string
	Size      string
	FullWidth bool
	Disabled  bool
	// Confirm vira hx-confirm (usado pelo DeleteButton).
	Confirm string
	Title   string
	Class   string
}

var variantClasses = map[string]string{
	"primary":   "btn-primary",
	"secondary": "btn-secondary",
	"success":   "btn-success",
	"warning":   "btn-warning",
	"danger":    "btn-error",
	"ghost":     "btn-ghost",
}

var sizeClasses = map[string]string{
	"sm": "btn-sm",
	"md": "",
	"lg": "btn-lg",
}

// VariantClass devolve a classe da variante; desconhecida vira primary.
func VariantClass(variant string) string {
	if c, ok := variantClasses[variant]; ok {
		return c
	}
	return variantClasses["primary"]
}

// SizeClass devolve a classe do tamanho; desconhecido vira md.
func SizeClass(size string) string {
	return sizeClasses[size]
}

func (p ButtonProps) withDefaults(label, variant string) ButtonProps {
	if p.Label == "" && p.Children == nil {
		p.Label = label
	}
	if p.Variant == "" {
		p.Variant = variant
	}
	return p
}

func (p ButtonProps) className() string {
	width := ""
	if p.FullWidth {
		width = "w-full"
	}
	return classes("btn", VariantClass(p.Variant), SizeClass(p.Size), width, p.Class)
}

func renderButton(ctx context.Context, w io.Writer, p ButtonProps, icon string, extra ...attr) error {
	if p.Href != "" && !p.Disabled {
		attrs := append([]attr{
			{name: "id", value: p.ID},
			{name: "href", value: p.Href, url: true},
			{name: "class", value: p.className()},
			{name: "title", value: p.Title},
		}, extra...)
		return element(ctx, w, "a", attrs, icon, p.Label, p.Children)
	}

	attrs := []attr{
		{name: "id", value: p.ID},
		{name: "type", value: "button"},
		{name: "class", value: p.className()},
		{name: "title", value: p.Title},
	}
	if !p.Disabled {
		attrs = append(attrs, actionAttrs(p.OnClick)...)
		attrs = append(attrs, attr{name: "hx-confirm", value: p.Confirm})
	}
	attrs = append(attrs, extra...)
	if p.Disabled {
		attrs = append(attrs, attr{name: "disabled", flag: true}, attr{name: "aria-disabled", value: "true"})
	}
	return element(ctx, w, "button", attrs, icon, p.Label, p.Children)
}

// AcesseButton é o botão principal de entrada ("Acessar").
func AcesseButton(p ButtonProps) templ.Component {
	p = p.withDefaults("Acessar", "primary")
	if p.Size == "" {
		p.Size = "lg"
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderButton(ctx, w, p, iconEnter)
	})
}

// ActionButton é o botão genérico: Variant e Size escolhem o estilo.
func ActionButton(p ButtonProps) templ.Component {
	p = p.withDefaults("", "primary")
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderButton(ctx, w, p, "")
	})
}

// BackButton volta no histórico do navegador quando não há OnClick nem Href.
func BackButton(p ButtonProps) templ.Component {
	p = p.withDefaults("Voltar", "ghost")
	var extra []attr
	if p.OnClick == "" && p.Href == "" {
		extra = append(extra, attr{name: "onclick", value: "window.history.back()"})
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderButton(ctx, w, p, iconBack, extra...)
	})
}

// CloseButton é um botão só com ícone; Label, se houver, fica visível só para leitores de tela.
func CloseButton(p ButtonProps) templ.Component {
	return iconButton(p, "Fechar", iconClose)
}

// ConfigButton abre as configurações.
func ConfigButton(p ButtonProps) templ.Component {
	return iconButton(p, "Configurações", iconGear)
}

func iconButton(p ButtonProps, ariaLabel, icon string) templ.Component {
	if p.Variant == "" {
		p.Variant = "ghost"
	}
	p.Class = classes("btn-square", p.Class)
	label := p.Label
	p.Label = ""
	if label == "" {
		label = ariaLabel
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderButton(ctx, w, p, icon, attr{name: "aria-label", value: label})
	})
}

// DeleteButton é o botão destrutivo ("Excluir"); Confirm pede confirmação antes do POST.
func DeleteButton(p ButtonProps) templ.Component {
	p = p.withDefaults("Excluir", "danger")
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderButton(ctx, w, p, iconTrash)
	})
}
