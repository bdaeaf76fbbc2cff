package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type TabButtonProps struct {
	ID       string
	Label    string
	Children templ.Component
	Active   bool
	OnClick  string
	// Controls é o id do painel (aria-controls).
	Controls string
}

func TabButton(p TabButtonProps) templ.Component {
	state, selected := "tab", "false"
	if p.Active {
		state, selected = "tab tab-active", "true"
	}
	attrs := []attr{
		{name: "id", value: p.ID},
		{name: "type", value: "button"},
		{name: "role", value: "tab"},
		{name: "class", value: state},
		{name: "aria-selected", value: selected},
		{name: "aria-controls", value: p.Controls},
	}
	attrs = append(attrs, actionAttrs(p.OnClick)...)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return element(ctx, w, "button", attrs, "", p.Label, p.Children)
	})
}

// Tabs agrupa TabButtons num tablist.
func Tabs(tabs ...TabButtonProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div role="tablist" class="tabs tabs-bordered">`); err != nil {
			return err
		}
		for _, t := range tabs {
			if err := TabButton(t).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
