// Package templates renders portal pages as templ components.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/employee-portal/internal/portal/routepath"
)

// AppName is the portal's user-facing name.
const AppName = "Employee Portal"

// PageContext provides shared layout context for pages.
type PageContext struct {
	// Title is the browser page title.
	Title string
	// SignedInName holds the viewer's full name when authenticated.
	SignedInName string
}

// Notice is a one-time message rendered above page content.
type Notice struct {
	Kind    string
	Message string
}

// Layout wraps child content in the shared page chrome.
func Layout(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := page.Title
		if title == "" {
			title = AppName
		}
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title></head><body><header><h1>%s</h1>`,
			templ.EscapeString(title),
			templ.EscapeString(AppName),
		); err != nil {
			return err
		}
		if err := renderNav(w, page); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</header><main>`); err != nil {
			return err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func renderNav(w io.Writer, page PageContext) error {
	if _, err := io.WriteString(w, `<nav>`); err != nil {
		return err
	}
	links := [][2]string{
		{routepath.Root, "Home"},
		{routepath.PublicDirectory, "Public Directory"},
		{routepath.Credentials, "Credentials"},
	}
	if page.SignedInName != "" {
		links = append(links,
			[2]string{routepath.Dashboard, "Dashboard"},
			[2]string{routepath.Employees, "Employees"},
			[2]string{routepath.Logout, "Logout"},
		)
	}
	for _, link := range links {
		if _, err := fmt.Fprintf(w, `<a href="%s">%s</a> `,
			templ.EscapeString(link[0]), templ.EscapeString(link[1])); err != nil {
			return err
		}
	}
	if page.SignedInName != "" {
		if _, err := fmt.Fprintf(w, `<span class="viewer">%s</span>`,
			templ.EscapeString(page.SignedInName)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</nav>`)
	return err
}

func renderNotice(w io.Writer, notice *Notice) error {
	if notice == nil || notice.Message == "" {
		return nil
	}
	kind := notice.Kind
	if kind == "" {
		kind = "info"
	}
	_, err := fmt.Fprintf(w, `<div class="flash flash-%s">%s</div>`,
		templ.EscapeString(kind), templ.EscapeString(notice.Message))
	return err
}
