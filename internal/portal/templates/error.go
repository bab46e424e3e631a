package templates

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return "Page not found"
	}
	return "Something went wrong"
}

// ErrorPage renders a generic failure page for the given status.
func ErrorPage(statusCode int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		status := normalizeErrorStatus(statusCode)
		message := "The portal hit an unexpected problem. Please try again later."
		if status == http.StatusNotFound {
			message = "The page you are looking for does not exist."
		}
		_, err := fmt.Fprintf(w,
			`<section class="error"><h2>%s</h2><p>%s</p></section>`,
			templ.EscapeString(ErrorPageTitle(status)),
			templ.EscapeString(message),
		)
		return err
	})
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
