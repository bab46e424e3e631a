package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/employee-portal/internal/portal/routepath"
)

// LoginView holds state for the login page.
type LoginView struct {
	// Username re-fills the form after a failed attempt.
	Username string
	// Notice is a one-time message, e.g. a rejected login or sign-out note.
	Notice *Notice
}

// LoginPage renders the sign-in form.
func LoginPage(view LoginView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := renderNotice(w, view.Notice); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<section class="login"><h2>Sign in</h2>`+
				`<form method="post" action="%s">`+
				`<label for="username">Username</label>`+
				`<input type="text" id="username" name="username" value="%s" autocomplete="username">`+
				`<label for="password">Password</label>`+
				`<input type="password" id="password" name="password" autocomplete="current-password">`+
				`<button type="submit">Sign in</button>`+
				`</form></section>`,
			templ.EscapeString(routepath.Login),
			templ.EscapeString(view.Username),
		)
		return err
	})
}
