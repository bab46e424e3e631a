package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// DashboardView holds the viewer's own profile for the dashboard page.
type DashboardView struct {
	FullName   string
	Username   string
	Department string
	Email      string
	// Password is displayed in plaintext; documented portal behavior.
	Password string
	JoinedAt string
}

// DashboardPage renders the signed-in employee's profile.
func DashboardPage(view DashboardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="dashboard"><h2>Welcome back, %s</h2><dl class="profile">`,
			templ.EscapeString(view.FullName),
		); err != nil {
			return err
		}
		fields := [][2]string{
			{"Username", view.Username},
			{"Full name", view.FullName},
			{"Department", view.Department},
			{"Email", view.Email},
			{"Password", view.Password},
			{"Joined", view.JoinedAt},
		}
		for _, field := range fields {
			if _, err := fmt.Fprintf(w, `<dt>%s</dt><dd>%s</dd>`,
				templ.EscapeString(field[0]), templ.EscapeString(field[1])); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</dl></section>`)
		return err
	})
}
