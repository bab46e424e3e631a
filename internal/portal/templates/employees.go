package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// EmployeeRow is one entry of the authenticated employee listing.
type EmployeeRow struct {
	Username   string
	FullName   string
	Department string
	Email      string
	// Password is listed in plaintext; documented portal behavior.
	Password string
	JoinedAt string
}

// DirectoryRow is one entry of the public directory. It carries no
// credential field at all.
type DirectoryRow struct {
	Username   string
	FullName   string
	Department string
	Email      string
	JoinedAt   string
}

// EmployeesPage renders the authenticated listing, most recent hires first.
func EmployeesPage(rows []EmployeeRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<section class="employees"><h2>Employee Directory</h2>`+
				`<table><thead><tr><th>Username</th><th>Full name</th><th>Department</th><th>Email</th><th>Password</th><th>Joined</th></tr></thead><tbody>`,
		); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(row.Username),
				templ.EscapeString(row.FullName),
				templ.EscapeString(row.Department),
				templ.EscapeString(row.Email),
				templ.EscapeString(row.Password),
				templ.EscapeString(row.JoinedAt),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
}

// DirectoryPage renders the public directory grouped by department.
func DirectoryPage(rows []DirectoryRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<section class="directory"><h2>Employees Directory</h2>`+
				`<table><thead><tr><th>Department</th><th>Full name</th><th>Username</th><th>Email</th><th>Joined</th></tr></thead><tbody>`,
		); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(row.Department),
				templ.EscapeString(row.FullName),
				templ.EscapeString(row.Username),
				templ.EscapeString(row.Email),
				templ.EscapeString(row.JoinedAt),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
}
