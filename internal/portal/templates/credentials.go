package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// CredentialsPage renders the static account-access information page.
func CredentialsPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<section class="credentials"><h2>Account Access</h2>`+
				`<p>Your portal account is provisioned by the IT department. `+
				`Credentials are distributed during onboarding and are valid for all internal tools.</p>`+
				`<p>If you cannot sign in, contact the IT helpdesk to have your password re-issued.</p>`+
				`</section>`,
		)
		return err
	})
}
