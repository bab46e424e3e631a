package portal

import (
	"bytes"
	"log"
	"net/http"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/employee-portal/internal/portal/platform/errors"
	"github.com/louisbranch/employee-portal/internal/portal/platform/flash"
	"github.com/louisbranch/employee-portal/internal/portal/platform/httpx"
	"github.com/louisbranch/employee-portal/internal/portal/platform/sessioncookie"
	"github.com/louisbranch/employee-portal/internal/portal/routepath"
	"github.com/louisbranch/employee-portal/internal/portal/templates"
)

// joinedAtLayout formats employee creation times for display.
const joinedAtLayout = "2006-01-02 15:04"

// signedOutMessage is the one-time notice shown on the login page after logout.
const signedOutMessage = "You have been signed out."

type handlers struct {
	auth      *Authenticator
	sessions  *sessionManager
	directory *Directory
}

func newHandlers(auth *Authenticator, sessions *sessionManager, directory *Directory) handlers {
	return handlers{auth: auth, sessions: sessions, directory: directory}
}

// newRootHandler wires all portal routes into one handler.
func newRootHandler(auth *Authenticator, sessions *sessionManager, directory *Directory) http.Handler {
	h := newHandlers(auth, sessions, directory)

	mux := http.NewServeMux()
	mux.Handle(routepath.Root, httpx.Chain(
		http.HandlerFunc(h.handleRoot), httpx.RequireMethod(http.MethodGet)))
	mux.Handle(routepath.Login, httpx.Chain(
		http.HandlerFunc(h.handleLogin), httpx.RequireMethod(http.MethodPost)))
	mux.Handle(routepath.Dashboard, httpx.Chain(
		http.HandlerFunc(h.handleDashboard), httpx.RequireMethod(http.MethodGet)))
	mux.Handle(routepath.Logout, httpx.Chain(
		http.HandlerFunc(h.handleLogout), httpx.RequireMethod(http.MethodGet)))
	mux.Handle(routepath.Employees, httpx.Chain(
		http.HandlerFunc(h.handleEmployees), httpx.RequireMethod(http.MethodGet)))
	mux.Handle(routepath.PublicDirectory, httpx.Chain(
		http.HandlerFunc(h.handlePublicDirectory), httpx.RequireMethod(http.MethodGet)))
	mux.Handle(routepath.Credentials, httpx.Chain(
		http.HandlerFunc(h.handleCredentials), httpx.RequireMethod(http.MethodGet)))

	return httpx.Chain(mux, httpx.RecoverPanic(), httpx.RequestID())
}

// handleRoot renders the login form, or redirects authenticated viewers to
// their dashboard. The "/" pattern also catches unknown paths.
func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		h.writeNotFoundPage(w, r)
		return
	}
	if _, _, ok := h.currentSession(r); ok {
		http.Redirect(w, r, routepath.Dashboard, http.StatusFound)
		return
	}
	view := templates.LoginView{}
	if notice, ok := flash.ReadAndClear(w, r); ok {
		view.Notice = &templates.Notice{Kind: string(notice.Kind), Message: notice.Message}
	}
	h.writePage(w, r, "Sign in", "", http.StatusOK, templates.LoginPage(view))
}

// handleLogin evaluates a submitted login form. Rejections re-render the
// form inline with the authenticator's message; success establishes the
// session and redirects to the dashboard.
func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeLoginRejection(w, r, "", msgMissingFields)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	result, err := h.auth.Authenticate(r.Context(), username, password)
	if err != nil {
		log.Printf("authenticate: %v", err)
		h.writeErrorPage(w, r, apperrors.HTTPStatus(err))
		return
	}
	if result.Outcome != AuthSuccess {
		h.writeLoginRejection(w, r, username, result.Message)
		return
	}

	token := h.sessions.establish(result.Employee)
	sessioncookie.Write(w, token)
	http.Redirect(w, r, routepath.Dashboard, http.StatusFound)
}

// handleDashboard shows the signed-in employee's own profile.
func (h handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sess, token, ok := h.currentSession(r)
	if !ok {
		http.Redirect(w, r, routepath.Root, http.StatusFound)
		return
	}

	profile, err := h.directory.OwnProfile(r.Context(), sess)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindSessionInvalid {
			h.invalidateSession(w, r, token)
			return
		}
		log.Printf("own profile: %v", err)
		h.writeErrorPage(w, r, apperrors.HTTPStatus(err))
		return
	}

	view := templates.DashboardView{
		FullName:   profile.FullName,
		Username:   profile.Username,
		Department: profile.Department,
		Email:      profile.Email,
		Password:   profile.Password,
		JoinedAt:   profile.CreatedAt.Format(joinedAtLayout),
	}
	h.writePage(w, r, "Dashboard", sess.fullName, http.StatusOK, templates.DashboardPage(view))
}

// handleLogout clears session state unconditionally and returns to the
// login page with a one-time notice.
func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token, ok := sessioncookie.Read(r); ok {
		h.sessions.teardown(token)
	}
	sessioncookie.Clear(w)
	flash.Write(w, flash.NoticeInfo(signedOutMessage))
	http.Redirect(w, r, routepath.Root, http.StatusFound)
}

// handleEmployees lists every employee for authenticated viewers, most
// recent hires first, passwords included.
func (h handlers) handleEmployees(w http.ResponseWriter, r *http.Request) {
	sess, token, ok := h.currentSession(r)
	if !ok {
		http.Redirect(w, r, routepath.Root, http.StatusFound)
		return
	}
	if !h.sessionStillValid(w, r, sess, token) {
		return
	}

	entries, err := h.directory.ListAuthenticated(r.Context())
	if err != nil {
		log.Printf("list employees: %v", err)
		h.writeErrorPage(w, r, apperrors.HTTPStatus(err))
		return
	}

	rows := make([]templates.EmployeeRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, templates.EmployeeRow{
			Username:   entry.Username,
			FullName:   entry.FullName,
			Department: entry.Department,
			Email:      entry.Email,
			Password:   entry.Password,
			JoinedAt:   entry.CreatedAt.Format(joinedAtLayout),
		})
	}
	h.writePage(w, r, "Employees", sess.fullName, http.StatusOK, templates.EmployeesPage(rows))
}

// handlePublicDirectory lists every employee without credentials. No
// session is required.
func (h handlers) handlePublicDirectory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.directory.ListPublic(r.Context())
	if err != nil {
		log.Printf("list public directory: %v", err)
		h.writeErrorPage(w, r, apperrors.HTTPStatus(err))
		return
	}

	rows := make([]templates.DirectoryRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, templates.DirectoryRow{
			Username:   entry.Username,
			FullName:   entry.FullName,
			Department: entry.Department,
			Email:      entry.Email,
			JoinedAt:   entry.CreatedAt.Format(joinedAtLayout),
		})
	}

	viewerName := ""
	if sess, _, ok := h.currentSession(r); ok {
		viewerName = sess.fullName
	}
	h.writePage(w, r, "Employees Directory", viewerName, http.StatusOK, templates.DirectoryPage(rows))
}

// handleCredentials renders the static account-access information page.
func (h handlers) handleCredentials(w http.ResponseWriter, r *http.Request) {
	viewerName := ""
	if sess, _, ok := h.currentSession(r); ok {
		viewerName = sess.fullName
	}
	h.writePage(w, r, "Account Access", viewerName, http.StatusOK, templates.CredentialsPage())
}

// currentSession resolves the request's session from its cookie.
func (h handlers) currentSession(r *http.Request) (session, string, bool) {
	token, ok := sessioncookie.Read(r)
	if !ok {
		return session{}, "", false
	}
	sess, ok := h.sessions.current(token)
	if !ok {
		return session{}, "", false
	}
	return sess, token, true
}

// sessionStillValid confirms the session's record still exists, tearing the
// session down and redirecting when it does not.
func (h handlers) sessionStillValid(w http.ResponseWriter, r *http.Request, sess session, token string) bool {
	if _, err := h.directory.OwnProfile(r.Context(), sess); err != nil {
		if apperrors.KindOf(err) == apperrors.KindSessionInvalid {
			h.invalidateSession(w, r, token)
			return false
		}
		log.Printf("validate session: %v", err)
		h.writeErrorPage(w, r, apperrors.HTTPStatus(err))
		return false
	}
	return true
}

// invalidateSession treats a stale session like an absent one: clear state
// and return to the entry point without surfacing an error.
func (h handlers) invalidateSession(w http.ResponseWriter, r *http.Request, token string) {
	h.sessions.teardown(token)
	sessioncookie.Clear(w)
	http.Redirect(w, r, routepath.Root, http.StatusFound)
}

func (h handlers) writeLoginRejection(w http.ResponseWriter, r *http.Request, username, message string) {
	view := templates.LoginView{
		Username: username,
		Notice:   &templates.Notice{Kind: string(flash.KindError), Message: message},
	}
	h.writePage(w, r, "Sign in", "", http.StatusOK, templates.LoginPage(view))
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, title string, signedInName string, statusCode int, body templ.Component) {
	ctx := templ.WithChildren(r.Context(), body)
	var rendered bytes.Buffer
	page := templates.PageContext{Title: title, SignedInName: signedInName}
	if err := templates.Layout(page).Render(ctx, &rendered); err != nil {
		log.Printf("render page: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(rendered.Bytes())
}

func (h handlers) writeNotFoundPage(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, templates.ErrorPageTitle(http.StatusNotFound), "",
		http.StatusNotFound, templates.ErrorPage(http.StatusNotFound))
}

func (h handlers) writeErrorPage(w http.ResponseWriter, r *http.Request, statusCode int) {
	h.writePage(w, r, templates.ErrorPageTitle(statusCode), "", statusCode, templates.ErrorPage(statusCode))
}
