package portal

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/employee-portal/internal/portal/routepath"
	"github.com/louisbranch/employee-portal/internal/portal/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv, err := NewServer(context.Background(), Config{
		HTTPAddr: "localhost:0",
		DBPath:   filepath.Join(t.TempDir(), "portal.db"),
	})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	t.Cleanup(func() { srv.Close() })

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

// noRedirectClient returns responses as-is so tests can assert on 302s.
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func postLogin(t *testing.T, ts *httptest.Server, username, password string) *http.Response {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	resp, err := noRedirectClient().PostForm(ts.URL+routepath.Login, form)
	if err != nil {
		t.Fatalf("POST %s: %v", routepath.Login, err)
	}
	return resp
}

// loginAs performs a successful login and returns the session cookie.
func loginAs(t *testing.T, ts *httptest.Server, username, password string) *http.Cookie {
	t.Helper()
	resp := postLogin(t, ts, username, password)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login status = %d, want %d", resp.StatusCode, http.StatusFound)
	}
	for _, c := range resp.Cookies() {
		if c.Name == "portal_session" && c.Value != "" {
			return c
		}
	}
	t.Fatal("login response set no session cookie")
	return nil
}

func getWithCookie(t *testing.T, ts *httptest.Server, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := noRedirectClient().Do(req)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func TestRootShowsLoginForm(t *testing.T) {
	ts := newTestServer(t)

	resp := getWithCookie(t, ts, routepath.Root, nil)
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	for _, want := range []string{"Employee Portal", "Sign in", `action="` + routepath.Login + `"`, `name="username"`, `name="password"`} {
		if !strings.Contains(body, want) {
			t.Errorf("login page missing %q", want)
		}
	}
}

func TestRootRedirectsSignedInViewer(t *testing.T) {
	ts := newTestServer(t)
	cookie := loginAs(t, ts, "johndoe1", "password123")

	resp := getWithCookie(t, ts, routepath.Root, cookie)
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != routepath.Dashboard {
		t.Errorf("Location = %q, want %q", loc, routepath.Dashboard)
	}
}

func TestLoginRejectionMessages(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     string
		exclude  string
	}{
		{
			name:     "missing fields",
			username: "",
			password: "",
			want:     "Please provide both username and password",
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "whatever",
			want:     "Invalid username or password",
			exclude:  "Access denied",
		},
		{
			name:     "wrong password",
			username: "johndoe1",
			password: "nope",
			want:     "Invalid username or password",
			exclude:  "Access denied",
		},
		{
			name:     "administrator wrong password",
			username: "administrator",
			password: "nope",
			want:     "Invalid username or password. Access denied.",
		},
	}

	ts := newTestServer(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := postLogin(t, ts, tc.username, tc.password)
			body := readBody(t, resp)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			if !strings.Contains(body, tc.want) {
				t.Errorf("body missing %q", tc.want)
			}
			if tc.exclude != "" && strings.Contains(body, tc.exclude) {
				t.Errorf("body unexpectedly contains %q", tc.exclude)
			}
			// rejection re-renders the form
			if !strings.Contains(body, `name="username"`) {
				t.Error("rejection page lost the login form")
			}
		})
	}
}

func TestLoginSuccessFlow(t *testing.T) {
	ts := newTestServer(t)

	resp := postLogin(t, ts, "johndoe1", "password123")
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != routepath.Dashboard {
		t.Errorf("Location = %q, want %q", loc, routepath.Dashboard)
	}
}

func TestDashboard(t *testing.T) {
	ts := newTestServer(t)
	cookie := loginAs(t, ts, "johndoe1", "password123")

	resp := getWithCookie(t, ts, routepath.Dashboard, cookie)
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	for _, want := range []string{"Welcome back, John Doe", "johndoe1", "Engineering", "john.doe@company.com", "password123"} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestDashboardRequiresSession(t *testing.T) {
	ts := newTestServer(t)

	resp := getWithCookie(t, ts, routepath.Dashboard, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != routepath.Root {
		t.Errorf("Location = %q, want %q", loc, routepath.Root)
	}
}

func TestDashboardRejectsForgedToken(t *testing.T) {
	ts := newTestServer(t)

	forged := &http.Cookie{Name: "portal_session", Value: "0123456789abcdef0123456789abcdef"}
	resp := getWithCookie(t, ts, routepath.Dashboard, forged)
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302 for forged token", resp.StatusCode)
	}
}

func TestAdministratorLoginShowsOwnCredential(t *testing.T) {
	ts := newTestServer(t)
	cookie := loginAs(t, ts, "administrator", "password1")

	resp := getWithCookie(t, ts, routepath.Dashboard, cookie)
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	for _, want := range []string{"Welcome back, System Administrator", "administrator", "password1"} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

// A session whose record has disappeared is treated like no session at all:
// torn down, cookie expired, quiet redirect to the entry point.
func TestStaleSessionSelfHeals(t *testing.T) {
	for _, path := range []string{routepath.Dashboard, routepath.Employees} {
		t.Run(path, func(t *testing.T) {
			store := &fakeEmployeeStore{employees: testRoster()}
			sessions := newSessionManager()
			handler := newRootHandler(NewAuthenticator(store), sessions, NewDirectory(store))
			ts := httptest.NewServer(handler)
			t.Cleanup(ts.Close)

			token := sessions.establish(storage.Employee{ID: 42, Username: "ghost", FullName: "Gone Ghost"})

			resp := getWithCookie(t, ts, path, &http.Cookie{Name: "portal_session", Value: token})
			resp.Body.Close()
			if resp.StatusCode != http.StatusFound {
				t.Fatalf("status = %d, want 302", resp.StatusCode)
			}
			if loc := resp.Header.Get("Location"); loc != routepath.Root {
				t.Errorf("Location = %q, want %q", loc, routepath.Root)
			}

			if _, ok := sessions.current(token); ok {
				t.Error("stale session survived the request")
			}

			var cleared bool
			for _, c := range resp.Cookies() {
				if c.Name == "portal_session" && c.MaxAge < 0 {
					cleared = true
				}
			}
			if !cleared {
				t.Error("response did not expire the session cookie")
			}
		})
	}
}

func TestEmployeesListing(t *testing.T) {
	ts := newTestServer(t)
	cookie := loginAs(t, ts, "johndoe1", "password123")

	resp := getWithCookie(t, ts, routepath.Employees, cookie)
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(body, "Employee Directory") {
		t.Error("listing missing heading")
	}
	// passwords are part of the authenticated listing
	for _, want := range []string{"password1", "welcome2024", "thomas123"} {
		if !strings.Contains(body, want) {
			t.Errorf("listing missing credential %q", want)
		}
	}
	// newest hire appears before the oldest
	newest := strings.Index(body, "Thomas Anderson")
	oldest := strings.Index(body, "System Administrator")
	if newest == -1 || oldest == -1 || newest > oldest {
		t.Errorf("listing order wrong: Thomas Anderson at %d, System Administrator at %d", newest, oldest)
	}
}

func TestEmployeesRequiresSession(t *testing.T) {
	ts := newTestServer(t)

	resp := getWithCookie(t, ts, routepath.Employees, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
}

func TestPublicDirectory(t *testing.T) {
	ts := newTestServer(t)

	resp := getWithCookie(t, ts, routepath.PublicDirectory, nil)
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(body, "Employees Directory") {
		t.Error("public page missing heading")
	}
	// no credentials on the public page
	for _, banned := range []string{"password123", "welcome2024", "thomas123"} {
		if strings.Contains(body, banned) {
			t.Errorf("public page leaked credential %q", banned)
		}
	}
	// ordered by department, Customer Support first
	first := strings.Index(body, "Emma Davis")
	second := strings.Index(body, "John Doe")
	if first == -1 || second == -1 || first > second {
		t.Errorf("public ordering wrong: Emma Davis at %d, John Doe at %d", first, second)
	}
}

func TestCredentialsPage(t *testing.T) {
	ts := newTestServer(t)

	resp := getWithCookie(t, ts, routepath.Credentials, nil)
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(body, "Account Access") {
		t.Error("credentials page missing heading")
	}
}

func TestLogout(t *testing.T) {
	ts := newTestServer(t)
	cookie := loginAs(t, ts, "johndoe1", "password123")

	resp := getWithCookie(t, ts, routepath.Logout, cookie)
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != routepath.Root {
		t.Errorf("Location = %q, want %q", loc, routepath.Root)
	}

	var flashCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "portal_flash" {
			flashCookie = c
		}
	}
	if flashCookie == nil {
		t.Fatal("logout set no flash cookie")
	}

	// old token is dead
	after := getWithCookie(t, ts, routepath.Dashboard, cookie)
	after.Body.Close()
	if after.StatusCode != http.StatusFound {
		t.Errorf("dashboard after logout status = %d, want 302", after.StatusCode)
	}

	// the flash notice surfaces once on the login page
	req, err := http.NewRequest(http.MethodGet, ts.URL+routepath.Root, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.AddCookie(flashCookie)
	loginResp, err := noRedirectClient().Do(req)
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	body := readBody(t, loginResp)
	if !strings.Contains(body, "You have been signed out.") {
		t.Error("login page missing signed-out notice")
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	ts := newTestServer(t)

	resp := getWithCookie(t, ts, routepath.Logout, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
}

func TestUnknownPath(t *testing.T) {
	ts := newTestServer(t)

	resp := getWithCookie(t, ts, "/no-such-page", nil)
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if !strings.Contains(body, "Page not found") {
		t.Error("missing not-found page body")
	}
}

func TestLoginRejectsGet(t *testing.T) {
	ts := newTestServer(t)

	resp := getWithCookie(t, ts, routepath.Login, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
	if allow := resp.Header.Get("Allow"); allow != http.MethodPost {
		t.Errorf("Allow = %q, want POST", allow)
	}
}
