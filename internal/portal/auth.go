package portal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/employee-portal/internal/portal/storage"
)

// AuthOutcome classifies the result of a login attempt.
type AuthOutcome int

const (
	// AuthMissingFields rejects the attempt before any store lookup.
	AuthMissingFields AuthOutcome = iota
	// AuthUnknownUser means no record exists for the submitted username.
	AuthUnknownUser
	// AuthWrongPassword means the record exists but the password differs.
	AuthWrongPassword
	// AuthSuccess accepts the attempt; the result carries the employee.
	AuthSuccess
)

// distinguishedUsername is the one account whose rejected logins receive a
// distinct message family.
const distinguishedUsername = "administrator"

// Literal user-facing messages. These are part of the portal's contract and
// must not be reworded.
const (
	msgMissingFields         = "Please provide both username and password"
	msgRejectedGeneric       = "Invalid username or password"
	msgRejectedDistinguished = "Invalid username or password. Access denied."
)

// AuthResult is the outcome of one authentication attempt.
type AuthResult struct {
	Outcome AuthOutcome
	// Message is the user-facing text for rejected attempts; empty on success.
	Message string
	// Employee is set only on success.
	Employee storage.Employee
}

// CredentialComparer decides whether a submitted password matches the
// stored credential. The seam exists so a hardened comparison can be swapped
// in without touching callers.
type CredentialComparer interface {
	Compare(stored, submitted string) bool
}

// plaintextComparer matches credentials by direct string equality. Not
// timing-safe; the stored credential is plaintext.
type plaintextComparer struct{}

func (plaintextComparer) Compare(stored, submitted string) bool {
	return stored == submitted
}

// Authenticator validates username/password pairs against the record store
// and owns the rejection-message policy. It has no side effects; session
// establishment belongs to the caller.
type Authenticator struct {
	store   storage.EmployeeStore
	compare CredentialComparer
}

// NewAuthenticator builds an authenticator over the given store using
// plaintext credential comparison.
func NewAuthenticator(store storage.EmployeeStore) *Authenticator {
	return &Authenticator{store: store, compare: plaintextComparer{}}
}

// Authenticate evaluates one login attempt. Both fields are trimmed first;
// empty input is rejected without touching the store. A non-nil error means
// the store itself failed, which is distinct from any rejection outcome.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (AuthResult, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return AuthResult{Outcome: AuthMissingFields, Message: msgMissingFields}, nil
	}

	employee, err := a.store.GetEmployeeByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return AuthResult{Outcome: AuthUnknownUser, Message: rejectionMessage(username)}, nil
		}
		return AuthResult{}, fmt.Errorf("look up employee: %w", err)
	}

	if !a.compare.Compare(employee.Password, password) {
		return AuthResult{Outcome: AuthWrongPassword, Message: rejectionMessage(username)}, nil
	}

	return AuthResult{Outcome: AuthSuccess, Employee: employee}, nil
}

// rejectionMessage selects the text for an unknown-user or wrong-password
// rejection. The administrator username always gets its own fixed message,
// identical across both cases; every other username gets the shorter
// generic one. The two message families are deliberately distinguishable.
func rejectionMessage(username string) string {
	if username == distinguishedUsername {
		return msgRejectedDistinguished
	}
	return msgRejectedGeneric
}
