package portal

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/louisbranch/employee-portal/internal/portal/platform/errors"
	"github.com/louisbranch/employee-portal/internal/portal/storage"
)

// DirectoryEntry is the authenticated-facing projection of an employee
// record. It includes the plaintext password; that exposure is documented
// portal behavior.
type DirectoryEntry struct {
	Username   string
	FullName   string
	Department string
	Email      string
	Password   string
	CreatedAt  time.Time
}

// PublicDirectoryEntry is the anonymous-facing projection. The type itself
// carries no credential field.
type PublicDirectoryEntry struct {
	Username   string
	FullName   string
	Department string
	Email      string
	CreatedAt  time.Time
}

// Directory is a read-only projection service over the employee store.
type Directory struct {
	store storage.EmployeeStore
}

// NewDirectory builds a directory service over the given store.
func NewDirectory(store storage.EmployeeStore) *Directory {
	return &Directory{store: store}
}

// ListAuthenticated returns all employees ordered by creation time
// descending, including plaintext passwords. An empty store is a valid
// empty listing.
func (d *Directory) ListAuthenticated(ctx context.Context) ([]DirectoryEntry, error) {
	employees, err := d.store.ListEmployeesByCreation(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees by creation: %w", err)
	}
	entries := make([]DirectoryEntry, 0, len(employees))
	for _, employee := range employees {
		entries = append(entries, toDirectoryEntry(employee))
	}
	return entries, nil
}

// ListPublic returns all employees ordered by department, then full name,
// ascending, with no credential data.
func (d *Directory) ListPublic(ctx context.Context) ([]PublicDirectoryEntry, error) {
	employees, err := d.store.ListEmployeesByDepartment(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees by department: %w", err)
	}
	entries := make([]PublicDirectoryEntry, 0, len(employees))
	for _, employee := range employees {
		entries = append(entries, PublicDirectoryEntry{
			Username:   employee.Username,
			FullName:   employee.FullName,
			Department: employee.Department,
			Email:      employee.Email,
			CreatedAt:  employee.CreatedAt,
		})
	}
	return entries, nil
}

// OwnProfile returns the session holder's own record, including the
// plaintext password. A session bound to a missing record yields a
// session-invalid error so the caller can tear the session down.
func (d *Directory) OwnProfile(ctx context.Context, sess session) (DirectoryEntry, error) {
	employee, err := d.store.GetEmployee(ctx, sess.employeeID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return DirectoryEntry{}, apperrors.E(apperrors.KindSessionInvalid, "session references a missing employee")
		}
		return DirectoryEntry{}, fmt.Errorf("get employee %d: %w", sess.employeeID, err)
	}
	return toDirectoryEntry(employee), nil
}

func toDirectoryEntry(employee storage.Employee) DirectoryEntry {
	return DirectoryEntry{
		Username:   employee.Username,
		FullName:   employee.FullName,
		Department: employee.Department,
		Email:      employee.Email,
		Password:   employee.Password,
		CreatedAt:  employee.CreatedAt,
	}
}
