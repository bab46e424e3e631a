// Package storage defines persistence contracts for employee records.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested employee record is missing.
var ErrNotFound = errors.New("employee record not found")

// Employee is a single employee record. Password is stored and compared as
// plaintext; that is documented behavior of this portal, not an oversight.
type Employee struct {
	ID         int64
	Username   string
	Password   string
	FullName   string
	Department string
	Email      string
	CreatedAt  time.Time
}

// EmployeeStore reads employee records. The store is read-only after the
// one-time bootstrap reseed at startup.
type EmployeeStore interface {
	// GetEmployeeByUsername returns the record for an exact, case-sensitive
	// username match, or ErrNotFound.
	GetEmployeeByUsername(ctx context.Context, username string) (Employee, error)
	// GetEmployee returns the record by ID, or ErrNotFound.
	GetEmployee(ctx context.Context, id int64) (Employee, error)
	// ListEmployeesByCreation returns all records ordered by creation time
	// descending (most recently created first).
	ListEmployeesByCreation(ctx context.Context) ([]Employee, error)
	// ListEmployeesByDepartment returns all records ordered by department,
	// then full name, ascending.
	ListEmployeesByDepartment(ctx context.Context) ([]Employee, error)
}
