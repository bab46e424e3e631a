// Package sqlite provides SQLite-backed persistence for employee records.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/employee-portal/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/employee-portal/internal/portal/storage"
	"github.com/louisbranch/employee-portal/internal/portal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for employee records.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates an employee SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Bootstrap clears the employee table and inserts the fixed seed set in one
// transaction. Creation timestamps increase in seed order. Bootstrap must
// complete before any request is served and always yields the same records,
// so invoking it again simply reseeds.
func (s *Store) Bootstrap(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin bootstrap transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM employees`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear employees: %w", err)
	}

	base := time.Now().UTC().Truncate(time.Second)
	for idx, seed := range storage.SeedEmployees() {
		createdAt := base.Add(time.Duration(idx) * time.Second)
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO employees (username, password, full_name, department, email, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			seed.Username,
			seed.Password,
			seed.FullName,
			seed.Department,
			seed.Email,
			timeToUnixMillis(createdAt),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("seed employee %s: %w", seed.Username, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bootstrap: %w", err)
	}
	return nil
}

// GetEmployeeByUsername loads a record by exact username match.
func (s *Store) GetEmployeeByUsername(ctx context.Context, username string) (storage.Employee, error) {
	if s == nil || s.sqlDB == nil {
		return storage.Employee{}, fmt.Errorf("storage is not configured")
	}
	if username == "" {
		return storage.Employee{}, fmt.Errorf("username is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, username, password, full_name, department, email, created_at
		 FROM employees
		 WHERE username = ?`,
		username,
	)
	return scanEmployee(row)
}

// GetEmployee loads a record by ID.
func (s *Store) GetEmployee(ctx context.Context, id int64) (storage.Employee, error) {
	if s == nil || s.sqlDB == nil {
		return storage.Employee{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, username, password, full_name, department, email, created_at
		 FROM employees
		 WHERE id = ?`,
		id,
	)
	return scanEmployee(row)
}

// ListEmployeesByCreation returns all records, most recently created first.
func (s *Store) ListEmployeesByCreation(ctx context.Context) ([]storage.Employee, error) {
	return s.list(ctx, `ORDER BY created_at DESC, id DESC`)
}

// ListEmployeesByDepartment returns all records ordered by department, then
// full name.
func (s *Store) ListEmployeesByDepartment(ctx context.Context) ([]storage.Employee, error) {
	return s.list(ctx, `ORDER BY department ASC, full_name ASC`)
}

func (s *Store) list(ctx context.Context, orderBy string) ([]storage.Employee, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, username, password, full_name, department, email, created_at
		 FROM employees `+orderBy,
	)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	employees := make([]storage.Employee, 0)
	for rows.Next() {
		var employee storage.Employee
		var createdAt int64
		if err := rows.Scan(
			&employee.ID,
			&employee.Username,
			&employee.Password,
			&employee.FullName,
			&employee.Department,
			&employee.Email,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employee.CreatedAt = unixMillisToTime(createdAt)
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}
	return employees, nil
}

func scanEmployee(row *sql.Row) (storage.Employee, error) {
	var employee storage.Employee
	var createdAt int64
	if err := row.Scan(
		&employee.ID,
		&employee.Username,
		&employee.Password,
		&employee.FullName,
		&employee.Department,
		&employee.Email,
		&createdAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return storage.Employee{}, storage.ErrNotFound
		}
		return storage.Employee{}, fmt.Errorf("get employee: %w", err)
	}
	employee.CreatedAt = unixMillisToTime(createdAt)
	return employee, nil
}

func (s *Store) runMigrations() error {
	return sqlitemigrate.ApplyMigrations(s.sqlDB, migrations.FS)
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ storage.EmployeeStore = (*Store)(nil)
