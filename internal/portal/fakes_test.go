package portal

import (
	"context"
	"sort"

	"github.com/louisbranch/employee-portal/internal/portal/storage"
)

// fakeEmployeeStore is an in-memory EmployeeStore for unit tests. A non-nil
// err is returned from every method to simulate store failure.
type fakeEmployeeStore struct {
	employees []storage.Employee
	err       error
}

func (f *fakeEmployeeStore) GetEmployeeByUsername(_ context.Context, username string) (storage.Employee, error) {
	if f.err != nil {
		return storage.Employee{}, f.err
	}
	for _, employee := range f.employees {
		if employee.Username == username {
			return employee, nil
		}
	}
	return storage.Employee{}, storage.ErrNotFound
}

func (f *fakeEmployeeStore) GetEmployee(_ context.Context, id int64) (storage.Employee, error) {
	if f.err != nil {
		return storage.Employee{}, f.err
	}
	for _, employee := range f.employees {
		if employee.ID == id {
			return employee, nil
		}
	}
	return storage.Employee{}, storage.ErrNotFound
}

func (f *fakeEmployeeStore) ListEmployeesByCreation(_ context.Context) ([]storage.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]storage.Employee(nil), f.employees...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (f *fakeEmployeeStore) ListEmployeesByDepartment(_ context.Context) ([]storage.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]storage.Employee(nil), f.employees...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Department != out[j].Department {
			return out[i].Department < out[j].Department
		}
		return out[i].FullName < out[j].FullName
	})
	return out, nil
}

var _ storage.EmployeeStore = (*fakeEmployeeStore)(nil)
