// Package routepath stores canonical HTTP paths for the portal.
package routepath

const (
	Root            = "/"
	Login           = "/login"
	Logout          = "/logout"
	Dashboard       = "/dashboard"
	Employees       = "/employees"
	PublicDirectory = "/employees-directory"
	Credentials     = "/credentials"
)
