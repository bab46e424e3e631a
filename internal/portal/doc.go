// Package portal implements the employee portal HTTP service: login and
// session establishment, the signed-in profile view, and the employee
// directory listings.
//
// The portal is a deliberately weak training target. Credentials are stored
// and compared as plaintext, rejected logins leak whether the submitted
// username was the administrator account, and authenticated listings expose
// every employee's password. These behaviors are part of the system's
// contract and are covered by tests; they must not be "fixed" casually.
package portal
