// Package sec provides authentication and security primitives for the HTTP
// API.
//
// # Authentication
//
// Authentication uses HTTP Basic Auth. Credentials are validated against
// bcrypt password hashes stored in the database. All denials surface the same
// generic response to the caller; the specific reason is only logged.
//
// IMPORTANT: Basic Auth transmits credentials in base64 encoding (not
// encrypted). TLS must be used in production to protect credentials in
// transit.
//
// # Components
//
//   - [ParseAuthorization]: Extracts Basic Auth credentials from a header value
//   - [Authenticate]: Validates credentials against the user store
//   - [GetPrincipal], [WithPrincipal]: Context accessors for the caller identity
//   - [HashPassword], [ComparePassword]: bcrypt password hashing utilities
package sec
