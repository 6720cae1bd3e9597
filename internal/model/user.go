// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other
// languages, but without inheritance. Go favours composition over inheritance.
package model

// User represents a registered account.
//
// WHY ID int64?
// IDs are assigned sequentially by the registry (1, 2, 3, …) and are never
// reused — users cannot be deleted, so an ID identifies one account for the
// lifetime of the process. int64 matches the type chi parses path params into
// via strconv.ParseInt, so there's no conversion noise at the boundaries.
//
// WHY json:"-" ON PasswordHash?
// The bcrypt digest must never appear in an API response. Tagging the field
// with "-" means encoding/json skips it everywhere — there is no handler-level
// code to forget. The registry still returns the full record internally;
// only serialization is restricted.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // bcrypt digest, never serialized
}
