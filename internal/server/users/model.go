package users

import "time"

// User is the identity record owned by the credential store. Usernames are
// unique and case-sensitive; ids are assigned by the store and never reused.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
