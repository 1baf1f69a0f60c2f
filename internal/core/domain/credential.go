package domain

// Credential is a login record. Passwords are stored and compared as
// opaque strings; hashing is out of scope for this system.
type Credential struct {
	Email    string `json:"email"`
	Password string `json:"-"`
}
