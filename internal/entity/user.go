package domain

// User is a credential-store record. The core never mutates users;
// provisioning happens outside this service.
type User struct {
	Username       string `json:"username"`
	FullName       string `json:"full_name,omitempty"`
	Email          string `json:"email,omitempty"`
	HashedPassword string `json:"-"`
	Disabled       bool   `json:"disabled"`
}
