package domain

import "time"

// User is the durable account record backing login. PasswordHash is a bcrypt
// hash and never leaves the repository layer in responses.
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	Name         string    `json:"name" db:"name"`
	Skills       []string  `json:"skills,omitempty" db:"skills"`
	Experience   *string   `json:"experience,omitempty" db:"experience"`
	Industry     *string   `json:"industry,omitempty" db:"industry"`
	Website      *string   `json:"website,omitempty" db:"website"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
