package models

import "time"

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role      RoleType  `json:"role" db:"role"`
	Bio       *string   `json:"bio,omitempty" db:"bio"`
	Image     *string   `json:"image,omitempty" db:"image"`
	Expertise []string  `json:"expertise" db:"expertise"`
	Interests []string  `json:"interests" db:"interests"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Related entities, populated on demand
	Followers  []int64 `json:"followers,omitempty"`
	Following  []int64 `json:"following,omitempty"`
	SavedIdeas []int64 `json:"savedIdeas,omitempty"`
}

// DisplayImage returns the profile image URL or an empty string.
func (u *User) DisplayImage() string {
	if u.Image == nil {
		return ""
	}
	return *u.Image
}
