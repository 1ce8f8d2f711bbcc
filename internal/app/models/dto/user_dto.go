package dto

// UpdateProfileRequest represents profile update data. Nil fields are left
// untouched.
type UpdateProfileRequest struct {
	Name      *string  `json:"name,omitempty"`
	Bio       *string  `json:"bio,omitempty"`
	Image     *string  `json:"image,omitempty"`
	Expertise []string `json:"expertise,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

// ProfileResponse represents a user profile, password excluded
type ProfileResponse struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      string   `json:"role"`
	Bio       *string  `json:"bio,omitempty"`
	Image     *string  `json:"image,omitempty"`
	Expertise []string `json:"expertise"`
	Interests []string `json:"interests"`
	Followers int      `json:"followers"`
	Following int      `json:"following"`
	CreatedAt string   `json:"createdAt"`
}
