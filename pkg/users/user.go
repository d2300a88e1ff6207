package users

// User is a stored user record.
type User struct {
	ID    string `json:"id" validate:"omitempty,uuid"`
	Name  string `json:"name" validate:"required,min=1"`
	Email string `json:"email" validate:"required,email"`
}

// CreateUser is the body of a create request. It is User without the id.
type CreateUser struct {
	Name  string `json:"name" validate:"required,min=1"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateUser is the body of a partial update. Nil fields are left as is.
type UpdateUser struct {
	Name  *string `json:"name,omitempty" validate:"omitnil,min=1"`
	Email *string `json:"email,omitempty" validate:"omitnil,email"`
}

// Apply merges the non-nil fields of u into user and returns the result.
func (u UpdateUser) Apply(user User) User {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	return user
}
