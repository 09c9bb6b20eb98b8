package models

// User represents a user record. ID is supplied by the caller on create and
// must be positive; a blank id field binds to 0 and fails validation.
type User struct {
	ID    int    `json:"id" form:"id" validate:"required,gt=0"`
	Name  string `json:"name" form:"name" validate:"required,max=100"`
	Email string `json:"email" form:"email" validate:"required,email"`
}

// UserForm is the view-model of the create and edit forms. User is embedded so
// the form encodes as the user record itself, plus any field errors.
type UserForm struct {
	User
	Errors map[string]string `json:"errors,omitempty"`
}

// NewUserForm creates a form view-model with field errors keyed by field name
func NewUserForm(user User, errors map[string]string) UserForm {
	return UserForm{User: user, Errors: errors}
}

// Error returns the error message for field, or an empty string
func (f UserForm) Error(field string) string {
	return f.Errors[field]
}
