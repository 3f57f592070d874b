package forms

import (
	"strings"

	"finboard/internal/core"
)

// UserForm is the settings modal state machine: locked until the user
// starts editing, locked again after save or cancel. Validation errors
// are only visible while editing.
type UserForm struct {
	saved   core.User
	editing bool

	Name     string
	Email    string
	Username string
	Password string
}

// NewUserForm seeds a locked form from the current user.
func NewUserForm(u core.User) *UserForm {
	f := &UserForm{saved: u}
	f.reseed()
	return f
}

func (f *UserForm) reseed() {
	f.Name = f.saved.Name
	f.Email = f.saved.Email
	f.Username = f.saved.Username
	f.Password = f.saved.Password
}

// Editing reports whether the fields are enabled.
func (f *UserForm) Editing() bool { return f.editing }

// StartEdit unlocks the fields.
func (f *UserForm) StartEdit() { f.editing = true }

// Cancel discards field changes and returns to the locked state.
func (f *UserForm) Cancel() {
	f.reseed()
	f.editing = false
}

// Save commits the fields and locks the form. The returned user carries
// the edited profile with the saved identity; the caller hands it to the
// session.
func (f *UserForm) Save() (core.User, error) {
	if !f.editing {
		return core.User{}, ErrReadOnly
	}
	if !f.CanSave() {
		return core.User{}, ErrIncomplete
	}
	f.saved.Name = strings.TrimSpace(f.Name)
	f.saved.Email = strings.TrimSpace(f.Email)
	f.saved.Username = strings.TrimSpace(f.Username)
	f.saved.Password = strings.TrimSpace(f.Password)
	f.reseed()
	f.editing = false
	return f.saved, nil
}

// NameError returns the visible name validation message.
func (f *UserForm) NameError() string {
	if !f.editing {
		return ""
	}
	if strings.TrimSpace(f.Name) == "" {
		return "Name is required"
	}
	return ""
}

func (f *UserForm) UsernameError() string {
	if !f.editing {
		return ""
	}
	if strings.TrimSpace(f.Username) == "" {
		return "Username is required"
	}
	return ""
}

func (f *UserForm) PasswordError() string {
	if !f.editing {
		return ""
	}
	if strings.TrimSpace(f.Password) == "" {
		return "Password is required"
	}
	return ""
}

func (f *UserForm) EmailError() string {
	if !f.editing {
		return ""
	}
	email := strings.TrimSpace(f.Email)
	if email == "" {
		return "Email is required"
	}
	if !validEmail(email) {
		return "Invalid email format."
	}
	return ""
}

// CanSave reports whether the save action is enabled.
func (f *UserForm) CanSave() bool {
	if !f.editing {
		return false
	}
	return f.NameError() == "" &&
		f.UsernameError() == "" &&
		f.PasswordError() == "" &&
		f.EmailError() == ""
}

// validEmail accepts local@domain.tld shapes: at least one @, a dot
// somewhere after it, and no whitespace.
func validEmail(s string) bool {
	if strings.ContainsAny(s, " \t\n") {
		return false
	}
	at := strings.Index(s, "@")
	if at < 1 {
		return false
	}
	rest := s[at+1:]
	dot := strings.Index(rest, ".")
	return dot >= 1 && dot < len(rest)-1
}
