package session

import (
	"errors"

	"roast/internal/model"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Detail is the shop detail state: Closed or Open(id).
type Detail struct {
	shopID string
	open   bool
}

// Open returns Open(id).
func (d Detail) Open(id string) Detail { return Detail{shopID: id, open: true} }

// Close returns Closed.
func (d Detail) Close() Detail { return Detail{} }

// ShopID returns the open shop's ID.
func (d Detail) ShopID() (string, bool) { return d.shopID, d.open }

// IsOpen reports whether the detail is open.
func (d Detail) IsOpen() bool { return d.open }

// ErrPasswordMismatch is returned when the signup confirmation differs.
var ErrPasswordMismatch = errors.New("passwords do not match")

// ErrAuthClosed is returned when a form is submitted while the modal is not
// showing that form.
var ErrAuthClosed = errors.New("auth form is not open")

// Auth is the mocked authentication modal: Closed, Login or Signup.
type Auth struct {
	view model.AuthView
}

// View returns the current state.
func (a Auth) View() model.AuthView { return a.view }

// IsOpen reports whether the modal is showing.
func (a Auth) IsOpen() bool { return a.view != model.AuthClosed }

// Open shows the modal on v. Opening on AuthClosed closes it.
func (a Auth) Open(v model.AuthView) Auth { return Auth{view: v} }

// Switch changes between login and signup while open.
func (a Auth) Switch(v model.AuthView) Auth {
	if !a.IsOpen() {
		return a
	}
	return Auth{view: v}
}

// Close hides the modal.
func (a Auth) Close() Auth { return Auth{} }

// SubmitLogin checks the form client-side and closes on success.
func (a Auth) SubmitLogin(form model.LoginForm) (Auth, error) {
	if a.view != model.AuthLogin {
		return a, ErrAuthClosed
	}
	err := validation.ValidateStruct(&form,
		validation.Field(&form.Email, validation.Required, is.EmailFormat),
		validation.Field(&form.Password, validation.Required),
	)
	if err != nil {
		return a, err
	}
	return a.Close(), nil
}

// SubmitSignup checks the form client-side, including that both passwords
// match, and closes on success.
func (a Auth) SubmitSignup(form model.SignupForm) (Auth, error) {
	if a.view != model.AuthSignup {
		return a, ErrAuthClosed
	}
	err := validation.ValidateStruct(&form,
		validation.Field(&form.Name, validation.Required),
		validation.Field(&form.Email, validation.Required, is.EmailFormat),
		validation.Field(&form.Password, validation.Required),
		validation.Field(&form.Confirm, validation.Required),
	)
	if err != nil {
		return a, err
	}
	if form.Password != form.Confirm {
		return a, ErrPasswordMismatch
	}
	return a.Close(), nil
}
