package model

// Screen represents different app screens.
type Screen int

const (
	ScreenShops Screen = iota
	ScreenShopDetail
	ScreenAuth
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeInsert
)

// AuthView is the state of the mocked authentication modal.
type AuthView int

const (
	AuthClosed AuthView = iota
	AuthLogin
	AuthSignup
)

func (v AuthView) String() string {
	switch v {
	case AuthLogin:
		return "login"
	case AuthSignup:
		return "signup"
	default:
		return "closed"
	}
}
