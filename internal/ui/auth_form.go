package ui

import (
	"errors"
	"sort"
	"strings"

	"roast/internal/model"
	"roast/internal/session"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type authSubmitMsg struct {
	login  *model.LoginForm
	signup *model.SignupForm
}

type authCancelMsg struct{}

type authSwitchMsg struct {
	view model.AuthView
}

type authField struct {
	label string
	input textinput.Model
}

// AuthFormModel is the login/signup modal.
type AuthFormModel struct {
	view         model.AuthView
	fields       []authField
	focusedField int
	keys         FormKeyMap
	error        string
}

// NewAuthFormModel creates an empty form for v.
func NewAuthFormModel(v model.AuthView) *AuthFormModel {
	m := &AuthFormModel{view: v, keys: DefaultFormKeyMap()}

	if v == model.AuthSignup {
		m.fields = append(m.fields, newAuthField("Name", "Jane Doe", false))
	}
	m.fields = append(m.fields,
		newAuthField("Email", "you@example.com", false),
		newAuthField("Password", "••••••••", true),
	)
	if v == model.AuthSignup {
		m.fields = append(m.fields, newAuthField("Confirm password", "••••••••", true))
	}
	m.fields[0].input.Focus()
	return m
}

func newAuthField(label, placeholder string, secret bool) authField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 254
	in.Width = 36
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return authField{label: label, input: in}
}

// View returns the form's auth view.
func (m *AuthFormModel) View() model.AuthView { return m.view }

// SetError shows err under the form. Validation errors are listed per field.
func (m *AuthFormModel) SetError(err error) {
	if err == nil {
		m.error = ""
		return
	}
	if errors.Is(err, session.ErrPasswordMismatch) {
		m.error = "Passwords do not match."
		return
	}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		keys := make([]string, 0, len(verrs))
		for k := range verrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		lines := make([]string, 0, len(keys))
		for _, k := range keys {
			lines = append(lines, k+": "+verrs[k].Error())
		}
		m.error = strings.Join(lines, "\n")
		return
	}
	m.error = err.Error()
}

// Error returns the message currently shown.
func (m *AuthFormModel) Error() string { return m.error }

func (m *AuthFormModel) value(label string) string {
	for _, f := range m.fields {
		if f.label == label {
			return f.input.Value()
		}
	}
	return ""
}

func (m *AuthFormModel) submit() tea.Cmd {
	var msg authSubmitMsg
	switch m.view {
	case model.AuthSignup:
		msg.signup = &model.SignupForm{
			Name:     strings.TrimSpace(m.value("Name")),
			Email:    strings.TrimSpace(m.value("Email")),
			Password: m.value("Password"),
			Confirm:  m.value("Confirm password"),
		}
	default:
		msg.login = &model.LoginForm{
			Email:    strings.TrimSpace(m.value("Email")),
			Password: m.value("Password"),
		}
	}
	return func() tea.Msg { return msg }
}

// Update handles input.
func (m AuthFormModel) Update(msg tea.KeyMsg) (AuthFormModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m, func() tea.Msg { return authCancelMsg{} }
	case key.Matches(msg, m.keys.SwitchView):
		next := model.AuthSignup
		if m.view == model.AuthSignup {
			next = model.AuthLogin
		}
		return m, func() tea.Msg { return authSwitchMsg{view: next} }
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()
	case key.Matches(msg, m.keys.NextField):
		m.focus((m.focusedField + 1) % len(m.fields))
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.focus((m.focusedField - 1 + len(m.fields)) % len(m.fields))
		return m, nil
	}

	var cmd tea.Cmd
	m.fields[m.focusedField].input, cmd = m.fields[m.focusedField].input.Update(msg)
	return m, cmd
}

func (m *AuthFormModel) focus(i int) {
	m.fields[m.focusedField].input.Blur()
	m.focusedField = i
	m.fields[i].input.Focus()
}

// Render draws the modal.
func (m *AuthFormModel) Render(width, height int) string {
	title := "Log in"
	hint := "No account? ctrl+t to sign up"
	if m.view == model.AuthSignup {
		title = "Create an account"
		hint = "Have an account? ctrl+t to log in"
	}

	parts := []string{LabelStyle.Render(title), ""}
	for i, f := range m.fields {
		style := BorderStyle
		if i == m.focusedField {
			style = ActiveBorderStyle
		}
		parts = append(parts, style.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			LabelStyle.Render(f.label),
			f.input.View(),
		)))
	}
	if m.error != "" {
		parts = append(parts, ErrorStyle.Render(m.error))
	}
	parts = append(parts, "", HelpDescStyle.Render(hint))

	modal := ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}
