package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"roast/internal/model"
	"roast/internal/session"
	"roast/internal/util"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the root Bubble Tea model.
type Model struct {
	session *session.Session
	logger  *slog.Logger
	now     func() time.Time

	mode   model.Mode
	gState GState

	width  int
	height int

	info        string
	showingHelp bool

	// Screen models
	shops    *ShopsModel
	detail   *ShopDetailModel
	authForm *AuthFormModel

	keys      KeyMap
	formKeys  FormKeyMap
	help      help.Model
	undoStack []undoAction
	redoStack []undoAction
}

// New creates a new root model over sess.
func New(sess *session.Session, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		session:  sess,
		logger:   logger,
		now:      time.Now,
		mode:     model.ModeNav,
		gState:   GStateIdle,
		shops:    NewShopsModel(sess.Entries()),
		keys:     DefaultKeyMap(),
		formKeys: DefaultFormKeyMap(),
		help:     newHelpModel(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("roast")
}

func (m Model) screen() model.Screen {
	switch {
	case m.session.Auth().IsOpen():
		return model.ScreenAuth
	case m.session.Detail().IsOpen():
		return model.ScreenShopDetail
	default:
		return model.ScreenShops
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Handle ctrl+c globally
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.screen() == model.ScreenAuth && m.authForm != nil {
			form, cmd := m.authForm.Update(msg)
			m.authForm = &form
			return m, cmd
		}

		if m.mode == model.ModeInsert {
			return m.handleInsertMode(msg)
		}

		if key.Matches(msg, m.keys.Help) {
			m.showingHelp = !m.showingHelp
			return m, nil
		}

		if m.showingHelp {
			if key.Matches(msg, closeHelp) {
				m.showingHelp = false
			}
			return m, nil
		}

		return m.handleNavMode(msg)

	case authSubmitMsg:
		return m.handleAuthSubmit(msg)

	case authCancelMsg:
		m.session.CloseAuth()
		m.authForm = nil
		return m, nil

	case authSwitchMsg:
		m.session.SwitchAuth(msg.view)
		m.authForm = NewAuthFormModel(msg.view)
		return m, nil

	default:
		// Cursor blink and other editor messages
		if m.mode == model.ModeInsert && m.detail != nil {
			detail, cmd := m.detail.Update(msg)
			m.detail = &detail
			return m, cmd
		}
	}

	return m, nil
}

// handleNavMode handles navigation mode input.
func (m Model) handleNavMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Undo):
		m.undo()
		return m, nil
	case key.Matches(msg, m.keys.Redo):
		m.redo()
		return m, nil
	}

	// Handle "gg" state machine
	if key.Matches(msg, m.keys.Top) {
		if m.gState == GStateFirstG {
			m.gState = GStateIdle
			m.shops.JumpToTop()
			return m, nil
		}
		m.gState = GStateFirstG
		return m, nil
	}
	m.gState = GStateIdle

	if m.screen() == model.ScreenShopDetail {
		return m.handleShopDetailNav(msg)
	}
	return m.handleShopsNav(msg)
}

func (m Model) handleShopsNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.shops.MoveDown()
	case key.Matches(msg, m.keys.Up):
		m.shops.MoveUp()
	case key.Matches(msg, m.keys.Bottom):
		m.shops.JumpToBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.shops.HalfPageDown(m.height / 2)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.shops.HalfPageUp(m.height / 2)
	case key.Matches(msg, m.keys.PrevNeighborhood):
		m.selectNeighborhood(stepNeighborhood(m.session.Neighborhoods(), m.session.Selected(), -1))
	case key.Matches(msg, m.keys.NextNeighborhood):
		m.selectNeighborhood(stepNeighborhood(m.session.Neighborhoods(), m.session.Selected(), 1))
	case key.Matches(msg, m.keys.AllShops):
		m.selectNeighborhood(nil)
	case key.Matches(msg, m.keys.Favorite):
		if e, ok := m.shops.Selected(); ok {
			m.toggleFavorite(e.Shop.ID, e.Shop.Name)
		}
	case key.Matches(msg, m.keys.Open):
		if e, ok := m.shops.Selected(); ok {
			m.openDetail(e.Shop.ID)
		}
	case key.Matches(msg, m.keys.Login):
		m.openAuth(model.AuthLogin)
	case key.Matches(msg, m.keys.Signup):
		m.openAuth(model.AuthSignup)
	}
	return m, nil
}

func (m Model) handleShopDetailNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail == nil {
		m.closeDetail()
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		m.closeDetail()
	case key.Matches(msg, m.keys.Favorite):
		e, ok := m.session.ActiveShop()
		if ok {
			m.toggleFavorite(e.Shop.ID, e.Shop.Name)
		}
	case key.Matches(msg, m.keys.EditNote):
		m.mode = model.ModeInsert
		return m, m.detail.StartEditing()
	}
	return m, nil
}

// handleInsertMode feeds the notes editor. Every change is saved immediately.
func (m Model) handleInsertMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail == nil {
		m.mode = model.ModeNav
		return m, nil
	}
	if key.Matches(msg, m.formKeys.Cancel) {
		m.stopEditing()
		return m, nil
	}

	before := m.detail.Note()
	detail, cmd := m.detail.Update(msg)
	m.detail = &detail

	// Only keys that changed the text are saved; cursor movement is not an edit.
	if text := m.detail.Note(); text != before {
		m.session.OnNoteChange(m.detail.ShopID(), text)
		m.refresh()
	}
	return m, cmd
}

func (m Model) handleAuthSubmit(msg authSubmitMsg) (tea.Model, tea.Cmd) {
	if m.authForm == nil {
		return m, nil
	}
	var (
		err  error
		info string
	)
	switch {
	case msg.login != nil:
		err = m.session.SubmitLogin(*msg.login)
		info = "Signed in as " + msg.login.Email + " (demo only, nothing was sent)"
	case msg.signup != nil:
		err = m.session.SubmitSignup(*msg.signup)
		info = "Account created for " + msg.signup.Email + " (demo only, nothing was sent)"
	}
	if err != nil {
		m.logger.Debug("ui: auth form rejected", slog.String("view", m.authForm.View().String()), slog.String("error", err.Error()))
		m.authForm.SetError(err)
		return m, nil
	}
	m.authForm = nil
	m.info = info
	return m, nil
}

func (m *Model) selectNeighborhood(name *string) {
	m.session.OnSelectNeighborhood(name)
	m.shops.SetRows(m.session.Entries())
	m.shops.JumpToTop()
	m.info = ""
}

func (m *Model) toggleFavorite(id, name string) {
	now := m.session.OnToggleFavorite(id)
	m.pushUndoAction(favoriteAction(id, name, now))
	if now {
		m.info = "Saved " + name + " to favorites"
	} else {
		m.info = "Removed " + name + " from favorites"
	}
	m.refresh()
}

func (m *Model) openDetail(id string) {
	m.session.OnOpenDetail(id)
	e, ok := m.session.ActiveShop()
	if !ok {
		m.detail = nil
		return
	}
	m.detail = NewShopDetailModel(e, m.now().Weekday())
	m.info = ""
}

func (m *Model) closeDetail() {
	if m.mode == model.ModeInsert {
		m.stopEditing()
	}
	m.session.OnCloseDetail()
	m.detail = nil
}

func (m *Model) stopEditing() {
	m.mode = model.ModeNav
	if m.detail == nil {
		return
	}
	before, after := m.detail.StopEditing()
	if before != after {
		e, _ := m.session.ActiveShop()
		m.pushUndoAction(noteAction(m.detail.ShopID(), e.Shop.Name, before, after))
		m.info = "Note saved"
	}
}

func (m *Model) openAuth(v model.AuthView) {
	m.session.OpenAuth(v)
	m.authForm = NewAuthFormModel(v)
	m.info = ""
}

// refresh re-reads the composed view after a session change.
func (m *Model) refresh() {
	m.shops.SetRows(m.session.Entries())
	if m.detail == nil {
		return
	}
	if e, ok := m.session.ActiveShop(); ok {
		m.detail.SetEntry(e)
	}
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return m.renderFullHelp()
	}

	screen := m.screen()

	// Header: 2 lines, footer: 2 lines
	contentHeight := m.height - 4
	var banner string
	if m.info != "" {
		banner = SuccessStyle.Width(m.width).Render(m.info)
		contentHeight -= lipgloss.Height(banner)
	}
	contentHeight = max(contentHeight, 1)

	var content string
	breadcrumbParts := []string{"Shops"}
	switch screen {
	case model.ScreenShops:
		if sel := m.session.Selected(); sel != nil {
			breadcrumbParts = append(breadcrumbParts, *sel)
		}
		sidebar := renderSidebar(m.session.Neighborhoods(), m.session.Selected(), len(m.session.Shops()), contentHeight)
		table := m.shops.View(max(20, m.width-lipgloss.Width(sidebar)-1), contentHeight)
		content = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", table)
	case model.ScreenShopDetail:
		if m.detail != nil {
			e, _ := m.session.ActiveShop()
			breadcrumbParts = append(breadcrumbParts, e.Shop.Name)
			content = m.detail.View(m.width, contentHeight)
		}
	case model.ScreenAuth:
		breadcrumbParts = []string{"Log in"}
		if m.session.Auth().View() == model.AuthSignup {
			breadcrumbParts = []string{"Sign up"}
		}
		if m.authForm != nil {
			content = m.authForm.Render(m.width, contentHeight)
		}
	}

	header := renderHeader(breadcrumbParts, m.session.Favorites().Len(), m.now(), m.width)
	footer := m.renderFooter(screen)

	// Ensure content fills the available height to anchor footer at bottom
	content = lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	if banner != "" {
		return lipgloss.JoinVertical(lipgloss.Left, header, banner, content, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func renderHeader(breadcrumbParts []string, favorites int, now time.Time, width int) string {
	title := HeaderStyle.Render("☕ roast")

	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}

	left := "  " + title + breadcrumb

	right := BreadcrumbStyle.Render(util.FormatHeaderDate(now)) + "  "
	if favorites > 0 {
		right = BadgeStyle.Render(fmt.Sprintf("♥ %d saved", favorites)) + "  " + right
	}

	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	return TitleStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}
