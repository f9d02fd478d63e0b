package ui

import "roast/internal/session"

type undoAction struct {
	label string
	undo  func(*session.Session)
	redo  func(*session.Session)
}

func (m *Model) pushUndoAction(action undoAction) {
	m.undoStack = append(m.undoStack, action)
	m.redoStack = nil
}

// favoriteAction is its own inverse: toggling again restores the set.
func favoriteAction(shopID, name string, nowFavorite bool) undoAction {
	label := "favorite " + name
	if !nowFavorite {
		label = "unfavorite " + name
	}
	toggle := func(s *session.Session) { s.OnToggleFavorite(shopID) }
	return undoAction{label: label, undo: toggle, redo: toggle}
}

func noteAction(shopID, name, before, after string) undoAction {
	return undoAction{
		label: "note on " + name,
		undo:  func(s *session.Session) { s.OnNoteChange(shopID, before) },
		redo:  func(s *session.Session) { s.OnNoteChange(shopID, after) },
	}
}

func (m *Model) undo() {
	if len(m.undoStack) == 0 {
		m.info = "Nothing to undo"
		return
	}
	action := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]
	action.undo(m.session)
	m.redoStack = append(m.redoStack, action)
	m.info = "Undid: " + action.label
	m.refresh()
}

func (m *Model) redo() {
	if len(m.redoStack) == 0 {
		m.info = "Nothing to redo"
		return
	}
	action := m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]
	action.redo(m.session)
	m.undoStack = append(m.undoStack, action)
	m.info = "Redid: " + action.label
	m.refresh()
}
