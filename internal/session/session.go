package session

import (
	"fmt"
	"strings"

	"github.com/nikbrunner/filetree/internal/logging/events"
	"github.com/nikbrunner/filetree/internal/model"
	"github.com/nikbrunner/filetree/internal/tree"
)

// Clipboard receives the rendered tree on copy.
type Clipboard interface {
	WriteAll(text string) error
}

// Session coordinates insert, edit and delete workflows against a Store
// and keeps the derived rows and selection in step with it. Every intent
// runs to completion and none of them fail: missing selections and empty
// input only change the status message.
type Session struct {
	store  *model.Store
	rows   []tree.Row
	cursor Cursor
	mode   Mode
	buffer string
	status string

	// set only while mode == ModeEdit
	rename *rename
}

// New creates a Session over store, selecting the first row if any.
func New(store *model.Store) *Session {
	if store == nil {
		store = model.NewStore()
	}
	s := &Session{
		store:  store,
		mode:   ModeNormal,
		status: "Ready. Press '?' for help.",
	}
	s.rebuild()
	return s
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Rows returns the current rendered rows.
func (s *Session) Rows() []tree.Row { return s.rows }

// Buffer returns the input buffer contents.
func (s *Session) Buffer() string { return s.buffer }

// Status returns the message describing the last operation.
func (s *Session) Status() string { return s.status }

// Paths returns the store entries in insertion order.
func (s *Session) Paths() []string { return s.store.Paths() }

// Cursor returns the selected row index and whether one is set.
func (s *Session) Cursor() (int, bool) { return s.cursor.Selected() }

// Selected returns the selected row.
func (s *Session) Selected() (tree.Row, bool) {
	idx, ok := s.cursor.Selected()
	if !ok || idx >= len(s.rows) {
		return tree.Row{}, false
	}
	return s.rows[idx], true
}

// EditOriginal returns the path being renamed, or "" outside ModeEdit.
func (s *Session) EditOriginal() string {
	if s.rename == nil {
		return ""
	}
	return s.rename.original
}

// PendingChildren returns the detached descendant suffixes awaiting
// reattachment, or nil outside ModeEdit.
func (s *Session) PendingChildren() []string {
	if s.rename == nil {
		return nil
	}
	out := make([]string, len(s.rename.children))
	copy(out, s.rename.children)
	return out
}

// BeginInsert enters ModeInsert with an empty buffer.
func (s *Session) BeginInsert() {
	if s.interruptDelete() || s.mode != ModeNormal {
		return
	}
	s.buffer = ""
	s.setMode(ModeInsert)
	s.status = "INSERT MODE: Type or Paste paths."
}

// EditSelected detaches the selected path and its descendants and enters
// ModeEdit with the path in the buffer.
func (s *Session) EditSelected() {
	if s.interruptDelete() || s.mode != ModeNormal {
		return
	}
	row, ok := s.Selected()
	if !ok {
		s.status = "Nothing selected to edit."
		return
	}

	s.rename = beginRename(s.store, row.Path)
	events.Session.EditBegin(row.Path, s.rename.exact, s.rename.children)
	s.rebuild()

	s.buffer = row.Path
	s.setMode(ModeEdit)
	s.status = fmt.Sprintf("Editing '%s' (%d children)...", row.Path, len(s.rename.children))
}

// Delete asks for confirmation in ModeNormal and performs the deletion
// when repeated in ModeDeleteConfirm.
func (s *Session) Delete() {
	switch s.mode {
	case ModeNormal:
		if _, ok := s.Selected(); !ok {
			s.status = "Nothing selected to delete."
			return
		}
		s.setMode(ModeDeleteConfirm)
		s.status = "WARNING: Press 'd' again to CONFIRM delete, 'Esc' to cancel."
	case ModeDeleteConfirm:
		s.confirmDelete()
	}
}

func (s *Session) confirmDelete() {
	defer s.setMode(ModeNormal)

	row, ok := s.Selected()
	if !ok {
		s.status = "Nothing selected to delete."
		return
	}

	if s.store.RemoveExact(row.Path) {
		events.Session.Delete(row.Path, false, 1)
		s.status = fmt.Sprintf("Deleted: %s", row.Path)
	} else {
		removed := s.store.RemoveSubtree(row.Path)
		events.Session.Delete(row.Path, true, removed)
		s.status = fmt.Sprintf("Deleted hierarchy: %s", row.Path)
	}
	s.rebuild()
}

// CommitLine adds the buffer as a path in ModeInsert, or finishes a rename
// in ModeEdit. A blank buffer is ignored.
func (s *Session) CommitLine() {
	if s.interruptDelete() || !s.mode.AcceptsInput() {
		return
	}
	path := model.Canonical(s.buffer)
	if path == "" {
		s.status = "Path cannot be empty."
		return
	}

	switch s.mode {
	case ModeInsert:
		s.store.Add(path)
		events.Session.Insert(path)
		s.buffer = ""
		s.rebuild()
		s.status = "Path added. Type next or Esc to finish."

	case ModeEdit:
		r := s.rename
		r.commit(s.store, path)
		events.Session.EditCommit(r.original, path, len(r.children))
		s.rename = nil
		s.buffer = ""
		s.rebuild()
		s.selectPath(path)
		s.setMode(ModeNormal)
		s.status = "Path and children renamed."
	}
}

// Finish leaves ModeInsert.
func (s *Session) Finish() {
	if s.interruptDelete() || s.mode != ModeInsert {
		return
	}
	s.buffer = ""
	s.setMode(ModeNormal)
	s.status = "Done inserting."
}

// Cancel aborts whatever is in progress. An edit is rolled back so the
// store holds exactly the entries it had before the edit began.
func (s *Session) Cancel() {
	switch s.mode {
	case ModeInsert:
		s.Finish()
	case ModeEdit:
		s.cancelEdit()
	case ModeDeleteConfirm:
		s.cancelDelete()
	}
}

func (s *Session) cancelEdit() {
	if r := s.rename; r != nil {
		r.rollback(s.store)
		events.Session.EditCancel(r.original, len(r.children))
		s.rename = nil
		s.rebuild()
		s.selectPath(r.original)
	}
	s.buffer = ""
	s.setMode(ModeNormal)
	s.status = "Edit Cancelled."
}

func (s *Session) cancelDelete() {
	row, _ := s.Selected()
	events.Session.DeleteCancel(row.Path)
	s.setMode(ModeNormal)
	s.status = "Deletion cancelled."
}

// interruptDelete cancels a pending delete confirmation. Any intent other
// than Delete calls it first and stops if it returns true.
func (s *Session) interruptDelete() bool {
	if s.mode != ModeDeleteConfirm {
		return false
	}
	s.cancelDelete()
	return true
}

// AppendRune adds r to the buffer in ModeInsert or ModeEdit.
func (s *Session) AppendRune(r rune) {
	if s.interruptDelete() || !s.mode.AcceptsInput() {
		return
	}
	s.buffer += string(r)
}

// AppendText adds pasted text to the buffer. Newlines split the paste into
// separate commits in ModeInsert, so a pasted list adds every line.
func (s *Session) AppendText(text string) {
	if s.interruptDelete() || !s.mode.AcceptsInput() {
		return
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if s.mode != ModeInsert || len(lines) == 1 {
		s.buffer += strings.Join(lines, "")
		return
	}
	for i, line := range lines {
		s.buffer += line
		if i == len(lines)-1 {
			break
		}
		if model.Canonical(s.buffer) != "" {
			s.CommitLine()
		} else {
			s.buffer = ""
		}
	}
}

// Backspace removes the last rune of the buffer.
func (s *Session) Backspace() {
	if s.interruptDelete() || !s.mode.AcceptsInput() {
		return
	}
	if r := []rune(s.buffer); len(r) > 0 {
		s.buffer = string(r[:len(r)-1])
	}
}

// Next moves the selection down, wrapping at the end.
func (s *Session) Next() {
	if s.interruptDelete() || s.mode != ModeNormal {
		return
	}
	s.cursor.Advance(len(s.rows))
}

// Prev moves the selection up, wrapping at the start.
func (s *Session) Prev() {
	if s.interruptDelete() || s.mode != ModeNormal {
		return
	}
	s.cursor.Retreat(len(s.rows))
}

// First selects the first row.
func (s *Session) First() {
	if s.interruptDelete() || s.mode != ModeNormal {
		return
	}
	s.cursor.First(len(s.rows))
}

// Last selects the last row.
func (s *Session) Last() {
	if s.interruptDelete() || s.mode != ModeNormal {
		return
	}
	s.cursor.Last(len(s.rows))
}

// SelectRow selects row i if it exists.
func (s *Session) SelectRow(i int) bool {
	if s.interruptDelete() || s.mode != ModeNormal {
		return false
	}
	return s.cursor.Select(i, len(s.rows))
}

// Copy writes every display line, joined by newlines, to clip. Clipboard
// failures are reported through the status message.
func (s *Session) Copy(clip Clipboard) {
	if s.interruptDelete() || s.mode != ModeNormal {
		return
	}
	if len(s.rows) == 0 {
		s.status = "Nothing to copy."
		return
	}
	err := clip.WriteAll(tree.String(s.rows))
	events.Session.Copy(len(s.rows), err)
	if err != nil {
		s.status = fmt.Sprintf("Clipboard error: %v", err)
		return
	}
	s.status = "Tree copied to clipboard!"
}

func (s *Session) rebuild() {
	_, s.rows = s.store.Rebuild()
	s.cursor.Clamp(len(s.rows))
	events.Store.Rebuild(s.store.Len(), len(s.rows))
}

func (s *Session) selectPath(path string) {
	for i, r := range s.rows {
		if r.Path == path {
			s.cursor.Select(i, len(s.rows))
			return
		}
	}
}

func (s *Session) setMode(m Mode) {
	if s.mode != m {
		events.Session.Mode(s.mode.String(), m.String())
	}
	s.mode = m
}
