package session_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/nikbrunner/filetree/internal/model"
	"github.com/nikbrunner/filetree/internal/session"
	"gotest.tools/v3/assert"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func sorted(paths []string) []string {
	out := slices.Clone(paths)
	slices.Sort(out)
	return out
}

func newSession(paths ...string) *session.Session {
	return session.New(model.NewStore(paths...))
}

// selectPath moves the cursor onto the row with the given full path.
func selectPath(t *testing.T, s *session.Session, path string) {
	t.Helper()
	for i, r := range s.Rows() {
		if r.Path == path {
			assert.Assert(t, s.SelectRow(i))
			return
		}
	}
	t.Fatalf("no row with path %q", path)
}

func typeText(s *session.Session, text string) {
	for _, r := range text {
		s.AppendRune(r)
	}
}

func TestNew_SelectsFirstRow(t *testing.T) {
	s := newSession("b", "a")
	idx, ok := s.Cursor()
	assert.Assert(t, ok)
	assert.Equal(t, idx, 0)
	assert.Equal(t, s.Mode(), session.ModeNormal)

	empty := newSession()
	_, ok = empty.Cursor()
	assert.Assert(t, !ok)
}

func TestInsert_SuccessiveCommits(t *testing.T) {
	s := newSession()
	s.BeginInsert()
	assert.Equal(t, s.Mode(), session.ModeInsert)

	typeText(s, "a/b")
	s.CommitLine()
	assert.Equal(t, s.Mode(), session.ModeInsert)
	assert.Equal(t, s.Buffer(), "")

	typeText(s, "a/c")
	s.CommitLine()
	typeText(s, "d")
	s.CommitLine()

	s.Finish()
	assert.Equal(t, s.Mode(), session.ModeNormal)
	assert.DeepEqual(t, s.Paths(), []string{"a/b", "a/c", "d"})

	lines := make([]string, 0, len(s.Rows()))
	for _, r := range s.Rows() {
		lines = append(lines, r.Line)
	}
	assert.DeepEqual(t, lines, []string{"├── a/", "│   ├── b", "│   └── c", "└── d"})

	idx, ok := s.Cursor()
	assert.Assert(t, ok)
	assert.Equal(t, idx, 0)
}

func TestInsert_BlankBufferIgnored(t *testing.T) {
	s := newSession()
	s.BeginInsert()
	typeText(s, "   ")
	s.CommitLine()

	assert.Equal(t, s.Mode(), session.ModeInsert)
	assert.Equal(t, len(s.Paths()), 0)
	assert.Equal(t, s.Status(), "Path cannot be empty.")
}

func TestInsert_PasteMultipleLines(t *testing.T) {
	s := newSession()
	s.BeginInsert()
	s.AppendText("a/b\r\n\nc\nd/e")

	assert.DeepEqual(t, s.Paths(), []string{"a/b", "c"})
	assert.Equal(t, s.Buffer(), "d/e")

	s.CommitLine()
	assert.DeepEqual(t, s.Paths(), []string{"a/b", "c", "d/e"})
}

func TestBufferEditing(t *testing.T) {
	s := newSession()

	// Ignored outside insert/edit.
	s.AppendRune('x')
	assert.Equal(t, s.Buffer(), "")

	s.BeginInsert()
	typeText(s, "héllo")
	s.Backspace()
	assert.Equal(t, s.Buffer(), "héll")
	s.Backspace()
	s.Backspace()
	assert.Equal(t, s.Buffer(), "hé")
	s.Backspace()
	s.Backspace()
	s.Backspace()
	assert.Equal(t, s.Buffer(), "")
	assert.Equal(t, s.Mode(), session.ModeInsert)
}

func TestEdit_RenamesSubtree(t *testing.T) {
	s := newSession("a", "a/b", "a/c")
	selectPath(t, s, "a")

	s.EditSelected()

	assert.Equal(t, s.Mode(), session.ModeEdit)
	assert.Equal(t, s.Buffer(), "a")
	assert.Equal(t, s.EditOriginal(), "a")
	assert.DeepEqual(t, s.PendingChildren(), []string{"b", "c"})
	assert.Equal(t, len(s.Paths()), 0)
	assert.Equal(t, s.Status(), "Editing 'a' (2 children)...")

	for range "a" {
		s.Backspace()
	}
	typeText(s, "z")
	s.CommitLine()

	assert.Equal(t, s.Mode(), session.ModeNormal)
	assert.DeepEqual(t, sorted(s.Paths()), []string{"z", "z/b", "z/c"})
	assert.Equal(t, s.EditOriginal(), "")
	assert.Assert(t, s.PendingChildren() == nil)
	assert.Equal(t, s.Buffer(), "")
	assert.Equal(t, s.Status(), "Path and children renamed.")

	row, ok := s.Selected()
	assert.Assert(t, ok)
	assert.Equal(t, row.Path, "z")
}

func TestEdit_CancelIsLossless(t *testing.T) {
	stores := [][]string{
		{"a", "a/b", "a/c"},
		{"a/b", "a/c", "x"},
		{"a", "a", "a/b", "ab", "abc/x"},
		{"x/y/z", "x/y", "q"},
	}

	for _, paths := range stores {
		s := newSession(paths...)
		for i := range s.Rows() {
			s2 := newSession(paths...)
			assert.Assert(t, s2.SelectRow(i))
			s2.EditSelected()
			s2.Cancel()

			assert.Equal(t, s2.Mode(), session.ModeNormal)
			assert.DeepEqual(t, sorted(s2.Paths()), sorted(paths))
			assert.DeepEqual(t, s2.Rows(), s.Rows())
			assert.Equal(t, s2.Status(), "Edit Cancelled.")
		}
	}
}

func TestEdit_CommitSameNameIsLossless(t *testing.T) {
	paths := []string{"a", "a/b", "a/b/c", "a/d", "ab/x", "e"}

	s := newSession(paths...)
	for i := range s.Rows() {
		s2 := newSession(paths...)
		assert.Assert(t, s2.SelectRow(i))
		row, _ := s2.Selected()
		s2.EditSelected()
		assert.Equal(t, s2.Buffer(), row.Path)
		s2.CommitLine()

		assert.DeepEqual(t, sorted(s2.Paths()), sorted(paths))
	}
}

func TestEdit_BoundaryNotRawPrefix(t *testing.T) {
	s := newSession("ab", "abc/x", "ab/y")
	selectPath(t, s, "ab")

	s.EditSelected()

	assert.DeepEqual(t, s.PendingChildren(), []string{"y"})
	assert.DeepEqual(t, s.Paths(), []string{"abc/x"})
}

func TestEdit_NothingSelected(t *testing.T) {
	s := newSession()
	s.EditSelected()

	assert.Equal(t, s.Mode(), session.ModeNormal)
	assert.Equal(t, s.Status(), "Nothing selected to edit.")
}

func TestEdit_BlankCommitStaysInEdit(t *testing.T) {
	s := newSession("a")
	s.EditSelected()
	s.Backspace()
	s.CommitLine()

	assert.Equal(t, s.Mode(), session.ModeEdit)
	assert.Equal(t, s.EditOriginal(), "a")

	s.Cancel()
	assert.DeepEqual(t, s.Paths(), []string{"a"})
}

func TestDelete_ExactEntry(t *testing.T) {
	s := newSession("a", "a/b")
	selectPath(t, s, "a")

	s.Delete()
	assert.Equal(t, s.Mode(), session.ModeDeleteConfirm)

	s.Delete()
	assert.Equal(t, s.Mode(), session.ModeNormal)
	assert.DeepEqual(t, s.Paths(), []string{"a/b"})
	assert.Equal(t, s.Status(), "Deleted: a")
}

func TestDelete_SyntheticDirectoryRemovesSubtree(t *testing.T) {
	s := newSession("a/b", "a/c/d", "ab", "x")
	selectPath(t, s, "a")

	s.Delete()
	s.Delete()

	assert.DeepEqual(t, s.Paths(), []string{"ab", "x"})
	assert.Equal(t, s.Status(), "Deleted hierarchy: a")
}

func TestDelete_OtherIntentCancels(t *testing.T) {
	intents := map[string]func(*session.Session){
		"cancel":       (*session.Session).Cancel,
		"next":         (*session.Session).Next,
		"begin insert": (*session.Session).BeginInsert,
		"edit":         (*session.Session).EditSelected,
		"commit":       (*session.Session).CommitLine,
		"rune":         func(s *session.Session) { s.AppendRune('q') },
	}

	for name, intent := range intents {
		t.Run(name, func(t *testing.T) {
			s := newSession("a", "b")
			s.Delete()
			assert.Equal(t, s.Mode(), session.ModeDeleteConfirm)

			intent(s)

			assert.Equal(t, s.Mode(), session.ModeNormal)
			assert.DeepEqual(t, s.Paths(), []string{"a", "b"})
			assert.Equal(t, s.Status(), "Deletion cancelled.")
			idx, _ := s.Cursor()
			assert.Equal(t, idx, 0)
		})
	}
}

func TestDelete_NothingSelected(t *testing.T) {
	s := newSession()
	s.Delete()

	assert.Equal(t, s.Mode(), session.ModeNormal)
	assert.Equal(t, s.Status(), "Nothing selected to delete.")
}

func TestDelete_ClampsCursor(t *testing.T) {
	s := newSession("a", "b", "c")
	s.Last()

	s.Delete()
	s.Delete()

	idx, ok := s.Cursor()
	assert.Assert(t, ok)
	assert.Equal(t, idx, 1)

	s.Delete()
	s.Delete()
	s.Delete()
	s.Delete()

	_, ok = s.Cursor()
	assert.Assert(t, !ok)
	assert.Equal(t, len(s.Rows()), 0)
}

func TestNavigationWraps(t *testing.T) {
	s := newSession("a", "b", "c")

	s.Prev()
	idx, _ := s.Cursor()
	assert.Equal(t, idx, 2)

	s.Next()
	idx, _ = s.Cursor()
	assert.Equal(t, idx, 0)

	s.Last()
	s.Next()
	idx, _ = s.Cursor()
	assert.Equal(t, idx, 0)
}

func TestNavigationIgnoredWhileTyping(t *testing.T) {
	s := newSession("a", "b")
	s.BeginInsert()
	s.Next()

	idx, _ := s.Cursor()
	assert.Equal(t, idx, 0)
	assert.Equal(t, s.Mode(), session.ModeInsert)
}

func TestCopy(t *testing.T) {
	s := newSession("a/b", "c")
	clip := &fakeClipboard{}

	s.Copy(clip)

	assert.Equal(t, clip.text, "├── a/\n│   └── b\n└── c")
	assert.Equal(t, s.Status(), "Tree copied to clipboard!")
}

func TestCopy_Error(t *testing.T) {
	s := newSession("a")
	s.Copy(&fakeClipboard{err: errors.New("no display")})

	assert.Equal(t, s.Status(), "Clipboard error: no display")
	assert.Equal(t, s.Mode(), session.ModeNormal)
}

func TestCopy_Empty(t *testing.T) {
	s := newSession()
	clip := &fakeClipboard{}
	s.Copy(clip)

	assert.Equal(t, clip.text, "")
	assert.Equal(t, s.Status(), "Nothing to copy.")
}
