package session

// Mode is the state of an editing session.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeEdit
	ModeDeleteConfirm
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeEdit:
		return "edit"
	case ModeDeleteConfirm:
		return "delete-confirm"
	default:
		return "unknown"
	}
}

// AcceptsInput reports whether the input buffer is editable in this mode.
func (m Mode) AcceptsInput() bool {
	return m == ModeInsert || m == ModeEdit
}
