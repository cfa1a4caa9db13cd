package lvm

// Existence is the answer of an existence check. Unknown is always paired
// with the error that prevented a definite answer.
type Existence int

const (
	Unknown Existence = iota
	Exists
	Absent
)

func (e Existence) String() string {
	switch e {
	case Exists:
		return "exists"
	case Absent:
		return "absent"
	default:
		return "unknown"
	}
}
