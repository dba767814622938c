package carousel

import "fmt"

// ConstraintViolation reports a caller bug, such as a jump to an index the
// rendered indicators could never produce. It is raised with panic, never
// returned, because clamping or recovering would hide the integration error.
type ConstraintViolation struct {
	Op    string
	Index int
	Len   int
	Msg   string
}

func (e *ConstraintViolation) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("carousel: %s: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("carousel: %s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}
