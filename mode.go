package grapher

import "fmt"

// Mode is the pointer-interaction behaviour of the editor. Modes change only
// through [Editor.SetMode].
type Mode int

const (
	// ModeAdd appends the pointer position to the selected curve.
	ModeAdd Mode = iota + 1
	// ModeDelete removes the point nearest to the pointer, if it lies
	// within [PickRadius].
	ModeDelete
	// ModeMove drags the point nearest to the pointer, if it lies within
	// [PickRadius].
	ModeMove
)

var Modes = []Mode{ModeAdd, ModeDelete, ModeMove}

var modeNames = [...]string{
	ModeAdd:    "add",
	ModeDelete: "delete",
	ModeMove:   "move",
}

func (m Mode) Valid() bool {
	return m >= ModeAdd && m <= ModeMove
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

func ParseMode(s string) (Mode, error) {
	for m := ModeAdd; m <= ModeMove; m++ {
		if modeNames[m] == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrValidation, s)
}
