package render

// Mode is the render mode carried by an Instruction.
type Mode int

const (
	// ModeFull renders the view inside the shared layout.
	ModeFull Mode = iota
	// ModeFragment renders the view on its own.
	ModeFragment
)

func (m Mode) String() string {
	switch m {
	case ModeFragment:
		return "fragment"
	default:
		return "full"
	}
}

// Instruction describes what the presentation layer should render. It never
// contains markup.
type Instruction struct {
	Mode     Mode
	Location string
	ViewName string
	Model    any
}

// IsFragment reports whether the instruction targets a partial render.
func (i Instruction) IsFragment() bool {
	return i.Mode == ModeFragment
}
