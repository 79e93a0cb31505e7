package gradient

// State is the position of a generation run.
type State int

// A run only ever moves forward through these states.
const (
	Uninitialized State = iota
	HeaderWritten
	PixelsStreaming
	Complete
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case HeaderWritten:
		return "header written"
	case PixelsStreaming:
		return "pixels streaming"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// RowOrder is the order in which rows are written to the pixel data.
type RowOrder int

const (
	// TopDown writes row 0 first, so a standard viewer shows the
	// image upside down
	TopDown RowOrder = iota
	// BottomUp writes the last row first
	BottomUp
)
