package editor

// Mode is the base editing mode.
type Mode int

const (
	// ModeNormal is the default mode for navigation and commands.
	ModeNormal Mode = iota
	// ModeInsert is the mode for inserting text.
	ModeInsert
)

// String returns the status-bar representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}

// Overlay prefix characters.
const (
	commandPrefix = ":"
	searchPrefix  = "/"
)

// Overlay is the command-line input state that intercepts all keystrokes
// while active, independently of the base Mode. It is modeled as an explicit
// second axis of the editor state rather than inferred from buffer
// emptiness, so the (mode, overlay) state space stays exhaustive.
type Overlay struct {
	Active bool
	Prefix string // commandPrefix or searchPrefix while active
	Buffer string // accumulated text, excluding the prefix
}

// Start activates the overlay with the given prefix.
func (o *Overlay) Start(prefix string) {
	o.Active = true
	o.Prefix = prefix
	o.Buffer = ""
}

// Clear deactivates the overlay and discards the buffered input.
func (o *Overlay) Clear() {
	o.Active = false
	o.Prefix = ""
	o.Buffer = ""
}

// Push appends a grapheme to the buffered input.
func (o *Overlay) Push(g string) {
	o.Buffer += g
}

// Pop removes the last buffered grapheme. Erasing past the start cancels the
// overlay, matching the feel of erasing the prompt itself.
func (o *Overlay) Pop() {
	if o.Buffer == "" {
		o.Clear()
		return
	}
	o.Buffer = DeleteGraphemeRange(o.Buffer, GraphemeCount(o.Buffer)-1, GraphemeCount(o.Buffer))
}

// Display returns the prompt line shown in the message bar.
func (o *Overlay) Display() string {
	if !o.Active {
		return ""
	}
	return o.Prefix + o.Buffer
}
