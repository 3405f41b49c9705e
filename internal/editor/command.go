package editor

import "strconv"

// Command is a discrete editor operation triggered by a key in a given mode.
// Dispatch is a registry lookup keyed by (mode, key string) rather than an
// implicit priority chain, so the state-transition table is explicit and
// each operation is testable on its own.
type Command interface {
	// Execute applies the command to the editor.
	Execute(e *Editor)

	// Keys returns the trigger key(s) that invoke this command.
	// Special keys use angle-bracket names: "<escape>", "<enter>",
	// "<backspace>", "<tab>".
	Keys() []string

	// Mode returns which mode this command operates in.
	Mode() Mode

	// ID returns a hierarchical identifier, e.g. "move.line_start" or
	// "edit.delete_line". Used for logging and debugging.
	ID() string
}

// RepeatableCommand is a Normal-mode motion that honors an accumulated
// repetition count: "12j" moves down twelve lines.
type RepeatableCommand interface {
	// ExecuteN applies the motion n times.
	ExecuteN(e *Editor, n int)

	// Keys returns the trigger key(s).
	Keys() []string

	// ID returns a hierarchical identifier.
	ID() string
}

// MotionBase marks plain cursor motions.
type MotionBase struct{}

// EditBase marks content-mutating commands.
type EditBase struct{}

// ModeEntryBase marks commands whose effect is a mode or overlay change.
type ModeEntryBase struct{}

// Registry provides mode-aware key dispatch for immediate commands plus a
// separate table for repeatable motions.
type Registry struct {
	commands   map[Mode]map[string]Command
	repeatable map[string]RepeatableCommand
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands:   make(map[Mode]map[string]Command),
		repeatable: make(map[string]RepeatableCommand),
	}
}

// Register adds an immediate command under its Mode() and Keys().
func (r *Registry) Register(cmd Command) {
	mode := cmd.Mode()
	if r.commands[mode] == nil {
		r.commands[mode] = make(map[string]Command)
	}
	for _, key := range cmd.Keys() {
		r.commands[mode][key] = cmd
	}
}

// RegisterRepeatable adds a count-honoring Normal-mode motion.
func (r *Registry) RegisterRepeatable(cmd RepeatableCommand) {
	for _, key := range cmd.Keys() {
		r.repeatable[key] = cmd
	}
}

// Get retrieves the immediate command for a mode and key.
func (r *Registry) Get(mode Mode, key string) (Command, bool) {
	if modeMap, ok := r.commands[mode]; ok {
		if cmd, ok := modeMap[key]; ok {
			return cmd, true
		}
	}
	return nil, false
}

// GetRepeatable retrieves the repeatable motion for a key.
func (r *Registry) GetRepeatable(key string) (RepeatableCommand, bool) {
	cmd, ok := r.repeatable[key]
	return cmd, ok
}

// defaultRegistry holds every built-in command.
var defaultRegistry = newDefaultRegistry()

// CountBuilder accumulates Normal-mode digit keys into a repetition count.
// "0" only accumulates when a count is already pending; otherwise it is the
// line-start motion.
type CountBuilder struct {
	digits string
}

// IsEmpty reports whether no digits have been accumulated.
func (b *CountBuilder) IsEmpty() bool {
	return b.digits == ""
}

// Push appends a digit.
func (b *CountBuilder) Push(digit string) {
	b.digits += digit
}

// Pop parses and clears the accumulated count. No pending digits, or an
// unparseable run of them, defaults to 1.
func (b *CountBuilder) Pop() int {
	defer func() { b.digits = "" }()
	if b.digits == "" {
		return 1
	}
	n, err := strconv.Atoi(b.digits)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
