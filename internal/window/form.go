package window

// InputPolicy describes how a form (or a formless window) takes input.
// It combines whether input is accepted at all with whether keystrokes fill a buffer.
type InputPolicy int

const (
	// PolicySilent accepts no input; the form advances on its own.
	PolicySilent InputPolicy = iota
	// PolicyConfirm accepts input but buffers nothing; Enter alone confirms.
	PolicyConfirm
	// PolicyText buffers free text and dispatches it on Enter.
	PolicyText
	// PolicyImmediate buffers free text and dispatches every keystroke as it arrives.
	PolicyImmediate
)

// String returns a human-readable policy name.
func (p InputPolicy) String() string {
	switch p {
	case PolicySilent:
		return "silent"
	case PolicyConfirm:
		return "confirm"
	case PolicyText:
		return "text"
	case PolicyImmediate:
		return "immediate"
	default:
		return "unknown"
	}
}

// AllowsInput reports whether input is routed at all.
func (p InputPolicy) AllowsInput() bool {
	return p == PolicyConfirm || p == PolicyText || p == PolicyImmediate
}

// FillsBuffer reports whether typed characters should be collected.
func (p InputPolicy) FillsBuffer() bool {
	return p == PolicyText || p == PolicyImmediate
}

// Immediate reports whether each keystroke is dispatched without waiting for Enter.
func (p InputPolicy) Immediate() bool {
	return p == PolicyImmediate
}

// Form is a single interactive step inside a window.
//
// A form decides the next step in Input by doing exactly one of: setting its window's
// form to a new one, clearing its window's form, or asking the Manager to add or
// remove a window.
type Form interface {
	Policy() InputPolicy
	Render() string
	Input(line string)
}

// Ticker is implemented by forms that have logic to run every simulation step.
type Ticker interface {
	Tick()
}
