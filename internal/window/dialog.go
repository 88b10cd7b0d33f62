package window

import "strings"

// Response is the parsed answer to a yes/no prompt.
type Response int

const (
	// ResponseNone means the input was neither yes nor no.
	ResponseNone Response = iota
	// ResponseYes accepts the prompt.
	ResponseYes
	// ResponseNo rejects the prompt.
	ResponseNo
)

// String returns a human-readable response name.
func (r Response) String() string {
	switch r {
	case ResponseYes:
		return "yes"
	case ResponseNo:
		return "no"
	default:
		return "none"
	}
}

// ParseResponse trims and case-folds input: "Y" accepts, "N" rejects, anything else is none.
func ParseResponse(input string) Response {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "Y":
		return ResponseYes
	case "N":
		return ResponseNo
	default:
		return ResponseNone
	}
}

// DialogHandler supplies the prompt and the meaning of yes and no for a Dialog.
type DialogHandler interface {
	Prompt() string
	Accept()
	Reject()
}

// Dialog is a Form that asks a yes/no question and keeps asking until it gets one.
type Dialog struct {
	handler DialogHandler
}

// NewDialog wraps a handler in a yes/no form.
func NewDialog(h DialogHandler) *Dialog {
	return &Dialog{handler: h}
}

// Handler returns the concrete dialog behind the form.
func (d *Dialog) Handler() DialogHandler { return d.handler }

// Policy returns PolicyText: the answer is typed and submitted with Enter.
func (d *Dialog) Policy() InputPolicy { return PolicyText }

// Render returns the handler's prompt.
func (d *Dialog) Render() string { return d.handler.Prompt() }

// Input dispatches yes or no; any other input leaves everything untouched so the
// same prompt is shown again.
func (d *Dialog) Input(line string) {
	switch ParseResponse(line) {
	case ResponseYes:
		d.handler.Accept()
	case ResponseNo:
		d.handler.Reject()
	}
}

var _ Form = (*Dialog)(nil)
