package flow

// Event is one inbound conversation event, decoded exactly once at the
// transport boundary. Each variant carries its own typed payload; the
// controller never sees raw callback strings.
type Event interface {
	flowEvent()
}

// Start begins a new registration, discarding any in-progress session for
// the same identity.
type Start struct{}

// Text is a free-text answer to the current step.
type Text struct {
	Value string
}

// Toggle flips one option's membership in the active multi-select set.
type Toggle struct {
	Option string
}

// Confirm finishes the active multi-select step.
type Confirm struct{}

// OtherLanguages asks to type languages as free text instead of toggling.
type OtherLanguages struct{}

// Pick chooses one option on a single-select step; picking is confirming.
type Pick struct {
	Option string
}

// Submit accepts the reviewed registration.
type Submit struct{}

// Restart discards the reviewed registration and returns to the first
// question. Only meaningful on the confirmation step.
type Restart struct{}

// Cancel discards the session entirely.
type Cancel struct{}

func (Start) flowEvent()          {}
func (Text) flowEvent()           {}
func (Toggle) flowEvent()         {}
func (Confirm) flowEvent()        {}
func (OtherLanguages) flowEvent() {}
func (Pick) flowEvent()           {}
func (Submit) flowEvent()         {}
func (Restart) flowEvent()        {}
func (Cancel) flowEvent()         {}
