package flow

// Step identifies the question the conversation is currently waiting on.
// The flow is strictly linear: no skips, no back navigation, only the
// cancel and restart escapes.
type Step int

const (
	StepName Step = iota
	StepWorkplace
	StepCareer
	StepInterests
	StepNetworking
	StepRegion
	StepLanguages
	StepLanguagesText
	StepTopics
	StepMeetFormat
	StepSelfDesc
	StepConfirm
)

// Selection is the mutable set behind one multi-select widget. Membership
// is unordered; rendering and flattening always go through the catalog.
type Selection map[string]struct{}

// NewSelection returns an empty selection set.
func NewSelection() Selection {
	return make(Selection)
}

// Toggle flips opt's membership. Toggling the same option twice restores
// the original membership.
func (s Selection) Toggle(opt string) {
	if _, ok := s[opt]; ok {
		delete(s, opt)
	} else {
		s[opt] = struct{}{}
	}
}

// Has reports whether opt is selected.
func (s Selection) Has(opt string) bool {
	_, ok := s[opt]
	return ok
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return len(s) == 0
}

// InCatalogOrder flattens the selection into a slice ordered by the
// catalog's declaration order. Members not present in the catalog are
// dropped.
func (s Selection) InCatalogOrder(catalog []string) []string {
	var out []string
	for _, opt := range catalog {
		if s.Has(opt) {
			out = append(out, opt)
		}
	}
	return out
}

// Session is the scratch state of one in-progress registration. It is
// owned by a single submitter identity, lives only in memory, and is
// discarded on completion, cancel, or restart.
type Session struct {
	Step Step

	FullName    string
	Workplace   string
	CareerField string
	Interests   string
	Region      string
	Topics      string
	MeetFormat  string
	SelfDesc    string

	Networking    Selection
	Languages     Selection
	LanguagesText string
}

func newSession() *Session {
	return &Session{
		Step:       StepName,
		Networking: NewSelection(),
		Languages:  NewSelection(),
	}
}
