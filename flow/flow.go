// Package flow implements the registration conversation state machine,
// independent of the Telegram transport. The controller owns per-identity
// scratch sessions, applies typed events to them, and returns reactions
// describing what the transport should render next.
package flow

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rose1304003/Finlit-bot/model"
)

// KeyboardKind tells the transport which selection control, if any, to
// attach to the reaction text.
type KeyboardKind int

const (
	KeyboardNone KeyboardKind = iota
	KeyboardNetworking
	KeyboardLanguages
	KeyboardFormats
	KeyboardConfirm
)

// Reaction is the controller's answer to one event. A zero Reaction means
// the event was ignored: nothing to send, no state change.
type Reaction struct {
	// Text is the message to send, empty when there is nothing to say.
	Text string
	// HTML marks Text as HTML-formatted.
	HTML bool
	// Keyboard is the control to attach to Text.
	Keyboard KeyboardKind
	// Selected is a snapshot of the active selection set, for rendering
	// multi-select keyboards.
	Selected Selection
	// RefreshWidget asks the transport to re-render the markup of the
	// widget message the event came from, instead of sending a new one.
	RefreshWidget bool
	// Record is the completed registration, set only when a Submit event
	// was accepted. The session stays at the review step until Complete
	// is called, so a failed save can be retried with another confirm.
	Record *model.Registration
}

// Prompts, verbatim Uzbek strings.
const promptGreeting = "👋 Salom! Finlit Networking ro‘yxatdan o‘tish uchun quyidagi savollarga javob bering.\n\n" +
	"Boshlaymiz. Avvalo, 👤 Ismingiz va familiyangizni yuboring:"

const (
	promptName         = "👤 Ismingiz va familiyangizni yuboring:"
	promptWorkplace    = "🏢 Qaerda ishlaysiz yoki o‘qiysiz? (tashkilot/universitet nomi)"
	promptCareer       = "💼 Sizning kasbiy yo‘nalishingiz?"
	promptInterests    = "📊 Qaysi moliyaviy yoki iqtisodiy sohalar siz uchun eng qiziqarli?"
	promptNetworking   = "🤝 Networkingdan qanday maqsadda qatnashmoqchisiz? Bir nechta bandni tanlashingiz mumkin:"
	promptRegion       = "🌍 Qaysi hududdan qatnashyapsiz?"
	promptLanguages    = "🗣 Qaysi tillarda muloqot qilish qulay? Bir nechta bandni tanlang yoki \"Boshqa\" ni bosing."
	promptOtherLangs   = "✍️ Qaysi boshqa tillar? Matn ko‘rinishida yozing (masalan: Nemischa, Turkcha)."
	promptTopics       = "🚀 Finlit Networking davomida qaysi mavzular muhokama qilinishiga qiziqasiz?"
	promptFormat       = "📱 Sizga qaysi format qulayroq:"
	promptSelfDesc     = "✨ Bir og‘izda o‘zingizni qanday ifoda etgan bo‘lardingiz? (Masalan: \"Men – ...\")"
	promptRestart      = "Qaytadan boshlaymiz. 👤 Ismingiz va familiyangiz?"
	msgCancelled       = "Bekor qilindi. /start orqali qayta boshlashingiz mumkin."
	msgPickOneGoal     = "Kamida bitta maqsadni tanlang, iltimos."
	msgPickOneLanguage = "Iltimos, kamida bitta tilni tanlang yoki yozib yuboring."
)

// Controller owns all in-progress sessions, keyed by submitter identity.
// Sessions are created on Start, discarded on cancel, restart, and
// completion; there is no expiry.
type Controller struct {
	mu       sync.Mutex
	sessions map[int64]*Session

	loc *time.Location
	now func() time.Time
}

// New returns a controller that timestamps completed registrations in loc.
func New(loc *time.Location) *Controller {
	return &Controller{
		sessions: make(map[int64]*Session),
		loc:      loc,
		now:      time.Now,
	}
}

// Handle applies one event for the given submitter and returns the
// reaction. Events that do not match the session's current step are
// ignored, as are non-Start events for identities with no session.
func (c *Controller) Handle(userID int64, username string, ev Event) Reaction {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev.(type) {
	case Start:
		c.sessions[userID] = newSession()
		return Reaction{Text: promptGreeting}
	case Cancel:
		if _, ok := c.sessions[userID]; !ok {
			return Reaction{}
		}
		delete(c.sessions, userID)
		return Reaction{Text: msgCancelled}
	}

	s, ok := c.sessions[userID]
	if !ok {
		return Reaction{}
	}

	switch e := ev.(type) {
	case Text:
		return c.applyText(s, e.Value)
	case Toggle:
		return applyToggle(s, e.Option)
	case Confirm:
		return applyConfirm(s)
	case OtherLanguages:
		if s.Step != StepLanguages {
			return Reaction{}
		}
		s.Step = StepLanguagesText
		return Reaction{Text: promptOtherLangs}
	case Pick:
		if s.Step != StepMeetFormat || !inCatalog(model.FormatOptions, e.Option) {
			return Reaction{}
		}
		s.MeetFormat = e.Option
		s.Step = StepSelfDesc
		return Reaction{Text: promptSelfDesc}
	case Submit:
		if s.Step != StepConfirm {
			return Reaction{}
		}
		rec := c.build(userID, username, s)
		return Reaction{Record: &rec}
	case Restart:
		if s.Step != StepConfirm {
			return Reaction{}
		}
		c.sessions[userID] = newSession()
		return Reaction{Text: promptRestart}
	}
	return Reaction{}
}

// Complete discards the submitter's session once the built record has
// been persisted.
func (c *Controller) Complete(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userID)
}

// applyText handles free-text answers. An empty or whitespace-only answer
// re-issues the step's prompt without touching state.
func (c *Controller) applyText(s *Session, raw string) Reaction {
	text := strings.TrimSpace(raw)

	switch s.Step {
	case StepName:
		if text == "" {
			return Reaction{Text: promptName}
		}
		s.FullName = text
		s.Step = StepWorkplace
		return Reaction{Text: promptWorkplace}
	case StepWorkplace:
		if text == "" {
			return Reaction{Text: promptWorkplace}
		}
		s.Workplace = text
		s.Step = StepCareer
		return Reaction{Text: promptCareer}
	case StepCareer:
		if text == "" {
			return Reaction{Text: promptCareer}
		}
		s.CareerField = text
		s.Step = StepInterests
		return Reaction{Text: promptInterests}
	case StepInterests:
		if text == "" {
			return Reaction{Text: promptInterests}
		}
		s.Interests = text
		s.Step = StepNetworking
		s.Networking = NewSelection()
		return Reaction{Text: promptNetworking, Keyboard: KeyboardNetworking, Selected: s.Networking.snapshot()}
	case StepRegion:
		if text == "" {
			return Reaction{Text: promptRegion}
		}
		s.Region = text
		s.Step = StepLanguages
		s.Languages = NewSelection()
		s.LanguagesText = ""
		return Reaction{Text: promptLanguages, Keyboard: KeyboardLanguages, Selected: s.Languages.snapshot()}
	case StepLanguagesText:
		if text == "" {
			return Reaction{Text: promptOtherLangs}
		}
		s.LanguagesText = text
		s.Step = StepTopics
		return Reaction{Text: promptTopics}
	case StepTopics:
		if text == "" {
			return Reaction{Text: promptTopics}
		}
		s.Topics = text
		s.Step = StepMeetFormat
		return Reaction{Text: promptFormat, Keyboard: KeyboardFormats}
	case StepSelfDesc:
		if text == "" {
			return Reaction{Text: promptSelfDesc}
		}
		s.SelfDesc = text
		s.Step = StepConfirm
		return Reaction{Text: reviewText(s), HTML: true, Keyboard: KeyboardConfirm}
	}
	return Reaction{}
}

// applyToggle flips one option on the active multi-select widget and asks
// the transport to re-render it in place. Options outside the step's
// catalog are ignored.
func applyToggle(s *Session, opt string) Reaction {
	switch s.Step {
	case StepNetworking:
		if !inCatalog(model.NetworkingOptions, opt) {
			return Reaction{}
		}
		s.Networking.Toggle(opt)
		return Reaction{RefreshWidget: true, Keyboard: KeyboardNetworking, Selected: s.Networking.snapshot()}
	case StepLanguages:
		if !inCatalog(model.LanguageOptions, opt) {
			return Reaction{}
		}
		s.Languages.Toggle(opt)
		return Reaction{RefreshWidget: true, Keyboard: KeyboardLanguages, Selected: s.Languages.snapshot()}
	}
	return Reaction{}
}

// applyConfirm finishes a multi-select step, enforcing the non-empty
// selection invariant at the transition boundary.
func applyConfirm(s *Session) Reaction {
	switch s.Step {
	case StepNetworking:
		if s.Networking.Empty() {
			return Reaction{Text: msgPickOneGoal}
		}
		s.Step = StepRegion
		return Reaction{Text: promptRegion}
	case StepLanguages:
		if s.Languages.Empty() && s.LanguagesText == "" {
			return Reaction{Text: msgPickOneLanguage}
		}
		s.Step = StepTopics
		return Reaction{Text: promptTopics}
	}
	return Reaction{}
}

// build assembles the immutable registration record from a fully populated
// session. All required fields are non-empty here; the transitions above
// enforced that.
func (c *Controller) build(userID int64, username string, s *Session) model.Registration {
	return model.Registration{
		TelegramID:       userID,
		TelegramUsername: username,
		FullName:         s.FullName,
		Workplace:        s.Workplace,
		CareerField:      s.CareerField,
		Interests:        s.Interests,
		NetworkingGoals:  strings.Join(s.Networking.InCatalogOrder(model.NetworkingOptions), ", "),
		Region:           s.Region,
		Languages:        joinLanguages(s),
		Topics:           s.Topics,
		MeetFormat:       s.MeetFormat,
		SelfDesc:         s.SelfDesc,
		CreatedAt:        c.now().In(c.loc).Format(model.TimeLayout),
	}
}

// joinLanguages flattens the language selection in catalog order, with the
// supplementary free-text entry appended last.
func joinLanguages(s *Session) string {
	langs := s.Languages.InCatalogOrder(model.LanguageOptions)
	if s.LanguagesText != "" {
		langs = append(langs, s.LanguagesText)
	}
	return strings.Join(langs, ", ")
}

// reviewText renders the in-progress answers for the confirmation step.
func reviewText(s *Session) string {
	return fmt.Sprintf(
		"<b>Tekshiring:</b>\n\n"+
			"<b>👤 Ism-familiya</b>: %s\n"+
			"<b>🏢 Ish/o‘qish joyi</b>: %s\n"+
			"<b>💼 Kasbiy yo‘nalish</b>: %s\n"+
			"<b>📊 Qiziq sohalar</b>: %s\n"+
			"<b>🤝 Networking maqsadi</b>: %s\n"+
			"<b>🌍 Hudud</b>: %s\n"+
			"<b>🗣 Tillar</b>: %s\n"+
			"<b>🚀 Mavzular</b>: %s\n"+
			"<b>📱 Format</b>: %s\n"+
			"<b>✨ Men –</b>: %s\n\n"+
			"Hammasi to‘g‘rimi?",
		s.FullName,
		s.Workplace,
		s.CareerField,
		s.Interests,
		strings.Join(s.Networking.InCatalogOrder(model.NetworkingOptions), ", "),
		s.Region,
		joinLanguages(s),
		s.Topics,
		s.MeetFormat,
		s.SelfDesc,
	)
}

func (s Selection) snapshot() Selection {
	out := make(Selection, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func inCatalog(catalog []string, opt string) bool {
	for _, o := range catalog {
		if o == opt {
			return true
		}
	}
	return false
}
