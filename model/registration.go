package model

import "fmt"

// TimeLayout is the storage format for Registration.CreatedAt. Timestamps
// are local-naive: the configured time zone is implied, no offset is
// embedded.
const TimeLayout = "2006-01-02 15:04:05"

// Registration is one completed event registration. It is assembled once,
// when the conversation reaches its final confirmation, and never mutated
// afterwards. Multi-select answers are stored as ", "-joined text in
// catalog order.
type Registration struct {
	TelegramID       int64
	TelegramUsername string
	FullName         string
	Workplace        string
	CareerField      string
	Interests        string
	NetworkingGoals  string
	Region           string
	Languages        string
	Topics           string
	MeetFormat       string
	SelfDesc         string
	CreatedAt        string
}

// UserLink renders the submitter as @username, or the numeric ID when the
// account has no username.
func (r Registration) UserLink() string {
	if r.TelegramUsername != "" {
		return "@" + r.TelegramUsername
	}
	return fmt.Sprintf("%d", r.TelegramID)
}

// Summary renders the registration as the HTML message sent to the
// submitter and DMed to each organizer. tzName is the configured zone
// name shown next to the timestamp.
func (r Registration) Summary(tzName string) string {
	return fmt.Sprintf(
		"✅ %s\n%s: %s\n\n"+
			"%s: %s\n"+
			"%s: %s\n"+
			"%s: %s\n"+
			"%s: %s\n"+
			"%s: %s\n"+
			"%s: %s\n"+
			"%s: %s\n"+
			"%s: %s\n"+
			"%s: %s\n"+
			"%s: %s\n\n"+
			"%s: %s (%s)",
		bold("Yangi ro‘yxatdan o‘tish!"),
		bold("Foydalanuvchi"), r.UserLink(),
		bold("👤 Ism-familiya"), r.FullName,
		bold("🏢 Ish/o‘qish joyi"), r.Workplace,
		bold("💼 Kasbiy yo‘nalish"), r.CareerField,
		bold("📊 Qiziq sohalar"), r.Interests,
		bold("🤝 Networking maqsadi"), r.NetworkingGoals,
		bold("🌍 Hudud"), r.Region,
		bold("🗣 Tillar"), r.Languages,
		bold("🚀 Qiziqqan mavzular"), r.Topics,
		bold("📱 Qulay format"), r.MeetFormat,
		bold("✨ Bir og‘izda"), r.SelfDesc,
		bold("Sana/vaqt"), r.CreatedAt, tzName,
	)
}

func bold(s string) string {
	return "<b>" + s + "</b>"
}
