// Package handler binds the registration flow to the Telegram transport:
// it decodes updates into typed flow events, renders reactions back as
// messages and inline keyboards, and runs the post-confirmation pipeline.
package handler

import (
	"context"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"

	"github.com/rose1304003/Finlit-bot/flow"
	"github.com/rose1304003/Finlit-bot/model"
	"github.com/rose1304003/Finlit-bot/repo"
)

// RegistrationBot handles every update for the registration bot.
type RegistrationBot struct {
	flow         *flow.Controller
	store        *repo.Store
	exporter     *repo.Exporter
	organizerIDs []int64
	tzName       string
	loc          *time.Location
}

// New wires the handler with its collaborators. organizerIDs is the
// immutable admin allow-list and notification fan-out target.
func New(fc *flow.Controller, store *repo.Store, exporter *repo.Exporter, organizerIDs []int64, tzName string, loc *time.Location) *RegistrationBot {
	return &RegistrationBot{
		flow:         fc,
		store:        store,
		exporter:     exporter,
		organizerIDs: organizerIDs,
		tzName:       tzName,
		loc:          loc,
	}
}

// Handle is the bot's default handler for all updates.
func (h *RegistrationBot) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	switch {
	case update.CallbackQuery != nil:
		h.handleCallback(ctx, b, update.CallbackQuery)
	case update.Message != nil:
		h.handleMessage(ctx, b, update.Message)
	}
}

func (h *RegistrationBot) handleMessage(ctx context.Context, b *bot.Bot, m *models.Message) {
	if m.From == nil {
		return
	}
	if strings.HasPrefix(m.Text, "/") {
		h.handleCommand(ctx, b, m)
		return
	}
	react := h.flow.Handle(m.From.ID, m.From.Username, flow.Text{Value: m.Text})
	h.react(ctx, b, m.Chat.ID, react)
}

func (h *RegistrationBot) handleCommand(ctx context.Context, b *bot.Bot, m *models.Message) {
	cmd, _, _ := strings.Cut(strings.Fields(m.Text)[0], "@")
	switch cmd {
	case "/start":
		react := h.flow.Handle(m.From.ID, m.From.Username, flow.Start{})
		h.react(ctx, b, m.Chat.ID, react)
	case "/cancel":
		react := h.flow.Handle(m.From.ID, m.From.Username, flow.Cancel{})
		h.react(ctx, b, m.Chat.ID, react)
	case "/whoami":
		h.whoamiCmd(ctx, b, m)
	case "/help":
		h.helpCmd(ctx, b, m)
	case "/stats":
		h.statsCmd(ctx, b, m)
	case "/export_excel":
		h.exportExcelCmd(ctx, b, m)
	default:
		h.send(ctx, b, m.Chat.ID, "Buyruq tushunarsiz. /help orqali buyruqlar ro‘yxatini ko‘ring.")
	}
}

func (h *RegistrationBot) handleCallback(ctx context.Context, b *bot.Bot, q *models.CallbackQuery) {
	if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: q.ID}); err != nil {
		log.Warn().Err(err).Msg("answering callback query")
	}

	ev := decodeCallback(q.Data)
	if ev == nil {
		return
	}
	react := h.flow.Handle(q.From.ID, q.From.Username, ev)

	// DM-only bot: the widget message lives in the submitter's chat.
	chatID := q.From.ID
	if q.Message.Message != nil {
		chatID = q.Message.Message.Chat.ID
	}

	if react.RefreshWidget {
		if q.Message.Message == nil {
			return
		}
		_, err := b.EditMessageReplyMarkup(ctx, &bot.EditMessageReplyMarkupParams{
			ChatID:      chatID,
			MessageID:   q.Message.Message.ID,
			ReplyMarkup: keyboardFor(react),
		})
		if err != nil {
			log.Warn().Err(err).Msg("refreshing selection widget")
		}
		return
	}
	h.react(ctx, b, chatID, react)
}

// decodeCallback translates the opaque callback payload into a typed flow
// event. This is the only place raw payload strings are interpreted.
func decodeCallback(data string) flow.Event {
	switch {
	case strings.HasPrefix(data, "opt::"):
		return flow.Toggle{Option: strings.TrimPrefix(data, "opt::")}
	case data == "alt::text":
		return flow.OtherLanguages{}
	case data == "done::ok":
		return flow.Confirm{}
	case strings.HasPrefix(data, "pick::"):
		return flow.Pick{Option: strings.TrimPrefix(data, "pick::")}
	case data == "confirm::yes":
		return flow.Submit{}
	case data == "confirm::restart":
		return flow.Restart{}
	}
	return nil
}

// react renders one flow reaction into the chat.
func (h *RegistrationBot) react(ctx context.Context, b *bot.Bot, chatID int64, r flow.Reaction) {
	if r.Record != nil {
		h.completeRegistration(ctx, b, chatID, *r.Record)
		return
	}
	if r.Text == "" {
		return
	}
	params := &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        r.Text,
		ReplyMarkup: keyboardFor(r),
	}
	if r.HTML {
		params.ParseMode = models.ParseModeHTML
	}
	if _, err := b.SendMessage(ctx, params); err != nil {
		log.Warn().Err(err).Msg("error sending message")
	}
}

// completeRegistration runs the confirm-yes pipeline: persist, refresh the
// Excel snapshot, acknowledge the submitter, then DM each organizer.
// Export and notification failures are logged and swallowed; a save
// failure aborts the submission and leaves the review session in place
// so the confirm tap can be retried.
func (h *RegistrationBot) completeRegistration(ctx context.Context, b *bot.Bot, chatID int64, rec model.Registration) {
	if err := h.store.Save(ctx, rec); err != nil {
		log.Error().Err(err).Int64("telegram_id", rec.TelegramID).Msg("saving registration")
		h.send(ctx, b, chatID, "❗️ Saqlashda xatolik yuz berdi. «✅ Tasdiqlash» tugmasini qayta bosing.")
		return
	}
	h.flow.Complete(rec.TelegramID)
	if _, err := h.exporter.Regenerate(ctx); err != nil {
		log.Warn().Err(err).Msg("excel export failed")
	}

	summary := rec.Summary(h.tzName)
	h.sendHTML(ctx, b, chatID, "✅ Ro‘yxatdan o‘tish tugadi!\n\n"+summary)
	for _, organizerID := range h.organizerIDs {
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    organizerID,
			Text:      summary,
			ParseMode: models.ParseModeHTML,
		})
		if err != nil {
			log.Warn().Err(err).Int64("organizer_id", organizerID).Msg("failed to DM organizer")
		}
	}
}

func (h *RegistrationBot) send(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text}); err != nil {
		log.Warn().Err(err).Msg("error sending message")
	}
}

func (h *RegistrationBot) sendHTML(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	params := &bot.SendMessageParams{ChatID: chatID, Text: text, ParseMode: models.ParseModeHTML}
	if _, err := b.SendMessage(ctx, params); err != nil {
		log.Warn().Err(err).Msg("error sending message")
	}
}
