package handler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"

	"github.com/rose1304003/Finlit-bot/model"
)

const msgAdminsOnly = "Bu buyruq faqat adminlar uchun."

const helpText = "Buyruqlar:\n" +
	"/start — ro‘yxatdan o‘tishni boshlash\n" +
	"/cancel — bekor qilish\n" +
	"/whoami — user id ni ko‘rsatish\n" +
	"/stats — (admin) registratsiyalar statistikasi\n" +
	"/export_excel — (admin) Excel faylni yuborish"

func (h *RegistrationBot) isOrganizer(userID int64) bool {
	for _, id := range h.organizerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func (h *RegistrationBot) whoamiCmd(ctx context.Context, b *bot.Bot, m *models.Message) {
	h.send(ctx, b, m.Chat.ID, fmt.Sprintf("Sizning user id: %d", m.From.ID))
}

func (h *RegistrationBot) helpCmd(ctx context.Context, b *bot.Bot, m *models.Message) {
	h.send(ctx, b, m.Chat.ID, helpText)
}

// statsCmd reports total, today, and this-week registration counts.
// "This week" starts on Monday in the configured local zone; stored
// timestamps are local-naive and parsed in that same zone.
func (h *RegistrationBot) statsCmd(ctx context.Context, b *bot.Bot, m *models.Message) {
	if !h.isOrganizer(m.From.ID) {
		h.send(ctx, b, m.Chat.ID, msgAdminsOnly)
		return
	}

	total, err := h.store.CountAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("counting registrations")
		h.send(ctx, b, m.Chat.ID, "Statistikani olishda xatolik yuz berdi.")
		return
	}
	stamps, err := h.store.ListCreatedAt(ctx)
	if err != nil {
		log.Error().Err(err).Msg("listing creation timestamps")
		h.send(ctx, b, m.Chat.ID, "Statistikani olishda xatolik yuz berdi.")
		return
	}

	today, week := countWindow(stamps, time.Now().In(h.loc), h.loc)
	h.send(ctx, b, m.Chat.ID, fmt.Sprintf(
		"📊 Statistikalar:\nJami: %d\nBugun: %d\nUshbu hafta: %d",
		total, today, week,
	))
}

// countWindow counts timestamps falling on now's date and in now's week
// (Monday start). Unparseable stamps are skipped.
func countWindow(stamps []string, now time.Time, loc *time.Location) (today, week int) {
	y, mo, d := now.Date()
	dayStart := time.Date(y, mo, d, 0, 0, 0, 0, loc)
	weekStart := dayStart.AddDate(0, 0, -(int(now.Weekday())+6)%7)

	for _, s := range stamps {
		t, err := time.ParseInLocation(model.TimeLayout, s, loc)
		if err != nil {
			continue
		}
		ty, tmo, td := t.Date()
		if ty == y && tmo == mo && td == d {
			today++
		}
		if !t.Before(weekStart) {
			week++
		}
	}
	return today, week
}

// exportExcelCmd regenerates the snapshot and uploads it as a document.
func (h *RegistrationBot) exportExcelCmd(ctx context.Context, b *bot.Bot, m *models.Message) {
	if !h.isOrganizer(m.From.ID) {
		h.send(ctx, b, m.Chat.ID, msgAdminsOnly)
		return
	}

	path, err := h.exporter.Regenerate(ctx)
	if err != nil {
		log.Error().Err(err).Msg("regenerating excel export")
		h.send(ctx, b, m.Chat.ID, fmt.Sprintf("Yuborishda xatolik: %v", err))
		return
	}
	f, err := os.Open(path)
	if err != nil {
		h.send(ctx, b, m.Chat.ID, fmt.Sprintf("Yuborishda xatolik: %v", err))
		return
	}
	defer f.Close()

	_, err = b.SendDocument(ctx, &bot.SendDocumentParams{
		ChatID:   m.Chat.ID,
		Document: &models.InputFileUpload{Filename: filepath.Base(path), Data: f},
		Caption:  "Registratsiyalar (Excel)",
	})
	if err != nil {
		log.Warn().Err(err).Msg("sending excel document")
		h.send(ctx, b, m.Chat.ID, fmt.Sprintf("Yuborishda xatolik: %v", err))
	}
}
