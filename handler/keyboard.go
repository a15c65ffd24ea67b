package handler

import (
	"github.com/go-telegram/bot/models"

	"github.com/rose1304003/Finlit-bot/flow"
	"github.com/rose1304003/Finlit-bot/model"
)

// keyboardFor renders the reaction's keyboard kind into Telegram inline
// markup, or nil when there is no control to attach.
func keyboardFor(r flow.Reaction) models.ReplyMarkup {
	switch r.Keyboard {
	case flow.KeyboardNetworking:
		return multiSelectKeyboard(model.NetworkingOptions, r.Selected, false)
	case flow.KeyboardLanguages:
		return multiSelectKeyboard(model.LanguageOptions, r.Selected, true)
	case flow.KeyboardFormats:
		return singleSelectKeyboard(model.FormatOptions)
	case flow.KeyboardConfirm:
		return confirmKeyboard()
	}
	return nil
}

// multiSelectKeyboard renders one row per option with a selected mark,
// plus a trailing row with the optional free-text alternative and the
// done button.
func multiSelectKeyboard(options []string, selected flow.Selection, withTextAlt bool) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton
	for _, opt := range options {
		mark := "⬜️"
		if selected.Has(opt) {
			mark = "☑️"
		}
		rows = append(rows, []models.InlineKeyboardButton{
			{Text: mark + " " + opt, CallbackData: "opt::" + opt},
		})
	}
	var extra []models.InlineKeyboardButton
	if withTextAlt {
		extra = append(extra, models.InlineKeyboardButton{
			Text: "✍️ Boshqa (yozib kiriting)", CallbackData: "alt::text",
		})
	}
	extra = append(extra, models.InlineKeyboardButton{
		Text: "✅ Tayyor", CallbackData: "done::ok",
	})
	rows = append(rows, extra)
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// singleSelectKeyboard renders one row per option; tapping an option both
// chooses it and advances the flow, so there is no done button.
func singleSelectKeyboard(options []string) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton
	for _, opt := range options {
		rows = append(rows, []models.InlineKeyboardButton{
			{Text: opt, CallbackData: "pick::" + opt},
		})
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func confirmKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
		{{Text: "✅ Tasdiqlash", CallbackData: "confirm::yes"}},
		{{Text: "↩️ Qayta boshlash", CallbackData: "confirm::restart"}},
	}}
}
