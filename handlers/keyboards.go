package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇷🇺 Русский", "lang_ru"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇬🇧 English", "lang_en"),
		),
	)
}

func mainMenuKeyboard(lang string) tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(text(lang, "btn_products"))),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(text(lang, "btn_categories"))),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(text(lang, "btn_my_cart"))),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(text(lang, "btn_my_orders"))),
	)
}

func categoryKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛍 All Products", "cat_all"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👕 Men", "cat_men"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👗 Women", "cat_women"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📱 Electronics", "cat_electronics"),
		),
	)
}

func productKeyboard(lang string, productID uint) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(text(lang, "btn_add_to_cart"), fmt.Sprintf("add_to_cart_%d", productID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(text(lang, "btn_buy"), fmt.Sprintf("buy_%d", productID)),
		),
	)
}

func cartKeyboard(lang string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(text(lang, "btn_checkout"), callbackCheckout),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(text(lang, "btn_clear_cart"), callbackClearCart),
		),
	)
}
