package handlers

import (
	"bytes"
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
)

// exportProducts sends the full catalog to the admin as an xlsx document.
func (b *Bot) exportProducts(ctx context.Context, msg *tgbotapi.Message, lang string) {
	if msg.From.ID != b.adminID {
		b.reply(msg.Chat.ID, text(lang, "not_admin"))
		return
	}

	products, err := b.store.ListProducts(ctx, "")
	if err != nil {
		b.replyError(msg.Chat.ID, lang, err)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		b.log.Error("create export sheet failed", zap.Error(err))
		b.reply(msg.Chat.ID, text(lang, "try_again"))
		return
	}

	headerRow := sheet.AddRow()
	for _, h := range []string{"ID", "Name", "Price", "Description", "Category", "ImageRef"} {
		headerRow.AddCell().SetValue(h)
	}
	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Price)
		row.AddCell().SetValue(p.Description)
		row.AddCell().SetValue(p.Category)
		row.AddCell().SetValue(p.ImageRef)
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		b.log.Error("write export file failed", zap.Error(err))
		b.reply(msg.Chat.ID, text(lang, "try_again"))
		return
	}

	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{
		Name:  "products.xlsx",
		Bytes: buf.Bytes(),
	})
	b.send(doc)
}
