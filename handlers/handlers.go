package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ku-devxd/shopbot/cart"
	"github.com/ku-devxd/shopbot/catalog"
	"github.com/ku-devxd/shopbot/checkout"
	"github.com/ku-devxd/shopbot/intake"
	"github.com/ku-devxd/shopbot/models"
	"github.com/ku-devxd/shopbot/store"
)

// Sender is the slice of the Telegram API the handlers use.
// *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot routes inbound updates to catalog, cart, checkout and intake.
type Bot struct {
	api      Sender
	store    store.Store
	catalog  *catalog.Service
	cart     *cart.Engine
	checkout *checkout.Orchestrator
	intake   *intake.Machine
	adminID  int64
	log      *zap.Logger
}

func NewBot(
	api Sender,
	s store.Store,
	cat *catalog.Service,
	engine *cart.Engine,
	orch *checkout.Orchestrator,
	machine *intake.Machine,
	adminID int64,
	log *zap.Logger,
) *Bot {
	return &Bot{
		api:      api,
		store:    s,
		catalog:  cat,
		cart:     engine,
		checkout: orch,
		intake:   machine,
		adminID:  adminID,
		log:      log,
	}
}

// HandleUpdate processes one inbound update. It never lets a fault reach
// the transport loop: every outcome ends in some user-visible reply.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("panic in update handler", zap.Any("panic", r))
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	lang := b.userLang(ctx, userID)

	// /cancel aborts an in-flight product entry before anything else.
	if msg.Command() == "cancel" {
		if b.intake.Cancel(userID) {
			b.reply(msg.Chat.ID, text(lang, "intake_cancelled"))
		} else {
			b.reply(msg.Chat.ID, text(lang, "nothing_to_cancel"))
		}
		return
	}

	// An active intake session consumes every message of that user; routing
	// is by session state, not identity.
	if b.intake.Active(userID) {
		b.handleIntakeInput(ctx, msg, lang)
		return
	}

	switch msg.Command() {
	case "start":
		start := tgbotapi.NewMessage(msg.Chat.ID,
			text(models.LangEnglish, "start_msg")+" / "+text(models.LangRussian, "start_msg"))
		start.ReplyMarkup = languageKeyboard()
		b.send(start)
		return
	case "add_product":
		prompt, err := b.intake.Start(userID)
		if err != nil {
			b.replyError(msg.Chat.ID, lang, err)
			return
		}
		b.reply(msg.Chat.ID, b.promptText(lang, prompt))
		return
	case "export_products":
		b.exportProducts(ctx, msg, lang)
		return
	}

	switch msg.Text {
	case text(lang, "btn_products"), text(lang, "btn_categories"):
		reply := tgbotapi.NewMessage(msg.Chat.ID, text(lang, "choose_category"))
		reply.ReplyMarkup = categoryKeyboard()
		b.send(reply)
	case text(lang, "btn_my_cart"):
		b.showCart(ctx, msg.Chat.ID, userID, lang)
	case text(lang, "btn_my_orders"):
		b.reply(msg.Chat.ID, text(lang, "orders_stub"))
	default:
		fallback := tgbotapi.NewMessage(msg.Chat.ID, text(lang, "choose_option"))
		fallback.ReplyMarkup = mainMenuKeyboard(lang)
		b.send(fallback)
	}
}

func (b *Bot) handleIntakeInput(ctx context.Context, msg *tgbotapi.Message, lang string) {
	input := msg.Text
	if input == "" {
		input = msg.Caption
	}
	var mediaRef string
	if len(msg.Photo) > 0 {
		// Telegram sends several sizes, the last one is the largest.
		mediaRef = msg.Photo[len(msg.Photo)-1].FileID
	}

	prompt, err := b.intake.Input(ctx, msg.From.ID, input, mediaRef)
	if err != nil {
		b.replyError(msg.Chat.ID, lang, err)
		return
	}
	b.reply(msg.Chat.ID, b.promptText(lang, prompt))
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID
	chatID := cb.Message.Chat.ID
	lang := b.userLang(ctx, userID)
	action := ParseCallback(cb.Data)

	// A toast acknowledges the button press; empty just stops the spinner.
	toast := ""

	switch action.Kind {
	case ActionSetLang:
		user, err := b.store.UpsertUserLang(ctx, userID, action.Lang)
		if err != nil {
			b.replyError(chatID, lang, err)
			break
		}
		b.reply(chatID, text(user.Lang, "language_set"))
		menu := tgbotapi.NewMessage(chatID, text(user.Lang, "main_menu"))
		menu.ReplyMarkup = mainMenuKeyboard(user.Lang)
		b.send(menu)

	case ActionBrowseCategory:
		b.showCategory(ctx, chatID, lang, action.Category)

	case ActionAddToCart:
		if _, err := b.cart.Add(ctx, userID, action.ProductID); err != nil {
			b.replyError(chatID, lang, err)
			break
		}
		toast = text(lang, "added_to_cart")

	case ActionClearCart:
		if err := b.cart.Clear(ctx, userID); err != nil {
			b.replyError(chatID, lang, err)
			break
		}
		b.reply(chatID, text(lang, "cart_cleared"))

	case ActionCheckout:
		b.doCheckout(ctx, chatID, userID, lang)

	case ActionBuyProduct:
		b.doBuyProduct(ctx, chatID, userID, lang, action.ProductID)

	default:
		b.log.Warn("unknown callback payload", zap.String("data", cb.Data), zap.Int64("user_id", userID))
	}

	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, toast)); err != nil {
		b.log.Warn("answer callback failed", zap.Error(err))
	}
}

func (b *Bot) showCategory(ctx context.Context, chatID int64, lang, category string) {
	products, err := b.catalog.Browse(ctx, category)
	if err != nil {
		b.replyError(chatID, lang, err)
		return
	}
	if len(products) == 0 {
		b.reply(chatID, text(lang, "no_products"))
		return
	}
	for _, p := range products {
		b.sendProductCard(chatID, lang, p)
	}
}

func (b *Bot) sendProductCard(chatID int64, lang string, p models.Product) {
	caption := fmt.Sprintf("%s\n%s\n%s: %.2f ₽", p.Name, p.Description, text(lang, "price"), p.Price)
	kb := productKeyboard(lang, p.ID)

	if p.ImageRef == "" {
		msg := tgbotapi.NewMessage(chatID, caption)
		msg.ReplyMarkup = kb
		b.send(msg)
		return
	}

	var file tgbotapi.RequestFileData
	if strings.HasPrefix(p.ImageRef, "http://") || strings.HasPrefix(p.ImageRef, "https://") {
		file = tgbotapi.FileURL(p.ImageRef)
	} else {
		file = tgbotapi.FileID(p.ImageRef)
	}
	photo := tgbotapi.NewPhoto(chatID, file)
	photo.Caption = caption
	photo.ReplyMarkup = kb
	b.send(photo)
}

func (b *Bot) showCart(ctx context.Context, chatID, userID int64, lang string) {
	items, err := b.cart.Items(ctx, userID)
	if err != nil {
		b.replyError(chatID, lang, err)
		return
	}
	if len(items) == 0 {
		b.reply(chatID, text(lang, "cart_empty"))
		return
	}

	summary := cart.Summarize(items)
	var sb strings.Builder
	sb.WriteString(text(lang, "cart_title"))
	sb.WriteString("\n\n")
	for _, line := range summary.Lines {
		fmt.Fprintf(&sb, "• %s — %d — %.2f ₽\n", line.Name, line.Quantity, line.LineTotal)
	}
	fmt.Fprintf(&sb, "\n%s: %.2f ₽", text(lang, "cart_total"), summary.GrandTotal)

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = cartKeyboard(lang)
	b.send(msg)
}

func (b *Bot) doCheckout(ctx context.Context, chatID, userID int64, lang string) {
	res, err := b.checkout.Checkout(ctx, userID)
	if err != nil {
		b.replyError(chatID, lang, err)
		return
	}
	b.reply(chatID, fmt.Sprintf("%s\n\n%s: %.2f ₽\n%s: %s",
		text(lang, "checkout_msg"),
		text(lang, "cart_total"), res.Total,
		text(lang, "pay"), res.Handle.ConfirmationURL,
	))
}

func (b *Bot) doBuyProduct(ctx context.Context, chatID, userID int64, lang string, productID uint) {
	res, err := b.checkout.BuyProduct(ctx, userID, productID)
	if err != nil {
		b.replyError(chatID, lang, err)
		return
	}
	b.reply(chatID, fmt.Sprintf("🛒 %.2f ₽\n%s: %s",
		res.Total, text(lang, "pay"), res.Handle.ConfirmationURL,
	))
}

// replyError converts any failure into a localized user-visible message.
// ErrEmptyCart is control flow and never logged.
func (b *Bot) replyError(chatID int64, lang string, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		b.reply(chatID, text(lang, "cart_empty"))
	case errors.Is(err, store.ErrNotFound):
		b.reply(chatID, text(lang, "not_found"))
	case errors.Is(err, checkout.ErrGatewayFailure):
		b.log.Warn("payment gateway failure", zap.Error(err))
		b.reply(chatID, text(lang, "payment_failed"))
	case errors.Is(err, intake.ErrNotAdmin):
		b.reply(chatID, text(lang, "not_admin"))
	default:
		b.log.Error("store operation failed", zap.Error(err))
		b.reply(chatID, text(lang, "try_again"))
	}
}

func (b *Bot) promptText(lang string, p intake.Prompt) string {
	switch p {
	case intake.PromptName:
		return text(lang, "send_name")
	case intake.PromptPrice:
		return text(lang, "send_price")
	case intake.PromptPriceRetry:
		return text(lang, "send_price_retry")
	case intake.PromptDescription:
		return text(lang, "send_description")
	case intake.PromptCategory:
		return text(lang, "send_category")
	case intake.PromptImage:
		return text(lang, "send_image")
	case intake.PromptDone:
		return text(lang, "product_added")
	default:
		return text(lang, "try_again")
	}
}

// userLang never fails the caller: a store hiccup falls back to English so
// the reply still goes out.
func (b *Bot) userLang(ctx context.Context, userID int64) string {
	user, err := b.store.GetUser(ctx, userID)
	if err != nil {
		b.log.Warn("get user failed", zap.Int64("user_id", userID), zap.Error(err))
		return models.LangEnglish
	}
	return user.Lang
}

func (b *Bot) reply(chatID int64, body string) {
	b.send(tgbotapi.NewMessage(chatID, body))
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.log.Warn("send failed", zap.Error(err))
	}
}
