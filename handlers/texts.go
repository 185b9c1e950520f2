package handlers

import "github.com/ku-devxd/shopbot/models"

// texts is the en/ru string table for every user-visible reply.
var texts = map[string]map[string]string{
	"start_msg": {
		"en": "Please select your language:",
		"ru": "Пожалуйста, выберите язык:",
	},
	"language_set": {
		"en": "✅ Language set: English",
		"ru": "✅ Язык установлен: Русский",
	},
	"main_menu": {
		"en": "Main menu:",
		"ru": "Главное меню:",
	},
	"choose_category": {
		"en": "Choose a category:",
		"ru": "Выберите категорию:",
	},
	"choose_option": {
		"en": "Please choose an option from the menu",
		"ru": "Выберите опцию из меню",
	},
	"no_products": {
		"en": "No products in this category",
		"ru": "В этой категории нет товаров",
	},
	"cart_empty": {
		"en": "Your cart is empty 🛒",
		"ru": "Корзина пуста 🛒",
	},
	"cart_title": {
		"en": "🛒 Your cart:",
		"ru": "🛒 Твоя корзина:",
	},
	"cart_total": {
		"en": "Total",
		"ru": "Итого",
	},
	"added_to_cart": {
		"en": "✅ Added to cart",
		"ru": "✅ Добавлено в корзину",
	},
	"cart_cleared": {
		"en": "🗑 Cart cleared",
		"ru": "🗑 Корзина очищена",
	},
	"checkout_msg": {
		"en": "💳 Pay for your items:",
		"ru": "💳 Оплатить товары:",
	},
	"pay": {
		"en": "Pay",
		"ru": "Оплатить",
	},
	"price": {
		"en": "Price",
		"ru": "Цена",
	},
	"orders_stub": {
		"en": "Your orders will be here",
		"ru": "Здесь будут ваши заказы",
	},
	"not_found": {
		"en": "❌ Product not found",
		"ru": "❌ Товар не найден",
	},
	"payment_failed": {
		"en": "❌ Payment failed, please try again. Your cart is untouched.",
		"ru": "❌ Оплата не прошла, попробуйте ещё раз. Корзина не изменилась.",
	},
	"try_again": {
		"en": "Something went wrong, please try again",
		"ru": "Что-то пошло не так, попробуйте ещё раз",
	},
	"not_admin": {
		"en": "You are not admin.",
		"ru": "Вы не администратор.",
	},
	"send_name": {
		"en": "✏ Send product name:",
		"ru": "✏ Отправьте название товара:",
	},
	"send_price": {
		"en": "💲 Send price:",
		"ru": "💲 Отправьте цену:",
	},
	"send_price_retry": {
		"en": "💲 That doesn't look like a price, send a number:",
		"ru": "💲 Это не похоже на цену, отправьте число:",
	},
	"send_description": {
		"en": "📝 Send description:",
		"ru": "📝 Отправьте описание:",
	},
	"send_category": {
		"en": "Enter category (men / women / electronics / etc):",
		"ru": "Введите категорию (men / women / electronics / etc):",
	},
	"send_image": {
		"en": "📸 Send image URL or photo:",
		"ru": "📸 Отправьте фото или ссылку на изображение:",
	},
	"product_added": {
		"en": "Product successfully added!",
		"ru": "Товар успешно добавлен!",
	},
	"intake_cancelled": {
		"en": "Product entry cancelled",
		"ru": "Добавление товара отменено",
	},
	"nothing_to_cancel": {
		"en": "Nothing to cancel",
		"ru": "Нечего отменять",
	},
	"btn_add_to_cart": {
		"en": "🛒 Add to cart",
		"ru": "🛒 Добавить в корзину",
	},
	"btn_buy": {
		"en": "💳 Buy now",
		"ru": "💳 Купить сейчас",
	},
	"btn_checkout": {
		"en": "✅ Checkout",
		"ru": "✅ Оформить заказ",
	},
	"btn_clear_cart": {
		"en": "🗑 Clear cart",
		"ru": "🗑 Очистить корзину",
	},
	"btn_products": {
		"en": "🛍 Products",
		"ru": "🛍 Товары",
	},
	"btn_categories": {
		"en": "📂 Categories",
		"ru": "📂 Категории",
	},
	"btn_my_cart": {
		"en": "🛒 My cart",
		"ru": "🛒 Моя корзина",
	},
	"btn_my_orders": {
		"en": "📦 My orders",
		"ru": "📦 Мои заказы",
	},
}

// text looks up a key in the user's language, falling back to English and
// finally to the key itself so a missing entry never blanks a reply.
func text(lang, key string) string {
	byLang, ok := texts[key]
	if !ok {
		return key
	}
	if s, ok := byLang[lang]; ok {
		return s
	}
	return byLang[models.LangEnglish]
}
