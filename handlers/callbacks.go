package handlers

import (
	"strconv"
	"strings"
)

// ActionKind classifies an inbound callback payload.
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionSetLang
	ActionBrowseCategory
	ActionAddToCart
	ActionBuyProduct
	ActionClearCart
	ActionCheckout
)

// Action is a parsed callback. Exactly one of Lang, Category, ProductID is
// meaningful depending on Kind.
type Action struct {
	Kind      ActionKind
	Lang      string
	Category  string
	ProductID uint
}

// Callback payloads follow a fixed prefix convention set by the keyboards
// this bot sends: lang_<code>, cat_<category>, add_to_cart_<id>, buy_<id>,
// clear_cart, checkout.
const (
	callbackLangPrefix = "lang_"
	callbackCatPrefix  = "cat_"
	callbackAddPrefix  = "add_to_cart_"
	callbackBuyPrefix  = "buy_"
	callbackClearCart  = "clear_cart"
	callbackCheckout   = "checkout"
)

// ParseCallback splits a callback payload by prefix. It is deterministic
// and total: anything unrecognized comes back as ActionUnknown.
func ParseCallback(data string) Action {
	switch {
	case data == callbackClearCart:
		return Action{Kind: ActionClearCart}
	case data == callbackCheckout:
		return Action{Kind: ActionCheckout}
	case strings.HasPrefix(data, callbackLangPrefix):
		return Action{Kind: ActionSetLang, Lang: strings.TrimPrefix(data, callbackLangPrefix)}
	case strings.HasPrefix(data, callbackCatPrefix):
		return Action{Kind: ActionBrowseCategory, Category: strings.TrimPrefix(data, callbackCatPrefix)}
	case strings.HasPrefix(data, callbackAddPrefix):
		return productAction(ActionAddToCart, strings.TrimPrefix(data, callbackAddPrefix))
	case strings.HasPrefix(data, callbackBuyPrefix):
		return productAction(ActionBuyProduct, strings.TrimPrefix(data, callbackBuyPrefix))
	default:
		return Action{Kind: ActionUnknown}
	}
}

func productAction(kind ActionKind, rawID string) Action {
	id, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil {
		return Action{Kind: ActionUnknown}
	}
	return Action{Kind: kind, ProductID: uint(id)}
}
