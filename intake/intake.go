package intake

import (
	"context"
	"errors"
	"strconv"

	"github.com/ku-devxd/shopbot/models"
	"github.com/ku-devxd/shopbot/store"
)

// ErrNotAdmin is returned when anyone but the configured administrator
// tries to start the product intake flow. No session is created.
var ErrNotAdmin = errors.New("intake: not administrator")

// ErrNoSession is returned when input arrives without an active draft.
var ErrNoSession = errors.New("intake: no active session")

// Step of the five-turn product entry flow, one field per step.
type Step int

const (
	StepName Step = iota + 1
	StepPrice
	StepDescription
	StepCategory
	StepImage
)

// Prompt tells the transport layer what to ask for next. The transport
// owns the localized wording.
type Prompt int

const (
	PromptName Prompt = iota + 1
	PromptPrice
	PromptPriceRetry
	PromptDescription
	PromptCategory
	PromptImage
	PromptDone
)

// Draft accumulates product fields across turns. It lives only in the
// session store and is discarded on completion or cancel.
type Draft struct {
	Step        Step
	Name        string
	Price       float64
	Description string
	Category    string
	ImageRef    string
}

// Machine drives the guided product entry for the single administrator.
type Machine struct {
	adminID  int64
	store    store.Store
	sessions Sessions
}

func NewMachine(adminID int64, s store.Store, sessions Sessions) *Machine {
	return &Machine{adminID: adminID, store: s, sessions: sessions}
}

// Active reports whether the user has a draft in progress. The router must
// check this before command matching so mid-flow messages are consumed by
// the session, not re-classified.
func (m *Machine) Active(userID int64) bool {
	_, ok := m.sessions.Get(userID)
	return ok
}

// Start opens a new draft. Only the configured administrator may do so.
func (m *Machine) Start(userID int64) (Prompt, error) {
	if userID != m.adminID {
		return 0, ErrNotAdmin
	}
	m.sessions.Set(userID, &Draft{Step: StepName})
	return PromptName, nil
}

// Cancel discards an active draft, if any.
func (m *Machine) Cancel(userID int64) bool {
	if !m.Active(userID) {
		return false
	}
	m.sessions.Clear(userID)
	return true
}

// Input consumes one turn: the message text (or media reference on the
// image step), stores the field for the current step, advances, and
// returns the prompt for the next step. On the final step the draft is
// written as one new product and the session ends.
func (m *Machine) Input(ctx context.Context, userID int64, text, mediaRef string) (Prompt, error) {
	draft, ok := m.sessions.Get(userID)
	if !ok {
		return 0, ErrNoSession
	}

	switch draft.Step {
	case StepName:
		draft.Name = text
		draft.Step = StepPrice
		m.sessions.Set(userID, draft)
		return PromptPrice, nil

	case StepPrice:
		price, err := strconv.ParseFloat(text, 64)
		if err != nil || price < 0 {
			// stay on the price step and ask again
			return PromptPriceRetry, nil
		}
		draft.Price = price
		draft.Step = StepDescription
		m.sessions.Set(userID, draft)
		return PromptDescription, nil

	case StepDescription:
		draft.Description = text
		draft.Step = StepCategory
		m.sessions.Set(userID, draft)
		return PromptCategory, nil

	case StepCategory:
		draft.Category = models.NormalizeCategory(text)
		draft.Step = StepImage
		m.sessions.Set(userID, draft)
		return PromptImage, nil

	case StepImage:
		ref := text
		if mediaRef != "" {
			ref = mediaRef
		}
		product := &models.Product{
			Name:        draft.Name,
			Price:       draft.Price,
			Description: draft.Description,
			Category:    draft.Category,
			ImageRef:    ref,
		}
		if err := m.store.CreateProduct(ctx, product); err != nil {
			// keep the draft so the admin can resend the image after a
			// transient store failure instead of retyping everything
			return 0, err
		}
		m.sessions.Clear(userID)
		return PromptDone, nil

	default:
		m.sessions.Clear(userID)
		return 0, ErrNoSession
	}
}
