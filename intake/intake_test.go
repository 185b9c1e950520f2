package intake

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ku-devxd/shopbot/models"
)

const adminID = int64(100)

// mockStore captures created products; only CreateProduct matters here.
type mockStore struct {
	created   []models.Product
	createErr error
}

func (m *mockStore) GetUser(context.Context, int64) (*models.User, error) { return nil, nil }

func (m *mockStore) UpsertUserLang(context.Context, int64, string) (*models.User, error) {
	return nil, nil
}

func (m *mockStore) CreateProduct(_ context.Context, p *models.Product) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, *p)
	return nil
}

func (m *mockStore) ListProducts(context.Context, string) ([]models.Product, error) {
	return nil, nil
}

func (m *mockStore) GetProduct(context.Context, uint) (*models.Product, error) { return nil, nil }

func (m *mockStore) GetCartItems(context.Context, int64) ([]models.CartItem, error) {
	return nil, nil
}

func (m *mockStore) UpsertCartItem(context.Context, int64, uint) (*models.CartItem, error) {
	return nil, nil
}

func (m *mockStore) ClearCart(context.Context, int64) error { return nil }

func newMachine(s *mockStore) *Machine {
	return NewMachine(adminID, s, NewMemorySessions())
}

func TestIntake_FullFlowWithCategoryFallback(t *testing.T) {
	mock := &mockStore{}
	m := newMachine(mock)
	ctx := context.Background()

	prompt, err := m.Start(adminID)
	require.NoError(t, err)
	assert.Equal(t, PromptName, prompt)

	steps := []struct {
		input string
		want  Prompt
	}{
		{"T-Shirt", PromptPrice},
		{"19.99", PromptDescription},
		{"Blue cotton shirt", PromptCategory},
		{"SHOES", PromptImage}, // not in the closed set, coerces to other
		{"http://img/1.png", PromptDone},
	}
	for _, step := range steps {
		prompt, err = m.Input(ctx, adminID, step.input, "")
		require.NoError(t, err)
		assert.Equal(t, step.want, prompt, "input %q", step.input)
	}

	require.Len(t, mock.created, 1)
	assert.Equal(t, models.Product{
		Name:        "T-Shirt",
		Price:       19.99,
		Description: "Blue cotton shirt",
		Category:    models.CategoryOther,
		ImageRef:    "http://img/1.png",
	}, mock.created[0])

	// machine is idle again
	assert.False(t, m.Active(adminID))
}

func TestIntake_NonAdminRejectedAtFirstStep(t *testing.T) {
	mock := &mockStore{}
	m := newMachine(mock)

	_, err := m.Start(999)
	assert.ErrorIs(t, err, ErrNotAdmin)
	assert.False(t, m.Active(999))
	assert.Empty(t, mock.created)

	// without a session, input goes nowhere
	_, err = m.Input(context.Background(), 999, "T-Shirt", "")
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Empty(t, mock.created)
}

func TestIntake_MalformedPriceAsksAgain(t *testing.T) {
	mock := &mockStore{}
	m := newMachine(mock)
	ctx := context.Background()

	_, err := m.Start(adminID)
	require.NoError(t, err)
	_, err = m.Input(ctx, adminID, "T-Shirt", "")
	require.NoError(t, err)

	for _, bad := range []string{"cheap", "-5", "19,99"} {
		prompt, err := m.Input(ctx, adminID, bad, "")
		require.NoError(t, err)
		assert.Equal(t, PromptPriceRetry, prompt, "input %q", bad)
	}

	prompt, err := m.Input(ctx, adminID, "19.99", "")
	require.NoError(t, err)
	assert.Equal(t, PromptDescription, prompt)
}

func TestIntake_PhotoWinsOverTextOnImageStep(t *testing.T) {
	mock := &mockStore{}
	m := newMachine(mock)
	ctx := context.Background()

	_, err := m.Start(adminID)
	require.NoError(t, err)
	for _, input := range []string{"Cap", "5", "Plain cap", "men"} {
		_, err = m.Input(ctx, adminID, input, "")
		require.NoError(t, err)
	}

	_, err = m.Input(ctx, adminID, "ignored caption", "file-id-123")
	require.NoError(t, err)

	require.Len(t, mock.created, 1)
	assert.Equal(t, "file-id-123", mock.created[0].ImageRef)
	assert.Equal(t, models.CategoryMen, mock.created[0].Category)
}

func TestIntake_StoreFailureKeepsDraft(t *testing.T) {
	mock := &mockStore{createErr: errors.New("connection refused")}
	m := newMachine(mock)
	ctx := context.Background()

	_, err := m.Start(adminID)
	require.NoError(t, err)
	for _, input := range []string{"Cap", "5", "Plain cap", "men"} {
		_, err = m.Input(ctx, adminID, input, "")
		require.NoError(t, err)
	}

	_, err = m.Input(ctx, adminID, "http://img/cap.png", "")
	require.Error(t, err)
	assert.True(t, m.Active(adminID))

	// store recovers, resending the image completes the flow
	mock.createErr = nil
	prompt, err := m.Input(ctx, adminID, "http://img/cap.png", "")
	require.NoError(t, err)
	assert.Equal(t, PromptDone, prompt)
	assert.Len(t, mock.created, 1)
}

func TestIntake_Cancel(t *testing.T) {
	m := newMachine(&mockStore{})

	assert.False(t, m.Cancel(adminID))

	_, err := m.Start(adminID)
	require.NoError(t, err)
	assert.True(t, m.Cancel(adminID))
	assert.False(t, m.Active(adminID))
}
