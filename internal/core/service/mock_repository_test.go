package service

import (
	"context"
	"sync"

	"github.com/bakeryshop/cart-service/internal/core/domain"
)

// mockRepo is an in-memory DatabaseRepository. The mutex makes every
// composite operation atomic, mirroring the store transaction.
type mockRepo struct {
	mu        sync.Mutex
	users     map[string]domain.User
	inventory map[string]int
	carts     map[string]map[string]int
	cartOrder map[string][]string
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		users:     make(map[string]domain.User),
		inventory: make(map[string]int),
		carts:     make(map[string]map[string]int),
		cartOrder: make(map[string][]string),
	}
}

func (m *mockRepo) seedUser(username string) domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	user := domain.User{
		ID:       "id-" + username,
		Username: username,
		Email:    username + "@example.org",
	}
	m.users[username] = user
	return user
}

func (m *mockRepo) CreateUser(ctx context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[user.Username]; exists {
		return domain.ErrDuplicateUser
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockRepo) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (m *mockRepo) GetInventory(ctx context.Context, itemName string) (*domain.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	quantity, ok := m.inventory[itemName]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &domain.InventoryItem{ItemName: itemName, Quantity: quantity}, nil
}

func (m *mockRepo) ReleaseStock(ctx context.Context, itemName string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inventory[itemName] += quantity
	return nil
}

func (m *mockRepo) AddItemToCart(ctx context.Context, userID, itemName string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inventory[itemName] < quantity {
		return domain.ErrInsufficientStock
	}
	m.inventory[itemName] -= quantity

	if m.carts[userID] == nil {
		m.carts[userID] = make(map[string]int)
	}
	if _, seen := m.carts[userID][itemName]; !seen {
		m.cartOrder[userID] = append(m.cartOrder[userID], itemName)
	}
	m.carts[userID][itemName] += quantity
	return nil
}

func (m *mockRepo) RemoveItemFromCart(ctx context.Context, userID, itemName string, quantity int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	held, ok := m.carts[userID][itemName]
	if !ok || held == 0 {
		return 0, domain.ErrNotInCart
	}

	removed := quantity
	if removed > held {
		removed = held
	}
	m.carts[userID][itemName] -= removed
	m.inventory[itemName] += removed
	return removed, nil
}

func (m *mockRepo) GetCart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := []domain.CartItem{}
	for _, itemName := range m.cartOrder[userID] {
		items = append(items, domain.CartItem{
			UserID:   userID,
			ItemName: itemName,
			Quantity: m.carts[userID][itemName],
		})
	}
	return items, nil
}

// totalStock reports inventory plus all cart holdings for an item, for
// conservation checks.
func (m *mockRepo) totalStock(itemName string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := m.inventory[itemName]
	for _, cart := range m.carts {
		total += cart[itemName]
	}
	return total
}
