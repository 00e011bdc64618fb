package handler

import (
	"booking-service/internal/middleware"
	"booking-service/internal/model"
	"booking-service/internal/store"
	"booking-service/pkg/jwtutil"
	"booking-service/pkg/validator"
	"context"
	"errors"
	"sync"

	"github.com/labstack/echo/v4"
)

// ============================================
// In-memory stores standing in for the database
// ============================================

type mockUserStore struct {
	mu     sync.Mutex
	users  map[string]*model.User
	nextID uint
	err    error
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[string]*model.User)}
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, exists := m.users[user.Email]; exists {
		return errors.New(`duplicate key value violates unique constraint "idx_users_email"`)
	}
	// same hook GORM runs before INSERT
	if err := user.BeforeCreate(nil); err != nil {
		return err
	}
	m.nextID++
	user.ID = m.nextID
	copied := *user
	m.users[user.Email] = &copied
	return nil
}

type mockPropertyStore struct {
	mu         sync.Mutex
	properties map[uint]*model.Property
	nextID     uint
	err        error
	mutations  int
}

func newMockPropertyStore() *mockPropertyStore {
	return &mockPropertyStore{properties: make(map[uint]*model.Property)}
}

func (m *mockPropertyStore) List(ctx context.Context) ([]model.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	list := []model.Property{}
	for id := uint(1); id <= m.nextID; id++ {
		if p, ok := m.properties[id]; ok {
			list = append(list, *p)
		}
	}
	return list, nil
}

func (m *mockPropertyStore) Get(ctx context.Context, id uint) (*model.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.properties[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *mockPropertyStore) Create(ctx context.Context, property *model.Property) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.mutations++
	m.nextID++
	property.ID = m.nextID
	copied := *property
	m.properties[property.ID] = &copied
	return nil
}

func (m *mockPropertyStore) Update(ctx context.Context, id uint, changes map[string]interface{}) (*model.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.properties[id]
	if !ok || len(changes) == 0 {
		return nil, store.ErrNotFound
	}
	m.mutations++
	applyChanges(p, changes)
	copied := *p
	return &copied, nil
}

func (m *mockPropertyStore) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.properties[id]; !ok {
		return store.ErrNotFound
	}
	m.mutations++
	delete(m.properties, id)
	return nil
}

type mockBookingStore struct {
	mu       sync.Mutex
	bookings []model.Booking
	err      error
}

func (m *mockBookingStore) Create(ctx context.Context, booking *model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	booking.ID = uint(len(m.bookings) + 1)
	m.bookings = append(m.bookings, *booking)
	return nil
}

// ============================================
// Test server wiring
// ============================================

type testServer struct {
	e          *echo.Echo
	jwt        *jwtutil.JWTUtil
	users      *mockUserStore
	properties *mockPropertyStore
	bookings   *mockBookingStore
}

func newTestServer() *testServer {
	ts := &testServer{
		e:          echo.New(),
		jwt:        jwtutil.NewJWTUtil(&jwtutil.JWTConfig{SigningKey: "test-secret", ExpirationHours: 720}),
		users:      newMockUserStore(),
		properties: newMockPropertyStore(),
		bookings:   &mockBookingStore{},
	}
	ts.e.Validator = validator.New()

	h := New(&store.Stores{
		Users:      ts.users,
		Properties: ts.properties,
		Bookings:   ts.bookings,
	}, ts.jwt)
	h.Register(ts.e, middleware.AuthMiddleware(ts.jwt))

	return ts
}
