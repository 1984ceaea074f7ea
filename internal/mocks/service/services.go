// Package service provides hand-written test doubles for the domain service
// interfaces, built on testify/mock.
package service

import (
	"context"
	"time"

	domainservice "freshmarket/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func setup(t testingT, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// --- PasswordHasher ---

type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t testingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	setup(t, &m.Mock)

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// --- TokenService ---

type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t testingT) *MockTokenService {
	m := &MockTokenService{}
	setup(t, &m.Mock)

	return m
}

func (m *MockTokenService) GenerateTokens(userID uuid.UUID, roles []string) (string, string, error) {
	args := m.Called(userID, roles)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	args := m.Called(tokenString, secret)
	if v := args.Get(0); v != nil {
		return v.(*jwt.Token), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// --- AggregateCache ---

// MockAggregateCache is an in-memory AggregateCache that records what was
// stored. It never fails, which matches the read-through services treating
// the cache as best effort.
type MockAggregateCache struct {
	Values map[string]string
}

func NewMockAggregateCache() *MockAggregateCache {
	return &MockAggregateCache{Values: make(map[string]string)}
}

func (c *MockAggregateCache) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := c.Values[key]

	return value, ok, nil
}

func (c *MockAggregateCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	c.Values[key] = value

	return nil
}

// --- EventPublisher ---

// MockEventPublisher records every published event for inspection.
type MockEventPublisher struct {
	Events []*domainservice.OrderEvent
	Err    error
}

func (p *MockEventPublisher) PublishOrderEvent(_ context.Context, event *domainservice.OrderEvent) error {
	if p.Err != nil {
		return p.Err
	}

	p.Events = append(p.Events, event)

	return nil
}

func (p *MockEventPublisher) Close() error {
	return nil
}
