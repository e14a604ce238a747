package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of store.Client
type Client struct {
	mock.Mock
}

func (m *Client) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Client) Addr() string {
	args := m.Called()
	return args.String(0)
}

func (m *Client) Close() error {
	args := m.Called()
	return args.Error(0)
}
