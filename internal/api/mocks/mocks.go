// Package mocks provides testify mocks of the store-facing client
// interfaces for store tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tractionhq/mobilecore/internal/domain/dashboard"
	"github.com/tractionhq/mobilecore/internal/domain/rock"
	"github.com/tractionhq/mobilecore/internal/domain/todo"
	"github.com/tractionhq/mobilecore/internal/domain/user"
)

// AuthClient is a mock for auth.Client.
type AuthClient struct {
	mock.Mock
}

func (m *AuthClient) Login(ctx context.Context, email, password, tenant string) (string, error) {
	args := m.Called(ctx, email, password, tenant)
	return args.String(0), args.Error(1)
}

func (m *AuthClient) GetProfile(ctx context.Context) (*user.User, error) {
	args := m.Called(ctx)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// TodoClient is a mock for todo.Client.
type TodoClient struct {
	mock.Mock
}

func (m *TodoClient) ListTodos(ctx context.Context, params todo.ListParams) (*todo.ListResponse, error) {
	args := m.Called(ctx, params)
	if list, ok := args.Get(0).(*todo.ListResponse); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TodoClient) ToggleStatus(ctx context.Context, id string, current todo.Status) (*todo.Todo, error) {
	args := m.Called(ctx, id, current)
	if t, ok := args.Get(0).(*todo.Todo); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

// RockClient is a mock for rock.Client.
type RockClient struct {
	mock.Mock
}

func (m *RockClient) ListRocks(ctx context.Context, params rock.ListParams) ([]rock.Rock, error) {
	args := m.Called(ctx, params)
	if rocks, ok := args.Get(0).([]rock.Rock); ok {
		return rocks, args.Error(1)
	}
	return nil, args.Error(1)
}

// DashboardClient is a mock for dashboard.Client.
type DashboardClient struct {
	mock.Mock
}

func (m *DashboardClient) ListDashboards(ctx context.Context) ([]dashboard.Dashboard, error) {
	args := m.Called(ctx)
	if dashboards, ok := args.Get(0).([]dashboard.Dashboard); ok {
		return dashboards, args.Error(1)
	}
	return nil, args.Error(1)
}
