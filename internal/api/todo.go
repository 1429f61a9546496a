package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tractionhq/mobilecore/internal/domain/todo"
	"github.com/tractionhq/mobilecore/internal/gateway"
)

// TodoClient talks to the /eos-core/todos endpoints.
type TodoClient struct {
	gw *gateway.Client
}

// NewTodoClient creates a todo client over the gateway.
func NewTodoClient(gw *gateway.Client) *TodoClient {
	return &TodoClient{gw: gw}
}

// ListTodos fetches a page of todos. ItemPerPage defaults to 50 and Page to 1
// when unset.
func (c *TodoClient) ListTodos(ctx context.Context, params todo.ListParams) (*todo.ListResponse, error) {
	itemPerPage := params.ItemPerPage
	if itemPerPage <= 0 {
		itemPerPage = 50
	}
	page := params.Page
	if page <= 0 {
		page = 1
	}

	query := url.Values{}
	query.Set("getAll", strconv.FormatBool(params.GetAll))
	query.Set("inMeeting", strconv.FormatBool(params.InMeeting))
	query.Set("isArchived", strconv.FormatBool(params.IsArchived))
	query.Set("itemPerPage", strconv.Itoa(itemPerPage))
	query.Set("page", strconv.Itoa(page))
	if params.TeamIDs != "" {
		query.Set("teamIds", params.TeamIDs)
	}

	resp, err := c.gw.Get(ctx, "/eos-core/todos", query)
	if err != nil {
		return nil, ErrNetwork
	}
	if !resp.OK {
		return nil, responseError(resp, "Failed to fetch todos")
	}

	var list todo.ListResponse
	if err := resp.Decode(&list); err != nil {
		return nil, fmt.Errorf("decoding todos: %w", err)
	}
	return &list, nil
}

// GetTodo fetches a single todo.
func (c *TodoClient) GetTodo(ctx context.Context, id string) (*todo.Todo, error) {
	resp, err := c.gw.Get(ctx, "/eos-core/todos/"+id, nil)
	if err != nil {
		return nil, ErrNetwork
	}
	if !resp.OK {
		return nil, responseError(resp, "Failed to fetch todo")
	}

	var t todo.Todo
	if err := resp.Decode(&t); err != nil {
		return nil, fmt.Errorf("decoding todo: %w", err)
	}
	return &t, nil
}

// CreateTodos creates multiple todos in one call.
func (c *TodoClient) CreateTodos(ctx context.Context, inputs []todo.CreateInput) ([]todo.Todo, error) {
	resp, err := c.gw.Post(ctx, "/eos-core/todos/many", inputs)
	if err != nil {
		return nil, ErrNetwork
	}
	if !resp.OK {
		return nil, responseError(resp, "Failed to create todos")
	}

	var todos []todo.Todo
	if err := resp.Decode(&todos); err != nil {
		return nil, fmt.Errorf("decoding todos: %w", err)
	}
	return todos, nil
}

// UpdateTodo applies a partial update to a todo.
func (c *TodoClient) UpdateTodo(ctx context.Context, id string, input todo.UpdateInput) (*todo.Todo, error) {
	resp, err := c.gw.Patch(ctx, "/eos-core/todos/"+id, input)
	if err != nil {
		return nil, ErrNetwork
	}
	if !resp.OK {
		return nil, responseError(resp, "Failed to update todo")
	}

	var t todo.Todo
	if err := resp.Decode(&t); err != nil {
		return nil, fmt.Errorf("decoding todo: %w", err)
	}
	return &t, nil
}

// ToggleStatus is a derived write: it computes the opposite of the current
// status and patches just that field.
func (c *TodoClient) ToggleStatus(ctx context.Context, id string, current todo.Status) (*todo.Todo, error) {
	next := current.Toggle()
	return c.UpdateTodo(ctx, id, todo.UpdateInput{Status: &next})
}
