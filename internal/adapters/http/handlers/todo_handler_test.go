package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todo-service/internal/domain"
	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-service/mocks"
)

func newTodoHandler(t *testing.T) (*handlers.TodoHandler, *mocks.MockTodoService) {
	t.Helper()
	svc := mocks.NewMockTodoService(t)
	return handlers.NewTodoHandler(svc), svc
}

// --- CreateTodo ---

func TestCreateTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	created := validTodo()
	svc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(td *todo.Todo) bool {
		return td.Title == "Buy groceries" && td.Priority == todo.PriorityMedium &&
			!td.Completed && len(td.Tags) == 0
	})).Return(&created, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/todos", bytes.NewBufferString(`{"title":"Buy groceries"}`))
	req.Header.Set("Content-Type", "application/json")
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TodoResponse](t, rec)
	if resp.ID != testID {
		t.Errorf("ID = %q, want %q", resp.ID, testID)
	}
	if resp.Priority != "medium" || resp.Completed || resp.Tags == nil {
		t.Errorf("response = %+v, want creation defaults", resp)
	}
}

func TestCreateTodo_InvalidJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed", body: "{bad"},
		{name: "wrong type", body: `{"title":42}`},
		{name: "array body", body: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newTodoHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/todos", bytes.NewBufferString(tt.body))
			h.CreateTodo(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
			requireErrorMessage(t, rec, "Invalid JSON body")
		})
	}
}

func TestCreateTodo_BodyTooLarge(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	body := `{"title":"` + strings.Repeat("a", 2<<20) + `"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/todos", strings.NewReader(body))
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusRequestEntityTooLarge)
	requireErrorMessage(t, rec, "Request body too large")
}

func TestCreateTodo_EmptyBodyReachesValidation(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().Create(mock.Anything, mock.AnythingOfType("*todo.Todo")).
		Return(nil, domain.NewValidationError("title", "title is required"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/todos", http.NoBody)
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	requireErrorMessage(t, rec, "title is required")
}

func TestCreateTodo_BadDueDateSkipsService(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/todos",
		bytes.NewBufferString(`{"title":"Valid title","dueDate":"tomorrow"}`))
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	requireErrorMessage(t, rec, `dueDate must be a valid date (got "tomorrow")`)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// --- ListTodos ---

func TestListTodos_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	q := todo.ListQuery{Page: 2, Limit: 5, Skip: 5}
	page := todo.NewPage([]todo.Todo{validTodo()}, q, 15)
	svc.EXPECT().List(mock.Anything, q).Return(page, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/todos?page=2&limit=5", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoListResponse](t, rec)
	if len(resp.Data) != 1 {
		t.Errorf("len(Data) = %d, want 1", len(resp.Data))
	}
	want := dto.MetaResponse{Total: 15, Page: 2, Limit: 5, Pages: 3}
	if resp.Meta != want {
		t.Errorf("Meta = %+v, want %+v", resp.Meta, want)
	}
}

func TestListTodos_WithFilters(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().List(mock.Anything, mock.MatchedBy(func(q todo.ListQuery) bool {
		return q.Filter.Completed != nil && !*q.Filter.Completed &&
			q.Filter.Priority == todo.PriorityHigh && q.Filter.Search == "milk"
	})).Return(todo.NewPage(nil, todo.DefaultListQuery(), 0), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/todos?completed=false&priority=high&search=milk", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if body := rec.Body.String(); !strings.Contains(body, `"data":[]`) {
		t.Errorf("body = %s, want empty data array", body)
	}
}

func TestListTodos_InvalidPaging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query   string
		message string
	}{
		{query: "page=0", message: "page must be a positive integer"},
		{query: "page=abc", message: "page must be a positive integer"},
		{query: "limit=-1", message: "limit must be a positive integer"},
		{query: "limit=101", message: "limit must be at most 100"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			h, _ := newTodoHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/todos?"+tt.query, nil)
			h.ListTodos(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
			requireErrorMessage(t, rec, tt.message)
		})
	}
}

func TestListTodos_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().List(mock.Anything, todo.DefaultListQuery()).
		Return(nil, fmt.Errorf("count todos: %w", domain.ErrUnavailable))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
}

// --- GetTodo ---

func TestGetTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	td := validTodo()
	svc.EXPECT().Get(mock.Anything, testID).Return(&td, nil)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodGet, "/api/todos/"+testID, nil))
	h.GetTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoResponse](t, rec)
	if resp.ID != testID {
		t.Errorf("ID = %q, want %q", resp.ID, testID)
	}
}

func TestGetTodo_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "not found", err: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantMsg: "Todo not found"},
		{name: "store invalid id", err: domain.ErrInvalidID, wantStatus: http.StatusBadRequest, wantMsg: "Invalid id format"},
		{name: "unavailable", err: domain.ErrUnavailable, wantStatus: http.StatusServiceUnavailable, wantMsg: "Service temporarily unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTodoHandler(t)

			svc.EXPECT().Get(mock.Anything, testID).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			req := withID(httptest.NewRequest(http.MethodGet, "/api/todos/"+testID, nil))
			h.GetTodo(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			requireErrorMessage(t, rec, tt.wantMsg)
		})
	}
}

// --- UpdateTodo ---

func TestUpdateTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	updated := validTodo()
	updated.Title = testUpdatedValue
	svc.EXPECT().Update(mock.Anything, testID, mock.MatchedBy(func(p todo.Patch) bool {
		return p.Title != nil && *p.Title == testUpdatedValue && p.Completed == nil
	})).Return(&updated, nil)

	title := testUpdatedValue
	body := jsonBody(t, dto.UpdateTodoRequest{Title: &title})
	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodPatch, "/api/todos/"+testID, body))
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoResponse](t, rec)
	if resp.Title != testUpdatedValue {
		t.Errorf("Title = %q, want %q", resp.Title, testUpdatedValue)
	}
}

func TestUpdateTodo_EmptyPatch(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	td := validTodo()
	svc.EXPECT().Update(mock.Anything, testID, todo.Patch{}).Return(&td, nil)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodPatch, "/api/todos/"+testID, bytes.NewBufferString("{}")))
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestUpdateTodo_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodPatch, "/api/todos/"+testID, bytes.NewBufferString("{bad")))
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	requireErrorMessage(t, rec, "Invalid JSON body")
}

func TestUpdateTodo_ValidationError(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	verr := &domain.ValidationError{}
	verr.Add("title", "title must be at least 3 characters")
	verr.Add("priority", `priority must be one of: low, medium, high (got "urgent")`)
	svc.EXPECT().Update(mock.Anything, testID, mock.AnythingOfType("todo.Patch")).Return(nil, verr)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodPatch, "/api/todos/"+testID,
		bytes.NewBufferString(`{"title":"ab","priority":"urgent"}`)))
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	requireErrorMessage(t, rec,
		`title must be at least 3 characters, priority must be one of: low, medium, high (got "urgent")`)
}

// --- ToggleTodo ---

func TestToggleTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	toggled := validTodo()
	toggled.Completed = true
	svc.EXPECT().Toggle(mock.Anything, testID).Return(&toggled, nil)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodPatch, "/api/todos/"+testID+"/toggle", nil))
	h.ToggleTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoResponse](t, rec)
	if !resp.Completed {
		t.Error("Completed = false, want true")
	}
}

func TestToggleTodo_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().Toggle(mock.Anything, testID).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodPatch, "/api/todos/"+testID+"/toggle", nil))
	h.ToggleTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
	requireErrorMessage(t, rec, "Todo not found")
}

// --- DeleteTodo ---

func TestDeleteTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().Delete(mock.Anything, testID).Return(nil)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodDelete, "/api/todos/"+testID, nil))
	h.DeleteTodo(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestDeleteTodo_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().Delete(mock.Anything, testID).Return(fmt.Errorf("delete todo: %w", domain.ErrNotFound))

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodDelete, "/api/todos/"+testID, nil))
	h.DeleteTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
	requireErrorMessage(t, rec, "Todo not found")
}
