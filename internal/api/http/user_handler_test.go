package http

import (
	"net/http"
	"testing"

	"libtrack-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_List(t *testing.T) {
	f := newAPIFixture()
	f.members.On("ListUsersWithOpenCheckouts", mock.Anything).Return([]domain.UserWithOpenCount{
		{User: domain.User{ID: 7, Name: "John Doe", Email: "john.doe@example.com", Status: domain.UserStatusActive}, BooksBorrowed: 2},
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	users := got["users"].([]any)
	require.Len(t, users, 1)
	assert.Equal(t, float64(2), users[0].(map[string]any)["books_borrowed"])
}

func TestUserHandler_Get(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		f := newAPIFixture()
		f.members.On("GetUser", mock.Anything, int32(7)).
			Return(&domain.User{ID: 7, Name: "John Doe"}, nil)

		rec := f.do(t, http.MethodGet, "/api/users/7", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		f := newAPIFixture()
		f.members.On("GetUser", mock.Anything, int32(99)).
			Return(nil, domain.ErrUserNotFound)

		rec := f.do(t, http.MethodGet, "/api/users/99", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUserHandler_Add(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		f := newAPIFixture()
		f.members.On("AddUser", mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				u := args.Get(1).(*domain.User)
				u.ID = 7
				u.Status = domain.UserStatusActive
			}).Return(nil)

		rec := f.do(t, http.MethodPost, "/api/users", map[string]any{
			"name":  "John Doe",
			"email": "john.doe@example.com",
			"phone": "555-0100",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		got := decodeBody(t, rec)
		user := got["user"].(map[string]any)
		assert.Equal(t, float64(7), user["id"])
		assert.Equal(t, "ACTIVE", user["status"])
	})

	t.Run("Invalid Email", func(t *testing.T) {
		f := newAPIFixture()

		rec := f.do(t, http.MethodPost, "/api/users", map[string]any{
			"name":  "John Doe",
			"email": "not-an-email",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.members.AssertNotCalled(t, "AddUser")
	})
}

func TestUserHandler_UpdateStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newAPIFixture()
		f.members.On("UpdateUserStatus", mock.Anything, int32(7), domain.UserStatusSuspended).Return(nil)

		rec := f.do(t, http.MethodPut, "/api/users/7/status", map[string]any{"status": "SUSPENDED"})

		assert.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody(t, rec)
		assert.Equal(t, true, got["success"])
	})

	t.Run("Not Found", func(t *testing.T) {
		f := newAPIFixture()
		f.members.On("UpdateUserStatus", mock.Anything, int32(99), domain.UserStatusInactive).
			Return(domain.ErrUserNotFound)

		rec := f.do(t, http.MethodPut, "/api/users/99/status", map[string]any{"status": "INACTIVE"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Unknown Status", func(t *testing.T) {
		f := newAPIFixture()

		rec := f.do(t, http.MethodPut, "/api/users/7/status", map[string]any{"status": "BANNED"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.members.AssertNotCalled(t, "UpdateUserStatus")
	})
}

func TestUserHandler_Checkouts(t *testing.T) {
	f := newAPIFixture()
	returned := "2024-03-10T12:00:00Z"
	f.members.On("UserCheckouts", mock.Anything, int32(7)).Return(
		[]domain.CheckoutWithBook{
			{Checkout: domain.Checkout{ID: 2, BookID: 1, UserID: 7}, BookTitle: "Dune", BookAuthor: "Frank Herbert"},
		},
		[]domain.CheckoutWithBook{
			{Checkout: domain.Checkout{ID: 1, BookID: 3, UserID: 7, ReturnDate: &returned}, BookTitle: "Project Hail Mary", BookAuthor: "Andy Weir"},
		},
		nil,
	)

	rec := f.do(t, http.MethodGet, "/api/users/7/checkouts", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	require.Len(t, got["active_checkouts"].([]any), 1)
	require.Len(t, got["checkout_history"].([]any), 1)
	assert.Equal(t, "Dune", got["active_checkouts"].([]any)[0].(map[string]any)["book_title"])
}
