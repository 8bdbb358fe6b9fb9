package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/glennib/htmx-demo/internal/render"
	"github.com/glennib/htmx-demo/internal/users"
)

type UserStore interface {
	ListWithCounts(ctx context.Context) ([]users.CountedUser, error)
}

type UsersHandler struct {
	Store UserStore
}

func NewUsersHandler(store UserStore) *UsersHandler {
	return &UsersHandler{Store: store}
}

// List renders the users page with per-user note counts and overall totals.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	rows, err := h.Store.ListWithCounts(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "store failure")
	}
	return sendFragment(c, render.UsersPage(rows))
}
