package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	g "maragu.dev/gomponents"

	"github.com/glennib/htmx-demo/internal/notes"
	"github.com/glennib/htmx-demo/internal/render"
	"github.com/glennib/htmx-demo/internal/users"
)

// NoteStore is what the notes handlers need from the store. *notes.Repo
// satisfies it; tests inject an in-memory fake.
type NoteStore interface {
	VerifyOwner(ctx context.Context, noteID, userID string) (notes.Note, error)
	ListByUser(ctx context.Context, userID string) (users.User, []notes.Note, error)
	Insert(ctx context.Context, userID, title, body string) (notes.Note, error)
	Update(ctx context.Context, noteID, title, body string) (notes.Note, error)
	Toggle(ctx context.Context, noteID string) (notes.Note, error)
	Delete(ctx context.Context, noteID string) error
}

type NotesHandler struct {
	Store NoteStore
}

func NewNotesHandler(store NoteStore) *NotesHandler {
	return &NotesHandler{Store: store}
}

// List renders the full notes page for the path user.
func (h *NotesHandler) List(c *fiber.Ctx) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	u, ns, err := h.Store.ListByUser(c.UserContext(), userID)
	if err != nil {
		return storeError(err)
	}
	return sendFragment(c, render.NotesPage(u, ns))
}

// Show renders one note's row in view mode.
func (h *NotesHandler) Show(c *fiber.Ctx) error {
	userID, noteID, err := pathIDs(c)
	if err != nil {
		return err
	}

	n, err := h.Store.VerifyOwner(c.UserContext(), noteID, userID)
	if err != nil {
		return storeError(err)
	}
	return sendFragment(c, render.NoteRowView(n))
}

// Edit renders one note's row in edit mode, inputs pre-filled.
func (h *NotesHandler) Edit(c *fiber.Ctx) error {
	userID, noteID, err := pathIDs(c)
	if err != nil {
		return err
	}

	n, err := h.Store.VerifyOwner(c.UserContext(), noteID, userID)
	if err != nil {
		return storeError(err)
	}
	return sendFragment(c, render.NoteRowEdit(n))
}

// Create inserts a note for the path user and returns the new row in view
// mode plus a fresh prompt row. Title and body pass through verbatim.
func (h *NotesHandler) Create(c *fiber.Ctx) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	var form notes.NoteForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	n, err := h.Store.Insert(c.UserContext(), userID, form.Title, form.Body)
	if err != nil {
		return storeError(err)
	}
	return sendFragment(c, render.NoteCreated(n))
}

// Update overwrites title and body (last write wins) and returns the updated
// row in view mode.
func (h *NotesHandler) Update(c *fiber.Ctx) error {
	userID, noteID, err := pathIDs(c)
	if err != nil {
		return err
	}

	if _, err := h.Store.VerifyOwner(c.UserContext(), noteID, userID); err != nil {
		return storeError(err)
	}

	var form notes.NoteForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	n, err := h.Store.Update(c.UserContext(), noteID, form.Title, form.Body)
	if err != nil {
		return storeError(err)
	}
	return sendFragment(c, render.NoteRowView(n))
}

// Toggle flips is_done and returns the updated row in view mode.
func (h *NotesHandler) Toggle(c *fiber.Ctx) error {
	userID, noteID, err := pathIDs(c)
	if err != nil {
		return err
	}

	if _, err := h.Store.VerifyOwner(c.UserContext(), noteID, userID); err != nil {
		return storeError(err)
	}

	n, err := h.Store.Toggle(c.UserContext(), noteID)
	if err != nil {
		return storeError(err)
	}
	return sendFragment(c, render.NoteRowView(n))
}

// Delete removes the note and returns an empty success; the client drops the
// row on its side.
func (h *NotesHandler) Delete(c *fiber.Ctx) error {
	userID, noteID, err := pathIDs(c)
	if err != nil {
		return err
	}

	if _, err := h.Store.VerifyOwner(c.UserContext(), noteID, userID); err != nil {
		return storeError(err)
	}

	if err := h.Store.Delete(c.UserContext(), noteID); err != nil {
		return storeError(err)
	}
	// 200 with an empty body; the client removes the row itself.
	return c.SendString("")
}

// NewForm re-serves the create-prompt form row.
func (h *NotesHandler) NewForm(c *fiber.Ctx) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}
	return sendFragment(c, render.NewNoteForm(userID))
}

func pathID(c *fiber.Ctx, name string) (string, error) {
	id := c.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func pathIDs(c *fiber.Ctx) (userID, noteID string, err error) {
	if userID, err = pathID(c, "user_id"); err != nil {
		return "", "", err
	}
	if noteID, err = pathID(c, "note_id"); err != nil {
		return "", "", err
	}
	return userID, noteID, nil
}

// storeError maps store results to statuses: missing rows are the caller's
// fault, ownership mismatches are forbidden, anything else fails the request.
func storeError(err error) error {
	switch {
	case errors.Is(err, notes.ErrNoteNotFound), errors.Is(err, notes.ErrUserNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, notes.ErrNotOwner):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "store failure")
	}
}

func sendFragment(c *fiber.Ctx, node g.Node) error {
	body, err := render.String(node)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "render failure")
	}
	c.Type("html", "utf-8")
	return c.SendString(body)
}
