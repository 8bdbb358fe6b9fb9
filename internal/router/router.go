package router

import (
	"github.com/gofiber/fiber/v2"

	handlers "github.com/glennib/htmx-demo/internal/http"
)

type Router struct {
	NotesHandler *handlers.NotesHandler
	UsersHandler *handlers.UsersHandler
	StaticDir    string
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/users", fiber.StatusMovedPermanently)
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	app.Get("/users", r.UsersHandler.List)

	// Matches with and without trailing slash (non-strict routing).
	app.Get("/users/:user_id", func(c *fiber.Ctx) error {
		return c.Redirect("/users/"+c.Params("user_id")+"/notes", fiber.StatusMovedPermanently)
	})

	app.Get("/users/:user_id/notes", r.NotesHandler.List)
	app.Post("/users/:user_id/notes", r.NotesHandler.Create)
	// Registered before the :note_id routes so "new" is not taken for an id.
	app.Get("/users/:user_id/notes/new", r.NotesHandler.NewForm)
	app.Get("/users/:user_id/notes/:note_id", r.NotesHandler.Show)
	app.Put("/users/:user_id/notes/:note_id", r.NotesHandler.Update)
	app.Delete("/users/:user_id/notes/:note_id", r.NotesHandler.Delete)
	app.Get("/users/:user_id/notes/:note_id/edit", r.NotesHandler.Edit)
	app.Put("/users/:user_id/notes/:note_id/toggle", r.NotesHandler.Toggle)

	staticDir := r.StaticDir
	if staticDir == "" {
		staticDir = "./static"
	}
	app.Static("/static", staticDir)
}
