// Package render builds the HTML pages and row fragments the client swaps in
// place. Every function is pure: data in, markup out, no store access. The
// row fragments are a contract with the htmx swap targets ("closest tr"), so
// their shape is locked down by golden tests.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/glennib/htmx-demo/internal/notes"
	"github.com/glennib/htmx-demo/internal/users"
)

const glyphDone = "☑"
const glyphUndone = "☐"

// String renders a node to a string for the response body.
func String(n g.Node) (string, error) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// UsersPage lists all users with their note counts (already ordered by count
// descending) and locale-formatted aggregate totals.
func UsersPage(rows []users.CountedUser) g.Node {
	var totalNotes int64
	for _, u := range rows {
		totalNotes += u.NotesCount
	}
	p := message.NewPrinter(language.English)

	return base("Users -- TODO app", []string{"htmx.js", "reload.js"},
		H1(g.Text("Users")),
		P(
			g.Text("Total notes: "),
			g.Text(p.Sprintf("%d", totalNotes)),
			g.Text("."),
			g.Text("Total users: "),
			g.Text(p.Sprintf("%d", len(rows))),
			g.Text("."),
		),
		Table(
			THead(Tr(
				Th(g.Text("User ID")),
				Th(g.Text("Name")),
				Th(),
			)),
			TBody(
				g.Map(rows, func(u users.CountedUser) g.Node {
					return Tr(
						Td(Pre(g.Text(u.UserID))),
						Td(g.Text(u.Name)),
						Td(A(
							Href(fmt.Sprintf("/users/%s/notes", u.UserID)),
							g.Text(p.Sprintf("View notes (%d)", u.NotesCount)),
						)),
					)
				}),
			),
		),
	)
}

// NotesPage renders the full notes page for one user. The notes must already
// be in display order; the tbody carries the swap target for all row
// fragments and ends with the new-note prompt row.
func NotesPage(u users.User, ns []notes.Note) g.Node {
	return base(u.Name+" -- TODO app", []string{"htmx.js"},
		H1(g.Text("Notes for "), g.Text(u.Name)),
		P(g.Textf("Total notes: %d", len(ns))),
		Table(
			THead(Tr(
				Th(Style("width: 25%;"), g.Text("Title")),
				Th(Style("width: 25%;"), g.Text("Body")),
				Th(Style("width: 25%;"), g.Text("Completed")),
				Th(Style("width: 25%;")),
			)),
			TBody(
				hx.Target("closest tr"),
				hx.Swap("outerHTML"),
				g.Map(ns, NoteRowView),
				NewNoteButton(u.UserID),
			),
		),
	)
}

// NoteRowView is the read-only rendering of a note row.
func NoteRowView(n notes.Note) g.Node {
	return Tr(
		Td(g.Text(n.Title)),
		Td(g.Text(n.Body)),
		Td(Button(
			hx.Put(fmt.Sprintf("/users/%s/notes/%s/toggle", n.UserID, n.NoteID)),
			g.Text(glyph(n.IsDone)),
		)),
		Td(
			Button(
				hx.Get(fmt.Sprintf("/users/%s/notes/%s/edit", n.UserID, n.NoteID)),
				g.Text("Edit"),
			),
			Button(
				hx.Delete(fmt.Sprintf("/users/%s/notes/%s", n.UserID, n.NoteID)),
				g.Text("Delete"),
			),
		),
	)
}

// NoteRowEdit is the inline-edit rendering: inputs pre-filled with the
// current title and body, saving on Enter or the Save button, cancelling back
// to the view row without persisting.
func NoteRowEdit(n notes.Note) g.Node {
	noteURL := fmt.Sprintf("/users/%s/notes/%s", n.UserID, n.NoteID)
	return Tr(
		Td(Input(
			Name("title"),
			hx.Put(noteURL),
			hx.Include("closest tr"),
			hx.Trigger("keyup[key=='Enter']"),
			Value(n.Title),
		)),
		Td(Input(
			Name("body"),
			hx.Put(noteURL),
			hx.Include("closest tr"),
			hx.Trigger("keyup[key=='Enter']"),
			Value(n.Body),
		)),
		Td(g.Text(glyph(n.IsDone))),
		Td(
			Button(
				hx.Get(noteURL),
				g.Text("Cancel"),
			),
			Button(
				hx.Put(noteURL),
				hx.Include("closest tr"),
				g.Text("Save"),
			),
		),
	)
}

// NewNoteButton is the trailing prompt row that fetches the create form.
func NewNoteButton(userID string) g.Node {
	return Tr(
		Td(
			ColSpan("4"),
			Button(
				hx.Get(fmt.Sprintf("/users/%s/notes/new", userID)),
				g.Text("New"),
			),
		),
	)
}

// NewNoteForm is the create row: two empty inputs posting to the create
// endpoint, on Enter or Save, matching the edit row's interaction contract.
func NewNoteForm(userID string) g.Node {
	postURL := fmt.Sprintf("/users/%s/notes", userID)
	return Tr(
		Td(
			ColSpan("3"),
			Input(
				Name("title"),
				AutoFocus(),
				Placeholder("note title"),
				hx.Post(postURL),
				hx.Include("closest tr"),
				hx.Trigger("keyup[key=='Enter']"),
			),
			Input(
				Name("body"),
				Placeholder("note body"),
				hx.Post(postURL),
				hx.Include("closest tr"),
				hx.Trigger("keyup[key=='Enter']"),
			),
		),
		Td(Button(
			hx.Post(postURL),
			hx.Include("closest tr"),
			g.Text("Save"),
		)),
	)
}

// NoteCreated is the create response: the new row in view mode followed by a
// fresh prompt row so the creation affordance stays available.
func NoteCreated(n notes.Note) g.Node {
	return g.Group{NoteRowView(n), NewNoteButton(n.UserID)}
}

func glyph(done bool) string {
	if done {
		return glyphDone
	}
	return glyphUndone
}

func base(title string, scripts []string, main ...g.Node) g.Node {
	head := []g.Node{
		Link(Rel("stylesheet"), Href("/static/pico.css")),
		Link(Rel("stylesheet"), Href("/static/style.css")),
		Link(Rel("icon"), Type("image/x-icon"), Href("/static/favicon.ico")),
	}
	for _, s := range scripts {
		head = append(head, Script(Src("/static/"+s)))
	}
	return c.HTML5(c.HTML5Props{
		Title:    title,
		Language: "en",
		Head:     head,
		Body: []g.Node{
			Main(
				append([]g.Node{
					Nav(Ul(Li(A(Href("/users"), g.Text("Home"))))),
				}, main...)...,
			),
		},
	})
}
