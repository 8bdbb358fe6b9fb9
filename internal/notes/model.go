package notes

import "time"

// Note belongs to exactly one user for its whole lifetime. UpdatedAt is nil
// until the first edit or toggle, then set on every mutation.
type Note struct {
	NoteID    string     `db:"note_id" json:"note_id"`
	UserID    string     `db:"user_id" json:"user_id"`
	Title     string     `db:"title" json:"title"`
	Body      string     `db:"body" json:"body"`
	IsDone    bool       `db:"is_done" json:"is_done"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// NoteForm carries the editable fields of a note. Title and body are stored
// verbatim: no trimming, no length or emptiness checks.
type NoteForm struct {
	Title string `form:"title"`
	Body  string `form:"body"`
}
