package users

type User struct {
	UserID string `db:"user_id" json:"user_id"`
	Name   string `db:"name" json:"name"`
}

// CountedUser is a user together with the number of notes it owns, as
// produced by the users listing query.
type CountedUser struct {
	UserID     string `db:"user_id" json:"user_id"`
	Name       string `db:"name" json:"name"`
	NotesCount int64  `db:"notes_count" json:"notes_count"`
}
