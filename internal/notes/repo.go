package notes

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glennib/htmx-demo/internal/users"
)

var ErrNoteNotFound = errors.New("note not found")
var ErrUserNotFound = errors.New("user not found")
var ErrNotOwner = errors.New("note does not belong to user")

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

const noteColumns = `n.note_id::text, n.user_id::text, n.title, n.body, n.is_done, n.created_at, n.updated_at`

// VerifyOwner loads the note together with its owning user and fails unless
// the owner matches userID. Every handler that receives both a user id and a
// note id must go through this before reading or mutating note data.
func (r *Repo) VerifyOwner(ctx context.Context, noteID, userID string) (Note, error) {
	var n Note
	var ownerID string
	err := r.Pool.QueryRow(ctx,
		`SELECT `+noteColumns+`, u.user_id::text
		 FROM notes n
		 JOIN users u ON u.user_id = n.user_id
		 WHERE n.note_id = $1::uuid`,
		noteID,
	).Scan(&n.NoteID, &n.UserID, &n.Title, &n.Body, &n.IsDone, &n.CreatedAt, &n.UpdatedAt, &ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return Note{}, ErrNoteNotFound
	}
	if err != nil {
		return Note{}, err
	}
	if ownerID != userID {
		return Note{}, ErrNotOwner
	}
	return n, nil
}

// ListByUser returns the user and its notes in display order: most-recently
// touched first, never-touched notes after touched ones by recency of
// creation. Null placement is handled by the store so the table is never
// sorted in memory.
func (r *Repo) ListByUser(ctx context.Context, userID string) (users.User, []Note, error) {
	var u users.User
	err := r.Pool.QueryRow(ctx,
		`SELECT user_id::text, name FROM users WHERE user_id = $1::uuid`,
		userID,
	).Scan(&u.UserID, &u.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return users.User{}, nil, ErrUserNotFound
	}
	if err != nil {
		return users.User{}, nil, err
	}

	rows, err := r.Pool.Query(ctx,
		`SELECT `+noteColumns+`
		 FROM notes n
		 WHERE n.user_id = $1::uuid
		 ORDER BY n.updated_at DESC NULLS LAST, n.created_at DESC`,
		userID,
	)
	if err != nil {
		return users.User{}, nil, err
	}
	defer rows.Close()

	var ns []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.NoteID, &n.UserID, &n.Title, &n.Body, &n.IsDone, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return users.User{}, nil, err
		}
		ns = append(ns, n)
	}
	return u, ns, rows.Err()
}

// Insert creates a note for userID with is_done false and no updated_at; id
// and created_at come from the store defaults.
func (r *Repo) Insert(ctx context.Context, userID, title, body string) (Note, error) {
	var n Note
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO notes (user_id, title, body)
		 VALUES ($1::uuid, $2, $3)
		 RETURNING `+returningColumns,
		userID, title, body,
	).Scan(&n.NoteID, &n.UserID, &n.Title, &n.Body, &n.IsDone, &n.CreatedAt, &n.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
		return Note{}, ErrUserNotFound
	}
	if err != nil {
		return Note{}, err
	}
	return n, nil
}

const returningColumns = `note_id::text, user_id::text, title, body, is_done, created_at, updated_at`

// Update overwrites title and body and stamps updated_at with the store
// clock. Last write wins; there is no concurrency token.
func (r *Repo) Update(ctx context.Context, noteID, title, body string) (Note, error) {
	var n Note
	err := r.Pool.QueryRow(ctx,
		`UPDATE notes
		 SET title = $2, body = $3, updated_at = now()
		 WHERE note_id = $1::uuid
		 RETURNING `+returningColumns,
		noteID, title, body,
	).Scan(&n.NoteID, &n.UserID, &n.Title, &n.Body, &n.IsDone, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Note{}, ErrNoteNotFound
	}
	if err != nil {
		return Note{}, err
	}
	return n, nil
}

// Toggle flips is_done and stamps updated_at.
func (r *Repo) Toggle(ctx context.Context, noteID string) (Note, error) {
	var n Note
	err := r.Pool.QueryRow(ctx,
		`UPDATE notes
		 SET is_done = NOT is_done, updated_at = now()
		 WHERE note_id = $1::uuid
		 RETURNING `+returningColumns,
		noteID,
	).Scan(&n.NoteID, &n.UserID, &n.Title, &n.Body, &n.IsDone, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Note{}, ErrNoteNotFound
	}
	if err != nil {
		return Note{}, err
	}
	return n, nil
}

// Delete removes the note permanently.
func (r *Repo) Delete(ctx context.Context, noteID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM notes WHERE note_id = $1::uuid`, noteID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoteNotFound
	}
	return nil
}
