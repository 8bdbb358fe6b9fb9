package users

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

// ListWithCounts returns every user with the number of notes it owns, most
// notes first. The left join keeps zero-note users in the result with a
// count of 0.
func (r *Repo) ListWithCounts(ctx context.Context) ([]CountedUser, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT u.user_id::text, u.name, COUNT(n.note_id) AS notes_count
		 FROM users u
		 LEFT JOIN notes n ON n.user_id = u.user_id
		 GROUP BY u.user_id, u.name
		 ORDER BY COUNT(n.note_id) DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CountedUser
	for rows.Next() {
		var u CountedUser
		if err := rows.Scan(&u.UserID, &u.Name, &u.NotesCount); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
