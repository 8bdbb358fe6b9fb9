package notes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsp(s string) *time.Time {
	t := ts(s)
	return &t
}

func TestOrderForDisplayTouchedFirst(t *testing.T) {
	ns := []Note{
		{NoteID: "a", UpdatedAt: tsp("2024-01-03T00:00:00Z"), CreatedAt: ts("2024-01-01T10:00:00Z")},
		{NoteID: "b", UpdatedAt: nil, CreatedAt: ts("2024-01-01T11:00:00Z")},
		{NoteID: "c", UpdatedAt: tsp("2024-01-01T00:00:00Z"), CreatedAt: ts("2024-01-01T12:00:00Z")},
	}

	OrderForDisplay(ns)

	var order []string
	for _, n := range ns {
		order = append(order, n.NoteID)
	}
	assert.Equal(t, []string{"a", "c", "b"}, order)
}

func TestOrderForDisplayUntouchedByCreation(t *testing.T) {
	ns := []Note{
		{NoteID: "old", CreatedAt: ts("2024-01-01T00:00:00Z")},
		{NoteID: "new", CreatedAt: ts("2024-01-02T00:00:00Z")},
		{NoteID: "mid", CreatedAt: ts("2024-01-01T12:00:00Z")},
	}

	OrderForDisplay(ns)

	assert.Equal(t, "new", ns[0].NoteID)
	assert.Equal(t, "mid", ns[1].NoteID)
	assert.Equal(t, "old", ns[2].NoteID)
}

func TestOrderForDisplayTouchedTieBreaksOnCreation(t *testing.T) {
	same := tsp("2024-01-05T00:00:00Z")
	ns := []Note{
		{NoteID: "older", UpdatedAt: same, CreatedAt: ts("2024-01-01T00:00:00Z")},
		{NoteID: "newer", UpdatedAt: same, CreatedAt: ts("2024-01-02T00:00:00Z")},
	}

	OrderForDisplay(ns)

	assert.Equal(t, "newer", ns[0].NoteID)
}
