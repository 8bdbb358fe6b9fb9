// Command load seeds the database with random fixture data: fake-named users
// and lorem notes spread over randomly chosen users.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "load",
		Short: "Load random data into the database",
	}
	rootCmd.AddCommand(usersCmd(), notesCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users [count]",
		Short: "Load random users into the database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := countArg(args, 1)
			if err != nil {
				return err
			}

			pool, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			batch := &pgx.Batch{}
			for i := 0; i < count; i++ {
				name := gofakeit.Name()
				fmt.Println("New user:", name)
				batch.Queue(`INSERT INTO users (name) VALUES ($1)`, name)
			}
			if err := sendBatch(cmd.Context(), pool, batch); err != nil {
				return err
			}

			fmt.Printf("Loaded %d new users\n", count)
			return nil
		},
	}
}

func notesCmd() *cobra.Command {
	var maxUsers int
	cmd := &cobra.Command{
		Use:   "notes [count]",
		Short: "Load random notes into the database, count notes per user",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := countArg(args, 5)
			if err != nil {
				return err
			}

			pool, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			userIDs, err := pickUsers(cmd.Context(), pool, maxUsers)
			if err != nil {
				return err
			}

			batch := &pgx.Batch{}
			for _, userID := range userIDs {
				for i := 0; i < count; i++ {
					title := gofakeit.LoremIpsumSentence(gofakeit.Number(1, 4))
					body := gofakeit.LoremIpsumSentence(gofakeit.Number(5, 20))
					batch.Queue(
						`INSERT INTO notes (user_id, title, body) VALUES ($1::uuid, $2, $3)`,
						userID, title, body,
					)
				}
			}
			if err := sendBatch(cmd.Context(), pool, batch); err != nil {
				return err
			}

			fmt.Printf("Loaded %d new notes (%d notes each for %d users)\n",
				count*len(userIDs), count, len(userIDs))
			return nil
		},
	}
	cmd.Flags().IntVar(&maxUsers, "max-users", 50,
		"maximum number of users to load notes for (selected randomly)")
	return cmd
}

func countArg(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	count, err := strconv.Atoi(args[0])
	if err != nil || count < 0 {
		return 0, fmt.Errorf("invalid count %q", args[0])
	}
	return count, nil
}

func connect(ctx context.Context) (*pgxpool.Pool, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	return pgxpool.New(ctx, dsn)
}

func pickUsers(ctx context.Context, pool *pgxpool.Pool, maxUsers int) ([]string, error) {
	rows, err := pool.Query(ctx, `SELECT user_id::text FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	if len(ids) > maxUsers {
		ids = ids[:maxUsers]
	}
	return ids, nil
}

func sendBatch(ctx context.Context, pool *pgxpool.Pool, batch *pgx.Batch) error {
	results := pool.SendBatch(ctx, batch)
	defer results.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return results.Close()
}
