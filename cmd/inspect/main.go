// Command inspect dumps the inventory tables, a small debugging aid for
// local databases.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cinema-tickets/internal/infra/db"
	"cinema-tickets/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	for _, table := range []string{"events", "showtimes", "tickets"} {
		if err := dumpTable(ctx, pool, table); err != nil {
			slog.Error("failed to dump table", "table", table, "error", err)
			os.Exit(1)
		}
	}
}

func dumpTable(ctx context.Context, pool *pgxpool.Pool, table string) error {
	rows, err := pool.Query(ctx, "SELECT * FROM "+table+" ORDER BY created_at ASC")
	if err != nil {
		return err
	}
	defer rows.Close()

	fmt.Printf("== %s ==\n", table)

	descs := rows.FieldDescriptions()
	count := 0
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return err
		}
		for i, d := range descs {
			if i > 0 {
				fmt.Print("  ")
			}
			fmt.Printf("%s=%v", d.Name, values[i])
		}
		fmt.Println()
		count++
	}
	if rows.Err() != nil {
		return rows.Err()
	}

	fmt.Printf("(%d rows)\n\n", count)
	return nil
}
