// Package storage persists guild membership and karma scores in SQLite.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hatysa/internal/command"

	_ "modernc.org/sqlite"
)

// Guild IDs are 64-bit unsigned snowflakes stored as text, since SQLite
// integers are signed and cannot hold the full unsigned range.
const schema = `
CREATE TABLE IF NOT EXISTS guild (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS karma (
	guild_id TEXT    NOT NULL,
	subject  TEXT    NOT NULL,
	score    INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (guild_id, subject)
);
`

type Storage struct {
	db *sql.DB
}

// New opens (creating if necessary) the SQLite database at path and ensures
// the schema exists.
func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// GuildRecord is one row of the guild table.
type GuildRecord struct {
	ID   string
	Name string
}

// UpsertGuild inserts the guild or, if the ID already exists, updates its
// name in place. The ID is immutable once created.
func (s *Storage) UpsertGuild(ctx context.Context, id, name string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO guild (id, name) VALUES (?, ?)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name
	`, id, name)
	if err != nil {
		return fmt.Errorf("upsert guild %s: %w", id, err)
	}
	return nil
}

// Guild returns the record for the given ID, or nil if the bot has never
// joined that guild.
func (s *Storage) Guild(ctx context.Context, id string) (*GuildRecord, error) {
	var g GuildRecord
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM guild WHERE id = ?`, id).Scan(&g.ID, &g.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select guild %s: %w", id, err)
	}
	return &g, nil
}

// Guilds returns every guild the bot has joined.
func (s *Storage) Guilds(ctx context.Context) ([]GuildRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM guild ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select guilds: %w", err)
	}
	defer rows.Close()

	var guilds []GuildRecord
	for rows.Next() {
		var g GuildRecord
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scan guild: %w", err)
		}
		guilds = append(guilds, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate guilds: %w", err)
	}
	return guilds, nil
}

// AdjustKarma adds delta to the subject's score in the given guild, creating
// the row if needed, and returns the new score.
func (s *Storage) AdjustKarma(ctx context.Context, guildID, subject string, delta int64) (int64, error) {
	var score int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO karma (guild_id, subject, score) VALUES (?, ?, ?)
		ON CONFLICT (guild_id, subject) DO UPDATE SET score = score + excluded.score
		RETURNING score
	`, guildID, subject, delta).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("adjust karma for %s in %s: %w", subject, guildID, err)
	}
	return score, nil
}

// Karma returns the subject's score in the given guild; unseen subjects have
// a score of zero.
func (s *Storage) Karma(ctx context.Context, guildID, subject string) (int64, error) {
	var score int64
	err := s.db.QueryRowContext(ctx, `
		SELECT score FROM karma WHERE guild_id = ? AND subject = ?
	`, guildID, subject).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("select karma for %s in %s: %w", subject, guildID, err)
	}
	return score, nil
}

// TopKarma returns up to n subjects in the guild ordered by descending score.
func (s *Storage) TopKarma(ctx context.Context, guildID string, n int) ([]command.KarmaEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT subject, score FROM karma
		WHERE guild_id = ?
		ORDER BY score DESC, subject ASC
		LIMIT ?
	`, guildID, n)
	if err != nil {
		return nil, fmt.Errorf("select top karma in %s: %w", guildID, err)
	}
	defer rows.Close()

	var entries []command.KarmaEntry
	for rows.Next() {
		var e command.KarmaEntry
		if err := rows.Scan(&e.Subject, &e.Score); err != nil {
			return nil, fmt.Errorf("scan karma entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate karma entries: %w", err)
	}
	return entries, nil
}
