package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultListLimit caps ListPeople when no limit is given.
const DefaultListLimit = 20

// Person is a stored form submission.
type Person struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LastName  string    `json:"lastName"`
	Age       int       `json:"age"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store persists people in sqlite.
type Store struct {
	db *sql.DB
}

// New wraps an open, migrated database.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens the database at path and applies migrations.
func Open(path string) (*Store, error) {
	db, err := OpenDB(path)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return New(db), nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreatePerson inserts p, assigning an id and creation time.
func (s *Store) CreatePerson(ctx context.Context, p Person) (Person, error) {
	p.ID = uuid.NewString()
	p.CreatedAt = Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO people (id, name, last_name, age, city, country, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.LastName, p.Age, p.City, p.Country, p.CreatedAt,
	)
	if err != nil {
		return Person{}, fmt.Errorf("store: insert person: %w", err)
	}
	return p, nil
}

// ListPeople returns the most recent submissions first.
func (s *Store) ListPeople(ctx context.Context, limit int) ([]Person, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, last_name, age, city, country, created_at
		FROM people
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list people: %w", err)
	}
	defer rows.Close()

	var out []Person
	for rows.Next() {
		var p Person
		if err := rows.Scan(&p.ID, &p.Name, &p.LastName, &p.Age, &p.City, &p.Country, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: scan person: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list people: %w", err)
	}
	return out, nil
}

// CountPeople returns the number of stored submissions.
func (s *Store) CountPeople(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM people`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count people: %w", err)
	}
	return n, nil
}
