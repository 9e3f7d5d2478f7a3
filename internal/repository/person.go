package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"personstore/internal/domain"
)

var (
	ErrPersonNotFound = errors.New("person not found")
	ErrPersonExists   = errors.New("person already exists")
)

type PersonRepository struct {
	db ExtHandle
}

func NewPersonRepository(db ExtHandle) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) Create(person *domain.Person) error {
	query := `
		INSERT INTO persons (
			id, name, age, address, phone_number, created_at, updated_at, deleted_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := r.db.Exec(query,
		person.ID, person.Name, person.Age, person.Address, person.PhoneNumber,
		person.CreatedAt, person.UpdatedAt, person.DeletedAt,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrPersonExists
		}
		return err
	}
	return nil
}

func (r *PersonRepository) FindByID(id uuid.UUID) (*domain.Person, error) {
	query := `
		SELECT id, created_at, updated_at, deleted_at, name, age, address, phone_number
		FROM persons
		WHERE id = $1
	`

	person := &domain.Person{}
	err := r.db.Get(person, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}

	return person, nil
}

// FindAll returns every stored row in storage order. An empty table yields
// an empty slice, not an error.
func (r *PersonRepository) FindAll() ([]*domain.Person, error) {
	query := `
		SELECT id, created_at, updated_at, deleted_at, name, age, address, phone_number
		FROM persons
	`

	persons := []*domain.Person{}
	err := r.db.Select(&persons, query)
	if err != nil {
		return nil, err
	}

	return persons, nil
}

func (r *PersonRepository) Count() (int, error) {
	count := 0
	err := r.db.Get(&count, `SELECT COUNT(*) FROM persons`)
	return count, err
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "23505") ||
		strings.Contains(errStr, "unique constraint") ||
		strings.Contains(errStr, "duplicate key")
}
