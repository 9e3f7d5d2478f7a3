package generator

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"personstore/internal/domain"
)

const (
	MinAge = 18
	MaxAge = 99
)

// Person builds a fully populated synthetic record. Both timestamps are drawn
// independently from the past year, so updated_at may precede created_at.
func Person() *domain.Person {
	now := time.Now()
	yearAgo := now.AddDate(-1, 0, 0)

	person := &domain.Person{
		Name:        gofakeit.Name(),
		Age:         gofakeit.Number(MinAge, MaxAge),
		Address:     gofakeit.Address().Address,
		PhoneNumber: gofakeit.Phone(),
	}
	person.ID = uuid.New()
	person.CreatedAt = gofakeit.DateRange(yearAgo, now)
	person.UpdatedAt = gofakeit.DateRange(yearAgo, now)

	return person
}
