package dto

import (
	"time"

	"personstore/internal/domain"
)

type Person struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Age         int        `json:"age"`
	Address     string     `json:"address"`
	PhoneNumber string     `json:"phone_number"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

type PersonList struct {
	Persons []*Person `json:"persons"`
}

// PersonFromDomain maps a stored row to the response shape. DeletedAt is left
// nil regardless of the stored value: no write path populates the column yet
// and the response contract pins the field to null.
func PersonFromDomain(person *domain.Person) *Person {
	if person == nil {
		return nil
	}

	return &Person{
		ID:          person.ID.String(),
		Name:        person.Name,
		Age:         person.Age,
		Address:     person.Address,
		PhoneNumber: person.PhoneNumber,
		CreatedAt:   person.CreatedAt,
		UpdatedAt:   person.UpdatedAt,
	}
}

func PersonsFromDomain(persons []*domain.Person) *PersonList {
	result := make([]*Person, len(persons))
	for i, person := range persons {
		result[i] = PersonFromDomain(person)
	}
	return &PersonList{Persons: result}
}
