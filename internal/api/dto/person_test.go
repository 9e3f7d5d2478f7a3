package dto

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personstore/internal/domain"
)

func TestPersonFromDomain_ForcesNullDeletedAt(t *testing.T) {
	person := &domain.Person{
		Name:        "Mapped Person",
		Age:         30,
		Address:     "2 Mapping Lane",
		PhoneNumber: "+7 900 111-22-33",
	}
	person.ID = uuid.New()
	person.CreatedAt = time.Now().Add(-time.Hour)
	person.UpdatedAt = time.Now()
	person.DeletedAt = sql.NullTime{Time: time.Now(), Valid: true}

	mapped := PersonFromDomain(person)
	require.NotNil(t, mapped)
	assert.Equal(t, person.ID.String(), mapped.ID)
	assert.Equal(t, person.Name, mapped.Name)
	assert.Nil(t, mapped.DeletedAt, "deleted_at is pinned to null in responses")
}

func TestPersonFromDomain_Nil(t *testing.T) {
	assert.Nil(t, PersonFromDomain(nil))
}

func TestPersonsFromDomain_Empty(t *testing.T) {
	list := PersonsFromDomain([]*domain.Person{})
	require.NotNil(t, list)
	assert.NotNil(t, list.Persons)
	assert.Empty(t, list.Persons)
}
