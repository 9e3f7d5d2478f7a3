package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personstore/internal/generator"
	"personstore/internal/repository"
)

func newPersonService() *PersonService {
	return NewPersonService(
		repository.NewSessionProvider(testDB),
		repository.NewPersonRepository(testDB),
	)
}

func TestPersonService_CreatePerson(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	service := newPersonService()

	person, err := service.CreatePerson(context.Background())
	require.NoError(t, err)
	require.NotNil(t, person)

	assert.NotEqual(t, uuid.Nil, person.ID)
	assert.NotEmpty(t, person.Name)
	assert.GreaterOrEqual(t, person.Age, generator.MinAge)
	assert.LessOrEqual(t, person.Age, generator.MaxAge)
	assert.False(t, person.DeletedAt.Valid)

	stored, err := repository.NewPersonRepository(testDB).FindByID(person.ID)
	require.NoError(t, err)
	assert.Equal(t, person.ID, stored.ID)
}

func TestPersonService_CreatePerson_UniqueIDs(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	service := newPersonService()

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 5; i++ {
		person, err := service.CreatePerson(context.Background())
		require.NoError(t, err)
		assert.False(t, seen[person.ID])
		seen[person.ID] = true
	}
}

func TestPersonService_ListPersons(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	service := newPersonService()

	created := make(map[uuid.UUID]bool)
	for i := 0; i < 3; i++ {
		person, err := service.CreatePerson(context.Background())
		require.NoError(t, err)
		created[person.ID] = true
	}

	persons, err := service.ListPersons(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(persons), 3)

	for _, person := range persons {
		delete(created, person.ID)
	}
	assert.Empty(t, created, "every created record should be listed")
}

func TestPersonService_ListPersons_EmptyTable(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	_, err := testDB.Exec(`TRUNCATE TABLE persons`)
	require.NoError(t, err)

	persons, err := newPersonService().ListPersons(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, persons)
	assert.Empty(t, persons)
}
