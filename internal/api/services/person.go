package services

import (
	"context"

	"personstore/internal/domain"
	"personstore/internal/generator"
	"personstore/internal/repository"
)

type PersonService struct {
	sessions   *repository.SessionProvider
	personRepo *repository.PersonRepository
}

func NewPersonService(sessions *repository.SessionProvider, personRepo *repository.PersonRepository) *PersonService {
	return &PersonService{
		sessions:   sessions,
		personRepo: personRepo,
	}
}

// CreatePerson inserts one synthetic record inside a request-scoped session,
// commits, and reloads the row to return it exactly as persisted.
func (s *PersonService) CreatePerson(ctx context.Context) (*domain.Person, error) {
	person := generator.Person()

	sess, err := s.sessions.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	if err := repository.NewPersonRepository(sess).Create(person); err != nil {
		return nil, err
	}

	if err := sess.Commit(); err != nil {
		return nil, err
	}

	return s.personRepo.FindByID(person.ID)
}

func (s *PersonService) ListPersons(ctx context.Context) ([]*domain.Person, error) {
	return s.personRepo.FindAll()
}
