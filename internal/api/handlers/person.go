package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"personstore/internal/api/dto"
	"personstore/internal/api/services"
	"personstore/internal/repository"
)

type PersonHandler struct {
	personService *services.PersonService
}

func NewPersonHandler(db *sqlx.DB) *PersonHandler {
	personRepo := repository.NewPersonRepository(db)
	sessions := repository.NewSessionProvider(db)
	personService := services.NewPersonService(sessions, personRepo)

	return &PersonHandler{
		personService: personService,
	}
}

// CreatePerson godoc
// @Summary Create a person
// @Description Generates a person record with synthetic data and stores it. No request body is consumed.
// @Tags person
// @Produce json
// @Success 200 {object} dto.Person
// @Failure 500 {object} map[string]string
// @Router /person/ [post]
func (h *PersonHandler) CreatePerson(c echo.Context) error {
	person, err := h.personService.CreatePerson(c.Request().Context())
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.PersonFromDomain(person))
}

// ListPersons godoc
// @Summary List persons
// @Description Returns every stored person record.
// @Tags person
// @Produce json
// @Success 200 {object} dto.PersonList
// @Failure 500 {object} map[string]string
// @Router /person/ [get]
func (h *PersonHandler) ListPersons(c echo.Context) error {
	persons, err := h.personService.ListPersons(c.Request().Context())
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.PersonsFromDomain(persons))
}
