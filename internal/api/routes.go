package api

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"personstore/internal/api/handlers"
)

func SetupRoutes(e *echo.Echo, db *sqlx.DB) {
	e.GET("/", index)
	e.GET("/health", healthCheck)

	personHandler := handlers.NewPersonHandler(db)
	personGroup := e.Group("/person")
	personGroup.POST("/", personHandler.CreatePerson)
	personGroup.GET("/", personHandler.ListPersons)
}

// index godoc
// @Summary Hello world
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func index(c echo.Context) error {
	return handlers.SuccessResponse(c, "Hello, World!")
}

func healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
