package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/lms-portal-api/internal/models"
	"github.com/campushub/lms-portal-api/internal/service"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
	"github.com/campushub/lms-portal-api/pkg/response"
)

// PersonHandler exposes the shared person directory.
type PersonHandler struct {
	people *service.PersonService
}

// NewPersonHandler constructs a PersonHandler.
func NewPersonHandler(people *service.PersonService) *PersonHandler {
	return &PersonHandler{people: people}
}

// List godoc
// @Summary List people
// @Tags People
// @Produce json
// @Param q query string false "Search name or email"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /people [get]
func (h *PersonHandler) List(c *gin.Context) {
	people, err := h.people.List(c.Request.Context(), models.PersonFilter{Search: c.Query("q")})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, people, nil)
}

// Get godoc
// @Summary Get one person
// @Tags People
// @Produce json
// @Param id path int true "Person id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /people/{id} [get]
func (h *PersonHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	person, err := h.people.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, person, nil)
}

// Create godoc
// @Summary Create a person
// @Tags People
// @Accept json
// @Produce json
// @Param payload body service.CreatePersonRequest true "Person payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /people [post]
func (h *PersonHandler) Create(c *gin.Context) {
	var req service.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	person, err := h.people.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, person)
}

// Update godoc
// @Summary Update a person
// @Tags People
// @Accept json
// @Produce json
// @Param id path int true "Person id"
// @Param payload body service.UpdatePersonRequest true "Person payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /people/{id} [put]
func (h *PersonHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	person, err := h.people.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, person, nil)
}

// Delete godoc
// @Summary Delete a person
// @Tags People
// @Param id path int true "Person id"
// @Success 204
// @Security BearerAuth
// @Router /people/{id} [delete]
func (h *PersonHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.people.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
