package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/application/dto"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/application/mapper"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain/repository"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	repo repository.CategoryRepository
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(repo repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Param        search  query  string  false  "Subcadena del nombre"
// @Success      200  {array}   dto.CategoryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/Category [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	var filter *repository.Filter
	if search := c.Query("search"); search != "" {
		filter = &repository.Filter{NameContains: search}
	}
	categories, err := h.repo.GetAll(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(mapper.ToCategoryDTOs(categories))
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Produce      json
// @Param        id      path   int     true   "ID de la categoría"
// @Param        search  query  string  false  "Subcadena del nombre"
// @Success      200  {object}  dto.CategoryDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/Category/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	// Un id no numérico o no positivo es un error del servidor, no del cliente.
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: domain.ErrInvalidID.Error()})
	}
	// search acota el get: la fila existe pero su nombre no contiene la
	// subcadena -> 404, igual que en el listado.
	cat, err := h.repo.Get(c.Context(), &repository.Filter{ID: int32(id), NameContains: c.Query("search")})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if cat == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
	}
	return c.JSON(mapper.ToCategoryDTO(cat))
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryCreateDTO  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/Category/PostCategory [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := in.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Details: details})
	}
	existing, err := h.repo.Get(c.Context(), &repository.Filter{NameEquals: in.CategoryName})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if existing != nil {
		// Nombre duplicado se reporta como error del servidor.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la categoría ya existe"})
	}
	cat := mapper.FromCategoryCreate(in)
	if err := h.repo.Create(c.Context(), cat); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la categoría ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/Category/%d", cat.ID))
	return c.Status(fiber.StatusCreated).JSON(mapper.ToCategoryDTO(cat))
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categories
// @Accept       json
// @Param        id    path  int  true  "ID de la categoría"
// @Param        body  body  dto.CategoryUpdateDTO  true  "Datos de la categoría"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/Category/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: domain.ErrInvalidID.Error()})
	}
	var in dto.CategoryUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := in.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Details: details})
	}
	if int32(id) != in.ID {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ID_MISMATCH", Message: "el id de la ruta no coincide con el del cuerpo"})
	}
	if err := h.repo.Update(c.Context(), mapper.FromCategoryUpdate(in)); err != nil {
		if errors.Is(err, domain.ErrConcurrency) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Param        id   path  int  true  "ID de la categoría"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/Category/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: domain.ErrInvalidID.Error()})
	}
	cat, err := h.repo.Get(c.Context(), &repository.Filter{ID: int32(id)})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if cat == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
	}
	if err := h.repo.Remove(c.Context(), cat); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
