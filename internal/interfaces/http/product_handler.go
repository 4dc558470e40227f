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

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductHandler construye el handler.
func NewProductHandler(products repository.ProductRepository, categories repository.CategoryRepository) *ProductHandler {
	return &ProductHandler{products: products, categories: categories}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        search  query  string  false  "Subcadena del nombre"
// @Success      200  {array}   dto.ProductDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/Product [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var filter *repository.Filter
	if search := c.Query("search"); search != "" {
		filter = &repository.Filter{NameContains: search}
	}
	products, err := h.products.GetAll(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(mapper.ToProductDTOs(products))
}

// GetByID godoc
// @Summary      Obtener producto por ID, con su categoría
// @Tags         products
// @Produce      json
// @Param        id      path   int     true   "ID del producto"
// @Param        search  query  string  false  "Subcadena del nombre"
// @Success      200  {object}  dto.ProductDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/Product/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: domain.ErrInvalidID.Error()})
	}
	p, err := h.products.Get(c.Context(), &repository.Filter{ID: int32(id), NameContains: c.Query("search")}, repository.Include("Category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(mapper.ToProductDTO(p))
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductCreateDTO  true  "Datos del producto"
// @Success      201   {object}  dto.ProductDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/Product/PostProduct [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := in.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Details: details})
	}
	// A diferencia de Category, las violaciones de producto son errores del cliente.
	existing, err := h.products.Get(c.Context(), &repository.Filter{NameEquals: in.ProductName})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el producto ya existe"})
	}
	cat, err := h.categories.Get(c.Context(), &repository.Filter{ID: in.CategoryID})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if cat == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CATEGORY", Message: "la categoría no existe"})
	}
	p := mapper.FromProductCreate(in)
	if err := h.products.Create(c.Context(), p); err != nil {
		if errors.Is(err, domain.ErrDuplicate) || errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/Product/%d", p.ID))
	return c.Status(fiber.StatusCreated).JSON(mapper.ToProductDTO(p))
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ProductUpdateDTO  true  "Datos del producto"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/Product/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: domain.ErrInvalidID.Error()})
	}
	var in dto.ProductUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := in.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Details: details})
	}
	if int32(id) != in.ID {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ID_MISMATCH", Message: "el id de la ruta no coincide con el del cuerpo"})
	}
	cat, err := h.categories.Get(c.Context(), &repository.Filter{ID: in.CategoryID})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if cat == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CATEGORY", Message: "la categoría no existe"})
	}
	if err := h.products.Update(c.Context(), mapper.FromProductUpdate(in)); err != nil {
		if errors.Is(err, domain.ErrConcurrency) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Param        id   path  int  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/Product/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: domain.ErrInvalidID.Error()})
	}
	p, err := h.products.Get(c.Context(), &repository.Filter{ID: int32(id)})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	if err := h.products.Remove(c.Context(), p); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
