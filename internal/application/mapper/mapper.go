// Package mapper concentra el mapeo declarativo entidad↔DTO: copias de campo
// explícitas, sin lógica.
package mapper

import (
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/application/dto"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain/entity"
)

// ToCategoryDTO mapea una Category a su DTO.
func ToCategoryDTO(c *entity.Category) dto.CategoryDTO {
	return dto.CategoryDTO{
		ID:           c.ID,
		CategoryName: c.CategoryName,
	}
}

// ToCategoryDTOs mapea una lista de categorías.
func ToCategoryDTOs(list []*entity.Category) []dto.CategoryDTO {
	out := make([]dto.CategoryDTO, 0, len(list))
	for _, c := range list {
		out = append(out, ToCategoryDTO(c))
	}
	return out
}

// FromCategoryCreate construye la entidad desde el DTO de creación (id lo asigna el store).
func FromCategoryCreate(d dto.CategoryCreateDTO) *entity.Category {
	return &entity.Category{CategoryName: d.CategoryName}
}

// FromCategoryUpdate construye la entidad desde el DTO de actualización.
func FromCategoryUpdate(d dto.CategoryUpdateDTO) *entity.Category {
	return &entity.Category{
		ID:           d.ID,
		CategoryName: d.CategoryName,
	}
}

// ToProductDTO mapea un Product a su DTO; incluye la categoría si venía cargada.
func ToProductDTO(p *entity.Product) dto.ProductDTO {
	out := dto.ProductDTO{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		ProductName: p.ProductName,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		DateExpiry:  p.DateExpiry,
	}
	if p.Category != nil {
		c := ToCategoryDTO(p.Category)
		out.Category = &c
	}
	return out
}

// ToProductDTOs mapea una lista de productos.
func ToProductDTOs(list []*entity.Product) []dto.ProductDTO {
	out := make([]dto.ProductDTO, 0, len(list))
	for _, p := range list {
		out = append(out, ToProductDTO(p))
	}
	return out
}

// FromProductCreate construye la entidad desde el DTO de creación (id lo asigna el store).
func FromProductCreate(d dto.ProductCreateDTO) *entity.Product {
	return &entity.Product{
		CategoryID:  d.CategoryID,
		ProductName: d.ProductName,
		Description: d.Description,
		Price:       d.Price,
		Stock:       d.Stock,
		DateExpiry:  d.DateExpiry,
	}
}

// FromProductUpdate construye la entidad desde el DTO de actualización.
func FromProductUpdate(d dto.ProductUpdateDTO) *entity.Product {
	return &entity.Product{
		ID:          d.ID,
		CategoryID:  d.CategoryID,
		ProductName: d.ProductName,
		Description: d.Description,
		Price:       d.Price,
		Stock:       d.Stock,
		DateExpiry:  d.DateExpiry,
	}
}

// ToUserDTO mapea una cuenta a su DTO público (sin hash ni tokens).
func ToUserDTO(u *entity.User) *dto.UserDTO {
	if u == nil {
		return nil
	}
	return &dto.UserDTO{
		ID:       u.ID,
		UserName: u.UserName,
		Name:     u.Name,
	}
}
