package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/application/account"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	AccountUC  *account.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Category
	categories := api.Group("/Category")
	categoryHandler := NewCategoryHandler(deps.Categories)
	categories.Get("/", categoryHandler.List)
	categories.Post("/PostCategory", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Product
	products := api.Group("/Product")
	productHandler := NewProductHandler(deps.Products, deps.Categories)
	products.Get("/", productHandler.List)
	products.Post("/PostProduct", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// User (público)
	users := api.Group("/User")
	userHandler := NewUserHandler(deps.AccountUC)
	users.Post("/Register", userHandler.Register)
	users.Post("/Login", userHandler.Login)
	users.Get("/ConfirmEmail", userHandler.ConfirmEmail)
	users.Post("/ForgetPassword", userHandler.ForgetPassword)
	users.Post("/ResetPassword", userHandler.ResetPassword)
}
