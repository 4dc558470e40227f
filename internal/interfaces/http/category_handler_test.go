package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/application/dto"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain/entity"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain/repository"
	apphttp "github.com/jeffersoncargua/Pipeline-LineNatural/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	seq   int32
	items map[int32]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: map[int32]*entity.Category{}}
}

func (r *fakeCategoryRepo) matches(c *entity.Category, f *repository.Filter) bool {
	if f == nil {
		return true
	}
	if f.ID != 0 && c.ID != f.ID {
		return false
	}
	if f.NameEquals != "" && !strings.EqualFold(c.CategoryName, f.NameEquals) {
		return false
	}
	if f.NameContains != "" && !strings.Contains(c.CategoryName, f.NameContains) {
		return false
	}
	return true
}

func (r *fakeCategoryRepo) GetAll(_ context.Context, f *repository.Filter) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.items {
		if r.matches(c, f) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Get(_ context.Context, f *repository.Filter, _ ...repository.GetOption) (*entity.Category, error) {
	for _, c := range r.items {
		if r.matches(c, f) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.seq++
	c.ID = r.seq
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Remove(_ context.Context, c *entity.Category) error {
	if c == nil {
		return domain.ErrNilEntity
	}
	delete(r.items, c.ID)
	return nil
}

func (r *fakeCategoryRepo) Save(_ context.Context) error { return nil }

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	if _, ok := r.items[c.ID]; !ok {
		return domain.ErrConcurrency
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

// buildCatalogApp construye una aplicación Fiber con los repos en memoria.
func buildCatalogApp(categories *fakeCategoryRepo, products *fakeProductRepo) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Categories: categories,
		Products:   products,
	})
	return app
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Category
// ──────────────────────────────────────────────────────────────────────────────

// Crear una categoría y consultarla por el Location devuelto conserva el nombre.
func TestCategory_CrearYConsultar(t *testing.T) {
	app := buildCatalogApp(newFakeCategoryRepo(), newFakeProductRepo(nil))

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/Category/PostCategory",
		dto.CategoryCreateDTO{CategoryName: "Sales Minerales"}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	location := resp.Header.Get(fiber.HeaderLocation)
	require.NotEmpty(t, location, "la creación debe devolver un Location")

	created := decodeBody[dto.CategoryDTO](t, resp)
	assert.Equal(t, "Sales Minerales", created.CategoryName)
	assert.Positive(t, created.ID)
	assert.Equal(t, fmt.Sprintf("/api/Category/%d", created.ID), location)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, location, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	got := decodeBody[dto.CategoryDTO](t, resp)
	assert.Equal(t, created, got)
}

// Un nombre duplicado (ignorando mayúsculas) se rechaza con 500 y no crea fila.
func TestCategory_CrearDuplicado(t *testing.T) {
	repo := newFakeCategoryRepo()
	app := buildCatalogApp(repo, newFakeProductRepo(nil))

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/Category/PostCategory",
		dto.CategoryCreateDTO{CategoryName: "Vitaminas"}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/Category/PostCategory",
		dto.CategoryCreateDTO{CategoryName: "VITAMINAS"}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Len(t, repo.items, 1, "el duplicado no debe crear otra fila")
}

// Un nombre vacío o demasiado largo se rechaza con 400.
func TestCategory_CrearInvalida(t *testing.T) {
	app := buildCatalogApp(newFakeCategoryRepo(), newFakeProductRepo(nil))

	for _, name := range []string{"", strings.Repeat("x", 31)} {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/Category/PostCategory",
			dto.CategoryCreateDTO{CategoryName: name}), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decodeBody[dto.ErrorResponse](t, resp)
		assert.Equal(t, "VALIDATION", body.Code)
		assert.NotEmpty(t, body.Details)
	}
}

// Un id no positivo o no numérico responde 500 en todas las operaciones por id.
func TestCategory_IDInvalido(t *testing.T) {
	app := buildCatalogApp(newFakeCategoryRepo(), newFakeProductRepo(nil))

	for _, id := range []string{"0", "-3", "abc"} {
		for _, method := range []string{http.MethodGet, http.MethodDelete} {
			resp, err := app.Test(httptest.NewRequest(method, "/api/Category/"+id, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode, "%s id=%s", method, id)

			body := decodeBody[dto.ErrorResponse](t, resp)
			assert.Equal(t, "INVALID_ID", body.Code)
		}
	}
}

// Consultar un id ausente responde 404.
func TestCategory_NoEncontrada(t *testing.T) {
	app := buildCatalogApp(newFakeCategoryRepo(), newFakeProductRepo(nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/Category/99", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// search también acota la consulta por id: si el nombre de la fila no contiene
// la subcadena, la categoría se reporta como no encontrada.
func TestCategory_ConsultarConBusqueda(t *testing.T) {
	repo := newFakeCategoryRepo()
	app := buildCatalogApp(repo, newFakeProductRepo(nil))

	require.NoError(t, repo.Create(context.Background(), &entity.Category{CategoryName: "Vitaminas"}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/Category/1?search=tami", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	got := decodeBody[dto.CategoryDTO](t, resp)
	assert.Equal(t, "Vitaminas", got.CategoryName)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/Category/1?search=zzz", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "la fila existe pero el nombre no contiene la subcadena")
}

// El id de la ruta debe coincidir con el del cuerpo; si no, 400 y sin mutación.
func TestCategory_ActualizarIDNoCoincide(t *testing.T) {
	repo := newFakeCategoryRepo()
	app := buildCatalogApp(repo, newFakeProductRepo(nil))

	require.NoError(t, repo.Create(context.Background(), &entity.Category{CategoryName: "Hierbas"}))

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/Category/1",
		dto.CategoryUpdateDTO{ID: 2, CategoryName: "Otra"}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Hierbas", repo.items[1].CategoryName, "la categoría no debe cambiar")
}

// Actualizar una categoría existente responde 204 y persiste el nombre nuevo.
func TestCategory_Actualizar(t *testing.T) {
	repo := newFakeCategoryRepo()
	app := buildCatalogApp(repo, newFakeProductRepo(nil))

	require.NoError(t, repo.Create(context.Background(), &entity.Category{CategoryName: "Hierbas"}))

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/Category/1",
		dto.CategoryUpdateDTO{ID: 1, CategoryName: "Hierbas Medicinales"}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "Hierbas Medicinales", repo.items[1].CategoryName)
}

// Actualizar un id que ya no existe responde 404.
func TestCategory_ActualizarAusente(t *testing.T) {
	app := buildCatalogApp(newFakeCategoryRepo(), newFakeProductRepo(nil))

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/Category/7",
		dto.CategoryUpdateDTO{ID: 7, CategoryName: "Fantasma"}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// Eliminar y volver a consultar responde 404.
func TestCategory_EliminarYConsultar(t *testing.T) {
	repo := newFakeCategoryRepo()
	app := buildCatalogApp(repo, newFakeProductRepo(nil))

	require.NoError(t, repo.Create(context.Background(), &entity.Category{CategoryName: "Vitaminas"}))

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/Category/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/Category/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// El listado con search filtra por subcadena del nombre.
func TestCategory_ListarConBusqueda(t *testing.T) {
	repo := newFakeCategoryRepo()
	app := buildCatalogApp(repo, newFakeProductRepo(nil))

	for _, name := range []string{"Vitaminas", "Minerales", "Hierbas"} {
		require.NoError(t, repo.Create(context.Background(), &entity.Category{CategoryName: name}))
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/Category/?search=erales", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	list := decodeBody[[]dto.CategoryDTO](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "Minerales", list[0].CategoryName)
}
