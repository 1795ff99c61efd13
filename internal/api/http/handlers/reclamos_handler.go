package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/uta-gremial/reclamos-service/internal/api/dto"
	"github.com/uta-gremial/reclamos-service/internal/auth"
	"github.com/uta-gremial/reclamos-service/internal/service"
	apperrors "github.com/uta-gremial/reclamos-service/pkg/util"
)

// ReclamosHandler manages complaint endpoints.
type ReclamosHandler struct {
	service *service.ReclamoService
}

// NewReclamosHandler constructs handler.
func NewReclamosHandler(reclamoService *service.ReclamoService) *ReclamosHandler {
	return &ReclamosHandler{service: reclamoService}
}

// Create POST /reclamos.
func (h *ReclamosHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateReclamoRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Linea == "" || req.Categoria == "" || req.SectorEstacion == "" || strings.TrimSpace(req.Descripcion) == "" {
		return apperrors.NewValidationError("linea, categoria, sector_estacion, descripcion required", nil)
	}

	reclamo, err := h.service.Create(c.UserContext(), actor, service.ReclamoCreateInput{
		Linea:          req.Linea,
		Categoria:      req.Categoria,
		SectorEstacion: req.SectorEstacion,
		Descripcion:    req.Descripcion,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewReclamoResponse(reclamo)})
}

// List GET /reclamos.
func (h *ReclamosHandler) List(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	filter := service.ReclamoListFilter{
		Linea:       queryPtr(c, "linea"),
		Categoria:   queryPtr(c, "categoria"),
		Estado:      queryPtr(c, "estado"),
		Responsable: queryPtr(c, "responsable"),
		Search:      queryPtr(c, "search"),
	}
	reclamos, err := h.service.List(c.UserContext(), actor, filter)
	if err != nil {
		return err
	}

	items := make([]dto.ReclamoResponse, 0, len(reclamos))
	for i := range reclamos {
		items = append(items, dto.NewReclamoResponse(&reclamos[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /reclamos/:id.
func (h *ReclamosHandler) Get(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	reclamo, err := h.service.Get(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReclamoResponse(reclamo)})
}

// Update PATCH /reclamos/:id.
func (h *ReclamosHandler) Update(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateReclamoRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	reclamo, err := h.service.Update(c.UserContext(), actor, c.Params("id"), service.ReclamoPatch{
		Estado:            req.Estado,
		Responsable:       req.Responsable,
		Solucion:          req.Solucion,
		ResponsableCierre: req.ResponsableCierre,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReclamoResponse(reclamo)})
}

// Delete DELETE /reclamos/:id.
func (h *ReclamosHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "reclamo eliminado"}})
}

// AddComment POST /reclamos/:id/comentarios.
func (h *ReclamosHandler) AddComment(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Text) == "" {
		return apperrors.NewValidationError("text required", nil)
	}
	author := req.Author
	if author == "" {
		author = actor.Username
	}

	comment, err := h.service.AddComment(c.UserContext(), actor, c.Params("id"), req.Text, author)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.CommentResponse(*comment)})
}

// UploadArchivo POST /reclamos/:id/archivos (multipart).
func (h *ReclamosHandler) UploadArchivo(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file required", nil)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.NewValidationError("unreadable file", nil)
	}
	defer file.Close()

	url, err := h.service.AddArchivo(c.UserContext(), c.Params("id"), fileHeader.Filename, file)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"url": url}})
}

func queryPtr(c *fiber.Ctx, key string) *string {
	val := c.Query(key)
	if val == "" {
		return nil
	}
	return &val
}
