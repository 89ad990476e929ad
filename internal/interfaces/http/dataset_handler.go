package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-analytics/internal/application/dto"
	"github.com/jhoicas/Inventario-analytics/internal/application/inventory"
	"github.com/jhoicas/Inventario-analytics/internal/domain"
)

// DatasetHandler recibe el libro de inventario y reemplaza el snapshot vigente.
type DatasetHandler struct {
	uc  *inventory.DatasetUseCase
	log zerolog.Logger
}

// NewDatasetHandler construye el handler.
func NewDatasetHandler(uc *inventory.DatasetUseCase, log zerolog.Logger) *DatasetHandler {
	return &DatasetHandler{uc: uc, log: log}
}

// Upload godoc
// @Summary      Cargar libro de inventario
// @Description  Acepta .xlsx, .xlsm, .csv o .txt. Reemplaza el dataset completo; si el archivo
// @Description  no tiene filas válidas el dataset anterior se conserva.
// @Tags         dataset
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Libro de inventario"
// @Success      200   {object}  dto.UploadResultDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/upload [post]
func (h *DatasetHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'file' requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, h.log, fmt.Errorf("%w: abrir %s: %v", domain.ErrInvalidInput, fh.Filename, err))
	}
	defer f.Close()

	res, err := h.uc.Load(c.Context(), fh.Filename, f)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Info().
		Str("file", fh.Filename).
		Str("user", GetUsername(c)).
		Int("records", res.Records).
		Msg("dataset reemplazado vía upload")
	return c.JSON(res)
}
