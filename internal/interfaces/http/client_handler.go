package http

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/internal/domain"
)

// ClientHandler maneja las peticiones HTTP de clientes (protegido).
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes
// @Description  Proyección ligera: id, name, email, phone. Nunca incluye el logotipo.
// @Tags         clients
// @Produce      json
// @Success      200  {array}  dto.ClientSummaryResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Detalle de un cliente
// @Description  Proyección completa: logotipo (base64) y direcciones.
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "ID del cliente"
// @Success      200  {object}  dto.ClientDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	client, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(client)
}

// Create godoc
// @Summary      Crear cliente
// @Description  Acepta multipart/form-data (campos name, email, phone, archivo logo y addresses como JSON) o cuerpo JSON.
// @Tags         clients
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  dto.ClientResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	in, err := bindClientInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()})
	}
	result, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return clientErrorResponse(c, err)
	}
	c.Location("/api/clients/" + strconv.Itoa(result.ID))
	return c.Status(fiber.StatusCreated).JSON(result)
}

// Update godoc
// @Summary      Actualizar cliente
// @Description  Reemplazo total: el conjunto de direcciones enviado sustituye al anterior.
// @Tags         clients
// @Accept       mpfd
// @Produce      json
// @Param        id  path  int  true  "ID del cliente"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	body, err := bindClientInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()})
	}
	// el id de la ruta manda, no el del cuerpo
	in := dto.UpdateClientRequest{
		ID:        id,
		Name:      body.Name,
		Email:     body.Email,
		Phone:     body.Phone,
		Logo:      body.Logo,
		Addresses: body.Addresses,
	}
	if err := h.uc.Update(c.Context(), in); err != nil {
		return clientErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Description  Borra el cliente y, en cascada, todas sus direcciones.
// @Tags         clients
// @Param        id  path  int  true  "ID del cliente"
// @Success      204
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Remove(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// bindClientInput lee la entrada desde multipart/form-data o, si el cuerpo
// es JSON, vía BodyParser. En multipart el logotipo llega como archivo
// ("logo") y las direcciones como campo JSON ("addresses"). Un archivo
// presente pero vacío produce un slice de longitud cero, que el validador de
// dominio rechaza; archivo ausente = nil.
func bindClientInput(c *fiber.Ctx) (dto.CreateClientRequest, error) {
	var in dto.CreateClientRequest
	if c.Is("json") {
		if err := c.BodyParser(&in); err != nil {
			return in, errors.New("cuerpo JSON inválido")
		}
		return in, nil
	}

	in.Name = c.FormValue("name")
	in.Email = c.FormValue("email")
	in.Phone = c.FormValue("phone")

	if fh, err := c.FormFile("logo"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return in, errors.New("no se pudo leer el archivo de logotipo")
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return in, errors.New("no se pudo leer el archivo de logotipo")
		}
		in.Logo = data
	}

	if raw := c.FormValue("addresses"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.Addresses); err != nil {
			return in, errors.New("addresses debe ser un arreglo JSON válido")
		}
	}
	return in, nil
}

// clientErrorResponse traduce la taxonomía de errores del orquestador a
// respuestas HTTP estables: cada clase de fallo tiene su forma propia y
// ninguna se presenta como fallo no manejado.
func clientErrorResponse(c *fiber.Ctx, err error) error {
	if ve := domain.AsValidationError(err); ve != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:       "VALIDATION",
			Message:    "el cliente no cumple las reglas de dominio",
			Violations: ve.Violations,
		})
	}
	if errors.Is(err, domain.ErrDuplicateEmail) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_EMAIL", Message: "ya existe un cliente con ese email"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
