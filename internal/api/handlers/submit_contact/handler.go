package submit_contact

import (
	"errors"
	"net/http"

	"github.com/m04kA/alejandrums/internal/api/handlers"
	"github.com/m04kA/alejandrums/internal/service/contact"
	"github.com/m04kA/alejandrums/internal/service/contact/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidInput       = "completa nombre, email válido y mensaje"
)

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		if errors.Is(err, contact.ErrInvalidInput) {
			h.logger.Warn("POST /contact - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /contact - Failed to submit message: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /contact - Message stored: id=%d", resp.ID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
