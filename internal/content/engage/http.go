package engage

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/knowledgehunting/api/internal/platform/apperr"
	requestutil "github.com/knowledgehunting/api/internal/platform/request"
	"github.com/knowledgehunting/api/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// No bearer token: the acting identity travels in the request body.
	router.Patch("/like/{articleId}", handler.toggleLike)
}

type toggleRequest struct {
	Email string `json:"email"`
}

func (handler *Handler) toggleLike(writer http.ResponseWriter, request *http.Request) {
	raw := requestutil.Param(request, "articleId")
	articleID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || articleID <= 0 {
		respond.Error(writer, request, apperr.ValidationError("Invalid article id"))
		return
	}

	var input toggleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.ToggleLike(request.Context(), articleID, input.Email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
