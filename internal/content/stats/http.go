package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/knowledgehunting/api/internal/platform/constants"
	"github.com/knowledgehunting/api/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/top-contributors", handler.topContributors)
}

func (handler *Handler) topContributors(writer http.ResponseWriter, request *http.Request) {
	contributors, err := handler.service.TopContributors(request.Context(), constants.DefaultTopContributors)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, contributors)
}
