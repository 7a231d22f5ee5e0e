package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

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
	// Public: commenting carries its identity in the body.
	router.Post("/comments", handler.create)
	router.Get("/comments", handler.list)
}

type insertedResponse struct {
	InsertedID int64 `json:"insertedId"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Comment
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Add(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, insertedResponse{InsertedID: input.ID})
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	comments, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, comments)
}
