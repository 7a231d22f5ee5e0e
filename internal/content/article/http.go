package article

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/knowledgehunting/api/internal/platform/apperr"
	"github.com/knowledgehunting/api/internal/platform/middleware"
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
	// Public
	router.Get("/articles", handler.list)
	router.Get("/articles/count", handler.countAll)
	router.Get("/articles/category/{category}", handler.listByCategory)
	router.Get("/featured-articles", handler.listFeatured)
	router.Get("/article/{id}", handler.get)
	router.Get("/myarticles/count", handler.countByAuthor)

	// Bearer token required
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Post("/articles", handler.create)
		protected.Put("/updatearticle", handler.update)
		protected.Delete("/deletearticle/{id}", handler.delete)

		// Additionally requires the path identity to match the principal
		protected.With(middleware.RequireOwnership("email")).Get("/my-articles/{email}", handler.listMine)
	})
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	category := request.URL.Query().Get("category")

	articles, err := handler.service.ListArticles(request.Context(), category)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, articles)
}

func (handler *Handler) listByCategory(writer http.ResponseWriter, request *http.Request) {
	category := requestutil.Param(request, "category")

	articles, err := handler.service.ListArticles(request.Context(), category)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, articles)
}

func (handler *Handler) listFeatured(writer http.ResponseWriter, request *http.Request) {
	articles, err := handler.service.ListFeatured(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, articles)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := parseID(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.GetArticle(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, article)
}

type countResponse struct {
	Count int64 `json:"count"`
}

func (handler *Handler) countAll(writer http.ResponseWriter, request *http.Request) {
	total, err := handler.service.CountAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, countResponse{Count: total})
}

func (handler *Handler) countByAuthor(writer http.ResponseWriter, request *http.Request) {
	email := request.URL.Query().Get("email")

	total, err := handler.service.CountByAuthor(request.Context(), email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, countResponse{Count: total})
}

func (handler *Handler) listMine(writer http.ResponseWriter, request *http.Request) {
	email := requestutil.Param(request, "email")

	articles, err := handler.service.ListMyArticles(request.Context(), email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, articles)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Article
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateArticle(request.Context(), &input, principal); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

// updateRequest is the typed partial-update body: the id plus the enumerated
// mutable fields. Unknown fields are ignored rather than merged blindly.
type updateRequest struct {
	ArticleID int64 `json:"articleId"`
	Patch
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateArticle(request.Context(), input.ArticleID, input.Patch); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]bool{"updated": true})
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := parseID(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteArticle(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// parseID converts a path segment into an article id. A malformed id is a
// 400-class error, distinct from a well-formed id that matches no article.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.ValidationError("Invalid article id")
	}
	return id, nil
}
