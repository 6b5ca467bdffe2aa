package handler

import (
	"errors"
	"net/http"

	"github.com/cinefeel/cinefeel-backend/internal/common"
	"github.com/cinefeel/cinefeel-backend/internal/service"
	"github.com/cinefeel/cinefeel-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// MovieHandler proxies the movie catalog
type MovieHandler struct {
	service service.MovieService
}

// NewMovieHandler creates a new MovieHandler
func NewMovieHandler(service service.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

// Popular handles GET /api/movies/popular
// @Summary 인기 영화 목록
// @Tags movies
// @Produce json
// @Param page query int false "페이지 번호" default(1)
// @Param language query string false "언어 (예: ko-KR)"
// @Success 200 {object} tmdb.Page
// @Failure 502 {object} common.ErrorBody
// @Failure 503 {object} common.ErrorBody
// @Router /movies/popular [get]
func (h *MovieHandler) Popular(c *gin.Context) {
	page := queryPage(c)

	result, err := h.service.Popular(c.Request.Context(), page, c.Query("language"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	common.SuccessResponse(c, result)
}

// Search handles GET /api/movies/search
// @Summary 영화 검색
// @Tags movies
// @Produce json
// @Param query query string true "검색어"
// @Param page query int false "페이지 번호" default(1)
// @Param language query string false "언어 (예: ko-KR)"
// @Success 200 {object} tmdb.Page
// @Failure 400 {object} common.ErrorBody
// @Failure 502 {object} common.ErrorBody
// @Failure 503 {object} common.ErrorBody
// @Router /movies/search [get]
func (h *MovieHandler) Search(c *gin.Context) {
	page := queryPage(c)

	result, err := h.service.Search(c.Request.Context(), c.Query("query"), page, c.Query("language"))
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			common.ErrorResponse(c, http.StatusBadRequest, "movie.query_required", err)
			return
		}
		h.handleError(c, err)
		return
	}

	common.SuccessResponse(c, result)
}

// Detail handles GET /api/movies/:id
// @Summary 영화 상세
// @Tags movies
// @Produce json
// @Param id path int true "TMDB 영화 ID"
// @Param language query string false "언어 (예: ko-KR)"
// @Success 200 {object} tmdb.MovieDetail
// @Failure 400 {object} common.ErrorBody
// @Failure 404 {object} common.ErrorBody
// @Failure 502 {object} common.ErrorBody
// @Failure 503 {object} common.ErrorBody
// @Router /movies/{id} [get]
func (h *MovieHandler) Detail(c *gin.Context) {
	id, err := ginutil.ParamID64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "movie.invalid_id", err)
		return
	}

	result, err := h.service.Detail(c.Request.Context(), id, c.Query("language"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	common.SuccessResponse(c, result)
}

func (h *MovieHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		common.ErrorResponse(c, http.StatusBadRequest, "error.bad_request", err)
	case errors.Is(err, common.ErrMovieNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "movie.not_found", err)
	case errors.Is(err, common.ErrCatalogUnavailable):
		common.ErrorResponse(c, http.StatusServiceUnavailable, "movie.unavailable", err)
	default:
		common.ErrorResponse(c, http.StatusBadGateway, "movie.upstream_error", err)
	}
}

// queryPage reads ?page=, defaulting to 1
func queryPage(c *gin.Context) int {
	if page := ginutil.QueryInt(c, "page", 1); page > 0 {
		return page
	}
	return 1
}
