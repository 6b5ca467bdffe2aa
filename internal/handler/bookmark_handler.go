package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/cinefeel/cinefeel-backend/internal/common"
	"github.com/cinefeel/cinefeel-backend/internal/domain"
	"github.com/cinefeel/cinefeel-backend/internal/middleware"
	"github.com/cinefeel/cinefeel-backend/internal/service"
	"github.com/cinefeel/cinefeel-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// BookmarkHandler handles bookmark HTTP requests
type BookmarkHandler struct {
	service service.BookmarkService
}

// NewBookmarkHandler creates a new BookmarkHandler
func NewBookmarkHandler(service service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

// List handles GET /api/bookmarks
// @Summary 내 북마크 목록
// @Tags bookmarks
// @Produce json
// @Success 200 {array} domain.BookmarkResponse
// @Failure 401 {object} common.ErrorBody
// @Failure 500 {object} common.ErrorBody
// @Router /bookmarks [get]
func (h *BookmarkHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	bookmarks, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "bookmark.list_error", err)
		return
	}

	common.SuccessResponse(c, bookmarks)
}

// Create handles POST /api/bookmarks
// @Summary 북마크 생성
// @Description 이미 북마크한 영화면 기존 북마크를 200으로 반환
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param request body domain.CreateBookmarkRequest true "북마크 정보"
// @Success 201 {object} domain.Bookmark
// @Success 200 {object} domain.Bookmark
// @Failure 400 {object} common.ErrorBody
// @Failure 401 {object} common.ErrorBody
// @Failure 500 {object} common.ErrorBody
// @Router /bookmarks [post]
func (h *BookmarkHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req domain.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "bookmark.missing_fields", err)
		return
	}

	bookmark, created, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			common.ErrorResponse(c, http.StatusBadRequest, "bookmark.missing_fields", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "bookmark.create_error", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, bookmark)
}

// Get handles GET /api/bookmarks/:tmdbId
// @Summary 북마크 단건 조회
// @Tags bookmarks
// @Produce json
// @Param tmdbId path int true "TMDB 영화 ID"
// @Success 200 {object} domain.BookmarkResponse
// @Failure 400 {object} common.ErrorBody
// @Failure 404 {object} common.ErrorBody
// @Router /bookmarks/{tmdbId} [get]
func (h *BookmarkHandler) Get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	tmdbID, ok := parseTmdbID(c)
	if !ok {
		return
	}

	bookmark, err := h.service.Get(c.Request.Context(), userID, tmdbID)
	if err != nil {
		h.handleError(c, err, "bookmark.list_error")
		return
	}

	common.SuccessResponse(c, bookmark)
}

// Update handles PATCH /api/bookmarks/:tmdbId
// @Summary 북마크 수정
// @Description 전달된 필드만 수정. tags가 있으면 태그 전체를 교체
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param tmdbId path int true "TMDB 영화 ID"
// @Param request body domain.UpdateBookmarkRequest true "수정 내용"
// @Success 200 {object} domain.BookmarkResponse
// @Failure 400 {object} common.ErrorBody
// @Failure 404 {object} common.ErrorBody
// @Failure 500 {object} common.ErrorBody
// @Router /bookmarks/{tmdbId} [patch]
func (h *BookmarkHandler) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	tmdbID, ok := parseTmdbID(c)
	if !ok {
		return
	}

	// 빈 body는 변경 없음으로 처리
	var req domain.UpdateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		common.ErrorResponse(c, http.StatusBadRequest, "error.bad_request", err)
		return
	}

	bookmark, err := h.service.Update(c.Request.Context(), userID, tmdbID, req.ToPatch())
	if err != nil {
		h.handleError(c, err, "bookmark.update_error")
		return
	}

	common.SuccessResponse(c, bookmark)
}

// Delete handles DELETE /api/bookmarks/:tmdbId
// @Summary 북마크 삭제
// @Tags bookmarks
// @Produce json
// @Param tmdbId path int true "TMDB 영화 ID"
// @Success 200 {object} common.SuccessBody
// @Failure 400 {object} common.ErrorBody
// @Failure 404 {object} common.ErrorBody
// @Failure 500 {object} common.ErrorBody
// @Router /bookmarks/{tmdbId} [delete]
func (h *BookmarkHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	tmdbID, ok := parseTmdbID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, tmdbID); err != nil {
		h.handleError(c, err, "bookmark.delete_error")
		return
	}

	common.SuccessResponse(c, common.SuccessBody{Success: true})
}

// ListPublic handles GET /api/public-bookmarks
// @Summary 공개 북마크 피드
// @Description 최신순 최대 50개
// @Tags bookmarks
// @Produce json
// @Success 200 {array} domain.PublicBookmarkResponse
// @Failure 500 {object} common.ErrorBody
// @Router /public-bookmarks [get]
func (h *BookmarkHandler) ListPublic(c *gin.Context) {
	bookmarks, err := h.service.ListPublic(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "bookmark.list_error", err)
		return
	}

	common.SuccessResponse(c, bookmarks)
}

func (h *BookmarkHandler) handleError(c *gin.Context, err error, fallbackKey string) {
	switch {
	case errors.Is(err, common.ErrBookmarkNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "bookmark.not_found", err)
	case errors.Is(err, common.ErrInvalidInput):
		common.ErrorResponse(c, http.StatusBadRequest, "error.bad_request", err)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, fallbackKey, err)
	}
}

// parseTmdbID reads the :tmdbId path param. Writes a 400 on failure.
func parseTmdbID(c *gin.Context) (int64, bool) {
	tmdbID, err := ginutil.ParamID64(c, "tmdbId")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "bookmark.invalid_id", err)
		return 0, false
	}
	return tmdbID, true
}

// requireUser returns the session user. Routes are guarded by RequireAuth,
// so a miss here only happens on misconfigured routes.
func requireUser(c *gin.Context) (uint64, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		common.ErrorResponse(c, http.StatusUnauthorized, "auth.required", nil)
		return 0, false
	}
	return userID, true
}
