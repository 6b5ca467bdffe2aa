package handler

import (
	"errors"
	"net/http"

	"github.com/cinefeel/cinefeel-backend/internal/common"
	"github.com/cinefeel/cinefeel-backend/internal/domain"
	"github.com/cinefeel/cinefeel-backend/internal/service"
	"github.com/cinefeel/cinefeel-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// LikeHandler handles like HTTP requests
type LikeHandler struct {
	service service.LikeService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(service service.LikeService) *LikeHandler {
	return &LikeHandler{service: service}
}

// Like handles POST /api/likes/:bookmarkId
// @Summary 좋아요
// @Tags likes
// @Produce json
// @Param bookmarkId path int true "북마크 ID"
// @Success 200 {object} domain.Like
// @Failure 400 {object} common.ErrorBody
// @Failure 401 {object} common.ErrorBody
// @Failure 404 {object} common.ErrorBody
// @Router /likes/{bookmarkId} [post]
func (h *LikeHandler) Like(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	bookmarkID, ok := parseBookmarkID(c)
	if !ok {
		return
	}

	like, err := h.service.Like(c.Request.Context(), userID, bookmarkID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrAlreadyLiked):
			common.ErrorResponse(c, http.StatusBadRequest, "like.already_liked", err)
		case errors.Is(err, common.ErrBookmarkNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "bookmark.not_found", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "like.error", err)
		}
		return
	}

	common.SuccessResponse(c, like)
}

// Unlike handles DELETE /api/likes/:bookmarkId
// @Summary 좋아요 취소
// @Tags likes
// @Produce json
// @Param bookmarkId path int true "북마크 ID"
// @Success 200 {object} common.MessageBody
// @Failure 400 {object} common.ErrorBody
// @Failure 401 {object} common.ErrorBody
// @Router /likes/{bookmarkId} [delete]
func (h *LikeHandler) Unlike(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	bookmarkID, ok := parseBookmarkID(c)
	if !ok {
		return
	}

	if err := h.service.Unlike(c.Request.Context(), userID, bookmarkID); err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "like.error", err)
		return
	}

	common.MessageResponse(c, http.StatusOK, "like.removed")
}

// Count handles GET /api/likes/:bookmarkId
// @Summary 좋아요 수 조회
// @Tags likes
// @Produce json
// @Param bookmarkId path int true "북마크 ID"
// @Success 200 {object} domain.LikeCountResponse
// @Failure 400 {object} common.ErrorBody
// @Router /likes/{bookmarkId} [get]
func (h *LikeHandler) Count(c *gin.Context) {
	bookmarkID, ok := parseBookmarkID(c)
	if !ok {
		return
	}

	count, err := h.service.Count(c.Request.Context(), bookmarkID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "like.error", err)
		return
	}

	common.SuccessResponse(c, domain.LikeCountResponse{LikeCount: count})
}

func parseBookmarkID(c *gin.Context) (uint64, bool) {
	bookmarkID, err := ginutil.ParamUint64(c, "bookmarkId")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "like.invalid_id", err)
		return 0, false
	}
	return bookmarkID, true
}
