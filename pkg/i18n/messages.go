package i18n

// DefaultMessages returns built-in translations for all supported locales.
// These can be overridden by loading JSON files from a directory.
func DefaultMessages() map[Locale]map[string]string {
	return map[Locale]map[string]string{
		LocaleKo: koMessages,
		LocaleEn: enMessages,
	}
}

var koMessages = map[string]string{
	// Common errors
	"error.not_found":   "요청한 리소스를 찾을 수 없습니다",
	"error.bad_request": "잘못된 요청입니다",
	"error.internal":    "서버 오류",
	"error.validation":  "입력값이 올바르지 않습니다",

	// Auth
	"auth.required":         "인증이 필요합니다.",
	"auth.login_success":    "login ok",
	"auth.login_failed":     "이메일 또는 비밀번호가 올바르지 않습니다.",
	"auth.login_error":      "로그인 실패",
	"auth.register_success": "register success",
	"auth.register_missing": "email, password, nickname은 필수입니다.",
	"auth.register_error":   "회원가입 실패",
	"auth.duplicate_email":  "이미 사용 중인 이메일입니다.",
	"auth.logout_success":   "logout ok",
	"auth.user_not_found":   "존재하지 않는 사용자입니다.",

	// Bookmarks
	"bookmark.missing_fields": "tmdbId와 title은 필수입니다.",
	"bookmark.invalid_id":     "잘못된 tmdbId 입니다.",
	"bookmark.not_found":      "북마크가 존재하지 않습니다.",
	"bookmark.list_error":     "북마크 조회 중 서버 오류",
	"bookmark.create_error":   "북마크 생성 중 서버 오류",
	"bookmark.update_error":   "북마크 수정 중 서버 오류",
	"bookmark.delete_error":   "북마크 삭제 중 서버 오류",

	// Likes
	"like.invalid_id":    "잘못된 북마크 ID입니다.",
	"like.already_liked": "이미 좋아요 중입니다.",
	"like.removed":       "좋아요 취소됨",
	"like.error":         "좋아요 처리 중 서버 오류",

	// Movies
	"movie.invalid_id":     "잘못된 영화 ID입니다.",
	"movie.query_required": "검색어를 입력해주세요.",
	"movie.not_found":      "영화를 찾을 수 없습니다.",
	"movie.unavailable":    "영화 정보 서비스를 사용할 수 없습니다.",
	"movie.upstream_error": "영화 정보를 불러오지 못했습니다.",
}

var enMessages = map[string]string{
	// Common errors
	"error.not_found":   "The requested resource was not found",
	"error.bad_request": "Bad request",
	"error.internal":    "Server error",
	"error.validation":  "Invalid input",

	// Auth
	"auth.required":         "Authentication required.",
	"auth.login_success":    "login ok",
	"auth.login_failed":     "Invalid email or password.",
	"auth.login_error":      "Login failed",
	"auth.register_success": "register success",
	"auth.register_missing": "email, password and nickname are required.",
	"auth.register_error":   "Registration failed",
	"auth.duplicate_email":  "Email is already in use.",
	"auth.logout_success":   "logout ok",
	"auth.user_not_found":   "User does not exist.",

	// Bookmarks
	"bookmark.missing_fields": "tmdbId and title are required.",
	"bookmark.invalid_id":     "Invalid tmdbId.",
	"bookmark.not_found":      "Bookmark does not exist.",
	"bookmark.list_error":     "Server error while loading bookmarks",
	"bookmark.create_error":   "Server error while creating bookmark",
	"bookmark.update_error":   "Server error while updating bookmark",
	"bookmark.delete_error":   "Server error while deleting bookmark",

	// Likes
	"like.invalid_id":    "Invalid bookmark ID.",
	"like.already_liked": "Already liked.",
	"like.removed":       "Like removed",
	"like.error":         "Server error while processing like",

	// Movies
	"movie.invalid_id":     "Invalid movie ID.",
	"movie.query_required": "A search query is required.",
	"movie.not_found":      "Movie not found.",
	"movie.unavailable":    "Movie catalog is not available.",
	"movie.upstream_error": "Failed to load movie information.",
}
