package handler

import (
	"errors"
	"net/http"

	"ParkSpot-App/internal/application"
	domain "ParkSpot-App/internal/domain/model"
	"ParkSpot-App/model"

	"github.com/gin-gonic/gin"
)

// UsersHandler ユーザーに関するHTTPハンドラー
type UsersHandler struct {
	usersService application.UsersService
}

// NewUsersHandler UsersHandlerの新しいインスタンスを作成
func NewUsersHandler(usersService application.UsersService) *UsersHandler {
	return &UsersHandler{
		usersService: usersService,
	}
}

// GetUserByUID GET /api/users/uid/:uid - 外部認証UIDでユーザーを取得
func (h *UsersHandler) GetUserByUID(c *gin.Context) {
	uid := c.Param("uid")
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "uid is required",
		})
		return
	}

	user, err := h.usersService.GetByUID(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "User not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get user: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUser POST /api/users - ユーザーの作成（外部認証後の初回アクセスで呼ばれる）
func (h *UsersHandler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	// 必須フィールドの検証
	if req.UID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "uid is required",
		})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "email is required",
		})
		return
	}

	user, err := h.usersService.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to create user: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, user)
}
