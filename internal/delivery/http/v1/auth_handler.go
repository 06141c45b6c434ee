package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, admin *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
	}

	users := protected.Group("/users")
	{
		users.GET("/me", handler.Me)
		users.PUT("/me", handler.UpdateProfile)
	}

	adminUsers := admin.Group("/users")
	{
		adminUsers.GET("/:username", handler.GetByUsername)
		adminUsers.DELETE("/:id", handler.Delete)
	}
}

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=8"`
	Roles    []string `json:"roles"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

// Register godoc
// @Summary      Register a new account
// @Description  Create a user with a unique username and email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Registration JSON"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  response.ErrorBody
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.Roles)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"success":  true,
		"id":       user.ID,
		"username": user.Username,
	})
}

// Login godoc
// @Summary      Authenticate and obtain a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials JSON"
// @Success      200   {object}  domain.LoginResult
// @Failure      401   {object}  response.ErrorBody
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// Me godoc
// @Summary      Get the authenticated user
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary      Update the authenticated user's account
// @Description  Partial update; omitted fields are left unchanged
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateProfileRequest  true  "Profile JSON"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  response.ErrorBody
// @Router       /users/me [put]
// @Security     BearerAuth
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.authUC.UpdateProfile(c.Request.Context(), userID, domain.UserUpdate{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, user)
}

func (h *AuthHandler) GetByUsername(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		c.Error(apperror.BadRequest("Username is required"))
		return
	}

	user, err := h.authUC.GetByUsername(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, user)
}

// Delete is the explicit admin removal path; there is no self-service
// account deletion.
func (h *AuthHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.authUC.DeleteUser(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"success": true})
}
