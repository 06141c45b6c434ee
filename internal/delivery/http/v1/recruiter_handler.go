package v1

import (
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RecruiterHandler struct {
	recruiterUC domain.RecruiterUsecase
}

func NewRecruiterHandler(protected *gin.RouterGroup, admin *gin.RouterGroup, recruiterUC domain.RecruiterUsecase) {
	handler := &RecruiterHandler{recruiterUC: recruiterUC}

	recruiters := protected.Group("/recruiters")
	{
		recruiters.POST("", handler.Create)
		recruiters.GET("/search", handler.Search)
		recruiters.GET("/:userId", handler.Get)
		recruiters.PUT("/:userId", handler.Update)
	}

	// Verification is an admin action.
	admin.PATCH("/recruiters/:userId/verify", handler.SetVerified)
}

type VerifyRequest struct {
	Verified bool `json:"verified"`
}

// Create godoc
// @Summary      Create a recruiter profile
// @Description  Create the authenticated user's recruiter profile; new profiles start unverified
// @Tags         recruiters
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.RecruiterProfile  true  "Profile JSON"
// @Success      201      {object}  domain.RecruiterProfile
// @Failure      400      {object}  response.ErrorBody
// @Router       /recruiters [post]
// @Security     BearerAuth
func (h *RecruiterHandler) Create(c *gin.Context) {
	var profile domain.RecruiterProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(err)
		return
	}
	profile.UserID = c.GetString(string(domain.KeyUserID))

	if err := h.recruiterUC.CreateProfile(c.Request.Context(), &profile); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, profile)
}

// Get godoc
// @Summary      Get a recruiter profile
// @Tags         recruiters
// @Produce      json
// @Param        userId  path      string  true  "Owning user ID"
// @Success      200     {object}  domain.RecruiterProfile
// @Failure      404     {object}  response.ErrorBody
// @Router       /recruiters/{userId} [get]
// @Security     BearerAuth
func (h *RecruiterHandler) Get(c *gin.Context) {
	profile, err := h.recruiterUC.GetProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, profile)
}

// Update godoc
// @Summary      Update a recruiter profile
// @Description  Replace the profile; the verified flag is never writable through this route
// @Tags         recruiters
// @Accept       json
// @Produce      json
// @Param        userId   path      string                   true  "Owning user ID"
// @Param        profile  body      domain.RecruiterProfile  true  "Profile JSON"
// @Success      200      {object}  domain.RecruiterProfile
// @Failure      403      {object}  response.ErrorBody
// @Router       /recruiters/{userId} [put]
// @Security     BearerAuth
func (h *RecruiterHandler) Update(c *gin.Context) {
	userID := c.Param("userId")
	if err := requireSelfOrAdmin(c, userID); err != nil {
		c.Error(err)
		return
	}

	var profile domain.RecruiterProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(err)
		return
	}
	profile.UserID = userID

	if err := h.recruiterUC.UpdateProfile(c.Request.Context(), &profile); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, profile)
}

// SetVerified godoc
// @Summary      Set recruiter verification
// @Tags         recruiters
// @Accept       json
// @Produce      json
// @Param        userId  path      string         true  "Owning user ID"
// @Param        body    body      VerifyRequest  true  "Verification flag"
// @Success      200     {object}  map[string]interface{}
// @Failure      404     {object}  response.ErrorBody
// @Router       /admin/recruiters/{userId}/verify [patch]
// @Security     BearerAuth
func (h *RecruiterHandler) SetVerified(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	userID := c.Param("userId")
	if err := h.recruiterUC.SetVerified(c.Request.Context(), userID, req.Verified); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"user_id": userID, "verified": req.Verified})
}

// Search godoc
// @Summary      Search recruiters
// @Description  Combined search; all populated predicates must match
// @Tags         recruiters
// @Produce      json
// @Param        company_name  query  string  false  "Company name fragment"
// @Param        company_size  query  string  false  "Exact company size"
// @Param        verified      query  bool    false  "Verification flag"
// @Param        location      query  string  false  "Location fragment"
// @Success      200  {array}  domain.RecruiterProfile
// @Router       /recruiters/search [get]
// @Security     BearerAuth
func (h *RecruiterHandler) Search(c *gin.Context) {
	filter := domain.RecruiterSearch{
		CompanyName: c.Query("company_name"),
		CompanySize: c.Query("company_size"),
		Location:    c.Query("location"),
	}
	if raw := c.Query("verified"); raw != "" {
		verified, err := strconv.ParseBool(raw)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid verified flag"))
			return
		}
		filter.Verified = &verified
	}

	profiles, err := h.recruiterUC.Search(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, profiles)
}
