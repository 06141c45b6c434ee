package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(protected *gin.RouterGroup, recruiter *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := protected.Group("/candidates")
	{
		candidates.POST("", handler.Create)
		candidates.GET("/:userId", handler.Get)
		candidates.PUT("/:userId", handler.Update)
	}

	// Candidate discovery is for recruiters and admins only.
	search := recruiter.Group("/candidates")
	{
		search.GET("/search", handler.Search)
		search.GET("/by-level/:level", handler.ByExperienceLevel)
		search.GET("/by-degree", handler.ByEducationDegree)
		search.GET("/by-current-title", handler.ByCurrentTitle)
	}
}

// Create godoc
// @Summary      Create a candidate profile
// @Description  Create the authenticated user's candidate profile; fails if one already exists
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.CandidateProfile  true  "Profile JSON"
// @Success      201      {object}  domain.CandidateProfile
// @Failure      400      {object}  response.ErrorBody
// @Router       /candidates [post]
// @Security     BearerAuth
func (h *CandidateHandler) Create(c *gin.Context) {
	var profile domain.CandidateProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(err)
		return
	}

	// Profiles are always owned by the authenticated user.
	profile.UserID = c.GetString(string(domain.KeyUserID))

	if err := h.candidateUC.CreateProfile(c.Request.Context(), &profile); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, profile)
}

// Get godoc
// @Summary      Get a candidate profile
// @Tags         candidates
// @Produce      json
// @Param        userId  path      string  true  "Owning user ID"
// @Success      200     {object}  domain.CandidateProfile
// @Failure      404     {object}  response.ErrorBody
// @Router       /candidates/{userId} [get]
// @Security     BearerAuth
func (h *CandidateHandler) Get(c *gin.Context) {
	userID := c.Param("userId")

	profile, err := h.candidateUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, profile)
}

// Update godoc
// @Summary      Update a candidate profile
// @Description  Replace the profile; the embedded education and experience lists are replaced wholesale
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        userId   path      string                   true  "Owning user ID"
// @Param        profile  body      domain.CandidateProfile  true  "Profile JSON"
// @Success      200      {object}  domain.CandidateProfile
// @Failure      403      {object}  response.ErrorBody
// @Router       /candidates/{userId} [put]
// @Security     BearerAuth
func (h *CandidateHandler) Update(c *gin.Context) {
	userID := c.Param("userId")
	if err := requireSelfOrAdmin(c, userID); err != nil {
		c.Error(err)
		return
	}

	var profile domain.CandidateProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(err)
		return
	}
	profile.UserID = userID

	if err := h.candidateUC.UpdateProfile(c.Request.Context(), &profile); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, profile)
}

// Search godoc
// @Summary      Search candidates
// @Description  Combined search; all populated predicates must match
// @Tags         candidates
// @Produce      json
// @Param        skills          query  string  false  "Comma-separated skills (any match)"
// @Param        min_experience  query  int     false  "Minimum years of experience"
// @Param        location        query  string  false  "Location fragment"
// @Success      200  {array}  domain.CandidateProfile
// @Router       /candidates/search [get]
// @Security     BearerAuth
func (h *CandidateHandler) Search(c *gin.Context) {
	var filter domain.CandidateSearch

	if raw := c.Query("skills"); raw != "" {
		for _, skill := range strings.Split(raw, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				filter.Skills = append(filter.Skills, skill)
			}
		}
	}
	if raw := c.Query("min_experience"); raw != "" {
		min, err := strconv.Atoi(raw)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid min_experience"))
			return
		}
		filter.MinExperience = min
	}
	filter.Location = c.Query("location")

	profiles, err := h.candidateUC.Search(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, profiles)
}

// ByExperienceLevel lists candidates at an exact experience level.
func (h *CandidateHandler) ByExperienceLevel(c *gin.Context) {
	profiles, err := h.candidateUC.FindByExperienceLevel(c.Request.Context(), c.Param("level"))
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, profiles)
}

// ByEducationDegree lists candidates holding the given degree.
func (h *CandidateHandler) ByEducationDegree(c *gin.Context) {
	profiles, err := h.candidateUC.FindByEducationDegree(c.Request.Context(), c.Query("degree"))
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, profiles)
}

// ByCurrentTitle lists candidates whose current position matches the title.
func (h *CandidateHandler) ByCurrentTitle(c *gin.Context) {
	profiles, err := h.candidateUC.FindByCurrentTitle(c.Request.Context(), c.Query("title"))
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, profiles)
}

// requireSelfOrAdmin allows the resource owner or an admin through.
func requireSelfOrAdmin(c *gin.Context, userID string) error {
	if c.GetString(string(domain.KeyUserID)) == userID {
		return nil
	}
	for _, role := range middleware.PrincipalRoles(c) {
		if role == domain.RoleAdmin {
			return nil
		}
	}
	return apperror.Forbidden("You can only modify your own profile")
}
