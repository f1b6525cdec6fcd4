package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dishcovery/backend/internal/middleware"
	"github.com/dishcovery/backend/internal/service"
	"github.com/dishcovery/backend/internal/types"
)

type ProfileHandler struct {
	profileService service.IProfileService
	authService    service.IAuthService
	limiter        *middleware.RateLimiter
}

func NewProfileHandler(profileService service.IProfileService, authService service.IAuthService, limiter *middleware.RateLimiter) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		authService:    authService,
		limiter:        limiter,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	mutation := []gin.HandlerFunc{middleware.AuthMiddleware(h.authService)}
	if h.limiter != nil {
		mutation = append(mutation, h.limiter.RateLimitMiddleware())
	}

	users := router.Group("/users/:username")
	{
		users.GET("/bookmarks", h.ListBookmarks)
		users.POST("/bookmarks", append(mutation, h.AddBookmark)...)
		users.DELETE("/bookmarks/:recipeID", append(mutation, h.RemoveBookmark)...)
		users.GET("/mealplan", h.GetMealPlan)
		users.PUT("/mealplan/:weekday", append(mutation, h.SetMealPlanSlot)...)
	}
}

func (h *ProfileHandler) ListBookmarks(c *gin.Context) {
	bookmarks, err := h.profileService.ListBookmarks(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks})
}

func (h *ProfileHandler) AddBookmark(c *gin.Context) {
	var req types.BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe is required"})
		return
	}

	if err := h.profileService.AddBookmark(c.Request.Context(), c.Param("username"), req.Recipe); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": true})
}

func (h *ProfileHandler) RemoveBookmark(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("recipeID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.profileService.RemoveBookmark(c.Request.Context(), c.Param("username"), recipeID); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

func (h *ProfileHandler) GetMealPlan(c *gin.Context) {
	plan, err := h.profileService.GetMealPlan(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *ProfileHandler) SetMealPlanSlot(c *gin.Context) {
	var req types.MealPlanSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.profileService.SetMealPlanSlot(c.Request.Context(), c.Param("username"), c.Param("weekday"), req.RecipeID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *ProfileHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, service.ErrBookmarkNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "bookmark not found"})
	case errors.Is(err, service.ErrAlreadyBookmarked):
		c.JSON(http.StatusConflict, gin.H{"error": "recipe already bookmarked"})
	case errors.Is(err, service.ErrInvalidWeekday), errors.Is(err, service.ErrMissingRecipeID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
