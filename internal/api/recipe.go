package api

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dishcovery/backend/internal/middleware"
	"github.com/dishcovery/backend/internal/service"
	"github.com/dishcovery/backend/internal/types"
)

type RecipeHandler struct {
	recipeService service.IRecipeService
	authService   service.IAuthService
	emailService  service.IEmailService
	imageService  *service.ImageService
	limiter       *middleware.RateLimiter
}

func NewRecipeHandler(recipeService service.IRecipeService, authService service.IAuthService, emailService service.IEmailService, imageService *service.ImageService, limiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		authService:   authService,
		emailService:  emailService,
		imageService:  imageService,
		limiter:       limiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	mutation := []gin.HandlerFunc{middleware.AuthMiddleware(h.authService)}
	if h.limiter != nil {
		mutation = append(mutation, h.limiter.RateLimitMiddleware())
	}

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/search", h.SearchByName)
		recipes.GET("/cuisines", h.ListCuisines)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("/:id/rating", h.RateRecipe)
		recipes.POST("", append(mutation, h.CreateRecipe)...)
		recipes.PATCH("/:id", append(mutation, h.UpdateRecipe)...)
		recipes.POST("/:id/image", append(mutation, h.UploadImage)...)
	}

	router.GET("/ingredients", h.ListIngredients)
}

// ListRecipes filters by ingredient tokens and cuisine, with skip/limit
// pagination. When notify=true and an email is given, a digest of the results
// is dispatched in the background; its outcome never affects the response.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var tokens []string
	for _, raw := range c.QueryArray("ingredients") {
		for _, token := range strings.Split(raw, ",") {
			if token = strings.TrimSpace(token); token != "" {
				tokens = append(tokens, token)
			}
		}
	}
	cuisine := c.Query("cuisine")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "0"))
	if page < 0 {
		page = 0
	}
	if pageSize < 1 {
		pageSize = service.DefaultPageSize
	}

	recipes, total := h.recipeService.SearchByFilters(c.Request.Context(), tokens, cuisine, page, pageSize)

	if c.Query("notify") == "true" && c.Query("email") != "" && h.emailService != nil {
		email := c.Query("email")
		digest := recipes
		go func() {
			if err := h.emailService.SendSearchDigest(email, cuisine, digest); err != nil {
				log.Printf("search digest to %s failed: %v", email, err)
			}
		}()
	}

	c.JSON(http.StatusOK, types.SearchResponse{
		Recipes:      recipes,
		Page:         page,
		PageSize:     pageSize,
		TotalResults: total,
	})
}

func (h *RecipeHandler) SearchByName(c *gin.Context) {
	recipes := h.recipeService.SearchByName(c.Request.Context(), c.Query("name"))
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) ListCuisines(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cuisines": h.recipeService.Cuisines(c.Request.Context())})
}

func (h *RecipeHandler) ListIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ingredients": h.recipeService.IngredientNames(c.Request.Context())})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipe"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.NewRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrMissingName) || errors.Is(err, service.ErrRestaurantMismatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create recipe"})
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	modified, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update recipe"})
		return
	}
	if !modified {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found or no updates made"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"modified": true, "id": id})
}

func (h *RecipeHandler) RateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.RateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.RateRecipe(c.Request.Context(), id, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rate recipe"})
		}
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) UploadImage(c *gin.Context) {
	if h.imageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	url, err := h.imageService.UploadRecipeImage(c.Request.Context(), id, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	modified, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, &types.UpdateRecipeRequest{ImageURL: &url})
	if err != nil || !modified {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}
