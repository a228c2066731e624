package http

import (
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/recipehub/backend/internal/domain/recipe"
	"github.com/recipehub/backend/internal/ports/inbound"
)

// RecipeHandler serves the recipe catalog endpoints.
type RecipeHandler struct {
	recipes inbound.RecipeService
	logger  *zap.Logger
}

// NewRecipeHandler builds the handler.
func NewRecipeHandler(recipes inbound.RecipeService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, logger: logger.Named("recipe-handler")}
}

type ingredientRequest struct {
	Name  string  `json:"name"`
	Count float64 `json:"count"`
	Unit  string  `json:"unit"`
}

type createRecipeRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Instruction string              `json:"instruction"`
	ImageName   string              `json:"imageName"`
	Difficulty  string              `json:"difficulty"`
	CookingTime string              `json:"cookingTime"`
	Ingredients []ingredientRequest `json:"ingredients"`
}

type updateRecipeRequest struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Instruction *string             `json:"instruction"`
	ImageName   *string             `json:"imageName"`
	Difficulty  *string             `json:"difficulty"`
	CookingTime *string             `json:"cookingTime"`
	Ingredients []ingredientRequest `json:"ingredients"`
}

type rateRequest struct {
	Stars int `json:"stars"`
}

type commentRequest struct {
	Content string `json:"content"`
}

type ingredientResponse struct {
	Name  string  `json:"name"`
	Count float64 `json:"count"`
	Unit  string  `json:"unit"`
}

type commentResponse struct {
	AuthorID       *int64    `json:"authorId"`
	AuthorUsername string    `json:"authorUsername"`
	Content        string    `json:"content"`
	PublishedAt    time.Time `json:"publishedAt"`
}

type recipeResponse struct {
	ID          int64                `json:"id"`
	AuthorID    int64                `json:"authorId"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Instruction string               `json:"instruction"`
	ImageName   string               `json:"imageName"`
	Difficulty  string               `json:"difficulty"`
	PublishedAt time.Time            `json:"publishedAt"`
	CookingTime string               `json:"cookingTime"`
	Rating      float64              `json:"rating"`
	Votes       int                  `json:"votes"`
	Ingredients []ingredientResponse `json:"ingredients"`
	Comments    []commentResponse    `json:"comments"`
}

type summaryResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	ImageName   string    `json:"imageName"`
	Difficulty  string    `json:"difficulty"`
	Rating      float64   `json:"rating"`
	Votes       int       `json:"votes"`
	PublishedAt time.Time `json:"publishedAt"`
}

func (h *RecipeHandler) register(api *gin.RouterGroup, auth gin.HandlerFunc) {
	api.GET("/recipes", h.list)
	api.GET("/recipes/search", h.search)
	api.GET("/recipes/:id", h.get)

	protected := api.Group("", auth)
	protected.POST("/recipes", h.create)
	protected.PATCH("/recipes/:id", h.update)
	protected.DELETE("/recipes/:id", h.delete)
	protected.POST("/recipes/:id/rate", h.rate)
	protected.POST("/recipes/:id/comments", h.comment)
}

func (h *RecipeHandler) create(c *gin.Context) {
	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(nethttp.StatusBadRequest, errorBody{Code: "MALFORMED_BODY", Message: "malformed request body"})
		return
	}

	cmd := inbound.CreateRecipeCommand{
		AuthorID:    currentUserID(c),
		Title:       req.Title,
		Description: req.Description,
		Instruction: req.Instruction,
		ImageName:   req.ImageName,
		Difficulty:  req.Difficulty,
		CookingTime: req.CookingTime,
		Ingredients: toIngredientCommands(req.Ingredients),
	}

	id, err := h.recipes.Create(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(nethttp.StatusCreated, gin.H{"id": id})
}

func (h *RecipeHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(nethttp.StatusBadRequest, errorBody{Code: "MALFORMED_BODY", Message: "malformed request body"})
		return
	}

	cmd := inbound.UpdateRecipeCommand{
		RecipeID:    id,
		EditorID:    currentUserID(c),
		Title:       req.Title,
		Description: req.Description,
		Instruction: req.Instruction,
		ImageName:   req.ImageName,
		Difficulty:  req.Difficulty,
		CookingTime: req.CookingTime,
	}
	if req.Ingredients != nil {
		cmd.Ingredients = toIngredientCommands(req.Ingredients)
	}

	if err := h.recipes.Update(c.Request.Context(), cmd); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(nethttp.StatusNoContent)
}

func (h *RecipeHandler) rate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(nethttp.StatusBadRequest, errorBody{Code: "MALFORMED_BODY", Message: "malformed request body"})
		return
	}

	stars, err := h.recipes.Rate(c.Request.Context(), inbound.RateRecipeCommand{
		RecipeID: id,
		UserID:   currentUserID(c),
		Stars:    req.Stars,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(nethttp.StatusOK, gin.H{"stars": int(stars)})
}

func (h *RecipeHandler) comment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(nethttp.StatusBadRequest, errorBody{Code: "MALFORMED_BODY", Message: "malformed request body"})
		return
	}

	err := h.recipes.Comment(c.Request.Context(), inbound.CommentRecipeCommand{
		RecipeID: id,
		AuthorID: currentUserID(c),
		Content:  req.Content,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(nethttp.StatusCreated)
}

func (h *RecipeHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(nethttp.StatusNoContent)
}

func (h *RecipeHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rec, err := h.recipes.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(nethttp.StatusOK, toRecipeResponse(rec))
}

func (h *RecipeHandler) list(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	sort := c.DefaultQuery("sortBy", "popular")

	summaries, err := h.recipes.GetByPage(c.Request.Context(), page, pageSize, sort)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(nethttp.StatusOK, toSummaryResponses(summaries))
}

func (h *RecipeHandler) search(c *gin.Context) {
	summaries, err := h.recipes.GetByQuery(c.Request.Context(), c.Query("query"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(nethttp.StatusOK, toSummaryResponses(summaries))
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(nethttp.StatusBadRequest, errorBody{Code: "MALFORMED_ID", Message: "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

func toIngredientCommands(reqs []ingredientRequest) []inbound.IngredientCommand {
	cmds := make([]inbound.IngredientCommand, 0, len(reqs))
	for _, r := range reqs {
		cmds = append(cmds, inbound.IngredientCommand{Name: r.Name, Count: r.Count, Unit: r.Unit})
	}
	return cmds
}

func toRecipeResponse(rec *domain.Recipe) recipeResponse {
	ingredients := make([]ingredientResponse, 0, len(rec.Ingredients))
	for _, i := range rec.Ingredients {
		ingredients = append(ingredients, ingredientResponse{
			Name:  i.Name(),
			Count: i.Count(),
			Unit:  string(i.Unit()),
		})
	}

	comments := make([]commentResponse, 0, len(rec.Comments))
	for _, cm := range rec.Comments {
		comments = append(comments, commentResponse{
			AuthorID:       cm.AuthorID,
			AuthorUsername: cm.AuthorUsername,
			Content:        cm.Content.Value(),
			PublishedAt:    cm.PublishedAt,
		})
	}

	return recipeResponse{
		ID:          rec.ID,
		AuthorID:    rec.AuthorID,
		Title:       rec.Title.Value(),
		Description: rec.Description.Value(),
		Instruction: rec.Instruction.Value(),
		ImageName:   rec.ImageName,
		Difficulty:  string(rec.Difficulty),
		PublishedAt: rec.PublishedAt,
		CookingTime: rec.CookingTime.String(),
		Rating:      rec.Rate.Value,
		Votes:       rec.Rate.Votes,
		Ingredients: ingredients,
		Comments:    comments,
	}
}

func toSummaryResponses(summaries []inbound.RecipeSummary) []summaryResponse {
	out := make([]summaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, summaryResponse{
			ID:          s.ID,
			Title:       s.Title,
			ImageName:   s.ImageName,
			Difficulty:  s.Difficulty,
			Rating:      s.Rating,
			Votes:       s.Votes,
			PublishedAt: s.PublishedAt,
		})
	}
	return out
}
