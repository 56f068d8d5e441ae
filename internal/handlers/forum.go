package handlers

import (
	"net/http"
	"time"

	"gamedevforum/internal/models"
	"gamedevforum/internal/store"

	"github.com/gin-gonic/gin"
)

// ForumHandler exposes the hierarchy store as the JSON API the frontend
// consumes. Sections are fixed: the "forum" section holds user categories,
// the "news" section holds the single seeded news category.
type ForumHandler struct {
	store *store.Store
}

func NewForumHandler(st *store.Store) *ForumHandler {
	return &ForumHandler{store: st}
}

type titlePayload struct {
	Title string `json:"title"`
}

type postPayload struct {
	Content string `json:"content"`
}

// newsCategory resolves the seeded category of the news section.
func (h *ForumHandler) newsCategory(c *gin.Context) (*models.Category, bool) {
	categories, err := h.store.ListCategories(c.Request.Context(), "news", 1, 0, "")
	if err != nil {
		JSONStoreError(c, err)
		return nil, false
	}
	if len(categories) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "news category does not exist"})
		return nil, false
	}
	return &categories[0], true
}

// --- Categories ---

func (h *ForumHandler) ListCategories(c *gin.Context) {
	limit, skip, filter := pagination(c)
	categories, err := h.store.ListCategories(c.Request.Context(), "forum", limit, skip, filter)
	if err != nil {
		JSONStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *ForumHandler) CreateCategory(c *gin.Context) {
	var payload titlePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	id, err := h.store.CreateCategory(c.Request.Context(), payload.Title, "forum")
	if err != nil {
		JSONStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"new_category_id": id})
}

func (h *ForumHandler) UpdateCategory(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.store.UpdateCategory(c.Request.Context(), c.Param("category_id"), fields); err != nil {
		JSONStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ForumHandler) DeleteCategory(c *gin.Context) {
	if err := h.store.DeleteCategory(c.Request.Context(), c.Param("category_id")); err != nil {
		JSONStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Threads ---

func (h *ForumHandler) ListThreads(c *gin.Context) {
	limit, skip, filter := pagination(c)
	threads, err := h.store.ListThreads(c.Request.Context(), c.Param("category_id"), limit, skip, filter)
	if err != nil {
		JSONStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"threads": threads})
}

func (h *ForumHandler) CreateThread(c *gin.Context) {
	var payload titlePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	id, err := h.store.CreateThread(c.Request.Context(), payload.Title, c.Param("category_id"))
	if err != nil {
		JSONStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"new_thread_id": id})
}

func (h *ForumHandler) UpdateThread(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.store.UpdateThread(c.Request.Context(), c.Param("thread_id"), fields); err != nil {
		JSONStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ForumHandler) DeleteThread(c *gin.Context) {
	if err := h.store.DeleteThread(c.Request.Context(), c.Param("thread_id")); err != nil {
		JSONStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateNewsThread handles POST / — a new thread under the news category.
func (h *ForumHandler) CreateNewsThread(c *gin.Context) {
	var payload titlePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	category, ok := h.newsCategory(c)
	if !ok {
		return
	}
	id, err := h.store.CreateThread(c.Request.Context(), payload.Title, category.CategoryID)
	if err != nil {
		JSONStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"new_thread_id": id})
}

// --- Posts ---

func (h *ForumHandler) ListPosts(c *gin.Context) {
	limit, skip, filter := pagination(c)
	posts, err := h.store.ListPosts(c.Request.Context(), c.Param("thread_id"), limit, skip, filter)
	if err != nil {
		JSONStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *ForumHandler) CreatePost(c *gin.Context) {
	var payload postPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	id, err := h.store.CreatePost(c.Request.Context(),
		currentUserID(c), payload.Content, time.Now().UTC(), c.Param("thread_id"))
	if err != nil {
		JSONStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"new_post_id": id})
}

func (h *ForumHandler) UpdatePost(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	// The edit date is server-assigned: a content edit refreshes it, and a
	// client-supplied value (which would arrive as a JSON string) is dropped.
	delete(fields, "last_edit_date")
	if content, ok := fields["content"].(string); ok && content != "" {
		fields["last_edit_date"] = time.Now().UTC()
	}
	if err := h.store.UpdatePost(c.Request.Context(), c.Param("post_id"), fields); err != nil {
		JSONStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ForumHandler) DeletePost(c *gin.Context) {
	if err := h.store.DeletePost(c.Request.Context(), c.Param("post_id")); err != nil {
		JSONStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
