package handlers

import (
	"html/template"
	"net/http"

	"gamedevforum/internal/store"
	"gamedevforum/internal/utils"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the browse pages. It reads through the same store as
// the JSON API; all writes go through the API.
type PageHandler struct {
	store *store.Store
}

func NewPageHandler(st *store.Store) *PageHandler {
	return &PageHandler{store: st}
}

// Index lists the threads of the news section's category.
func (h *PageHandler) Index(c *gin.Context) {
	categories, err := h.store.ListCategories(c.Request.Context(), "news", 1, 0, "")
	if err != nil || len(categories) == 0 {
		RenderError(c, http.StatusNotFound, "The news section is not available")
		return
	}
	limit, skip, _ := pagination(c)
	threads, err := h.store.ListThreads(c.Request.Context(), categories[0].CategoryID, limit, skip, "")
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load news")
		return
	}
	Render(c, http.StatusOK, "index.html", gin.H{
		"Title":    "News",
		"Category": categories[0],
		"Threads":  threads,
	})
}

// Forum lists the categories of the forum section.
func (h *PageHandler) Forum(c *gin.Context) {
	limit, skip, _ := pagination(c)
	categories, err := h.store.ListCategories(c.Request.Context(), "forum", limit, skip, "")
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load the forum")
		return
	}
	Render(c, http.StatusOK, "forum.html", gin.H{
		"Title":      "Forum",
		"Categories": categories,
	})
}

// Category lists the threads of one category.
func (h *PageHandler) Category(c *gin.Context) {
	id := c.Param("category_id")
	category, err := h.store.GetCategory(c.Request.Context(), id)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load the category")
		return
	}
	if category == nil {
		RenderError(c, http.StatusNotFound, "This category does not exist")
		return
	}
	limit, skip, _ := pagination(c)
	threads, err := h.store.ListThreads(c.Request.Context(), id, limit, skip, "")
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load the category")
		return
	}
	Render(c, http.StatusOK, "category.html", gin.H{
		"Title":    category.Title,
		"Category": category,
		"Threads":  threads,
	})
}

type postView struct {
	PostID  string
	Author  string
	Content template.HTML
	Created string
	Edited  string
	WasEdit bool
}

// Thread shows one thread with its posts rendered as sanitized markdown.
func (h *PageHandler) Thread(c *gin.Context) {
	id := c.Param("thread_id")
	thread, err := h.store.GetThread(c.Request.Context(), id)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load the thread")
		return
	}
	if thread == nil {
		RenderError(c, http.StatusNotFound, "This thread does not exist")
		return
	}
	limit, skip, _ := pagination(c)
	posts, err := h.store.ListPosts(c.Request.Context(), id, limit, skip, "")
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load the thread")
		return
	}

	views := make([]postView, len(posts))
	for i, p := range posts {
		author := p.AuthorID
		if author == "" {
			author = "[deleted]"
		}
		views[i] = postView{
			PostID:  p.PostID,
			Author:  author,
			Content: utils.RenderMarkdown(p.Content),
			Created: p.CreationDate.Format("2006-01-02 15:04"),
			Edited:  p.LastEditDate.Format("2006-01-02 15:04"),
			WasEdit: p.LastEditDate.After(p.CreationDate),
		}
	}
	Render(c, http.StatusOK, "thread.html", gin.H{
		"Title":  thread.Title,
		"Thread": thread,
		"Posts":  views,
	})
}

// NewCategory renders the create-category form; the frontend routes here via
// the reserved "new" path token.
func (h *PageHandler) NewCategory(c *gin.Context) {
	Render(c, http.StatusOK, "new_category.html", gin.H{"Title": "New category"})
}

func (h *PageHandler) NewThread(c *gin.Context) {
	Render(c, http.StatusOK, "new_thread.html", gin.H{
		"Title":      "New thread",
		"CategoryID": c.Param("category_id"),
	})
}

func (h *PageHandler) NewPost(c *gin.Context) {
	Render(c, http.StatusOK, "new_post.html", gin.H{
		"Title":    "New post",
		"ThreadID": c.Param("thread_id"),
	})
}

func (h *PageHandler) About(c *gin.Context) {
	Render(c, http.StatusOK, "about.html", gin.H{"Title": "About"})
}

func (h *PageHandler) Rules(c *gin.Context) {
	Render(c, http.StatusOK, "rules.html", gin.H{"Title": "Rules"})
}

func (h *PageHandler) Privacy(c *gin.Context) {
	Render(c, http.StatusOK, "privacy.html", gin.H{"Title": "Privacy"})
}

func (h *PageHandler) TOS(c *gin.Context) {
	Render(c, http.StatusOK, "tos.html", gin.H{"Title": "Terms of Service"})
}
