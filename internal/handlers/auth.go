package handlers

import (
	"net/http"

	"gamedevforum/internal/middleware"
	"gamedevforum/internal/services"
	"gamedevforum/internal/store"
	"gamedevforum/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	store *store.Store
}

func NewAuthHandler(st *store.Store) *AuthHandler {
	return &AuthHandler{store: st}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.store.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Something went wrong, try again later")
		return
	}
	// A missing user and a wrong password get the same answer.
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		Render(c, http.StatusUnauthorized, "login.html", gin.H{"Error": "Wrong username or password"})
		return
	}

	token := services.GetSessionService().Create(user.UserID)
	if err := middleware.SetSessionToken(c, token); err != nil {
		RenderError(c, http.StatusInternalServerError, "Something went wrong, try again later")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	c.Redirect(http.StatusFound, "/")
}

type signupPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// Signup creates a user. The password is hashed here; the store never sees
// plaintext.
func (h *AuthHandler) Signup(c *gin.Context) {
	var payload signupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if payload.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	id, err := h.store.CreateUser(c.Request.Context(), payload.Username, hash, payload.Email)
	if err != nil {
		JSONStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"new_user_id": id})
}

// UpdateUser partially updates a user. A plaintext "password" field is
// hashed and rewritten to password_hash before it reaches the store.
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	delete(fields, "password_hash")
	if password, ok := fields["password"].(string); ok {
		delete(fields, "password")
		if password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		hash, err := utils.HashPassword(password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		fields["password_hash"] = hash
	}
	if err := h.store.UpdateUser(c.Request.Context(), c.Param("user_id"), fields); err != nil {
		JSONStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteUser removes the account. Authored posts stay, with their author
// reference cleared by the store.
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	if err := h.store.DeleteUser(c.Request.Context(), c.Param("user_id")); err != nil {
		JSONStoreError(c, err)
		return
	}
	middleware.ClearSession(c)
	c.Status(http.StatusNoContent)
}
