package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"gamedevforum/internal/db"
	"gamedevforum/internal/handlers"
	"gamedevforum/internal/middleware"
	"gamedevforum/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	timeout := 5 * time.Second
	if ms := os.Getenv("STORE_TIMEOUT_MS"); ms != "" {
		if d, err := time.ParseDuration(ms + "ms"); err == nil {
			timeout = d
		}
	}
	st := store.New(db.Mongo, timeout)

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	cookieStore := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("gamedevforum_session", cookieStore))

	// CORS for the JSON API (the static frontend may be served elsewhere)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsConfig))

	// Load Templates
	r.HTMLRender = loadTemplates("./web/templates")

	// Static Assets
	r.Static("/static", "./web/static")

	// Middleware
	r.Use(middleware.LoadUser(st))

	// Handlers
	forumHandler := handlers.NewForumHandler(st)
	pageHandler := handlers.NewPageHandler(st)
	authHandler := handlers.NewAuthHandler(st)

	// Pages
	r.GET("/", pageHandler.Index)
	r.GET("/forum", pageHandler.Forum)
	r.GET("/forum/new", pageHandler.NewCategory)
	r.GET("/c/:category_id", pageHandler.Category)
	r.GET("/c/:category_id/new", pageHandler.NewThread)
	r.GET("/t/:thread_id", pageHandler.Thread)
	r.GET("/t/:thread_id/new", pageHandler.NewPost)
	r.GET("/about", pageHandler.About)
	r.GET("/rules", pageHandler.Rules)
	r.GET("/privacy", pageHandler.Privacy)
	r.GET("/tos", pageHandler.TOS)

	// Auth
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)
	r.POST("/signup", authHandler.Signup)

	// News API: threads live under the seeded news category
	r.POST("/", forumHandler.CreateNewsThread)
	news := r.Group("/news/threads")
	{
		news.PUT("/:thread_id", forumHandler.UpdateThread)
		news.DELETE("/:thread_id", forumHandler.DeleteThread)
		news.GET("/:thread_id/posts", forumHandler.ListPosts)
		news.POST("/:thread_id/posts", forumHandler.CreatePost)
		news.PUT("/:thread_id/posts/:post_id", forumHandler.UpdatePost)
		news.DELETE("/:thread_id/posts/:post_id", forumHandler.DeletePost)
	}

	// Forum API: categories under the forum section, then threads and posts
	forum := r.Group("/forum/categories")
	{
		forum.GET("", forumHandler.ListCategories)
		forum.POST("", forumHandler.CreateCategory)
		forum.PUT("/:category_id", forumHandler.UpdateCategory)
		forum.DELETE("/:category_id", forumHandler.DeleteCategory)

		forum.GET("/:category_id/threads", forumHandler.ListThreads)
		forum.POST("/:category_id/threads", forumHandler.CreateThread)
		forum.PUT("/:category_id/threads/:thread_id", forumHandler.UpdateThread)
		forum.DELETE("/:category_id/threads/:thread_id", forumHandler.DeleteThread)

		forum.GET("/:category_id/threads/:thread_id/posts", forumHandler.ListPosts)
		forum.POST("/:category_id/threads/:thread_id/posts", forumHandler.CreatePost)
		forum.PUT("/:category_id/threads/:thread_id/posts/:post_id", forumHandler.UpdatePost)
		forum.DELETE("/:category_id/threads/:thread_id/posts/:post_id", forumHandler.DeletePost)
	}

	// User management (beyond signup)
	users := r.Group("/users")
	users.Use(middleware.AuthRequired())
	{
		users.PUT("/:user_id", authHandler.UpdateUser)
		users.DELETE("/:user_id", authHandler.DeleteUser)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("GameDevForum server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	// Every view is assembled on top of the shared layout files.
	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+1)
		files = append(files, layouts...)
		files = append(files, view)
		return files
	}

	views := []string{
		"index.html",
		"forum.html",
		"category.html",
		"thread.html",
		"new_category.html",
		"new_thread.html",
		"new_post.html",
		"login.html",
		"about.html",
		"rules.html",
		"privacy.html",
		"tos.html",
		"error.html",
	}
	for _, view := range views {
		r.AddFromFiles(view, assemble(templatesDir+"/views/"+view)...)
	}

	return r
}
