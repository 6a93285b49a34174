package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/algoviz/algoviz-api/internal/api/handlers"
	"github.com/algoviz/algoviz-api/internal/config"
	middlewares "github.com/algoviz/algoviz-api/internal/middleware"
	"github.com/algoviz/algoviz-api/internal/services"
)

// Dependencies são os serviços já construídos que o router expõe
type Dependencies struct {
	Config    *config.Config
	Logger    *zap.Logger
	Views     *services.ViewService
	Listing   *services.ListingService
	Quiz      *services.QuizService
	Auth      handlers.Authenticator
	RepoStats handlers.RepoStatsProvider
	Readiness map[string]handlers.Checker
	Health    map[string]handlers.Checker
}

func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(deps.Logger))
	r.Use(middlewares.RequestTiming())
	r.Use(corsMiddleware(deps.Config.CORSAllowedOrigins))
	r.Use(middlewares.SessionContext())

	blogHandler := handlers.NewBlogHandler(deps.Listing)
	viewHandler := handlers.NewViewHandler(deps.Views)
	authHandler := handlers.NewAuthHandler(deps.Auth, handlers.CookieOptions{
		Domain: deps.Config.CookieDomain,
		Secure: deps.Config.CookieSecure,
		MaxAge: deps.Config.SessionMaxAge,
	}, deps.Logger)
	statsHandler := handlers.NewStatsHandler(deps.RepoStats)
	quizHandler := handlers.NewQuizHandler(deps.Quiz)
	healthHandler := handlers.NewHealthHandler(deps.Readiness, deps.Health)

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/health", healthHandler.Health)

	api := r.Group("/api/v1")
	{
		blog := api.Group("/blog")
		{
			blog.GET("/posts", blogHandler.ListPosts)
			blog.GET("/posts/:id", blogHandler.GetPost)
			blog.GET("/categories", blogHandler.ListCategories)
		}

		views := api.Group("/views")
		{
			views.POST("", viewHandler.OpenView)
			views.GET("/:id", viewHandler.GetView)
			views.DELETE("/:id", viewHandler.CloseView)
			views.PUT("/:id/search", viewHandler.UpdateSearch)
			views.PUT("/:id/category", viewHandler.UpdateCategory)
			views.POST("/:id/items/:itemId/open", viewHandler.OpenItem)
			views.POST("/:id/page/next", viewHandler.NextPage)
			views.POST("/:id/page/prev", viewHandler.PreviousPage)
			views.PUT("/:id/page", viewHandler.GotoPage)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/password-rules", authHandler.PasswordRules)
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/google", authHandler.GoogleLogin)
			auth.GET("/session", authHandler.Session)
			auth.DELETE("/session", authHandler.Logout)
		}

		api.GET("/repo/stats", statsHandler.RepoStats)

		quiz := api.Group("/quiz")
		{
			quiz.GET("/setup", quizHandler.Setup)
			quiz.POST("/sessions", quizHandler.CreateSession)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// corsMiddleware libera o front-end. A sessão usa cookies, então só origens da
// lista recebem a origem ecoada e Allow-Credentials; "*" na lista libera as
// demais sem credenciais.
func corsMiddleware(allowed []string) gin.HandlerFunc {
	origins := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		origins[o] = true
	}

	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Add("Vary", "Origin")

		origin := c.GetHeader("Origin")
		switch {
		case origin == "":
		case origins[origin]:
			header.Set("Access-Control-Allow-Origin", origin)
			header.Set("Access-Control-Allow-Credentials", "true")
		case origins["*"]:
			header.Set("Access-Control-Allow-Origin", "*")
		}
		header.Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		header.Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
