package api

import (
	"net/http"

	"github.com/campuslink/backend/internal/api/handler"
	custommw "github.com/campuslink/backend/internal/api/middleware"
	"github.com/campuslink/backend/internal/config"
	"github.com/campuslink/backend/internal/domain"
	mongorepo "github.com/campuslink/backend/internal/repository/mongo"
	"github.com/campuslink/backend/internal/repository/redis"
	"github.com/campuslink/backend/internal/security"
	"github.com/campuslink/backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, db *mongorepo.DB, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommw.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize security components
	jwtManager := security.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	// Initialize repositories
	userRepo := mongorepo.NewUserRepository(db)
	discussionRepo := mongorepo.NewDiscussionRepository(db)
	projectRepo := mongorepo.NewProjectRepository(db)
	updateRepo := mongorepo.NewProjectUpdateRepository(db)
	notificationRepo := mongorepo.NewNotificationRepository(db)

	discussionEngagement := mongorepo.NewDiscussionEngagement(db)
	projectEngagement := mongorepo.NewProjectEngagement(db)
	updateEngagement := mongorepo.NewProjectUpdateEngagement(db)

	// Initialize rate limiter and unread cache
	rateLimiter := redis.NewRateLimiter(
		redisClient,
		cfg.Security.RateLimit.RequestsPerMinute,
		cfg.Security.RateLimit.Burst,
	)
	unreadCache := redis.NewUnreadCache(redisClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	notificationService := service.NewNotificationService(notificationRepo, unreadCache)
	discussionService := service.NewDiscussionService(discussionRepo, userRepo)
	projectService := service.NewProjectService(projectRepo, userRepo)
	updateService := service.NewProjectUpdateService(updateRepo, projectRepo)
	collaborationService := service.NewCollaborationService(projectRepo, notificationService)
	engagementService := service.NewEngagementService(discussionEngagement, projectEngagement, updateEngagement)
	commentService := service.NewCommentService(discussionEngagement, projectEngagement, updateEngagement)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	discussionHandler := handler.NewDiscussionHandler(discussionService)
	projectHandler := handler.NewProjectHandler(projectService, collaborationService)
	updateHandler := handler.NewProjectUpdateHandler(updateService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	engagementHandler := handler.NewEngagementHandler(engagementService, commentService)

	// Auth middleware
	authMiddleware := custommw.NewAuthMiddleware(jwtManager)
	rateLimitMiddleware := custommw.NewRateLimitMiddleware(rateLimiter)

	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(db, redisClient))

		// Auth routes (public)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(rateLimitMiddleware.Limit)

			r.Get("/auth/me", authHandler.Me)

			// Discussion routes
			r.Route("/discussions", func(r chi.Router) {
				r.Get("/", discussionHandler.List)
				r.Post("/", discussionHandler.Create)

				r.Route("/{discussionID}", func(r chi.Router) {
					r.Get("/", discussionHandler.Get)
					r.Patch("/", discussionHandler.Update)
					r.Delete("/", discussionHandler.Delete)

					r.Post("/like", engagementHandler.ToggleLike(domain.KindDiscussion, "discussionID"))
					r.Post("/comments", engagementHandler.AddComment(domain.KindDiscussion, "discussionID"))
					r.Post("/comments/{commentID}/replies", engagementHandler.AddReply(domain.KindDiscussion, "discussionID"))
				})
			})

			// Project routes
			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Post("/", projectHandler.Create)

				r.Route("/{projectID}", func(r chi.Router) {
					r.Get("/", projectHandler.Get)
					r.Patch("/", projectHandler.Update)
					r.Delete("/", projectHandler.Delete)

					r.Post("/like", engagementHandler.ToggleLike(domain.KindProject, "projectID"))
					r.Post("/comments", engagementHandler.AddComment(domain.KindProject, "projectID"))
					r.Post("/comments/{commentID}/replies", engagementHandler.AddReply(domain.KindProject, "projectID"))

					// Collaboration workflow
					r.Post("/collaborate", projectHandler.Collaborate)
					r.Put("/collaborate/{requestID}", projectHandler.ResolveCollaboration)
					r.Post("/leave", projectHandler.Leave)

					// Project updates
					r.Get("/updates", updateHandler.ListByProject)
					r.Post("/updates", updateHandler.Create)
				})
			})

			// Project update routes
			r.Route("/updates/{updateID}", func(r chi.Router) {
				r.Get("/", updateHandler.Get)
				r.Delete("/", updateHandler.Delete)

				r.Post("/like", engagementHandler.ToggleLike(domain.KindProjectUpdate, "updateID"))
				r.Post("/comments", engagementHandler.AddComment(domain.KindProjectUpdate, "updateID"))
				r.Post("/comments/{commentID}/replies", engagementHandler.AddReply(domain.KindProjectUpdate, "updateID"))
			})

			// Notification routes
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/unread-count", notificationHandler.UnreadCount)
				r.Put("/{notificationID}/read", notificationHandler.MarkRead)
				r.Put("/read-all", notificationHandler.MarkAllRead)
			})
		})
	})

	return r
}
