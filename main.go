package main

import (
	"fmt"
	"time"

	"studybuddy/config"
	"studybuddy/handlers/api"
	"studybuddy/matchmaking"
	"studybuddy/middleware"
	"studybuddy/storage"
	"studybuddy/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

func main() {
	utils.Log.Info("Initializing Study Buddy backend...")

	// Load configuration
	cfg, err := config.LoadConfig("config.toml")
	if err != nil {
		utils.Log.Error("Failed to load config: %v", err)
		return
	}
	utils.Log.SetLevel(utils.ParseLevel(cfg.Log.Level))

	// Initialize i18n system
	if err := utils.InitI18n(); err != nil {
		utils.Log.Error("Failed to initialize i18n: %v", err)
	}

	// In-memory stores; everything is lost on restart by design
	ids := storage.RandomIDs{}
	users := storage.NewUserStore(ids)
	sessions := storage.NewSessionStore(ids)
	engine := matchmaking.NewEngine(users)
	hub := api.NewNotificationHub(sessions)

	// Initialize API handlers
	authHandler := api.NewAuthHandler(users, sessions, hub)
	buddyHandler := api.NewBuddyHandler(users, engine)
	messageHandler := api.NewMessageHandler(users, sessions, hub)
	scheduleHandler := api.NewScheduleHandler(users, sessions)
	i18nHandler := &api.I18nHandler{}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			if appErr, ok := err.(*utils.AppError); ok {
				code = appErr.Code
				utils.Log.Debug("Request failed: %v", appErr)
			} else if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Add global middleware
	app.Use(recover.New())  // Recover from panics
	app.Use(logger.New())   // Request logging
	app.Use(compress.New()) // Response compression
	app.Use(helmet.New(helmet.Config{ // Security headers
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		ReferrerPolicy:     "no-referrer",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Sessiontoken",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	// Add locale middleware
	app.Use(middleware.LocaleMiddleware())

	// Add rate limiting
	app.Use(middleware.RateLimiter(cfg.RateLimit.Requests, cfg.RateLimitWindow()))

	// Public routes
	app.Post("/signup", authHandler.HandleSignup)
	app.Post("/login", authHandler.HandleLogin)
	app.Get("/subjects", buddyHandler.HandleSubjects)

	// Chat and schedule writes check the session themselves and answer
	// 400 on a bad token instead of 401
	app.Post("/message", messageHandler.HandleSend)
	app.Post("/schedule", scheduleHandler.HandleAdd)

	// Protected routes: 401 without a valid session token
	protected := app.Group("", middleware.RequireSession(sessions))
	protected.Get("/buddies", buddyHandler.HandleBuddies)
	protected.Get("/recommendations", buddyHandler.HandleRecommendations)
	protected.Get("/messages", messageHandler.HandleList)
	protected.Get("/schedule", scheduleHandler.HandleList)

	// Real-time notifications
	app.Get("/events", hub.HandleSSE)
	app.Use("/ws", hub.HandleWebSocketUpgrade)
	app.Get("/ws", websocket.New(hub.HandleWebSocket))

	// i18n for the client
	app.Get("/i18n/:lang", i18nHandler.GetTranslations)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// 404 Handler for undefined routes
	app.Use(func(c *fiber.Ctx) error {
		localizer, _ := c.Locals("localizer").(*i18n.Localizer)
		return c.Status(404).JSON(fiber.Map{
			"error": utils.T(localizer, "error_404"),
		})
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	utils.Log.Info("Study Buddy backend running on port %d", cfg.Server.Port)
	if err := app.Listen(addr); err != nil {
		utils.Log.Error("Server stopped: %v", err)
	}
}
