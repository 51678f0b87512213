package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"globetrotter/cmd/fx/itinerary_fx"
	"globetrotter/internal/api/controllers"
	"globetrotter/internal/config"
	dbm "globetrotter/internal/models/db_models"
	"globetrotter/pkg/logger"
	"globetrotter/pkg/middleware"
	"globetrotter/pkg/utils"
)

type RouterParams struct {
	fx.In

	Config config.Config
	Log    *logger.Logger

	Accounts   *controllers.AccountController
	Cities     *controllers.CityController
	Activities *controllers.ActivityController
	Trips      *controllers.TripController
	Sections   *controllers.SectionController
	Itinerary  *controllers.ItineraryController
	Search     *controllers.SearchController
	Community  *controllers.CommunityController
	Dashboard  *controllers.DashboardController
	Chat       *controllers.ChatController
	AILimiter  itinerary_fx.AILimiter
}

func ProvideRouter(p RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(p.Config.CORSOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	})
	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route not found")
	})

	RegisterRoutes(r.Group("/api"), p)
	return r
}

func RegisterRoutes(api *gin.RouterGroup, p RouterParams) {
	auth := middleware.JWTAuthMiddleware()
	admin := middleware.RoleMiddleware(dbm.RoleAdmin)

	accounts := api.Group("/accounts")
	accounts.POST("/register", p.Accounts.Register)
	accounts.POST("/login", p.Accounts.Login)
	accounts.POST("/forgot-password", p.Accounts.ForgotPassword)
	accounts.POST("/reset-password", p.Accounts.ResetPassword)
	accounts.GET("/me", auth, p.Accounts.GetProfile)
	accounts.PUT("/me", auth, p.Accounts.UpdateProfile)

	api.GET("/cities", p.Cities.ListCities)
	api.GET("/cities/:id", p.Cities.GetCity)
	api.GET("/activities", p.Activities.ListActivities)
	api.GET("/activities/:id", p.Activities.GetActivity)

	search := api.Group("/search")
	search.GET("", p.Search.Search)
	search.GET("/suggestions", p.Search.Suggestions)
	search.GET("/semantic", p.Search.SemanticSearch)

	api.GET("/trips/public", p.Trips.ListPublicTrips)
	trips := api.Group("/trips", auth)
	trips.POST("", p.Trips.CreateTrip)
	trips.GET("", p.Trips.ListMyTrips)
	trips.GET("/:id", p.Trips.GetTrip)
	trips.PUT("/:id", p.Trips.UpdateTrip)
	trips.DELETE("/:id", p.Trips.DeleteTrip)
	trips.POST("/:id/cities", p.Trips.AddCity)
	trips.DELETE("/:id/cities/:visitId", p.Trips.RemoveCity)
	trips.GET("/:id/calendar.ics", p.Trips.ExportCalendar)

	sections := api.Group("/sections", auth)
	sections.POST("", p.Sections.CreateSections)
	sections.POST("/create-itinerary-by-ai", p.AILimiter.Middleware(), p.Itinerary.CreateItineraryByAI)
	sections.GET("/trip/:tripId", p.Sections.ListTripSections)
	sections.GET("/:id", p.Sections.GetSection)
	sections.PUT("/:id", p.Sections.UpdateSection)
	sections.DELETE("/:id", p.Sections.DeleteSection)

	api.POST("/chat", auth, p.AILimiter.Middleware(), p.Chat.Chat)

	community := api.Group("/community")
	community.GET("/posts", p.Community.ListPosts)
	community.GET("/posts/:id", p.Community.GetPost)
	community.POST("/posts", auth, p.Community.CreatePost)
	community.POST("/posts/:id/like", auth, p.Community.ToggleLike)
	community.POST("/posts/:id/comments", auth, p.Community.AddComment)

	adminGroup := api.Group("/admin", auth, admin)
	adminGroup.GET("/analytics", p.Dashboard.GetAnalytics)
	adminGroup.POST("/cities", p.Cities.CreateCity)
	adminGroup.PUT("/cities/:id", p.Cities.UpdateCity)
	adminGroup.DELETE("/cities/:id", p.Cities.DeleteCity)
	adminGroup.POST("/activities", p.Activities.CreateActivity)
	adminGroup.PUT("/activities/:id", p.Activities.UpdateActivity)
	adminGroup.DELETE("/activities/:id", p.Activities.DeleteActivity)
}
