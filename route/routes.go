package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/ChristianRende22/Web-proyecto/app/client"
	"github.com/ChristianRende22/Web-proyecto/app/model"
	"github.com/ChristianRende22/Web-proyecto/app/repo"
	"github.com/ChristianRende22/Web-proyecto/app/service"
	"github.com/ChristianRende22/Web-proyecto/config"
	"github.com/ChristianRende22/Web-proyecto/middleware"
)

func SetupRoutes(app *fiber.App, pgDB *gorm.DB, mongoDB *mongo.Database, redisClient *redis.Client) {
	sqlDB, err := pgDB.DB()
	if err != nil {
		log.Fatalf("Failed to get database handle: %v", err)
	}

	employeeRepo := repo.NewEmployeeRepo(sqlDB)
	sessionRepo := repo.NewSessionRepo(redisClient)
	attractionRepo := repo.NewAttractionRepo(mongoDB)
	subResourceRepo := repo.NewSubResourceRepo(mongoDB)
	rateRepo := repo.NewRateRepo(mongoDB)
	contactRepo := repo.NewContactRepo(mongoDB)
	uploadRepo := repo.NewUploadRepo(mongoDB)

	cloudinary := client.NewCloudinary(config.Env.CloudinaryURL, config.Env.CloudinaryPreset)

	authService := service.NewAuthService(employeeRepo, sessionRepo)
	employeeService := service.NewEmployeeService(employeeRepo, uploadRepo)
	attractionService := service.NewAttractionService(attractionRepo, subResourceRepo)
	rateService := service.NewRateService(rateRepo)
	contactService := service.NewContactService(contactRepo)
	uploadService := service.NewUploadService(uploadRepo, cloudinary)
	publicService := service.NewPublicService(attractionRepo, subResourceRepo, rateRepo, employeeRepo)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", authService.Login)
	auth.Post("/refresh", authService.Refresh)
	auth.Post("/logout", authService.Logout)
	auth.Get("/profile", middleware.AuthRequired(employeeRepo), authService.Profile)

	public := v1.Group("/public")
	public.Get("/attractions", publicService.ListAttractions)
	public.Get("/attractions/:id", publicService.GetAttraction)
	public.Get("/rates", publicService.ListRates)
	public.Get("/team", publicService.ListTeam)
	public.Post("/contact", contactService.Submit)

	protected := v1.Group("", middleware.AuthRequired(employeeRepo))

	employees := protected.Group("/employees", middleware.ModuleAccessRequired(model.ModuleEmployees))
	employees.Get("/", employeeService.List)
	employees.Get("/:id", employeeService.Get)
	employees.Post("/", employeeService.Create)
	employees.Put("/:id", employeeService.Update)
	employees.Delete("/:id", employeeService.Delete)

	attractions := protected.Group("/attractions", middleware.ModuleAccessRequired(model.ModuleAttractions))
	attractions.Get("/", attractionService.List)
	attractions.Get("/:id", attractionService.Get)
	attractions.Post("/", attractionService.Create)
	attractions.Put("/:id", attractionService.Update)
	attractions.Delete("/:id", attractionService.Delete)
	attractions.Get("/:id/subresources/:type", attractionService.GetSubResource)
	attractions.Put("/:id/subresources/:type", attractionService.PutSubResource)

	rates := protected.Group("/rates", middleware.ModuleAccessRequired(model.ModuleRates))
	rates.Get("/", rateService.List)
	rates.Get("/:id", rateService.Get)
	rates.Post("/", rateService.Create)
	rates.Put("/:id", rateService.Update)
	rates.Delete("/:id", rateService.Delete)
	rates.Post("/:id/places", rateService.CreatePlace)
	rates.Put("/:id/places/:placeId", rateService.UpdatePlace)
	rates.Delete("/:id/places/:placeId", rateService.DeletePlace)

	contacts := protected.Group("/contacts", middleware.ModuleAccessRequired(model.ModuleContacts))
	contacts.Get("/", contactService.List)
	contacts.Get("/export", contactService.ExportCSV)
	contacts.Get("/:id", contactService.Get)

	uploads := protected.Group("/uploads")
	uploads.Post("/", uploadService.Upload)
	uploads.Post("/:id/link", uploadService.Link)
}
