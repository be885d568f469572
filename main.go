package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/ChristianRende22/Web-proyecto/config"
	"github.com/ChristianRende22/Web-proyecto/db"
	"github.com/ChristianRende22/Web-proyecto/route"
)

func main() {
	config.Logger()
	config.LoadEnv()

	db.ConnectDB()

	app := config.NewApp()

	route.SetupRoutes(app, db.GetDB(), db.GetMongo(), db.GetRedis())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Tourism admin API")
	})

	port := config.Env.AppPort
	if port == "" {
		port = "3000"
	}

	log.Fatal(app.Listen(":" + port))
}
