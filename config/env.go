package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type EnvConfig struct {
	AppPort          string
	DBDSN            string
	MongoURI         string
	MongoDB          string
	RedisAddr        string
	RedisPassword    string
	JWTSecret        string
	CloudinaryURL    string
	CloudinaryPreset string
}

var Env EnvConfig

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	Env.AppPort = os.Getenv("APP_PORT")
	Env.DBDSN = os.Getenv("DB_DSN")
	Env.MongoURI = os.Getenv("MONGO_URI")
	Env.MongoDB = os.Getenv("MONGO_DB_NAME")
	Env.RedisAddr = os.Getenv("REDIS_ADDR")
	Env.RedisPassword = os.Getenv("REDIS_PASSWORD")
	Env.JWTSecret = os.Getenv("JWT_SECRET")
	Env.CloudinaryURL = os.Getenv("CLOUDINARY_UPLOAD_URL")
	Env.CloudinaryPreset = os.Getenv("CLOUDINARY_UPLOAD_PRESET")
}

func GetJWTSecret() string {
	if Env.JWTSecret == "" {
		return os.Getenv("JWT_SECRET")
	}
	return Env.JWTSecret
}
