package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config trả về giá trị biến môi trường theo key, load từ .env nếu có
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return os.Getenv(key)
}
