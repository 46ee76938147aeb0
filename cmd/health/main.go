package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"functions/internal/config"
	"functions/internal/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lambda.Start(handlers.NewHealthHandler(cfg.ServiceName).Handle)
}
