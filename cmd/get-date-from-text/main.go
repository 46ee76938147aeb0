package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"functions/internal/app"
	"functions/internal/logger"
)

func main() {
	ctx := context.Background()

	a, err := app.New(ctx)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer logger.Sync()

	lambda.Start(a.Date.Handle)
}
