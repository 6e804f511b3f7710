package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=arm64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"go.uber.org/zap"

	"github.com/demoapi/upload-service/internal/config"
	"github.com/demoapi/upload-service/internal/logger"
	"github.com/demoapi/upload-service/internal/server"
)

var (
	initOnce  sync.Once
	initErr   error
	chiLambda *chiadapter.ChiLambda
	log       *zap.Logger
)

func initApp(ctx context.Context) {
	cfg := config.Load()
	log = logger.New(cfg.LogLevel, cfg.AppEnv)

	if initErr = cfg.Validate(); initErr != nil {
		return
	}

	store, err := server.NewStorage(ctx, cfg, log)
	if err != nil {
		initErr = err
		return
	}
	chiLambda = chiadapter.New(server.NewRouter(cfg, store, log))
}

// handler forwards API Gateway proxy events to the router. The adapter
// decodes base64-encoded bodies, so multipart uploads arrive as raw bytes.
func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	initOnce.Do(func() { initApp(ctx) })
	if initErr != nil {
		log.Error("bootstrap failed", zap.Error(initErr))
		body, _ := json.Marshal(map[string]string{"message": "service unavailable"})
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       string(body),
			Headers:    map[string]string{"Content-Type": "application/json"},
		}, nil
	}
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
