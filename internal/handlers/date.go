package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"functions/internal/extract"
	"functions/internal/llm"
)

// FailedMessage is the only error text callers ever see.
const FailedMessage = "Failed to process request"

type DateResponse struct {
	Result string `json:"result"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// DateHandler asks a text-generation model for the MMdd date in the `text`
// query parameter and relays the reply as is.
type DateHandler struct {
	newGenerator llm.Factory
	log          *zap.Logger
}

func NewDateHandler(newGenerator llm.Factory, log *zap.Logger) *DateHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DateHandler{newGenerator: newGenerator, log: log}
}

// Handle accepts any method. The returned error is always nil: every failure is
// logged and answered with a 500 carrying FailedMessage.
func (h *DateHandler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	log := h.log.With(zap.String("request_id", req.RequestContext.RequestID))

	// absent and empty are the same here
	text := req.QueryStringParameters[extract.TextParam]
	prompt := extract.BuildPrompt(text)

	reply, err := h.generate(ctx, prompt)
	if err != nil {
		log.Error("date extraction failed", zap.String("error", err.Error()))
		return jsonResp(http.StatusInternalServerError, ErrorResponse{Error: FailedMessage})
	}

	log.Info("date extracted",
		zap.String("prompt", prompt),
		zap.String("aiModelResponse", reply),
	)
	return jsonResp(http.StatusOK, DateResponse{Result: reply})
}

func (h *DateHandler) generate(ctx context.Context, prompt string) (reply string, err error) {
	// a panicking client is treated like any other failed call
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generator panic: %v", r)
		}
	}()

	gen, err := h.newGenerator(ctx)
	if err != nil {
		return "", err
	}
	return gen.GenerateText(ctx, prompt)
}
