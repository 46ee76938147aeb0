// Package localserver runs the Lambda handlers behind net/http for local
// development, translating requests into API Gateway HTTP API (v2) events.
package localserver

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LambdaHandler is the signature shared by every function in cmd/.
type LambdaHandler func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// ToEvent mirrors what API Gateway hands the function: the first value of each
// query key (already decoded), lowercased header names and a fresh request id.
func ToEvent(r *http.Request) (events.APIGatewayV2HTTPRequest, error) {
	var body string
	if r.Body != nil {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			return events.APIGatewayV2HTTPRequest{}, err
		}
		body = string(b)
	}

	var query map[string]string
	if values := r.URL.Query(); len(values) > 0 {
		query = make(map[string]string, len(values))
		for k, vs := range values {
			if len(vs) > 0 {
				query[k] = vs[0]
			}
		}
	}

	headers := make(map[string]string, len(r.Header))
	for k, vs := range r.Header {
		headers[strings.ToLower(k)] = strings.Join(vs, ",")
	}

	now := time.Now().UTC()
	req := events.APIGatewayV2HTTPRequest{
		Version:               "2.0",
		RouteKey:              "$default",
		RawPath:               r.URL.Path,
		RawQueryString:        r.URL.RawQuery,
		Headers:               headers,
		QueryStringParameters: query,
		Body:                  body,
	}
	req.RequestContext.RequestID = NewRequestID()
	req.RequestContext.Stage = "$default"
	req.RequestContext.TimeEpoch = now.UnixMilli()
	req.RequestContext.HTTP = events.APIGatewayV2HTTPRequestContextHTTPDescription{
		Method:    r.Method,
		Path:      r.URL.Path,
		Protocol:  r.Proto,
		SourceIP:  r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
	return req, nil
}

// NewRequestID returns an id in place of the one API Gateway would assign.
func NewRequestID() string {
	return uuid.NewString()
}

// Handler serves fn over HTTP. A handler error becomes a 502, as API Gateway
// reports a failed integration.
func Handler(fn LambdaHandler, log *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := ToEvent(r)
		if err != nil {
			log.Error("read request body", zap.Error(err))
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		log.Debug("invoke",
			zap.String("request_id", req.RequestContext.RequestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)

		resp, err := fn(r.Context(), req)
		if err != nil {
			log.Error("handler returned error", zap.Error(err))
			http.Error(w, `{"message":"Internal Server Error"}`, http.StatusBadGateway)
			return
		}

		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		status := resp.StatusCode
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, resp.Body)
	})
}
