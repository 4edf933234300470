//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

// maxLambdaLength caps the candidate length a request may ask for. A run
// takes about 2^length iterations, so 24 bits is a few seconds of work.
const maxLambdaLength = 24

type evolveResult struct {
	RunSummary
	Detail string `json:"detail"`
}

var progressLog = slog.New(slog.NewJSONHandler(os.Stderr, nil))

func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	cfg, err := ParseConfig(body, DefaultConfig())
	if err != nil {
		return errResp(400, err.Error())
	}
	if cfg.Length > maxLambdaLength {
		return errResp(400, fmt.Sprintf("length %d exceeds maximum %d", cfg.Length, maxLambdaLength))
	}

	summary, res, err := runEvolver(cfg, SlogReporter{Logger: progressLog})
	if err != nil {
		code := 500
		if errors.Is(err, ErrInvalidConfig) {
			code = 400
		}
		return errResp(code, err.Error())
	}

	respJSON, _ := json.Marshal(evolveResult{RunSummary: summary, Detail: FormatResult(res)})
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
