package main

import (
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/spf13/cobra"

	"functions/internal/app"
	"functions/internal/extract"
	"functions/internal/localserver"
	"functions/internal/logger"
)

func newExtractCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Invoke the function once and print the HTTP response",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(cmd.Context())
			if err != nil {
				return err
			}
			defer logger.Sync()

			resp, err := a.Date.Handle(cmd.Context(), extractEvent(text, cmd.Flags().Changed("text")))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", resp.StatusCode, resp.Body)
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "free-form text containing a date")
	return cmd
}

// extractEvent leaves the query empty when --text was not given, like a
// request without the parameter.
func extractEvent(text string, set bool) events.APIGatewayV2HTTPRequest {
	var req events.APIGatewayV2HTTPRequest
	if set {
		req.QueryStringParameters = map[string]string{extract.TextParam: text}
	}
	req.RequestContext.RequestID = localserver.NewRequestID()
	req.RequestContext.HTTP.Method = "GET"
	req.RequestContext.HTTP.Path = "/"
	return req
}
