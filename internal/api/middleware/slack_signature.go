package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/podolabs/frontdesk/internal/api"
	"github.com/podolabs/frontdesk/internal/domain"
	"github.com/slack-go/slack"
)

// SlackSignature verifies the Slack request signature on every request.
// The body is read for verification and restored for downstream handlers.
func SlackSignature(signingSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			verifier, err := slack.NewSecretsVerifier(r.Header, signingSecret)
			if err != nil {
				api.HandleError(w, domain.ErrBadSignature)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				api.HandleError(w, domain.NewDomainErrorWithCause(domain.ErrCodeValidation, "failed to read request body", err))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if _, err := verifier.Write(body); err != nil {
				api.HandleError(w, domain.NewDomainErrorWithCause(domain.ErrCodeInternalError, "signature verification failed", err))
				return
			}
			if err := verifier.Ensure(); err != nil {
				api.HandleError(w, domain.ErrBadSignature)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
