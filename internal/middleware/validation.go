package middleware

import (
	"io"
	"net/http"

	"products-api/internal/validation"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes caps the JSON body read by ValidateInput.
const maxBodyBytes = 1 << 20

// ValidateParams runs rules against the path parameters only. The request
// body is never read, so a body sent along with a GET or DELETE cannot
// change the outcome.
func ValidateParams(logger *zap.Logger, rules ...validation.Rule) func(http.Handler) http.Handler {
	return gate(logger, false, rules)
}

// ValidateInput runs rules against the path parameters and the JSON body
// and stops the chain with a 400 when any of them fails. On success the
// parsed input is stored in the request context for the handler.
func ValidateInput(logger *zap.Logger, rules ...validation.Rule) func(http.Handler) http.Handler {
	return gate(logger, true, rules)
}

func gate(logger *zap.Logger, readBody bool, rules []validation.Rule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			in := validation.Input{
				Params: urlParams(r),
				Body:   map[string]any{},
			}

			var errs validation.Errors
			if readBody {
				body, ok := readJSONBody(r)
				if ok {
					in.Body = body
					errs = validation.Run(in, rules...)
				} else {
					// Body rules cannot be judged; keep the parameter
					// failures so a bad id is still reported.
					errs = append(paramErrors(validation.Run(in, rules...)), invalidBody())
				}
			} else {
				errs = validation.Run(in, rules...)
			}

			if len(errs) > 0 {
				logger.Debug("Request validation failed",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Strings("errors", errs.Messages()),
				)
				RespondWithValidationErrors(w, errs)
				return
			}

			next.ServeHTTP(w, r.WithContext(validation.WithInput(r.Context(), in)))
		})
	}
}

func urlParams(r *http.Request) map[string]string {
	params := map[string]string{}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			params[key] = rctx.URLParams.Values[i]
		}
	}
	return params
}

func readJSONBody(r *http.Request) (map[string]any, bool) {
	if r.Body == nil {
		return map[string]any{}, true
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, false
	}

	body, err := validation.DecodeBody(raw)
	if err != nil {
		return nil, false
	}
	return body, true
}

func paramErrors(errs validation.Errors) validation.Errors {
	kept := validation.Errors{}
	for _, fe := range errs {
		if fe.Location == validation.LocationParams {
			kept = append(kept, fe)
		}
	}
	return kept
}

func invalidBody() validation.FieldError {
	return validation.FieldError{
		Type:     "body",
		Kind:     validation.KindInvalidBody,
		Msg:      validation.MsgInvalidBody,
		Location: validation.LocationBody,
	}
}
