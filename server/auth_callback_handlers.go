package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/xhil-io/autolens-web/authflow"
	"github.com/xhil-io/autolens-web/device"
)

// CallbackPageData feeds the shared callback page template.
type CallbackPageData struct {
	PageData
	CompletionPath string
}

// CallbackPageHandler renders the auth-callback page. The page itself
// carries no decision logic: a small script forwards the query string and
// the URL fragment (which never reaches the server) to the completion API
// and executes whatever outcome comes back.
func (s *Server) CallbackPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("callback.html")
	if err != nil {
		panic("Failed to parse callback template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := CallbackPageData{
			PageData:       s.pageData(),
			CompletionPath: RouteAPIAuthCallback,
		}
		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render callback page")
		}
	}
}

type callbackRequest struct {
	Query    string `json:"query"`
	Fragment string `json:"fragment"`
}

type callbackResponse struct {
	Status           string `json:"status"`
	Flow             string `json:"flow"`
	Action           string `json:"action"`
	Message          string `json:"message"`
	DeepLink         string `json:"deep_link,omitempty"`
	StoreURL         string `json:"store_url,omitempty"`
	RedirectURL      string `json:"redirect_url,omitempty"`
	PreserveFragment bool   `json:"preserve_fragment,omitempty"`
	DeepLinkDelayMS  int    `json:"deep_link_delay_ms,omitempty"`
	FallbackDelayMS  int    `json:"fallback_delay_ms,omitempty"`
}

// CallbackCompletionHandler reconciles one identity-backend redirect:
// parse, classify, establish, dispatch. All token material is request-local;
// nothing is stored.
func (s *Server) CallbackCompletionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req callbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, callbackResponse{
				Status:  "error",
				Action:  authflow.OutcomeError.String(),
				Message: "Malformed callback payload",
			})
			return
		}

		params := authflow.ParseRedirect(req.Query, req.Fragment)
		platform := device.Detect(r.UserAgent())

		flow, classifyErr := authflow.Classify(params)

		var outcome authflow.Outcome
		if classifyErr != nil {
			// Provider-reported error: terminal, no establishment attempt.
			log.Warn().Err(classifyErr).Msg("Auth callback rejected by provider")
			outcome = s.dispatcher.Dispatch(flow, nil, classifyErr, platform)
		} else {
			session, establishErr := s.establisher.Establish(r.Context(), flow, params)
			if establishErr != nil {
				log.Warn().Err(establishErr).Str("flow", flow.String()).Msg("Session establishment failed")
			}
			outcome = s.dispatcher.Dispatch(flow, session, establishErr, platform)
		}

		writeJSON(w, http.StatusOK, outcomeResponse(outcome))
	}
}

func outcomeResponse(o authflow.Outcome) callbackResponse {
	status := "success"
	if o.Kind == authflow.OutcomeError || o.Kind == authflow.OutcomeHome {
		status = "error"
	}
	return callbackResponse{
		Status:           status,
		Flow:             o.Flow.String(),
		Action:           o.Kind.String(),
		Message:          o.Message,
		DeepLink:         o.DeepLink,
		StoreURL:         o.StoreURL,
		RedirectURL:      o.RedirectURL,
		PreserveFragment: o.PreserveFragment,
		DeepLinkDelayMS:  int(o.DeepLinkDelay.Milliseconds()),
		FallbackDelayMS:  int(o.FallbackDelay.Milliseconds()),
	}
}
