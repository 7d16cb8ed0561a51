package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"
)

func (s *Server) initRoutes() {
	// Marketing pages
	s.RegisterRouteHandler("GET "+RouteHome, ChainMiddleware(s.IndexHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteHowItWorks, ChainMiddleware(s.HowItWorksHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteSupport, ChainMiddleware(s.SupportPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RoutePrivacy, ChainMiddleware(s.PrivacyHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteTerms, ChainMiddleware(s.TermsHandler(), s.HTMLMiddleWare()...))

	// Auth bridge pages. Callback, confirm and verify render the same page;
	// the flow classification happens server-side via the completion API.
	s.RegisterRouteHandler("GET "+RouteAuthCallback, ChainMiddleware(s.CallbackPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteAuthConfirm, ChainMiddleware(s.CallbackPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteAuthVerify, ChainMiddleware(s.CallbackPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteResetPassword, ChainMiddleware(s.ResetPasswordPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteResetSuccess, ChainMiddleware(s.ResetSuccessHandler(), s.HTMLMiddleWare()...))

	// Native-app handoff pages
	s.RegisterRouteHandler("GET "+RouteLocation, ChainMiddleware(s.DeepLinkHandler("location"), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteRacetrack, ChainMiddleware(s.DeepLinkHandler("racetrack"), s.HTMLMiddleWare()...))

	// API routes. Method-qualified patterns give non-POST requests a 405.
	s.RegisterRouteHandler("POST "+RouteAPIAuthCallback, ChainMiddleware(s.CallbackCompletionHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPIResetPassword, ChainMiddleware(s.ResetPasswordSubmitHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPISupport, ChainMiddleware(s.SupportTicketHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("OPTIONS /api/", ChainMiddleware(s.noContentHandler(), s.APIMiddleware()...))

	// Static assets
	s.RegisterRouteHandler("GET "+RouteStaticCSS, ChainMiddleware(s.serveFileHandler(), s.StaticMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteStaticJS, ChainMiddleware(s.serveFileHandler(), s.StaticMiddleware()...))
	s.RegisterRouteHandler("GET /{file}", ChainMiddleware(s.serveFileHandler(), s.StaticMiddleware()...))
}

func (s *Server) noContentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) serveFileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filePath := strings.TrimPrefix(r.URL.Path, "/")
		if filePath == "" {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		err := StreamFile(w, r, filePath)
		if err != nil {
			logError("GET", filePath, err.Error())
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
	}
}

func logError(method, path, error string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	errorString := Red + error + ResetColor
	log.Printf("[%-19s] %s %s\n", displayMethod, path, errorString)
}
