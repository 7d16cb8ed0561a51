package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/xhil-io/autolens-web/authflow"
	"github.com/xhil-io/autolens-web/internal/config"
	"github.com/xhil-io/autolens-web/mail"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json; charset=utf-8"
)

type Server struct {
	env         string // Environment (e.g., "DEV", "production")
	mux         *http.ServeMux
	routes      []string
	fileServer  http.Handler
	config      config.Config
	establisher *authflow.Establisher
	submitter   *authflow.Submitter
	dispatcher  *authflow.Dispatcher
	mailer      mail.Sender
}

func New(cfg config.Config, identityClient authflow.IdentityClient, mailer mail.Sender) *Server {
	s := &Server{
		mux:         http.NewServeMux(),
		config:      cfg,
		establisher: authflow.NewEstablisher(identityClient),
		submitter:   authflow.NewSubmitter(identityClient),
		dispatcher: authflow.NewDispatcher(
			cfg.GetDeepLinkScheme(),
			cfg.GetAppStoreURL(),
			cfg.GetPlayStoreURL(),
			RouteHome,
			RouteResetPassword,
		),
		mailer: mailer,
	}
	s.env = cfg.GetEnv()
	s.fileServer = FileServerHandler()

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
