package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/xhil-io/autolens-web/authflow"
)

// PageData is the template model shared by the static marketing pages.
type PageData struct {
	AppName      string
	AppStoreURL  string
	PlayStoreURL string
	SupportEmail string
}

func (s *Server) pageData() PageData {
	return PageData{
		AppName:      s.config.GetAppName(),
		AppStoreURL:  s.config.GetAppStoreURL(),
		PlayStoreURL: s.config.GetPlayStoreURL(),
		SupportEmail: s.config.GetSupportRecipient(),
	}
}

func (s *Server) pageHandler(templateName string) http.HandlerFunc {
	tmpl, err := ParseTemplate(templateName)
	if err != nil {
		panic("Failed to parse " + templateName + " template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, s.pageData()); err != nil {
			log.Err(err).Str("template", templateName).Msg("Failed to render page")
		}
	}
}

// IndexHandler renders the home page
func (s *Server) IndexHandler() http.HandlerFunc {
	return s.pageHandler("index.html")
}

func (s *Server) HowItWorksHandler() http.HandlerFunc {
	return s.pageHandler("how_it_works.html")
}

// SupportPageHandler renders the support contact form. The form posts to
// the support API, not to this handler.
func (s *Server) SupportPageHandler() http.HandlerFunc {
	return s.pageHandler("support.html")
}

func (s *Server) PrivacyHandler() http.HandlerFunc {
	return s.pageHandler("privacy.html")
}

func (s *Server) TermsHandler() http.HandlerFunc {
	return s.pageHandler("terms.html")
}

// ResetSuccessPageData feeds the post-reset confirmation page.
type ResetSuccessPageData struct {
	PageData
	HomeRedirectSeconds int
}

// ResetSuccessHandler renders the confirmation shown after a completed
// password reset. The page redirects home after a fixed delay.
func (s *Server) ResetSuccessHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("reset_success.html")
	if err != nil {
		panic("Failed to parse reset success template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := ResetSuccessPageData{
			PageData:            s.pageData(),
			HomeRedirectSeconds: int(authflow.ResetSuccessHomeDelay.Seconds()),
		}
		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render reset success page")
		}
	}
}
