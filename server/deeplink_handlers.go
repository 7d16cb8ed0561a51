package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/xhil-io/autolens-web/authflow"
	"github.com/xhil-io/autolens-web/device"
)

// DeepLinkPageData feeds the resource handoff page (location/racetrack).
type DeepLinkPageData struct {
	PageData
	Resource      string
	ResourceID    string
	DeepLink      string
	StoreURL      string
	AttemptDelay  int // milliseconds before the deep-link attempt
	FallbackDelay int // milliseconds before the store fallback
}

// DeepLinkHandler renders the handoff page for a shared resource link. The
// id comes verbatim from the path; the app resolves it, not this service.
// When the app does not open, the page falls back to the store listing for
// the requesting platform.
func (s *Server) DeepLinkHandler(resource string) http.HandlerFunc {
	tmpl, err := ParseTemplate("deeplink.html")
	if err != nil {
		panic("Failed to parse deeplink template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.NotFound(w, r)
			return
		}

		storeURL := s.config.GetPlayStoreURL()
		if device.Detect(r.UserAgent()) == device.PlatformIOS {
			storeURL = s.config.GetAppStoreURL()
		}

		data := DeepLinkPageData{
			PageData:      s.pageData(),
			Resource:      resource,
			ResourceID:    id,
			DeepLink:      s.dispatcher.DeepLinkFor(resource, id),
			StoreURL:      storeURL,
			AttemptDelay:  int(authflow.DeepLinkAttemptDelay.Milliseconds()),
			FallbackDelay: int(authflow.StoreFallbackDelay.Milliseconds()),
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Str("resource", resource).Msg("Failed to render deeplink page")
		}
	}
}
