package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Marketing pages
	RouteHome       = "/"
	RouteHowItWorks = "/how-it-works"
	RouteSupport    = "/support"
	RoutePrivacy    = "/privacy"
	RouteTerms      = "/terms"

	// Auth bridge pages
	RouteAuthCallback  = "/auth/callback"
	RouteAuthConfirm   = "/auth/confirm"
	RouteAuthVerify    = "/auth/verify"
	RouteResetPassword = "/reset-password"
	RouteResetSuccess  = "/reset-success"

	// Native-app handoff pages
	RouteLocation  = "/location/{id}"
	RouteRacetrack = "/racetrack/{id}"

	// API routes
	RouteAPIAuthCallback  = "/api/auth/callback"
	RouteAPIResetPassword = "/api/reset-password"
	RouteAPISupport       = "/api/support"

	// Static asset routes (patterns)
	RouteStaticCSS = "/css/{file}"
	RouteStaticJS  = "/js/{file}"
)
