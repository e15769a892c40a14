package access

import (
	"strings"

	"draftdesk/internal/domain/entity"
)

// Well-known portal paths the guard redirects to.
const (
	AdminPathPrefix = "/admin"

	AdminLoginPath      = "/admin/login"
	ClientLoginPath     = "/client/login"
	ClientDashboardPath = "/client/dashboard"

	// AccessDeniedMessage travels in navigation state and is consumed once
	// by the receiving page.
	AccessDeniedMessage = "You do not have permission to access the admin area."
)

// Action is what the app shell should do for a requested path.
type Action string

const (
	// ActionWait renders a neutral wait indicator; the session is still resolving.
	ActionWait Action = "wait"
	// ActionRedirectLogin sends the visitor to the role-appropriate login page.
	ActionRedirectLogin Action = "redirect_login"
	// ActionRedirectClient sends a non-admin away from the admin area.
	ActionRedirectClient Action = "redirect_client"
	// ActionRender renders the requested children.
	ActionRender Action = "render"
)

// GuardInput is everything the decision depends on. It must be re-evaluated
// whenever any field changes, not just once per mount: login state can
// change asynchronously after the first render.
type GuardInput struct {
	Loading   bool
	Principal *entity.Principal
	IsAdmin   bool
	Path      string
}

// Decision is the guard's verdict. Redirects are replace-navigations: they
// must not grow history.
type Decision struct {
	Action Action `json:"action"`

	// Location is the redirect target when Action is a redirect.
	Location string `json:"location,omitempty"`

	// From preserves the originally requested path across a login redirect.
	From string `json:"from,omitempty"`

	// AccessDenied and Message ride along on a wrong-role redirect.
	AccessDenied bool   `json:"accessDenied,omitempty"`
	Message      string `json:"message,omitempty"`
}

// IsAdminRoute reports whether a path belongs to the admin area.
func IsAdminRoute(path string) bool {
	return path == AdminPathPrefix || strings.HasPrefix(path, AdminPathPrefix+"/")
}

// Decide evaluates the guard table. The guard has no recoverable errors; it
// only branches.
//
//	Pending          -> wait
//	Unauthenticated  -> login redirect, preserving the original path
//	Wrong-role       -> client dashboard redirect with access-denied state
//	Authorized       -> render
func Decide(in GuardInput) Decision {
	adminRoute := IsAdminRoute(in.Path)

	if in.Loading {
		return Decision{Action: ActionWait}
	}

	if in.Principal == nil {
		login := ClientLoginPath
		if adminRoute {
			login = AdminLoginPath
		}

		return Decision{
			Action:   ActionRedirectLogin,
			Location: login,
			From:     in.Path,
		}
	}

	if adminRoute && !in.IsAdmin {
		return Decision{
			Action:       ActionRedirectClient,
			Location:     ClientDashboardPath,
			AccessDenied: true,
			Message:      AccessDeniedMessage,
		}
	}

	return Decision{Action: ActionRender}
}
