package domain

import "context"

const (
	ActionPromote              = "promote"
	ActionLinkReports          = "link_reports"
	ActionProcessNotifications = "process_notifications"
)

const (
	RoleAdmin          = "admin"
	RoleIncidentEditor = "incident_editor"
)

type AuthzInput struct {
	Action string   `json:"action"`
	Roles  []string `json:"roles"`
}

type AuthzDecision struct {
	Allow bool
}

type Authorizer interface {
	Authorize(ctx context.Context, input AuthzInput) (AuthzDecision, error)
}
