package formatter

import (
	"fmt"
	"strconv"

	"github.com/cristianoliveira/pushtray/internal/inbox"
)

// VariableContext contains all data needed for template variable resolution.
type VariableContext struct {
	// Count variables
	UnreadCount int
	TotalCount  int
	ReadCount   int

	// State variables
	HasUnread bool

	// Latest-notification variables
	LatestID    string
	LatestTitle string
	LatestBody  string
}

// ContextFromNotifications builds a VariableContext from a newest-first
// notification list.
func ContextFromNotifications(notifs []inbox.Notification) VariableContext {
	ctx := VariableContext{TotalCount: len(notifs)}
	for _, n := range notifs {
		if n.Read {
			ctx.ReadCount++
		} else {
			ctx.UnreadCount++
		}
	}
	ctx.HasUnread = ctx.UnreadCount > 0
	if len(notifs) > 0 {
		ctx.LatestID = notifs[0].ID
		ctx.LatestTitle = notifs[0].Title
		ctx.LatestBody = notifs[0].Body
	}
	return ctx
}

// VariableResolver resolves template variables to their values.
type VariableResolver interface {
	// Resolve returns the string value for a given variable name and context.
	Resolve(varName string, ctx VariableContext) (string, error)
}

// variableResolver implements VariableResolver interface.
type variableResolver struct{}

// NewVariableResolver creates a new variable resolver instance.
func NewVariableResolver() VariableResolver {
	return &variableResolver{}
}

// Resolve returns the string value for a variable from the context.
func (vr *variableResolver) Resolve(varName string, ctx VariableContext) (string, error) {
	switch varName {
	case "unread-count":
		return strconv.Itoa(ctx.UnreadCount), nil

	case "total-count":
		return strconv.Itoa(ctx.TotalCount), nil

	case "read-count":
		return strconv.Itoa(ctx.ReadCount), nil

	case "has-unread":
		return boolToString(ctx.HasUnread), nil

	case "latest-id":
		return ctx.LatestID, nil

	case "latest-title":
		return ctx.LatestTitle, nil

	case "latest-body":
		return ctx.LatestBody, nil

	default:
		return "", fmt.Errorf("unknown variable: %s (available: unread-count, total-count, read-count, has-unread, latest-id, latest-title, latest-body)", varName)
	}
}

// boolToString converts a boolean to the string "true" or "false".
func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
