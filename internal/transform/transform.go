// Package transform decides which inbound events produce notifications
// and builds the outbound card for the ones that do.
package transform

import (
	"fmt"

	"github.com/telhawk-systems/larkrelay/pkg/lark"
	"github.com/telhawk-systems/larkrelay/pkg/linear"
)

// Skip reasons, used as log fields and metric label values.
const (
	SkipReasonKind   = "kind"
	SkipReasonAction = "action"
)

// Decision is the outcome of classifying one event: either skip, with the
// reason recorded, or notify, with the card to deliver.
type Decision struct {
	Notify     bool
	SkipReason string
	Message    *lark.Message
}

// Classify filters events down to issue create/update and builds the card
// for the ones that pass. Everything else is acknowledged and dropped.
func Classify(evt *linear.Event) Decision {
	if evt.Kind != "Issue" {
		return Decision{SkipReason: SkipReasonKind}
	}
	if evt.Action != "create" && evt.Action != "update" {
		return Decision{SkipReason: SkipReasonAction}
	}
	return Decision{Notify: true, Message: BuildCard(evt)}
}

// BuildCard maps an issue event onto the card layout: bold title, then
// status/priority/assignee fields, then a link button back to Linear.
// The mapping is total; any priority outside 1..4 lands in the blue
// "None" bucket.
func BuildCard(evt *linear.Event) *lark.Message {
	issue := evt.Data
	title := fmt.Sprintf("[Linear] %s: %s", actionLabel(evt.Action), issue.Identifier)

	return lark.NewCardMessage(priorityColor(issue.Priority), title,
		lark.MarkdownBlock(fmt.Sprintf("**%s**", issue.Title)),
		lark.Fields(
			lark.ShortField(fmt.Sprintf("**Status:** %s", issue.State.Name)),
			lark.ShortField(fmt.Sprintf("**Priority:** %s", priorityLabel(issue.Priority))),
			lark.ShortField(fmt.Sprintf("**Assignee:** %s", assigneeName(issue.Assignee))),
		),
		lark.LinkButton("View in Linear", evt.URL),
	)
}

func actionLabel(action string) string {
	switch action {
	case "create":
		return "Created"
	case "update":
		return "Updated"
	default:
		return action
	}
}

func priorityColor(priority int) string {
	switch priority {
	case 1:
		return "red"
	case 2:
		return "orange"
	case 3:
		return "yellow"
	default:
		return "blue" // 0 (no priority) and 4 (low)
	}
}

func priorityLabel(priority int) string {
	switch priority {
	case 1:
		return "Urgent"
	case 2:
		return "High"
	case 3:
		return "Medium"
	case 4:
		return "Low"
	default:
		return "None"
	}
}

func assigneeName(a *linear.Assignee) string {
	if a == nil {
		return "Unassigned"
	}
	return a.Name
}
