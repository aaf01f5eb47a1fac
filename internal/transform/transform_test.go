package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telhawk-systems/larkrelay/pkg/lark"
	"github.com/telhawk-systems/larkrelay/pkg/linear"
)

func issueEvent(action string) *linear.Event {
	return &linear.Event{
		Action: action,
		Kind:   "Issue",
		URL:    "https://linear.app/acme/issue/ENG-42",
		Data: linear.Issue{
			ID:         "c8a3b1d0-29f4-4bb2-9a46-2f3a1c9f0d11",
			Title:      "Fix bug",
			Priority:   2,
			State:      linear.IssueState{Name: "In Progress"},
			Assignee:   &linear.Assignee{Name: "Ada"},
			Identifier: "ENG-42",
		},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		kind       string
		action     string
		wantNotify bool
		wantReason string
	}{
		{name: "issue create notifies", kind: "Issue", action: "create", wantNotify: true},
		{name: "issue update notifies", kind: "Issue", action: "update", wantNotify: true},
		{name: "issue delete skips", kind: "Issue", action: "delete", wantReason: SkipReasonAction},
		{name: "issue remove skips", kind: "Issue", action: "remove", wantReason: SkipReasonAction},
		{name: "project create skips", kind: "Project", action: "create", wantReason: SkipReasonKind},
		{name: "project update skips", kind: "Project", action: "update", wantReason: SkipReasonKind},
		{name: "comment create skips", kind: "Comment", action: "create", wantReason: SkipReasonKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt := issueEvent(tt.action)
			evt.Kind = tt.kind

			decision := Classify(evt)
			assert.Equal(t, tt.wantNotify, decision.Notify)
			if tt.wantNotify {
				require.NotNil(t, decision.Message)
				assert.Empty(t, decision.SkipReason)
			} else {
				assert.Nil(t, decision.Message)
				assert.Equal(t, tt.wantReason, decision.SkipReason)
			}
		})
	}
}

func TestPriorityMappingsAreTotal(t *testing.T) {
	tests := []struct {
		priority  int
		wantColor string
		wantLabel string
	}{
		{priority: 0, wantColor: "blue", wantLabel: "None"},
		{priority: 1, wantColor: "red", wantLabel: "Urgent"},
		{priority: 2, wantColor: "orange", wantLabel: "High"},
		{priority: 3, wantColor: "yellow", wantLabel: "Medium"},
		{priority: 4, wantColor: "blue", wantLabel: "Low"},
		{priority: 99, wantColor: "blue", wantLabel: "None"},
		{priority: -1, wantColor: "blue", wantLabel: "None"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wantColor, priorityColor(tt.priority), "color for priority %d", tt.priority)
		assert.Equal(t, tt.wantLabel, priorityLabel(tt.priority), "label for priority %d", tt.priority)
	}
}

func TestActionLabel(t *testing.T) {
	assert.Equal(t, "Created", actionLabel("create"))
	assert.Equal(t, "Updated", actionLabel("update"))
	// Anything else passes through verbatim; Classify filters before this
	// matters.
	assert.Equal(t, "archive", actionLabel("archive"))
}

func TestBuildCard(t *testing.T) {
	msg := BuildCard(issueEvent("update"))

	assert.Equal(t, "interactive", msg.MsgType)
	assert.Equal(t, "orange", msg.Card.Header.Template)
	assert.Equal(t, "[Linear] Updated: ENG-42", msg.Card.Header.Title.Content)
	assert.Equal(t, "plain_text", msg.Card.Header.Title.Tag)

	require.Len(t, msg.Card.Elements, 3)

	title, ok := msg.Card.Elements[0].(lark.TextBlock)
	require.True(t, ok, "first element must be the title block")
	assert.Equal(t, "**Fix bug**", title.Text.Content)
	assert.Equal(t, "lark_md", title.Text.Tag)

	fields, ok := msg.Card.Elements[1].(lark.FieldsBlock)
	require.True(t, ok, "second element must be the fields block")
	require.Len(t, fields.Fields, 3)
	assert.Equal(t, "**Status:** In Progress", fields.Fields[0].Text.Content)
	assert.Equal(t, "**Priority:** High", fields.Fields[1].Text.Content)
	assert.Equal(t, "**Assignee:** Ada", fields.Fields[2].Text.Content)
	for _, f := range fields.Fields {
		assert.True(t, f.IsShort)
	}

	action, ok := msg.Card.Elements[2].(lark.ActionBlock)
	require.True(t, ok, "third element must be the action block")
	require.Len(t, action.Actions, 1)
	assert.Equal(t, "View in Linear", action.Actions[0].Text.Content)
	assert.Equal(t, "https://linear.app/acme/issue/ENG-42", action.Actions[0].URL)
	assert.Equal(t, "primary", action.Actions[0].Type)
}

func TestBuildCardCreateAction(t *testing.T) {
	msg := BuildCard(issueEvent("create"))
	assert.Equal(t, "[Linear] Created: ENG-42", msg.Card.Header.Title.Content)
}

func TestBuildCardUnassigned(t *testing.T) {
	evt := issueEvent("create")
	evt.Data.Assignee = nil

	msg := BuildCard(evt)
	fields := msg.Card.Elements[1].(lark.FieldsBlock)
	assert.Equal(t, "**Assignee:** Unassigned", fields.Fields[2].Text.Content)
}

func TestBuildCardIsDeterministic(t *testing.T) {
	a := BuildCard(issueEvent("update"))
	b := BuildCard(issueEvent("update"))
	assert.Equal(t, a, b)
}
