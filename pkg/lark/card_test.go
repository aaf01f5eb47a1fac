package lark

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCardMessageWireFormat(t *testing.T) {
	msg := NewCardMessage("orange", "[Linear] Updated: ENG-42",
		MarkdownBlock("**Fix bug**"),
		Fields(
			ShortField("**Status:** In Progress"),
			ShortField("**Priority:** High"),
			ShortField("**Assignee:** Ada"),
		),
		LinkButton("View in Linear", "https://example/ENG-42"),
	)

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"msg_type": "interactive",
		"card": {
			"header": {
				"template": "orange",
				"title": {"content": "[Linear] Updated: ENG-42", "tag": "plain_text"}
			},
			"elements": [
				{"tag": "div", "text": {"content": "**Fix bug**", "tag": "lark_md"}},
				{"tag": "div", "fields": [
					{"is_short": true, "text": {"content": "**Status:** In Progress", "tag": "lark_md"}},
					{"is_short": true, "text": {"content": "**Priority:** High", "tag": "lark_md"}},
					{"is_short": true, "text": {"content": "**Assignee:** Ada", "tag": "lark_md"}}
				]},
				{"tag": "action", "actions": [
					{"tag": "button", "text": {"content": "View in Linear", "tag": "plain_text"}, "url": "https://example/ENG-42", "type": "primary"}
				]}
			]
		}
	}`, string(data))
}

func TestElementOrderPreserved(t *testing.T) {
	msg := NewCardMessage("blue", "t",
		MarkdownBlock("first"),
		Fields(ShortField("second")),
		LinkButton("third", "https://example"),
	)

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded struct {
		Card struct {
			Elements []map[string]json.RawMessage `json:"elements"`
		} `json:"card"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Card.Elements, 3)

	_, hasText := decoded.Card.Elements[0]["text"]
	_, hasFields := decoded.Card.Elements[1]["fields"]
	_, hasActions := decoded.Card.Elements[2]["actions"]
	assert.True(t, hasText)
	assert.True(t, hasFields)
	assert.True(t, hasActions)
}
