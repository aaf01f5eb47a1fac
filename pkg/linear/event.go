package linear

import (
	"encoding/json"
	"fmt"
)

// Event is the payload Linear posts to a webhook: the action taken, the
// kind of record it touched, a link back to that record, and the record
// itself.
type Event struct {
	Action string `json:"action"`
	Kind   string `json:"type"`
	URL    string `json:"url"`
	Data   Issue  `json:"data"`
}

// Issue is the subset of Linear's issue record the relay renders.
type Issue struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Priority   int        `json:"priority"`
	State      IssueState `json:"state"`
	Assignee   *Assignee  `json:"assignee,omitempty"`
	Identifier string     `json:"identifier"`
}

type IssueState struct {
	Name string `json:"name"`
}

type Assignee struct {
	Name string `json:"name"`
}

// Parse decodes a raw webhook body. Structurally invalid JSON and payloads
// missing the fields classification needs are rejected; issue sub-fields
// stay lenient because non-issue events do not carry them.
func Parse(body []byte) (*Event, error) {
	var evt Event
	if err := json.Unmarshal(body, &evt); err != nil {
		return nil, fmt.Errorf("invalid webhook payload: %w", err)
	}
	if evt.Action == "" {
		return nil, fmt.Errorf("webhook payload missing action")
	}
	if evt.Kind == "" {
		return nil, fmt.Errorf("webhook payload missing type")
	}
	return &evt, nil
}
