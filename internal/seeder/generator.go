package seeder

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/telhawk-systems/larkrelay/pkg/linear"
)

var stateNames = []string{"Backlog", "Todo", "In Progress", "In Review", "Done"}

// GenerateEvent produces one fake tracker webhook event. The mix fractions
// steer a slice of the traffic into comment and removal events, which the
// relay accepts but does not forward.
func GenerateEvent(cfg *Config) *linear.Event {
	team := cfg.Teams[rand.Intn(len(cfg.Teams))]
	identifier := fmt.Sprintf("%s-%d", team, rand.Intn(900)+100)

	evt := &linear.Event{
		Action: "update",
		Kind:   "Issue",
		URL:    fmt.Sprintf("https://linear.app/%s/issue/%s", strings.ToLower(team), identifier),
		Data: linear.Issue{
			ID:         uuid.New().String(),
			Title:      issueTitle(),
			Priority:   rand.Intn(5), // 0 means no priority
			State:      linear.IssueState{Name: stateNames[rand.Intn(len(stateNames))]},
			Identifier: identifier,
		},
	}

	if rand.Float64() < 0.4 {
		evt.Action = "create"
	}
	if rand.Float64() < 0.7 {
		evt.Data.Assignee = &linear.Assignee{Name: gofakeit.FirstName()}
	}

	// Carve out the skip-path slices
	roll := rand.Float64()
	switch {
	case roll < cfg.Mix.Comments:
		evt.Kind = "Comment"
	case roll < cfg.Mix.Comments+cfg.Mix.Removals:
		evt.Action = "remove"
	}

	return evt
}

func issueTitle() string {
	switch rand.Intn(3) {
	case 0:
		return fmt.Sprintf("Fix %s handling in %s", gofakeit.HackerNoun(), gofakeit.AppName())
	case 1:
		return gofakeit.HackerPhrase()
	default:
		return fmt.Sprintf("%s fails to %s under load", gofakeit.AppName(), gofakeit.HackerVerb())
	}
}
