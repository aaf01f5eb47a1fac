package seeder

import (
	"log"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/telhawk-systems/larkrelay/internal/cli/client"
	"github.com/telhawk-systems/larkrelay/pkg/output"
)

// Runner drives a seeding run against one relay.
type Runner struct {
	Config *Config
	Client *client.RelayClient
}

// NewRunner creates a new seeder runner.
func NewRunner(config *Config) *Runner {
	return &Runner{
		Config: config,
		Client: client.NewRelayClient(config.RelayURL, config.Secret),
	}
}

// Run generates events and sends each one as its own signed webhook
// request, the way the upstream tracker would.
func (r *Runner) Run() error {
	gofakeit.Seed(time.Now().UnixNano())

	log.Printf("Starting event seeder:")
	log.Printf("  Relay URL: %s", r.Config.RelayURL)
	log.Printf("  Event count: %d", r.Config.Count)
	log.Printf("  Interval: %v", r.Config.Interval)
	log.Printf("  Teams: %v", r.Config.Teams)
	log.Printf("  Mix: %.0f%% comments, %.0f%% removals",
		r.Config.Mix.Comments*100, r.Config.Mix.Removals*100)

	accepted := 0
	skipped := 0
	failed := 0

	for i := 0; i < r.Config.Count; i++ {
		evt := GenerateEvent(r.Config)

		status, err := r.Client.SendEvent(evt)
		switch {
		case err != nil:
			log.Printf("Failed to send event %s: %v", evt.Data.Identifier, err)
			failed++
		case status == "skipped":
			skipped++
		default:
			accepted++
		}

		sent := i + 1
		if sent%25 == 0 || sent == r.Config.Count {
			log.Printf("Progress: %d/%d events sent (%.1f%%)",
				sent, r.Config.Count, float64(sent)*100.0/float64(r.Config.Count))
		}

		if r.Config.Interval > 0 && i < r.Config.Count-1 {
			time.Sleep(r.Config.Interval)
		}
	}

	log.Printf("\nSeeding complete:")
	log.Printf("  Forwarded to Lark: %d events", accepted)
	log.Printf("  Skipped by relay: %d events", skipped)
	if failed > 0 {
		log.Printf("  Failed: %d events", failed)
	}

	return nil
}

// DryRun prints the events a run would send without contacting the relay.
func (r *Runner) DryRun() error {
	gofakeit.Seed(time.Now().UnixNano())

	table := output.NewTable([]string{"ACTION", "TYPE", "ID", "PRIORITY", "STATE", "ASSIGNEE", "TITLE"})
	for i := 0; i < r.Config.Count; i++ {
		evt := GenerateEvent(r.Config)

		assignee := "Unassigned"
		if evt.Data.Assignee != nil {
			assignee = evt.Data.Assignee.Name
		}

		table.AddRow([]string{
			evt.Action,
			evt.Kind,
			evt.Data.Identifier,
			strconv.Itoa(evt.Data.Priority),
			evt.Data.State.Name,
			assignee,
			evt.Data.Title,
		})
	}
	table.Render()

	return nil
}
