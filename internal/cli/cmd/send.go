package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/telhawk-systems/larkrelay/internal/cli/client"
	"github.com/telhawk-systems/larkrelay/pkg/linear"
	"github.com/telhawk-systems/larkrelay/pkg/output"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a signed webhook event",
	Long:  "Build an issue event, sign it with the webhook secret, and post it to the relay",
	Example: `  relayctl send --title "Checkout broken on Safari" --identifier ENG-42
  relayctl send --action create --priority 1 --assignee Ada --title "Login outage"
  relayctl send --json '{"action":"update","type":"Issue","url":"...","data":{...}}'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonData, _ := cmd.Flags().GetString("json")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		var body []byte
		if jsonData != "" {
			body = []byte(jsonData)
		} else {
			title, _ := cmd.Flags().GetString("title")
			if title == "" {
				return fmt.Errorf("either --title or --json is required")
			}

			action, _ := cmd.Flags().GetString("action")
			kind, _ := cmd.Flags().GetString("type")
			identifier, _ := cmd.Flags().GetString("identifier")
			state, _ := cmd.Flags().GetString("state")
			priority, _ := cmd.Flags().GetInt("priority")
			assignee, _ := cmd.Flags().GetString("assignee")
			issueURL, _ := cmd.Flags().GetString("url")

			if issueURL == "" {
				issueURL = fmt.Sprintf("https://linear.app/team/issue/%s", identifier)
			}

			evt := &linear.Event{
				Action: action,
				Kind:   kind,
				URL:    issueURL,
				Data: linear.Issue{
					ID:         uuid.New().String(),
					Title:      title,
					Priority:   priority,
					State:      linear.IssueState{Name: state},
					Identifier: identifier,
				},
			}
			if assignee != "" {
				evt.Data.Assignee = &linear.Assignee{Name: assignee}
			}

			var err error
			body, err = json.Marshal(evt)
			if err != nil {
				return fmt.Errorf("failed to encode event: %w", err)
			}
		}

		if dryRun {
			var pretty interface{}
			if err := json.Unmarshal(body, &pretty); err != nil {
				return fmt.Errorf("invalid event JSON: %w", err)
			}
			return output.JSON(pretty)
		}

		if signingSecret() == "" {
			return fmt.Errorf("signing secret is required (use --secret or set LINEAR_WEBHOOK_SECRET)")
		}

		relayClient := client.NewRelayClient(relayURL, signingSecret())
		status, err := relayClient.SendRaw(body)
		if err != nil {
			return fmt.Errorf("failed to send event: %w", err)
		}

		switch status {
		case "accepted":
			output.Success("Event accepted and forwarded to Lark")
		case "skipped":
			output.Warn("Event accepted but skipped (not an issue create/update)")
		default:
			output.Info("Relay responded with status %q", status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().String("action", "update", "Event action (create, update, remove)")
	sendCmd.Flags().String("type", "Issue", "Event data type")
	sendCmd.Flags().StringP("title", "m", "", "Issue title")
	sendCmd.Flags().StringP("identifier", "i", "ENG-1", "Issue identifier")
	sendCmd.Flags().String("state", "In Progress", "Workflow state name")
	sendCmd.Flags().IntP("priority", "p", 2, "Issue priority (1=urgent, 2=high, 3=medium, 4=low)")
	sendCmd.Flags().String("assignee", "", "Assignee name (empty means unassigned)")
	sendCmd.Flags().String("url", "", "Issue URL (default derived from identifier)")
	sendCmd.Flags().String("json", "", "Raw event JSON (overrides the builder flags)")
	sendCmd.Flags().Bool("dry-run", false, "Print the event instead of sending it")
}
