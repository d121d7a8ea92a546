package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vzahanych/weather-reply/internal/assistant"
	"github.com/vzahanych/weather-reply/internal/config"
)

var queryJSON bool

var queryCmd = &cobra.Command{
	Use:   "query <city>",
	Short: "Answer a single weather question and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "print the full answer as JSON")
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()
	a := assistant.NewAssistant(&cfg.Weather, log.Logger, tele)

	answer, err := a.Ask(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if queryJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(answer)
	}

	_, err = fmt.Fprintln(out, answer.Reply)
	return err
}
