package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a single question and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context(), os.Stderr)
		defer flushLog()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.store.Close()

		question := strings.Join(args, " ")
		out := cmd.OutOrStdout()

		if res, ok := a.router.Execute(ctx, "ask", question); ok {
			_, err := fmt.Fprintln(out, res)
			return err
		}

		reply := a.newResponder().Reply(question)
		if !askJSON {
			_, err := fmt.Fprintln(out, reply.Text)
			return err
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]string{
			"reply":    reply.Text,
			"kind":     reply.Match.Kind.String(),
			"category": string(reply.Match.Category),
			"trigger":  reply.Match.Trigger,
		})
	},
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "print the classification as JSON")
	rootCmd.AddCommand(askCmd)
}
