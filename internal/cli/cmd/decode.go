package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/rpmview/internal/cli/styles"
	"github.com/bnema/rpmview/internal/domain/avatar"
)

var decodeJSON bool

var decodeCmd = &cobra.Command{
	Use:   "decode [message|-]",
	Short: "Decode a web event message",
	Long: `Decode one JSON message as sent by the avatar creator and print the
typed event. Reads stdin when the argument is omitted or '-'.

Examples:
  rpmview decode '{"eventName":"v1.avatar.exported","data":{"url":"https://..."}}'
  pbpaste | rpmview decode --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().BoolVar(&decodeJSON, "json", false, "output as JSON")
}

func runDecode(cmd *cobra.Command, args []string) error {
	ev, err := decodeMessage(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if decodeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(decodedEvent{Name: ev.EventName(), Event: ev})
	}
	_, err = fmt.Fprintln(out, styles.NewTheme().RenderEvent(ev))
	return err
}

type decodedEvent struct {
	Name  string          `json:"event"`
	Event avatar.WebEvent `json:"payload"`
}

func decodeMessage(stdin io.Reader, args []string) (avatar.WebEvent, error) {
	var raw string
	if len(args) == 1 && args[0] != "-" {
		raw = args[0]
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		raw = string(data)
	}

	ev, err := avatar.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ev, nil
}
