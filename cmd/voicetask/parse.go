package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"voice-task-management/internal/voice"
	voiceUC "voice-task-management/internal/voice/usecase"
	"voice-task-management/pkg/datemath"
	"voice-task-management/pkg/log"
	"voice-task-management/pkg/voiceparser"
)

type parseOptions struct {
	now       string
	timezone  string
	noPrimary bool
	verbose   bool
}

func newParseCmd() *cobra.Command {
	opts := parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [transcript...]",
		Short: "Interpret a transcript and print the task draft as JSON",
		Long: `Interpret a transcript and print the task draft as JSON.
The transcript is taken from the arguments, or from stdin when none are given.`,
		Example: `  voicetask parse remind me to call the bank tomorrow morning
  voicetask parse --now 2024-05-01T15:30:00Z --no-primary "buy milk in 3 days"
  echo "urgent: finish the report by friday" | voicetask parse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			transcript := strings.Join(args, " ")
			if len(args) == 0 {
				in, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				transcript = strings.TrimRight(string(in), "\r\n")
			}
			return runParse(cmd.Context(), cmd.OutOrStdout(), transcript, opts)
		},
	}

	cmd.Flags().StringVar(&opts.now, "now", "", "reference time in RFC3339 (default: current time)")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "UTC", "IANA timezone for relative dates")
	cmd.Flags().BoolVar(&opts.noPrimary, "no-primary", false, "use only the relative-date rules")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log parser diagnostics")
	return cmd
}

func runParse(ctx context.Context, out io.Writer, transcript string, opts parseOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	clock := voiceparser.SystemClock()
	if opts.now != "" {
		at, err := time.Parse(time.RFC3339, opts.now)
		if err != nil {
			return fmt.Errorf("--now: %w", err)
		}
		clock = voiceparser.FixedClock(at)
	}

	dm, err := datemath.NewParser(opts.timezone)
	if err != nil {
		return fmt.Errorf("--timezone: %w", err)
	}

	logger := log.NewNop()
	if opts.verbose {
		logger = log.Init(log.ZapConfig{Level: "debug", Mode: "development", Encoding: "console"})
	}

	var primary voiceparser.DatePhraseParser
	if !opts.noPrimary {
		primary = voiceparser.NewWhenParser(dm.Location(), datemath.DefaultDayPeriods())
	}

	// Parse never stores anything, so no task use case is needed.
	uc := voiceUC.New(logger, voiceparser.New(logger, clock, primary, dm), nil)
	output, err := uc.Parse(ctx, voice.ParseInput{Transcript: transcript})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(output.Draft)
}
