package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"notediff.znkr.io/diff"
	"notediff.znkr.io/render"
)

var compareFlags struct {
	split   bool
	context int
	full    bool
	lang    string
	noColor bool
}

var compareCmd = &cobra.Command{
	Use:   "compare <old> <new>",
	Short: "Compare two documents line by line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldText, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading old document: %v", err)
		}
		newText, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("reading new document: %v", err)
		}

		opts := []diff.Option{diff.ContextLines(compareFlags.context)}
		if compareFlags.full {
			opts = append(opts, diff.Full())
		}
		res := diff.Compute(string(oldText), string(newText), opts...)

		ropts := []render.Option{render.LangFromFilename(args[1])}
		if compareFlags.lang != "" {
			ropts = append(ropts, render.Lang(compareFlags.lang))
		}
		if compareFlags.noColor {
			ropts = append(ropts, render.NoColor())
		}
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			ropts = append(ropts, render.Width(w))
		}

		var out string
		if compareFlags.split {
			out = render.SideBySide(res, ropts...)
		} else {
			out = render.Unified(res, ropts...)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)

		if res.Stats.Changes > 0 {
			// Exit status 1 when the documents differ, like diff(1).
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().BoolVar(&compareFlags.split, "split", false, "render side by side instead of a single column")
	compareCmd.Flags().IntVar(&compareFlags.context, "context", 3, "context lines to keep around changes")
	compareCmd.Flags().BoolVar(&compareFlags.full, "full", false, "keep all context lines")
	compareCmd.Flags().StringVar(&compareFlags.lang, "lang", "", "syntax highlighting language (default: from file name)")
	compareCmd.Flags().BoolVar(&compareFlags.noColor, "no-color", false, "disable colored output")
}
