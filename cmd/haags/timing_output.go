package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"haags/internal/observ"
)

// newTimer returns a timer when --timings is set, nil otherwise; observ.Timer
// methods are no-ops on nil.
func newTimer(cmd *cobra.Command) *observ.Timer {
	show, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil || !show {
		return nil
	}
	return observ.NewTimer()
}

func printTimings(out io.Writer, timer *observ.Timer) {
	if out == nil || timer == nil {
		return
	}
	fmt.Fprint(out, timer.Summary())
}
