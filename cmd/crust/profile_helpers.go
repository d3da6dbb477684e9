package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cooldudemcgeexl/crust/internal/prof"
)

// profileFlags are the persistent --cpu-profile, --mem-profile and
// --runtime-trace paths; empty means off.
type profileFlags struct {
	cpu, mem, trace string
}

func readProfileFlags(cmd *cobra.Command) (profileFlags, error) {
	var (
		p   profileFlags
		err error
	)
	flags := cmd.Root().PersistentFlags()
	if p.cpu, err = flags.GetString("cpu-profile"); err != nil {
		return p, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if p.mem, err = flags.GetString("mem-profile"); err != nil {
		return p, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if p.trace, err = flags.GetString("runtime-trace"); err != nil {
		return p, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	return p, nil
}

// setupProfiling starts the profilers requested for this crust run. The
// returned stop runs once: it closes them in reverse start order, then
// writes the heap profile so it covers the whole command.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	p, err := readProfileFlags(cmd)
	if err != nil {
		return nil, err
	}

	var stops []func()
	unwind := func() {
		for i := len(stops) - 1; i >= 0; i-- {
			stops[i]()
		}
		stops = nil
	}

	if p.cpu != "" {
		if err := prof.StartCPU(p.cpu); err != nil {
			return nil, fmt.Errorf("failed to start cpu profile: %w", err)
		}
		stops = append(stops, prof.StopCPU)
	}
	if p.trace != "" {
		if err := prof.StartTrace(p.trace); err != nil {
			unwind()
			return nil, fmt.Errorf("failed to start runtime trace: %w", err)
		}
		stops = append(stops, prof.StopTrace)
	}

	done := false
	return func() {
		if done {
			return
		}
		done = true
		unwind()
		if p.mem == "" {
			return
		}
		if err := prof.WriteMem(p.mem); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "failed to write heap profile: %v\n", err)
		}
	}, nil
}
