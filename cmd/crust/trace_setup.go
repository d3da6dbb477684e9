package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cooldudemcgeexl/crust/internal/trace"
)

// setupTracing inspects trace-related flags, attaches a tracer and a
// driver-scope span for the command to the returned context. Profilers
// requested by flags are started as well.
// The cleanup function ends the span, flushes the tracer and stops profiling.
func setupTracing(cmd *cobra.Command) (context.Context, func(), error) {
	root := cmd.Root()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return nil, nil, err
	}
	ctx, cleanup, err := setupTracer(ctx, cmd, root)
	if err != nil {
		stopProfiling()
		return nil, nil, err
	}
	return ctx, func() {
		cleanup()
		stopProfiling()
	}, nil
}

func setupTracer(ctx context.Context, cmd *cobra.Command, root *cobra.Command) (context.Context, func(), error) {
	traceOutput, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := root.PersistentFlags().GetString("trace-format")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-format flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, nil, err
	}
	// --trace без уровня означает phase
	if traceOutput != "" && levelStr == "" {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		return trace.WithTracer(ctx, trace.Nop), func() {}, nil
	}

	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, nil, err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Format:     format,
		OutputPath: traceOutput,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	ctx = trace.WithTracer(ctx, tracer)
	span := trace.Begin(tracer, trace.ScopeDriver, "crust "+cmd.Name(), 0)
	ctx = trace.WithSpan(ctx, span)

	cleanup := func() {
		span.End("")
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}
	return ctx, cleanup, nil
}
