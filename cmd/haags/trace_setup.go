package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"haags/internal/trace"
)

// traceSession owns the tracer of one command run.
type traceSession struct {
	tracer    trace.Tracer
	heartbeat *trace.Heartbeat
	mode      trace.StorageMode
	output    string
	errOut    io.Writer
}

// setupTracing inspects trace-related flags and initializes the tracer.
// It attaches the tracer to the command context; call finish when the command ends.
func setupTracing(cmd *cobra.Command) (*traceSession, error) {
	root := cmd.Root()

	// Read trace configuration from flags
	traceOutput, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}

	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}

	modeStr, err := root.PersistentFlags().GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}

	ringSize, err := root.PersistentFlags().GetInt("trace-ring-size")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	heartbeatInterval, err := root.PersistentFlags().GetDuration("trace-heartbeat")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-heartbeat flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}
	// --trace без уровня включает трассировку стадий
	if level == trace.LevelOff && traceOutput != "" {
		level = trace.LevelStage
	}

	session := &traceSession{tracer: trace.Nop, errOut: cmd.ErrOrStderr(), output: traceOutput}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return session, nil
	}

	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace mode: %w", err)
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: traceOutput,
		RingSize:   ringSize,
		Heartbeat:  heartbeatInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	session.tracer = tracer
	session.mode = mode

	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))
	session.heartbeat = trace.StartHeartbeat(tracer, heartbeatInterval)
	return session, nil
}

// finish stops the heartbeat, dumps the ring buffer when the run failed and
// closes the tracer.
func (s *traceSession) finish(failed bool) {
	if s == nil || s.tracer == trace.Nop {
		return
	}
	s.heartbeat.Stop()

	if ring := trace.Ring(s.tracer); ring != nil && failed && s.mode == trace.ModeRing {
		if err := s.dumpRing(ring); err != nil {
			fmt.Fprintf(s.errOut, "trace: dump error: %v\n", err)
		}
	}

	if err := s.tracer.Flush(); err != nil {
		fmt.Fprintf(s.errOut, "trace: flush error: %v\n", err)
	}
	if err := s.tracer.Close(); err != nil {
		fmt.Fprintf(s.errOut, "trace: close error: %v\n", err)
	}
}

func (s *traceSession) dumpRing(ring *trace.RingTracer) error {
	if s.output == "" || s.output == "-" {
		if dropped := ring.Dropped(); dropped > 0 {
			fmt.Fprintf(s.errOut, "== trace ring (%d earlier events dropped) ==\n", dropped)
		} else {
			fmt.Fprintln(s.errOut, "== trace ring ==")
		}
		return ring.Dump(s.errOut, trace.FormatText)
	}
	f, err := os.Create(s.output)
	if err != nil {
		return err
	}
	if err := ring.Dump(f, trace.FormatForPath(s.output)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// dumpTraceOnPanic dumps the ring buffer before re-panicking, so the last events
// before a crash are not lost.
func (s *traceSession) dumpTraceOnPanic() {
	r := recover()
	if r == nil {
		return
	}
	if s != nil {
		if ring := trace.Ring(s.tracer); ring != nil {
			_ = s.dumpRing(ring)
		}
	}
	panic(r)
}
