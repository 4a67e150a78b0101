// Package driver wires a tsp.Algorithm selection, a progress observer, and
// output formatting around the solver core, grounded on the original
// reference's ProgressPlot::run poll loop (progress.rs) and the teacher's
// discipline of keeping the solve path itself free of logging.
package driver

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/tsproute/tsp"
)

// observerReceiveTimeout bounds how long Observe waits on an empty channel
// before re-checking for Done; it is a liveness mechanism only, never a
// cancellation primitive (spec.md §5).
const observerReceiveTimeout = 10 * time.Millisecond

// Run selects a solver via tsp.Dispatch, optionally spawns a progress
// observer, runs the solver synchronously, and returns its Solution. Output
// formatting is left to FormatResult so callers can reuse Run in tests
// without touching stdout.
func Run(points []tsp.Point, opts tsp.SolverOptions, algo tsp.Algorithm, logger *zap.SugaredLogger) (tsp.Solution, error) {
	fn, err := tsp.Dispatch(algo)
	if err != nil {
		return tsp.Solution{}, err
	}

	var pub tsp.Publisher
	var done chan struct{}
	if opts.ShowProgress {
		channelPub := tsp.NewChannelPublisher(256, func(msg string) { logger.Warnw(msg) })
		pub = channelPub
		done = make(chan struct{})
		go Observe(channelPub.Channel(), algo, logger, done)
	} else {
		pub = tsp.NewSinkPublisher(opts.Verbose)
	}

	sol, err := fn(points, opts, pub)

	if opts.ShowProgress {
		// The solver always publishes Done on a successful run (see each
		// solver's tail); on error, inject it ourselves so Observe exits.
		if err != nil {
			pub.Publish(tsp.NewDone())
		}
		<-done
	}

	return sol, err
}

// Observe drains progress messages with a 10ms receive timeout, logging each
// one via the sugared logger (debug for intermediate messages, info for
// Done/Restart), then closes done on the terminal Done message. The timeout
// only re-checks liveness — it never cancels the solver (spec.md §5).
func Observe(ch <-chan tsp.ProgressMessage, algo tsp.Algorithm, logger *zap.SugaredLogger, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case msg := <-ch:
			switch msg.Kind {
			case tsp.Done:
				logger.Infow("solver finished", "algorithm", algo.String())
				return
			case tsp.Restart:
				logger.Infow("solver restarted after stagnation", "algorithm", algo.String())
			default:
				logger.Debugw(msg.String(), "algorithm", algo.String())
			}
		case <-time.After(observerReceiveTimeout):
			// No message yet; loop and check again.
		}
	}
}

// FormatResult renders a Solution exactly as spec.md §6 ("Output") requires:
// first line total length with five fractional digits and a reserved
// optimization flag (always 0 in this implementation), second line the
// space-separated tour ids.
func FormatResult(sol tsp.Solution) string {
	ids := make([]string, len(sol.Route))
	for i, id := range sol.Route {
		ids[i] = fmt.Sprintf("%d", id)
	}
	line2 := ""
	for i, s := range ids {
		if i > 0 {
			line2 += " "
		}
		line2 += s
	}
	return fmt.Sprintf("%.5f 0\n%s\n", sol.TotalLength, line2)
}

// NewLogger builds the zap logger the driver and CLI share: development
// config (human-readable, debug-enabled) when verbose, production config
// otherwise — matching viamrobotics/rdk's verbosity-gated logger selection.
func NewLogger(verbose bool) (*zap.SugaredLogger, error) {
	var zl *zap.Logger
	var err error
	if verbose {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return zl.Sugar(), nil
}
