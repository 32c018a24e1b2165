// Command solver trains an XOR network, then trains a second network with no
// inputs whose two outputs, fed into the XOR network, drive the XOR output as
// low as possible.
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"simplenn/pkg/simplenn"
)

const (
	xorEpochs    = 10
	solverEpochs = 10
)

func main() {
	if err := run(context.Background(), os.Stdout, time.Now().UnixNano(), 0); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// maxCandidates caps each training step; 0 leaves it unbounded.
func run(ctx context.Context, w io.Writer, seed int64, maxCandidates int) error {
	client, err := simplenn.New(simplenn.Options{})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	rng := rand.New(rand.NewSource(seed))

	xorNet, err := simplenn.NewNetworkWithRand([]int{2, 3, 1}, rng)
	if err != nil {
		return err
	}
	set := simplenn.XOR()

	fmt.Fprintln(w, "xor_net training")
	if _, err := client.Train(ctx, simplenn.TrainRequest{
		Label:         "xor",
		Network:       xorNet,
		Error:         set.ErrorFunc(),
		Epochs:        xorEpochs,
		Seed:          seed,
		MaxCandidates: maxCandidates,
		OnEpoch:       printEpoch(w),
	}); err != nil {
		return err
	}

	fmt.Fprintln(w, "xor_net testing")
	predictions, err := set.Predict(xorNet)
	if err != nil {
		return err
	}
	for _, p := range predictions {
		fmt.Fprintf(w, "%v %v\n", p.Output, p.Predicted)
	}

	solverNet, err := simplenn.NewNetworkWithRand([]int{0, 3, 2}, rng)
	if err != nil {
		return err
	}
	solverNet.Perturb(1.0)

	fmt.Fprintln(w, "solver_net training")
	summary, err := client.Train(ctx, simplenn.TrainRequest{
		Label:         "solver",
		Network:       solverNet,
		Error:         xorOutput(xorNet),
		Epochs:        solverEpochs,
		Seed:          seed,
		MaxCandidates: maxCandidates,
		OnEpoch:       printEpoch(w),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "run %s: xor output %g -> %g over %s candidates\n",
		summary.RunID, summary.Stats.InitialError, summary.FinalError, humanize.Comma(int64(summary.Stats.Candidates)))

	fmt.Fprintln(w, "solver_net testing")
	guess, err := solverNet.Evaluate(nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v\n", guess)
	return nil
}

// xorOutput scores a solver network by the first output of xorNet when fed
// the solver's output.
func xorOutput(xorNet *simplenn.Network) simplenn.ErrorFunc {
	return func(net *simplenn.Network) (float64, error) {
		guess, err := net.Evaluate(nil)
		if err != nil {
			return 0, err
		}
		out, err := xorNet.Evaluate(guess)
		if err != nil {
			return 0, err
		}
		return out[0], nil
	}
}

func printEpoch(w io.Writer) func(simplenn.EpochRecord) {
	return func(r simplenn.EpochRecord) {
		fmt.Fprintf(w, "%d %g %g (%s candidates)\n", r.Epoch, r.Error, r.Multiplier, humanize.Comma(int64(r.Candidates)))
	}
}
