// Command xor trains a [2,3,1] network on the ±1 XOR table and prints the
// per-epoch error followed by expected and predicted outputs.
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

const epochs = 10

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

	net, err := simplenn.NewNetworkWithRand([]int{2, 3, 1}, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	set := simplenn.XOR()

	fmt.Fprintln(w, "training")
	summary, err := client.Train(ctx, simplenn.TrainRequest{
		Label:         "xor",
		Network:       net,
		Error:         set.ErrorFunc(),
		Epochs:        epochs,
		Seed:          seed,
		MaxCandidates: maxCandidates,
		OnEpoch:       printEpoch(w),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "run %s: error %g -> %g over %s candidates\n",
		summary.RunID, summary.Stats.InitialError, summary.FinalError, humanize.Comma(int64(summary.Stats.Candidates)))

	fmt.Fprintln(w, "testing")
	predictions, err := set.Predict(net)
	if err != nil {
		return err
	}
	for _, p := range predictions {
		fmt.Fprintf(w, "%v %v\n", p.Output, p.Predicted)
	}
	return nil
}

func printEpoch(w io.Writer) func(simplenn.EpochRecord) {
	return func(r simplenn.EpochRecord) {
		fmt.Fprintf(w, "%d %g %g (%s candidates)\n", r.Epoch, r.Error, r.Multiplier, humanize.Comma(int64(r.Candidates)))
	}
}
