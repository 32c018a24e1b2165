// Package simplenn is a small feedforward tanh network with a gradient-free
// trainer: each training step perturbs a random quarter of the units of a
// copy of the network and keeps the copy only if it strictly lowers a
// caller-supplied error.
//
// Networks are built and trained directly:
//
//	net, err := simplenn.NewNetwork([]int{2, 3, 1})
//	...
//	set := simplenn.XOR()
//	e, err := net.TrainStep(1.0, set.ErrorFunc())
//
// A Client additionally runs multi-epoch schedules and records each run's
// error history in a store.
package simplenn

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"simplenn/internal/model"
	"simplenn/internal/nn"
	"simplenn/internal/sample"
	"simplenn/internal/storage"
	"simplenn/internal/tuning"
)

const (
	defaultDBPath   = "simplenn.db"
	createdAtLayout = "2006-01-02T15:04:05.000000000Z"
)

type (
	Network     = nn.Network
	ErrorFunc   = nn.ErrorFunc
	StepReport  = nn.StepReport
	Sample      = sample.Sample
	SampleSet   = sample.Set
	Prediction  = sample.Prediction
	EpochRecord = model.EpochRecord
	RunStats    = model.RunStats
)

var (
	ErrLengthMismatch  = nn.ErrLengthMismatch
	ErrInvalidTopology = nn.ErrInvalidTopology
	ErrNoImprovement   = nn.ErrNoImprovement
)

const SparseProbability = nn.SparseProbability

func NewNetwork(topology []int) (*Network, error) {
	return nn.New(topology)
}

func NewNetworkWithRand(topology []int, r *rand.Rand) (*Network, error) {
	return nn.NewWithRand(topology, r)
}

func MeanSquaredError(predicted, actual []float64) (float64, error) {
	return nn.MeanSquaredError(predicted, actual)
}

func Pair(in, out []float64) Sample {
	return sample.Pair(in, out)
}

func Samples(samples ...Sample) SampleSet {
	return sample.Of(samples...)
}

func XOR() SampleSet {
	return sample.XOR()
}

type Options struct {
	StoreKind string
	DBPath    string
}

// Client runs training schedules and records their error history.
type Client struct {
	store storage.Store

	mu          sync.Mutex
	initialized bool
}

type TrainRequest struct {
	Label             string
	Network           *Network
	Error             ErrorFunc
	Epochs            int
	InitialMultiplier float64
	Policy            string
	PolicyParam       float64
	MaxCandidates     int
	// Seed is recorded with the run; it does not seed the network.
	Seed    int64
	OnEpoch func(EpochRecord)
}

type RunSummary struct {
	RunID      string
	Epochs     []EpochRecord
	Stats      RunStats
	FinalError float64
}

type RunItem struct {
	RunID        string
	CreatedAtUTC string
	Label        string
	Topology     []int
	Policy       string
	Seed         int64
	Epochs       int
	FinalError   float64
	Improvement  float64
}

type RunDetail struct {
	RunItem
	History []EpochRecord
	Stats   RunStats
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}
	return &Client{store: store}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func (c *Client) Init(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := c.store.Init(ctx); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// Train runs the request's schedule against its network, which is trained in
// place, and records the run. A failed run is not recorded; the epochs it
// completed are returned alongside the error.
func (c *Client) Train(ctx context.Context, req TrainRequest) (RunSummary, error) {
	if req.Network == nil {
		return RunSummary{}, errors.New("network is required")
	}
	if req.Error == nil {
		return RunSummary{}, errors.New("error function is required")
	}
	if err := c.Init(ctx); err != nil {
		return RunSummary{}, err
	}

	schedule := tuning.Schedule{
		Epochs:            req.Epochs,
		InitialMultiplier: req.InitialMultiplier,
		Policy:            req.Policy,
		PolicyParam:       req.PolicyParam,
		MaxCandidates:     req.MaxCandidates,
	}
	trainer := &tuning.Trainer{Schedule: schedule, OnEpoch: req.OnEpoch}

	records, err := trainer.Run(ctx, req.Network, req.Error)
	if err != nil {
		return RunSummary{Epochs: records, Stats: tuning.Summarize(records)}, err
	}
	stats := tuning.Summarize(records)

	run := storage.Stamp(model.TrainingRun{
		ID:           uuid.NewString(),
		CreatedAtUTC: time.Now().UTC().Format(createdAtLayout),
		Label:        req.Label,
		Topology:     req.Network.Topology(),
		Policy:       tuning.NormalizePolicyName(req.Policy),
		Seed:         req.Seed,
		Epochs:       records,
		Stats:        stats,
	})
	if err := c.store.SaveRun(ctx, run); err != nil {
		return RunSummary{}, fmt.Errorf("save run %s: %w", run.ID, err)
	}

	return RunSummary{
		RunID:      run.ID,
		Epochs:     records,
		Stats:      stats,
		FinalError: stats.FinalError,
	}, nil
}

// Runs lists recorded runs newest first; limit <= 0 lists all of them.
func (c *Client) Runs(ctx context.Context, limit int) ([]RunItem, error) {
	if err := c.Init(ctx); err != nil {
		return nil, err
	}
	runs, err := c.store.ListRuns(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]RunItem, 0, len(runs))
	for _, run := range runs {
		items = append(items, runItem(run))
	}
	return items, nil
}

func (c *Client) Run(ctx context.Context, id string) (RunDetail, error) {
	if err := c.Init(ctx); err != nil {
		return RunDetail{}, err
	}
	run, ok, err := c.store.GetRun(ctx, id)
	if err != nil {
		return RunDetail{}, err
	}
	if !ok {
		return RunDetail{}, fmt.Errorf("run not found: %s", id)
	}
	return RunDetail{
		RunItem: runItem(run),
		History: run.Epochs,
		Stats:   run.Stats,
	}, nil
}

func runItem(run model.TrainingRun) RunItem {
	return RunItem{
		RunID:        run.ID,
		CreatedAtUTC: run.CreatedAtUTC,
		Label:        run.Label,
		Topology:     run.Topology,
		Policy:       run.Policy,
		Seed:         run.Seed,
		Epochs:       len(run.Epochs),
		FinalError:   run.Stats.FinalError,
		Improvement:  run.Stats.Improvement,
	}
}
