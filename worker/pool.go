// Package worker runs classification jobs over a pool of goroutines.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/academe-go/academe/classifier"
)

type job struct {
	input string
	index int
}

// Pool classifies inputs concurrently. Results keep the input order.
type Pool struct {
	cl      *classifier.Classifier
	workers int

	processed atomic.Uint64
	academic  atomic.Uint64

	onResult func(classifier.Result)
}

// New returns a pool running at most workers concurrent classifications.
// A workers value below 1 is treated as 1.
func New(cl *classifier.Classifier, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		cl:      cl,
		workers: workers,
	}
}

// SetOnResult registers a callback invoked after each classified input.
// The callback runs on worker goroutines and must be safe for concurrent
// use.
func (p *Pool) SetOnResult(f func(classifier.Result)) {
	p.onResult = f
}

// Process classifies every input and returns the results in input order.
// When ctx is canceled before all inputs have been submitted, it stops
// early and returns ctx's error along with the results produced so far;
// entries for unprocessed inputs are left zero.
func (p *Pool) Process(ctx context.Context, inputs []string) ([]classifier.Result, error) {
	jobs := make(chan job)
	results := make([]classifier.Result, len(inputs))

	var wg sync.WaitGroup
	wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				r := p.cl.Classify(j.input)
				p.processed.Add(1)
				if r.Academic {
					p.academic.Add(1)
				}
				results[j.index] = r
				if p.onResult != nil {
					p.onResult(r)
				}
			}
		}()
	}

	var err error
submit:
	for i, input := range inputs {
		select {
		case jobs <- job{input: input, index: i}:
		case <-ctx.Done():
			err = ctx.Err()
			break submit
		}
	}
	close(jobs)
	wg.Wait()

	return results, err
}

// Processed returns the number of inputs classified so far.
func (p *Pool) Processed() uint64 {
	return p.processed.Load()
}

// Academic returns the number of academic results so far.
func (p *Pool) Academic() uint64 {
	return p.academic.Load()
}
