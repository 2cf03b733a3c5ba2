package bench

import (
	"context"
	"runtime"

	"github.com/IlikeChooros/go-uct/pkg/mcts"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// How often every move was chosen over many independent searches of one position
type Frequency[T mcts.MoveLike] struct {
	Runs int
	// Moves in order of first appearance, Counts[i] belongs to Moves[i]
	Moves  []T
	Counts []int
}

// Run 'runs' searches of the root, run 'i' seeded with seed+i, and count the chosen moves
func MoveFrequency[T mcts.MoveLike](ctx context.Context, root mcts.State[T], runs int, seed uint64, options ...mcts.Option) (Frequency[T], error) {
	chosen := make([]T, runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range runs {
		g.Go(func() error {
			engine := newEngine[T](Agent{Options: options}, seed+uint64(i))
			move, err := engine.Search(ctx, root.Clone())
			if err != nil {
				return err
			}
			chosen[i] = move
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Frequency[T]{}, err
	}

	freq := Frequency[T]{Runs: runs}
	index := make(map[T]int)
	for _, move := range chosen {
		i, ok := index[move]
		if !ok {
			i = len(freq.Moves)
			index[move] = i
			freq.Moves = append(freq.Moves, move)
			freq.Counts = append(freq.Counts, 0)
		}
		freq.Counts[i]++
	}
	return freq, nil
}

func (f Frequency[T]) Count(move T) int {
	for i := range f.Moves {
		if f.Moves[i] == move {
			return f.Counts[i]
		}
	}
	return 0
}

// Most frequent move, first one on ties
func (f Frequency[T]) Mode() (T, int) {
	var best T
	count := 0
	for i := range f.Moves {
		if f.Counts[i] > count {
			best, count = f.Moves[i], f.Counts[i]
		}
	}
	return best, count
}

func (f Frequency[T]) Probabilities() []float64 {
	p := make([]float64, len(f.Counts))
	for i, c := range f.Counts {
		p[i] = float64(c) / float64(f.Runs)
	}
	return p
}

// Shannon entropy of the move distribution in nats, 0 if the same move was always chosen
func (f Frequency[T]) Entropy() float64 {
	return stat.Entropy(f.Probabilities())
}
