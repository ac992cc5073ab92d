// Package split partitions the tidied dataset into training, validation,
// and test subsets with stratified sampling.
package split

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Partition identifies which subset a row belongs to.
type Partition int

const (
	Train Partition = iota
	Validation
	Test
)

func (p Partition) String() string {
	switch p {
	case Train:
		return "train"
	case Validation:
		return "validation"
	case Test:
		return "test"
	}
	return "unknown"
}

// Config controls the split. TrainFrac and ValidationFrac are target
// proportions; the test partition takes the remainder. Seed makes the
// assignment reproducible byte-for-byte across runs.
type Config struct {
	TrainFrac      float64
	ValidationFrac float64
	Seed           int64
}

// Result holds one partition label per input row, in input order, plus a
// warning for every stratum too small to populate a partition. Rounding
// problems are surfaced, never swallowed.
type Result struct {
	Assignments []Partition
	Warnings    []string
}

// Assign groups rows by their stratum label and apportions each stratum
// across the three partitions at the configured proportions, so no
// partition is starved of any stratum present in the input. Within a
// stratum rows are shuffled from the seeded source; strata are visited in
// sorted label order, so a fixed seed always yields the same assignment.
// Per-stratum counts use largest-remainder rounding with ties broken
// toward the earlier partition.
func Assign(strata []string, config Config) (Result, error) {
	if config.TrainFrac <= 0 || config.TrainFrac >= 1 {
		return Result{}, fmt.Errorf("split: train fraction %v outside (0, 1)", config.TrainFrac)
	}
	if config.ValidationFrac < 0 || config.ValidationFrac >= 1 {
		return Result{}, fmt.Errorf("split: validation fraction %v outside [0, 1)", config.ValidationFrac)
	}
	testFrac := 1 - config.TrainFrac - config.ValidationFrac
	if testFrac < 0 {
		return Result{}, fmt.Errorf("split: train fraction %v plus validation fraction %v exceeds 1",
			config.TrainFrac, config.ValidationFrac)
	}

	groups := make(map[string][]int)
	for i, s := range strata {
		groups[s] = append(groups[s], i)
	}
	labels := make([]string, 0, len(groups))
	for s := range groups {
		labels = append(labels, s)
	}
	sort.Strings(labels)

	rng := rand.New(rand.NewSource(config.Seed))
	fractions := []float64{config.TrainFrac, config.ValidationFrac, testFrac}
	result := Result{Assignments: make([]Partition, len(strata))}

	for _, label := range labels {
		rows := groups[label]
		rng.Shuffle(len(rows), func(i, j int) {
			rows[i], rows[j] = rows[j], rows[i]
		})

		counts := apportion(len(rows), fractions)
		for part, n := range counts {
			if n == 0 && fractions[part] > 0 {
				result.Warnings = append(result.Warnings, fmt.Sprintf(
					"stratum %q has only %d rows; %s partition is empty",
					label, len(rows), Partition(part)))
			}
		}

		next := 0
		for part, n := range counts {
			for i := 0; i < n; i++ {
				result.Assignments[rows[next]] = Partition(part)
				next++
			}
		}
	}
	return result, nil
}

// apportion distributes n rows across the target fractions with the
// largest-remainder method. Every row is assigned: floors first, then the
// leftover rows go to the largest remainders, earlier partition on ties.
func apportion(n int, fractions []float64) []int {
	counts := make([]int, len(fractions))
	remainders := make([]float64, len(fractions))
	assigned := 0
	for i, f := range fractions {
		exact := f * float64(n)
		counts[i] = int(math.Floor(exact))
		remainders[i] = exact - math.Floor(exact)
		assigned += counts[i]
	}
	for assigned < n {
		best := 0
		for i := 1; i < len(remainders); i++ {
			if remainders[i] > remainders[best] {
				best = i
			}
		}
		counts[best]++
		remainders[best] = -1
		assigned++
	}
	return counts
}
