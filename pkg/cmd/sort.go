// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"os"
	"slices"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-flux/pkg/seq"
	"github.com/consensys/go-flux/pkg/seq/algorithm"
	"github.com/consensys/go-flux/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort [flags]",
	Short: "sort a generated input using pattern-defeating quicksort.",
	Long: `Generate an input of a given size and shape, then sort it using
	pattern-defeating quicksort.  The result is checked to be both ordered
	and a permutation of the input, and the number of comparisons and moves
	performed is reported.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			n        = GetInt(cmd, "n")
			seed     = uint64(GetInt64(cmd, "seed"))
			field    = GetFlag(cmd, "field")
			pattern  = GetString(cmd, "pattern")
			patterns = []string{pattern}
		)
		//
		if pattern == "all" {
			patterns = sortPatterns
		}
		//
		table := util.NewTablePrinter(3, uint(len(patterns)+1))
		table.SetRow(0, "pattern", "comparisons", "moves")
		//
		for i, p := range patterns {
			rng := rand.New(rand.NewPCG(seed, seed))
			//
			result, err := sortPattern(p, n, field, rng)
			if err != nil {
				log.Error(err)
				os.Exit(1)
			}
			//
			log.Infof("sorted %d %s items using %d comparisons and %d moves", n, p, result.Compares, result.Moves)
			table.SetRow(uint(i+1), p, fmt.Sprint(result.Compares), fmt.Sprint(result.Moves))
		}
		//
		if len(patterns) > 1 {
			table.Print()
		}
	},
}

// Input patterns understood by the sort command.
var sortPatterns = []string{"random", "sorted", "reversed", "equal", "killer"}

// Generate and then sort an input following a given pattern, either as plain
// integers or as field elements.
func sortPattern(pattern string, n int, field bool, rng *rand.Rand) (algorithm.SortStats, error) {
	stats := util.NewPerfStats()
	//
	items, err := generateInput(pattern, n, rng)
	if err != nil {
		return algorithm.SortStats{}, err
	}
	//
	stats.Log("Generating input")
	//
	defer stats.Log("Sorting")
	//
	if field {
		elements := toFieldElements(items, pattern == "random", rng)
		return checkedSort(elements, func(l, r fr.Element) int { return l.Cmp(&r) })
	}
	//
	return checkedSort(items, cmp.Compare[int])
}

// Generate an input of a given size following a named pattern.
func generateInput(pattern string, n int, rng *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid input size %d", n)
	}
	//
	switch pattern {
	case "random":
		return rng.Perm(n), nil
	case "sorted":
		return algorithm.ToSlice[int, int](seq.Range(0, n)), nil
	case "reversed":
		items := algorithm.ToSlice[int, int](seq.Range(0, n))
		slices.Reverse(items)
		//
		return items, nil
	case "equal":
		return algorithm.ToSlice[int, int](seq.RepeatN(1, n)), nil
	case "killer":
		return medianOfThreeKiller(n), nil
	default:
		return nil, fmt.Errorf("unknown input pattern %q", pattern)
	}
}

// Construct Musser's median-of-3 killer sequence, against which quicksort with
// median-of-3 pivot selection performs a quadratic number of comparisons.
func medianOfThreeKiller(n int) []int {
	var (
		k     = n / 2
		items = make([]int, n)
	)
	//
	for i := 1; i <= k; i++ {
		if i%2 == 1 {
			items[i-1] = i
			items[i] = k + i
		}
		//
		items[k+i-1] = 2 * i
	}
	// Odd lengths have one extra (largest) element
	if n%2 == 1 {
		items[n-1] = n
	}
	//
	return items
}

// Convert integers into field elements.  When random, the integers themselves
// are ignored and replaced with uniformly distributed elements.
func toFieldElements(items []int, random bool, rng *rand.Rand) []fr.Element {
	var (
		elements = make([]fr.Element, len(items))
		bytes    [fr.Bytes]byte
	)
	//
	for i, item := range items {
		if random {
			for j := range bytes {
				bytes[j] = byte(rng.Uint32())
			}
			//
			elements[i].SetBytes(bytes[:])
		} else {
			elements[i].SetUint64(uint64(item))
		}
	}
	//
	return elements
}

// Sort a given set of items in place, checking the result is both ordered and
// a permutation of the original.
func checkedSort[E any](items []E, cmp func(E, E) int) (algorithm.SortStats, error) {
	expected := slices.Clone(items)
	slices.SortStableFunc(expected, cmp)
	//
	stats := algorithm.SortFuncWithStats[int, E](seq.FromSlice(items), cmp)
	//
	if !algorithm.IsSortedFunc[int, E](seq.FromSlice(items), cmp) {
		return stats, fmt.Errorf("result is not sorted")
	}
	// Since both are sorted, they are permutations of each other exactly when
	// they are equivalent pairwise.
	eq := func(l E, r E) bool { return cmp(l, r) == 0 }
	if !algorithm.EqualFunc[int, int, E, E](seq.FromSlice(items), seq.FromSlice(expected), eq) {
		return stats, fmt.Errorf("result is not a permutation of the input")
	}
	//
	return stats, nil
}

func init() {
	rootCmd.AddCommand(sortCmd)
	sortCmd.Flags().Int("n", 1000, "number of items to sort")
	sortCmd.Flags().String("pattern", "random", "input pattern (random, sorted, reversed, equal, killer or all)")
	sortCmd.Flags().Bool("field", false, "sort elements of the BLS12-377 scalar field")
	sortCmd.Flags().Int64("seed", 0, "seed for random inputs")
}
