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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-flux/pkg/seq"
	"github.com/consensys/go-flux/pkg/seq/adaptor"
	"github.com/consensys/go-flux/pkg/seq/algorithm"
	"github.com/consensys/go-flux/pkg/seq/set"
	"github.com/spf13/cobra"
)

var setopCmd = &cobra.Command{
	Use:   "setop [flags] union|intersection|difference|symdiff left right...",
	Short: "apply a set operation to two sorted lists.",
	Long: `Apply a set operation to two comma separated lists of integers,
	each of which must be in non-decreasing order.  Duplicates are treated as
	distinct elements, such that e.g. the union of "1,1" and "1" is "1,1".
	With --distinct, each list is instead read as a set (in any order, with
	duplicates ignored) and any number of lists may be given.  Operations are
	then folded left to right over the lists.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			result   string
			err      error
			distinct = GetFlag(cmd, "distinct")
		)
		//
		if len(args) < 3 || (!distinct && len(args) != 3) {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if distinct {
			result, err = distinctSetOperation(args[0], args[1:])
		} else {
			result, err = setOperation(args[0], args[1], args[2])
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(result)
	},
}

// Apply a named set operation to two comma separated lists, producing a comma
// separated list.
func setOperation(op string, left string, right string) (string, error) {
	var result seq.Sequence[adaptor.SetCursor[int, int], int]
	//
	lhs, err := parseSortedList(left)
	if err != nil {
		return "", err
	}
	//
	rhs, err := parseSortedList(right)
	if err != nil {
		return "", err
	}
	//
	switch op {
	case "union":
		result = adaptor.Union[int, int, int](lhs, rhs)
	case "intersection":
		result = adaptor.Intersection[int, int, int](lhs, rhs)
	case "difference":
		result = adaptor.Difference[int, int, int](lhs, rhs)
	case "symdiff":
		result = adaptor.SymmetricDifference[int, int, int](lhs, rhs)
	default:
		return "", fmt.Errorf("unknown set operation %q", op)
	}
	//
	items := algorithm.ToSlice(adaptor.Map(result, strconv.Itoa))
	//
	return strings.Join(items, ","), nil
}

// Apply a named set operation across one or more comma separated lists, each
// read as a set of distinct integers.  Symmetric difference is taken pairwise
// from left to right.
func distinctSetOperation(op string, lists []string) (string, error) {
	sets := make([]*set.SortedSet[int], len(lists))
	//
	for i, list := range lists {
		items, err := parseIntList(list)
		if err != nil {
			return "", err
		}
		//
		sets[i] = set.FromSequence[int, int](seq.FromSlice(items))
	}
	//
	var result *set.SortedSet[int]
	//
	switch op {
	case "union":
		result = set.UnionSortedSets(sets, func(s *set.SortedSet[int]) *set.SortedSet[int] { return s })
	case "intersection":
		result = foldSets(sets, (*set.SortedSet[int]).Intersect)
	case "difference":
		result = foldSets(sets, (*set.SortedSet[int]).Subtract)
	case "symdiff":
		result = foldSets(sets, func(l, r *set.SortedSet[int]) *set.SortedSet[int] {
			return l.Union(r).Subtract(l.Intersect(r))
		})
	default:
		return "", fmt.Errorf("unknown set operation %q", op)
	}
	//
	items := algorithm.ToSlice(adaptor.Map(result.Seq(), strconv.Itoa))
	//
	return strings.Join(items, ","), nil
}

func foldSets(sets []*set.SortedSet[int], fn func(*set.SortedSet[int], *set.SortedSet[int]) *set.SortedSet[int]) *set.SortedSet[int] {
	result := sets[0]
	//
	for _, s := range sets[1:] {
		result = fn(result, s)
	}
	//
	return result
}

func parseSortedList(str string) (seq.Sequence[int, int], error) {
	items, err := parseIntList(str)
	//
	if err != nil {
		return nil, err
	} else if !algorithm.IsSorted[int, int](seq.FromSlice(items)) {
		return nil, fmt.Errorf("list %q is not in non-decreasing order", str)
	}
	//
	return seq.FromSlice(items), nil
}

func init() {
	rootCmd.AddCommand(setopCmd)
	setopCmd.Flags().Bool("distinct", false, "read each list as a set of distinct elements")
}
