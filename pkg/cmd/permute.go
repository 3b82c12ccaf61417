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

	"github.com/consensys/go-flux/pkg/seq"
	"github.com/consensys/go-flux/pkg/seq/adaptor"
	"github.com/consensys/go-flux/pkg/seq/algorithm"
	"github.com/spf13/cobra"
)

var permuteCmd = &cobra.Command{
	Use:   "permute [flags] word",
	Short: "print the permutations of a word.",
	Long: `Print all permutations of the characters of a given word, in
	lexicographic order of position.  Optionally, only permutations of a
	given length are printed.  Output is packed into columns which fit the
	terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		k := GetInt(cmd, "k")
		//
		perms, err := permutations(args[0], k)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		for _, line := range layoutColumns(perms, terminalWidth()) {
			fmt.Println(line)
		}
	},
}

// Determine the permutations of the characters of a given word, where a
// non-positive length selects full permutations.
func permutations(word string, k int) ([]string, error) {
	var (
		chars = seq.Runes(word)
		perms seq.Sequence[adaptor.PermutationCursor, []rune]
	)
	//
	if k > seq.Size[int, rune](chars) {
		return nil, fmt.Errorf("cannot select %d characters from %q", k, word)
	} else if k <= 0 {
		perms = adaptor.Permutations[int, rune](chars)
	} else {
		perms = adaptor.PermutationsSized[int, rune](chars, k)
	}
	//
	return algorithm.ToSlice(adaptor.Map(perms, func(p []rune) string { return string(p) })), nil
}

func init() {
	rootCmd.AddCommand(permuteCmd)
	permuteCmd.Flags().Int("k", 0, "length of permutations (0 for all characters)")
}
