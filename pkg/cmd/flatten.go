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

	"github.com/consensys/go-flux/pkg/seq"
	"github.com/consensys/go-flux/pkg/seq/adaptor"
	"github.com/consensys/go-flux/pkg/seq/algorithm"
	"github.com/spf13/cobra"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten [flags] word...",
	Short: "flatten a sequence of words into one.",
	Long: `Flatten a sequence of words into a single sequence of characters,
	optionally placing a separator between consecutive words.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(flatten(args, GetString(cmd, "sep")))
	},
}

// Flatten a set of words, placing a given separator between them.
func flatten(words []string, sep string) string {
	outer := adaptor.Map[int, string, *seq.Slice[rune]](seq.FromSlice(words), seq.Runes)
	//
	if sep == "" {
		flat := adaptor.Flatten[int, int, rune, *seq.Slice[rune]](outer)
		return string(algorithm.ToSlice(flat))
	}
	//
	flat := adaptor.FlattenWith[int, int, int, rune, *seq.Slice[rune]](outer, seq.Runes(sep))
	//
	return string(algorithm.ToSlice(flat))
}

func init() {
	rootCmd.AddCommand(flattenCmd)
	flattenCmd.Flags().String("sep", "", "separator placed between consecutive words")
}
