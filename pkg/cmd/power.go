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

	"github.com/consensys/go-flux/pkg/seq/adaptor"
	"github.com/consensys/go-flux/pkg/seq/algorithm"
	"github.com/consensys/go-flux/pkg/seq/view"
	"github.com/consensys/go-flux/pkg/util"
	"github.com/consensys/go-flux/pkg/util/math"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var powerCmd = &cobra.Command{
	Use:   "power [flags] alphabet",
	Short: "print every word of a given length over an alphabet.",
	Long: `Print every word of a given length whose characters are drawn from a
	given alphabet, where the first character varies fastest.  The number of
	words is checked against a limit before any are generated.  Output is
	packed into columns which fit the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		n := GetInt(cmd, "n")
		limit := GetInt64(cmd, "limit")
		//
		if n < 0 || limit < 0 {
			fmt.Println("word length and limit must be non-negative")
			os.Exit(2)
		}
		//
		words, err := powerWords(args[0], uint(n), uint64(limit))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		for _, line := range layoutColumns(words, terminalWidth()) {
			fmt.Println(line)
		}
	},
}

// Determine every word of length n over the characters of a given alphabet,
// failing when there would be more than limit of them.
func powerWords(alphabet string, n uint, limit uint64) ([]string, error) {
	var (
		chars = []rune(alphabet)
		count uint64
	)
	//
	if err := util.CatchUnrecoverable(func() {
		count = math.PowUint64(uint64(len(chars)), uint64(n))
	}); err != nil {
		return nil, fmt.Errorf("too many words of length %d over %q (%s)", n, alphabet, err.Message)
	} else if count > limit {
		return nil, fmt.Errorf("%d words of length %d over %q exceeds limit of %d", count, n, alphabet, limit)
	}
	//
	log.Debugf("enumerating %d words of length %d", count, n)
	//
	words := view.FromEnumerator(view.EnumeratePower(n, chars))
	//
	return algorithm.ToSlice(adaptor.Map(words, func(w []rune) string { return string(w) })), nil
}

func init() {
	rootCmd.AddCommand(powerCmd)
	powerCmd.Flags().Int("n", 2, "length of each word")
	powerCmd.Flags().Int64("limit", 10000, "maximum number of words to print")
}
