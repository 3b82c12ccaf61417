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

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Fallback width used when standard output is not a terminal.
const defaultTextWidth = 80

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected signed integer, or panic if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt64 gets an expected 64bit signed integer, or panic if an error arises.
func GetInt64(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Determine the width of the terminal attached to standard output, falling
// back to a default when there is none.
func terminalWidth() uint {
	fd := int(os.Stdout.Fd())
	//
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return uint(width)
		}
	}
	//
	return defaultTextWidth
}

// Parse a comma separated list of integers, such as "1,2,3".  The empty string
// is parsed as the empty list.
func parseIntList(str string) ([]int, error) {
	var items []int
	//
	if strings.TrimSpace(str) == "" {
		return items, nil
	}
	//
	for _, s := range strings.Split(str, ",") {
		item, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("invalid list item %q", s)
		}
		//
		items = append(items, item)
	}
	//
	return items, nil
}

// Layout a set of strings into columns which fit within a given width, filling
// each row in turn.  At least one column is always used.
func layoutColumns(items []string, width uint) []string {
	var (
		colWidth uint
		lines    []string
		builder  strings.Builder
	)
	//
	for _, item := range items {
		colWidth = max(colWidth, uint(len(item))+2)
	}
	//
	ncols := max(1, width/max(1, colWidth))
	//
	for i, item := range items {
		builder.WriteString(item)
		//
		if uint(i+1)%ncols == 0 || i+1 == len(items) {
			lines = append(lines, builder.String())
			builder.Reset()
		} else {
			builder.WriteString(strings.Repeat(" ", int(colWidth)-len(item)))
		}
	}
	//
	return lines
}
