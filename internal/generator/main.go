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
package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// sortSpec describes one per-type sort wrapper over plain slices.
type sortSpec struct {
	// Suffix of the generated function (e.g. Ints for SortInts)
	Name string
	// Element type
	Type string
	// Literal for an unsorted test input
	Input string
	// Literal for the sorted test output
	Output string
}

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-flux")

	specs := struct{ Types []sortSpec }{
		Types: []sortSpec{
			{"Ints", "int", "3, -1, 2, -1", "-1, -1, 2, 3"},
			{"Int64s", "int64", "9, 1, -8, 0", "-8, 0, 1, 9"},
			{"Uint64s", "uint64", "1 << 63, 7, 0, 7", "0, 7, 7, 1 << 63"},
			{"Float64s", "float64", "2.5, -1.5, 0, 1e9", "-1.5, 0, 2.5, 1e9"},
			{"Strings", "string", `"flux", "", "b", "a"`, `"", "a", "b", "flux"`},
		},
	}

	assertNoError(bgen.Generate(specs, "algorithm", "templates",
		bavard.Entry{
			File:      "../../pkg/seq/algorithm/sort_gen.go",
			Templates: []string{"sort.go.tmpl"},
		},
		bavard.Entry{
			File:      "../../pkg/seq/algorithm/sort_gen_test.go",
			Templates: []string{"sort.test.go.tmpl"},
		},
	), "for sort wrappers")
	// run gofmt on generated files
	runCmd("gofmt", "-w", "../../pkg/seq/algorithm/")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
