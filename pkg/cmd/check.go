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
	"io"
	"os"

	"github.com/consensys/go-algebra/pkg/check"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] [structure...]",
	Short: "Check the axioms of one or more algebraic structures.",
	Long: `Check the axioms of one or more algebraic structures against randomly
	generated samples.  When no structure is given, all known structures are
	checked.  A passing check does not prove a law holds, only that no sample
	disproved it.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg checkConfig
		//
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		cfg.Samples = GetUint(cmd, "samples")
		cfg.Seed = GetUint64(cmd, "seed")
		cfg.Epsilon = GetFloat(cmd, "epsilon")
		cfg.ansiEscapes = GetFlag(cmd, "ansi-escapes") && term.IsTerminal(int(os.Stdout.Fd()))
		cfg.list = GetFlag(cmd, "list")
		//
		if cfg.list {
			listStructures(os.Stdout)
			return
		}
		// Resolve structures
		structures, err := selectStructures(args)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// Go!
		if !checkStructures(os.Stdout, structures, cfg) {
			os.Exit(1)
		}
	},
}

// checkConfig encapsulates the parameters used when checking structures.
type checkConfig struct {
	check.Config
	// Specifies whether or not to use ANSI escapes to colour results.
	ansiEscapes bool
	// List known structures instead of checking them.
	list bool
}

func selectStructures(names []string) ([]check.Structure, error) {
	if len(names) == 0 {
		return check.Structures(), nil
	}
	//
	structures := make([]check.Structure, len(names))
	//
	for i, name := range names {
		s, err := check.Lookup(name)
		if err != nil {
			return nil, err
		}

		structures[i] = s
	}
	//
	return structures, nil
}

func listStructures(out io.Writer) {
	for _, s := range check.Structures() {
		fmt.Fprintf(out, "%-16s %s\n", s.Name, s.Description)
	}
}

// checkStructures runs and reports on each structure in turn, returning false
// if any law was disproved.
func checkStructures(out io.Writer, structures []check.Structure, cfg checkConfig) bool {
	ok := true
	//
	for _, s := range structures {
		log.Debugf("checking %s with seed %d", s.Name, cfg.Seed)
		//
		report := s.Run(cfg.Config)
		printReport(out, report, cfg.ansiEscapes)
		//
		ok = ok && !report.Failed()
	}
	//
	return ok
}

func printReport(out io.Writer, report check.Report, ansiEscapes bool) {
	for _, res := range report.Results {
		var status string
		//
		if res.Failed == 0 {
			status = colour("PASS", ansiGreen, ansiEscapes)
		} else {
			status = colour("FAIL", ansiRed, ansiEscapes)
		}
		//
		fmt.Fprintf(out, "%s %s: %s (%d/%d)", status, report.Structure, res.Law, res.Passed,
			res.Passed+res.Failed)
		//
		if res.Failed > 0 {
			fmt.Fprintf(out, " counterexample %s", res.Counterexample)
		}
		//
		fmt.Fprintln(out)
	}
}

const (
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiReset = "\033[0m"
)

func colour(text string, code string, ansiEscapes bool) string {
	if !ansiEscapes {
		return text
	}
	//
	return code + text + ansiReset
}

func init() {
	checkCmd.Flags().Uint("samples", check.DefaultConfig().Samples, "number of random samples per law")
	checkCmd.Flags().Uint64("seed", check.DefaultConfig().Seed, "seed for random sample generation")
	checkCmd.Flags().Float64("epsilon", check.DefaultConfig().Epsilon, "relative tolerance when comparing reals")
	checkCmd.Flags().Bool("ansi-escapes", true, "specify whether to allow ANSI escapes or not (e.g. for colour reports)")
	checkCmd.Flags().Bool("list", false, "list known structures rather than checking them")
	rootCmd.AddCommand(checkCmd)
}
