/*
	Copyright (C) 2023 flxj(https://github.com/flxj)

	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at

		http://www.apache.org/licenses/LICENSE-2.0

	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Command cbst is the CLI front end: solve a single instance, benchmark
// a directory of instances across all three named algorithms, or start
// the HTTP service.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/flxj/cbst"
	"github.com/flxj/cbst/cbstio"
	"github.com/flxj/cbst/cbstsvc"
)

func main() {
	log := cbst.NewLogger()
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "solve":
		err = runSolve(log, os.Args[2:])
	case "benchmark_cbst":
		err = runBenchmark(log, os.Args[2:], false)
	case "benchmark_cbstu":
		err = runBenchmark(log, os.Args[2:], true)
	case "serve":
		err = runServe(log, os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		log.Error(err.Error())
		if cbst.IsInvalidInput(err) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  cbst solve <path> <berman|punnen|edge_elimination> <budget>")
	fmt.Fprintln(os.Stderr, "  cbst benchmark_cbst <dir>")
	fmt.Fprintln(os.Stderr, "  cbst benchmark_cbstu <dir>")
	fmt.Fprintln(os.Stderr, "  cbst serve <host:port>")
}

func runSolve(log *slog.Logger, args []string) error {
	if len(args) != 3 {
		return cbst.NewInvalidInputError("solve requires <path> <algorithm> <budget>")
	}
	algo, err := cbst.ParseAlgorithm(args[1])
	if err != nil {
		return cbst.NewInvalidInputError("%v", err)
	}
	budget, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return cbst.NewInvalidInputError("budget must be a number: %v", err)
	}

	g, err := cbstio.Load(args[0])
	if err != nil {
		return err
	}

	log.Info("solving", "path", args[0], "algorithm", algo.String(), "budget", budget)
	start := time.Now()
	result, err := cbst.SolveCBST(g, budget, algo)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	log.Info("solved", "elapsed_ms", fmt.Sprintf("%.3f", float64(elapsed.Microseconds())/1000.0))
	if !result.Found {
		fmt.Println("infeasible")
		return nil
	}
	fmt.Printf("bottleneck=%v cost=%v\n", result.OriginalBottleneck(), result.Cost)
	return nil
}

func runBenchmark(log *slog.Logger, args []string, upgrades bool) error {
	if len(args) != 1 {
		return cbst.NewInvalidInputError("benchmark requires <dir>")
	}
	dir := args[0]
	entries, err := os.ReadDir(dir)
	if err != nil {
		return cbst.NewInvalidInputError("reading %s: %v", dir, err)
	}

	algos := []cbst.Algorithm{cbst.AlgorithmBerman, cbst.AlgorithmPunnen, cbst.AlgorithmEdgeElimination}
	var rows []cbstio.BenchmarkRow
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		g, err := cbstio.Load(path)
		if err != nil {
			return err
		}

		budget, mbst, _, err := pickBudget(g, upgrades)
		if err != nil {
			return err
		}
		var costMBST float64
		for _, e := range mbst.Tree {
			costMBST += e.Cost
		}

		row := cbstio.BenchmarkRow{
			Path: path, Nodes: g.N(), Edges: len(g.Edges), Budget: budget,
			BottleneckMBST: mbst.OriginalBottleneck(), CostMBST: costMBST,
			Upgrades: upgrades,
		}

		var results [3]cbst.CBSTResult
		var millis [3]float64
		for i, algo := range algos {
			start := time.Now()
			var r cbst.CBSTResult
			if upgrades {
				r, err = cbst.SolveCBSTU(g, budget, algo)
			} else {
				r, err = cbst.SolveCBST(g, budget, algo)
			}
			if err != nil {
				return err
			}
			millis[i] = float64(time.Since(start).Microseconds()) / 1000.0
			results[i] = r
		}
		row.BermanMillis, row.PunnenMillis, row.EEMillis = millis[0], millis[1], millis[2]

		if !results[0].Found {
			log.Warn("infeasible", "path", path, "budget", budget)
			rows = append(rows, row)
			continue
		}
		for i := 1; i < len(results); i++ {
			if results[i].OriginalBottleneck() != results[0].OriginalBottleneck() || results[i].Cost != results[0].Cost {
				return fmt.Errorf("solver disagreement on %s: %v vs %v", path, results[0], results[i])
			}
		}
		row.Bottleneck = results[0].OriginalBottleneck()
		row.Cost = results[0].Cost
		rows = append(rows, row)
	}

	return cbstio.WriteBenchmarkCSV(os.Stdout, rows)
}

// pickBudget draws the budget uniformly from the range spec.md §6
// names - [cost(MCST), cost(MBST)] for CBST, [100, cost(MBST)] for
// CBST-U - truncated to an integer.
func pickBudget(g *cbst.Graph, upgrades bool) (float64, cbst.SpanningResult, cbst.SpanningResult, error) {
	mbst, err := cbst.SolveMBST(negatedCopy(g))
	if err != nil {
		return 0, cbst.SpanningResult{}, cbst.SpanningResult{}, err
	}
	mcst, err := cbst.MinSumSpanningTree(g, cbst.SumKeyCost)
	if err != nil {
		return 0, cbst.SpanningResult{}, cbst.SpanningResult{}, err
	}

	lo := mcst.Sum
	if upgrades {
		lo = 100.0
	}
	var hi float64
	for _, e := range mbst.Tree {
		hi += e.Cost
	}
	if hi < lo {
		hi = lo
	}
	budget := lo + rand.Float64()*(hi-lo)
	return float64(int64(budget)), mbst, mcst, nil
}

func negatedCopy(g *cbst.Graph) *cbst.Graph {
	edges := make([]*cbst.Edge, len(g.Edges))
	for i, e := range g.Edges {
		ce := *e
		edges[i] = &ce
	}
	out := &cbst.Graph{Nodes: g.Nodes, Edges: edges}
	out.InverseWeights()
	return out
}

func runServe(log *slog.Logger, args []string) error {
	if len(args) != 1 {
		return cbst.NewInvalidInputError("serve requires <host:port>")
	}
	host, portStr, ok := strings.Cut(args[0], ":")
	if !ok {
		return cbst.NewInvalidInputError("address must be host:port, got %q", args[0])
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return cbst.NewInvalidInputError("invalid port %q: %v", portStr, err)
	}

	log.Info("starting service", "host", host, "port", port)
	return cbstsvc.NewService(host, port).Run()
}
