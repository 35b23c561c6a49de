package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"skill-path/internal/domain/quality"
	"skill-path/internal/domain/rules"
	"skill-path/internal/repository"
)

func main() {
	rulesDir := flag.String("rules-dir", "data/processed", "directory holding the association rule CSV files")
	topN := flag.Int("top", 0, "also print the top N rules per store")
	metric := flag.String("metric", "confidence", "metric for -top ordering: confidence, lift or support")
	gateOnly := flag.Bool("gate", false, "only print production readiness and exit non-zero when a store fails")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env: %v", err)
	}

	repo := repository.NewCSVRuleRepository(log.Default())
	ensemble, err := repo.LoadEnsemble(*rulesDir)
	if err != nil {
		log.Fatalf("failed to load rule stores: %v", err)
	}

	stores := ensemble.Stores()
	sort.Slice(stores, func(i, j int) bool { return stores[i].Name < stores[j].Name })

	failed := false
	for _, store := range stores {
		ready, warnings := quality.ValidateForProduction(store)
		if !ready {
			failed = true
		}

		if *gateOnly {
			printGate(store.Name, ready, warnings)
			continue
		}

		printReport(quality.Validate(store))
		printGate(store.Name, ready, warnings)
		if *topN > 0 {
			printTopRules(store, *topN, *metric)
		}
		fmt.Println()
	}

	if *gateOnly && failed {
		os.Exit(1)
	}
}

func printReport(r quality.Report) {
	fmt.Printf("store %s: status=%s rules=%d strong=%d\n", r.Store, r.Status, r.TotalRules, r.StrongRules)
	if r.Status != quality.StatusValid {
		return
	}
	fmt.Printf("  confidence min=%.3f mean=%.3f median=%.3f max=%.3f std=%.3f\n",
		r.Confidence.Min, r.Confidence.Mean, r.Confidence.Median, r.Confidence.Max, r.Confidence.Std)
	fmt.Printf("  support    min=%.4f mean=%.4f median=%.4f max=%.4f\n",
		r.Support.Min, r.Support.Mean, r.Support.Median, r.Support.Max)
	fmt.Printf("  lift       min=%.3f mean=%.3f median=%.3f max=%.3f\n",
		r.Lift.Min, r.Lift.Mean, r.Lift.Median, r.Lift.Max)
	fmt.Printf("  bands      high=%d medium=%d low=%d\n",
		r.Distribution.High, r.Distribution.Medium, r.Distribution.Low)
	fmt.Printf("  coverage   antecedents=%d consequents=%d unique=%d\n",
		r.Coverage.UniqueAntecedents, r.Coverage.UniqueConsequents, r.Coverage.TotalUniqueItems)
}

func printGate(store string, ready bool, warnings []string) {
	if ready {
		fmt.Printf("store %s: production ready\n", store)
		return
	}
	fmt.Printf("store %s: NOT production ready (%s)\n", store, strings.Join(warnings, "; "))
}

func printTopRules(store *rules.Store, n int, metric string) {
	top := quality.TopRules(store, n, metric)
	for i, r := range top {
		fmt.Printf("  #%d %v => %v conf=%.3f lift=%.3f support=%.4f\n",
			i+1, r.Antecedents.Sorted(), r.Consequents.Sorted(), r.Confidence, r.Lift, r.Support)
	}
}
