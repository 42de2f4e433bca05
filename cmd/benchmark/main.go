package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/limaJavier/lilmiss/pkg/enumeration"
	"github.com/limaJavier/lilmiss/pkg/model"

	"github.com/samber/lo"
)

const resultsFile = "benchmark_results.csv"

type BenchmarkResult struct {
	Workers   int
	ChunkSize int
	Duration  int64 // Milliseconds
	Included  uint64
	Excluded  uint64
}

func main() {
	maxWorkersPtr := flag.Int("max-workers", runtime.NumCPU(), "Largest number of workers to benchmark, where the number of CPUs is the default")
	chunkSizePtr := flag.Int("chunk-size", enumeration.DefaultConfig().ChunkSize, "Configurations per job")
	repetitionsPtr := flag.Int("repetitions", 3, "Runs per worker count; the fastest one is kept")
	outPtr := flag.String("out", resultsFile, "Path to the CSV file where the results will be written")
	flag.Parse()

	if *maxWorkersPtr <= 0 {
		log.Fatalf("max-workers must be greater than 0: %v", *maxWorkersPtr)
	} else if *repetitionsPtr <= 0 {
		log.Fatalf("repetitions must be greater than 0: %v", *repetitionsPtr)
	}

	results := make([]BenchmarkResult, 0)
	for _, workers := range workerCounts(*maxWorkersPtr) {
		fmt.Printf("Benchmarking enumeration with %v workers and chunk size %v\n", workers, *chunkSizePtr)

		config := enumeration.DefaultConfig()
		config.Workers = workers
		config.ChunkSize = *chunkSizePtr

		runs := lo.Times(*repetitionsPtr, func(_ int) BenchmarkResult {
			return measure(config)
		})
		results = append(results, lo.MinBy(runs, func(a, b BenchmarkResult) bool {
			return a.Duration < b.Duration
		}))
	}

	toCsv(results, *outPtr)
}

// Powers of two up to maxWorkers, maxWorkers itself included
func workerCounts(maxWorkers int) []int {
	counts := make([]int, 0)
	for workers := 1; workers < maxWorkers; workers *= 2 {
		counts = append(counts, workers)
	}
	return lo.Uniq(append(counts, maxWorkers))
}

func measure(config enumeration.Config) BenchmarkResult {
	enumerator := enumeration.NewEnumerator(config, model.NewTileValidator(), nil)

	start := time.Now()
	tally, err := enumerator.Enumerate(context.Background())
	duration := time.Since(start)
	if err != nil {
		log.Fatalf("an error occurred during enumeration with %v workers: %v", config.Workers, err)
	} else if tally.Total() != enumeration.Configurations {
		log.Fatalf("enumeration with %v workers covered %v configurations instead of %v", config.Workers, tally.Total(), enumeration.Configurations)
	}

	return BenchmarkResult{
		Workers:   config.Workers,
		ChunkSize: config.ChunkSize,
		Duration:  duration.Milliseconds(),
		Included:  tally.Included,
		Excluded:  tally.Excluded,
	}
}

func toCsv(results []BenchmarkResult, path string) {
	file, err := os.Create(path)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(csvHeader()); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}
	if err := writer.WriteAll(lo.Map(results, func(result BenchmarkResult, _ int) []string { return csvRecord(result) })); err != nil {
		log.Panicf("cannot write CSV record: %v", err)
	}
}

func csvHeader() []string {
	return []string{"Workers", "ChunkSize", "Duration(ms)", "MustInclude", "MustExclude"}
}

func csvRecord(result BenchmarkResult) []string {
	return []string{
		fmt.Sprintf("%d", result.Workers),
		fmt.Sprintf("%d", result.ChunkSize),
		fmt.Sprintf("%d", result.Duration),
		fmt.Sprintf("%d", result.Included),
		fmt.Sprintf("%d", result.Excluded),
	}
}
