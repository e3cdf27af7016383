// Bench is a benchmarking tool for measuring chainhash insert, lookup and
// remove throughput, growth behaviour and memory usage.
//
// Usage:
//
//	go run ./cmd/bench -keys 1000000 -kind string -workers 4
//	go run ./cmd/bench -keyfile words.txt -kind string
//
// Flags:
//
//	-keys      Number of random keys to generate (default: 1,000,000)
//	-keysize   Bytes per generated key (default: 16)
//	-kind      Key type: string, bytes, int or float (default: string)
//	-keyfile   Newline-separated key file, memory-mapped; overrides -keys
//	-workers   Goroutines for key generation (default: 1)
package main

import (
	"context"
	"flag"
	"fmt"
	mrand "math/rand/v2"
	"os"
	"runtime"
	"runtime/metrics"
	"runtime/pprof"
	"sync/atomic"
	"time"

	"github.com/spaolacci/murmur3"
)

func main() {
	keysFlag := flag.Int("keys", 1_000_000, "number of random keys")
	keySizeFlag := flag.Int("keysize", 16, "bytes per generated key")
	kindFlag := flag.String("kind", "string", "key type: string, bytes, int or float")
	keyFileFlag := flag.String("keyfile", "", "newline-separated key file (overrides -keys)")
	workersFlag := flag.Int("workers", 1, "goroutines for key generation")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file (table phase only)")
	memprofile := flag.String("memprofile", "", "write memory profile to file (table phase only)")
	flag.Parse()

	kind, err := parseKeyKind(*kindFlag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	var raw [][]byte
	source := "random"
	if *keyFileFlag != "" {
		fmt.Println("Mapping key file...")
		kf, err := openKeyFile(*keyFileFlag)
		if err != nil {
			fmt.Printf("Key file failed: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = kf.Close() }()
		raw = kf.keys
		source = "file"
	} else {
		fmt.Println("Generating keys...")
		raw, err = generateKeys(context.Background(), *keysFlag, *keySizeFlag, *workersFlag)
		if err != nil {
			fmt.Printf("Key generation failed: %v\n", err)
			os.Exit(1)
		}
	}
	numKeys := len(raw)

	// Raw hash cost for comparison with the table's per-key overhead.
	fmt.Println("Hashing keys...")
	hashStart := time.Now()
	seed := uint32(0x1234)
	for _, k := range raw {
		murmur3.Sum128WithSeed(k, seed)
	}
	hashDuration := time.Since(hashStart)

	queryOrder := mrand.Perm(numKeys)

	runtime.GC()
	time.Sleep(50 * time.Millisecond)
	var baseline runtime.MemStats
	runtime.ReadMemStats(&baseline)
	baselineRSS := getMaxRSS()

	// 10ms sampling for peak memory (both heap and RSS).
	// runtime/metrics avoids the stop-the-world pause of ReadMemStats.
	var peakAlloc atomic.Uint64
	var peakRSS atomic.Uint64
	peakAlloc.Store(baseline.Alloc)
	peakRSS.Store(baselineRSS)
	done := make(chan struct{})
	go func() {
		samples := []metrics.Sample{
			{Name: "/memory/classes/heap/objects:bytes"},
		}
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				metrics.Read(samples)
				heapBytes := samples[0].Value.Uint64()
				for {
					old := peakAlloc.Load()
					if heapBytes <= old || peakAlloc.CompareAndSwap(old, heapBytes) {
						break
					}
				}
				rss := getMaxRSS()
				for {
					old := peakRSS.Load()
					if rss <= old || peakRSS.CompareAndSwap(old, rss) {
						break
					}
				}
			}
		}
	}()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Printf("could not create CPU profile: %v\n", err)
			return
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start CPU profile: %v\n", err)
			return
		}
	}

	fmt.Printf("Running table (%s keys)...\n", kind)
	var res *runResult
	switch kind {
	case kindString:
		res, err = runTable(toStrings(raw), queryOrder)
	case kindBytes:
		res, err = runTable(toBytes(raw), queryOrder)
	case kindInt:
		res, err = runTable(toInts(raw), queryOrder)
	case kindFloat:
		res, err = runTable(toFloats(raw), queryOrder)
	}

	if *cpuprofile != "" {
		pprof.StopCPUProfile()
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			fmt.Printf("could not create memory profile: %v\n", err)
		} else {
			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				fmt.Printf("could not write memory profile: %v\n", err)
			}
			_ = f.Close()
		}
	}

	close(done)

	var final runtime.MemStats
	runtime.ReadMemStats(&final)
	if final.Alloc > peakAlloc.Load() {
		peakAlloc.Store(final.Alloc)
	}
	if finalRSS := getMaxRSS(); finalRSS > peakRSS.Load() {
		peakRSS.Store(finalRSS)
	}
	peakHeapMem := peakAlloc.Load() - baseline.Alloc
	peakRSSMem := peakRSS.Load() - baselineRSS

	if err != nil {
		fmt.Printf("Run failed: %v\n", err)
		os.Exit(1)
	}

	mops := func(n int, d time.Duration) float64 {
		return float64(n) / d.Seconds() / 1_000_000
	}

	fmt.Printf("\n")
	fmt.Printf("╔═════════════════════╦════════════════╦══════════════════╗\n")
	fmt.Printf("║ Kind: %-14s║ Keys: %-8s ║                  ║\n", kind, source)
	fmt.Printf("╠═════════════════════╬════════════════╬══════════════════╣\n")
	fmt.Printf("║ Metric              ║ Value          ║ Notes            ║\n")
	fmt.Printf("╠═════════════════════╬════════════════╬══════════════════╣\n")
	fmt.Printf("║ Keys added          ║ %12d   ║ -                ║\n", numKeys)
	fmt.Printf("║ Distinct keys       ║ %12d   ║ -                ║\n", res.distinct)
	fmt.Printf("║ Buckets             ║ %12d   ║ -                ║\n", res.buckets)
	fmt.Printf("║ Load factor         ║ %12.3f   ║ (grows at 0.7)   ║\n", res.loadFactor)
	fmt.Printf("║ Longest chain       ║ %12d   ║ -                ║\n", res.longestChain)
	fmt.Printf("║ Avg chain (used)    ║ %12.3f   ║ -                ║\n", res.avgChain)
	fmt.Printf("║ Insert throughput   ║ %6.2f M/sec   ║ %6.2f sec      ║\n", mops(numKeys, res.insert), res.insert.Seconds())
	fmt.Printf("║ Lookup throughput   ║ %6.2f M/sec   ║ %6.2f sec      ║\n", mops(numKeys, res.lookup), res.lookup.Seconds())
	fmt.Printf("║ Remove throughput   ║ %6.2f M/sec   ║ %6.2f sec      ║\n", mops(numKeys, res.remove), res.remove.Seconds())
	fmt.Printf("║ Murmur3 hash only   ║ %6.2f M/sec   ║ %6.2f sec      ║\n", mops(numKeys, hashDuration), hashDuration.Seconds())
	fmt.Printf("║ Peak heap memory    ║ %6.1f MB      ║ -                ║\n", float64(peakHeapMem)/1_000_000)
	fmt.Printf("║ Peak RSS memory     ║ %6.1f MB      ║ -                ║\n", float64(peakRSSMem)/1_000_000)
	fmt.Printf("╚═════════════════════╩════════════════╩══════════════════╝\n")
}
