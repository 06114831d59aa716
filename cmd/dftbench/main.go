// Command dftbench compares host and device (mock) transform throughput
// across a list of sizes and reports the CPU features of the machine.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	algodft "github.com/cwbudde/algo-dft"
	"github.com/cwbudde/algo-dft/gpu"
	"github.com/cwbudde/algo-dft/internal/cpu"
)

func main() {
	var (
		sizeList = flag.String("sizes", "256,1024,4096,16384", "comma-separated transform sizes")
		iters    = flag.Int("iters", 200, "benchmark iterations")
		warmup   = flag.Int("warmup", 10, "warmup iterations")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	features := cpu.DetectFeatures()
	fmt.Printf("arch=%s sse2=%v avx2=%v avx512=%v neon=%v\n",
		features.Architecture, features.HasSSE2, features.HasAVX2,
		features.HasAVX512, features.HasNEON)
	fmt.Printf("iters=%d warmup=%d\n", *iters, *warmup)

	gpu.RegisterMockBackend()

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("%8s  %10s  %12s\n", "size", "backend", "ns/op")

	for _, n := range sizes {
		src := randomSequence(rnd, n)
		dst := make([]float32, 2*n)

		if ns, err := benchHost(n, src, dst, *iters, *warmup); err != nil {
			fail(err)
		} else {
			fmt.Printf("%8d  %10s  %12.0f\n", n, "host", ns)
		}

		if ns, err := benchDevice(n, src, dst, *iters, *warmup); err != nil {
			fail(err)
		} else {
			fmt.Printf("%8d  %10s  %12.0f\n", n, "mock-gpu", ns)
		}
	}
}

func benchHost(n int, src, dst []float32, iters, warmup int) (float64, error) {
	plan, err := algodft.GetPlan(n)
	if err != nil {
		return 0, err
	}

	for i := 0; i < warmup; i++ {
		if err := plan.Forward(dst, src); err != nil {
			return 0, err
		}
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		if err := plan.Forward(dst, src); err != nil {
			return 0, err
		}
	}

	return float64(time.Since(start).Nanoseconds()) / float64(iters), nil
}

func benchDevice(n int, src, dst []float32, iters, warmup int) (float64, error) {
	plan, err := gpu.NewPlan(n, gpu.PlanOptions{})
	if err != nil {
		return 0, err
	}
	defer plan.Close()

	for i := 0; i < warmup; i++ {
		if err := plan.Forward(gpu.HostOutput(dst), gpu.HostInput(src)); err != nil {
			return 0, err
		}
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		if err := plan.Forward(gpu.HostOutput(dst), gpu.HostInput(src)); err != nil {
			return 0, err
		}
	}

	return float64(time.Since(start).Nanoseconds()) / float64(iters), nil
}

func randomSequence(rnd *rand.Rand, n int) []float32 {
	seq := make([]float32, 2*n)
	for i := range seq {
		seq[i] = rnd.Float32()*2 - 1
	}
	return seq
}

func parseSizes(list string) []int {
	var sizes []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 2 {
			fmt.Printf("skipping invalid size %q\n", part)
			continue
		}
		sizes = append(sizes, n)
	}
	return sizes
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
