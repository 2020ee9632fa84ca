// Command loadgen fires a large, randomized stream of New/Cancel actions
// at an in-process Engine, adapted from the teacher's cmd/loadgen (which
// drove a single-symbol, channel-based OrderBook) onto the synchronous,
// multi-symbol Engine.Dispatch entry point. There are no market orders
// here: every generated order carries a limit price.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"crossengine/internal/config"
	"crossengine/internal/engine"
	"crossengine/internal/matching"
	"crossengine/internal/price"
)

func main() {
	def := config.LoadGenConfig{Symbol: "SIM", TotalOrders: 500_000, Seed: time.Now().UnixNano()}

	totalOrders := flag.Int("orders", def.TotalOrders, "number of orders to submit")
	priceLevels := flag.Int64("price-levels", 200, "unique price levels around the mid, counted in ticks")
	tick := flag.Int64("tick", int64(price.Scale), "tick size, in price.Price units")
	basePrice := flag.Int64("base-price", 100*int64(price.Scale), "mid price used for randomization, in price.Price units")
	symbol := flag.String("symbol", def.Symbol, "symbol to trade")
	cancelEvery := flag.Int("cancel-every", 0, "cancel a random prior oid every N submissions")
	seed := flag.Int64("seed", def.Seed, "seed for deterministic random streams")
	cpuProfile := flag.String("cpuprofile", "", "write cpu profile to file")
	flag.Parse()

	cfg := config.LoadGenConfigFromEnv(config.LoadGenConfig{Symbol: *symbol, TotalOrders: *totalOrders, Seed: *seed})
	rng := rand.New(rand.NewSource(cfg.Seed))

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	e := engine.New()

	var fillCount int64
	start := time.Now()
	for i := 0; i < cfg.TotalOrders; i++ {
		oid := matching.OID(i + 1)
		a := nextRandomAction(rng, oid, cfg.Symbol, *basePrice, *priceLevels, *tick)
		for _, r := range e.Dispatch(a) {
			if r.Kind == engine.ResultFill {
				fillCount++
			}
		}
		if *cancelEvery > 0 && i > 0 && i%*cancelEvery == 0 {
			target := matching.OID(rng.Intn(i) + 1)
			e.Dispatch(engine.Action{Kind: engine.ActionCancel, OID: target})
		}
	}
	elapsed := time.Since(start)

	ordersPerSec := float64(cfg.TotalOrders) / elapsed.Seconds()
	fillsPerSec := float64(fillCount) / elapsed.Seconds()

	fmt.Printf("submitted %d orders in %s (%.0f orders/s)\n", cfg.TotalOrders, elapsed.Truncate(time.Millisecond), ordersPerSec)
	fmt.Printf("produced %d fill records (%.0f fills/s)\n", fillCount, fillsPerSec)
	fmt.Printf("config: symbol=%s price-levels=%d tick=%d\n", cfg.Symbol, *priceLevels, *tick)
}

func nextRandomAction(rng *rand.Rand, oid matching.OID, symbol string, mid, width, tick int64) engine.Action {
	side := matching.Bid
	if rng.Intn(2) == 1 {
		side = matching.Ask
	}

	var px int64
	if side == matching.Bid {
		px = mid + rng.Int63n(width)*tick
	} else {
		offset := rng.Int63n(width) * tick
		if mid > offset {
			px = mid - offset
		} else {
			px = tick
		}
	}

	qty := uint16(rng.Int63n(5) + 1)

	return engine.Action{
		Kind:   engine.ActionNew,
		OID:    oid,
		Symbol: symbol,
		Side:   side,
		Qty:    qty,
		Price:  price.Price(px),
	}
}
