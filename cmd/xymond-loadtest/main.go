/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Command xymond-loadtest drives synthetic status traffic against a
// running xymond (or xymonproxy) listener, to exercise the dispatch
// pipeline and the stats surface of spec.md §7 under load.
package main

import (
	"fmt"
	"math/rand"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	spfcbr "github.com/spf13/cobra"

	libcbr "github.com/nabbar/xymond/cobra"
	"github.com/nabbar/xymond/console"
	libver "github.com/nabbar/xymond/version"
)

var (
	flagTarget     string
	flagWorkers    int
	flagPerWorker  int
	flagHostPrefix string
	flagTestNames  []string
)

var colors = []string{"green", "yellow", "red", "clear"}

func main() {
	vers := libver.NewVersion(libver.License_MIT, "xymond-loadtest", "synthetic status-traffic generator",
		"2026-07-31", "dev", "0.1.0", "xymond authors", "XYMONLOADTEST", nil, 0)

	app := libcbr.New()
	app.SetVersion(vers)
	app.Init()

	cmd := app.Cobra()
	cmd.RunE = runLoadtest

	app.AddFlagString(true, &flagTarget, "target", "t", "127.0.0.1:1984", "address of the xymond (or xymonproxy) listener to drive")
	app.AddFlagInt(true, &flagWorkers, "workers", "w", 10, "number of concurrent simulated senders")
	app.AddFlagInt(true, &flagPerWorker, "messages", "n", 100, "status messages sent per worker")
	app.AddFlagString(true, &flagHostPrefix, "host-prefix", "", "loadtest-host", "synthetic hostname prefix, one host per worker")
	app.AddFlagStringArray(true, &flagTestNames, "tests", "", []string{"conn", "cpu", "disk"}, "test names cycled per message")

	app.AddCommandCompletion()

	if err := app.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runLoadtest(_ *spfcbr.Command, _ []string) error {
	total := int64(flagWorkers * flagPerWorker)

	var sent, failed int64

	progress := mpb.New(mpb.WithWidth(64))
	bar := progress.AddBar(total,
		mpb.PrependDecorators(decor.Name("status messages")),
		mpb.AppendDecorators(decor.CountersNoUnit("%d / %d"), decor.Percentage(decor.WCSyncSpace)),
	)

	var wg sync.WaitGroup
	wg.Add(flagWorkers)

	for w := 0; w < flagWorkers; w++ {
		go func(worker int) {
			defer wg.Done()
			host := fmt.Sprintf("%s-%02d", flagHostPrefix, worker)
			runWorker(host, bar, &sent, &failed)
		}(w)
	}

	wg.Wait()
	progress.Wait()

	console.ColorPrint.Println(fmt.Sprintf("sent %d/%d messages, %d failed", atomic.LoadInt64(&sent), total, atomic.LoadInt64(&failed)))
	return nil
}

func runWorker(host string, bar *mpb.Bar, sent, failed *int64) {
	conn, err := net.DialTimeout("tcp", flagTarget, 5*time.Second)
	if err != nil {
		atomic.AddInt64(failed, int64(flagPerWorker))
		bar.IncrBy(flagPerWorker)
		return
	}
	defer conn.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(len(host))))

	for i := 0; i < flagPerWorker; i++ {
		test := flagTestNames[rng.Intn(len(flagTestNames))]
		color := colors[rng.Intn(len(colors))]
		line := fmt.Sprintf("status %s.%s %s loadtest iteration %d\n", host, test, color, i)

		if _, err = conn.Write([]byte(line)); err != nil {
			atomic.AddInt64(failed, 1)
			bar.Increment()
			continue
		}

		atomic.AddInt64(sent, 1)
		bar.Increment()

		// each message is its own connection per spec.md's one-message
		// state machine; re-dial for the next iteration except the last.
		if i+1 < flagPerWorker {
			_ = conn.Close()
			conn, err = net.DialTimeout("tcp", flagTarget, 5*time.Second)
			if err != nil {
				remaining := flagPerWorker - i - 1
				atomic.AddInt64(failed, int64(remaining))
				bar.IncrBy(remaining)
				return
			}
		}
	}
}
