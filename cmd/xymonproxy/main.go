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

// Command xymonproxy is the standalone fan-in proxy of spec.md §4.11: it
// merges status reports from many downstream senders into combo batches
// and forwards everything else to the configured upstream daemon list.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	spfcbr "github.com/spf13/cobra"

	"github.com/nabbar/xymond/backfeed"
	libcbr "github.com/nabbar/xymond/cobra"
	"github.com/nabbar/xymond/console"
	liblog "github.com/nabbar/xymond/logger"
	libptc "github.com/nabbar/xymond/network/protocol"
	"github.com/nabbar/xymond/proxy"
	sckcfg "github.com/nabbar/xymond/socket/config"
	libver "github.com/nabbar/xymond/version"
)

var (
	flagBind            string
	flagUpstream        []string
	flagCombineWindow   time.Duration
	flagCombineMax      int
	flagConnectAttempts int
	flagConnectBackoff  time.Duration
	flagSendRetries     int
	flagBackfeedCap     int
)

func main() {
	vers := libver.NewVersion(libver.License_MIT, "xymonproxy", "fan-in proxy for downstream monitoring senders",
		"2026-07-31", "dev", "0.1.0", "xymond authors", "XYMONPROXY", nil, 0)

	app := libcbr.New()
	app.SetVersion(vers)
	app.Init()

	cmd := app.Cobra()
	cmd.RunE = runProxy

	app.AddFlagString(true, &flagBind, "bind", "b", ":1984", "address the proxy's fan-in listener binds to")
	app.AddFlagStringArray(true, &flagUpstream, "upstream", "u", nil, "upstream daemon address (repeatable; tried in order)")
	app.AddFlagDuration(true, &flagCombineWindow, "combine-window", "", 250*time.Millisecond, "batching window for combining status reports")
	app.AddFlagInt(true, &flagCombineMax, "combine-max", "", 0, "byte-size ceiling that early-flushes a combine batch (0 uses the package default)")
	app.AddFlagInt(true, &flagConnectAttempts, "connect-attempts", "", 0, "bounded upstream connect-attempt count (0 uses the package default)")
	app.AddFlagDuration(true, &flagConnectBackoff, "connect-backoff", "", 0, "backoff between upstream connect attempts (0 uses the package default)")
	app.AddFlagInt(true, &flagSendRetries, "send-retries", "", 0, "bounded upstream send-retry count (0 uses the package default)")
	app.AddFlagInt(true, &flagBackfeedCap, "backfeed-capacity", "", 0, "per-channel capacity of the optional back-feed queue (0 disables back-feed)")

	app.AddCommandCompletion()

	if err := app.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runProxy(_ *spfcbr.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	vers := libver.NewVersion(libver.License_MIT, "xymonproxy", "fan-in proxy for downstream monitoring senders",
		"2026-07-31", "dev", "0.1.0", "xymond authors", "XYMONPROXY", nil, 0)

	var bfq backfeed.Queue
	if flagBackfeedCap > 0 {
		bfq = backfeed.New(flagBackfeedCap)
	}

	upstreams := make([]sckcfg.Client, 0, len(flagUpstream))
	for _, addr := range flagUpstream {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		upstreams = append(upstreams, sckcfg.Client{Network: libptc.NetworkTCP, Address: addr})
	}

	p := proxy.New(proxy.Config{
		Listen:          sckcfg.Server{Network: libptc.NetworkTCP, Address: flagBind},
		Upstream:        upstreams,
		CombineWindow:   flagCombineWindow,
		CombineMax:      flagCombineMax,
		ConnectAttempts: flagConnectAttempts,
		ConnectBackoff:  flagConnectBackoff,
		SendRetries:     flagSendRetries,
		Backfeed:        bfq,
		Version:         vers,
	})

	if err := p.Start(ctx); err != nil {
		return fmt.Errorf("starting proxy: %w", err)
	}
	defer func() { _ = p.Stop(ctx) }()

	console.ColorPrint.Println(fmt.Sprintf("xymonproxy listening on %s, %d upstream(s) configured", flagBind, len(upstreams)))
	liblog.InfoLevel.Logf("xymonproxy started, listening on %s, %d upstream(s) configured", flagBind, len(upstreams))

	<-ctx.Done()
	liblog.InfoLevel.Logf("xymonproxy shutting down")
	return nil
}
