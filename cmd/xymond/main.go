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

// Command xymond is the monitoring daemon of spec.md §4: it accepts
// client reports over its listener, runs them through the registry's
// ingest/update pipeline, fans status changes out to the alert manager
// and checkpoint writer, and serves the read-only board over HTTP.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	spfcbr "github.com/spf13/cobra"

	"github.com/nabbar/xymond/alertmgr"
	"github.com/nabbar/xymond/alertmgr/sendalert"
	"github.com/nabbar/xymond/boardhttp"
	"github.com/nabbar/xymond/checkpoint"
	"github.com/nabbar/xymond/checkpoint/offload"
	libcbr "github.com/nabbar/xymond/cobra"
	"github.com/nabbar/xymond/console"
	libcrp "github.com/nabbar/xymond/crypt"
	"github.com/nabbar/xymond/fanout"
	libftp "github.com/nabbar/xymond/ftpclient"
	"github.com/nabbar/xymond/hoststatus"
	libldap "github.com/nabbar/xymond/ldap"
	"github.com/nabbar/xymond/listener"
	liblog "github.com/nabbar/xymond/logger"
	smtpcf "github.com/nabbar/xymond/mail/smtp/config"
	"github.com/nabbar/xymond/mailPooler"
	"github.com/nabbar/xymond/network/class"
	"github.com/nabbar/xymond/network/cnmatch"
	libptc "github.com/nabbar/xymond/network/protocol"
	libndb "github.com/nabbar/xymond/nutsdb"
	libprom "github.com/nabbar/xymond/prometheus"
	"github.com/nabbar/xymond/registry"
	"github.com/nabbar/xymond/router"
	"github.com/nabbar/xymond/runner"
	sckcfg "github.com/nabbar/xymond/socket/config"
	libver "github.com/nabbar/xymond/version"
)

var (
	flagBind        string
	flagDataDir     string
	flagStatsPeriod time.Duration
	flagCheckPeriod time.Duration
	flagMetricsBind string
	flagBoardBind   string
	flagGhostPolicy string

	flagTLSEnable  bool
	flagTLSCert    string
	flagTLSKey     string
	flagTLSCliCA   string
	flagTLSReqCert bool

	flagAllowStatus []string
	flagAllowMaint  []string
	flagAllowAdmin  []string
	flagAllowWWW    []string

	flagCNStatic []string
	flagLDAPAddr string
	flagLDAPBase string
	flagLDAPUser string
	flagLDAPPass string
	flagLDAPGroups []string

	flagFTPHost      string
	flagFTPUser      string
	flagFTPPass      string
	flagFTPPath      string
	flagFTPPeriod    time.Duration
	flagFTPEncryptHex string

	flagSMTPDSN      string
	flagSMTPFrom     string
	flagSMTPTo       []string
	flagSMTPPoolMax  int
	flagSMTPPoolWait time.Duration
)

func main() {
	vers := libver.NewVersion(libver.License_MIT, "xymond", "distributed host/service monitoring daemon",
		"2026-07-31", "dev", "0.1.0", "xymond authors", "XYMOND", nil, 0)

	app := libcbr.New()
	app.SetVersion(vers)
	app.Init()

	cmd := app.Cobra()
	cmd.RunE = runDaemon

	app.AddFlagString(true, &flagBind, "bind", "b", ":1984", "address the client listener binds to")
	app.AddFlagString(true, &flagDataDir, "data-dir", "d", "./xymond-data", "directory for the embedded checkpoint store")
	app.AddFlagDuration(true, &flagStatsPeriod, "stats-interval", "", 60*time.Second, "interval between synthetic operator-stats messages")
	app.AddFlagDuration(true, &flagCheckPeriod, "checkpoint-interval", "", 5*time.Minute, "interval between full checkpoint saves")
	app.AddFlagString(true, &flagMetricsBind, "metrics-bind", "", ":9100", "address the Prometheus /metrics endpoint binds to")
	app.AddFlagString(true, &flagBoardBind, "board-bind", "", ":1985", "address the read-only board HTTP endpoint binds to")
	app.AddFlagString(true, &flagGhostPolicy, "ghost-policy", "", "log", "unknown-host policy: ignore, log, match, allow")

	app.AddFlagBool(true, &flagTLSEnable, "tls-enable", "", false, "enable STARTTLS on the client listener")
	app.AddFlagString(true, &flagTLSCert, "tls-cert", "", "", "server certificate file")
	app.AddFlagString(true, &flagTLSKey, "tls-key", "", "", "server key file")
	app.AddFlagString(true, &flagTLSCliCA, "tls-client-ca", "", "", "CA file trusted for verifying client certificates")
	app.AddFlagBool(true, &flagTLSReqCert, "tls-require-client-cert", "", false, "require and verify a client certificate on STARTTLS")

	app.AddFlagStringArray(true, &flagAllowStatus, "allow-status", "", nil, "CIDR entries authorized for the status class")
	app.AddFlagStringArray(true, &flagAllowMaint, "allow-maint", "", nil, "CIDR entries authorized for the maint class")
	app.AddFlagStringArray(true, &flagAllowAdmin, "allow-admin", "", nil, "CIDR entries authorized for the admin class")
	app.AddFlagStringArray(true, &flagAllowWWW, "allow-www", "", nil, "CIDR entries authorized for the www class")

	app.AddFlagStringArray(true, &flagCNStatic, "cn-allow", "", nil, "fixed list of authorized client-certificate CNs (mutually exclusive with --ldap-addr)")
	app.AddFlagString(true, &flagLDAPAddr, "ldap-addr", "", "", "LDAP server address for CN-to-identity lookups")
	app.AddFlagString(true, &flagLDAPBase, "ldap-base", "", "", "LDAP search base DN")
	app.AddFlagString(true, &flagLDAPUser, "ldap-bind-user", "", "", "LDAP bind DN")
	app.AddFlagString(true, &flagLDAPPass, "ldap-bind-pass", "", "", "LDAP bind password")
	app.AddFlagStringArray(true, &flagLDAPGroups, "ldap-groups", "", nil, "LDAP groups a pinned CN must belong to (empty allows any directory match)")

	app.AddFlagString(true, &flagFTPHost, "ftp-host", "", "", "FTP host for checkpoint offload (empty disables offload)")
	app.AddFlagString(true, &flagFTPUser, "ftp-user", "", "", "FTP username")
	app.AddFlagString(true, &flagFTPPass, "ftp-pass", "", "", "FTP password")
	app.AddFlagString(true, &flagFTPPath, "ftp-remote-path", "", "/xymond/checkpoint.json", "remote path for the offloaded checkpoint export")
	app.AddFlagDuration(true, &flagFTPPeriod, "ftp-interval", "", 15*time.Minute, "interval between checkpoint offload uploads")
	app.AddFlagString(true, &flagFTPEncryptHex, "ftp-encrypt-key", "", "", "32-byte hex AES-GCM key encrypting the uploaded checkpoint export (empty uploads in clear)")

	app.AddFlagString(true, &flagSMTPDSN, "smtp-dsn", "", "", "SMTP DSN for alert mail, e.g. user:pass@tcp(smtp.example.com:587)/starttls (empty disables mail alerts)")
	app.AddFlagString(true, &flagSMTPFrom, "smtp-from", "", "xymond@localhost", "envelope From address for alert mail")
	app.AddFlagStringArray(true, &flagSMTPTo, "smtp-to", "", nil, "recipient address for alert mail (repeatable)")
	app.AddFlagInt(true, &flagSMTPPoolMax, "smtp-pool-max", "", 5, "max alert mails sent per --smtp-pool-wait window before throttling")
	app.AddFlagDuration(true, &flagSMTPPoolWait, "smtp-pool-wait", "", time.Minute, "throttling window for the alert mail send pool")

	app.AddCommandCompletion()

	if err := app.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDaemon(_ *spfcbr.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	bus, err := fanout.New(ctx)
	if err != nil {
		return fmt.Errorf("starting fan-out bus: %w", err)
	}
	defer bus.Close()

	daemon := registry.NewDaemon(ctx, parseGhostPolicy(flagGhostPolicy), registry.DefaultGhostRetention)

	db := libndb.New(flagDataDir)
	if err = db.Start(ctx); err != nil {
		return fmt.Errorf("starting checkpoint store: %w", err)
	}
	defer func() { _ = db.Stop(ctx) }()

	store := checkpoint.NewStore(db)

	cnMatch, err := buildCNMatch(ctx)
	if err != nil {
		return fmt.Errorf("configuring CN pinning: %w", err)
	}

	table := router.NewTable(map[string]router.Handler{
		"status": router.NewStatusHandler(router.StatusDeps{
			Daemon: daemon,
			Policy: defaultPolicyProvider,
			Bus:    bus,
		}),
		"ack":        router.NewAckHandler(daemon),
		"ackinfo":    router.NewAckInfoHandler(daemon),
		"enable":     router.NewEnadisHandler(daemon),
		"disable":    router.NewEnadisHandler(daemon),
		"drop":       router.NewDropHandler(daemon),
		"rename":     router.NewRenameHandler(daemon),
		"ping":       router.NewPingHandler(vers()),
		"ghostlist":  router.NewGhostlistHandler(daemon),
		"senderstats": router.NewSenderstatsHandler(daemon),
		"xymondboard":  router.NewBoardHandler(daemon),
		"xymondxboard": router.NewBoardHandler(daemon),
		"xymondlog":    router.NewLogHandler(daemon),
		"xymondxlog":   router.NewLogHandler(daemon),
		"hostinfo":     router.NewHostInfoHandler(daemon),
	})

	allow := class.AllowList{
		class.Status: class.NewList(flagAllowStatus...),
		class.Maint:  class.NewList(flagAllowMaint...),
		class.Admin:  class.NewList(flagAllowAdmin...),
		class.WWW:    class.NewList(flagAllowWWW...),
	}

	lst, err := buildListener(table, allow, cnMatch)
	if err != nil {
		return fmt.Errorf("building listener: %w", err)
	}
	if err = lst.Start(ctx); err != nil {
		return fmt.Errorf("starting listener: %w", err)
	}
	defer func() { _ = lst.Stop(ctx) }()

	checkWriter := checkpoint.NewWriter(store, daemon, flagCheckPeriod)
	if err = checkWriter.Start(ctx); err != nil {
		return fmt.Errorf("starting checkpoint writer: %w", err)
	}
	defer func() { _ = checkWriter.Stop(ctx) }()

	if ftpWriter := buildOffloadWriter(store); ftpWriter != nil {
		if err = ftpWriter.Start(ctx); err != nil {
			return fmt.Errorf("starting checkpoint offload writer: %w", err)
		}
		defer func() { _ = ftpWriter.Stop(ctx) }()
	}

	mgr := alertmgr.NewManager(bus, buildAlertConfig())
	if err = mgr.Start(ctx); err != nil {
		return fmt.Errorf("starting alert manager: %w", err)
	}
	defer func() { _ = mgr.Stop(ctx) }()

	metrics := libprom.New()
	statsWriter := libprom.NewReporter(metrics, bus, flagStatsPeriod)
	if err = statsWriter.Start(ctx); err != nil {
		return fmt.Errorf("starting stats reporter: %w", err)
	}
	defer func() { _ = statsWriter.Stop(ctx) }()

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", metrics.Handler())
	metricsSrv := &http.Server{Addr: flagMetricsBind, Handler: metricsMux}
	go func() { _ = metricsSrv.ListenAndServe() }()
	defer func() { _ = metricsSrv.Shutdown(context.Background()) }()

	boardSrv := &http.Server{Addr: flagBoardBind, Handler: boardhttp.NewMux(daemon)}
	go func() { _ = boardSrv.ListenAndServe() }()
	defer func() { _ = boardSrv.Shutdown(context.Background()) }()

	console.ColorPrint.Println(fmt.Sprintf("xymond listening on %s", flagBind))
	liblog.InfoLevel.Logf("xymond started, listening on %s", flagBind)

	<-ctx.Done()
	liblog.InfoLevel.Logf("xymond shutting down")
	return nil
}

func vers() libver.Version {
	return libver.NewVersion(libver.License_MIT, "xymond", "distributed host/service monitoring daemon",
		"2026-07-31", "dev", "0.1.0", "xymond authors", "XYMOND", nil, 0)
}

func parseGhostPolicy(s string) registry.GhostPolicy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ignore":
		return registry.GhostIgnore
	case "match":
		return registry.GhostMatch
	case "allow":
		return registry.GhostAllow
	default:
		return registry.GhostLog
	}
}

// defaultPolicyProvider is the fallback status policy until a real
// per-host configuration source is wired in: spec.md's default alert
// colors, no flap damping, and no ack/downtime extras.
func defaultPolicyProvider(_, _ string) (hoststatus.Policy, int) {
	return hoststatus.Policy{
		AlertColors: hoststatus.DefaultAlertColors(),
		OKColors:    hoststatus.DefaultOKColors(),
		NoFlap:      true,
	}, 0
}

func buildCNMatch(ctx context.Context) (cnmatch.Matcher, error) {
	if flagLDAPAddr != "" {
		cfg := libldap.NewConfig()
		cfg.Uri = flagLDAPAddr
		cfg.Basedn = flagLDAPBase

		helper, err := libldap.NewLDAP(ctx, cfg, nil)
		if err != nil {
			return nil, err
		}
		helper.SetCredentials(flagLDAPUser, flagLDAPPass)
		return cnmatch.NewDirectoryMatcher(helper, flagLDAPGroups...), nil
	}

	if len(flagCNStatic) > 0 {
		return cnmatch.NewStaticList(flagCNStatic...), nil
	}

	return nil, nil
}

func buildListenerTLS() sckcfg.TLSServer {
	return sckcfg.TLSServer{
		Enable:            flagTLSEnable,
		CertFile:          flagTLSCert,
		KeyFile:           flagTLSKey,
		ClientCAFile:      flagTLSCliCA,
		RequireClientCert: flagTLSReqCert,
	}
}

func buildListener(table router.Table, allow class.AllowList, cnMatch cnmatch.Matcher) (listener.Listener, error) {
	return listener.New(listener.Config{
		Bind: sckcfg.Server{
			Network: libptc.NetworkTCP,
			Address: flagBind,
			TLS:     buildListenerTLS(),
		},
		Table:   table,
		Allow:   allow,
		CNMatch: cnMatch,
	})
}

// buildAlertConfig wires the alert manager's one configured recipient: a
// mail hook sending through a rate-limited SMTP pool, gated on --smtp-dsn
// being set so alerting stays a no-op until mail delivery is configured.
func buildAlertConfig() alertmgr.Config {
	cfg := alertmgr.Config{OKColors: hoststatus.DefaultOKColors()}

	if flagSMTPDSN == "" || len(flagSMTPTo) == 0 {
		return cfg
	}

	smtpCfg, err := smtpcf.New(smtpcf.ConfigModel{DSN: flagSMTPDSN})
	if err != nil {
		return cfg
	}

	pooled := mailPooler.New(&mailPooler.Config{Max: flagSMTPPoolMax, Wait: flagSMTPPoolWait}, nil)
	pooled.UpdConfig(smtpCfg, nil)

	hook := sendalert.NewMailHook(pooled, sendalert.MailConfig{
		From:        flagSMTPFrom,
		To:          flagSMTPTo,
		ProductName: "xymond",
		ProductLink: "",
	})

	cfg.Rules = []alertmgr.RecipientRule{{Hook: hook}}
	return cfg
}

func buildOffloadWriter(store *checkpoint.Store) runner.Runner {
	if flagFTPHost == "" {
		return nil
	}

	cli, err := libftp.New(&libftp.Config{
		Hostname: flagFTPHost,
		Login:    flagFTPUser,
		Password: flagFTPPass,
	})
	if err != nil {
		return nil
	}

	cfg := offload.Config{Client: cli, RemotePath: flagFTPPath}

	if flagFTPEncryptHex != "" {
		if key, err := libcrp.GetHexKey(flagFTPEncryptHex); err == nil {
			cfg.EncryptKey = &key
		}
	}

	return offload.NewWriter(store, cfg, flagFTPPeriod)
}
