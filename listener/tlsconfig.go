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

package listener

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	sckcfg "github.com/nabbar/xymond/socket/config"
)

// buildTLSConfig turns a TLSServer declaration into a *tls.Config ready for
// tls.Server, or nil if no certificate is configured (the STARTTLS upgrade
// then answers "ERR No TLS\n" and the connection stays plaintext).
func buildTLSConfig(cfg sckcfg.TLSServer) (*tls.Config, error) {
	if !cfg.Enable || cfg.CertFile == "" || cfg.KeyFile == "" {
		return nil, nil
	}

	crt, e := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
	if e != nil {
		return nil, ErrorTLSConfig.Error(e)
	}

	t := &tls.Config{Certificates: []tls.Certificate{crt}}

	if cfg.ClientCAFile != "" {
		pem, e := os.ReadFile(cfg.ClientCAFile)
		if e != nil {
			return nil, ErrorTLSConfig.Error(e)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, ErrorTLSConfig.Error(nil)
		}
		t.ClientCAs = pool
		if cfg.RequireClientCert {
			t.ClientAuth = tls.RequireAndVerifyClientCert
		} else {
			t.ClientAuth = tls.VerifyClientCertIfGiven
		}
	}

	return t, nil
}

// peerCN extracts the verified leaf certificate's common name, if any, from
// a TLS connection's state — used to resolve the sender's authorization
// class once a client certificate has been presented.
func peerCN(state tls.ConnectionState) string {
	if len(state.PeerCertificates) == 0 {
		return ""
	}
	return state.PeerCertificates[0].Subject.CommonName
}
