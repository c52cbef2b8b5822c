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

// Package config carries the connection parameters socket/client and
// socket/server need, independent of the transport (tcp/udp/unix/unixgram).
package config

import (
	libptc "github.com/nabbar/xymond/network/protocol"
)

// TLSClient configures the optional TLS wrapping of a client connection.
type TLSClient struct {
	Enable             bool   `mapstructure:"enable" json:"enable" yaml:"enable" toml:"enable"`
	ServerName         string `mapstructure:"server_name" json:"server_name" yaml:"server_name" toml:"server_name"`
	InsecureSkipVerify bool   `mapstructure:"insecure_skip_verify" json:"insecure_skip_verify" yaml:"insecure_skip_verify" toml:"insecure_skip_verify"`
	CAFile             string `mapstructure:"ca_file" json:"ca_file" yaml:"ca_file" toml:"ca_file"`
	CertFile           string `mapstructure:"cert_file" json:"cert_file" yaml:"cert_file" toml:"cert_file"`
	KeyFile            string `mapstructure:"key_file" json:"key_file" yaml:"key_file" toml:"key_file"`
}

// Client is the address + transport + TLS triple needed to dial a remote
// endpoint over any of the supported network protocols.
type Client struct {
	Network libptc.NetworkProtocol `mapstructure:"network" json:"network" yaml:"network" toml:"network"`
	Address string                 `mapstructure:"address" json:"address" yaml:"address" toml:"address"`
	TLS     TLSClient              `mapstructure:"tls" json:"tls" yaml:"tls" toml:"tls"`
}

// Server is the bind address + transport + TLS triple needed to accept
// connections over any of the supported network protocols.
type Server struct {
	Network libptc.NetworkProtocol `mapstructure:"network" json:"network" yaml:"network" toml:"network"`
	Address string                 `mapstructure:"address" json:"address" yaml:"address" toml:"address"`
	TLS     TLSServer              `mapstructure:"tls" json:"tls" yaml:"tls" toml:"tls"`
}

// TLSServer configures the optional TLS wrapping of an accepted connection.
type TLSServer struct {
	Enable            bool   `mapstructure:"enable" json:"enable" yaml:"enable" toml:"enable"`
	CertFile          string `mapstructure:"cert_file" json:"cert_file" yaml:"cert_file" toml:"cert_file"`
	KeyFile           string `mapstructure:"key_file" json:"key_file" yaml:"key_file" toml:"key_file"`
	ClientCAFile      string `mapstructure:"client_ca_file" json:"client_ca_file" yaml:"client_ca_file" toml:"client_ca_file"`
	RequireClientCert bool   `mapstructure:"require_client_cert" json:"require_client_cert" toml:"require_client_cert"`
}
