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

// Package viper wraps spf13/viper behind a narrow interface so config/ and
// its components depend on a contract instead of the concrete library,
// matching the way the rest of this codebase wraps third-party clients
// (see nats/, nutsdb/).
package viper

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FuncViper retrieves the shared Viper instance. Registered by components
// via ComponentViper/RegisterFuncViper so they can defer reading config
// values until after the application wires its configuration source.
type FuncViper func() Viper

// Viper is the subset of spf13/viper's API this codebase's components rely
// on: flag binding at registration time, and typed reads during Init/Reload.
type Viper interface {
	Viper() *viper.Viper

	BindPFlag(key string, flag *pflag.Flag) error
	IsSet(key string) bool
	UnmarshalKey(key string, rawVal any) error

	Get(key string) any
	GetString(key string) string
	GetBool(key string) bool
	GetInt(key string) int
	GetStringSlice(key string) []string
}

// New wraps an existing *viper.Viper. Pass nil to get a fresh instance.
func New(v *viper.Viper) Viper {
	if v == nil {
		v = viper.New()
	}
	return &vprModel{v: v}
}
