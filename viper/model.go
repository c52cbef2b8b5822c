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

package viper

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type vprModel struct {
	v *viper.Viper
}

func (m *vprModel) Viper() *viper.Viper {
	return m.v
}

func (m *vprModel) BindPFlag(key string, flag *pflag.Flag) error {
	return m.v.BindPFlag(key, flag)
}

func (m *vprModel) IsSet(key string) bool {
	return m.v.IsSet(key)
}

func (m *vprModel) UnmarshalKey(key string, rawVal any) error {
	return m.v.UnmarshalKey(key, rawVal)
}

func (m *vprModel) Get(key string) any            { return m.v.Get(key) }
func (m *vprModel) GetString(key string) string    { return m.v.GetString(key) }
func (m *vprModel) GetBool(key string) bool        { return m.v.GetBool(key) }
func (m *vprModel) GetInt(key string) int          { return m.v.GetInt(key) }
func (m *vprModel) GetStringSlice(key string) []string {
	return m.v.GetStringSlice(key)
}
