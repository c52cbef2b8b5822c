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

// Package info carries the display name and free-form info map a component
// publishes through its monitor.Monitor (see monitor/).
package info

import "fmt"

// FuncName resolves the current display name for a monitor.
type FuncName func() (string, error)

// FuncInfo resolves the current free-form info map for a monitor.
type FuncInfo func() (map[string]interface{}, error)

type Info interface {
	RegisterName(f FuncName)
	RegisterInfo(f FuncInfo)

	Name() (string, error)
	Data() (map[string]interface{}, error)
}

type info struct {
	defaultName string
	fName       FuncName
	fInfo       FuncInfo
}

// New returns an Info seeded with a default display name, used until
// RegisterName supplies a dynamic resolver.
func New(defaultName string) (Info, error) {
	if defaultName == "" {
		return nil, fmt.Errorf("monitor info: empty default name")
	}
	return &info{defaultName: defaultName}, nil
}

func (i *info) RegisterName(f FuncName) {
	i.fName = f
}

func (i *info) RegisterInfo(f FuncInfo) {
	i.fInfo = f
}

func (i *info) Name() (string, error) {
	if i.fName != nil {
		return i.fName()
	}
	return i.defaultName, nil
}

func (i *info) Data() (map[string]interface{}, error) {
	if i.fInfo != nil {
		return i.fInfo()
	}
	return map[string]interface{}{}, nil
}
