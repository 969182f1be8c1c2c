// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package data

import (
	"fmt"
	"strings"
)

// handle is a pooled-string reference: a single uint32 packing a 24-bit
// byte offset and an 8-bit length into a shared blob, as spec'd for the
// bundled data's on-disk layout. Within this package it's used to
// deduplicate version strings while building the mobile_to_desktop
// android list (spliceAndroid); the decoded tables hold plain Go strings.
type handle uint32

const (
	handleLengthBits = 8
	handleMaxLength  = 1<<handleLengthBits - 1
	handleMaxOffset  = 1<<24 - 1
)

// stringPool accumulates distinct strings into one blob and hands back
// 32-bit handles, deduplicating on insert so repeated version/browser
// strings across the asset files are only stored once.
type stringPool struct {
	blob  strings.Builder
	index map[string]handle
}

func newStringPool() *stringPool {
	return &stringPool{index: make(map[string]handle)}
}

// intern stores s if it isn't already present and returns its handle. It
// panics if s is too long or the blob has grown past the 24-bit offset
// space; the bundled asset's strings are all short version/browser tokens
// so this can't happen with real data.
func (p *stringPool) intern(s string) handle {
	if h, ok := p.index[s]; ok {
		return h
	}

	offset := p.blob.Len()
	if offset > handleMaxOffset {
		panic(fmt.Sprintf("pooled string blob exceeded %d bytes", handleMaxOffset))
	}
	if len(s) > handleMaxLength {
		panic(fmt.Sprintf("pooled string %q exceeds %d bytes", s, handleMaxLength))
	}

	p.blob.WriteString(s)

	h := handle(uint32(offset)<<handleLengthBits | uint32(len(s)))
	p.index[s] = h

	return h
}

// resolve materializes the string a handle refers to. Lookups elsewhere
// in the package work on plain Go strings and don't go through it.
func (p *stringPool) resolve(h handle) string {
	blob := p.blob.String()
	offset := int(h >> handleLengthBits)
	length := int(h & handleMaxLength)

	return blob[offset : offset+length]
}
