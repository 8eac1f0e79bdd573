// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunDemo(t *testing.T) {
	s := NewSession(DefaultConfig())
	var out bytes.Buffer

	if err := runDemo(s, &out); err != nil {
		t.Fatalf("runDemo returned %v", err)
	}

	for _, want := range []string{
		"In-order after insertions: [-1, 0, 1, 2, 5, 6, 9, 10, 11]",
		"In-order after deletions: [-1, 0, 1, 2, 5, 6, 9]",
		"Keys found: [1, 2, 5, 6, 9]",
		"Key 6 is at level 3.",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("demo output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunDemoRejectsReusedSession(t *testing.T) {
	s := NewSession(DefaultConfig())
	if err := runDemo(s, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	// 9 is still in the tree, so a second run must stop on the duplicate
	if err := runDemo(s, &bytes.Buffer{}); err == nil || !strings.Contains(err.Error(), "insert 9") {
		t.Errorf("second runDemo = %v; want duplicate error for 9", err)
	}
}
