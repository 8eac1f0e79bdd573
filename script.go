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
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/cybrota/avlcore/avl"
	"github.com/mattn/go-shellwords"
)

// OperationRegistry maps script verbs to operations
type OperationRegistry struct {
	operations map[string]Operation
}

// NewOperationRegistry creates a registry with every built-in operation
func NewOperationRegistry() *OperationRegistry {
	registry := &OperationRegistry{
		operations: make(map[string]Operation),
	}

	registry.Register(newInsertOp())
	registry.Register(newDeleteOp())
	registry.Register(newSearchOp())
	registry.Register(newRangeOp())
	registry.Register(newDepthOp())
	registry.Register(newTraversalOp("inorder", (*Session).InOrder))
	registry.Register(newTraversalOp("preorder", (*Session).PreOrder))
	registry.Register(newTraversalOp("postorder", (*Session).PostOrder))
	registry.Register(newBoundOp("min", (*Session).Min))
	registry.Register(newBoundOp("max", (*Session).Max))
	registry.Register(newStatsOp())
	registry.Register(newCheckOp())
	registry.Register(newDotOp())

	return registry
}

// Register adds or replaces an operation
func (r *OperationRegistry) Register(op Operation) {
	r.operations[op.Name()] = op
}

// Usage lists every operation sorted by name
func (r *OperationRegistry) Usage() []string {
	lines := make([]string, 0, len(r.operations))
	for _, op := range r.operations {
		lines = append(lines, op.Usage())
	}
	sort.Strings(lines)
	return lines
}

// splitCommand splits a script line into words.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	return args, nil
}

// Execute runs a single script line against the session. Blank lines and
// lines starting with # do nothing.
func (r *OperationRegistry) Execute(s *Session, line string, out io.Writer) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	words, err := splitCommand(line)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}

	name := strings.ToLower(words[0])
	op, ok := r.operations[name]
	if !ok {
		return fmt.Errorf("unknown operation %q", words[0])
	}

	minArgs, maxArgs := op.Arity()
	if n := len(words) - 1; n < minArgs || (maxArgs >= 0 && n > maxArgs) {
		return fmt.Errorf("wrong number of arguments for %s (usage: %s)", name, op.Usage())
	}

	args := make([]int, 0, len(words)-1)
	for _, word := range words[1:] {
		key, err := strconv.Atoi(word)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer key", name, word)
		}
		args = append(args, key)
	}

	return op.Run(s, args, out)
}

// RunScript executes a script line by line. Duplicate inserts are logged and
// skipped; any other failure stops the script and reports its line.
func (r *OperationRegistry) RunScript(s *Session, script io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(script)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		err := r.Execute(s, scanner.Text(), out)
		if err == nil {
			continue
		}
		if isOnlyDuplicates(err) {
			log.Printf("%sline %d: %v%s", Warning, lineNo, err, Reset)
			continue
		}
		return fmt.Errorf("line %d: %w", lineNo, err)
	}
	return scanner.Err()
}

// isOnlyDuplicates reports whether every error joined in err is a
// duplicate-key rejection.
func isOnlyDuplicates(err error) bool {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !isOnlyDuplicates(e) {
				return false
			}
		}
		return true
	}
	return errors.Is(err, avl.ErrDuplicateKey)
}
