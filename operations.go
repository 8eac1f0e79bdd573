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
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/avlcore/avl"
)

// Operation is one verb of the tree script language.
type Operation interface {
	Name() string
	Usage() string
	// Arity returns the accepted argument counts; max < 0 means unbounded.
	Arity() (min, max int)
	Run(s *Session, args []int, out io.Writer) error
}

// Op implements Operation with plain fields.
type Op struct {
	name    string
	usage   string
	minArgs int
	maxArgs int
	run     func(s *Session, args []int, out io.Writer) error
}

func (o *Op) Name() string      { return o.name }
func (o *Op) Usage() string     { return o.usage }
func (o *Op) Arity() (int, int) { return o.minArgs, o.maxArgs }
func (o *Op) Run(s *Session, args []int, out io.Writer) error {
	return o.run(s, args, out)
}

func formatKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = strconv.Itoa(key)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func newInsertOp() Operation {
	return &Op{
		name:    "insert",
		usage:   "insert KEY... add keys; duplicates are reported and skipped",
		minArgs: 1,
		maxArgs: -1,
		run: func(s *Session, args []int, out io.Writer) error {
			var errs []error
			for _, key := range args {
				if err := s.Insert(key); err != nil {
					fmt.Fprintf(out, "insert %d: %v\n", key, err)
					errs = append(errs, err)
					continue
				}
				fmt.Fprintf(out, "inserted %d\n", key)
			}
			return errors.Join(errs...)
		},
	}
}

func newDeleteOp() Operation {
	return &Op{
		name:    "delete",
		usage:   "delete KEY... remove keys; missing keys are ignored",
		minArgs: 1,
		maxArgs: -1,
		run: func(s *Session, args []int, out io.Writer) error {
			for _, key := range args {
				if s.Delete(key) {
					fmt.Fprintf(out, "deleted %d\n", key)
				} else {
					fmt.Fprintf(out, "%d not present, nothing to delete\n", key)
				}
			}
			return nil
		},
	}
}

func newSearchOp() Operation {
	return &Op{
		name:    "search",
		usage:   "search KEY... report whether each key is stored",
		minArgs: 1,
		maxArgs: -1,
		run: func(s *Session, args []int, out io.Writer) error {
			for _, key := range args {
				if s.Search(key) {
					fmt.Fprintf(out, "%d found\n", key)
				} else {
					fmt.Fprintf(out, "%d not found\n", key)
				}
			}
			return nil
		},
	}
}

func newRangeOp() Operation {
	return &Op{
		name:    "range",
		usage:   "range LOW HIGH keys between low and high inclusive",
		minArgs: 2,
		maxArgs: 2,
		run: func(s *Session, args []int, out io.Writer) error {
			fmt.Fprintln(out, formatKeys(s.RangeQuery(args[0], args[1])))
			return nil
		},
	}
}

func newDepthOp() Operation {
	return &Op{
		name:    "depth",
		usage:   "depth KEY level of key, root is 0",
		minArgs: 1,
		maxArgs: 1,
		run: func(s *Session, args []int, out io.Writer) error {
			depth := s.DepthOf(args[0])
			if depth == avl.NotFound {
				fmt.Fprintf(out, "%d not found (depth %d)\n", args[0], depth)
				return nil
			}
			fmt.Fprintf(out, "%d is at depth %d\n", args[0], depth)
			return nil
		},
	}
}

func newTraversalOp(name string, traverse func(s *Session) []int) Operation {
	return &Op{
		name:  name,
		usage: name + " list every key in " + name + " sequence",
		run: func(s *Session, _ []int, out io.Writer) error {
			fmt.Fprintln(out, formatKeys(traverse(s)))
			return nil
		},
	}
}

func newBoundOp(name string, bound func(s *Session) (int, bool)) Operation {
	return &Op{
		name:  name,
		usage: name + " the " + name + "imum key",
		run: func(s *Session, _ []int, out io.Writer) error {
			key, ok := bound(s)
			if !ok {
				fmt.Fprintln(out, "tree is empty")
				return nil
			}
			fmt.Fprintln(out, key)
			return nil
		},
	}
}

func newStatsOp() Operation {
	return &Op{
		name:  "stats",
		usage: "stats size, height and revision of the tree",
		run: func(s *Session, _ []int, out io.Writer) error {
			fmt.Fprintf(out, "size %d, height %d, revision %d\n", s.Len(), s.Height(), s.Revision())
			return nil
		},
	}
}

func newCheckOp() Operation {
	return &Op{
		name:  "check",
		usage: "check verify ordering, balance and cached heights",
		run: func(s *Session, _ []int, out io.Writer) error {
			if err := s.Validate(); err != nil {
				return err
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
}

func newDotOp() Operation {
	return &Op{
		name:  "dot",
		usage: "dot print the tree as Graphviz DOT source",
		run: func(s *Session, _ []int, out io.Writer) error {
			_, err := io.WriteString(out, s.DOT())
			return err
		},
	}
}
