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
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/cybrota/avlcore/avl"
	"github.com/emicklei/dot"
)

// edgeWalker is anything that can report its nodes as pre-order edges.
type edgeWalker interface {
	Walk(fn func(avl.Edge[int]))
}

// buildGraph turns the pre-order edges of tree into a Graphviz digraph
// with one circle per key and one edge from each parent to its child.
func buildGraph(tree edgeWalker) *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	g.ID("AVL")

	nodes := make(map[int]dot.Node)
	tree.Walk(func(e avl.Edge[int]) {
		n := g.Node("n" + strconv.Itoa(e.ID)).
			Label(strconv.Itoa(e.Key)).
			Attr("shape", "circle")
		nodes[e.ID] = n
		// Pre-order visits a parent before any of its children
		if e.HasParent {
			g.Edge(nodes[e.ParentID], n)
		}
	})
	return g
}

func renderDOT(tree edgeWalker) string {
	return buildGraph(tree).String()
}

// renderImage pipes DOT text through the Graphviz binary and writes the
// image to outPath.
func renderImage(ctx context.Context, cfg RenderConfig, source, outPath string) error {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %v", err)
		}
	}

	cmd := exec.CommandContext(ctx, cfg.DotBinary, "-T"+cfg.Format, "-o", outPath)
	cmd.Stdin = strings.NewReader(source)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return fmt.Errorf("%s failed: %w", cfg.DotBinary, err)
		}
		return fmt.Errorf("%s failed: %w: %s", cfg.DotBinary, err, msg)
	}
	return nil
}

// defaultImagePath names the output image after the tree revision.
func defaultImagePath(cfg RenderConfig, revision uint64) string {
	return filepath.Join(cfg.OutputDir, fmt.Sprintf("avl_tree_r%d.%s", revision, cfg.Format))
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %sDOT source%s to clipboard.\n", Green, Reset)
	return nil
}
