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
	"fmt"
	"runtime"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

// scriptReference is the markdown list of script operations.
func scriptReference(registry *OperationRegistry) string {
	var sb strings.Builder
	for _, line := range registry.Usage() {
		name, desc, _ := strings.Cut(line, " ")
		fmt.Fprintf(&sb, "* **%s** %s\n", name, desc)
	}
	return sb.String()
}

func getHelpMarkdown(registry *OperationRegistry) string {
	return fmt.Sprintf(`
 **avlcore %s**

A self-balancing AVL tree of integer keys with a scriptable playground.
Every insert and delete keeps the tree within the AVL height bound.

Built with Go %s

# 1. Commands
* **demo** run the reference scenario and print each step
* **run SCRIPT** execute a script file, one operation per line ("-" reads stdin)
* **repl** interactive playground
* **stress** randomized insert/delete run that validates the tree as it goes
* **render** write the tree as Graphviz DOT, or an image when Graphviz is installed
* **settings** show (and create) ~/.avlcore.yaml

# 2. Script operations
%s
Lines starting with # are comments. Duplicate inserts are reported and skipped.

# Please be aware
* Image rendering requires the Graphviz 'dot' command
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
`, version, runtime.Version(), scriptReference(registry))
}

func getHelpMessage() string {
	result := markdown.Render(getHelpMarkdown(NewOperationRegistry()), 80, 3)
	return string(result)
}
