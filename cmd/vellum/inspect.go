package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vellum-ui/vellum/pkg/document"
)

func inspectCmd() *cobra.Command {
	var showData bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the structure of a document",
		Long: `Print the node tree of a document file.

Each line shows the tag and version of one node; --data also
prints the attribute payload.

Examples:
  vellum inspect documents/login.vellum.json
  vellum inspect --data documents/login.vellum.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0], showData)
		},
	}

	cmd.Flags().BoolVarP(&showData, "data", "d", false, "Print attribute payloads")

	return cmd
}

func runInspect(path string, showData bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc document.Node
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	printNode(&doc, 0, showData)
	return nil
}

func printNode(doc *document.Node, depth int, showData bool) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s%s \033[90m(v%s)\033[0m\n", indent, doc.Tag, doc.Version)

	if showData && len(doc.Data) > 0 {
		keys := make([]string, 0, len(doc.Data))
		for k := range doc.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s  \033[90m%s:\033[0m %v\n", indent, k, summarize(doc.Data[k]))
		}
	}

	for _, child := range doc.Children {
		if node, ok := child.(*document.Node); ok {
			printNode(node, depth+1, showData)
			continue
		}
		fmt.Printf("%s  %q\n", indent, fmt.Sprint(child))
	}
}

// summarize keeps attribute output to one line per key.
func summarize(v any) string {
	switch val := v.(type) {
	case *document.Node:
		return fmt.Sprintf("<%s v%s>", val.Tag, val.Version)
	case []any:
		return fmt.Sprintf("[%d items]", len(val))
	case map[string]any:
		return fmt.Sprintf("{%d keys}", len(val))
	case string:
		if len(val) > 60 {
			return fmt.Sprintf("%q...", val[:60])
		}
		return fmt.Sprintf("%q", val)
	default:
		return fmt.Sprint(v)
	}
}
