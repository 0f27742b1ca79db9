// Command domkit-inspect builds a small sample document in memory and
// demonstrates domkit's selector and traversal surfaces against it: a
// CSS selector query and a full TreeWalker document-order walk.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oxhq/domkit/dom"
	"github.com/oxhq/domkit/traversal"
)

func sampleDocument() *dom.Document {
	doc := dom.NewDocument()
	html := doc.CreateElement("html")
	_ = dom.Append(doc.Node, html)

	body := doc.CreateElement("body")
	_ = dom.Append(html, body)

	for i, name := range []string{"intro", "details", "footer"} {
		section := doc.CreateElement("section")
		_ = section.SetAttribute("id", name)
		_ = section.ClassList().Add("panel")
		if i == 1 {
			_ = section.ClassList().Add("highlight")
		}
		_ = dom.Append(body, section)
		_ = dom.Append(section, doc.CreateTextNode(strings.ToUpper(name)))
	}
	return doc
}

func newQueryCmd() *cobra.Command {
	var selectors string
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a CSS selector query against the sample document",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := sampleDocument()
			matches, err := doc.Node.QuerySelectorAll(selectors)
			if err != nil {
				return fmt.Errorf("query %q: %w", selectors, err)
			}
			for _, n := range matches.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s#%s: %q\n", n.TagName(), n.ID(), n.TextContent())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&selectors, "selector", "s", "section.panel", "CSS selector to evaluate")
	return cmd
}

func newWalkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Walk the sample document in tree order with a TreeWalker",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := sampleDocument()
			walker := traversal.NewTreeWalker(doc.Node, dom.ShowElement, nil)
			for n := walker.NextNode(); n != nil; n = walker.NextNode() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s<%s>\n", strings.Repeat("  ", depth(n)), n.TagName())
			}
			return nil
		},
	}
	return cmd
}

func depth(n *dom.Node) int {
	d := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}

func main() {
	root := &cobra.Command{
		Use:   "domkit-inspect",
		Short: "Inspect a sample domkit document via selectors and traversal",
	}
	root.AddCommand(newQueryCmd(), newWalkCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
