package dom

import "github.com/oxhq/domkit/selector"

func parseSelectors(s string) (selector.List, error) { return selector.Parse(s) }

func matchesList(n *Node, list selector.List) bool {
	return selector.Matches((*elementView)(n), list)
}
