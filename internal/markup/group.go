package markup

import "iter"

// List is a run of consecutive list items sharing the same marker style.
type List struct {
	Ordered bool     `json:"ordered"`
	Items   []string `json:"items"`
}

// Node is either a single block or a grouped list. Exactly one field is set.
type Node struct {
	Block *Block `json:"block,omitempty"`
	List  *List  `json:"list,omitempty"`
}

// Group folds consecutive list items into List nodes. A switch between
// bulleted and numbered items starts a new list; every other block passes
// through unchanged.
func Group(blocks iter.Seq[Block]) []Node {
	var (
		nodes   []Node
		current *List
	)
	for block := range blocks {
		if block.Kind != KindListItem {
			current = nil
			b := block
			nodes = append(nodes, Node{Block: &b})
			continue
		}
		if current == nil || current.Ordered != block.Ordered {
			current = &List{Ordered: block.Ordered}
			nodes = append(nodes, Node{List: current})
		}
		current.Items = append(current.Items, block.Text)
	}
	return nodes
}
