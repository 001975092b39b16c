package searcher

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

// ToDot renders a materialized search tree in Graphviz dot syntax. Each node
// shows the move leading to it, the player to move and its score.
func ToDot(root *Node) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		return "", errors.Wrap(err, "cannot name graph")
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.Wrap(err, "cannot direct graph")
	}

	id := 0
	var walk func(n *Node, move string) (string, error)
	walk = func(n *Node, move string) (string, error) {
		name := fmt.Sprintf("n%d", id)
		id++

		score := "?"
		if s, ok := n.Score(); ok {
			score = fmt.Sprintf("%+g", s)
		}
		attrs := map[string]string{
			"shape": "box",
			"label": fmt.Sprintf("\"%s\\n%s to move\\nscore %s\"", move, n.state.Player(), score),
		}
		if len(n.children) == 0 {
			attrs["style"] = "rounded"
		}
		if err := g.AddNode("G", name, attrs); err != nil {
			return "", errors.Wrapf(err, "cannot add node %s", name)
		}

		for i, child := range n.children {
			childName, err := walk(child, n.moves[i].String())
			if err != nil {
				return "", err
			}
			if err := g.AddEdge(name, childName, true, nil); err != nil {
				return "", errors.Wrapf(err, "cannot add edge %s -> %s", name, childName)
			}
		}
		return name, nil
	}

	if _, err := walk(root, "root"); err != nil {
		return "", err
	}
	return g.String(), nil
}
