package searcher

// workStack schedules nodes for postorder evaluation. It holds references
// only; nodes are owned by their parents.
type workStack struct {
	nodes []*Node
}

func (s *workStack) push(n *Node) {
	s.nodes = append(s.nodes, n)
}

// pop removes the most recently pushed node. The stack must not be empty.
func (s *workStack) pop() *Node {
	last := len(s.nodes) - 1
	n := s.nodes[last]
	s.nodes[last] = nil
	s.nodes = s.nodes[:last]
	return n
}

func (s *workStack) isEmpty() bool {
	return len(s.nodes) == 0
}

