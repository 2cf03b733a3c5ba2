package mcts

type Node[T MoveLike] struct {
	NodeStats

	// Move that led from the parent to this node, zero value at the root
	Move     T
	Parent   NodeID
	Children []NodeID

	// Legal moves of this node's position without a child yet
	Untried []T

	// Player who just moved in this node's position
	Player Player
}

// Arena of nodes, indexed by NodeID. Nodes are only ever appended, so
// ids stay valid for the lifetime of the tree, but pointers returned
// by Node() are invalidated by the next AddChild call.
type Tree[T MoveLike] struct {
	nodes []Node[T]
}

// Create a tree with a single root node made from given state
func NewTree[T MoveLike](state State[T]) *Tree[T] {
	tree := &Tree[T]{nodes: make([]Node[T], 0, defaultTreeCapacity)}
	var none T
	tree.nodes = append(tree.nodes, newNode(NoNode, none, state))
	return tree
}

func newNode[T MoveLike](parent NodeID, move T, state State[T]) Node[T] {
	moves := state.LegalMoves()
	untried := make([]T, len(moves))
	copy(untried, moves)

	return Node[T]{
		Move:    move,
		Parent:  parent,
		Untried: untried,
		Player:  state.PlayerJustMoved(),
	}
}

func (t *Tree[T]) Root() NodeID {
	return 0
}

func (t *Tree[T]) Node(id NodeID) *Node[T] {
	return &t.nodes[id]
}

// Number of nodes in the tree
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Append a new child to the parent, made from the state after playing 'move'.
// The move is removed from the parent's untried moves.
func (t *Tree[T]) AddChild(parent NodeID, move T, state State[T]) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, newNode(parent, move, state))

	node := &t.nodes[parent]
	node.Children = append(node.Children, id)
	for i := range node.Untried {
		if node.Untried[i] == move {
			last := len(node.Untried) - 1
			node.Untried[i] = node.Untried[last]
			node.Untried = node.Untried[:last]
			break
		}
	}
	return id
}

// Every legal move of this node has a child
func (t *Tree[T]) FullyExpanded(id NodeID) bool {
	return len(t.nodes[id].Untried) == 0
}

// Node's position has no legal moves
func (t *Tree[T]) Terminal(id NodeID) bool {
	node := &t.nodes[id]
	return len(node.Untried) == 0 && len(node.Children) == 0
}

// Average outcome of the node, from its player's perspective
func (t *Tree[T]) WinRate(id NodeID) float64 {
	return float64(t.nodes[id].AvgQ())
}

// Distance from the root
func (t *Tree[T]) Depth(id NodeID) int {
	depth := 0
	for id = t.nodes[id].Parent; id != NoNode; id = t.nodes[id].Parent {
		depth++
	}
	return depth
}

// Moves leading from the root to given node
func (t *Tree[T]) Path(id NodeID) []T {
	path := make([]T, t.Depth(id))
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = t.nodes[id].Move
		id = t.nodes[id].Parent
	}
	return path
}

// Visit every node in pre-order, starting from the root
func (t *Tree[T]) Walk(fn func(id NodeID)) {
	stack := []NodeID{t.Root()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(id)

		children := t.nodes[id].Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// Select the best visited child according to the policy, NoNode if
// none of the children was visited. Ties go to the earlier child.
func (t *Tree[T]) BestChild(id NodeID, policy BestChildPolicy) NodeID {
	best := NoNode
	for _, child := range t.nodes[id].Children {
		if t.nodes[child].Visits == 0 {
			continue
		}
		if best == NoNode || t.better(child, best, policy) {
			best = child
		}
	}
	return best
}

func (t *Tree[T]) better(a, b NodeID, policy BestChildPolicy) bool {
	na, nb := &t.nodes[a], &t.nodes[b]
	ra, rb := na.AvgQ(), nb.AvgQ()

	if policy == BestChildMostVisits {
		if na.Visits != nb.Visits {
			return na.Visits > nb.Visits
		}
		return ra > rb
	}

	if ra != rb {
		return ra > rb
	}
	return na.Visits > nb.Visits
}

// Follow the best children from given node, until a leaf or an unvisited child
func (t *Tree[T]) PrincipalVariation(id NodeID, policy BestChildPolicy) []T {
	line := make([]T, 0, 8)
	for child := t.BestChild(id, policy); child != NoNode; child = t.BestChild(child, policy) {
		line = append(line, t.nodes[child].Move)
	}
	return line
}

// Deepest node in the tree
func (t *Tree[T]) MaxDepth() int {
	depths := make([]int, len(t.nodes))
	maxdepth := 0
	for id := 1; id < len(t.nodes); id++ {
		// parents are always appended before their children
		depths[id] = depths[t.nodes[id].Parent] + 1
		maxdepth = max(maxdepth, depths[id])
	}
	return maxdepth
}
