package record

// Node is a record of an in-memory Tree.
type Node struct {
	data     map[Role]any
	parent   *Node
	children []*Node
	depth    int
}

// Data implements Record.
func (n *Node) Data(role Role) any {
	if n == nil || n.data == nil {
		return nil
	}
	return n.data[role]
}

// Set stores the payload for role.
func (n *Node) Set(role Role, v any) {
	if n.data == nil {
		n.data = make(map[Role]any)
	}
	n.data[role] = v
}

// AddChild appends a child carrying the given payloads and returns it.
func (n *Node) AddChild(data map[Role]any) *Node {
	child := &Node{
		data:   data,
		parent: n,
		depth:  n.depth + 1,
	}
	n.children = append(n.children, child)
	return child
}

// Add appends a child whose display payload is v.
func (n *Node) Add(v any) *Node {
	return n.AddChild(map[Role]any{RoleDisplay: v})
}

// Parent returns the parent node, or nil for top-level nodes.
func (n *Node) Parent() *Node {
	if n.parent == nil || n.parent.depth < 0 {
		return nil
	}
	return n.parent
}

// Children returns the child nodes.
func (n *Node) Children() []*Node { return n.children }

// Depth returns the depth of the node; top-level nodes have depth 0.
func (n *Node) Depth() int { return n.depth }

// Tree is an in-memory record Source.
//
// It accepts every node upstream; wrap it in a view to filter rows.
type Tree struct {
	root       *Node
	entityType string
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{root: &Node{depth: -1}}
}

// Root returns the implicit root. Children added to it are top-level nodes.
func (t *Tree) Root() *Node { return t.root }

// SetEntityType sets the entity type reported for map payloads without a
// "type" key.
func (t *Tree) SetEntityType(entityType string) { t.entityType = entityType }

// EntityType implements EntityTyper.
func (t *Tree) EntityType() string { return t.entityType }

// Len returns the number of nodes in the tree, excluding the root.
func (t *Tree) Len() int {
	n := 0
	Walk(t, func(Record, int) bool {
		n++
		return true
	})
	return n
}

// ChildCount implements Source.
func (t *Tree) ChildCount(parent Record) int {
	return len(t.node(parent).children)
}

// ChildAt implements Source.
func (t *Tree) ChildAt(parent Record, i int) Record {
	children := t.node(parent).children
	if i < 0 || i >= len(children) {
		return nil
	}
	return children[i]
}

// AcceptedUpstream implements Source.
func (t *Tree) AcceptedUpstream(Record) bool { return true }

func (t *Tree) node(rec Record) *Node {
	if rec == nil {
		return t.root
	}
	n, ok := rec.(*Node)
	if !ok || n == nil {
		return &Node{}
	}
	return n
}
