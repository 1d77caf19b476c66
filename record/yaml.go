package record

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// treeDocument is the YAML form of a Tree:
//
//	entity_type: Task
//	nodes:
//	  - data: {name: a, age: 5}
//	  - roles:
//	      display: Shot 010
//	      entity: {type: Shot, code: "010"}
//	    children:
//	      - data: ...
type treeDocument struct {
	EntityType string     `yaml:"entity_type,omitempty"`
	Nodes      []nodeSpec `yaml:"nodes"`
}

type nodeSpec struct {
	Data     any            `yaml:"data,omitempty"`
	Roles    map[string]any `yaml:"roles,omitempty"`
	Children []nodeSpec     `yaml:"children,omitempty"`
}

// ParseTree builds a Tree from a YAML document.
func ParseTree(data []byte) (*Tree, error) {
	var doc treeDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("record: parse tree: %w", err)
	}

	t := NewTree()
	t.SetEntityType(doc.EntityType)
	for i := range doc.Nodes {
		addSpec(t.Root(), &doc.Nodes[i])
	}
	return t, nil
}

// LoadTree reads a YAML tree document from r.
func LoadTree(r io.Reader) (*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("record: read tree: %w", err)
	}
	return ParseTree(data)
}

// LoadTreeFile reads a YAML tree document from path.
func LoadTreeFile(path string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("record: open tree: %w", err)
	}
	defer f.Close()
	return LoadTree(f)
}

func addSpec(parent *Node, spec *nodeSpec) {
	data := make(map[Role]any, len(spec.Roles)+1)
	if spec.Data != nil {
		data[RoleDisplay] = spec.Data
	}
	for role, v := range spec.Roles {
		data[Role(role)] = v
	}

	n := parent.AddChild(data)
	for i := range spec.Children {
		addSpec(n, &spec.Children[i])
	}
}
