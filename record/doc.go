// Package record defines the tree of records that predicates are evaluated
// against and that catalogs are built from.
//
// A Source exposes a tree through an implicit root (a nil parent), a payload
// per Role on every Record, and an upstream acceptance test that lets a view
// hide rows before any catalog sees them.
//
// Tree is a ready-to-use in-memory Source:
//
//	t := record.NewTree()
//	shot := t.Root().Add("Shot 010")
//	shot.Add(map[string]any{"status": "ip", "priority": 2})
//
// Trees can also be loaded from YAML with ParseTree and LoadTree.
package record
