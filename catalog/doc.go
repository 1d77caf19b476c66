// Package catalog discovers the filterable fields of a record tree.
//
// Every accepted leaf record is sampled for each configured role. Its payload
// is split into fields according to its shape: entity maps use the schema,
// other maps contribute one field per key, property objects one field per
// property, and primitive payloads are a single field. Each distinct value of
// a field becomes a ValueBucket that knows how many leaf records carry it.
//
//	c := catalog.New(tree, catalog.WithAcceptFields("display.status"))
//	if err := c.Build(); err != nil {
//		return err
//	}
//	for _, f := range c.SortedFields() {
//		for _, v := range f.SortedValues() {
//			fmt.Println(f.Name, v.Label, v.Count())
//		}
//	}
//
// UpdateFields recounts selected fields after the tree or the acceptance
// policy changed, and Discover finds the allow-listed fields without walking
// the whole tree.
package catalog
