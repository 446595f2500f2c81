// Package node defines the serializable widget description consumed by the
// engine.
//
// A [Node] is plain data: it is produced by a loader (see package loader),
// handed to the engine once, and never mutated afterwards. Every optional
// attribute is a pointer so that "absent" and "zero" stay distinguishable
// across all supported formats.
//
//	root := &node.Node{
//	    Kind: "Column",
//	    Children: []*node.Node{
//	        {Kind: "Button", ID: node.Ptr("inc"), Label: node.Ptr("Inc")},
//	        {Kind: "Frame", ID: node.Ptr("result"), Label: node.Ptr("0")},
//	    },
//	}
//
// The type tag is serialized under the key "widget".
package node
