package document

import (
	"github.com/vellum-ui/vellum/pkg/registry"
	"github.com/vellum-ui/vellum/pkg/view"
)

// Deserialize reconstructs a live tree from a document, bottom-up: a
// node's children are built before the node itself, because factories
// receive already-built children.
//
// Failure modes per node: *registry.NotFoundError for an unknown tag,
// *VersionMismatchError for a version with no migration path, and factory
// errors. All are fatal for the affected subtree and propagate to the
// caller unless a recovery hook was installed with WithRecovery; the
// engine never substitutes placeholder nodes on its own.
func (e *Engine) Deserialize(doc *Node) (*view.Node, error) {
	d := &deserializer{engine: e, depth: depthGuard{max: e.maxDepth}}
	return d.node(doc)
}

// deserializer carries per-call state so one Engine can deserialize
// independent documents concurrently.
type deserializer struct {
	engine *Engine
	depth  depthGuard
}

// node builds a subtree, routing failures through the recovery hook when
// one is installed. A hook returning a nil node with a nil error removes
// the subtree from its parent's children.
func (d *deserializer) node(doc *Node) (*view.Node, error) {
	live, err := d.build(doc)
	if err != nil && d.engine.recovery != nil {
		return d.engine.recovery(doc, err)
	}
	return live, err
}

func (d *deserializer) build(doc *Node) (*view.Node, error) {
	if err := d.depth.enter(); err != nil {
		return nil, err
	}
	defer d.depth.leave()

	if doc == nil || doc.Tag == "" {
		return nil, &InvalidDocumentError{Reason: "node has empty tag"}
	}
	reg, err := d.engine.reg.Lookup(doc.Tag)
	if err != nil {
		return nil, err
	}

	compat, migrate, err := checkVersion(doc, reg)
	if err != nil {
		return nil, err
	}
	data := doc.Data
	if compat == Migratable {
		data = migrate(data)
	}

	attrs := make(view.Attrs, len(data))
	for key, val := range data {
		if key == "children" && reg.Strategy == registry.ChildrenExplicit {
			continue
		}
		decoded, err := d.decode(val)
		if err != nil {
			return nil, err
		}
		attrs[key] = decoded
	}

	var children []any
	switch reg.Strategy {
	case registry.ChildrenExplicit:
		if list, ok := data["children"].([]any); ok {
			for _, child := range list {
				decoded, err := d.decode(child)
				if err != nil {
					return nil, err
				}
				children = append(children, decoded)
			}
		}
	default:
		for _, child := range doc.Children {
			cn, ok := child.(*Node)
			if !ok {
				children = append(children, child)
				continue
			}
			live, err := d.node(cn)
			if err != nil {
				return nil, err
			}
			if live != nil {
				children = append(children, live)
			}
		}
	}

	return reg.Factory(attrs, children)
}
