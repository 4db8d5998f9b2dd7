package document

import (
	"encoding/json"

	"github.com/vellum-ui/vellum/pkg/registry"
	"github.com/vellum-ui/vellum/pkg/view"
)

// Engine converts between live view trees and serialized documents. An
// Engine is immutable after construction and safe for concurrent use on
// independent trees, provided all registrations settled before the first
// call.
type Engine struct {
	reg        *registry.Registry
	policy     CallbackPolicy
	evalSource func(src string) (any, error)
	recovery   func(doc *Node, err error) (*view.Node, error)
	maxDepth   int
}

// Option configures an Engine.
type Option func(*Engine)

// WithCallbackPolicy sets the policy applied to function-valued
// attributes. The default drops them and records a diagnostic.
func WithCallbackPolicy(p CallbackPolicy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithSourceEvaluator installs an evaluator for unsafe callback source
// text encountered during deserialization. Without one, such values are
// returned as opaque UnsafeSource tokens. The evaluator runs in a context
// the caller controls; the engine assumes nothing about its safety.
func WithSourceEvaluator(eval func(src string) (any, error)) Option {
	return func(e *Engine) { e.evalSource = eval }
}

// WithRecovery installs a hook invoked when deserialization of a subtree
// fails. The hook may substitute a placeholder subtree (return a node) or
// propagate by returning an error. Without a hook, subtree failures
// propagate to the caller; the engine never invents placeholder nodes on
// its own.
func WithRecovery(hook func(doc *Node, err error) (*view.Node, error)) Option {
	return func(e *Engine) { e.recovery = hook }
}

// WithMaxDepth bounds deserialization recursion depth. Zero, the default,
// leaves recursion unbounded.
func WithMaxDepth(max int) Option {
	return func(e *Engine) { e.maxDepth = max }
}

// New constructs an engine over the given registry.
func New(reg *registry.Registry, opts ...Option) *Engine {
	e := &Engine{reg: reg}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the engine resolves tags against.
func (e *Engine) Registry() *registry.Registry {
	return e.reg
}

// Marshal serializes a live tree to its JSON document form.
func (e *Engine) Marshal(live *view.Node) ([]byte, []Diagnostic, error) {
	doc, diags, err := e.Serialize(live)
	if err != nil {
		return nil, diags, err
	}
	data, err := json.Marshal(doc)
	return data, diags, err
}

// Unmarshal parses a JSON document and reconstructs the live tree.
func (e *Engine) Unmarshal(data []byte) (*view.Node, error) {
	doc := &Node{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return e.Deserialize(doc)
}

// Validate walks a document checking structural invariants, registry
// membership, and version compatibility, without instantiating any live
// nodes. It returns every problem found, top-down.
func (e *Engine) Validate(doc *Node) []error {
	var errs []error
	e.validateNode(doc, &errs)
	return errs
}

func (e *Engine) validateNode(doc *Node, errs *[]error) {
	if doc.Tag == "" {
		*errs = append(*errs, &InvalidDocumentError{Reason: "node has empty tag"})
		return
	}
	reg, err := e.reg.Lookup(doc.Tag)
	if err != nil {
		*errs = append(*errs, err)
	} else if _, _, verr := checkVersion(doc, reg); verr != nil {
		*errs = append(*errs, verr)
	}
	for _, v := range doc.Data {
		e.validateValue(v, errs)
	}
	for _, c := range doc.Children {
		if child, ok := c.(*Node); ok {
			e.validateNode(child, errs)
		}
	}
}

func (e *Engine) validateValue(v any, errs *[]error) {
	switch val := v.(type) {
	case *Node:
		e.validateNode(val, errs)
	case []any:
		for _, item := range val {
			e.validateValue(item, errs)
		}
	case map[string]any:
		if node, ok := nodeFromMap(val); ok {
			e.validateNode(node, errs)
			return
		}
		for _, item := range val {
			e.validateValue(item, errs)
		}
	}
}
