package format

// LabeledValue is a node in the render tree: either a labeled scalar
// already rendered to its display string, or a labeled group of child
// nodes. Trees are built per render call and discarded afterwards.
type LabeledValue struct {
	Label    string
	Value    string
	Children []LabeledValue
}

// Scalar creates a leaf node.
func Scalar(label, value string) LabeledValue {
	return LabeledValue{Label: label, Value: value}
}

// Group creates a group node. Child order is preserved verbatim by the
// renderer.
func Group(label string, children ...LabeledValue) LabeledValue {
	return LabeledValue{Label: label, Children: children}
}

// IsGroup reports whether the node has children rather than a scalar.
func (lv LabeledValue) IsGroup() bool {
	return lv.Children != nil
}

// Namer is the closed set of naming policies a FormatRule can apply to
// nodes at its depth.
type Namer int

const (
	// NamerHide omits the node's label.
	NamerHide Namer = iota
	// NamerShowOwn prefixes the node with "label: ".
	NamerShowOwn
	// NamerShowChildrenOnly suppresses the node's own label but still
	// descends into and names its children. Used for the top grouping
	// layer, where the group exists only to hold per-device entries.
	NamerShowChildrenOnly
	// NamerShowWithOverride replaces the node's label with the rule's
	// Override text.
	NamerShowWithOverride
)

// FormatRule is one layer of rendering configuration. A render request
// carries an ordered stack of rules, one per nesting depth; the last
// rule is reused for any depth beyond the stack's length.
type FormatRule struct {
	// Indent is added to the prefix of this node's children.
	Indent string
	Namer  Namer
	// Override is the replacement label for NamerShowWithOverride.
	Override string
}
