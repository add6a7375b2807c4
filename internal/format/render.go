package format

// RenderNested renders a labeled-value tree as indented label: value
// lines. The traversal is depth-first; at depth d the rule at index
// min(d, len(rules)-1) supplies the naming policy and the indent added
// for that node's children. Children are emitted strictly in tree
// order. The result is a pure function of the tree and rule stack.
func RenderNested(tree LabeledValue, rules []FormatRule) []string {
	if len(rules) == 0 {
		rules = []FormatRule{{Namer: NamerShowOwn}}
	}
	var lines []string
	renderNode(tree, rules, 0, "", &lines)
	return lines
}

func renderNode(node LabeledValue, rules []FormatRule, depth int, prefix string, lines *[]string) {
	rule := ruleAt(rules, depth)

	label := node.Label
	switch rule.Namer {
	case NamerHide, NamerShowChildrenOnly:
		label = ""
	case NamerShowWithOverride:
		label = rule.Override
	}

	if !node.IsGroup() {
		line := prefix
		if label != "" {
			line += label + ": "
		}
		*lines = append(*lines, line+node.Value)
		return
	}

	if label != "" {
		*lines = append(*lines, prefix+label+":")
	}
	childPrefix := prefix + rule.Indent
	for _, child := range node.Children {
		renderNode(child, rules, depth+1, childPrefix, lines)
	}
}

func ruleAt(rules []FormatRule, depth int) FormatRule {
	if depth >= len(rules) {
		return rules[len(rules)-1]
	}
	return rules[depth]
}
