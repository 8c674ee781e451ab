package astprovider

import "github.com/agentic-research/skim/internal/safety"

// Validate walks root once, enforcing the §4.C2 parse-time bounds (total
// node count, recursion depth) that apply uniformly across every grammar.
// It fails fast: the walk returns as soon as either bound is exceeded,
// rather than finishing the traversal first.
func Validate(path string, root Node) error {
	return validateNode(path, root, 0, new(int))
}

func validateNode(path string, n Node, depth int, count *int) error {
	*count++
	if err := safety.CheckNodeCount(path, *count); err != nil {
		return err
	}
	if err := safety.CheckDepth(path, depth); err != nil {
		return err
	}
	for i := 0; i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		if child == nil {
			continue
		}
		if err := validateNode(path, child, depth+1, count); err != nil {
			return err
		}
	}
	return nil
}
