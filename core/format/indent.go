// ABOUTME: Indent calculator computing per-tab ancestor depth among the selected tabs
// ABOUTME: Ancestors outside the selected set are invisible to the computation

package format

import "tabclip-api/core/domain"

// IndentLevels walks a TreeNode forest covering the tabs of one render pass
// and returns each tab's indent level: the count of its ancestors that are
// members of the originally selected set. Tabs whose selected ancestors are
// absent get level 0.
//
// When descendantsOnly is set, the topmost selected tab is excluded from the
// result and stops counting as a selected ancestor for its descendants.
func IndentLevels(forest []domain.TreeNode, selectedIDs []int, descendantsOnly bool) map[int]int {
	selected := make(map[int]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	excluded := -1
	if descendantsOnly && len(selectedIDs) > 0 {
		excluded = selectedIDs[0]
		delete(selected, excluded)
	}

	levels := make(map[int]int)

	var walk func(n domain.TreeNode, ancestors []int)
	walk = func(n domain.TreeNode, ancestors []int) {
		if n.ID != excluded {
			count := 0
			for _, id := range ancestors {
				if selected[id] {
					count++
				}
			}
			levels[n.ID] = count
		}

		// Ancestor list is nearest-first and confined to the traversal.
		childAncestors := make([]int, 0, len(ancestors)+1)
		childAncestors = append(childAncestors, n.ID)
		childAncestors = append(childAncestors, ancestors...)
		for _, c := range n.Children {
			walk(c, childAncestors)
		}
	}

	for _, root := range forest {
		walk(root, nil)
	}

	return levels
}
