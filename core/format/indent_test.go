package format

import (
	"testing"

	"tabclip-api/core/domain"
)

// chain builds the forest A(1) -> B(2) -> C(3), each tab the sole child of
// the previous.
func chain() []domain.TreeNode {
	return []domain.TreeNode{
		{ID: 1, Children: []domain.TreeNode{
			{ID: 2, Children: []domain.TreeNode{
				{ID: 3},
			}},
		}},
	}
}

func TestIndentLevels_FullySelectedChain(t *testing.T) {
	levels := IndentLevels(chain(), []int{1, 2, 3}, false)

	want := map[int]int{1: 0, 2: 1, 3: 2}
	for id, wantLevel := range want {
		if levels[id] != wantLevel {
			t.Errorf("tab %d: level = %d, want %d", id, levels[id], wantLevel)
		}
	}
}

func TestIndentLevels_UnselectedMiddleDoesNotCount(t *testing.T) {
	// B is not selected, so C's only selected ancestor is A.
	levels := IndentLevels(chain(), []int{1, 3}, false)

	if levels[3] != 1 {
		t.Errorf("tab 3: level = %d, want 1", levels[3])
	}
	if levels[1] != 0 {
		t.Errorf("tab 1: level = %d, want 0", levels[1])
	}
}

func TestIndentLevels_NoSelectedAncestors(t *testing.T) {
	forest := []domain.TreeNode{
		{ID: 10, Children: []domain.TreeNode{{ID: 11}}},
		{ID: 20},
	}

	levels := IndentLevels(forest, []int{11, 20}, false)

	if levels[11] != 0 {
		t.Errorf("tab 11: level = %d, want 0 (parent not selected)", levels[11])
	}
	if levels[20] != 0 {
		t.Errorf("tab 20: level = %d, want 0", levels[20])
	}
}

func TestIndentLevels_DescendantsOnly(t *testing.T) {
	// Descendants-only mode drops the topmost selected tab from the result
	// and from ancestor counting.
	levels := IndentLevels(chain(), []int{1, 2, 3}, true)

	if _, ok := levels[1]; ok {
		t.Error("excluded root should not appear in the result")
	}
	if levels[2] != 0 {
		t.Errorf("tab 2: level = %d, want 0 (root no longer counts)", levels[2])
	}
	if levels[3] != 1 {
		t.Errorf("tab 3: level = %d, want 1", levels[3])
	}
}

func TestIndentLevels_Siblings(t *testing.T) {
	forest := []domain.TreeNode{
		{ID: 1, Children: []domain.TreeNode{
			{ID: 2},
			{ID: 3},
		}},
	}

	levels := IndentLevels(forest, []int{1, 2, 3}, false)

	if levels[2] != 1 || levels[3] != 1 {
		t.Errorf("sibling levels = %d, %d, want 1, 1", levels[2], levels[3])
	}
}

func TestIndentLevels_EmptyForest(t *testing.T) {
	levels := IndentLevels(nil, []int{1, 2}, false)

	if len(levels) != 0 {
		t.Errorf("empty forest should yield no levels, got %v", levels)
	}
}
