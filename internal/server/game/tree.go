package game

import "xiangqi/internal/xiangqi"

// Node 是着法树里的一步。根节点 (下标 0) 不对应任何着法。
type Node struct {
	Move     xiangqi.Move
	Captured xiangqi.Kind // DoMove 报告的被吃子，undo 时原样传回
	Parent   int
	Children []int
	Remark   string
}

// Tree 用下标代替指针：父节点是一个下标，子节点是下标切片
type Tree struct {
	Nodes []Node
}

func NewTree() *Tree {
	return &Tree{Nodes: []Node{{Parent: -1, Captured: xiangqi.NoKind}}}
}

// Child 在 parent 下找同一着法的变着，没有返回 -1
func (t *Tree) Child(parent int, mv xiangqi.Move) int {
	for _, c := range t.Nodes[parent].Children {
		if t.Nodes[c].Move == mv {
			return c
		}
	}
	return -1
}

// Add 在 parent 下追加一步，已存在同一着法时复用
func (t *Tree) Add(parent int, mv xiangqi.Move, captured xiangqi.Kind) int {
	if c := t.Child(parent, mv); c >= 0 {
		return c
	}
	t.Nodes = append(t.Nodes, Node{Move: mv, Captured: captured, Parent: parent})
	idx := len(t.Nodes) - 1
	t.Nodes[parent].Children = append(t.Nodes[parent].Children, idx)
	return idx
}

// Line 返回从根到 node 的着法序列
func (t *Tree) Line(node int) []xiangqi.Move {
	var rev []xiangqi.Move
	for n := node; n > 0; n = t.Nodes[n].Parent {
		rev = append(rev, t.Nodes[n].Move)
	}
	out := make([]xiangqi.Move, len(rev))
	for i, mv := range rev {
		out[len(rev)-1-i] = mv
	}
	return out
}
