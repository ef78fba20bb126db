package scene

import "github.com/go-gl/mathgl/mgl32"

// Node is a transform in the scene graph.
// Rotation is Euler XYZ in radians, applied as Rx * Ry * Rz.
type Node struct {
	Name        string
	Position    mgl32.Vec3
	Rotation    mgl32.Vec3
	Scale       mgl32.Vec3
	RenderOrder int

	parent   *Node
	children []*Node
}

// NewNode creates a node at the origin with unit scale.
func NewNode(name string) *Node {
	return &Node{
		Name:  name,
		Scale: mgl32.Vec3{1, 1, 1},
	}
}

// Add attaches child to n, detaching it from any previous parent.
func (n *Node) Add(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove detaches child from n. It is a no-op if child is not attached to n.
func (n *Node) Remove(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Parent returns the owning node or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the attached nodes in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// Rotate adds the given Euler deltas to the node rotation.
func (n *Node) Rotate(dx, dy, dz float32) {
	n.Rotation = n.Rotation.Add(mgl32.Vec3{dx, dy, dz})
}

// LocalMatrix returns T * R * S for this node.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	r := mgl32.HomogRotate3DX(n.Rotation[0]).
		Mul4(mgl32.HomogRotate3DY(n.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(n.Rotation[2]))
	s := mgl32.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2])
	return t.Mul4(r).Mul4(s)
}

// WorldMatrix returns the node transform composed with all of its ancestors.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}
