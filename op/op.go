// SPDX-License-Identifier: Unlicense OR MIT

/*
Package op implements operations for drawing a user interface.

Elements describe how they look by adding operations to an Ops list.
The list is executed by a renderer, such as the raster package, once
the layout is settled.

Drawing a red square:

	ops := new(op.Ops)
	rect := f32.Rect(0, 0, 100, 100)
	paint.FillShape(ops, color.NRGBA{R: 0xff, A: 0xff}, clip.RRect{Rect: rect}.Path())

A CallOp invokes another operation list:

	ops := new(op.Ops)
	ops2 := new(op.Ops)
	op.CallOp{Ops: ops2}.Add(ops)
*/
package op

// Ops holds a list of operations.
type Ops struct {
	// version is incremented at each Reset.
	version int
	list    []Op
}

// Op is the interface implemented by operations.
type Op interface {
	ImplementsOp()
}

// CallOp invokes all the operations from a separate
// operations list.
type CallOp struct {
	// Ops is the list of operations to invoke.
	Ops *Ops
}

// Reset the Ops, preparing it for re-use. Reset invalidates
// any recorded operations.
func (o *Ops) Reset() {
	o.version++
	for i := range o.list {
		o.list[i] = nil
	}
	o.list = o.list[:0]
}

// Add appends op to the list.
func (o *Ops) Add(op Op) {
	o.list = append(o.list, op)
}

// Len returns the number of operations in the list, not counting
// the operations of called lists.
func (o *Ops) Len() int {
	return len(o.list)
}

// Ops returns the operations in the order they were added. The
// slice is valid until the next Reset.
func (o *Ops) Ops() []Op {
	return o.list
}

// Version returns the number of times o has been reset.
func (o *Ops) Version() int {
	return o.version
}

// Add the call to ops. A nil call list is ignored.
func (c CallOp) Add(o *Ops) {
	if c.Ops == nil {
		return
	}
	o.Add(c)
}

func (CallOp) ImplementsOp() {}
