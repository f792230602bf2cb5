// SPDX-License-Identifier: Unlicense OR MIT

package op

import "testing"

type nop struct{}

func (nop) ImplementsOp() {}

func TestOpsReset(t *testing.T) {
	var ops Ops
	ops.Add(nop{})
	ops.Add(nop{})
	if ops.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ops.Len())
	}
	ops.Reset()
	if ops.Len() != 0 || ops.Version() != 1 {
		t.Errorf("after Reset: Len = %d, Version = %d", ops.Len(), ops.Version())
	}
}

func TestCallOp(t *testing.T) {
	var ops, sub Ops
	CallOp{}.Add(&ops)
	if ops.Len() != 0 {
		t.Errorf("nil call added")
	}
	CallOp{Ops: &sub}.Add(&ops)
	if c, ok := ops.Ops()[0].(CallOp); !ok || c.Ops != &sub {
		t.Errorf("got %v", ops.Ops())
	}
}
