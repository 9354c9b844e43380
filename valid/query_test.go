// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"errors"
	"testing"

	"github.com/gogpu/rhi"
)

func TestCreateQueryPool(t *testing.T) {
	d, spy := newSpyDevice(t)

	q, err := d.CreateQueryPool(rhi.QueryPoolDesc{Type: rhi.QueryOcclusion, Capacity: 32})
	if err != nil {
		t.Fatalf("CreateQueryPool error = %v", err)
	}
	if q.Type() != rhi.QueryOcclusion {
		t.Errorf("Type() = %v, want QueryOcclusion", q.Type())
	}
	if q.Capacity() != 32 {
		t.Errorf("Capacity() = %d, want 32", q.Capacity())
	}

	rejects := []rhi.QueryPoolDesc{
		{Type: rhi.QueryType(200), Capacity: 32},
		{Type: rhi.QueryOcclusion, Capacity: 0},
	}
	for i, desc := range rejects {
		if _, err := d.CreateQueryPool(desc); !errors.Is(err, rhi.ErrInvalidArgument) {
			t.Errorf("rejects[%d] error = %v, want ErrInvalidArgument", i, err)
		}
	}
	if spy.calls["CreateQueryPool"] != 1 {
		t.Errorf("backend CreateQueryPool called %d times, want 1", spy.calls["CreateQueryPool"])
	}

	d.DestroyQueryPool(q)
	if q.ID() != rhi.InvalidID {
		t.Error("destroyed pool should hold the invalid ID")
	}
}
