// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"github.com/cockroachdb/errors"

	"github.com/gogpu/rhi"
)

// CreateQueryPool creates a query pool.
func (d *Device) CreateQueryPool(desc rhi.QueryPoolDesc) (*QueryPool, error) {
	if !desc.Type.Valid() {
		return nil, errors.Wrapf(rhi.ErrInvalidArgument, "CreateQueryPool: desc.Type %d is invalid", desc.Type)
	}
	if desc.Capacity == 0 {
		return nil, errors.Wrap(rhi.ErrInvalidArgument, "CreateQueryPool: desc.Capacity is 0")
	}

	id, err := d.core.CreateQueryPool(desc)
	if err != nil {
		return nil, err
	}
	return &QueryPool{id: id, queryType: desc.Type, capacity: desc.Capacity}, nil
}

// DestroyQueryPool releases a query pool.
func (d *Device) DestroyQueryPool(q *QueryPool) {
	if q == nil || q.id == rhi.InvalidID {
		return
	}
	d.core.DestroyQueryPool(q.id)
	q.id = rhi.InvalidID
}
