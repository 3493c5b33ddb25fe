package utils

// Copyright (C) 2025 BrainDrive Corp.
//
// This program is free software; you can redistribute it and/or
// modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; either version 2
// of the License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program; if not, write to the Free Software
// Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingCloser struct {
	closed bool
}

func (c *recordingCloser) Close() error {
	c.closed = true
	return nil
}

func TestCleanupRunsInReverseOrder(t *testing.T) {
	var order []int
	RegisterCleanup(func() { order = append(order, 1) })
	RegisterCleanup(func() { order = append(order, 2) })
	RegisterCleanup(func() { order = append(order, 3) })

	RunCleanup()
	assert.Equal(t, []int{3, 2, 1}, order)

	// Second run is a no-op.
	RunCleanup()
	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestRegisterCloser(t *testing.T) {
	closer := &recordingCloser{}
	RegisterCloser(closer)

	RunCleanup()
	assert.True(t, closer.closed)
}
