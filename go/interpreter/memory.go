// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package interpreter

import (
	"github.com/Fantom-foundation/cps/go/evm"
	"github.com/holiman/uint256"
)

const (
	// Maximum memory size allowed. Larger sizes can never be paid for.
	// This magic number comes from 'core/vm/gas_table.go' 'memoryGasCost' in geth.
	maxMemoryExpansionSize = 0x1FFFFFFFE0
)

// Memory is the byte-addressable, word-aligned scratch memory of a frame.
// Expansion is not charged here; costs are validated by the handler before
// an instruction is executed.
type Memory struct {
	store []byte
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) length() uint64 {
	return uint64(len(m.store))
}

// Data returns a copy of the memory content.
func (m *Memory) Data() []byte {
	return append([]byte(nil), m.store...)
}

// expand grows the memory to cover the given range, rounded up to full
// words. Empty ranges never expand the memory, independently of the offset.
func (m *Memory) expand(offset, size uint64) error {
	if size == 0 {
		return nil
	}
	needed := offset + size
	if needed < offset {
		return evm.ErrOverflow
	}
	if needed > maxMemoryExpansionSize {
		return evm.ErrOutOfGas
	}
	if m.length() < needed {
		needed = evm.SizeInWords(needed) * 32
		m.store = append(m.store, make([]byte, needed-m.length())...)
	}
	return nil
}

// getSlice obtains a slice of size bytes from the memory at the given
// offset, expanding the memory as needed. The returned slice is backed by
// the memory and invalidated by any subsequent expansion.
func (m *Memory) getSlice(offset, size uint64) ([]byte, error) {
	if err := m.expand(offset, size); err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}
	return m.store[offset : offset+size], nil
}

func (m *Memory) set(offset uint64, data []byte) error {
	trg, err := m.getSlice(offset, uint64(len(data)))
	if err != nil {
		return err
	}
	copy(trg, data)
	return nil
}

func (m *Memory) setByte(offset uint64, value byte) error {
	trg, err := m.getSlice(offset, 1)
	if err != nil {
		return err
	}
	trg[0] = value
	return nil
}

func (m *Memory) setWord(offset uint64, value *uint256.Int) error {
	trg, err := m.getSlice(offset, 32)
	if err != nil {
		return err
	}
	value.WriteToSlice(trg)
	return nil
}

func (m *Memory) readWord(offset uint64, target *uint256.Int) error {
	data, err := m.getSlice(offset, 32)
	if err != nil {
		return err
	}
	target.SetBytes32(data)
	return nil
}

// copyWindow copies as much of the data as fits into the window of the given
// size at the given offset. The window must have been expanded before.
func (m *Memory) copyWindow(offset, size uint64, data []byte) {
	if size == 0 || offset >= m.length() {
		return
	}
	if uint64(len(data)) < size {
		size = uint64(len(data))
	}
	copy(m.store[offset:offset+size], data[:size])
}
