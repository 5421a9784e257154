// This file is part of dosbox-staging.
//
// dosbox-staging is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dosbox-staging is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dosbox-staging.  If not, see <https://www.gnu.org/licenses/>.

// Package ioports implements the byte-wide IO port dispatch table. Devices
// register read and write handlers for the ports they decode and the
// emulated CPU's IN/OUT instructions are serviced by the Read and Write
// functions.
package ioports

// Port is an address on the emulated IO bus.
type Port uint16

// ReadHandler services an IN instruction for a registered port.
type ReadHandler func(port Port) uint8

// WriteHandler services an OUT instruction for a registered port.
type WriteHandler func(port Port, data uint8)

// value returned when reading an undecoded port. matches the floating bus of
// the real machine.
const floatingBus = 0xff

// Dispatch maps ports to the devices that decode them. The zero value is not
// usable; use NewDispatch.
//
// Dispatch has no internal locking. The emulated bus is expected to be the
// only caller.
type Dispatch struct {
	reads  map[Port]ReadHandler
	writes map[Port]WriteHandler
}

// NewDispatch is the preferred method of initialisation for the Dispatch
// type.
func NewDispatch() *Dispatch {
	return &Dispatch{
		reads:  make(map[Port]ReadHandler),
		writes: make(map[Port]WriteHandler),
	}
}

// RegisterRead installs a read handler for the port, replacing any existing
// handler.
func (d *Dispatch) RegisterRead(port Port, h ReadHandler) {
	d.reads[port] = h
}

// RegisterWrite installs a write handler for the port, replacing any
// existing handler.
func (d *Dispatch) RegisterWrite(port Port, h WriteHandler) {
	d.writes[port] = h
}

// UnregisterRead removes the read handler for the port.
func (d *Dispatch) UnregisterRead(port Port) {
	delete(d.reads, port)
}

// UnregisterWrite removes the write handler for the port.
func (d *Dispatch) UnregisterWrite(port Port) {
	delete(d.writes, port)
}

// Read services an IN instruction. Undecoded ports read as 0xff.
func (d *Dispatch) Read(port Port) uint8 {
	if h, ok := d.reads[port]; ok {
		return h(port)
	}
	return floatingBus
}

// Write services an OUT instruction. Writes to undecoded ports are dropped.
func (d *Dispatch) Write(port Port, data uint8) {
	if h, ok := d.writes[port]; ok {
		h(port, data)
	}
}
