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

package midi

// a physical MIDI line runs at 31250 bits per second: 3.125 bytes per
// millisecond on the wire.
const midiBaudRate = 3.125

// delayMs returns the number of milliseconds a physical device needs to
// drain a SysEx block of the given size from its input buffer. The 25% slack
// over the raw line rate matches the behaviour of a Roland MT-32 rev. 0,
// which some games overrun without it.
//
// Explanation for this formula can be found in discussion under the patch
// that introduced it: https://sourceforge.net/p/dosbox/patches/241/
func delayMs(sysexBytes int) int {
	delay := float64(sysexBytes) * 1.25 / midiBaudRate
	return int(delay) + 2
}

// sysexDelayMs returns the emulated device latency for a completed SysEx
// block, delimiters included. A few fixed address patterns carry hard-coded
// delays for known game and device quirks; everything else uses the line
// rate formula.
func sysexDelayMs(block []byte) int {
	if len(block) > 5 && block[5] == 0x7f {
		return 290 // MT-32 All Parameters Reset
	}
	if len(block) > 7 && block[5] == 0x10 && block[6] == 0x00 && block[7] == 0x04 {
		return 145 // Viking Child
	}
	if len(block) > 7 && block[5] == 0x10 && block[6] == 0x00 && block[7] == 0x01 {
		return 30 // Dark Sun 1
	}
	return delayMs(len(block))
}
