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

package logger

import (
	"strings"
	"testing"
)

func TestRepeatFolding(t *testing.T) {
	l := newLogger(10)
	l.log("disney", "fifo full")
	l.log("disney", "fifo full")
	l.log("disney", "fifo full")

	if len(l.entries) != 1 {
		t.Fatalf("expected one folded entry, got %d", len(l.entries))
	}

	s := strings.Builder{}
	l.write(&s)
	if !strings.Contains(s.String(), "(repeat x3)") {
		t.Errorf("folded entry missing repeat count (%s)", s.String())
	}
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)
	l.log("midi", "one")
	l.log("midi", "two")
	l.log("midi", "three")

	if len(l.entries) != 2 {
		t.Fatalf("expected log to be capped at 2 entries, got %d", len(l.entries))
	}
	if l.entries[0].Detail != "two" || l.entries[1].Detail != "three" {
		t.Errorf("oldest entry should have been dropped")
	}
}

func TestTail(t *testing.T) {
	l := newLogger(10)
	l.log("midi", "one")
	l.log("midi", "two")
	l.log("midi", "three")

	s := strings.Builder{}
	l.tail(&s, 2)
	if strings.Contains(s.String(), "one") {
		t.Errorf("tail should not include oldest entry")
	}
	if !strings.Contains(s.String(), "three") {
		t.Errorf("tail should include newest entry")
	}

	// tail longer than the log is capped
	s.Reset()
	l.tail(&s, 100)
	if !strings.Contains(s.String(), "one") {
		t.Errorf("over-long tail should include every entry")
	}
}
