// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/test"
)

func TestLoggerTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	test.ExpectFailure(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")
	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestLoggerRepeat(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "memorymap", "ROM is entirely shadowed")
	log.Log(logger.Allow, "memorymap", "ROM is entirely shadowed")
	log.Log(logger.Allow, "memorymap", "ROM is entirely shadowed")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "memorymap: ROM is entirely shadowed (repeat x3)\n")
}

func TestLoggerMaximum(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
	test.ExpectEquality(t, len(log.Copy()), 2)
}

type prohibit struct{}

func (prohibit) AllowLogging() bool {
	return false
}

func TestLoggerPermission(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(prohibit{}, "tag", "detail")
	log.Logf(prohibit{}, "tag", "detail %d", 10)
	test.ExpectFailure(t, log.Write(w))

	log.Logf(logger.Allow, "tag", "detail %d", 10)
	test.ExpectSuccess(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "tag: detail 10\n")
}

type stringer struct{}

func (stringer) String() string {
	return "stringer test"
}

func TestLoggerDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Log(logger.Allow, "tag", stringer{})
	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: stringer test\ntag: 100\n")
}

func TestLoggerEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}

	log.SetEcho(w)
	log.Log(logger.Allow, "machine", "halted")
	test.ExpectSuccess(t, w.Compare("machine: halted\n"))

	log.SetEcho(nil)
	log.Log(logger.Allow, "machine", "not echoed")
	test.ExpectSuccess(t, w.Compare("machine: halted\n"))
}
