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

// Package logger is the central log of the emulation. Log entries are tagged
// with the name of the component making the entry.
//
// The emulated CPU never logs. Components that do, such as the memorymap
// package when it is asked to build an address space with shadowed bindings,
// log through the package level functions.
//
//	logger.Logf(logger.Allow, "memorymap", "%s is entirely shadowed", label)
//
// Every log request is accompanied by a Permission. Components that can be
// run in a context where logging is unwanted (a test harness running
// thousands of small address spaces for example) can supply their own
// implementation.
package logger

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should be allowed. A good default
// to use if a log entry should always be made.
var Allow Permission = allow{}

func allowed(perm Permission) bool {
	return perm == Allow || (perm != nil && perm.AllowLogging())
}
