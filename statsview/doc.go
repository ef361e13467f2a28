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

// Package statsview provides a HTTP server offering runtime statistics of
// the running emulator. The server is only available when the program is
// built with the statsview build tag:
//
//	go build -tags statsview
//
// Underlying functionality is provided by "github.com/go-echarts/statsview".
// After launch, graphical statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12600/debug/pprof/
package statsview
