// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for the emulation. There is only one
// log and it is shared by every part of the repository.
//
// New entries are added with the Log() and Logf() functions. An entry
// that repeats the most recent entry is coalesced into it rather than
// appended. The log is capped and will discard the oldest entries once
// the cap is reached.
//
// The contents of the log can be written to an io.Writer with the
// Write() and Tail() functions. SetEcho() mirrors new entries to an
// io.Writer as they arrive, which is useful during development.
package logger
