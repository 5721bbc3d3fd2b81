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

// Package curated is a helper package for the plain Go language error
// type. Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar
// to the Errorf() function in the fmt package. It takes a formatting
// pattern, placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created
// with a specific pattern. Packages in this repository export the
// patterns they use (for example, memory.AddressError) so that callers
// can differentiate errors without string comparison. For example:
//
//	e := curated.Errorf(memory.AddressError, address)
//
//	if curated.Is(e, memory.AddressError) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere
// in the error chain.
package curated
