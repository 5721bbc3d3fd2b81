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

package execution

import (
	"github.com/lazyelk/famicore/curated"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition. In particular it checks
// that the number of bytes consumed from the program stream is exactly
// the number the definition declares for the opcode.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: execution result has no instruction definition")
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	// branch results are only valid for branch instructions
	if r.BranchTaken && !r.Defn.IsBranch() {
		return curated.Errorf("cpu: branch taken for a non-branch instruction (%s)", r.Defn.Mnemonic)
	}

	return nil
}
