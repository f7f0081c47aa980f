// This file is part of Gopher65816.
//
// Gopher65816 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65816 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65816.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"

	"github.com/gopher65816/gopher65816/hardware/memory"
)

// Loader is used to specify the cartridge to be attached to the
// emulation. Data is empty until Load() succeeds.
type Loader struct {
	Filename string

	// sha1 of the file contents, created on Load()
	Hash string

	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader
// type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// Load the cartridge data into memory. An image too small to contain
// the reset vector is rejected.
func (ld *Loader) Load() error {
	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}

	if uint32(len(data)) < memory.ResetVector+2 {
		return fmt.Errorf("cartridgeloader: %s: too small to contain a reset vector", ld.Filename)
	}

	ld.Data = data
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	return nil
}
