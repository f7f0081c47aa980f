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

// Package performance measures the throughput of the emulation in
// instructions per second. It can optionally gather CPU and memory
// profiles at the same time.
package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gopher65816/gopher65816/hardware"
)

// sentinal error returned by the Run() loop.
var timedOut = errors.New("performance timed out")

// PerformanceBrake specifies how many instructions to run between
// checks of the timer channel. checking the channel is relatively
// expensive.
const PerformanceBrake = 1000

// Check the performance of the emulator using the supplied console.
//
// Emulation will run for the specified duration. CPU and memory
// profiles are created as indicated by the profile argument.
func Check(output io.Writer, con *hardware.Console, duration string, profile Profile) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	steps := 0

	runner := func() error {
		// trigger that expires when duration has elapsed
		timerChan := make(chan bool)

		go func() {
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		}()

		performanceBrake := 0

		return con.Run(func() (bool, error) {
			steps++

			performanceBrake++
			if performanceBrake >= PerformanceBrake {
				performanceBrake = 0

				select {
				case <-timerChan:
					return false, timedOut
				default:
				}
			}

			return true, nil
		})
	}

	start := time.Now()

	// launch runner directly or through the profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	elapsed := time.Since(start).Seconds()
	if elapsed > 0 {
		fmt.Fprintf(output, "%.0f instructions per second (%d instructions in %.2f seconds)\n",
			float64(steps)/elapsed, steps, elapsed)
	}

	return nil
}
