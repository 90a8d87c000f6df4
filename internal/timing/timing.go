// Package timing holds the NES's NTSC clock constants. The core
// itself never sleeps or ticks a timer (§5's synchronous-core
// requirement) - the orchestrator uses these constants to decide how
// many CPU cycles make up one video frame, the way the teacher's
// mos6502 ticker derives a cycle period from the same base clock
// (https://www.nesdev.org/wiki/CPU#Frequencies).
package timing

// CPUClockHz is the NTSC NES's CPU clock rate.
const CPUClockHz = 1789773

// FrameRateHz is the NTSC PPU's field rate: 39375000/655171, which
// comes out to roughly 60.0988 Hz - not an exact 60.
const FrameRateHz = 39375000.0 / 655171.0

// CPUCyclesPerFrame is how many CPU cycles the orchestrator should run
// per video frame to stay phase-locked with FrameRateHz.
const CPUCyclesPerFrame = CPUClockHz / FrameRateHz
