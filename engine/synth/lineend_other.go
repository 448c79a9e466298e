//go:build !windows

package synth

// LineEnding is the line terminator of generated text files.
const LineEnding = "\n"
