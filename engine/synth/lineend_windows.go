package synth

// LineEnding is the line terminator of generated text files.
const LineEnding = "\r\n"
