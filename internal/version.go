package internal

// Version is the tool version embedded in generated file digests, so that
// upgrading the generator invalidates previously generated output.
const Version = "0.1.0"
