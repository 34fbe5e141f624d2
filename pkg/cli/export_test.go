package cli

// RunWithLogOutput exports run for testing
var RunWithLogOutput = run
