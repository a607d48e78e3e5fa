// Package main hosts the proteus CLI entrypoint and command graph.
//
// Each subcommand resolves configuration once, checks the external tools it
// needs, and then hands off to the internal packages: transcode builds the
// ffmpeg command, encoding runs it, and presenter renders everything the user
// sees. Keep decisions out of this package; add behaviour to the internal
// packages first and surface it here through flags.
package main
