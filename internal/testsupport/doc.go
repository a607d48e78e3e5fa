// Package testsupport provides fixtures shared by package tests: stub ffmpeg
// and ffprobe executables with scripted output, sized input files, and
// configs pointed at those stubs.
package testsupport
