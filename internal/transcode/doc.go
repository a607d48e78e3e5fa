// Package transcode turns a conversion request into the exact ffmpeg argument
// list proteus runs.
//
// It owns the fixed vocabularies (encoder presets, compression levels), the
// quality mapping between the software CRF scale and the hardware encoder's
// 0-100 scale, resolution parsing, and output path resolution. Building a
// command never spawns a process: the only side effects are stat calls used to
// reject a missing input or an existing output before anything runs.
package transcode
