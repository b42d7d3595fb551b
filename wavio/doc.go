// Package wavio reads and writes plain PCM WAV files for the converter
// tools in this module. It handles just enough of the RIFF format to
// move 16-bit mono sample buffers in and out: integer PCM at 8, 16 or
// 24 bits on read (multi-channel input is averaged down to mono), and
// canonical 16-bit PCM on write. Metadata chunks are skipped, and
// compressed WAV formats are rejected; the G.722 payload itself always
// travels in headerless raw files.
package wavio
