// Package g722 implements the ITU-T G.722 sub-band ADPCM audio codec.
//
// G.722 splits the input signal into a low and a high frequency band
// with a 24-tap quadrature mirror filter, runs an adaptive differential
// quantizer on each band, and packs both codewords into one octet per
// pair of 16-bit PCM samples. The 64, 56 and 48 kbit/s rates differ
// only in the width of the low-band codeword (6, 5 or 4 bits); the high
// band always uses 2 bits.
//
// Encoder and Decoder each own independent adaptive state. A stream
// must be processed strictly in order by a single state object, and a
// fresh Decoder is required per stream: the bitstream carries no rate
// or reset marker, so decoding with a stale or mismatched state yields
// garbled audio rather than an error.
package g722
