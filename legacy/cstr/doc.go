// Package cstr provides bounded helpers for NUL-terminated byte buffers.
//
// Buffers are plain byte slices. A nil slice stands for an absent buffer, and a
// buffer's text ends at its first NUL byte or at its length, whichever comes
// first. None of the helpers allocate (except String) or panic, whatever the
// input.
package cstr
