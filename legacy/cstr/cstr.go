package cstr

// Terminator is the byte written after the copied text.
const Terminator byte = 0

// Len returns the length of the text in b: the index of the first NUL byte, or
// len(b) when b holds no NUL. It never reads past len(b).
func Len(b []byte) int {
	for i, c := range b {
		if c == Terminator {
			return i
		}
	}

	return len(b)
}

// String returns the text held in b as a Go string.
//
// Example:
//
//	buf := make([]byte, 8)
//	cstr.CopyString(buf, "abc")
//	name := cstr.String(buf) // "abc"
func String(b []byte) string {
	return string(b[:Len(b)])
}

// Copy copies the text of src into dst and NUL-terminates it, writing at most
// capacity bytes. It returns the number of text bytes copied, excluding the
// terminator.
//
// The effective capacity is min(capacity, len(dst)); a negative capacity counts
// as zero. When dst is nil or the effective capacity is zero nothing is written
// and 0 is returned. When src is nil dst[0] is set to NUL and 0 is returned.
// Otherwise min(Len(src), capacity-1) bytes are copied and the terminator
// follows them. Bytes after the terminator are left as they were.
//
// Example:
//
//	buf := make([]byte, 4)
//	n := cstr.Copy(buf, len(buf), []byte("abcdef")) // n == 3, buf == "abc\x00"
func Copy(dst []byte, capacity int, src []byte) int {
	capacity = min(capacity, len(dst))
	if dst == nil || capacity <= 0 {
		return 0
	}

	if src == nil {
		dst[0] = Terminator
		return 0
	}

	n := min(Len(src), capacity-1)
	copy(dst[:n], src[:n])
	dst[n] = Terminator

	return n
}

// CopyString is Copy for a Go string source with capacity len(dst).
// Text after an embedded NUL in src is not copied.
func CopyString(dst []byte, src string) int {
	capacity := len(dst)
	if dst == nil || capacity == 0 {
		return 0
	}

	n := min(len(src), capacity-1)
	for i := 0; i < n; i++ {
		if src[i] == Terminator {
			n = i
			break
		}
	}

	copy(dst[:n], src[:n])
	dst[n] = Terminator

	return n
}
