package tuitest

import (
	"bytes"
	"io"
)

// terminalReplies answers the capability queries the program sends at
// startup. Without them termenv waits for a timeout on every query.
var terminalReplies = []struct {
	query string
	reply string
}{
	{"\x1b[6n", "\x1b[1;1R"},
	{"\x1b]10;?\x07", "\x1b]10;rgb:cccc/cccc/cccc\x07"},
	{"\x1b]10;?\x1b\\", "\x1b]10;rgb:cccc/cccc/cccc\x1b\\"},
	{"\x1b]11;?\x07", "\x1b]11;rgb:0000/0000/0000\x07"},
	{"\x1b]11;?\x1b\\", "\x1b]11;rgb:0000/0000/0000\x1b\\"},
}

const (
	maxPending  = 256
	keepPending = 64
)

// queryResponder is an io.Writer fed with program output. It writes the
// matching reply to w for every query it sees, even when a query is split
// across reads.
type queryResponder struct {
	w       io.Writer
	pending []byte
}

func newQueryResponder(w io.Writer) *queryResponder {
	return &queryResponder{w: w, pending: make([]byte, 0, maxPending)}
}

func (r *queryResponder) Write(p []byte) (int, error) {
	r.pending = append(r.pending, p...)
	for r.answerNext() {
	}
	if len(r.pending) > maxPending {
		r.pending = append(r.pending[:0], r.pending[len(r.pending)-keepPending:]...)
	}
	return len(p), nil
}

// answerNext replies to the earliest query in pending and drops everything up
// to its end.
func (r *queryResponder) answerNext() bool {
	match, at := -1, 0
	for i, q := range terminalReplies {
		idx := bytes.Index(r.pending, []byte(q.query))
		if idx < 0 {
			continue
		}
		if match < 0 || idx < at {
			match, at = i, idx
		}
	}
	if match < 0 {
		return false
	}
	r.pending = r.pending[at+len(terminalReplies[match].query):]
	_, _ = io.WriteString(r.w, terminalReplies[match].reply)
	return true
}
