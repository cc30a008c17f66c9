package tuitest

import (
	"regexp"
	"strings"
)

// Frame is one repaint of the screen, the text between two erase-display
// sequences.
type Frame struct {
	Index int
	ANSI  string
	Plain string
}

var (
	eraseDisplay = regexp.MustCompile(`\x1b\[[0-9;]*J`)
	controlSeq   = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
	osCommand    = regexp.MustCompile(`\x1b\][^\x07]*(\x07|\x1b\\)`)
	shiftChars   = strings.NewReplacer("\x0e", "", "\x0f", "", "\x00", "")
)

func splitFrames(raw []byte) []Frame {
	text := strings.ReplaceAll(string(raw), "\r", "")
	var frames []Frame
	for _, segment := range eraseDisplay.Split(text, -1) {
		segment = strings.TrimPrefix(strings.Trim(segment, "\x00"), "\x1b[H")
		plain := plainText(segment)
		if plain == "" {
			continue
		}
		frames = append(frames, Frame{Index: len(frames), ANSI: segment, Plain: plain})
	}
	// Inline rendering never erases the display; keep the stream as one frame.
	if len(frames) == 0 {
		if plain := plainText(text); plain != "" {
			frames = append(frames, Frame{ANSI: text, Plain: plain})
		}
	}
	return frames
}

// plainText drops escape sequences and trailing blanks on every line.
func plainText(s string) string {
	s = osCommand.ReplaceAllString(s, "")
	s = controlSeq.ReplaceAllString(s, "")
	s = shiftChars.Replace(s)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// FinalFrame returns the last captured frame, false when nothing was drawn.
func (r *Recording) FinalFrame() (Frame, bool) {
	if r == nil || len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

// Last returns the most recent frame showing text.
func (r *Recording) Last(text string) (Frame, bool) {
	if r == nil {
		return Frame{}, false
	}
	for i := len(r.Frames) - 1; i >= 0; i-- {
		if strings.Contains(r.Frames[i].Plain, text) {
			return r.Frames[i], true
		}
	}
	return Frame{}, false
}

// Contains reports whether any captured frame shows text.
func (r *Recording) Contains(text string) bool {
	_, ok := r.Last(text)
	return ok
}
