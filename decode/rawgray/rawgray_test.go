package rawgray

import (
	"bytes"
	"io"
	"testing"
)

func TestDecoderReadsFramesInOrder(t *testing.T) {
	w, h := 4, 2
	frame0 := bytes.Repeat([]byte{1}, w*h)
	frame1 := bytes.Repeat([]byte{2}, w*h)
	r := bytes.NewReader(append(append([]byte{}, frame0...), frame1...))

	d := New(r, w, h, 25, 2)
	meta := d.Metadata()
	if meta.Width != w || meta.Height != h || meta.TotalFrames != 2 || meta.FPS != 25 {
		t.Fatalf("unexpected metadata: %+v", meta)
	}

	f0, err := d.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if f0.FrameNumber != 0 || f0.Data[0] != 1 {
		t.Fatalf("frame 0 = %+v", f0)
	}

	f1, err := d.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if f1.FrameNumber != 1 || f1.Data[0] != 2 {
		t.Fatalf("frame 1 = %+v", f1)
	}
	if f1.PTS != float64(1)/25 {
		t.Fatalf("frame 1 PTS = %v, want %v", f1.PTS, float64(1)/25)
	}

	_, err = d.Next()
	if err != io.EOF {
		t.Fatalf("expected io.EOF after last frame, got %v", err)
	}
}

func TestDecoderShortTrailingRecordErrors(t *testing.T) {
	w, h := 4, 2
	r := bytes.NewReader(make([]byte, w*h-1))
	d := New(r, w, h, 25, 1)
	_, err := d.Next()
	if err == nil || err == io.EOF {
		t.Fatalf("expected a short-read error, got %v", err)
	}
}

func TestDecoderDoesNotRetainBorrowedBackingArray(t *testing.T) {
	w, h := 2, 2
	r := bytes.NewReader(bytes.Repeat([]byte{9}, w*h))
	d := New(r, w, h, 0, 1)
	f, err := d.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	f.Data[0] = 0
	// Mutating the returned frame must not corrupt the decoder's internal
	// reusable buffer for the next read.
	if d.buf[0] != 9 {
		t.Fatalf("internal buffer corrupted by caller mutation")
	}
}
