package mediahost

import (
	"bytes"
	"io"
	"testing"
)

func TestProgressReaderReportsCumulativeBytes(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte("x"), 1000)
	var reports []int64
	r := newProgressReader(bytes.NewReader(payload), int64(len(payload)), func(uploaded, total int64) {
		if total != int64(len(payload)) {
			t.Fatalf("total=%d, want %d", total, len(payload))
		}
		reports = append(reports, uploaded)
	})

	got, err := io.ReadAll(io.LimitReader(r, 1<<20))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload corrupted in transit")
	}

	if len(reports) == 0 {
		t.Fatalf("no progress reported")
	}
	var prev int64
	for _, n := range reports {
		if n < prev {
			t.Fatalf("progress went backwards: %v", reports)
		}
		prev = n
	}
	if prev != int64(len(payload)) {
		t.Fatalf("final report=%d, want %d", prev, len(payload))
	}
}
