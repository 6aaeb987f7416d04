package logsampler_test

import (
	"testing"
	"time"

	sampler "github.com/Rimpampa/winapi-sd-test/logsampler"
)

type recordingReporter struct {
	keys       []string
	suppressed []int64
}

func (r *recordingReporter) LogSummary(key string, suppressed int64) {
	r.keys = append(r.keys, key)
	r.suppressed = append(r.suppressed, suppressed)
}

func TestDeduplicatingSampler(t *testing.T) {
	t.Run("LogsFirstAndSuppressesSecond", func(t *testing.T) {
		s := sampler.NewDeduplicatingSampler(100*time.Millisecond, nil)
		defer s.Close()

		if should, _ := s.ShouldLog("key1"); !should {
			t.Fatal("first log should pass")
		}
		if should, _ := s.ShouldLog("key1"); should {
			t.Fatal("second log within window should be suppressed")
		}
	})

	t.Run("LogsAfterWindowAndReportsSuppressed", func(t *testing.T) {
		s := sampler.NewDeduplicatingSampler(50*time.Millisecond, nil)
		defer s.Close()

		s.ShouldLog("key1")
		for range 5 {
			s.ShouldLog("key1")
		}

		time.Sleep(60 * time.Millisecond)

		should, suppressed := s.ShouldLog("key1")
		if !should {
			t.Fatal("log after window should pass")
		}
		if suppressed != 5 {
			t.Fatalf("expected 5 suppressed logs reported, got %d", suppressed)
		}
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		s := sampler.NewDeduplicatingSampler(time.Minute, nil)
		defer s.Close()

		s.ShouldLog("key1")
		if should, _ := s.ShouldLog("key2"); !should {
			t.Fatal("a fresh key must not be suppressed by another key's window")
		}
	})

	t.Run("FlushReportsSuppressed", func(t *testing.T) {
		rep := &recordingReporter{}
		s := sampler.NewDeduplicatingSampler(time.Minute, rep)
		defer s.Close()

		s.ShouldLog("key1")
		s.ShouldLog("key1")
		s.ShouldLog("key1")
		s.Flush()

		if len(rep.keys) != 1 || rep.keys[0] != "key1" || rep.suppressed[0] != 2 {
			t.Fatalf("unexpected summary: keys=%v suppressed=%v", rep.keys, rep.suppressed)
		}

		// Counters reset after a flush.
		s.Flush()
		if len(rep.keys) != 1 {
			t.Fatalf("second flush reported again: keys=%v", rep.keys)
		}
	})
}
