// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/ik5/clicktrack/internal/audiotest"
)

// stubDecoder returns a short silent stereo source.
type stubDecoder struct {
	name string
}

func (d *stubDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &stubDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}

	if _, ok := registry.Get("flac"); ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_FormatKeys(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &stubDecoder{name: "aiff"}
	registry.Register(".AIFF", decoder)

	for _, key := range []string{"aiff", "AIFF", ".aiff", ".Aiff"} {
		got, ok := registry.Get(key)
		if !ok || got != decoder {
			t.Errorf("Registry.Get(%q) = %v, %v; want registered decoder", key, got, ok)
		}
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &stubDecoder{name: "v1"}
	second := &stubDecoder{name: "v2"}

	registry.Register("wav", first)
	registry.Register("WAV", second)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != second {
		t.Error("Registry.Get() did not return the overwritten decoder")
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wav := &stubDecoder{name: "wav"}
	registry.Register("wav", wav)

	tests := []struct {
		path    string
		wantErr error
	}{
		{path: "clicks/bar.wav"},
		{path: "/tmp/Song.WAV"},
		{path: "track.mp3", wantErr: ErrUnsupportedFormat},
		{path: "no-extension", wantErr: ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := registry.Lookup(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Lookup(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
			if tt.wantErr == nil && got != wav {
				t.Errorf("Lookup(%q) returned wrong decoder", tt.path)
			}
		})
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &stubDecoder{name: "test"}

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register("format", decoder)
		}()
		go func() {
			defer wg.Done()
			_, _ = registry.Get("format")
		}()
	}
	wg.Wait()

	got, ok := registry.Get("format")
	if !ok || got != decoder {
		t.Error("Registry returned wrong decoder after concurrent operations")
	}
}

func TestStubDecoder(t *testing.T) {
	t.Parallel()

	src, err := (&stubDecoder{}).Decode(nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Load(src, 44100); !errors.Is(err, ErrEmptyOrSilentAudio) {
		t.Errorf("Load(silent) error = %v, want %v", err, ErrEmptyOrSilentAudio)
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &stubDecoder{name: "wav"})

	for b.Loop() {
		_, _ = registry.Get("wav")
	}
}

func BenchmarkRegistry_Lookup(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &stubDecoder{name: "wav"})

	for b.Loop() {
		_, _ = registry.Lookup("clicks/quarter.wav")
	}
}
