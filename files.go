// SPDX-License-Identifier: EPL-2.0

package clicktrack

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/clicktrack/audio"
	"github.com/ik5/clicktrack/click"
	"github.com/ik5/clicktrack/formats/aiff"
	"github.com/ik5/clicktrack/formats/mp3"
	"github.com/ik5/clicktrack/formats/smf"
	"github.com/ik5/clicktrack/formats/vorbis"
	"github.com/ik5/clicktrack/formats/wav"
)

// NewRegistry returns a registry with every built-in decoder, keyed by file
// extension.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

// DefaultOutput is input with its extension replaced by ".mid".
func DefaultOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".mid"
}

// Files names the recordings of one conversion.
type Files struct {
	Input string
	// Output defaults to DefaultOutput(Input).
	Output string
	// Templates maps divisions to reference click recordings. Divisions
	// with an empty path are skipped.
	Templates map[click.Division]string
}

type openFile struct {
	f   *os.File
	src audio.Source
}

func (o openFile) close() error {
	return errors.Join(o.src.Close(), o.f.Close())
}

func open(reg *audio.Registry, path string) (openFile, error) {
	dec, err := reg.Lookup(path)
	if err != nil {
		return openFile{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return openFile{}, fmt.Errorf("%w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return openFile{}, fmt.Errorf("%s: %w", path, err)
	}

	return openFile{f: f, src: src}, nil
}

// ConvertFile decodes the files named by files, converts them with cfg and
// writes the result as a MIDI file. It returns the conversion result and the
// path written.
func ConvertFile(files Files, cfg Config) (res *Result, output string, err error) {
	reg := NewRegistry()

	output = files.Output
	if output == "" {
		output = DefaultOutput(files.Input)
	}

	var opened []openFile
	defer func() {
		for _, o := range opened {
			err = errors.Join(err, o.close())
		}
	}()

	track, err := open(reg, files.Input)
	if err != nil {
		return nil, "", err
	}
	opened = append(opened, track)

	for d := range files.Templates {
		if !d.Valid() {
			return nil, "", fmt.Errorf("%w: %d", click.ErrUnknownDivision, int(d))
		}
	}

	var templates []TemplateSource
	for _, d := range click.Divisions {
		path := files.Templates[d]
		if path == "" {
			continue
		}

		t, err := open(reg, path)
		if err != nil {
			return nil, "", fmt.Errorf("%s click: %w", d, err)
		}
		opened = append(opened, t)

		templates = append(templates, TemplateSource{Division: d, Name: path, Source: t.src})
	}

	res, err = Convert(track.src, templates, cfg)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", files.Input, err)
	}

	if err := smf.WriteFile(output, res.Timeline); err != nil {
		return nil, "", err
	}

	cfg.logger().WithField("path", output).Info("wrote MIDI file")

	return res, output, nil
}
