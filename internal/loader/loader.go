// Package loader reads species directories and video records from JSON or
// YAML files.
package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/feederwatch/dashboard/internal/errors"
	"github.com/feederwatch/dashboard/internal/logger"
	"github.com/feederwatch/dashboard/internal/overlay"
	"github.com/feederwatch/dashboard/internal/taxonomy"
)

// Format is a supported document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf("unsupported file extension %q, expected .json, .yaml or .yml", filepath.Ext(path)).
			Category(errors.CategoryValidation).
			FileContext(path).
			Build()
	}
}

// GetLogger returns the loader package logger.
func GetLogger() logger.Logger {
	return logger.Global().Module("loader")
}

// LoadSpecies reads a flat species list from path.
func LoadSpecies(path string) ([]taxonomy.Species, error) {
	var species []taxonomy.Species
	if err := decodeFile(path, &species); err != nil {
		return nil, err
	}
	if species == nil {
		species = []taxonomy.Species{}
	}
	GetLogger().Debug("Loaded species list",
		logger.String("path", path),
		logger.Int("records", len(species)))
	return species, nil
}

// ReadSpecies decodes a flat species list from r.
func ReadSpecies(r io.Reader, format Format) ([]taxonomy.Species, error) {
	var species []taxonomy.Species
	if err := decode(r, format, &species, "stream"); err != nil {
		return nil, err
	}
	if species == nil {
		species = []taxonomy.Species{}
	}
	return species, nil
}

// LoadVideo reads a video record from path.
func LoadVideo(path string) (*overlay.Video, error) {
	video := &overlay.Video{}
	if err := decodeFile(path, video); err != nil {
		return nil, err
	}
	GetLogger().Debug("Loaded video record",
		logger.String("path", path),
		logger.String("video_id", video.ID),
		logger.Int("detections", len(video.Detections)),
		logger.Int("tracks", len(video.Tracks)))
	return video, nil
}

// ReadVideo decodes a video record from r.
func ReadVideo(r io.Reader, format Format) (*overlay.Video, error) {
	video := &overlay.Video{}
	if err := decode(r, format, video, "stream"); err != nil {
		return nil, err
	}
	return video, nil
}

func decodeFile(path string, into any) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.New(fmt.Errorf("read %s: %w", filepath.Base(path), err)).
			Category(errors.CategoryFileIO).
			FileContext(path).
			Build()
	}

	return decode(bytes.NewReader(data), format, into, filepath.Base(path))
}

// decode reads one document from r. source names the input in errors.
func decode(r io.Reader, format Format, into any, source string) error {
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(into)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(into)
		if errors.Is(err, io.EOF) {
			// An empty YAML document decodes to the zero value.
			err = nil
		}
	default:
		return errors.Newf("unsupported format %q", format).
			Category(errors.CategoryValidation).
			Build()
	}

	if err != nil {
		return errors.New(fmt.Errorf("decode %s %s: %w", format, source, err)).
			Category(errors.CategoryFileParsing).
			Context("format", string(format)).
			Context("source", source).
			Build()
	}
	return nil
}
