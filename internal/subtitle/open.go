package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ParserFor returns the parser for a format.
func ParserFor(format Format) (Parser, error) {
	switch format {
	case FormatSRT:
		return &SRTParser{}, nil
	case FormatVTT:
		return &VTTParser{}, nil
	case FormatLRC:
		return &LRCParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported subtitle format: %s", format)
	}
}

// Open reads and parses a subtitle file, picking the format from the
// file extension.
func Open(path string) (*Subtitle, error) {
	format, err := formatFromExtension(path)
	if err != nil {
		return nil, err
	}
	parser, err := ParserFor(format)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	sub, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	sub.Format = string(format)
	return sub, nil
}

func formatFromExtension(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		return FormatSRT, nil
	case ".vtt":
		return FormatVTT, nil
	case ".lrc":
		return FormatLRC, nil
	default:
		return "", fmt.Errorf("unsupported subtitle format: %s", ext)
	}
}
