package icons

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/bmp"
)

// Entry is one .ico file in the icons inventory.
type Entry struct {
	Stem   string
	Path   string
	Size   int64
	Subdir string
}

// Inventory lists the .ico files directly under root, plus the workspace
// subdirectory when one is configured. A missing subdirectory is fine; a
// missing root is not.
func Inventory(root, workspaceSubdir string) ([]Entry, error) {
	entries, err := listDir(root, "")
	if err != nil {
		return nil, err
	}
	if workspaceSubdir != "" {
		sub, err := listDir(filepath.Join(root, workspaceSubdir), workspaceSubdir)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		entries = append(entries, sub...)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Subdir != entries[j].Subdir {
			return entries[i].Subdir < entries[j].Subdir
		}
		return entries[i].Stem < entries[j].Stem
	})
	return entries, nil
}

func listDir(dir, subdir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read icons dir: %w", err)
	}
	var out []Entry
	for _, de := range dirents {
		if de.IsDir() || !strings.EqualFold(filepath.Ext(de.Name()), ".ico") {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		out = append(out, Entry{
			Stem:   strings.TrimSuffix(de.Name(), filepath.Ext(de.Name())),
			Path:   filepath.Join(dir, de.Name()),
			Size:   info.Size(),
			Subdir: subdir,
		})
	}
	return out, nil
}

// Frame describes one image inside an .ico container.
type Frame struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Bits   int    `json:"bits"`
	Format string `json:"format"`
}

const (
	dirHeaderLen = 6
	dirEntryLen  = 16
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Inspect parses an .ico container and decodes every frame header.
// Frames are stored either as PNG or as a headerless DIB.
func Inspect(data []byte) ([]Frame, error) {
	if len(data) < dirHeaderLen {
		return nil, fmt.Errorf("not an ico file: %d bytes", len(data))
	}
	if binary.LittleEndian.Uint16(data[0:2]) != 0 {
		return nil, errors.New("not an ico file: bad reserved field")
	}
	if typ := binary.LittleEndian.Uint16(data[2:4]); typ != 1 {
		return nil, fmt.Errorf("not an icon resource: type %d", typ)
	}
	count := int(binary.LittleEndian.Uint16(data[4:6]))
	if count == 0 {
		return nil, errors.New("ico container holds no images")
	}
	frames := make([]Frame, 0, count)
	for i := 0; i < count; i++ {
		off := dirHeaderLen + i*dirEntryLen
		if off+dirEntryLen > len(data) {
			return nil, fmt.Errorf("truncated icon directory at entry %d", i)
		}
		entry := data[off : off+dirEntryLen]
		bits := int(binary.LittleEndian.Uint16(entry[6:8]))
		imgSize := int64(binary.LittleEndian.Uint32(entry[8:12]))
		imgOff := int64(binary.LittleEndian.Uint32(entry[12:16]))
		if imgOff+imgSize > int64(len(data)) {
			return nil, fmt.Errorf("frame %d overruns the file", i)
		}
		f, err := decodeFrame(data[imgOff : imgOff+imgSize])
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		f.Bits = bits
		frames = append(frames, f)
	}
	return frames, nil
}

// CheckFile reads and validates one .ico file.
func CheckFile(path string) ([]Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read icon: %w", err)
	}
	return Inspect(data)
}

func decodeFrame(img []byte) (Frame, error) {
	if bytes.HasPrefix(img, pngSignature) {
		cfg, err := png.DecodeConfig(bytes.NewReader(img))
		if err != nil {
			return Frame{}, fmt.Errorf("bad png frame: %w", err)
		}
		return Frame{Width: cfg.Width, Height: cfg.Height, Format: "png"}, nil
	}
	cfg, err := bmp.DecodeConfig(bytes.NewReader(rewrapDIB(img)))
	if err != nil {
		return Frame{}, fmt.Errorf("bad bmp frame: %w", err)
	}
	return Frame{Width: cfg.Width, Height: cfg.Height, Format: "bmp"}, nil
}

// rewrapDIB turns the headerless DIB stored in an .ico frame back into a
// standalone BMP so the bmp decoder can parse it. The stored height
// counts both the color and the mask bitmap, so it is halved here.
func rewrapDIB(dib []byte) []byte {
	if len(dib) < 40 {
		return dib
	}
	hdrSize := binary.LittleEndian.Uint32(dib[0:4])
	if hdrSize < 40 {
		return dib
	}
	fixed := make([]byte, len(dib))
	copy(fixed, dib)
	if height := int32(binary.LittleEndian.Uint32(fixed[8:12])); height > 0 {
		binary.LittleEndian.PutUint32(fixed[8:12], uint32(height/2))
	}

	bitCount := binary.LittleEndian.Uint16(fixed[14:16])
	palette := uint32(0)
	if bitCount <= 8 {
		colors := binary.LittleEndian.Uint32(fixed[32:36])
		if colors == 0 {
			colors = 1 << bitCount
		}
		palette = colors * 4
	}

	out := make([]byte, 0, 14+len(fixed))
	out = append(out, 'B', 'M')
	out = binary.LittleEndian.AppendUint32(out, uint32(14+len(fixed)))
	out = binary.LittleEndian.AppendUint32(out, 0)
	out = binary.LittleEndian.AppendUint32(out, 14+hdrSize+palette)
	return append(out, fixed...)
}
