package cmd

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mj1618/taskbadge/internal/config"
)

// writeDecodableIcon writes a minimal single-frame .ico (one 16x16 PNG
// frame) that the icon checker accepts.
func writeDecodableIcon(t *testing.T, dir, stem string) {
	t.Helper()
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, image.NewRGBA(image.Rect(0, 0, 16, 16))); err != nil {
		t.Fatal(err)
	}
	frame := pngBuf.Bytes()

	buf := make([]byte, 0, 22+len(frame))
	buf = binary.LittleEndian.AppendUint16(buf, 0) // reserved
	buf = binary.LittleEndian.AppendUint16(buf, 1) // icon type
	buf = binary.LittleEndian.AppendUint16(buf, 1) // frame count
	buf = append(buf, 16, 16, 0, 0)
	buf = binary.LittleEndian.AppendUint16(buf, 1)
	buf = binary.LittleEndian.AppendUint16(buf, 32)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(frame)))
	buf = binary.LittleEndian.AppendUint32(buf, 22)
	buf = append(buf, frame...)

	if err := os.WriteFile(filepath.Join(dir, stem+".ico"), buf, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCheckIconsRoot_Missing(t *testing.T) {
	cfg := config.Config{IconsRoot: filepath.Join(t.TempDir(), "nope")}
	r := checkIconsRoot(cfg)
	if r.Status != "✗" {
		t.Errorf("status = %q for missing root, want ✗", r.Status)
	}
	if !strings.Contains(r.Details, "does not exist") {
		t.Errorf("details = %q, want a does-not-exist hint", r.Details)
	}
}

func TestCheckIconsRoot_Empty(t *testing.T) {
	cfg := config.Config{IconsRoot: t.TempDir()}
	r := checkIconsRoot(cfg)
	if r.Status != "⚠" {
		t.Errorf("status = %q for empty root, want ⚠", r.Status)
	}
}

func TestCheckIconsRoot_WithIcons(t *testing.T) {
	dir := t.TempDir()
	writeDecodableIcon(t, dir, "api")
	cfg := config.Config{IconsRoot: dir}
	r := checkIconsRoot(cfg)
	if r.Status != "✓" {
		t.Errorf("status = %q, want ✓ (details: %s)", r.Status, r.Details)
	}
}

func TestCheckIconFiles_AllDecode(t *testing.T) {
	dir := t.TempDir()
	writeDecodableIcon(t, dir, "api")
	writeDecodableIcon(t, dir, "web")
	cfg := config.Config{IconsRoot: dir}
	r := checkIconFiles(cfg)
	if r.Status != "✓" {
		t.Errorf("status = %q, want ✓ (details: %s)", r.Status, r.Details)
	}
}

func TestCheckIconFiles_Broken(t *testing.T) {
	dir := t.TempDir()
	writeDecodableIcon(t, dir, "api")
	if err := os.WriteFile(filepath.Join(dir, "broken.ico"), []byte("not an icon"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Config{IconsRoot: dir}
	r := checkIconFiles(cfg)
	if r.Status != "✗" {
		t.Errorf("status = %q with a broken icon, want ✗", r.Status)
	}
	if !strings.Contains(r.Details, "broken") {
		t.Errorf("details = %q, want the broken stem named", r.Details)
	}
}

func TestDoctorCommand_IsRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "doctor" {
			return
		}
	}
	t.Error("doctor command not registered on root")
}

func TestDoctorCommand_QuietFlag(t *testing.T) {
	if f := doctorCmd.Flags().Lookup("quiet"); f == nil {
		t.Error("expected flag \"quiet\" not found")
	}
}
