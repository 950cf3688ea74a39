//go:build windows

package win

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/mj1618/taskbadge/internal/badge"
)

func TestOverlayer_ApplyMissingIcon(t *testing.T) {
	o := &Overlayer{}
	if err := o.ensureInit(); err != nil {
		t.Skipf("taskbar COM unavailable: %v", err)
	}
	missing := filepath.Join(t.TempDir(), "none.ico")
	err := o.Apply(badge.WindowRef(0), missing, "")
	if err == nil {
		t.Fatal("expected an error for a missing icon file")
	}
	if !strings.Contains(err.Error(), "failed to load icon") {
		t.Errorf("err = %v, want icon load failure", err)
	}
}

func TestOverlayer_CallsFromManyGoroutines(t *testing.T) {
	o := &Overlayer{}
	if err := o.ensureInit(); err != nil {
		t.Skipf("taskbar COM unavailable: %v", err)
	}
	missing := filepath.Join(t.TempDir(), "none.ico")
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := o.Apply(badge.WindowRef(0), missing, ""); err == nil {
				t.Error("expected an error for a missing icon file")
			}
		}()
	}
	wg.Wait()
}
