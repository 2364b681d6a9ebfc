package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestAtomicWriteFile tests atomic file writing
// TestAtomicWriteFile 测试原子文件写入
func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "config.yaml")

	if err := AtomicWriteFile(target, []byte("first"), 0600); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "first" {
		t.Errorf("content = %q, want %q", string(data), "first")
	}

	// Overwrite keeps the file consistent
	// 覆盖写入保持文件一致
	if err := AtomicWriteFile(target, []byte("second"), 0600); err != nil {
		t.Fatalf("AtomicWriteFile overwrite failed: %v", err)
	}
	data, _ = os.ReadFile(target)
	if string(data) != "second" {
		t.Errorf("content after overwrite = %q, want %q", string(data), "second")
	}

	// No temp files should remain
	// 不应残留临时文件
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory should contain only the target file, got %d entries", len(entries))
	}
}
