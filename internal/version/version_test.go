package version

import "testing"

// TestVersionSet tests that a build version is always present
// TestVersionSet 测试构建版本始终存在
func TestVersionSet(t *testing.T) {
	if Version == "" {
		t.Fatal("Version must not be empty")
	}
	if Version != "dev" {
		t.Logf("Version overridden at link time: %s", Version)
	}
}
