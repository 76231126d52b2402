//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 确保 Android 上设置和战绩的存储目录存在并可写
//
// gdata 在 Android 上写入 /data/data/{package}/ 下的子目录，但不会预先创建。
// 必须在 gdata.Open 之前调用。
func EnsureStorageDir() error {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return fmt.Errorf("failed to detect Android package: %w", err)
	}

	pkg := strings.TrimRight(strings.SplitN(string(cmdline), "\x00", 2)[0], "\n")
	if pkg == "" {
		return fmt.Errorf("failed to detect Android package: empty /proc/self/cmdline")
	}

	dir := filepath.Join("/data/data", pkg, "saves")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("storage directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}
