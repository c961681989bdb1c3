package checkers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LegacyChecker verifies the legacy executable is present; logins cannot
// work without it.
type LegacyChecker struct {
	dir      string
	execName string
}

func NewLegacyChecker(dir, execName string) *LegacyChecker {
	return &LegacyChecker{dir: dir, execName: execName}
}

func (c *LegacyChecker) Name() string { return "legacy" }

func (c *LegacyChecker) Check(ctx context.Context) error {
	path := filepath.Join(c.dir, c.execName)
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
