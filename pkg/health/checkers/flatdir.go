package checkers

import (
	"context"
	"fmt"
	"os"

	"github.com/incollege/backend/pkg/storage/flatdir"
)

// FlatDirChecker verifies the record directory still exists and is a
// directory; without it every table operation fails.
type FlatDirChecker struct {
	store *flatdir.Store
}

func NewFlatDirChecker(store *flatdir.Store) *FlatDirChecker {
	return &FlatDirChecker{store: store}
}

func (c *FlatDirChecker) Name() string { return "flatdir" }

func (c *FlatDirChecker) Check(ctx context.Context) error {
	info, err := os.Stat(c.store.Dir())
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", c.store.Dir())
	}
	return nil
}
