// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// fileAssetStorage is the file-system implementation of [AssetStorage].
//
// Every lookup goes through an [os.Root] opened on dir, so even a name that
// passes validation cannot reach a file outside dir (for example through a
// symlink pointing elsewhere).
type fileAssetStorage struct {
	dir string
}

// NewFileAssetStorage constructs an [AssetStorage] rooted at dir.
// The directory does not have to exist yet; lookups fail with
// [ErrAssetNotFound] until it does.
func NewFileAssetStorage(dir string) AssetStorage {
	return &fileAssetStorage{dir: dir}
}

// Open validates name, resolves it inside the root and opens it.
//
// Returns [ErrInvalidAssetPath] for names that could leave the root,
// [ErrAssetNotFound] for missing files and directories, and
// [ErrReadingAsset] for other I/O failures.
func (s *fileAssetStorage) Open(ctx context.Context, name string) (*Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	localName, err := localAssetName(name)
	if err != nil {
		return nil, err
	}

	root, err := os.OpenRoot(s.dir)
	if err != nil {
		return nil, mapOpenError(name, err)
	}
	defer root.Close()

	f, err := root.Open(localName)
	if err != nil {
		return nil, mapOpenError(name, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w %q: %w", ErrReadingAsset, name, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %q is a directory", ErrAssetNotFound, name)
	}

	return &Asset{
		Name:    name,
		ModTime: info.ModTime(),
		Size:    info.Size(),
		Content: f,
	}, nil
}

// ReadFile opens name and reads it to the end.
func (s *fileAssetStorage) ReadFile(ctx context.Context, name string) ([]byte, error) {
	asset, err := s.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer asset.Content.Close()

	data, err := io.ReadAll(asset.Content)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadingAsset, name, err)
	}

	return data, nil
}

// localAssetName converts a slash-separated request name into a local
// relative path, rejecting anything that is not strictly below the root.
func localAssetName(name string) (string, error) {
	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, `\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAssetPath, name)
	}

	for _, segment := range strings.Split(name, "/") {
		if segment == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidAssetPath, name)
		}
	}

	localName := filepath.FromSlash(name)
	if !filepath.IsLocal(localName) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAssetPath, name)
	}

	return localName, nil
}

// mapOpenError turns an error from os.Root into a storage sentinel.
// Permission problems are I/O failures; everything else, including
// attempts to escape the root, is reported as not found.
func mapOpenError(name string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w %q: %w", ErrReadingAsset, name, err)
	}
	return fmt.Errorf("%w: %q: %w", ErrAssetNotFound, name, err)
}
