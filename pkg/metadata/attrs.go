// Package metadata assembles the final metadata record from file
// attributes, the parsed mesh summary, and the validation report.
package metadata

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
)

// timeLayout is ISO-8601 without a zone suffix; timestamps are UTC.
// Fractional seconds appear only when the filesystem reports them.
const timeLayout = "2006-01-02T15:04:05.999999"

// FileAttributes holds the collaborator-supplied facts about the file
// being described. The core never derives these from the mesh.
type FileAttributes struct {
	Size     int64
	Checksum string
	Created  string
	Modified string
}

// Stat collects the attributes of the file at path: byte size, creation
// and modification timestamps, and the content checksum.
func Stat(path, algorithm string) (FileAttributes, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileAttributes{}, fmt.Errorf("failed to stat file: %w", err)
	}

	checksum, err := Checksum(path, algorithm)
	if err != nil {
		return FileAttributes{}, err
	}

	return FileAttributes{
		Size:     info.Size(),
		Checksum: checksum,
		Created:  creationTime(info).UTC().Format(timeLayout),
		Modified: info.ModTime().UTC().Format(timeLayout),
	}, nil
}

// Checksum computes the hex digest of the file at path, reading it in
// 8 KiB chunks so large uploads never load fully into memory.
func Checksum(path, algorithm string) (string, error) {
	hasher, err := newHasher(algorithm)
	if err != nil {
		return "", err
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if _, err := io.CopyBuffer(hasher, file, make([]byte, 8192)); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

func newHasher(algorithm string) (hash.Hash, error) {
	switch algorithm {
	case "", "sha256":
		return sha256.New(), nil
	case "sha1":
		return sha1.New(), nil
	case "sha512":
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("unsupported checksum algorithm %q", algorithm)
	}
}
