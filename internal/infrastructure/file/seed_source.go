package file

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"

	domain "github.com/mohammadpnp/user-accounts/internal/domain/account"
)

//go:embed seed_users.json
var defaultSeed []byte

var ErrInvalidSeed = errors.New("invalid seed")

// SeedSource reads seed documents from BaseDir, or the built-in seed when no
// path is given.
type SeedSource struct {
	BaseDir string
}

func NewSeedSource(baseDir string) *SeedSource {
	if baseDir == "" {
		baseDir = "."
	}
	return &SeedSource{BaseDir: baseDir}
}

func (s *SeedSource) Open(ctx context.Context, sourcePath string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(sourcePath) == "" {
		return io.NopCloser(bytes.NewReader(defaultSeed)), nil
	}

	path := sourcePath
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.BaseDir, sourcePath)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file %s: %w", path, err)
	}
	return file, nil
}

// Load opens and decodes a seed document.
func (s *SeedSource) Load(ctx context.Context, sourcePath string) ([]domain.User, error) {
	reader, err := s.Open(ctx, sourcePath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return DecodeSeed(reader)
}

type rawUser struct {
	Name      string   `json:"name"`
	FullName  string   `json:"full_name"`
	Addresses []string `json:"addresses"`
}

// DecodeSeed reads a JSON array of users. Every record must pass domain
// validation; the first invalid one fails the whole document.
func DecodeSeed(r io.Reader) ([]domain.User, error) {
	var raw []rawUser
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidSeed, err)
	}

	users := make([]domain.User, 0, len(raw))
	for i, record := range raw {
		user, err := domain.NewUser(record.Name, record.FullName, record.Addresses...)
		if err != nil {
			return nil, fmt.Errorf("%w: user at index %d: %w", ErrInvalidSeed, i, err)
		}
		users = append(users, user)
	}
	return users, nil
}
