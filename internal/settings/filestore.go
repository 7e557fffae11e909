package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const (
	// AppName names the directory under the user config dir.
	AppName = "graphdrawer"

	fileName    = "settings.yaml"
	fileVersion = 1
)

var (
	// ErrNewerVersion is returned for settings files written by a newer release.
	ErrNewerVersion = errors.New("settings file is from a newer release")
	// ErrNotLoaded is returned by Save after the existing file could not be read.
	ErrNotLoaded = errors.New("settings file could not be read, not overwriting it")
)

type versionHeader struct {
	FileVersion int `yaml:"file_version"`
}

type document struct {
	FileVersion int `yaml:"file_version"`
	Settings    `yaml:",inline"`
}

// FileStore keeps settings in a YAML file.
type FileStore struct {
	path string
	log  *logrus.Entry

	mu      sync.Mutex
	saved   *Settings
	loadErr error
}

// DefaultPath returns settings.yaml in the per-user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determining configuration path: %w", err)
	}
	return filepath.Join(dir, AppName, fileName), nil
}

// NewFileStore returns a store backed by path.
func NewFileStore(path string, log *logrus.Entry) *FileStore {
	return &FileStore{path: path, log: log.WithField("settings", path)}
}

// Path returns the settings file location.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the settings file. A missing file yields zero Settings.
// After a failed Load, Save refuses to replace the file.
func (f *FileStore) Load() (Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, err := f.load()
	f.loadErr = err
	return s, err
}

func (f *FileStore) load() (Settings, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		f.log.Debug("settings file does not exist yet, using defaults")
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}

	var header versionHeader
	if err := yaml.Unmarshal(data, &header); err != nil {
		return Settings{}, fmt.Errorf("parsing settings version: %w", err)
	}
	// Avoid dropping unknown fields written by a newer release.
	if header.FileVersion > fileVersion {
		return Settings{}, fmt.Errorf("%w: version %d, supported %d", ErrNewerVersion, header.FileVersion, fileVersion)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	loaded := doc.Settings
	f.saved = &loaded
	f.log.WithField("mode", loaded.Mode).Debug("settings loaded")
	return doc.Settings, nil
}

// Save writes s unless it equals what was last loaded or saved.
func (f *FileStore) Save(s Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loadErr != nil {
		return fmt.Errorf("%w: %v", ErrNotLoaded, f.loadErr)
	}
	if f.saved != nil && cmp.Equal(*f.saved, s) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	data, err := yaml.Marshal(document{FileVersion: fileVersion, Settings: s})
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	// Writing may fail, so we write to a temporary file and replace afterwards.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replacing settings: %w", err)
	}

	saved := s
	f.saved = &saved
	f.log.Debug("settings saved")
	return nil
}
