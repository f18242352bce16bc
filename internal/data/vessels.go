package data

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"laytime-calculator/internal/config"
	"laytime-calculator/internal/model"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrVesselNotFound = errors.New("vessel profile not found")

var vesselIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// VesselProfile is a stored profile together with its id (the file stem).
type VesselProfile struct {
	ID     string              `json:"id"`
	Vessel config.VesselConfig `json:"vessel"`
}

// VesselStore is a directory of vessel profile YAML files.
type VesselStore struct {
	dir string
	mu  sync.RWMutex
}

func NewVesselStore(dir string) *VesselStore {
	return &VesselStore{dir: dir}
}

func (s *VesselStore) Dir() string { return s.dir }

func ValidateVesselID(id string) error {
	if !vesselIDPattern.MatchString(id) {
		return &model.InvalidInputError{Field: "id", Reason: "must match " + vesselIDPattern.String()}
	}
	return nil
}

func (s *VesselStore) path(id string) string {
	return filepath.Join(s.dir, id+".yaml")
}

// List returns every readable profile sorted by id. Unreadable files are
// logged and skipped.
func (s *VesselStore) List() ([]VesselProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []VesselProfile{}, nil
		}
		return nil, errors.Wrapf(err, "read vessel dir %s", s.dir)
	}

	out := make([]VesselProfile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".yaml")
		v, err := config.LoadVesselFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			zap.S().Warnw("skipping vessel profile", "id", id, "error", err)
			continue
		}
		out = append(out, VesselProfile{ID: id, Vessel: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *VesselStore) Get(id string) (config.VesselConfig, error) {
	if err := ValidateVesselID(id); err != nil {
		return config.VesselConfig{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, err := config.LoadVesselFile(s.path(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.VesselConfig{}, errors.Wrap(ErrVesselNotFound, id)
		}
		return config.VesselConfig{}, err
	}
	return v, nil
}

// Profile loads a profile and converts it for the calculators.
func (s *VesselStore) Profile(id string) (model.VesselProfile, error) {
	v, err := s.Get(id)
	if err != nil {
		return model.VesselProfile{}, err
	}
	p, err := v.ToModel()
	if err != nil {
		return model.VesselProfile{}, err
	}
	return model.VesselProfile{ID: id, Params: p}, nil
}

// Save validates and writes a profile, replacing any existing one.
func (s *VesselStore) Save(id string, v config.VesselConfig) error {
	if err := ValidateVesselID(id); err != nil {
		return err
	}
	if err := v.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrapf(err, "create vessel dir %s", s.dir)
	}
	if err := config.SaveVesselFile(s.path(id), v); err != nil {
		return err
	}
	zap.S().Infow("saved vessel profile", "id", id, "mode", v.Mode)
	return nil
}
