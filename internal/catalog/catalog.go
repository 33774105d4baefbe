// Package catalog keeps a small on-disk registry of named sensor datasets,
// typically one per country, so the compare and serve commands can resolve a
// name like "benin" to a CSV path.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NoonWatt/solarscan-cli/internal/utils"
)

// Dataset is one registered sensor CSV.
type Dataset struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Country string    `json:"country,omitempty"`
	Path    string    `json:"path"`
	AddedAt time.Time `json:"added_at"`
}

// Catalog is the persisted registry. Load it, mutate it, then Save.
type Catalog struct {
	Datasets map[string]*Dataset `json:"datasets"`

	// Not serialized: on-disk location of the catalog file.
	path string `json:"-"`
}

// Load reads the catalog at path. A missing file yields an empty catalog so
// the first `datasets add` does not need a separate init step.
func Load(path string) (*Catalog, error) {
	c := &Catalog{Datasets: make(map[string]*Dataset), path: path}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if err := json.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if c.Datasets == nil {
		c.Datasets = make(map[string]*Dataset)
	}
	c.path = path
	return c, nil
}

// Save persists the catalog, creating the parent directory if necessary.
func (c *Catalog) Save() error {
	if err := utils.EnsureDir(filepath.Dir(c.path)); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}
	b, err := utils.PrettyJSON(c)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(c.path, b)
}

// Add registers a CSV under the given name. The file must exist and the name
// must be unused.
func (c *Catalog) Add(name, country, csvPath string) (*Dataset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, errors.New("dataset name is required")
	}
	if _, exists := c.Datasets[name]; exists {
		return nil, fmt.Errorf("dataset %q already registered", name)
	}
	abs, err := filepath.Abs(csvPath)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("dataset file: %w", err)
	}
	d := &Dataset{
		ID:      uuid.New().String(),
		Name:    name,
		Country: country,
		Path:    abs,
		AddedAt: time.Now().UTC(),
	}
	c.Datasets[name] = d
	return d, nil
}

// Remove drops a dataset by name.
func (c *Catalog) Remove(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if _, ok := c.Datasets[name]; !ok {
		return fmt.Errorf("dataset %q not found", name)
	}
	delete(c.Datasets, name)
	return nil
}

// Get resolves a dataset by name.
func (c *Catalog) Get(name string) (*Dataset, error) {
	d, ok := c.Datasets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("dataset %q not found", name)
	}
	return d, nil
}

// List returns the datasets sorted by name.
func (c *Catalog) List() []*Dataset {
	out := make([]*Dataset, 0, len(c.Datasets))
	for _, d := range c.Datasets {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
