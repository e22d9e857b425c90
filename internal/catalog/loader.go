package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/styleloom/stylist/internal/domain"
)

// itemDTO is the YAML shape of a catalog entry.
type itemDTO struct {
	ID        string   `yaml:"id"`
	Title     string   `yaml:"title"`
	Category  string   `yaml:"category"`
	Colors    []string `yaml:"colors"`
	Styles    []string `yaml:"styles"`
	Occasions []string `yaml:"occasions"`
	Price     float64  `yaml:"price"`
	Rating    float64  `yaml:"rating"`
	ImageURL  string   `yaml:"image_url"`
}

type catalogFile struct {
	Items []itemDTO `yaml:"items"`
}

// LoadFile reads a YAML catalog file and builds the catalog.
// Any malformed entry or duplicate id fails the whole load.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	items := make([]domain.Item, len(f.Items))
	for i, dto := range f.Items {
		items[i] = dto.toDomain()
	}

	c, err := New(items)
	if err != nil {
		return nil, fmt.Errorf("build catalog %s: %w", path, err)
	}
	return c, nil
}

func (d itemDTO) toDomain() domain.Item {
	return domain.Item{
		ID:        d.ID,
		Title:     d.Title,
		Category:  domain.Category(strings.ToLower(d.Category)),
		Colors:    d.Colors,
		Styles:    d.Styles,
		Occasions: d.Occasions,
		Price:     d.Price,
		Rating:    d.Rating,
		ImageURL:  d.ImageURL,
	}
}
