package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProductCategories are the categories a product may be uploaded under.
// Each must name a bucket in the bucket map.
var ProductCategories = []string{
	"fashion",
	"beauty",
	"electronics",
	"home",
	"fitness",
	"food",
	"baby",
	"automotive",
	"pets",
	"gaming",
}

// FallbackBucket receives videos whose label is not in the map.
var FallbackBucket = Bucket{ID: 13, Name: "other"}

//go:embed buckets.yaml
var defaultBucketMapYAML []byte

// Bucket is a coarse commerce category shared by videos and products.
type Bucket struct {
	ID     int      `yaml:"id"`
	Name   string   `yaml:"name"`
	Labels []string `yaml:"labels,omitempty"`
}

type rawBucketMap struct {
	Fallback *Bucket  `yaml:"fallback"`
	Buckets  []Bucket `yaml:"buckets"`
}

// BucketMap resolves classifier labels and product categories to buckets.
type BucketMap struct {
	buckets  []Bucket
	byLabel  map[string]Bucket
	byName   map[string]Bucket
	fallback Bucket
}

// DefaultBucketMap returns the built-in map.
func DefaultBucketMap() *BucketMap {
	m, err := ParseBucketMap(defaultBucketMapYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in bucket map is invalid: %v", err))
	}
	return m
}

// LoadBucketMap reads a YAML bucket map. An empty path yields the built-in map.
func LoadBucketMap(path string) (*BucketMap, error) {
	if path == "" {
		return DefaultBucketMap(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bucket map %s: %w", path, err)
	}
	m, err := ParseBucketMap(data)
	if err != nil {
		return nil, fmt.Errorf("bucket map %s: %w", path, err)
	}
	return m, nil
}

// ParseBucketMap parses and validates a YAML bucket map.
func ParseBucketMap(data []byte) (*BucketMap, error) {
	var raw rawBucketMap
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing bucket map: %w", err)
	}

	m := &BucketMap{
		byLabel:  make(map[string]Bucket),
		byName:   make(map[string]Bucket),
		fallback: FallbackBucket,
	}
	if raw.Fallback != nil {
		m.fallback = Bucket{ID: raw.Fallback.ID, Name: normalize(raw.Fallback.Name)}
	}
	if m.fallback.ID < 0 || m.fallback.Name == "" {
		return nil, fmt.Errorf("fallback bucket needs id >= 0 and a name")
	}

	ids := map[int]string{m.fallback.ID: m.fallback.Name}
	m.byName[m.fallback.Name] = m.fallback

	for _, b := range raw.Buckets {
		b.Name = normalize(b.Name)
		if b.ID < 0 {
			return nil, fmt.Errorf("bucket %q: id must be >= 0", b.Name)
		}
		if b.Name == "" {
			return nil, fmt.Errorf("bucket %d: name must not be empty", b.ID)
		}
		if other, dup := ids[b.ID]; dup {
			return nil, fmt.Errorf("bucket %q: id %d already used by %q", b.Name, b.ID, other)
		}
		if _, dup := m.byName[b.Name]; dup {
			return nil, fmt.Errorf("bucket %q: duplicate name", b.Name)
		}
		ids[b.ID] = b.Name

		labels := make([]string, 0, len(b.Labels))
		for _, label := range b.Labels {
			label = normalize(label)
			if label == "" {
				continue
			}
			if prev, dup := m.byLabel[label]; dup {
				return nil, fmt.Errorf("label %q mapped to both %q and %q", label, prev.Name, b.Name)
			}
			labels = append(labels, label)
		}
		b.Labels = labels

		for _, label := range labels {
			m.byLabel[label] = b
		}
		m.byName[b.Name] = b
		m.buckets = append(m.buckets, b)
	}

	for _, category := range ProductCategories {
		if _, ok := m.byName[category]; !ok {
			return nil, fmt.Errorf("product category %q has no bucket", category)
		}
	}

	m.buckets = append(m.buckets, m.fallback)
	sort.Slice(m.buckets, func(i, j int) bool { return m.buckets[i].ID < m.buckets[j].ID })
	return m, nil
}

// ForLabel maps a classifier label to its bucket, or the fallback bucket.
func (m *BucketMap) ForLabel(label string) Bucket {
	if b, ok := m.byLabel[normalize(label)]; ok {
		return b
	}
	return m.fallback
}

// ForCategory maps a product category to its bucket.
func (m *BucketMap) ForCategory(category string) (Bucket, bool) {
	category = normalize(category)
	if !isProductCategory(category) {
		return Bucket{}, false
	}
	b, ok := m.byName[category]
	return b, ok
}

// Buckets returns every bucket, fallback included, ordered by id.
func (m *BucketMap) Buckets() []Bucket {
	out := make([]Bucket, len(m.buckets))
	copy(out, m.buckets)
	return out
}

func isProductCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
