package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/komsit37/sportstrader/pkg/st/payload"
	"github.com/komsit37/sportstrader/pkg/st/types"
)

// FileSource loads payloads from a local YAML or JSON file, or from every such file in a directory.
//
// A file is either a bare list of market records or a mapping with optional
// "markets" and "filters_by_sports" keys.
type FileSource struct {
	Path string
}

// Markets returns the records of all loaded documents, in file order.
func (s FileSource) Markets(ctx context.Context) (payload.Payload, error) {
	docs, err := s.load()
	if err != nil {
		return nil, err
	}
	var (
		recs  []types.RawMarketRecord
		found bool
	)
	for _, d := range docs {
		if d.kind == 0 || (d.kind == yaml.MappingNode && !d.has("markets")) {
			continue
		}
		p, err := payload.DecodeMarkets(d.json)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.path, err)
		}
		recs = append(recs, payload.Records(p)...)
		found = true
	}
	if !found {
		return payload.Empty{}, nil
	}
	return payload.MarketList{Records: recs}, nil
}

// Filters returns the filter config of the first document that carries one.
func (s FileSource) Filters(ctx context.Context) (payload.Payload, error) {
	docs, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		if d.kind != yaml.MappingNode || !d.has(payload.SportsKey) {
			continue
		}
		p, err := payload.DecodeFilterConfig(d.json)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.path, err)
		}
		return p, nil
	}
	return payload.Empty{}, nil
}

type document struct {
	path string
	kind yaml.Kind
	keys []string
	json []byte
}

func (d document) has(key string) bool {
	for _, k := range d.keys {
		if k == key {
			return true
		}
	}
	return false
}

func (s FileSource) load() ([]document, error) {
	info, err := os.Stat(s.Path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		d, err := readDocument(s.Path)
		if err != nil {
			return nil, err
		}
		return []document{d}, nil
	}

	var files []string
	err = filepath.WalkDir(s.Path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(d.Name())) {
		case ".yaml", ".yml", ".json":
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	docs := make([]document, 0, len(files))
	for _, f := range files {
		d, err := readDocument(f)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}

func readDocument(path string) (document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document{}, fmt.Errorf("read %s: %w", path, err)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return document{}, fmt.Errorf("parse %s: %w", path, err)
	}
	d := document{path: path}
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	d.kind = node.Kind
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			d.keys = append(d.keys, node.Content[i].Value)
		}
	}
	var buf bytes.Buffer
	if err := writeJSON(&buf, node); err != nil {
		return document{}, fmt.Errorf("convert %s: %w", path, err)
	}
	d.json = buf.Bytes()
	return d, nil
}

// writeJSON renders a YAML node as JSON, keeping mapping key order.
func writeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Kind {
	case 0:
		buf.WriteString("null")
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeJSON(buf, n.Content[0])
	case yaml.AliasNode:
		return writeJSON(buf, n.Alias)
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, c := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, c); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, _ := json.Marshal(n.Content[i].Value)
			buf.Write(k)
			buf.WriteByte(':')
			if err := writeJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return err
		}
		b, err := json.Marshal(v)
		if err != nil {
			// Values JSON cannot carry (.inf, .nan) are kept as text.
			b, _ = json.Marshal(n.Value)
		}
		buf.Write(b)
	default:
		return fmt.Errorf("unsupported yaml node kind %d", n.Kind)
	}
	return nil
}
