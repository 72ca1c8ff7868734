// Package config loads project configuration from a .stepvis.kdl file.
// Every field has a working default; the file only overrides, and CLI flags
// override the file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	"github.com/stepvis/stepvis/internal/errors"
	"github.com/stepvis/stepvis/internal/fuzzy"
	"github.com/stepvis/stepvis/internal/lexicon"
	"github.com/stepvis/stepvis/internal/scoring"
)

// ConfigFileName is looked up in the working directory (or --root).
const ConfigFileName = ".stepvis.kdl"

// Config is the full project configuration.
type Config struct {
	Scoring scoring.Config
	DataDir string

	// Lexicon additions layered over the built-in tables.
	Lexicon lexicon.Overlay
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Scoring: scoring.DefaultConfig(),
		DataDir: "data",
	}
}

// Load reads root/.stepvis.kdl when present, otherwise returns defaults.
func Load(root string) (*Config, error) {
	path := filepath.Join(root, ConfigFileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, errors.NewConfigError("file", path, err)
	}

	cfg, err := parse(string(data))
	if err != nil {
		return nil, errors.NewConfigError("file", path, err)
	}
	return cfg, nil
}

func parse(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, err
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "scoring":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "threshold":
					if v, ok := firstFloatArg(cn); ok {
						cfg.Scoring.Threshold = v
					}
				case "max_image_reuse":
					if v, ok := firstIntArg(cn); ok {
						cfg.Scoring.MaxImageReuse = v
					}
				case "diversity_penalty":
					if v, ok := firstFloatArg(cn); ok {
						cfg.Scoring.DiversityPenalty = v
					}
				case "debug":
					if v, ok := firstBoolArg(cn); ok {
						cfg.Scoring.Debug = v
					}
				}
			}
		case "fuzzy":
			for _, cn := range n.Children {
				if nodeName(cn) == "algorithm" {
					if v, ok := firstStringArg(cn); ok {
						cfg.Scoring.FuzzyAlgorithm = fuzzy.Algorithm(v)
					}
				}
			}
		case "data":
			for _, cn := range n.Children {
				if nodeName(cn) == "dir" {
					if v, ok := firstStringArg(cn); ok {
						cfg.DataDir = v
					}
				}
			}
		case "lexicon":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "domain":
					// domain "payment" "billing" "pay": first arg is the
					// concept, the rest are synonyms
					args := collectStringArgs(cn)
					if len(args) >= 2 {
						if cfg.Lexicon.Domains == nil {
							cfg.Lexicon.Domains = make(map[string][]string)
						}
						cfg.Lexicon.Domains[args[0]] = append(cfg.Lexicon.Domains[args[0]], args[1:]...)
					}
				case "verbs":
					// verbs "click" "smash": first arg is the action name
					args := collectStringArgs(cn)
					if len(args) >= 2 {
						if cfg.Lexicon.Verbs == nil {
							cfg.Lexicon.Verbs = make(map[string][]string)
						}
						cfg.Lexicon.Verbs[args[0]] = append(cfg.Lexicon.Verbs[args[0]], args[1:]...)
					}
				}
			}
		}
	}

	return cfg, nil
}

// Helper functions over the kdl-go document model.

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstFloatArg(n *document.Node) (float64, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
