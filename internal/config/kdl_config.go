package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// LoadKDL loads a .tqa.kdl file from projectRoot, returning (nil, nil)
// when the file is absent so the caller falls back to Default (spec §4.6).
func LoadKDL(projectRoot string) (*QAConfig, error) {
	kdlPath := filepath.Join(projectRoot, ".tqa.kdl")

	if _, err := os.Stat(kdlPath); os.IsNotExist(err) {
		return nil, nil
	}

	content, err := os.ReadFile(kdlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .tqa.kdl: %w", err)
	}

	return parseKDL(string(content))
}

func parseKDL(content string) (*QAConfig, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "rules":
			for _, cn := range n.Children {
				name := nodeName(cn)
				if b, ok := firstBoolArg(cn); ok {
					cfg.Rules[name] = b
				}
			}
		case "max_length_ratio":
			if v, ok := firstFloatArg(n); ok {
				cfg.MaxLengthRatio = v
			}
		case "check_html_tags":
			if b, ok := firstBoolArg(n); ok {
				cfg.CheckHTMLTags = b
			}
		case "check_xml_tags":
			if b, ok := firstBoolArg(n); ok {
				cfg.CheckXMLTags = b
			}
		case "check_placeholders":
			if b, ok := firstBoolArg(n); ok {
				cfg.CheckPlaceholders = b
			}
		case "case_sensitive":
			if b, ok := firstBoolArg(n); ok {
				cfg.CaseSensitive = b
			}
		case "ignore_patterns":
			cfg.IgnorePatterns = append(cfg.IgnorePatterns, collectStringArgs(n)...)
		case "custom_placeholders":
			cfg.CustomPlaceholders = append(cfg.CustomPlaceholders, collectStringArgs(n)...)
		case "glossary":
			if s, ok := firstStringArg(n); ok {
				cfg.GlossaryPath = s
			}
		}
	}

	return cfg, nil
}

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

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
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

	if len(out) == 0 && len(n.Children) > 0 {
		out = make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}

	return out
}
