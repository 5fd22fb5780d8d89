package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"overlaybot/types"

	"gopkg.in/yaml.v3"
)

// LoadRenderRequest reads a render request from a .json, .yaml or .yml file.
// A bare list of overlays is accepted as well; Input/Output are then left empty.
func LoadRenderRequest(path string) (types.RenderRequest, error) {
	var req types.RenderRequest

	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := DecodeRenderRequest(data, filepath.Ext(path), &req); err != nil {
		return req, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return req, nil
}

// DecodeRenderRequest decodes data according to the file extension ext.
func DecodeRenderRequest(data []byte, ext string, req *types.RenderRequest) error {
	trimmed := strings.TrimSpace(string(data))

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if strings.HasPrefix(trimmed, "-") {
			return yaml.Unmarshal(data, &req.Overlays)
		}
		return yaml.Unmarshal(data, req)
	case ".json", ".txt", "":
		if strings.HasPrefix(trimmed, "[") {
			return json.Unmarshal(data, &req.Overlays)
		}
		return json.Unmarshal(data, req)
	default:
		return fmt.Errorf("unsupported config extension %q", ext)
	}
}
