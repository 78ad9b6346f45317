// Package theme persists the user's twelve-color sequence as a flat
// YAML map of role name to hex color. Missing files, malformed YAML,
// unknown roles or bad hex values all silently revert to the default
// sequence; the renderer never sees a theme error
package theme

import (
	"fmt"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"

	"github.com/nnchaudhuri/skyclock/render"
	"github.com/nnchaudhuri/skyclock/sky"
)

// roleNames maps sequence indices to stable file keys, by chronological order
var roleNames = [sky.SequenceLen]string{
	"sun",
	"moon",
	"night-morning",
	"nautical-dawn",
	"civil-dawn",
	"sunrise",
	"morning",
	"noon",
	"afternoon",
	"sunset",
	"dusk",
	"night-evening",
}

type fileFormat struct {
	Colors map[string]string `yaml:"colors"`
}

// Load reads the sequence from path. Any defect falls back to the
// default sequence; the error return is informational only
func Load(path string) (sky.ColorSequence, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return sky.DefaultSequence(), err
	}

	var f fileFormat
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return sky.DefaultSequence(), fmt.Errorf("parse %s: %w", path, err)
	}
	if len(f.Colors) != sky.SequenceLen {
		return sky.DefaultSequence(), fmt.Errorf("%s: need %d colors, found %d", path, sky.SequenceLen, len(f.Colors))
	}

	var seq sky.ColorSequence
	for i, role := range roleNames {
		hex, present := f.Colors[role]
		if !present {
			return sky.DefaultSequence(), fmt.Errorf("%s: missing color %q", path, role)
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return sky.DefaultSequence(), fmt.Errorf("%s: color %q: %w", path, role, err)
		}
		r, g, b := c.RGB255()
		seq[i] = render.RGB{R: r, G: g, B: b}
	}
	return seq, nil
}

// Save writes the sequence to path; used to seed the default theme file
// on first startup
func Save(path string, seq sky.ColorSequence) error {
	f := fileFormat{Colors: make(map[string]string, sky.SequenceLen)}
	for i, role := range roleNames {
		c := seq[i]
		f.Colors[role] = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	out, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
