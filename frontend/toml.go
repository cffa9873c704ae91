package frontend

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

const (
	ManifestName = "loto.toml"

	defaultSrcDir = "src"
	defaultOutDir = "out"
)

type LotoToml struct {
	Name    string `toml:"name" validate:"required"`
	Version string `toml:"version" validate:"required"`
	Src     string `toml:"src,omitempty" validate:"omitempty,excludesall=*?"`
	Out     string `toml:"out,omitempty" validate:"omitempty,excludesall=*?"`
	Banner  *bool  `toml:"banner,omitempty"`
}

// EmitBanner reports whether generated files start with the banner line.
func (lt LotoToml) EmitBanner() bool {
	return lt.Banner == nil || *lt.Banner
}

func (lt *LotoToml) applyDefaults() {
	if lt.Src == "" {
		lt.Src = defaultSrcDir
	}
	if lt.Out == "" {
		lt.Out = defaultOutDir
	}
}

func HandleLotoToml(tomlContent string) (LotoToml, error) {
	var lt LotoToml
	_, err := toml.Decode(tomlContent, &lt)
	if err != nil {
		return lt, err
	}
	validate := validator.New()
	if err := validate.Struct(lt); err != nil {
		return lt, err
	}
	lt.applyDefaults()
	return lt, nil
}

// NewLotoToml returns the manifest text `loto new` writes.
func NewLotoToml(name string) (string, error) {
	var buf bytes.Buffer
	lt := LotoToml{Name: name, Version: "0.1.0"}
	if err := toml.NewEncoder(&buf).Encode(lt); err != nil {
		return "", err
	}
	return buf.String(), nil
}
