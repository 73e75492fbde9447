// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/ava-labs/tokenledger/codec"
)

const (
	DefaultName          = "EduCoin"
	DefaultSymbol        = "EDU"
	DefaultInitialSupply = uint64(1_000_000)
)

var (
	ErrMissingName      = errors.New("genesis name is empty")
	ErrMissingSymbol    = errors.New("genesis symbol is empty")
	ErrMissingIssuer    = errors.New("genesis issuer is empty")
	ErrUnknownExtension = errors.New("unknown genesis file extension")
)

// Initializer records the token's initial state.
type Initializer interface {
	Initialize(ctx context.Context, name string, symbol string, issuer codec.Address, initialSupply uint64) error
}

// Genesis describes the token created the first time a node starts on an
// empty data directory.
type Genesis struct {
	Name          string        `json:"name"          yaml:"name"`
	Symbol        string        `json:"symbol"        yaml:"symbol"`
	Issuer        codec.Address `json:"issuer"        yaml:"-"`
	InitialSupply uint64        `json:"initialSupply" yaml:"initialSupply"`
}

// yamlGenesis carries the issuer as text since yaml.v2 ignores
// encoding.TextUnmarshaler.
type yamlGenesis struct {
	Name          string `yaml:"name"`
	Symbol        string `yaml:"symbol"`
	Issuer        string `yaml:"issuer"`
	InitialSupply uint64 `yaml:"initialSupply"`
}

func Default(issuer codec.Address) *Genesis {
	return &Genesis{
		Name:          DefaultName,
		Symbol:        DefaultSymbol,
		Issuer:        issuer,
		InitialSupply: DefaultInitialSupply,
	}
}

// Load reads a genesis file. Files ending in .yaml or .yml are parsed as
// YAML, everything else as JSON.
func Load(path string) (*Genesis, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(b)
	case ".json", "":
		return ParseJSON(b)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownExtension, ext)
	}
}

func ParseJSON(b []byte) (*Genesis, error) {
	g := &Genesis{}
	if err := json.Unmarshal(b, g); err != nil {
		return nil, fmt.Errorf("failed to parse genesis: %w", err)
	}
	return g, g.Verify()
}

func ParseYAML(b []byte) (*Genesis, error) {
	var y yamlGenesis
	if err := yaml.UnmarshalStrict(b, &y); err != nil {
		return nil, fmt.Errorf("failed to parse genesis: %w", err)
	}
	if y.Issuer == "" {
		return nil, ErrMissingIssuer
	}
	issuer, err := codec.ParseAddress(y.Issuer)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, y.Issuer)
	}
	g := &Genesis{
		Name:          y.Name,
		Symbol:        y.Symbol,
		Issuer:        issuer,
		InitialSupply: y.InitialSupply,
	}
	return g, g.Verify()
}

func (g *Genesis) Verify() error {
	switch {
	case g.Name == "":
		return ErrMissingName
	case g.Symbol == "":
		return ErrMissingSymbol
	case g.Issuer == codec.EmptyAddress:
		return ErrMissingIssuer
	}
	return nil
}

// InitializeState records the genesis token on [l].
func (g *Genesis) InitializeState(ctx context.Context, l Initializer) error {
	return l.Initialize(ctx, g.Name, g.Symbol, g.Issuer, g.InitialSupply)
}
