// Package assets embeds the pre-authored labyrinth layouts.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"gopkg.in/yaml.v3"

	"labyrinth/pkg/engine/world"
)

//go:embed maps.yaml
var mapsYAML []byte

// ErrUnknownVariant is returned when a variant index is out of range.
var ErrUnknownVariant = errors.New("unknown map variant")

// Point is a cell coordinate in the asset file.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Position converts the asset point to a world position.
func (p Point) Position() world.Position {
	return world.Pos(p.X, p.Y)
}

// Variant is one pre-authored layout with its "map" and "rooms" layers.
type Variant struct {
	Name     string `yaml:"name"`
	Player   Point  `yaml:"player"`
	Minotaur Point  `yaml:"minotaur"`
	Map      string `yaml:"map"`
	Rooms    string `yaml:"rooms"`
}

type mapFile struct {
	Variants []Variant `yaml:"variants"`
}

// Parse decodes a maps document.
func Parse(data []byte) ([]Variant, error) {
	var f mapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse maps: %w", err)
	}
	if len(f.Variants) == 0 {
		return nil, errors.New("parse maps: no variants")
	}
	return f.Variants, nil
}

// Variants returns the embedded layouts.
func Variants() ([]Variant, error) {
	return Parse(mapsYAML)
}

// Load returns the embedded variant with the given 1-based index.
// An index of 0 picks one uniformly at random using r.
func Load(index int, r *rand.Rand) (Variant, int, error) {
	variants, err := Variants()
	if err != nil {
		return Variant{}, 0, err
	}
	if index == 0 {
		index = r.Intn(len(variants)) + 1
	}
	if index < 1 || index > len(variants) {
		return Variant{}, 0, fmt.Errorf("%w: %d (have %d)", ErrUnknownVariant, index, len(variants))
	}
	return variants[index-1], index, nil
}

func splitRows(layer string) []string {
	var rows []string
	for _, line := range strings.Split(layer, "\n") {
		line = strings.TrimRight(line, " \r\t")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}

// Build turns the variant's layers into a grid.
func (v Variant) Build() (*world.Grid, error) {
	mapRows := splitRows(v.Map)
	roomRows := splitRows(v.Rooms)
	if len(mapRows) == 0 {
		return nil, fmt.Errorf("variant %q: empty map layer", v.Name)
	}
	if len(roomRows) != len(mapRows) {
		return nil, fmt.Errorf("variant %q: rooms layer has %d rows, map has %d", v.Name, len(roomRows), len(mapRows))
	}

	width := len(mapRows[0])
	for y := range mapRows {
		if len(mapRows[y]) != width || len(roomRows[y]) != width {
			return nil, fmt.Errorf("variant %q: row %d is not %d cells wide", v.Name, y, width)
		}
	}

	grid := world.NewGrid(width, len(mapRows))
	for y, row := range mapRows {
		for x, ch := range []byte(row) {
			pos := world.Pos(x, y)
			switch ch {
			case '.':
				grid.SetCellKind(pos, world.Walkable)
			case '#':
				grid.SetCellKind(pos, world.Wall)
			default:
				return nil, fmt.Errorf("variant %q: unknown map cell %q at %v", v.Name, ch, pos)
			}
			grid.SetRoomKind(pos, roomKind(roomRows[y][x]))
		}
	}

	if msg := grid.Validate(); msg != "" {
		return nil, fmt.Errorf("variant %q: %s", v.Name, msg)
	}
	for _, spawn := range []Point{v.Player, v.Minotaur} {
		if grid.CellKindAt(spawn.Position()) != world.Walkable {
			return nil, fmt.Errorf("variant %q: spawn %v is not walkable", v.Name, spawn.Position())
		}
	}
	return grid, nil
}

func roomKind(ch byte) world.CellKind {
	switch ch {
	case 'E':
		return world.Exit
	case 'T':
		return world.Treasure
	case 'D':
		return world.Diamond
	default:
		return world.Empty
	}
}
