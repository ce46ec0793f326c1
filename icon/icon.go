// Package icon provides a multi-variant rendering engine for CLI symbols and feedback indicators.
package icon

import (
	"github.com/spf13/viper"
	"github.com/zaisan-cli/zaisan/key"
)

// Visual Variant Constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

// Icon identifies a symbol in the global registry.
type Icon int

const (
	Progress Icon = iota
	Success
	Fail
	Search
	Book
	Lock
)

// iconDef encapsulates the visual representations of a single symbol across all supported variants.
type iconDef struct {
	emoji string
	nerd  string
	plain string
}

var icons = map[Icon]iconDef{
	Progress: {emoji: "⏳", nerd: "", plain: "..."},
	Success:  {emoji: "✅", nerd: "", plain: "+"},
	Fail:     {emoji: "❌", nerd: "", plain: "x"},
	Search:   {emoji: "🔍", nerd: "", plain: ">"},
	Book:     {emoji: "📖", nerd: "", plain: "*"},
	Lock:     {emoji: "🔒", nerd: "", plain: "#"},
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	d := icons[i]
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return d.plain
	}
}
