package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrUnknownAction is returned for a binding naming no registered action
	ErrUnknownAction = errors.New("unknown action")

	// ErrUnknownKey is returned for a key name that cannot be resolved
	ErrUnknownKey = errors.New("unknown key")
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"hash":      '#',
}

// keymapFile is the on-disk keymap layout
type keymapFile struct {
	Keys  map[string]string `toml:"keys"`
	Runes map[string]string `toml:"runes"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only sections/keys present in TOML are populated
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keymapFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	return ParseBindings(f.Keys, f.Runes)
}

// ParseBindings builds a sparse override KeyTable from name -> action maps
// A nil map leaves the matching KeyTable field nil
func ParseBindings(keys, runes map[string]string) (*KeyTable, error) {
	kt := &KeyTable{}

	if keys != nil {
		kt.Keys = make(map[tcell.Key]Action, len(keys))
		for name, actionName := range keys {
			k, ok := KeyByName(normalizeName(name))
			if !ok {
				return nil, fmt.Errorf("[keys] %q: %w", name, ErrUnknownKey)
			}
			a, err := resolveAction(actionName)
			if err != nil {
				return nil, fmt.Errorf("[keys] %q: %w", name, err)
			}
			kt.Keys[k] = a
		}
	}

	if runes != nil {
		kt.Runes = make(map[rune]Action, len(runes))
		for name, actionName := range runes {
			r, err := resolveRune(name)
			if err != nil {
				return nil, fmt.Errorf("[runes] %q: %w", name, err)
			}
			a, err := resolveAction(actionName)
			if err != nil {
				return nil, fmt.Errorf("[runes] %q: %w", name, err)
			}
			kt.Runes[r] = a
		}
	}

	return kt, nil
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", "+", "_").Replace(s)
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key (expected single character or alias): %w", ErrUnknownKey)
}

// resolveAction converts an action name string to an Action
func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("%q (one of %s): %w", name, strings.Join(ActionNames(), ", "), ErrUnknownAction)
	}
	return a, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Keys, override.Keys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]Action) {
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
