package store

import "fmt"

// ThemeKey holds the dark/light preference, independent of any collection.
const ThemeKey = "theme"

const (
	themeDark  = "dark"
	themeLight = "light"
)

// DarkMode reads the theme preference. When nothing has been stored yet, or
// the stored value is unrecognized, it returns fallback.
func DarkMode(kv KV, fallback bool) (bool, error) {
	v, ok, err := kv.Get(ThemeKey)
	if err != nil {
		return fallback, err
	}
	if !ok {
		return fallback, nil
	}
	switch v {
	case themeDark:
		return true, nil
	case themeLight:
		return false, nil
	}
	return fallback, nil
}

// SetDarkMode persists the theme preference.
func SetDarkMode(kv KV, dark bool) error {
	v := themeLight
	if dark {
		v = themeDark
	}
	if err := kv.Set(ThemeKey, v); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}
