// Package config loads widget settings.
//
// Values are layered with koanf, lowest to highest priority:
//
//  1. [DefaultConfig]
//  2. a named preset (see [Presets])
//  3. a YAML file, ./flipcalc.yaml unless given explicitly
//  4. FLIPCALC_ environment variables, "__" separating nested keys
//  5. command-line flags that were explicitly set
package config
