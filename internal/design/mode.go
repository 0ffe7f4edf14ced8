package design

import "strings"

// InterfaceMode is the role a bus interface plays on its component.
type InterfaceMode int

const (
	ModeUndefined InterfaceMode = iota
	ModeMaster
	ModeSlave
	ModeSystem
	ModeMirroredMaster
	ModeMirroredSlave
	ModeMirroredSystem
	ModeMonitor
)

var modeNames = map[InterfaceMode]string{
	ModeUndefined:      "undefined",
	ModeMaster:         "master",
	ModeSlave:          "slave",
	ModeSystem:         "system",
	ModeMirroredMaster: "mirroredMaster",
	ModeMirroredSlave:  "mirroredSlave",
	ModeMirroredSystem: "mirroredSystem",
	ModeMonitor:        "monitor",
}

// String returns the schema spelling of the mode.
func (m InterfaceMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return modeNames[ModeUndefined]
}

// ParseInterfaceMode maps a schema spelling to a mode. Matching ignores case,
// dashes and underscores so "mirrored-slave" and "mirrored_slave" both work.
// Unknown spellings map to ModeUndefined and false.
func ParseInterfaceMode(raw string) (InterfaceMode, bool) {
	normalized := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(raw))
	for mode, name := range modeNames {
		if strings.ToLower(name) == normalized {
			return mode, true
		}
	}
	return ModeUndefined, false
}

// MarshalText implements encoding.TextMarshaler so modes render as names.
func (m InterfaceMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
