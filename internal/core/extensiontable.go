package core

// ExtensionDescriptor is a validated element-extension descriptor. The
// format never consults its contents at read time;
// only its presence/absence in range is checked here.
type ExtensionDescriptor struct {
	Raw []byte
}

// ExtensionTable is the ordered table of element-extension descriptors
// referenced by the packed index in an element's extension word.
type ExtensionTable struct {
	Entries []ExtensionDescriptor
}

// NewExtensionTable wraps a loader-provided list of descriptors.
func NewExtensionTable(entries []ExtensionDescriptor) *ExtensionTable {
	return &ExtensionTable{Entries: entries}
}

// Len returns the number of extension descriptors.
func (et *ExtensionTable) Len() int {
	return len(et.Entries)
}

// InRange reports whether index is a valid extension index.
func (et *ExtensionTable) InRange(index uint16) bool {
	return int(index) < len(et.Entries)
}
