// Package dcfile loads the JSON debug image consumed by the dcinspect
// command. It has nothing to do with the real data center container wire
// format: production images arrive already decompressed and laid out in
// memory by a loader outside this module's scope (see LoaderInput). This
// package exists purely so dcinspect has something concrete to open.
package dcfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/scigolib/datacenter"
	"github.com/scigolib/datacenter/internal/core"
)

// Image is the on-disk shape of a debug image file.
type Image struct {
	ElementRecords         []byte            `json:"element_records"`
	ElementSegmentCounts   []int             `json:"element_segment_counts"`
	AttributeRecords       []byte            `json:"attribute_records"`
	AttributeSegmentCounts []int             `json:"attribute_segment_counts"`
	Names                  []string          `json:"names"`
	Values                 map[string]string `json:"values"` // key: "segment:index"
	Extensions             [][]byte          `json:"extensions"`
	RootSegment            uint16            `json:"root_segment"`
	RootIndex              uint16            `json:"root_index"`
}

// Load reads and parses path, returning a LoaderInput ready for
// datacenter.New.
func Load(path string) (datacenter.LoaderInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return datacenter.LoaderInput{}, fmt.Errorf("reading image file: %w", err)
	}

	var img Image
	if err := json.Unmarshal(raw, &img); err != nil {
		return datacenter.LoaderInput{}, fmt.Errorf("parsing image file: %w", err)
	}

	values := make(map[core.Address]string, len(img.Values))
	for key, v := range img.Values {
		addr, err := parseAddressKey(key)
		if err != nil {
			return datacenter.LoaderInput{}, err
		}
		values[addr] = v
	}

	extensions := make([]core.ExtensionDescriptor, len(img.Extensions))
	for i, raw := range img.Extensions {
		extensions[i] = core.ExtensionDescriptor{Raw: raw}
	}

	return datacenter.LoaderInput{
		ElementRecords:         img.ElementRecords,
		ElementSegmentCounts:   img.ElementSegmentCounts,
		AttributeRecords:       img.AttributeRecords,
		AttributeSegmentCounts: img.AttributeSegmentCounts,
		Names:                  img.Names,
		Values:                 values,
		Extensions:             extensions,
		RootAddress:            core.Address{Segment: img.RootSegment, Index: img.RootIndex},
	}, nil
}

func parseAddressKey(key string) (core.Address, error) {
	parts := strings.SplitN(key, ":", 2)
	if len(parts) != 2 {
		return core.Address{}, fmt.Errorf("malformed value key %q, want \"segment:index\"", key)
	}
	seg, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return core.Address{}, fmt.Errorf("malformed value key %q: %w", key, err)
	}
	idx, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return core.Address{}, fmt.Errorf("malformed value key %q: %w", key, err)
	}
	return core.Address{Segment: uint16(seg), Index: uint16(idx)}, nil
}
