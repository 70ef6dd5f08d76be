package datacenter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/datacenter/internal/core"
	mocktesting "github.com/scigolib/datacenter/internal/testing"
)

func TestElement_ParentIsRoot(t *testing.T) {
	dc, err := New(buildSimpleTree(t))
	require.NoError(t, err)

	root, err := dc.Root()
	require.NoError(t, err)
	require.True(t, root.Parent().IsRoot())
	_, ok := root.Parent().Element()
	require.False(t, ok)

	children, err := root.Children()
	require.NoError(t, err)
	childA := children[0]
	require.False(t, childA.Parent().IsRoot())
	parentNode, ok := childA.Parent().Element()
	require.True(t, ok)
	require.Equal(t, "root", parentNode.Name())
}

func TestElement_AttrEmptyName(t *testing.T) {
	dc, err := New(buildSimpleTree(t))
	require.NoError(t, err)
	root, err := dc.Root()
	require.NoError(t, err)

	_, err = root.Attr("")
	require.Error(t, err)
}

func TestElement_MaterializationIsMemoized(t *testing.T) {
	dc, err := New(buildSimpleTree(t))
	require.NoError(t, err)

	root1, err := dc.Root()
	require.NoError(t, err)
	root2, err := dc.Root()
	require.NoError(t, err)
	require.Same(t, root1, root2)

	children1, err := root1.Children()
	require.NoError(t, err)
	children2, err := root2.Children()
	require.NoError(t, err)
	require.Same(t, children1[0], children2[0])
}

func TestElement_ConcurrentRealizationIsSingleInit(t *testing.T) {
	dc, err := New(buildSimpleTree(t))
	require.NoError(t, err)
	root, err := dc.Root()
	require.NoError(t, err)

	const goroutines = 32
	attrResults := make([]map[string]TypedValue, goroutines)
	childResults := make([][]*Element, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines * 2)
	for i := 0; i < goroutines; i++ {
		i := i
		go func() {
			defer wg.Done()
			children, err := root.Children()
			childResults[i] = children
			errs[i] = err
		}()
		go func() {
			defer wg.Done()
			a, _ := root.Attrs()
			attrResults[i] = a
		}()
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		require.NoError(t, errs[i])
		require.Len(t, childResults[i], 2)
		require.Same(t, childResults[0][0], childResults[i][0])
		require.Same(t, childResults[0][1], childResults[i][1])
		require.Empty(t, attrResults[i])
	}
}

func TestElement_OutOfBoundsChildAddress(t *testing.T) {
	elements := make([]byte, mocktesting.ElementRecordSize)
	mocktesting.PutElementRecord(elements, 0, 1, 0, 0, 1, 0, 0, 0, 5) // child base index 5, only 1 record in segment

	dc, err := New(LoaderInput{
		ElementRecords:       elements,
		ElementSegmentCounts: []int{1},
		Names:                []string{"root"},
		Extensions:           []core.ExtensionDescriptor{{}},
	})
	require.NoError(t, err)

	root, err := dc.Root()
	require.NoError(t, err)
	_, err = root.Children()
	require.Error(t, err)
}
