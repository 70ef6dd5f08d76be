// Command dcinspect opens a data center debug image and lets you walk its
// tree from the terminal: list children, print attributes, print the full
// tree, or walk up from an element to the root.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scigolib/datacenter"
	"github.com/scigolib/datacenter/internal/dcfile"
	"github.com/scigolib/datacenter/internal/dclog"
)

var (
	imagePath string
	verbose   bool
)

func main() {
	root := &cobra.Command{
		Use:   "dcinspect",
		Short: "Inspect a data center container's element tree",
	}
	root.PersistentFlags().StringVarP(&imagePath, "file", "f", "", "path to a debug image file (required)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = root.MarkPersistentFlagRequired("file")

	root.AddCommand(treeCmd(), lsCmd(), attrsCmd(), ancestorsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func open() (*datacenter.DataCenter, *zap.Logger, error) {
	logger, err := dclog.New(verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}
	input, err := dcfile.Load(imagePath)
	if err != nil {
		return nil, nil, err
	}
	input.Logger = logger
	dc, err := datacenter.New(input)
	if err != nil {
		return nil, nil, err
	}
	return dc, logger, nil
}

// resolvePath walks down from root following each path segment, choosing
// the first child whose name matches. "/" and "" both resolve to root.
func resolvePath(root *datacenter.Element, path string) (*datacenter.Element, error) {
	path = strings.Trim(path, "/")
	if path == "" {
		return root, nil
	}
	cur := root
	for _, segment := range strings.Split(path, "/") {
		children, err := cur.Children()
		if err != nil {
			return nil, err
		}
		found := false
		for _, c := range children {
			if c.Name() == segment {
				cur = c
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("no child named %q under %s", segment, cur.Path())
		}
	}
	return cur, nil
}

func treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the full element tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			dc, _, err := open()
			if err != nil {
				return err
			}
			defer dc.Dispose()

			root, err := dc.Root()
			if err != nil {
				return err
			}
			return printTree(cmd, root, 0)
		},
	}
}

func printTree(cmd *cobra.Command, e *datacenter.Element, depth int) error {
	fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", strings.Repeat("  ", depth), displayName(e))
	children, err := e.Children()
	if err != nil {
		return err
	}
	for _, c := range children {
		if err := printTree(cmd, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func displayName(e *datacenter.Element) string {
	if e.IsPlaceholder() {
		return "<placeholder>"
	}
	if e.Name() == "" {
		return "<root>"
	}
	return e.Name()
}

func lsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [path]",
		Short: "List the children of an element",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dc, _, err := open()
			if err != nil {
				return err
			}
			defer dc.Dispose()

			root, err := dc.Root()
			if err != nil {
				return err
			}
			path := "/"
			if len(args) == 1 {
				path = args[0]
			}
			el, err := resolvePath(root, path)
			if err != nil {
				return err
			}
			children, err := el.Children()
			if err != nil {
				return err
			}
			for _, c := range children {
				fmt.Fprintln(cmd.OutOrStdout(), displayName(c))
			}
			return nil
		},
	}
}

func attrsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attrs <path>",
		Short: "Print an element's attributes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dc, _, err := open()
			if err != nil {
				return err
			}
			defer dc.Dispose()

			root, err := dc.Root()
			if err != nil {
				return err
			}
			el, err := resolvePath(root, args[0])
			if err != nil {
				return err
			}
			attrs, err := el.Attrs()
			if err != nil {
				return err
			}
			for name, val := range attrs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", name, formatValue(val))
			}
			return nil
		},
	}
}

func formatValue(v datacenter.TypedValue) string {
	switch v.Kind() {
	case datacenter.KindInt32:
		n, _ := v.Int32()
		return fmt.Sprintf("%d", n)
	case datacenter.KindSingle:
		f, _ := v.Single()
		return fmt.Sprintf("%g", f)
	case datacenter.KindBoolean:
		b, _ := v.Boolean()
		return fmt.Sprintf("%t", b)
	case datacenter.KindString:
		s, _ := v.String()
		return s
	default:
		return "<null>"
	}
}

func ancestorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ancestors <path>",
		Short: "Print the chain from an element up to the root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dc, _, err := open()
			if err != nil {
				return err
			}
			defer dc.Dispose()

			root, err := dc.Root()
			if err != nil {
				return err
			}
			el, err := resolvePath(root, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), displayName(el))
			for a := range el.Ancestors() {
				fmt.Fprintln(cmd.OutOrStdout(), displayName(a))
			}
			return nil
		},
	}
}
