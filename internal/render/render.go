package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/specialistvlad/memgridgo/internal/connectivity"
	"github.com/xlab/treeprint"
)

// Format selects an output writer.
type Format string

const (
	FormatTree    Format = "tree"
	FormatJSON    Format = "json"
	FormatSummary Format = "summary"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatTree, FormatJSON, FormatSummary}

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(raw string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q: must be one of tree, json, summary", raw)
}

// Write renders s to w in the given format.
func Write(w io.Writer, f Format, s *Snapshot) error {
	switch f {
	case FormatTree:
		return Tree(w, s)
	case FormatJSON:
		return JSON(w, s)
	case FormatSummary:
		return Summary(w, s)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

// JSON writes s as indented JSON.
func JSON(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// Tree writes the instances with their interfaces and memories, then the
// connections and diagnostics, as an indented tree.
func Tree(w io.Writer, s *Snapshot) error {
	root := treeprint.NewWithRoot(s.Design)

	byInstance := make(map[connectivity.InstanceID][]Interface)
	for _, iface := range s.Interfaces {
		byInstance[iface.owner] = append(byInstance[iface.owner], iface)
	}

	instances := root.AddBranch("instances")
	for i, inst := range s.Instances {
		branch := instances.AddMetaBranch(inst.VLNV, inst.Name)
		if inst.ActiveView != "" {
			branch.AddMetaNode("view", inst.ActiveView)
		}
		if ifaces := byInstance[connectivity.InstanceID(i)]; len(ifaces) > 0 {
			ib := branch.AddBranch("interfaces")
			for _, iface := range ifaces {
				ib.AddMetaNode(iface.Mode.String(), interfaceLabel(iface))
			}
		}
		if len(inst.Memories) > 0 {
			mb := branch.AddBranch("memories")
			for _, m := range inst.Memories {
				addMemory(mb, m)
			}
		}
	}

	if len(s.Connections) > 0 {
		cb := root.AddBranch("connections")
		for _, c := range s.Connections {
			cb.AddMetaNode(c.Name, c.From+" -> "+c.To)
		}
	}
	if len(s.Diagnostics) > 0 {
		db := root.AddBranch("diagnostics")
		for _, d := range s.Diagnostics {
			db.AddMetaNode(d.Kind.String(), diagnosticLabel(d))
		}
	}

	_, err := io.WriteString(w, root.String())
	return err
}

func interfaceLabel(iface Interface) string {
	label := iface.Name
	switch {
	case iface.BaseAddress != "":
		label += " base=" + iface.BaseAddress
	case iface.RemapAddress != "":
		label += " remap=" + iface.RemapAddress
	}
	if iface.Memory != "" {
		label += " memory=" + iface.Memory
	}
	return label
}

func addMemory(parent treeprint.Tree, m *Memory) {
	meta := m.Type.String()
	if m.Address != "" {
		meta += " @" + m.Address
	}
	if len(m.Children) == 0 {
		parent.AddMetaNode(meta, m.Name)
		return
	}
	branch := parent.AddMetaBranch(meta, m.Name)
	for _, c := range m.Children {
		addMemory(branch, c)
	}
}

func diagnosticLabel(d Diagnostic) string {
	path := d.Path
	if path == "" {
		path = "<top>"
	}
	return fmt.Sprintf("%s %s: %s", path, d.Subject, d.Message)
}

// Summary writes the element counts followed by one line per diagnostic.
func Summary(w io.Writer, s *Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "design:\t%s\n", s.Design)
	fmt.Fprintf(tw, "instances:\t%d\n", len(s.Instances))
	fmt.Fprintf(tw, "interfaces:\t%d\n", len(s.Interfaces))
	fmt.Fprintf(tw, "connections:\t%d\n", len(s.Connections))
	fmt.Fprintf(tw, "memory items:\t%d\n", s.MemoryItemCount())
	fmt.Fprintf(tw, "diagnostics:\t%d\n", len(s.Diagnostics))
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, d := range s.Diagnostics {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", d.Kind, diagnosticLabel(d)); err != nil {
			return err
		}
	}
	return nil
}
