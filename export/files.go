package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/atomcluster/cluster"
	"github.com/katalvlaran/atomcluster/xyz"
)

// defaultExt is used when the output template has no extension.
const defaultExt = ".txt"

// ClusterPath derives the file of cluster key from the template outName:
// "out/run.txt" → "out/run_3.txt". A template without extension gets ".txt".
func ClusterPath(outName string, key int) string {
	return keyedPath(outName, key, "")
}

// keyedPath inserts _key before the extension, optionally replacing it.
func keyedPath(outName string, key int, ext string) string {
	cur := filepath.Ext(outName)
	stem := strings.TrimSuffix(outName, cur)
	if ext == "" {
		ext = cur
	}
	if ext == "" {
		ext = defaultExt
	}

	return fmt.Sprintf("%s_%d%s", stem, key, ext)
}

// FormatMembers joins indices with commas: [1 2 3] → "1,2,3".
func FormatMembers(members []int) string {
	parts := make([]string, len(members))
	for i, v := range members {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// WriteClusters writes one membership file per cluster of p and returns the
// paths in key order. Parent directories must exist.
func WriteClusters(outName string, p cluster.Partition) ([]string, error) {
	paths := make([]string, 0, len(p))
	for key, members := range p {
		path := ClusterPath(outName, key)
		if err := os.WriteFile(path, []byte(FormatMembers(members)+"\n"), 0o644); err != nil {
			return paths, fmt.Errorf("export: cluster %d: %w", key, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// WriteClusterXYZ writes the geometry of every cluster as <stem>_<key>.xyz.
// p must hold zero-based indices into frame.
func WriteClusterXYZ(outName string, frame *xyz.Frame, p cluster.Partition) ([]string, error) {
	paths := make([]string, 0, len(p))
	for key, members := range p {
		path := keyedPath(outName, key, ".xyz")
		sub := frame.Subset(members, fmt.Sprintf("cluster %d (%d atoms)", key, len(members)))
		if err := writeFrame(path, sub); err != nil {
			return paths, fmt.Errorf("export: cluster %d: %w", key, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func writeFrame(path string, f *xyz.Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := xyz.Write(out, f); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
